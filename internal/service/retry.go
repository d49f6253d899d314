package service

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
)

var retryDelay = 20 * time.Millisecond

// retryOnce repeats op a single time when the store reports ErrStorageUnavailable.
// Only idempotent operations go through here; appends are never retried.
func retryOnce[T any](ctx context.Context, op func() (T, error)) (T, error) {
	var result T
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(retryDelay), 1), ctx)
	err := backoff.Retry(func() error {
		var err error
		result, err = op()
		if err != nil && !errors.Is(err, errorvalues.ErrStorageUnavailable) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
	return result, err
}

func retryOnceErr(ctx context.Context, op func() error) error {
	_, err := retryOnce(ctx, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
