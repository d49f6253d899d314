package repository

import (
	"context"
)

type EventsRepository struct {
	conn PgConnection
}

func NewEventsRepo(conn PgConnection) *EventsRepository {
	mustPing(conn, "eventsRepo")
	return &EventsRepository{
		conn: conn,
	}
}

var eventTables = []string{
	"water_logs",
	"exercise_logs",
	"retention_logs",
	"activities",
	"sleep_logs",
	"screen_time_logs",
}

// PurgeAll removes every event of the user in one transaction. users is untouched.
func (er *EventsRepository) PurgeAll(ctx context.Context, userID int64) error {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return storageErr("beginning purge transaction", err)
	}
	for _, table := range eventTables {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1;`, userID); err != nil {
			rollback(ctx, tx)
			return storageErr("purging "+table, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return storageErr("committing purge", err)
	}
	return nil
}
