package scheduler

import (
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/limbo/lifetrack/pkg/tzclock"
)

// DefaultSummaryMinutes is 21:00, used while the sleep time is unset.
const DefaultSummaryMinutes = 21 * 60

// Plan is the set of daily fire times derived from one profile snapshot.
type Plan struct {
	// False when wake or sleep time is unset. Water is then empty
	Configured    bool                `json:"configured"`
	WindowMinutes int                 `json:"window_minutes"`
	Interval      int                 `json:"interval_minutes"`
	Water         []tzclock.ClockTime `json:"water"`
	Summary       tzclock.ClockTime   `json:"summary"`
	CupSizeMl     int                 `json:"cup_size_ml"`
	TimeZone      string              `json:"tz"`
}

// ActiveWindow is the span between wake and sleep. A sleep time that is not
// after the wake time ends the window at midnight instead of wrapping.
func ActiveWindow(wakeMinutes, sleepMinutes int) int {
	if sleepMinutes > wakeMinutes {
		return sleepMinutes - wakeMinutes
	}
	return tzclock.MinutesPerDay - wakeMinutes
}

// ReminderCount is how many cups fit into the daily target, at least one.
func ReminderCount(targetMl, cupSizeMl int) int {
	if cupSizeMl < 1 {
		cupSizeMl = 1
	}
	return max(1, targetMl/cupSizeMl)
}

// WaterTimes spaces count reminders evenly after wake. The first one is one
// interval after wake; accumulated rounding may push the last past sleep.
func WaterTimes(wakeMinutes, sleepMinutes, targetMl, cupSizeMl int) (times []tzclock.ClockTime, window, interval int) {
	window = ActiveWindow(wakeMinutes, sleepMinutes)
	count := ReminderCount(targetMl, cupSizeMl)
	interval = max(1, window/count)
	times = make([]tzclock.ClockTime, 0, count)
	for i := 0; i < count; i++ {
		times = append(times, tzclock.MinutesToClockTime(wakeMinutes+interval*(i+1)))
	}
	return times, window, interval
}

func BuildPlan(p entity.UserProfile) Plan {
	plan := Plan{
		CupSizeMl: p.CupSizeMl,
		TimeZone:  p.TimeZone,
		Summary:   tzclock.MinutesToClockTime(DefaultSummaryMinutes),
	}
	if p.SleepMinutes != nil {
		plan.Summary = tzclock.MinutesToClockTime(*p.SleepMinutes)
	}
	if p.WakeMinutes == nil || p.SleepMinutes == nil {
		return plan
	}
	plan.Configured = true
	plan.Water, plan.WindowMinutes, plan.Interval = WaterTimes(*p.WakeMinutes, *p.SleepMinutes, p.DailyWaterTargetMl, p.CupSizeMl)
	return plan
}
