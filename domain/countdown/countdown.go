// Package countdown breaks the time left until the wedding into display units.
package countdown

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// ArrivedMessage replaces the counter once the target has passed.
const ArrivedMessage = "The day has come!"

// Breakdown is the remaining time in whole days, hours, minutes and seconds.
type Breakdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Done    bool  `json:"done"`
}

// Compute floors each unit of target-now. A non-positive difference yields
// zeros with Done set.
func Compute(now, target time.Time) Breakdown {
	d := target.Sub(now)
	if d <= 0 {
		return Breakdown{Done: true}
	}
	return Breakdown{
		Days:    int64(d / day),
		Hours:   int64((d % day) / time.Hour),
		Minutes: int64((d % time.Hour) / time.Minute),
		Seconds: int64((d % time.Minute) / time.Second),
	}
}

// Total is the breakdown folded back into a duration.
func (b Breakdown) Total() time.Duration {
	return time.Duration(b.Days)*day +
		time.Duration(b.Hours)*time.Hour +
		time.Duration(b.Minutes)*time.Minute +
		time.Duration(b.Seconds)*time.Second
}

// Padded returns each unit as at least two digits, for the hero counter.
func (b Breakdown) Padded() [4]string {
	return [4]string{
		fmt.Sprintf("%02d", b.Days),
		fmt.Sprintf("%02d", b.Hours),
		fmt.Sprintf("%02d", b.Minutes),
		fmt.Sprintf("%02d", b.Seconds),
	}
}
