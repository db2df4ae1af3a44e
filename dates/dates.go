// Package dates holds the calendar-date type used across the API.
// All external dates are plain YYYY-MM-DD strings with no time of day.
package dates

import (
	"fmt"
	"math"
	"time"
)

const Layout = "2006-01-02"

// Date is a calendar date (midnight UTC internally).
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return New(now.Year(), now.Month(), now.Day())
}

func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) String() string     { return d.t.Format(Layout) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// AddMonths advances by calendar months. Month-end overflow normalizes
// forward (Jan 31 + 1 month = Mar 2/3), matching time.AddDate.
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// DaysSince returns the number of calendar days from o to d, rounded up.
// Dates carry no time of day, so the result is exact; the ceiling keeps
// the "a few hours late counts as a full day" fine rule intact should a
// timestamp ever leak in.
func (d Date) DaysSince(o Date) int {
	return int(math.Ceil(d.t.Sub(o.t).Hours() / 24))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", b)
	}
	p, err := Parse(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = p
	return nil
}
