package entities

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// Day selects which daily rates to fetch: the latest published ones or
// those of a calendar date. The zero value is Latest.
type Day struct {
	date time.Time
	set  bool
}

func Latest() Day {
	return Day{}
}

// OnDate keeps only the calendar date of t.
func OnDate(t time.Time) Day {
	y, m, d := t.Date()
	return Day{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), set: true}
}

// ParseDay validates user input: it must be yyyy-MM-dd and not after the
// calendar date of now.
func ParseDay(s string, now time.Time) (Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, ErrEmptyDate
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Day{}, errors.Wrapf(ErrInvalidDate, "%q", s)
	}

	day := OnDate(t)
	if day.date.After(OnDate(now).date) {
		return Day{}, errors.Wrapf(ErrFutureDate, "%q", s)
	}

	return day, nil
}

func (d Day) IsLatest() bool {
	return !d.set
}

// Date is the zero time for Latest.
func (d Day) Date() time.Time {
	return d.date
}

func (d Day) String() string {
	if !d.set {
		return "latest"
	}
	return d.date.Format(DateLayout)
}
