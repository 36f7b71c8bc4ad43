// Package monthindex resolves the YYYY-MM month keys every engine read is
// scoped by, and the YYYY-Www week keys used by forecast identities.
package monthindex

import (
	"errors"
	"fmt"
	"time"
)

const keyLayout = "2006-01"

var ErrUnresolvableMonth = errors.New("unresolvable_month")

// Month is one resolved calendar month.
type Month struct {
	Key   string
	Start time.Time
	End   time.Time // exclusive
}

// Parse resolves a YYYY-MM key. An unresolvable month is fatal for any
// computation that depends on it.
func Parse(key string) (Month, error) {
	t, err := time.Parse(keyLayout, key)
	if err != nil {
		return Month{}, ErrUnresolvableMonth
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Month{
		Key:   start.Format(keyLayout),
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}, nil
}

// KeyFor returns the month key containing t.
func KeyFor(t time.Time) string {
	return t.UTC().Format(keyLayout)
}

// Previous returns the month before m.
func Previous(m Month) Month {
	start := m.Start.AddDate(0, -1, 0)
	return Month{Key: start.Format(keyLayout), Start: start, End: m.Start}
}

// Range returns every month from fromKey to toKey inclusive, in order.
func Range(fromKey, toKey string) ([]Month, error) {
	from, err := Parse(fromKey)
	if err != nil {
		return nil, err
	}
	to, err := Parse(toKey)
	if err != nil {
		return nil, err
	}
	if to.Start.Before(from.Start) {
		return nil, ErrUnresolvableMonth
	}
	var out []Month
	for cur := from; !cur.Start.After(to.Start); {
		out = append(out, cur)
		next := cur.Start.AddDate(0, 1, 0)
		cur = Month{Key: next.Format(keyLayout), Start: next, End: next.AddDate(0, 1, 0)}
	}
	return out, nil
}

// Contains reports whether key falls within the inclusive [startKey, endKey]
// window. An empty bound is open on that side. Month keys compare correctly
// as strings because of the fixed YYYY-MM layout.
func Contains(key, startKey, endKey string) bool {
	if startKey != "" && key < startKey {
		return false
	}
	if endKey != "" && key > endKey {
		return false
	}
	return true
}

// WeekKey returns the ISO week key (YYYY-Www) containing t, used by weekly
// forecast row identities.
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
