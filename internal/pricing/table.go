// Package pricing provides the default rate card behind the duration
// menu. It is a stand-in collaborator; deployments with a real pricing
// engine inject their own quote function instead.
package pricing

import "context"

// Table quotes by a flat per-hour rate per tier, in cents.
type Table struct {
	PerHourCents        map[string]int64
	DefaultPerHourCents int64
}

func DefaultTable() *Table {
	return &Table{
		PerHourCents: map[string]int64{
			"member":  4500,
			"premium": 3500,
		},
		DefaultPerHourCents: 6000,
	}
}

// Quote prices a duration at the tier's hourly rate, pro-rated by minute.
func (t *Table) Quote(_ context.Context, _ string, minutes int, tier string) (int64, error) {
	rate, ok := t.PerHourCents[tier]
	if !ok {
		rate = t.DefaultPerHourCents
	}
	return rate * int64(minutes) / 60, nil
}
