package location

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

var (
	ErrNotFound     = errors.New("location not found")
	ErrInvalidHours = errors.New("invalid opening hours")
)

// Location represents a facility housing bookable simulator bays.
type Location struct {
	ID                string
	Name              string
	OpeningHoursStart string // Format: HH:MM or HH:MM:SS
	OpeningHoursEnd   string // Format: HH:MM or HH:MM:SS
	Active            bool
	CreatedAt         time.Time
}

// Filter defines parameters for listing locations.
type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}

// parseClock parses an HH:MM or HH:MM:SS wall-clock string.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}

	var h, m, sec int
	if _, err := fmt.Sscanf(parts[0]+":"+parts[1], "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}
	if len(parts) == 3 {
		if _, err := fmt.Sscanf(parts[2], "%d", &sec); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHours, s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}

	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// DayWindow returns the open/close interval for the calendar day containing t.
func (l *Location) DayWindow(t time.Time) (timeslot.Range, error) {
	open, err := parseClock(l.OpeningHoursStart)
	if err != nil {
		return timeslot.Range{}, err
	}
	closing, err := parseClock(l.OpeningHoursEnd)
	if err != nil {
		return timeslot.Range{}, err
	}

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return timeslot.New(midnight.Add(open), midnight.Add(closing))
}
