package availability

import (
	"context"
	"fmt"
	"time"
)

// PriceFunc quotes a price for booking a resource for the given number of
// minutes. Pricing lives outside this package; quotes are relayed into the
// duration menu untouched.
type PriceFunc func(ctx context.Context, resourceID string, minutes int, tier string) (int64, error)

// DurationOption is one entry in the duration menu shown to the customer.
type DurationOption struct {
	Minutes        int
	Available      bool
	Price          int64
	DisabledReason string
}

// DurationMenu is the priced list of offerable durations for one
// availability result.
type DurationMenu struct {
	Options           []DurationOption
	MaxAllowedMinutes int
	IsValid           bool
}

// DurationValidator turns an availability result into a duration menu.
type DurationValidator struct {
	offered []int
	price   PriceFunc
}

// NewDurationValidator builds a validator over the configured ordered list
// of offerable durations (in minutes).
func NewDurationValidator(offered []int, price PriceFunc) *DurationValidator {
	return &DurationValidator{
		offered: offered,
		price:   price,
	}
}

// SmallestOffered returns the shortest offerable duration, or 0 when none
// are configured.
func (v *DurationValidator) SmallestOffered() time.Duration {
	if len(v.offered) == 0 {
		return 0
	}
	min := v.offered[0]
	for _, m := range v.offered[1:] {
		if m < min {
			min = m
		}
	}
	return time.Duration(min) * time.Minute
}

// BuildMenu marks each offered duration as available or disabled against
// the result, quoting prices for the available ones. A pricing failure
// disables the single option rather than failing the menu.
func (v *DurationValidator) BuildMenu(ctx context.Context, res *Result, tier string) DurationMenu {
	menu := DurationMenu{Options: make([]DurationOption, 0, len(v.offered))}

	for _, minutes := range v.offered {
		opt := DurationOption{Minutes: minutes}

		switch {
		case !res.IsAvailable:
			opt.DisabledReason = "bay is unavailable at the selected time"
		case minutes > res.MaxAvailableMinutes:
			opt.DisabledReason = v.disabledReason(res, minutes)
		default:
			opt.Available = true
		}

		if opt.Available && v.price != nil {
			price, err := v.price(ctx, res.ResourceID, minutes, tier)
			if err != nil {
				opt.Available = false
				opt.DisabledReason = "pricing unavailable"
			} else {
				opt.Price = price
			}
		}

		if opt.Available && minutes > menu.MaxAllowedMinutes {
			menu.MaxAllowedMinutes = minutes
		}
		menu.Options = append(menu.Options, opt)
	}

	menu.IsValid = menu.MaxAllowedMinutes > 0
	return menu
}

func (v *DurationValidator) disabledReason(res *Result, minutes int) string {
	end := res.Anchor.Add(time.Duration(minutes) * time.Minute)
	if res.NextBookingStart != nil && end.After(*res.NextBookingStart) {
		return fmt.Sprintf("conflicts with booking at %s", res.NextBookingStart.Format("15:04"))
	}
	return "exceeds closing time"
}
