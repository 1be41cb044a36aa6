package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/simlane/bay-booking-backend/internal/pkg/debounce"
)

const toggleRetries = 4

// Toggler coalesces rapid favorite toggles into a single persisted write.
// N toggles of the same bay within the window produce exactly one write
// carrying the final state. Writes run in the background with retry and
// backoff; a write that still fails after retries is logged and dropped.
// Favorites are not worth failing a booking over.
type Toggler struct {
	store    Store
	debounce *debounce.Debouncer
	logger   *zap.Logger
}

func NewToggler(store Store, window time.Duration, logger *zap.Logger) *Toggler {
	return &Toggler{
		store:    store,
		debounce: debounce.New(window),
		logger:   logger,
	}
}

// Toggle records the desired starred state for a bay. The write is
// deferred by the coalescing window; toggling again within the window
// replaces the pending state and restarts the timer.
func (t *Toggler) Toggle(customerRef, locationID, resourceID string, starred bool) {
	key := fmt.Sprintf("%s:%s:%s", customerRef, locationID, resourceID)
	t.debounce.Do(key, func() {
		t.persist(customerRef, locationID, resourceID, starred)
	})
}

// Flush writes all pending toggles immediately. Called on shutdown.
func (t *Toggler) Flush() {
	t.debounce.Flush()
}

func (t *Toggler) persist(customerRef, locationID, resourceID string, starred bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	op := func() error {
		return t.store.SetFavorite(ctx, customerRef, locationID, resourceID, starred)
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), toggleRetries),
		ctx,
	)

	if err := backoff.Retry(op, bo); err != nil {
		t.logger.Warn("favorite write dropped after retries",
			zap.String("customer_ref", customerRef),
			zap.String("location_id", locationID),
			zap.String("resource_id", resourceID),
			zap.Bool("starred", starred),
			zap.Error(err),
		)
	}
}
