// Package selection owns the per-session state of the multi-bay selector.
// One Coordinator exists per in-progress booking attempt and is discarded
// when the attempt ends; there is no process-wide instance.
package selection

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/simlane/bay-booking-backend/internal/availability"
	"github.com/simlane/bay-booking-backend/internal/pkg/apperror"
	"github.com/simlane/bay-booking-backend/internal/resource"
	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

var (
	ErrSelectionLimit   = apperror.New(http.StatusUnprocessableEntity, "selection limit reached")
	ErrResourceInactive = apperror.New(http.StatusUnprocessableEntity, "resource is inactive")
	ErrUnknownResource  = apperror.New(http.StatusNotFound, "resource is not part of this location")
	ErrNoTimeRange      = apperror.New(http.StatusBadRequest, "time range is not set")
	ErrNotConflicting   = apperror.New(http.StatusBadRequest, "resource has no conflict to override")
)

// State is the coordinator lifecycle state.
type State string

const (
	StateIdle     State = "idle"
	StateChecking State = "checking"
	StateReady    State = "ready"
	StateConflict State = "conflict"
)

// ResourceStatus is how the UI should render one bay.
type ResourceStatus string

const (
	StatusAvailable   ResourceStatus = "available"
	StatusSelected    ResourceStatus = "selected"
	StatusConflict    ResourceStatus = "conflict"
	StatusUnavailable ResourceStatus = "unavailable"
)

// CheckFunc runs a conflict check over every active resource at a location.
// The coordinator calls it asynchronously on each input change.
type CheckFunc func(ctx context.Context, locationID string, window timeslot.Range) (*availability.ConflictCheckResult, error)

// OverrideRecord captures an explicit "continue despite conflict" decision.
type OverrideRecord struct {
	ResourceID string
	Actor      string
	Reason     string
	At         time.Time
}

// Snapshot is an immutable view of session state for rendering.
type Snapshot struct {
	State     State
	Window    timeslot.Range
	Selected  []string
	Statuses  map[string]ResourceStatus
	Overrides []OverrideRecord
}

// Coordinator drives the selector for one session. Every mutation issues a
// conflict check tagged with a strictly increasing sequence number; only
// the highest-numbered response ever lands, so late replies from
// superseded checks can never corrupt displayed state. Discard-by-sequence
// is the only cancellation mechanism.
type Coordinator struct {
	maxSelectable int
	check         CheckFunc
	logger        *zap.Logger

	mu         sync.Mutex
	state      State
	locationID string
	window     timeslot.Range
	resources  []*resource.Resource
	byID       map[string]*resource.Resource
	selected   map[string]bool
	conflicts  map[string]availability.ResourceConflict
	overrides  []OverrideRecord

	nextSeq    uint64
	appliedSeq uint64
}

func NewCoordinator(maxSelectable int, check CheckFunc, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		maxSelectable: maxSelectable,
		check:         check,
		logger:        logger,
		state:         StateIdle,
		byID:          map[string]*resource.Resource{},
		selected:      map[string]bool{},
		conflicts:     map[string]availability.ResourceConflict{},
	}
}

// SetLocation points the session at a location and its resources, clearing
// any previous selection.
func (c *Coordinator) SetLocation(ctx context.Context, locationID string, resources []*resource.Resource) {
	c.mu.Lock()
	c.locationID = locationID
	c.resources = resources
	c.byID = make(map[string]*resource.Resource, len(resources))
	for _, res := range resources {
		c.byID[res.ID] = res
	}
	c.selected = map[string]bool{}
	c.conflicts = map[string]availability.ResourceConflict{}
	c.mu.Unlock()

	c.refresh(ctx)
}

// SetTimeRange updates the candidate interval and triggers a re-check.
func (c *Coordinator) SetTimeRange(ctx context.Context, window timeslot.Range) error {
	if _, err := timeslot.New(window.Start, window.End); err != nil {
		return apperror.Wrap(err, http.StatusBadRequest, "start time must be before end time")
	}

	c.mu.Lock()
	c.window = window
	c.mu.Unlock()

	c.refresh(ctx)
	return nil
}

// Toggle flips a resource in or out of the selection. Adding is refused
// (no-op) beyond maxSelectable or for inactive resources, so the caller
// can surface the limit message.
func (c *Coordinator) Toggle(ctx context.Context, resourceID string) error {
	c.mu.Lock()
	res, ok := c.byID[resourceID]
	if !ok {
		c.mu.Unlock()
		return ErrUnknownResource
	}

	if c.selected[resourceID] {
		delete(c.selected, resourceID)
	} else {
		if !res.Active {
			c.mu.Unlock()
			return ErrResourceInactive
		}
		if len(c.selected) >= c.maxSelectable {
			c.mu.Unlock()
			return ErrSelectionLimit
		}
		c.selected[resourceID] = true
	}
	c.mu.Unlock()

	c.refresh(ctx)
	return nil
}

// SelectAll selects every active, non-conflicting resource up to the
// selection limit. Conflicting resources need SelectWithOverride.
func (c *Coordinator) SelectAll(ctx context.Context) {
	c.mu.Lock()
	for _, res := range c.resources {
		if len(c.selected) >= c.maxSelectable {
			break
		}
		if !res.Active || c.selected[res.ID] {
			continue
		}
		if rc, ok := c.conflicts[res.ID]; ok && !rc.Available {
			continue
		}
		c.selected[res.ID] = true
	}
	c.mu.Unlock()

	c.refresh(ctx)
}

// SelectWithOverride adds a conflicting resource after the caller
// explicitly confirmed. The decision is recorded with actor and reason.
func (c *Coordinator) SelectWithOverride(ctx context.Context, resourceID, actor, reason string) error {
	c.mu.Lock()
	res, ok := c.byID[resourceID]
	if !ok {
		c.mu.Unlock()
		return ErrUnknownResource
	}
	if !res.Active {
		c.mu.Unlock()
		return ErrResourceInactive
	}
	rc, ok := c.conflicts[resourceID]
	if !ok || rc.Available {
		c.mu.Unlock()
		return ErrNotConflicting
	}
	if !c.selected[resourceID] && len(c.selected) >= c.maxSelectable {
		c.mu.Unlock()
		return ErrSelectionLimit
	}

	c.selected[resourceID] = true
	c.overrides = append(c.overrides, OverrideRecord{
		ResourceID: resourceID,
		Actor:      actor,
		Reason:     reason,
		At:         time.Now().UTC(),
	})
	c.mu.Unlock()

	c.logger.Info("conflict override recorded",
		zap.String("resource_id", resourceID),
		zap.String("actor", actor),
		zap.String("reason", reason),
	)

	c.refresh(ctx)
	return nil
}

// ClearAll empties the selection, leaving the time range untouched.
func (c *Coordinator) ClearAll(ctx context.Context) {
	c.mu.Lock()
	c.selected = map[string]bool{}
	c.mu.Unlock()

	c.refresh(ctx)
}

// Snapshot returns the current view for rendering.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:    c.state,
		Window:   c.window,
		Statuses: make(map[string]ResourceStatus, len(c.resources)),
	}
	for id := range c.selected {
		snap.Selected = append(snap.Selected, id)
	}
	snap.Overrides = append(snap.Overrides, c.overrides...)

	for _, res := range c.resources {
		snap.Statuses[res.ID] = c.statusLocked(res)
	}
	return snap
}

func (c *Coordinator) statusLocked(res *resource.Resource) ResourceStatus {
	if !res.Active {
		return StatusUnavailable
	}
	if rc, ok := c.conflicts[res.ID]; ok && !rc.Available {
		return StatusConflict
	}
	if c.selected[res.ID] {
		return StatusSelected
	}
	return StatusAvailable
}

// refresh issues an asynchronous conflict check tagged with the next
// sequence number. No time range yet means nothing to check.
func (c *Coordinator) refresh(ctx context.Context) {
	c.mu.Lock()
	if c.window.IsZero() || c.locationID == "" {
		c.mu.Unlock()
		return
	}
	c.nextSeq++
	seq := c.nextSeq
	locationID := c.locationID
	window := c.window
	c.state = StateChecking
	c.mu.Unlock()

	go func() {
		result, err := c.check(ctx, locationID, window)
		c.apply(seq, result, err)
	}()
}

// apply lands a conflict-check response. Responses carrying a sequence
// number at or below the highest one already applied are stale and are
// dropped without touching state, whatever their arrival order.
func (c *Coordinator) apply(seq uint64, result *availability.ConflictCheckResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.appliedSeq {
		c.logger.Debug("discarding stale conflict check",
			zap.Uint64("seq", seq),
			zap.Uint64("applied", c.appliedSeq),
		)
		return
	}
	c.appliedSeq = seq

	if err != nil {
		// The session keeps its previous verdicts; the next input change
		// retries naturally.
		c.logger.Warn("conflict check failed", zap.Uint64("seq", seq), zap.Error(err))
	} else {
		c.conflicts = make(map[string]availability.ResourceConflict, len(result.Results))
		for _, rc := range result.Results {
			c.conflicts[rc.ResourceID] = rc
		}
	}

	// The state always reflects the verdicts in effect, retained or fresh.
	c.state = StateReady
	for id := range c.selected {
		if rc, ok := c.conflicts[id]; ok && !rc.Available {
			c.state = StateConflict
			break
		}
	}
}
