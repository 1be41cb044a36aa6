// Package group assigns participants of a group booking to the selected
// bays. One Coordinator exists per booking attempt, alongside the
// selection session, and is discarded with it.
package group

import (
	"errors"
	"sort"
)

var (
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrUnknownResource    = errors.New("resource is not part of the selection")
)

// Participant is one member of a group booking. AssignedResourceID is
// empty while unassigned. NeedsSplitTime marks surplus participants for
// split-time handling when the group outnumbers the selected bays.
type Participant struct {
	Name                string
	Email               string
	PreferredResourceID string
	AssignedResourceID  string
	NeedsSplitTime      bool
}

// SelectedResource is a bay from the selection, carried with its display
// number for deterministic ordering.
type SelectedResource struct {
	ID     string
	Number int
}

// Coordinator holds the participant-to-bay assignment for one session.
type Coordinator struct {
	participants []Participant
	resources    []SelectedResource // sorted ascending by Number
}

// NewCoordinator builds a coordinator over the session's participants and
// selected resources. The resource order the caller passes does not
// matter; assignment always walks bays by ascending number.
func NewCoordinator(participants []Participant, resources []SelectedResource) *Coordinator {
	sorted := make([]SelectedResource, len(resources))
	copy(sorted, resources)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	return &Coordinator{
		participants: append([]Participant(nil), participants...),
		resources:    sorted,
	}
}

// AutoAssign fills in every unassigned participant deterministically:
// preferences first (when the preferred bay is selected and free), then
// remaining participants in order against remaining bays by ascending
// number. Surplus participants stay unassigned and are flagged for
// split-time handling. Calling it again without manual changes in between
// produces the identical assignment.
func (c *Coordinator) AutoAssign() {
	occupied := c.occupiedSet()

	// Pass 1: honor preferences.
	for i := range c.participants {
		p := &c.participants[i]
		if p.AssignedResourceID != "" || p.PreferredResourceID == "" {
			continue
		}
		if !c.hasResource(p.PreferredResourceID) || occupied[p.PreferredResourceID] {
			continue
		}
		p.AssignedResourceID = p.PreferredResourceID
		occupied[p.PreferredResourceID] = true
	}

	// Pass 2: fill remaining participants against remaining bays.
	for i := range c.participants {
		p := &c.participants[i]
		if p.AssignedResourceID != "" {
			continue
		}
		assigned := false
		for _, res := range c.resources {
			if occupied[res.ID] {
				continue
			}
			p.AssignedResourceID = res.ID
			occupied[res.ID] = true
			assigned = true
			break
		}
		p.NeedsSplitTime = !assigned
	}
}

// Assign manually places a participant on a bay. If another participant
// already holds that bay they are evicted to unassigned; a bay is never
// silently doubled.
func (c *Coordinator) Assign(participantIdx int, resourceID string) error {
	if participantIdx < 0 || participantIdx >= len(c.participants) {
		return ErrUnknownParticipant
	}
	if !c.hasResource(resourceID) {
		return ErrUnknownResource
	}

	for i := range c.participants {
		if i != participantIdx && c.participants[i].AssignedResourceID == resourceID {
			c.participants[i].AssignedResourceID = ""
		}
	}

	c.participants[participantIdx].AssignedResourceID = resourceID
	c.participants[participantIdx].NeedsSplitTime = false
	return nil
}

// Unassign removes a participant's assignment.
func (c *Coordinator) Unassign(participantIdx int) error {
	if participantIdx < 0 || participantIdx >= len(c.participants) {
		return ErrUnknownParticipant
	}
	c.participants[participantIdx].AssignedResourceID = ""
	return nil
}

// Completion reports the assigned fraction, 0 when there are no
// participants.
func (c *Coordinator) Completion() float64 {
	if len(c.participants) == 0 {
		return 0
	}
	assigned := 0
	for _, p := range c.participants {
		if p.AssignedResourceID != "" {
			assigned++
		}
	}
	return float64(assigned) / float64(len(c.participants))
}

// Participants returns a copy of the current assignment state.
func (c *Coordinator) Participants() []Participant {
	return append([]Participant(nil), c.participants...)
}

func (c *Coordinator) occupiedSet() map[string]bool {
	occupied := make(map[string]bool, len(c.resources))
	for _, p := range c.participants {
		if p.AssignedResourceID != "" {
			occupied[p.AssignedResourceID] = true
		}
	}
	return occupied
}

func (c *Coordinator) hasResource(id string) bool {
	for _, res := range c.resources {
		if res.ID == id {
			return true
		}
	}
	return false
}
