package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBays() []SelectedResource {
	// Intentionally out of order: assignment must sort by number.
	return []SelectedResource{
		{ID: "bay-2", Number: 2},
		{ID: "bay-1", Number: 1},
	}
}

func TestAutoAssign_SurplusStaysUnassigned(t *testing.T) {
	c := NewCoordinator([]Participant{
		{Name: "Alice"},
		{Name: "Bob"},
		{Name: "Carol"},
	}, twoBays())

	c.AutoAssign()

	got := c.Participants()
	assert.Equal(t, "bay-1", got[0].AssignedResourceID)
	assert.Equal(t, "bay-2", got[1].AssignedResourceID)
	assert.Empty(t, got[2].AssignedResourceID)
	assert.True(t, got[2].NeedsSplitTime)
	assert.InDelta(t, 2.0/3.0, c.Completion(), 1e-9)
}

func TestAutoAssign_HonorsPreferences(t *testing.T) {
	c := NewCoordinator([]Participant{
		{Name: "Alice"},
		{Name: "Bob", PreferredResourceID: "bay-1"},
	}, twoBays())

	c.AutoAssign()

	got := c.Participants()
	assert.Equal(t, "bay-2", got[0].AssignedResourceID)
	assert.Equal(t, "bay-1", got[1].AssignedResourceID)
}

func TestAutoAssign_IgnoresPreferenceOutsideSelection(t *testing.T) {
	c := NewCoordinator([]Participant{
		{Name: "Alice", PreferredResourceID: "bay-9"},
	}, twoBays())

	c.AutoAssign()

	assert.Equal(t, "bay-1", c.Participants()[0].AssignedResourceID)
}

func TestAutoAssign_Idempotent(t *testing.T) {
	c := NewCoordinator([]Participant{
		{Name: "Alice"},
		{Name: "Bob", PreferredResourceID: "bay-2"},
		{Name: "Carol"},
	}, twoBays())

	c.AutoAssign()
	first := c.Participants()

	c.AutoAssign()
	second := c.Participants()

	assert.Equal(t, first, second)
}

func TestAssign_EvictsPriorOccupant(t *testing.T) {
	c := NewCoordinator([]Participant{
		{Name: "Alice"},
		{Name: "Bob"},
	}, twoBays())

	c.AutoAssign()
	require.Equal(t, "bay-1", c.Participants()[0].AssignedResourceID)

	// Bob takes bay-1; Alice must drop to unassigned, never doubled.
	require.NoError(t, c.Assign(1, "bay-1"))

	got := c.Participants()
	assert.Empty(t, got[0].AssignedResourceID)
	assert.Equal(t, "bay-1", got[1].AssignedResourceID)
	assert.InDelta(t, 0.5, c.Completion(), 1e-9)
}

func TestAssign_Validation(t *testing.T) {
	c := NewCoordinator([]Participant{{Name: "Alice"}}, twoBays())

	assert.ErrorIs(t, c.Assign(5, "bay-1"), ErrUnknownParticipant)
	assert.ErrorIs(t, c.Assign(0, "bay-9"), ErrUnknownResource)
}

func TestUnassignAndCompletion(t *testing.T) {
	c := NewCoordinator([]Participant{
		{Name: "Alice"},
		{Name: "Bob"},
	}, twoBays())

	c.AutoAssign()
	require.NoError(t, c.Unassign(0))

	assert.InDelta(t, 0.5, c.Completion(), 1e-9)

	empty := NewCoordinator(nil, twoBays())
	assert.Zero(t, empty.Completion())
}
