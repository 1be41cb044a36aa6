package favorites

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingStore struct {
	mu     sync.Mutex
	writes []bool
	fail   int // fail this many writes before succeeding
}

func (s *recordingStore) Favorites(ctx context.Context, customerRef, locationID string) (map[string]bool, error) {
	return nil, nil
}

func (s *recordingStore) SetFavorite(ctx context.Context, customerRef, locationID, resourceID string, starred bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail > 0 {
		s.fail--
		return errors.New("store unavailable")
	}
	s.writes = append(s.writes, starred)
	return nil
}

func (s *recordingStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

func (s *recordingStore) lastWrite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[len(s.writes)-1]
}

func TestToggle_CoalescesIntoSingleWrite(t *testing.T) {
	store := &recordingStore{}
	toggler := NewToggler(store, 100*time.Millisecond, zap.NewNop())

	// on, off, on within the window: exactly one write, final state on.
	toggler.Toggle("cust-1", "loc-1", "bay-1", true)
	toggler.Toggle("cust-1", "loc-1", "bay-1", false)
	toggler.Toggle("cust-1", "loc-1", "bay-1", true)

	assert.Eventually(t, func() bool {
		return store.writeCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, store.lastWrite())

	// No further writes sneak in afterwards.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, store.writeCount())
}

func TestToggle_DistinctBaysWriteIndependently(t *testing.T) {
	store := &recordingStore{}
	toggler := NewToggler(store, 50*time.Millisecond, zap.NewNop())

	toggler.Toggle("cust-1", "loc-1", "bay-1", true)
	toggler.Toggle("cust-1", "loc-1", "bay-2", true)

	assert.Eventually(t, func() bool {
		return store.writeCount() == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestToggle_RetriesThenSucceeds(t *testing.T) {
	store := &recordingStore{fail: 2}
	toggler := NewToggler(store, 10*time.Millisecond, zap.NewNop())

	toggler.Toggle("cust-1", "loc-1", "bay-1", true)

	assert.Eventually(t, func() bool {
		return store.writeCount() == 1
	}, 10*time.Second, 20*time.Millisecond)
}

func TestFlush_WritesPendingImmediately(t *testing.T) {
	store := &recordingStore{}
	toggler := NewToggler(store, time.Hour, zap.NewNop())

	toggler.Toggle("cust-1", "loc-1", "bay-1", true)
	toggler.Flush()

	assert.Equal(t, 1, store.writeCount())
}

func TestRedisStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)
	ctx := context.Background()

	mock.ExpectSAdd("favorites:cust-1:loc-1", "bay-2").SetVal(1)
	require.NoError(t, store.SetFavorite(ctx, "cust-1", "loc-1", "bay-2", true))

	mock.ExpectSRem("favorites:cust-1:loc-1", "bay-2").SetVal(1)
	require.NoError(t, store.SetFavorite(ctx, "cust-1", "loc-1", "bay-2", false))

	mock.ExpectSMembers("favorites:cust-1:loc-1").SetVal([]string{"bay-1", "bay-3"})
	got, err := store.Favorites(ctx, "cust-1", "loc-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"bay-1": true, "bay-3": true}, got)

	require.NoError(t, mock.ExpectationsWereMet())
}
