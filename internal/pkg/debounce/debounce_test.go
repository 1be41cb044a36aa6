package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDo_CoalescesBurstIntoOneCall(t *testing.T) {
	d := New(50 * time.Millisecond)

	var calls int32
	var last int32

	// Three rapid schedules for the same key: only the final one should run.
	for i := 1; i <= 3; i++ {
		v := int32(i)
		d.Do("fav", func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, v)
		})
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(3), atomic.LoadInt32(&last))
	assert.Equal(t, 0, d.Pending())
}

func TestDo_IndependentKeys(t *testing.T) {
	d := New(20 * time.Millisecond)

	var calls int32
	d.Do("a", func() { atomic.AddInt32(&calls, 1) })
	d.Do("b", func() { atomic.AddInt32(&calls, 1) })

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDo_ZeroWindowRunsSynchronously(t *testing.T) {
	d := New(0)

	ran := false
	d.Do("k", func() { ran = true })
	assert.True(t, ran)
}

func TestFlush(t *testing.T) {
	d := New(time.Hour)

	var calls int32
	d.Do("a", func() { atomic.AddInt32(&calls, 1) })
	d.Do("b", func() { atomic.AddInt32(&calls, 1) })
	assert.Equal(t, 2, d.Pending())

	d.Flush()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 0, d.Pending())
}
