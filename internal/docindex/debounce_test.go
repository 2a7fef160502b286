package docindex

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the debouncer and identity guard:
// - A burst of calls within the quiet interval delivers once with the last value
// - A second burst after the quiet interval delivers again
// - Cancel drops a pending delivery
// - The identity guard suppresses consecutive equal identities
// - Reset makes the next delivery fire even when the identity repeats

// deliveryRecorder collects debounced deliveries for assertion.
type deliveryRecorder struct {
	mu     sync.Mutex
	values []int
}

func (r *deliveryRecorder) record(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *deliveryRecorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.values...)
}

func TestDebouncer_BurstDeliversLastValue(t *testing.T) {
	t.Parallel()

	rec := &deliveryRecorder{}
	d := NewDebouncer(100*time.Millisecond, rec.record)

	d.Call(1)
	time.Sleep(20 * time.Millisecond)
	d.Call(2)
	time.Sleep(20 * time.Millisecond)
	d.Call(3)

	// Nothing fires while calls keep arriving within the quiet window.
	assert.Empty(t, rec.snapshot())

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{3}, rec.snapshot())
}

func TestDebouncer_SeparateBurstsDeliverSeparately(t *testing.T) {
	t.Parallel()

	rec := &deliveryRecorder{}
	d := NewDebouncer(50*time.Millisecond, rec.record)

	d.Call(1)
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	d.Call(2)
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, []int{1, 2}, rec.snapshot())
}

func TestDebouncer_CancelDropsPending(t *testing.T) {
	t.Parallel()

	rec := &deliveryRecorder{}
	d := NewDebouncer(50*time.Millisecond, rec.record)

	d.Call(1)
	d.Cancel()

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestIdentityGuard_SuppressesRepeats(t *testing.T) {
	t.Parallel()

	rec := &deliveryRecorder{}
	g := NewIdentityGuard(func(v int) string {
		if v < 10 {
			return "low"
		}
		return "high"
	}, rec.record)

	g.Deliver(1)  // low, fires
	g.Deliver(2)  // still low, suppressed
	g.Deliver(15) // high, fires
	g.Deliver(16) // still high, suppressed
	g.Deliver(3)  // back to low, fires

	assert.Equal(t, []int{1, 15, 3}, rec.snapshot())
}

func TestIdentityGuard_ResetForcesNextDelivery(t *testing.T) {
	t.Parallel()

	rec := &deliveryRecorder{}
	g := NewIdentityGuard(func(v int) string { return "same" }, rec.record)

	g.Deliver(1)
	g.Deliver(2) // suppressed
	g.Reset()
	g.Deliver(3) // fires despite equal identity

	assert.Equal(t, []int{1, 3}, rec.snapshot())
}
