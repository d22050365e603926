package metrics

import "sync/atomic"

// InMemoryRecorder implements Recorder with process-local counters.
// Used by tests and local debugging.
type InMemoryRecorder struct {
	created atomic.Int64
	updated atomic.Int64
	deleted atomic.Int64
}

// NewInMemory returns a Recorder backed by in-process counters.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// IncUserCreated increments the created counter.
func (m *InMemoryRecorder) IncUserCreated() { m.created.Add(1) }

// IncUserUpdated increments the updated counter.
func (m *InMemoryRecorder) IncUserUpdated() { m.updated.Add(1) }

// IncUserDeleted increments the deleted counter.
func (m *InMemoryRecorder) IncUserDeleted() { m.deleted.Add(1) }

// Snapshot holds a point-in-time view of the counters.
type Snapshot struct {
	UsersCreated int64
	UsersUpdated int64
	UsersDeleted int64
}

// Snapshot returns the current counter values.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated: m.created.Load(),
		UsersUpdated: m.updated.Load(),
		UsersDeleted: m.deleted.Load(),
	}
}
