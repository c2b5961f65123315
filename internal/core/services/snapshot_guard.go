package services

import "sync"

// SnapshotGuard serialises full pipeline passes. Writers hold the write side
// across store mutation plus the reconciliation it triggers, readers
// (listing, summaries) hold the read side, so no reader ever observes a
// collection mid-reconciliation.
type SnapshotGuard struct {
	sync.RWMutex
}

// NewSnapshotGuard creates the guard shared by all services of one pipeline.
func NewSnapshotGuard() *SnapshotGuard {
	return &SnapshotGuard{}
}
