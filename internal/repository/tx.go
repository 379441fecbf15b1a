package repository

import "context"

// Tx defines the interface for transactional operations. Every composite
// economy operation runs inside exactly one Tx: all preconditions are
// checked and all mutations applied before Commit, so a failure at any step
// unwinds the whole call.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
