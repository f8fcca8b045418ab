// Package storage is the durable local store behind the dashboard: the user
// collection, the auth token and the current-user email, each in its own
// key-scoped slot.
//
// The read contract distinguishes "never saved" from "legitimately empty":
// lookups return a value together with an ok flag, and ok is false when the
// slot was never written. Underlying storage faults (I/O errors, corrupt
// payloads) are caught here and surfaced the same way — as absent or false
// results — so callers never deal with raw driver errors on the read path.
package storage

import (
	"context"

	"github.com/kehindeadewusi/lendboard/internal/models"
)

// Store is the single owner of persisted state. The facade and the query
// engine never retain copies; every read goes back through a Store.
type Store interface {
	// SaveUsers serializes the full collection as a single unit.
	SaveUsers(ctx context.Context, users []models.User) error
	// GetUsers returns the stored collection. ok is false when no
	// collection has ever been saved (absent, not empty).
	GetUsers(ctx context.Context) (users []models.User, ok bool)
	// GetUserByID scans the stored collection for a matching id.
	GetUserByID(ctx context.Context, id string) (*models.User, bool)
	// UpdateUser replaces the stored record sharing u.Id. It returns false
	// when no collection exists or the id is unknown; it never inserts.
	UpdateUser(ctx context.Context, u models.User) bool

	SetAuthToken(ctx context.Context, token string) error
	GetAuthToken(ctx context.Context) (string, bool)
	RemoveAuthToken(ctx context.Context) error

	SetCurrentUser(ctx context.Context, email string) error
	GetCurrentUser(ctx context.Context) (string, bool)
	ClearCurrentUser(ctx context.Context) error

	// ClearAll resets every slot to absent.
	ClearAll(ctx context.Context) error

	Close() error
}
