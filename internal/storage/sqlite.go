package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/kehindeadewusi/lendboard/internal/dbx"
	"github.com/kehindeadewusi/lendboard/internal/logging"
	"github.com/kehindeadewusi/lendboard/internal/models"
	"github.com/kehindeadewusi/lendboard/internal/storage/migrations"
)

// Slot keys. One key per logical namespace, mirroring the three keys of the
// dashboard's origin-scoped storage.
const (
	usersKey       = "lendboard_users"
	authTokenKey   = "lendboard_auth_token"
	currentUserKey = "lendboard_current_user"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store over a single kv table in a local sqlite
// database. The user collection is stored as one JSON array under usersKey.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (or creates) the database at dsn, applies migrations and
// returns a ready store. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, dsn string, log logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, log: log}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// get reads the raw value stored under key. ok is false when the key is
// absent or the read failed.
func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.log.Error(ctx, "kv read failed", "key", key, "error", err)
		return nil, false
	}
	return value, true
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) SaveUsers(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize users: %w", err)
	}
	return s.set(ctx, s.db, usersKey, data)
}

func (s *SQLiteStore) GetUsers(ctx context.Context) ([]models.User, bool) {
	data, ok := s.get(ctx, usersKey)
	if !ok {
		return nil, false
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		// corrupt payload reads as absent, per the store contract
		s.log.Error(ctx, "stored user collection is corrupt", "error", err)
		return nil, false
	}
	if users == nil {
		users = []models.User{}
	}
	return users, true
}

func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, bool) {
	users, ok := s.GetUsers(ctx)
	if !ok {
		return nil, false
	}
	for i := range users {
		if users[i].Id == id {
			return &users[i], true
		}
	}
	return nil, false
}

// UpdateUser rewrites the full collection with the matching record replaced.
// The read-modify-write runs in one transaction so a partial write never
// lands in the kv table.
func (s *SQLiteStore) UpdateUser(ctx context.Context, u models.User) bool {
	users, ok := s.GetUsers(ctx)
	if !ok {
		return false
	}

	found := false
	for i := range users {
		if users[i].Id == u.Id {
			users[i] = u
			found = true
			break
		}
	}
	if !found {
		return false
	}

	data, err := json.Marshal(users)
	if err != nil {
		s.log.Error(ctx, "failed to serialize users", "error", err)
		return false
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.set(ctx, tx, usersKey, data)
	})
	if err != nil {
		s.log.Error(ctx, "failed to update user", "id", u.Id, "error", err)
		return false
	}
	return true
}

func (s *SQLiteStore) SetAuthToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, authTokenKey, []byte(token))
}

func (s *SQLiteStore) GetAuthToken(ctx context.Context) (string, bool) {
	v, ok := s.get(ctx, authTokenKey)
	if !ok {
		return "", false
	}
	return string(v), true
}

func (s *SQLiteStore) RemoveAuthToken(ctx context.Context) error {
	return s.delete(ctx, authTokenKey)
}

func (s *SQLiteStore) SetCurrentUser(ctx context.Context, email string) error {
	return s.set(ctx, s.db, currentUserKey, []byte(email))
}

func (s *SQLiteStore) GetCurrentUser(ctx context.Context) (string, bool) {
	v, ok := s.get(ctx, currentUserKey)
	if !ok {
		return "", false
	}
	return string(v), true
}

func (s *SQLiteStore) ClearCurrentUser(ctx context.Context) error {
	return s.delete(ctx, currentUserKey)
}

func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	for _, key := range []string{usersKey, authTokenKey, currentUserKey} {
		if err := s.delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
