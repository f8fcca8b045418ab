// Package api is the data access facade: the single boundary the
// presentation layer calls for records, statistics and authentication.
//
// Operations simulate a network round-trip by suspending for a configurable
// latency window before touching the store. The wait honors context
// cancellation, so the contract already matches what a real remote backend
// would need. State is never cached here; every call re-reads the store.
package api

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/kehindeadewusi/lendboard/internal/logging"
	"github.com/kehindeadewusi/lendboard/internal/mockdata"
	"github.com/kehindeadewusi/lendboard/internal/models"
	"github.com/kehindeadewusi/lendboard/internal/storage"
)

// DefaultLatency is the simulated round-trip applied to each operation
// unless overridden with WithLatency.
const DefaultLatency = 300 * time.Millisecond

// Fixed ratios behind UsersWithLoans and UsersWithSavings. The record has
// no loan or savings fields, so these are explicit approximations of the
// dashboard cards, not derived values.
const (
	loanRatio    = 0.45
	savingsRatio = 0.38
)

// Service is the facade surface consumed by the presentation layer.
type Service interface {
	// GetUsers returns the full collection, seeding it from the generator
	// on first read.
	GetUsers(ctx context.Context) ([]models.User, error)

	// GetUserByID returns the record with the given id, or ok=false. There
	// is no generation fallback on this path.
	GetUserByID(ctx context.Context, id string) (*models.User, bool, error)

	// UpdateUser replaces the stored record sharing u.Id; false when the id
	// is unknown or no collection exists.
	UpdateUser(ctx context.Context, u models.User) (bool, error)

	// GetDashboardStats derives the dashboard card values from the current
	// collection.
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)

	// Login validates the credential pair, mints a session token and
	// persists the session. Bad credentials are a result, not an error.
	Login(ctx context.Context, email, password string) (LoginResult, error)

	// Logout clears the session token and current-user identity.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a session token is persisted. It is
	// synchronous: the route guard calls it on every protected navigation.
	IsAuthenticated() bool

	// CurrentUser returns the logged-in email, for display only.
	CurrentUser() (string, bool)
}

type service struct {
	store     storage.Store
	log       logging.Logger
	gen       *mockdata.Generator
	seedCount int
	latency   time.Duration
	secret    []byte
	now       func() time.Time
}

var _ Service = (*service)(nil)

// Option configures the service.
type Option func(*service)

// WithSeedCount sets how many records the first read generates.
func WithSeedCount(n int) Option {
	return func(s *service) { s.seedCount = n }
}

// WithLatency sets the simulated round-trip delay. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(s *service) { s.latency = d }
}

// WithSigningSecret sets the HMAC secret used to mint session tokens.
func WithSigningSecret(secret []byte) Option {
	return func(s *service) { s.secret = secret }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithGenerator overrides the record generator, for tests.
func WithGenerator(g *mockdata.Generator) Option {
	return func(s *service) { s.gen = g }
}

// New returns a Service over the given store. Unless overridden, the seed
// size is mockdata.DefaultCount, latency is DefaultLatency and the token
// secret is random per process (tokens only need to be opaque; nothing
// verifies them remotely).
func New(store storage.Store, log logging.Logger, opts ...Option) Service {
	s := &service{
		store:     store,
		log:       log,
		gen:       mockdata.New(),
		seedCount: mockdata.DefaultCount,
		latency:   DefaultLatency,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.secret) == 0 {
		s.secret = make([]byte, 32)
		_, _ = rand.Read(s.secret)
	}
	return s
}

// wait suspends for the simulated round-trip, aborting early if ctx is
// cancelled.
func (s *service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) GetUsers(ctx context.Context) ([]models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	users, ok := s.store.GetUsers(ctx)
	if ok {
		return users, nil
	}

	// first run: seed the store and serve the generated collection
	users = s.gen.Generate(s.seedCount)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		s.log.Warn(ctx, "failed to persist seeded collection", "error", err)
	} else {
		s.log.Info(ctx, "collection seeded", "count", len(users))
	}
	return users, nil
}

func (s *service) GetUserByID(ctx context.Context, id string) (*models.User, bool, error) {
	if err := s.wait(ctx); err != nil {
		return nil, false, err
	}
	u, ok := s.store.GetUserByID(ctx, id)
	return u, ok, nil
}

func (s *service) UpdateUser(ctx context.Context, u models.User) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	return s.store.UpdateUser(ctx, u), nil
}

func (s *service) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	if err := s.wait(ctx); err != nil {
		return models.DashboardStats{}, err
	}

	users, err := s.GetUsers(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	active := 0
	for _, u := range users {
		if u.Status == models.StatusActive {
			active++
		}
	}

	total := len(users)
	return models.DashboardStats{
		TotalUsers:       total,
		ActiveUsers:      active,
		UsersWithLoans:   int(float64(total) * loanRatio),
		UsersWithSavings: int(float64(total) * savingsRatio),
	}, nil
}
