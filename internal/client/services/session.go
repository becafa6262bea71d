// Package services contains the application services of the SkillSync CLI.
// This file defines the session service: the state machine that owns the
// bearer token and cached user record, restores them at startup, and keeps
// memory and the durable store in step.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/skillsync/skillsync/internal/client/api"
	"github.com/skillsync/skillsync/internal/client/models"
	"github.com/skillsync/skillsync/internal/client/repositories/session"
	"github.com/skillsync/skillsync/internal/client/token"
	"github.com/skillsync/skillsync/internal/dbx"
	"github.com/skillsync/skillsync/internal/logging"
)

// ErrOperationInFlight is returned when Bootstrap/Login/Logout is called
// while another session-mutating operation is still running. Overlapping
// calls are rejected rather than queued so partial writes can never
// interleave.
var ErrOperationInFlight = errors.New("session operation already in flight")

// State is the observable lifecycle phase of the session.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateBootstrapping State = "bootstrapping"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Session owns the client's authentication state: the bearer token and the
// cached user record, in memory and mirrored to the durable store.
//
// Contract:
//   - Bootstrap runs once at startup and resolves to exactly one of
//     Authenticated or Anonymous.
//   - Login adopts token+user atomically; a failed login leaves the prior
//     session untouched.
//   - Logout clears memory and store and is idempotent.
//   - Session-mutating operations are mutually exclusive; overlap yields
//     ErrOperationInFlight.
type Session interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, creds api.Credentials) error
	Register(ctx context.Context, u api.NewUser) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.UserPatch) error
	IsAuthenticated() bool
	Loading() bool
	State() State
	Token() string
	CurrentUser() *models.User
}

// sessionService is the concrete Session backed by the API client and the
// local session database.
type sessionService struct {
	client api.Client
	db     *sql.DB
	repo   session.Repository
	log    logging.Logger

	mu    sync.Mutex
	busy  bool
	state State
	token string
	user  *models.User
}

// NewSessionService constructs a Session bound to the given API client and
// session database.
func NewSessionService(client api.Client, db *sql.DB, log logging.Logger) Session {
	return &sessionService{
		client: client,
		db:     db,
		repo:   session.NewSQLiteRepository(db),
		log:    log,
		state:  StateUninitialized,
	}
}

// begin marks a session-mutating operation as running, rejecting overlap.
func (s *sessionService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrOperationInFlight
	}
	s.busy = true
	return nil
}

func (s *sessionService) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *sessionService) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Bootstrap reconstructs the session from the durable store: adopt the
// stored token if it is still locally valid, prefer the cached user record
// and fetch it from the backend otherwise, then confirm the token with the
// backend. Any failure along the way degrades to Anonymous and clears the
// store; Bootstrap itself only errors when another operation is in flight.
func (s *sessionService) Bootstrap(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	s.setState(StateBootstrapping)

	stored, err := s.repo.Get(ctx, session.KeyToken)
	if err != nil || len(stored) == 0 || !token.IsValid(string(stored)) {
		if err != nil {
			s.log.Warn(ctx, "session store unreadable", "err", err)
		}
		s.reset(ctx)
		return nil
	}
	tok := string(stored)

	user := s.storedUser(ctx)
	if user == nil {
		s.mu.Lock()
		s.token = tok // CurrentUser needs the bearer header
		s.mu.Unlock()

		user, err = s.client.CurrentUser(ctx)
		if err != nil {
			s.log.Info(ctx, "bootstrap: profile fetch failed", "err", err)
			s.reset(ctx)
			return nil
		}
		if err := s.persistUser(ctx, user); err != nil {
			s.log.Warn(ctx, "bootstrap: persisting profile failed", "err", err)
		}
	}

	s.mu.Lock()
	s.token = tok
	s.user = user
	s.mu.Unlock()

	// The local expiry check can be stale; let the backend have the last word.
	if err := s.client.ValidateToken(ctx); err != nil {
		s.log.Info(ctx, "bootstrap: backend rejected stored token", "err", err)
		s.reset(ctx)
		return nil
	}

	s.setState(StateAuthenticated)
	s.log.Info(ctx, "session restored", "email", user.Email)
	return nil
}

// storedUser loads the cached user record, treating a missing or corrupt
// entry as absent so bootstrap falls back to a remote fetch.
func (s *sessionService) storedUser(ctx context.Context) *models.User {
	raw, err := s.repo.Get(ctx, session.KeyUser)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "cached user record corrupt, refetching", "err", err)
		return nil
	}
	return &u
}

// Login authenticates against the backend and, on success, adopts and
// persists the returned token and user together. On failure the session is
// exactly as it was before the call.
func (s *sessionService) Login(ctx context.Context, creds api.Credentials) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	res, err := s.client.SignIn(ctx, creds)
	if err != nil {
		return err
	}
	if res.Token == "" || res.User == nil {
		return fmt.Errorf("sign-in response missing token or user")
	}

	if err := s.persistSession(ctx, res.Token, res.User); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.token = res.Token
	s.user = res.User
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.log.Info(ctx, "login successful", "email", res.User.Email)
	return nil
}

// Register creates an account. Per the backend contract it does not sign
// the caller in, so the session is never touched here.
func (s *sessionService) Register(ctx context.Context, u api.NewUser) error {
	return s.client.SignUp(ctx, u)
}

// Logout unconditionally clears the in-memory session and the durable
// store. Calling it on an already-anonymous session is a no-op.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	s.reset(ctx)
	s.log.Info(ctx, "logged out")
	return nil
}

// UpdateProfile shallow-merges the patch onto the cached user record and
// persists the result. Without an active session this is a silent no-op.
func (s *sessionService) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	if s.user == nil || s.token == "" {
		s.mu.Unlock()
		return nil
	}
	merged := s.user.Merge(patch)
	s.user = &merged
	s.mu.Unlock()

	return s.persistUser(ctx, &merged)
}

// IsAuthenticated reports whether a locally valid token and a user record
// are both present.
func (s *sessionService) IsAuthenticated() bool {
	s.mu.Lock()
	tok, user := s.token, s.user
	s.mu.Unlock()
	return tok != "" && user != nil && token.IsValid(tok)
}

// Loading is true only while the startup bootstrap is running.
func (s *sessionService) Loading() bool {
	return s.State() == StateBootstrapping
}

func (s *sessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the active bearer token, or "" when anonymous. Wired into
// the API client as its token source.
func (s *sessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// CurrentUser returns a copy of the cached user record, or nil.
func (s *sessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Skills = append([]string(nil), s.user.Skills...)
	return &u
}

// persistSession writes token and user to the store in one transaction so
// a crash can never leave one without the other.
func (s *sessionService) persistSession(ctx context.Context, tok string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyToken, []byte(tok)); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyUser, raw)
	})
}

func (s *sessionService) persistUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo.Set(ctx, session.KeyUser, raw)
}

// reset clears memory and the durable store and lands in Anonymous.
func (s *sessionService) reset(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "clearing session store failed", "err", err)
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
	s.mu.Unlock()
}
