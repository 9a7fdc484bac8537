package demodb

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vendaspro/demodb/pkg/constants"
	"github.com/vendaspro/demodb/pkg/logger"
)

// AuthEvent names an authentication state change.
type AuthEvent string

const (
	EventSignedIn  AuthEvent = "SIGNED_IN"
	EventSignedOut AuthEvent = "SIGNED_OUT"
)

// Credentials is the email/password pair the sign-in form submits.
type Credentials struct {
	Email    string
	Password string
}

// User is the fixed demo identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Cargo string `json:"cargo"`
}

// Session holds the demo identity plus a signed access token, shaped
// like the hosted client's session object.
type Session struct {
	User        *User
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// demoSigningKey signs demo tokens only. Nothing ever verifies them
// against a real backend.
var demoSigningKey = []byte("demodb-local-demo-key")

// demoUser matches the "Carlos Mendes" profile in the seed fixtures, so
// queries scoped to the signed-in user hit seeded rows.
var demoUser = User{
	ID:    "4be5a7a2-63bd-41f8-8f02-55f4f0ab6c02",
	Email: "demo@vendaspro.app",
	Nome:  "Carlos Mendes",
	Cargo: "especialista",
}

// Auth satisfies the hosted client's authentication surface without
// network I/O. Every operation succeeds with the same demo identity;
// the only failure is signing in with empty credentials.
type Auth struct {
	logger logger.Logger
}

func newAuth(log logger.Logger) *Auth {
	return &Auth{logger: log}
}

// SignInWithPassword accepts any non-empty email/password pair and
// returns the demo session. Empty email or password resolves with
// constants.ErrMissingCredentials and no session.
func (a *Auth) SignInWithPassword(ctx context.Context, creds Credentials) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if creds.Email == "" || creds.Password == "" {
		return nil, constants.ErrMissingCredentials
	}
	a.logger.Debug("demo sign-in", "email", creds.Email)
	return a.demoSession()
}

// SignUp always succeeds with the demo session; no account is created.
func (a *Auth) SignUp(ctx context.Context, creds Credentials) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.logger.Debug("demo sign-up", "email", creds.Email)
	return a.demoSession()
}

// SignOut always succeeds.
func (a *Auth) SignOut(ctx context.Context) error {
	return ctx.Err()
}

// Session returns the fixed demo session. There is no signed-out state.
func (a *Auth) Session(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.demoSession()
}

// AuthSubscription is the unsubscribe handle OnAuthStateChange returns.
// Unsubscribing is a no-op beyond being idempotent.
type AuthSubscription struct {
	once sync.Once
}

func (s *AuthSubscription) Unsubscribe() {
	s.once.Do(func() {})
}

// OnAuthStateChange fires fn exactly once with a SIGNED_IN event for the
// demo session, on its own goroutine, imitating the hosted client's
// initial state replay. No further events ever arrive.
func (a *Auth) OnAuthStateChange(fn func(event AuthEvent, session *Session)) *AuthSubscription {
	go func() {
		session, err := a.demoSession()
		if err != nil {
			a.logger.Error("demo session unavailable", "error", err)
			return
		}
		fn(EventSignedIn, session)
	}()
	return &AuthSubscription{}
}

func (a *Auth) demoSession() (*Session, error) {
	user := demoUser
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"cargo": user.Cargo,
		"iss":   "demodb",
		"exp":   expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(demoSigningKey)
	if err != nil {
		return nil, err
	}

	return &Session{
		User:        &user,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
