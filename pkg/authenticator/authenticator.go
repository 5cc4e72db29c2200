package authenticator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/otpserver/pkg/clock"
	"github.com/dmitrymomot/otpserver/pkg/logger"
	"github.com/dmitrymomot/otpserver/pkg/totp"
)

// SecretStore is the part of secretstore.Store the authenticator relies on.
type SecretStore interface {
	LoadOrCreate(ctx context.Context) (totp.Secret, error)
	Rotate(ctx context.Context) (totp.Secret, error)
}

// Authenticator binds one shared secret to a TOTP engine. It is safe for concurrent
// use: a rotation in one goroutine and code rendering in another never race.
type Authenticator struct {
	store  SecretStore
	engine *totp.TOTP
	clock  clock.Clock
	log    *slog.Logger

	mu     sync.RWMutex
	secret totp.Secret
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithEngine replaces the default SHA1, 6 digit, 30 second engine.
func WithEngine(engine *totp.TOTP) Option {
	return func(a *Authenticator) {
		if engine != nil {
			a.engine = engine
		}
	}
}

// WithClock sets the time source used by Code and NextRefresh.
func WithClock(c clock.Clock) Option {
	return func(a *Authenticator) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithLogger sets the logger for secret lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(a *Authenticator) {
		if log != nil {
			a.log = log
		}
	}
}

// Open loads the stored secret, creating it on first use, and returns an Authenticator
// bound to it.
func Open(ctx context.Context, store SecretStore, opts ...Option) (*Authenticator, error) {
	a := &Authenticator{
		store:  store,
		engine: totp.New(),
		clock:  clock.New(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("authenticator"))

	if _, err := a.LoadOrCreateSecret(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// LoadOrCreateSecret re-reads the store, creating a secret if none exists, and binds
// the result.
func (a *Authenticator) LoadOrCreateSecret(ctx context.Context) (totp.Secret, error) {
	secret, err := a.store.LoadOrCreate(ctx)
	if err != nil {
		a.log.ErrorContext(ctx, "failed to load secret", logger.Error(err))
		return nil, err
	}
	a.bind(secret)
	return secret.Clone(), nil
}

// RotateSecret replaces the stored secret with a new random one and binds it. Codes
// and provisioning URIs issued before the rotation stop matching.
func (a *Authenticator) RotateSecret(ctx context.Context) (totp.Secret, error) {
	secret, err := a.store.Rotate(ctx)
	if err != nil {
		a.log.ErrorContext(ctx, "failed to rotate secret", logger.Error(err))
		return nil, err
	}
	a.bind(secret)
	a.log.InfoContext(ctx, "secret rotated", logger.Fingerprint(secret))
	return secret.Clone(), nil
}

func (a *Authenticator) bind(secret totp.Secret) {
	a.mu.Lock()
	a.secret = secret.Clone()
	a.mu.Unlock()
}

// Secret returns a copy of the bound secret.
func (a *Authenticator) Secret() totp.Secret {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.secret.Clone()
}

// Engine returns the TOTP configuration in use.
func (a *Authenticator) Engine() *totp.TOTP {
	return a.engine
}

// CurrentCode returns the code valid at the given Unix time.
func (a *Authenticator) CurrentCode(unix uint64) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine.CodeAt(a.secret, unix)
}

// Reading is a code together with the step it belongs to, taken from one clock read.
type Reading struct {
	Code      string
	Counter   uint64
	Remaining time.Duration
}

// Current returns the code valid now with its step counter and remaining validity.
func (a *Authenticator) Current() Reading {
	now := a.clock.Now()
	unix := totp.UnixTime(now)
	return Reading{
		Code:      a.CurrentCode(unix),
		Counter:   a.engine.Counter(unix),
		Remaining: a.untilNextStep(now),
	}
}

// Code returns the code valid now and how long it stays valid.
func (a *Authenticator) Code() (string, time.Duration) {
	r := a.Current()
	return r.Code, r.Remaining
}

// ProvisioningURI returns the otpauth:// URI for the bound secret.
func (a *Authenticator) ProvisioningURI(label, issuer string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine.ProvisioningURI(a.secret, label, issuer)
}

// TimeRemaining returns the whole seconds left in the step containing unix, in [1, period].
func (a *Authenticator) TimeRemaining(unix uint64) uint64 {
	return a.engine.Remaining(unix)
}

// NextRefresh returns the delay until the next step boundary, for schedulers that
// re-render the code exactly when it changes.
func (a *Authenticator) NextRefresh() time.Duration {
	return a.untilNextStep(a.clock.Now())
}

func (a *Authenticator) untilNextStep(now time.Time) time.Duration {
	remaining := a.engine.Remaining(totp.UnixTime(now))
	return time.Duration(remaining)*time.Second - time.Duration(now.Nanosecond())
}
