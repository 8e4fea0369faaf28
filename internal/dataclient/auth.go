package dataclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
	"github.com/natnael-haile/hireflow/internal/domain/entity"
)

// AuthEvent is a session state-change notification.
type AuthEvent string

const (
	AuthEventSignedIn  AuthEvent = "SIGNED_IN"
	AuthEventSignedOut AuthEvent = "SIGNED_OUT"
)

// invalidCredentials is the one message returned for both unknown email and
// wrong password, so callers cannot enumerate accounts.
const invalidCredentials = "invalid credentials"

// Session is the decoded live session.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Roles       []string  `json:"roles"`
}

// SignUpParams carries the sign-up credentials plus display attributes.
type SignUpParams struct {
	Email    string
	Password string
	Data     Record
}

type authOptions struct {
	tokens       contract.ITokenService
	tokenStore   contract.ITokenStore
	hasher       contract.IHasher
	validator    contract.IValidator
	pollInterval time.Duration
}

// Auth owns the current session token and the signed-in/signed-out state
// machine. The token is a single-writer/many-reader value: sign-in, sign-up
// and sign-out replace it atomically, everything else only reads it.
type Auth struct {
	client       *Client
	tokens       contract.ITokenService
	store        contract.ITokenStore
	hasher       contract.IHasher
	validator    contract.IValidator
	pollInterval time.Duration

	mu       sync.RWMutex
	token    string
	signedIn bool
	hydrated bool

	subMu       sync.Mutex
	subs        map[int]*AuthSubscription
	nextSubID   int
	pollStop    chan struct{}
	pollRunning bool
}

func newAuth(client *Client, opts authOptions) *Auth {
	return &Auth{
		client:       client,
		tokens:       opts.tokens,
		store:        opts.tokenStore,
		hasher:       opts.hasher,
		validator:    opts.validator,
		pollInterval: opts.pollInterval,
		subs:         make(map[int]*AuthSubscription),
	}
}

// currentToken returns the cached session token, loading it from the
// persistent slot on first use.
func (a *Auth) currentToken() string {
	a.mu.RLock()
	if a.hydrated {
		token := a.token
		a.mu.RUnlock()
		return token
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hydrated {
		return a.token
	}
	token, err := a.store.Get(context.Background())
	if err != nil && !errors.Is(err, contract.ErrTokenNotFound) {
		a.client.logger.Warnf("auth: failed to load persisted session token: %v", err)
	}
	a.token = token
	a.signedIn = a.verify(token) != nil
	a.hydrated = true
	return a.token
}

func (a *Auth) setToken(ctx context.Context, token string) *Error {
	if token != "" {
		if err := a.store.Set(ctx, token); err != nil {
			return wrapError(KindTransport, err, "failed to persist session token")
		}
	} else if err := a.store.Delete(ctx); err != nil && !errors.Is(err, contract.ErrTokenNotFound) {
		a.client.logger.Warnf("auth: failed to clear persisted session token: %v", err)
	}
	a.mu.Lock()
	a.token = token
	a.signedIn = token != ""
	a.hydrated = true
	a.mu.Unlock()
	return nil
}

// verify decodes a token, returning nil for empty, invalid or expired ones.
func (a *Auth) verify(token string) *Session {
	if token == "" {
		return nil
	}
	claims, err := a.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil
	}
	return &Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   claims.ExpiresAt,
		UserID:      claims.UserID,
		Email:       claims.Email,
		Roles:       claims.Roles,
	}
}

// SignUp creates a User, issues a session token and transitions to signed-in.
// Creating the Recruiter profile is a side effect owned by the caller.
func (a *Auth) SignUp(ctx context.Context, p SignUpParams) (*Session, *Error) {
	if err := a.validator.ValidateEmail(p.Email); err != nil {
		return nil, wrapError(KindValidation, err, "invalid email")
	}
	if err := a.validator.ValidatePasswordStrength(p.Password); err != nil {
		return nil, wrapError(KindValidation, err, "weak password")
	}

	existing := a.client.Table("users").Select("id").Eq("email", p.Email).MaybeSingle(ctx)
	if existing.Error != nil {
		return nil, existing.Error
	}
	if existing.Row() != nil {
		return nil, newError(KindAuth, "user already registered")
	}

	hash, err := a.hasher.HashPassword(p.Password)
	if err != nil {
		return nil, wrapError(KindAuth, err, "failed to process password")
	}

	rec := Record{
		"email":        p.Email,
		"passwordHash": hash,
		"roles":        []string{string(entity.UserRoleRecruiter)},
	}
	if name, ok := p.Data["fullName"].(string); ok {
		rec["fullName"] = name
	}
	res := a.client.Table("users").Insert(rec).Exec(ctx)
	if res.Error != nil {
		if res.Error.Kind == KindConflict {
			return nil, newError(KindAuth, "user already registered")
		}
		return nil, res.Error
	}
	inserted, ok := res.Data.([]Record)
	if !ok || len(inserted) == 0 {
		return nil, newError(KindTransport, "insert returned no record")
	}
	return a.issueSession(ctx, inserted[0])
}

// SignInWithPassword verifies the credential hash and issues a token. Unknown
// email and wrong password are indistinguishable to the caller.
func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (*Session, *Error) {
	res := a.client.Table("users").Select().Eq("email", email).MaybeSingle(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	user := res.Row()
	if user == nil {
		return nil, newError(KindAuth, invalidCredentials)
	}
	hash, _ := user["passwordHash"].(string)
	if err := a.hasher.ComparePasswordHash(password, hash); err != nil {
		return nil, newError(KindAuth, invalidCredentials)
	}
	return a.issueSession(ctx, user)
}

// SignInWithOAuthEmail issues a session for an email already verified by an
// OAuth provider. The caller is responsible for having completed the
// provider's code exchange.
func (a *Auth) SignInWithOAuthEmail(ctx context.Context, email string) (*Session, *Error) {
	res := a.client.Table("users").Select().Eq("email", email).MaybeSingle(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	user := res.Row()
	if user == nil {
		return nil, newError(KindAuth, invalidCredentials)
	}
	return a.issueSession(ctx, user)
}

func (a *Auth) issueSession(ctx context.Context, user Record) (*Session, *Error) {
	id, _ := user["id"].(string)
	email, _ := user["email"].(string)
	roles := toStringSlice(user["roles"])
	token, err := a.tokens.GenerateAccessToken(id, email, roles)
	if err != nil {
		return nil, wrapError(KindAuth, err, "failed to issue session token")
	}
	if serr := a.setToken(ctx, token); serr != nil {
		return nil, serr
	}
	session := a.verify(token)
	if session == nil {
		return nil, newError(KindAuth, "issued token failed verification")
	}
	a.emit(AuthEventSignedIn, session)
	return session, nil
}

// SignOut discards the token unconditionally.
func (a *Auth) SignOut(ctx context.Context) *Error {
	a.mu.RLock()
	wasSignedIn := a.signedIn
	a.mu.RUnlock()
	if err := a.setToken(ctx, ""); err != nil {
		return err
	}
	if wasSignedIn {
		a.emit(AuthEventSignedOut, nil)
	}
	return nil
}

// GetSession decodes the held token. An invalid or expired token is silently
// discarded; the caller just sees a nil session.
func (a *Auth) GetSession(ctx context.Context) (*Session, *Error) {
	token := a.currentToken()
	if token == "" {
		return nil, nil
	}
	session := a.verify(token)
	if session == nil {
		if err := a.setToken(ctx, ""); err != nil {
			a.client.logger.Warnf("auth: failed to discard stale token: %v", err)
		}
		return nil, nil
	}
	return session, nil
}

// GetUser fetches the user row behind the current session, or nil when
// signed out. A user deleted underneath a live token also reads as signed out.
func (a *Auth) GetUser(ctx context.Context) (Record, *Error) {
	session, err := a.GetSession(ctx)
	if err != nil || session == nil {
		return nil, err
	}
	res := a.client.Table("users").Select().Eq("id", session.UserID).MaybeSingle(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	user := res.Row()
	if user == nil {
		if serr := a.setToken(ctx, ""); serr != nil {
			a.client.logger.Warnf("auth: failed to discard orphaned token: %v", serr)
		}
		return nil, nil
	}
	delete(user, "passwordHash")
	return user, nil
}

// AuthSubscription is a registered state-change listener.
type AuthSubscription struct {
	auth *Auth
	id   int
	fn   func(AuthEvent, *Session)
	once sync.Once
}

// Unsubscribe removes the listener. Safe to call more than once. The poll
// timer stops with the last listener.
func (s *AuthSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.auth.subMu.Lock()
		delete(s.auth.subs, s.id)
		if len(s.auth.subs) == 0 {
			s.auth.stopPollerLocked()
		}
		s.auth.subMu.Unlock()
	})
}

// OnAuthStateChange registers a listener for SIGNED_IN/SIGNED_OUT events.
// Local transitions are delivered immediately; a token replaced by another
// process is observed within one poll interval.
func (a *Auth) OnAuthStateChange(fn func(AuthEvent, *Session)) *AuthSubscription {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	a.nextSubID++
	sub := &AuthSubscription{auth: a, id: a.nextSubID, fn: fn}
	a.subs[sub.id] = sub
	if !a.pollRunning {
		a.pollStop = make(chan struct{})
		a.pollRunning = true
		go a.poll(a.pollStop)
	}
	return sub
}

func (a *Auth) emit(event AuthEvent, session *Session) {
	a.mu.Lock()
	a.signedIn = event == AuthEventSignedIn
	a.mu.Unlock()
	a.subMu.Lock()
	listeners := make([]func(AuthEvent, *Session), 0, len(a.subs))
	for _, sub := range a.subs {
		listeners = append(listeners, sub.fn)
	}
	a.subMu.Unlock()
	for _, fn := range listeners {
		fn(event, session)
	}
}

func (a *Auth) poll(stop chan struct{}) {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a.pollOnce()
		}
	}
}

// pollOnce re-reads the persistent slot so a sign-in or sign-out performed by
// another process sharing the store is observed here, with staleness bounded
// by the poll interval.
func (a *Auth) pollOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), a.pollInterval)
	defer cancel()
	token, err := a.store.Get(ctx)
	if err != nil && !errors.Is(err, contract.ErrTokenNotFound) {
		a.client.logger.Warnf("auth: session poll failed: %v", err)
		return
	}
	session := a.verify(token)

	a.mu.Lock()
	wasSignedIn := a.signedIn
	a.token = token
	a.hydrated = true
	a.mu.Unlock()

	if session != nil && !wasSignedIn {
		a.emit(AuthEventSignedIn, session)
	} else if session == nil && wasSignedIn {
		a.emit(AuthEventSignedOut, nil)
	}
}

func (a *Auth) stopPollerLocked() {
	if a.pollRunning {
		close(a.pollStop)
		a.pollRunning = false
	}
}

func (a *Auth) close() {
	a.subMu.Lock()
	a.subs = make(map[int]*AuthSubscription)
	a.stopPollerLocked()
	a.subMu.Unlock()
}

func toStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
