package drive

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"setlister/internal/config"
	"setlister/internal/logging"
	"setlister/internal/services"
)

// AuthorizeFunc performs an interactive authorization and returns the granted token.
type AuthorizeFunc func(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error)

// TokenManagerOption customises TokenManager construction.
type TokenManagerOption func(*TokenManager)

// WithTokenStore injects a custom persistence layer.
func WithTokenStore(store TokenStore) TokenManagerOption {
	return func(m *TokenManager) {
		m.store = store
	}
}

// WithAuthorizer overrides the interactive authorization flow (used in tests).
func WithAuthorizer(authorize AuthorizeFunc) TokenManagerOption {
	return func(m *TokenManager) {
		m.authorize = authorize
	}
}

// WithOAuthConfig injects a prebuilt OAuth client configuration, bypassing the
// client-secret file.
func WithOAuthConfig(conf *oauth2.Config) TokenManagerOption {
	return func(m *TokenManager) {
		m.oauth = conf
	}
}

// TokenManager produces Drive token sources, reusing the cached token when it
// is valid or refreshable and falling back to the interactive flow otherwise.
type TokenManager struct {
	cfg    *config.Config
	logger *slog.Logger

	oauth     *oauth2.Config
	store     TokenStore
	authorize AuthorizeFunc
}

// NewTokenManager builds a TokenManager from the application configuration.
// The client-secret file is read eagerly so a missing or malformed file fails
// before any network call.
func NewTokenManager(cfg *config.Config, logger *slog.Logger, opts ...TokenManagerOption) (*TokenManager, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	mgr := &TokenManager{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "auth"),
	}
	for _, opt := range opts {
		opt(mgr)
	}

	if mgr.store == nil {
		mgr.store = NewFileTokenStore(cfg.Auth.TokenFile)
	}
	if mgr.authorize == nil {
		mgr.authorize = runLoopbackFlow
	}
	if mgr.oauth == nil {
		data, err := os.ReadFile(cfg.Auth.CredentialsFile)
		if err != nil {
			return nil, services.Wrap(services.ErrAuthorization, "auth", "read client secret", cfg.Auth.CredentialsFile, err)
		}
		conf, err := google.ConfigFromJSON(data, Scope)
		if err != nil {
			return nil, services.Wrap(services.ErrAuthorization, "auth", "parse client secret", cfg.Auth.CredentialsFile, err)
		}
		mgr.oauth = conf
	}

	return mgr, nil
}

// TokenSource returns a token source backed by the cached token, running the
// interactive flow first when no usable token exists. Refreshed tokens are
// written back to the store.
func (m *TokenManager) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	if !usableToken(token) {
		m.logger.Info("no cached authorization, starting interactive flow")
		token, err = m.authorize(ctx, m.oauth)
		if err != nil {
			return nil, services.Wrap(services.ErrAuthorization, "auth", "interactive flow", "", err)
		}
		if err := m.store.Save(token); err != nil {
			return nil, err
		}
		m.logger.Info("authorization complete, token cached")
	}

	return &savingTokenSource{
		source: m.oauth.TokenSource(ctx, token),
		store:  m.store,
		last:   token,
	}, nil
}

// Authorize forces the interactive flow and caches the result, discarding any
// existing token.
func (m *TokenManager) Authorize(ctx context.Context) error {
	token, err := m.authorize(ctx, m.oauth)
	if err != nil {
		return services.Wrap(services.ErrAuthorization, "auth", "interactive flow", "", err)
	}
	if err := m.store.Save(token); err != nil {
		return err
	}
	m.logger.Info("authorization complete, token cached")
	return nil
}

// Status summarizes the cached token for the auth status command.
type Status struct {
	HasToken    bool
	Valid       bool
	Refreshable bool
	Expiry      time.Time
}

// Status reports the state of the cached token without touching the network.
func (m *TokenManager) Status() (Status, error) {
	token, err := m.store.Load()
	if err != nil {
		return Status{}, err
	}
	if token == nil {
		return Status{}, nil
	}
	return Status{
		HasToken:    true,
		Valid:       token.Valid(),
		Refreshable: token.RefreshToken != "",
		Expiry:      token.Expiry,
	}, nil
}

// usableToken reports whether the cached token can serve requests, either
// directly or through a refresh.
func usableToken(token *oauth2.Token) bool {
	return token != nil && (token.Valid() || token.RefreshToken != "")
}

// savingTokenSource persists refreshed tokens so the next run skips the
// interactive flow even after the access token expires.
type savingTokenSource struct {
	mu     sync.Mutex
	source oauth2.TokenSource
	store  TokenStore
	last   *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.source.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || token.AccessToken != s.last.AccessToken {
		if err := s.store.Save(token); err != nil {
			return nil, err
		}
		s.last = token
	}
	return token, nil
}
