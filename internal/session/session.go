package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"brickset/client/internal/request"
	"brickset/client/internal/response"
	"brickset/client/internal/transport"

	log "github.com/sirupsen/logrus"
)

const formContentType = "application/x-www-form-urlencoded"

// ErrNotAuthenticated is returned when an operation needs a user hash and the
// session has none.
var ErrNotAuthenticated = errors.New("brickset: not authenticated")

// HTTPStatusError reports a non-2xx response. The body is kept verbatim.
type HTTPStatusError struct {
	Method     string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: unexpected HTTP status %s", e.Method, e.Status)
}

// Session binds an API key to a transport and tracks at most one user hash.
// It is safe for concurrent use.
type Session struct {
	transport transport.Transport
	apiKey    string
	endpoint  string

	mu       sync.RWMutex
	userHash string
}

// New returns a logged-out session. An empty endpoint selects request.Endpoint.
func New(t transport.Transport, apiKey, endpoint string) *Session {
	if endpoint == "" {
		endpoint = request.Endpoint
	}

	return &Session{
		transport: t,
		apiKey:    apiKey,
		endpoint:  endpoint,
	}
}

func execute[T any](ctx context.Context, s *Session, op request.Operation) (T, error) {
	var zero T

	req, err := request.Encode(op)
	if err != nil {
		return zero, err
	}
	req.LogWarnings()

	target, err := req.MethodURL(s.endpoint)
	if err != nil {
		return zero, err
	}

	log.Debugf("➡️ %s", req.Method)

	resp, err := s.transport.Do(ctx, &transport.Request{
		URL:    target,
		Header: map[string]string{"Content-Type": formContentType},
		Body:   req.Body(),
	})
	if err != nil {
		return zero, err
	}

	if !resp.IsSuccess() {
		return zero, &HTTPStatusError{
			Method:     req.Method,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       resp.Body,
		}
	}

	env, err := response.Decode[T](resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", req.Method, err)
	}

	return env.Result()
}

func (s *Session) hash() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.userHash == "" {
		return "", ErrNotAuthenticated
	}
	return s.userHash, nil
}

func (s *Session) optionalHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userHash
}

func (s *Session) adopt(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userHash = hash
}

// CheckKey fails unless the API key is valid.
func (s *Session) CheckKey(ctx context.Context) error {
	_, err := execute[response.CheckKeyResponse](ctx, s, request.NewCheckKey(s.apiKey))
	return err
}

func (s *Session) KeyUsageStats(ctx context.Context) (response.KeyUsageStatsResponse, error) {
	return execute[response.KeyUsageStatsResponse](ctx, s, request.NewGetKeyUsageStats(s.apiKey))
}

// LogIn exchanges credentials for a user hash, replacing any current one.
// The hash is returned so callers can persist it.
func (s *Session) LogIn(ctx context.Context, username, password string) (string, error) {
	resp, err := execute[response.LoginResponse](ctx, s, request.NewLogin(s.apiKey, username, password))
	if err != nil {
		return "", err
	}

	s.adopt(resp.Hash)
	log.Infof("🔑 Logged in as %s", username)

	return resp.Hash, nil
}

// CheckUserHash asks the server whether hash is still valid. The session is
// not changed.
func (s *Session) CheckUserHash(ctx context.Context, hash string) error {
	_, err := execute[response.CheckUserHashResponse](ctx, s, request.NewCheckUserHash(s.apiKey, hash))
	return err
}

// ReuseLogin adopts a previously issued hash after validating it.
func (s *Session) ReuseLogin(ctx context.Context, hash string) error {
	if err := s.CheckUserHash(ctx, hash); err != nil {
		return err
	}
	s.adopt(hash)
	return nil
}

// ForceReuseLogin adopts hash without asking the server.
func (s *Session) ForceReuseLogin(hash string) {
	s.adopt(hash)
}

// ValidateLogin checks the current hash with the server.
func (s *Session) ValidateLogin(ctx context.Context) error {
	hash, err := s.hash()
	if err != nil {
		return err
	}
	return s.CheckUserHash(ctx, hash)
}

func (s *Session) LogOut() {
	s.adopt("")
}

func (s *Session) IsLoggedIn() bool {
	return s.optionalHash() != ""
}

// UserHash returns the current hash, if any.
func (s *Session) UserHash() (string, bool) {
	hash := s.optionalHash()
	return hash, hash != ""
}
