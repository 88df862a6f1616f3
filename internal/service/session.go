package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"hostelvend-api/internal/cache"
	"hostelvend-api/internal/model"
)

const (
	// TokenPrefix is the prefix for all session tokens
	TokenPrefix = "hvt_"

	// sessionKeyPrefix is the cache key prefix for sessions
	sessionKeyPrefix = "session:"
)

// SessionService tracks who is currently authenticated. A session is
// created at login or registration, cleared at logout, and scoped to one
// browsing session; it carries either a customer or an admin identity,
// never both.
type SessionService struct {
	sessions cache.Cache
	ttl      time.Duration
}

// NewSessionService creates a new session service.
// Returns nil if sessions is nil (required dependency).
func NewSessionService(sessions cache.Cache, ttl time.Duration) *SessionService {
	if sessions == nil {
		return nil
	}
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	return &SessionService{sessions: sessions, ttl: ttl}
}

// Issue creates a session for the given identity and role and returns it.
func (s *SessionService) Issue(ctx context.Context, username string, role model.Role) (*model.Session, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, err
	}

	session := model.Session{
		Token:     TokenPrefix + hex.EncodeToString(tokenBytes),
		Username:  username,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	session.ExpiresAt = session.CreatedAt.Add(s.ttl)

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, sessionKeyPrefix+session.Token, data, s.ttl); err != nil {
		return nil, err
	}

	log.Printf("[SessionService] Issued %s session for %s, expires=%v", role, username, session.ExpiresAt)
	return &session, nil
}

// Resolve returns the session for token, or nil if the token is unknown
// or expired.
func (s *SessionService) Resolve(ctx context.Context, token string) *model.Session {
	if len(token) < len(TokenPrefix) || token[:len(TokenPrefix)] != TokenPrefix {
		return nil
	}

	data, err := s.sessions.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return nil
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, sessionKeyPrefix+token)
		return nil
	}

	return &session
}

// Revoke clears the session for token.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, sessionKeyPrefix+token)
}
