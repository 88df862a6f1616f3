package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"hostelvend-api/internal/cache"
	"hostelvend-api/pkg/apierror"
)

// challengeKeyPrefix is the cache key prefix for verification challenges.
const challengeKeyPrefix = "verify:"

// VerifyService issues and checks one-time codes bound to a phone
// number. At most one challenge is live per phone; issuing again
// replaces it. A challenge is consumed only on a successful check, so
// mistyped attempts can be retried until the TTL runs out.
type VerifyService struct {
	codes cache.Cache
	ttl   time.Duration
}

// NewVerifyService creates a new verification service.
// Returns nil if codes is nil (required dependency).
func NewVerifyService(codes cache.Cache, ttl time.Duration) *VerifyService {
	if codes == nil {
		return nil
	}
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &VerifyService{codes: codes, ttl: ttl}
}

// Issue generates a 4-digit code for phone, replacing any prior
// unconsumed challenge. Delivery over a real SMS gateway is out of
// scope; the code is returned to the caller and logged.
func (s *VerifyService) Issue(ctx context.Context, phone string) (string, error) {
	if !validPhone(phone) {
		return "", apierror.ValidationError("phone must be 10 digits")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", apierror.InternalError("failed to generate code")
	}
	code := fmt.Sprintf("%04d", n.Int64())

	if err := s.codes.Set(ctx, challengeKeyPrefix+phone, []byte(code), s.ttl); err != nil {
		return "", apierror.InternalError("failed to store code")
	}

	log.Printf("[VerifyService] Issued code for %s (expires in %v)", phone, s.ttl)
	return code, nil
}

// Verify checks a code against the live challenge for phone. The
// challenge is deleted on success and kept on mismatch. A malformed
// phone is a validation failure, not a missing challenge.
func (s *VerifyService) Verify(ctx context.Context, phone, code string) error {
	if !validPhone(phone) {
		return apierror.ValidationError("phone must be 10 digits")
	}

	stored, err := s.codes.Get(ctx, challengeKeyPrefix+phone)
	if err == cache.ErrCacheMiss {
		return apierror.NotIssued("")
	}
	if err != nil {
		return apierror.InternalError("failed to load code")
	}

	if string(stored) != code {
		return apierror.InvalidCredentials("incorrect verification code")
	}

	if err := s.codes.Delete(ctx, challengeKeyPrefix+phone); err != nil {
		return apierror.InternalError("failed to consume code")
	}

	log.Printf("[VerifyService] Verified %s", phone)
	return nil
}
