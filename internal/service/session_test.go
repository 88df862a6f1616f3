package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"hostelvend-api/internal/cache"
	"hostelvend-api/internal/model"
)

func TestSessionIssueAndResolve(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	session, err := env.sessions.Issue(ctx, "alice", model.RoleCustomer)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(session.Token, TokenPrefix) {
		t.Errorf("token missing prefix: %q", session.Token)
	}

	resolved := env.sessions.Resolve(ctx, session.Token)
	if resolved == nil {
		t.Fatal("freshly issued session did not resolve")
	}
	if resolved.Username != "alice" || resolved.Role != model.RoleCustomer {
		t.Errorf("resolved wrong identity: %+v", resolved)
	}
}

func TestSessionRevoke(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	session, err := env.sessions.Issue(ctx, "alice", model.RoleCustomer)
	if err != nil {
		t.Fatal(err)
	}
	if err := env.sessions.Revoke(ctx, session.Token); err != nil {
		t.Fatal(err)
	}
	if env.sessions.Resolve(ctx, session.Token) != nil {
		t.Error("revoked session still resolves")
	}
}

func TestSessionRejectsGarbageTokens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	for _, token := range []string{"", "nope", "hvt_unknown"} {
		if env.sessions.Resolve(ctx, token) != nil {
			t.Errorf("token %q should not resolve", token)
		}
	}
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()
	t.Cleanup(func() { c.Close() })

	sessions := NewSessionService(c, 10*time.Millisecond)
	session, err := sessions.Issue(ctx, "alice", model.RoleCustomer)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(30 * time.Millisecond)
	if sessions.Resolve(ctx, session.Token) != nil {
		t.Error("expired session still resolves")
	}
}

func TestCustomerAndAdminSessionsAreDistinct(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	customer, err := env.sessions.Issue(ctx, "alice", model.RoleCustomer)
	if err != nil {
		t.Fatal(err)
	}
	admin, err := env.sessions.Issue(ctx, "PANDI", model.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	if env.sessions.Resolve(ctx, customer.Token).Role != model.RoleCustomer {
		t.Error("customer session lost its role")
	}
	if env.sessions.Resolve(ctx, admin.Token).Role != model.RoleAdmin {
		t.Error("admin session lost its role")
	}
}
