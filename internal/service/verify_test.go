package service

import (
	"context"
	"testing"
)

func TestVerifyHappyPath(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	code, err := env.verify.Issue(ctx, "9999999999")
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != 4 {
		t.Fatalf("expected a 4-digit code, got %q", code)
	}

	if err := env.verify.Verify(ctx, "9999999999", code); err != nil {
		t.Fatalf("matching code rejected: %v", err)
	}

	// Consumed on success: a second check finds no live challenge.
	wantCode(t, env.verify.Verify(ctx, "9999999999", code), "NOT_ISSUED")
}

func TestVerifyMismatchKeepsChallenge(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	code, err := env.verify.Issue(ctx, "9999999999")
	if err != nil {
		t.Fatal(err)
	}

	wrong := "0000"
	if wrong == code {
		wrong = "0001"
	}
	wantCode(t, env.verify.Verify(ctx, "9999999999", wrong), "INVALID_CREDENTIALS")

	// A mistyped attempt must not burn the challenge.
	if err := env.verify.Verify(ctx, "9999999999", code); err != nil {
		t.Fatalf("challenge was consumed by a failed attempt: %v", err)
	}
}

func TestVerifyWithoutIssue(t *testing.T) {
	env := newTestEnv(t)
	wantCode(t, env.verify.Verify(context.Background(), "9999999999", "1234"), "NOT_ISSUED")
}

func TestIssueReplacesPriorChallenge(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.verify.Issue(ctx, "9999999999")
	if err != nil {
		t.Fatal(err)
	}
	second, err := env.verify.Issue(ctx, "9999999999")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		// The older code is dead once replaced.
		wantCode(t, env.verify.Verify(ctx, "9999999999", first), "INVALID_CREDENTIALS")
	}
	if err := env.verify.Verify(ctx, "9999999999", second); err != nil {
		t.Fatalf("latest code rejected: %v", err)
	}
}

func TestIssueValidatesPhone(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.verify.Issue(context.Background(), "12345")
	wantCode(t, err, "VALIDATION_ERROR")
}

func TestVerifyValidatesPhone(t *testing.T) {
	env := newTestEnv(t)
	// A malformed phone must not read as a missing challenge.
	wantCode(t, env.verify.Verify(context.Background(), "12345", "1234"), "VALIDATION_ERROR")
}

func TestChallengesAreIndependentPerPhone(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	code, err := env.verify.Issue(ctx, "9999999999")
	if err != nil {
		t.Fatal(err)
	}

	// A challenge issued for one number is not valid for another.
	wantCode(t, env.verify.Verify(ctx, "8888888888", code), "NOT_ISSUED")
}
