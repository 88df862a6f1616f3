package service

import (
	"testing"
	"time"

	"hostelvend-api/internal/cache"
	"hostelvend-api/internal/store"
	"hostelvend-api/pkg/apierror"
)

// testEnv wires every service over in-memory backends.
type testEnv struct {
	kv       *store.MemoryKV
	store    *store.Store
	catalog  *CatalogService
	accounts *AccountService
	orders   *OrderService
	verify   *VerifyService
	sessions *SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv := store.NewMemoryKV()
	st := store.New(kv)
	c := cache.NewMemoryCache()
	t.Cleanup(func() { c.Close() })

	catalog := NewCatalogService(st)
	accounts := NewAccountService(st)
	orders := NewOrderService(st, accounts, catalog)
	verify := NewVerifyService(c, 5*time.Minute)
	sessions := NewSessionService(c, time.Hour)

	if catalog == nil || accounts == nil || orders == nil || verify == nil || sessions == nil {
		t.Fatal("service constructor returned nil with valid dependencies")
	}

	return &testEnv{
		kv:       kv,
		store:    st,
		catalog:  catalog,
		accounts: accounts,
		orders:   orders,
		verify:   verify,
		sessions: sessions,
	}
}

// wantCode asserts err is an *apierror.Error carrying the given code.
func wantCode(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	apiErr, ok := err.(*apierror.Error)
	if !ok {
		t.Fatalf("expected *apierror.Error, got %T: %v", err, err)
	}
	if apiErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, apiErr.Code, apiErr.Message)
	}
}
