package service

import (
	"context"
	"log"
	"strings"

	"hostelvend-api/internal/model"
	"hostelvend-api/internal/store"
	"hostelvend-api/pkg/apierror"
)

// AccountService owns user identity records and credential checks.
type AccountService struct {
	store *store.Store
}

// NewAccountService creates a new account service.
// Returns nil if st is nil (required dependency).
func NewAccountService(st *store.Store) *AccountService {
	if st == nil {
		return nil
	}
	return &AccountService{store: st}
}

// Register creates a new account. The username must be unused; password,
// room and phone must pass the delivery field checks. There is no
// lockout or rate limiting.
func (s *AccountService) Register(ctx context.Context, username, password, room, phone string) (*model.Account, error) {
	username = strings.TrimSpace(username)

	var details []apierror.FieldError
	if username == "" {
		details = append(details, apierror.FieldError{Field: "username", Message: "username is required"})
	}
	if len(password) < 4 {
		details = append(details, apierror.FieldError{Field: "password", Message: "password must be at least 4 characters"})
	}
	if !validRoom(room) {
		details = append(details, apierror.FieldError{Field: "room", Message: "room must be 1-4 digits with an optional letter (e.g. 402A)"})
	}
	if !validPhone(phone) {
		details = append(details, apierror.FieldError{Field: "phone", Message: "phone must be 10 digits"})
	}
	if len(details) > 0 {
		return nil, apierror.ValidationError("invalid registration").WithDetails(details...)
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load accounts")
	}

	if _, exists := users[username]; exists {
		return nil, apierror.Conflict("username already exists")
	}

	account := model.Account{
		Username: username,
		Password: password,
		Room:     room,
		Phone:    phone,
	}
	users[username] = account

	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, apierror.InternalError("failed to save accounts")
	}

	log.Printf("[AccountService] Registered %s", username)
	return &account, nil
}

// Authenticate checks a username/password pair and returns the account.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*model.Account, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load accounts")
	}

	account, ok := users[username]
	if !ok || account.Password != password {
		return nil, apierror.InvalidCredentials("")
	}

	return &account, nil
}

// Get returns the account for username.
func (s *AccountService) Get(ctx context.Context, username string) (*model.Account, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load accounts")
	}

	account, ok := users[username]
	if !ok {
		return nil, apierror.NotFound("account not found")
	}
	return &account, nil
}
