package model

import "time"

// Role distinguishes the two kinds of authenticated session.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Session is the current authenticated identity for one browsing
// session. Customer and admin sessions are issued separately; a token
// carries exactly one role.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
