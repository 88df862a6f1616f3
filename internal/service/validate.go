package service

import "regexp"

// Delivery field patterns shared by registration and order placement.
var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	roomPattern  = regexp.MustCompile(`^\d{1,4}[A-Za-z]?$`)
)

// validPhone reports whether s is a 10-digit phone number.
func validPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// validRoom reports whether s is a room like "402" or "402A".
func validRoom(s string) bool {
	return roomPattern.MatchString(s)
}
