package model

// Account is a registered customer identity. The username is the stable
// key other records refer to; it is never changed after registration.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Room     string `json:"room"`
	Phone    string `json:"phone"`
}

// Public returns a copy safe to return to callers, with the credential
// secret blanked out.
func (a Account) Public() Account {
	a.Password = ""
	return a
}
