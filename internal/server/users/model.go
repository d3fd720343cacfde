package users

import "time"

// User is a registered account. PasswordHash holds a salted bcrypt hash; the
// plaintext password is never persisted or logged.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
