package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash; Salt is mixed into the hashed input so the
// stored layout matches the legacy schema.
type User struct {
	UUID          string
	FirstName     string
	LastName      string
	UserName      string
	Email         string
	Password      string
	Salt          string
	Country       string
	AboutMe       string
	DOB           string
	Role          Role
	ContactNumber string
	CreatedAt     time.Time
}
