package entity

import "time"

// Question is a user-owned post open for answers. Ownership is by user
// uuid, not by instance identity.
type Question struct {
	UUID     string
	Content  string
	Date     time.Time
	UserUUID string
}
