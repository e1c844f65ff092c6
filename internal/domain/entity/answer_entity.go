package entity

import "time"

// Answer is a user-owned reply to an existing question.
type Answer struct {
	UUID         string
	Content      string
	Date         time.Time
	UserUUID     string
	QuestionUUID string
}
