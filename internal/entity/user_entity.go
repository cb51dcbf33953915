package entity

import "time"

// User is an account owning sensor records and chat history. Ids are the
// document store's object ids rendered as hex strings; repositories own the
// conversion.
type User struct {
	Id           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
