// Package models defines the wire-level records exchanged with the
// trace-survey API. Field names follow the server's JSON contract; timestamps
// are carried as the server sends them and never interpreted client-side.
package models

// Credentials is a username/password pair. It is held only transiently in
// memory and encoded into the Basic-Auth token; it is never displayed.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is an account record. It is created by signup and read-only afterwards
// from the client's perspective.
type User struct {
	UserID         string `json:"user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Username       string `json:"username"`
	AccountCreated string `json:"account_created"`
	AccountUpdated string `json:"account_updated"`
}

// UserRequest is the signup payload.
type UserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}
