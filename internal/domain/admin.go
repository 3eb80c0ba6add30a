package domain

import "strings"

// Admin is the single administrative principal. There is no self-service
// registration; one admin is provisioned at bootstrap.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type LoginRequest struct {
	Username string
	Password string
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Username == "" {
		errs["username"] = "Username is required"
	}
	if r.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}
