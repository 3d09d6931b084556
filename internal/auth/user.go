// Copyright (c) 2026 Reelist. All rights reserved.

// Package auth implements user identity: signup, login, and token issuance.
//
// # Architecture
//
// The [User] entity is the "Truth" of the credential store. It has no
// dependencies on outer layers (databases, HTTP, libraries), which keeps the
// account rules testable in isolation.
package auth

import (
	"strings"
	"time"
)

// User represents a registered Reelist account.
//
// # Rules
//   - Email is unique after normalization (trim + lowercase); two accounts
//     can never share a normalized email.
//   - PasswordHash is produced exclusively via bcrypt in [Service.Register];
//     the plain text never reaches storage or logs.
//   - Accounts are immutable after signup: no update or delete operation
//     exists in this service.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"createdAt"`
}

// NormalizeEmail canonicalizes an email for comparison and storage.
//
// "Test@Mail.com" and "test@mail.com " are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
