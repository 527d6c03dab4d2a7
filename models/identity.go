// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Role is an authorization label carried by an [Identity].
type Role string

// Known roles. Staff can read the catalog, admins can change it.
const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Identity is the verified caller of a request. It is produced by the
// authentication guard and is read-only afterwards.
type Identity struct {
	// Subject is the "sub" claim of the verified credential (the user ID).
	Subject string `json:"subject"`

	// Login is the human readable sign-in name, when the token carries it.
	Login string `json:"login,omitempty"`

	// Roles granted to the caller.
	Roles []Role `json:"roles"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HasAnyRole reports whether the identity holds at least one of roles.
// An empty roles list is satisfied by any identity.
func (i Identity) HasAnyRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if slices.Contains(i.Roles, role) {
			return true
		}
	}
	return false
}
