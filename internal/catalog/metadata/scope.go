// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import (
	"github.com/geodexhq/geodex/internal/platform/sec"
)

// Scope is the visibility context of a catalog call.
//
// It is derived from verified JWT claims at the transport boundary and
// threaded explicitly through every service and store operation; nothing in
// the catalog reads identity ambiently. The rules:
//
//   - Unauthenticated scopes see the empty set.
//   - ADMIN sees every record.
//   - USER sees records whose ownership chain reaches their account.
//
// An out-of-scope record behaves exactly like a missing one: callers get
// NOT_FOUND, never FORBIDDEN, so the API does not leak record existence.
type Scope struct {
	UserID        string
	Role          sec.UserRole
	Authenticated bool
}

// ScopeFor builds the scope of an authenticated requester.
func ScopeFor(userID string, role sec.UserRole) Scope {
	return Scope{UserID: userID, Role: role, Authenticated: true}
}

// Anonymous is the empty scope of an unauthenticated request.
func Anonymous() Scope {
	return Scope{}
}

// Unrestricted reports whether the scope can see every record.
func (s Scope) Unrestricted() bool {
	return s.Authenticated && s.Role.IsAdmin()
}

// CanSee reports whether a record owned by ownerID is inside the scope.
func (s Scope) CanSee(ownerID string) bool {
	if !s.Authenticated {
		return false
	}
	if s.Role.IsAdmin() {
		return true
	}
	return s.UserID == ownerID
}
