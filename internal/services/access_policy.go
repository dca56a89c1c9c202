package services

import "github.com/terraincognita07/fixtrack/internal/models"

// Scope is the row-visibility decision for one caller on one request. Every
// asset and repair query (list, get, update, delete, export) must be built
// from the same Scope so a row outside it is indistinguishable from a row
// that does not exist.
type Scope struct {
	Admin bool
	// Owner is the forced owner restriction; nil means unrestricted.
	Owner *uint
}

// ScopeFor derives the caller's scope. Non-admin callers are always pinned
// to their own rows; a requested owner filter is honored for admins and
// silently ignored for everyone else.
func ScopeFor(user models.User, requestedOwner *uint) Scope {
	if user.IsAdmin() {
		return Scope{Admin: true, Owner: requestedOwner}
	}
	ownerID := user.ID
	return Scope{Owner: &ownerID}
}
