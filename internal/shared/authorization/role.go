// Package authorization encodes the read-access rule shared by the
// ticket use cases in one place.
package authorization

// CanAccessOwnedResource reports whether a requester may read a resource
// owned by another user. Admins see everything, everyone else only their
// own records.
func CanAccessOwnedResource(requesterID uint, isAdmin bool, ownerID uint) bool {
	if isAdmin {
		return true
	}
	return requesterID == ownerID
}
