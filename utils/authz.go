package utils

// CanModify reports whether the acting user is allowed to mutate a resource
// owned by ownerID. Every owner-gated endpoint goes through this predicate.
func CanModify(actorID, ownerID uint) bool {
	return actorID == ownerID
}
