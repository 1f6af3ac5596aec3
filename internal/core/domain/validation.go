package domain

import "regexp"

var (
	emailShape = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

	// Canonical lowercase UUID: version nibble 0-5, variant nibble 0/8/9/a/b.
	userIDShape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-5][0-9a-f]{3}-[089ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

// IsValidEmail reports whether email looks like a mailbox address:
// local part, "@", dotted domain, 2-4 character final segment.
func IsValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

// IsValidUserID reports whether id is a well-formed user identifier.
func IsValidUserID(id string) bool {
	return userIDShape.MatchString(id)
}
