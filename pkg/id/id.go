package id

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

// New returns a random lowercase v4 UUID.
func New() string { return uuid.NewString() }

// Valid accepts a lowercase UUID (v1-v5) or 32 lowercase hex characters.
// Surrounding whitespace is ignored; uppercase is rejected.
func Valid(s string) bool {
	s = strings.TrimSpace(s)
	return reUUID.MatchString(s) || reHex32.MatchString(s)
}
