package id

import (
	"strings"

	"github.com/google/uuid"
)

// Prefixes used for the identifiers this service mints.
const (
	PrefixQuestion = "q"
	PrefixResult   = "r"
	PrefixSession  = "s"
)

// New returns a prefixed 16-character random identifier, e.g. "q3f9c0a1b2d4e5f60".
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + raw[:16]
}
