package model

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewID returns a prefixed, lexicographically sortable identifier,
// e.g. "usr_01hx3v9e8q...".
func NewID(prefix string) string {
	return prefix + "_" + strings.ToLower(ulid.Make().String())
}
