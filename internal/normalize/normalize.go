package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Key brings an identifier or role into the canonical form used for
// storage lookups and cache keys: surrounding whitespace removed,
// lower-cased. Both the read and the write path must go through here.
func Key(s string) string {
	return lower.String(strings.TrimSpace(s))
}
