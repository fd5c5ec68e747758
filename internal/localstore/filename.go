package localstore

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reUnsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces name to a safe ASCII file name: path separators
// become spaces, non-ASCII letters are folded where possible, whitespace
// runs become one underscore and leading or trailing dots and underscores are removed.
func SecureFilename(name string) string {
	name = norm.NFKD.String(name)
	name = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, name)

	name = strings.NewReplacer("/", " ", `\`, " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = reUnsafeFilename.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	return name
}
