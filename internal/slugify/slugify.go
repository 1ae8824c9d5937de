// Package slugify derives URL-safe identifiers from display titles.
package slugify

import "github.com/gosimple/slug"

// Make lowercases, hyphenates and strips the input. Deterministic and total:
// any string in, a (possibly empty) slug out. No uniqueness is attempted —
// two hotels titled the same get the same slug.
func Make(title string) string {
	return slug.Make(title)
}
