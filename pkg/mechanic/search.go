package mechanic

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns the catalogue entries whose label, name or description
// contains query, compared with Unicode case folding. An empty query returns
// the whole catalogue.
func Search(query string) []Mechanic {
	all := All()
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	var out []Mechanic
	for _, m := range all {
		for _, s := range []string{Label(m), Name(m), Description(m)} {
			if strings.Contains(fold.String(s), q) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
