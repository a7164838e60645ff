package inventory

import (
	"strings"

	"golang.org/x/text/cases"
)

// matcher compara subcadenas sin distinguir mayúsculas (case folding Unicode).
// cases.Caser no es seguro para uso concurrente: uno por búsqueda.
type matcher struct {
	fold  cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	f := cases.Fold()
	return &matcher{fold: f, query: f.String(query)}
}

func (m *matcher) match(s string) bool {
	return strings.Contains(m.fold.String(s), m.query)
}
