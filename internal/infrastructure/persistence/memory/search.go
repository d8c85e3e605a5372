package memory

import (
	"strings"

	"golang.org/x/text/cases"
)

// containsFold reports whether s contains query under Unicode case folding.
// An empty query matches everything.
func containsFold(s, query string) bool {
	if query == "" {
		return true
	}
	// Casers are stateful; build one per call.
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(query))
}
