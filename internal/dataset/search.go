package dataset

import (
	"strings"

	"github.com/leapstack-labs/transfer/pkg/core"
	"golang.org/x/text/cases"
)

// ContainsFold reports whether q occurs in s under Unicode case folding.
// An empty q matches everything.
func ContainsFold(s, q string) bool {
	if q == "" {
		return true
	}
	// A Caser is stateful and must not be shared between goroutines.
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(q))
}

// FilterInstitutions keeps institutions whose name contains q.
func FilterInstitutions(in []core.Institution, q string) []core.Institution {
	return filter(in, q, func(i core.Institution) string { return i.Name })
}

// FilterCourses keeps courses whose identifier contains q.
func FilterCourses(in []core.Course, q string) []core.Course {
	return filter(in, q, func(c core.Course) string { return c.Identifier })
}

func filter[T any](in []T, q string, key func(T) string) []T {
	q = strings.TrimSpace(q)
	if q == "" {
		return in
	}
	out := make([]T, 0, len(in))
	for _, item := range in {
		if ContainsFold(key(item), q) {
			out = append(out, item)
		}
	}
	return out
}
