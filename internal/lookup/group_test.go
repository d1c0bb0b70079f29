package lookup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leapstack-labs/transfer/internal/lookup"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func entry(college, course string) core.EquivalencyEntry {
	return core.EquivalencyEntry{
		CommunityCollegeInfo: core.Institution{Name: college},
		UniversityCourse:     course,
		CourseEquivalents:    []string{course + "-eq"},
	}
}

func groupNames(groups []core.CollegeGroup) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Info.Name
	}
	return names
}

func TestGroupByCollege(t *testing.T) {
	tests := []struct {
		name    string
		entries []core.EquivalencyEntry
		want    []string
	}{
		{"empty", nil, []string{}},
		{"first appearance order", []core.EquivalencyEntry{entry("B", "1"), entry("A", "2"), entry("B", "3")}, []string{"B", "A"}},
		{"case-sensitive names", []core.EquivalencyEntry{entry("Valley", "1"), entry("valley", "2")}, []string{"Valley", "valley"}},
		{"single college", []core.EquivalencyEntry{entry("C", "1"), entry("C", "2")}, []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, groupNames(lookup.GroupByCollege(tt.entries)))
		})
	}
}

func TestGroupByCollege_KeepsEntryOrder(t *testing.T) {
	entries := []core.EquivalencyEntry{entry("B", "1"), entry("A", "2"), entry("B", "3")}

	got := lookup.GroupByCollege(entries)
	want := []core.CollegeGroup{
		{Info: core.Institution{Name: "B"}, Courses: []core.EquivalencyEntry{entries[0], entries[2]}},
		{Info: core.Institution{Name: "A"}, Courses: []core.EquivalencyEntry{entries[1]}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupByCollege mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByCollege_Deterministic(t *testing.T) {
	entries := []core.EquivalencyEntry{
		entry("Mountain", "CALC 3"), entry("Valley", "ENGL 1A"), entry("Harbor", "BIO 1"),
		entry("Valley", "MATH 21A"), entry("Mountain", "ENGL 1A"),
	}
	first := lookup.GroupByCollege(entries)
	for range 10 {
		if diff := cmp.Diff(first, lookup.GroupByCollege(entries)); diff != "" {
			t.Fatalf("GroupByCollege is not deterministic:\n%s", diff)
		}
	}
}
