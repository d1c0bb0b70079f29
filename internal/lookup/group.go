package lookup

import "github.com/leapstack-labs/transfer/pkg/core"

// GroupByCollege partitions entries by community college name. Names are
// compared exactly. Groups appear in the order their college first occurs,
// and entries keep their input order within a group.
func GroupByCollege(entries []core.EquivalencyEntry) []core.CollegeGroup {
	groups := []core.CollegeGroup{}
	index := make(map[string]int)
	for _, e := range entries {
		name := e.CommunityCollegeInfo.Name
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, core.CollegeGroup{Info: e.CommunityCollegeInfo})
		}
		groups[i].Courses = append(groups[i].Courses, e)
	}
	return groups
}
