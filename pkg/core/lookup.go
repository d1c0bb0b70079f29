package core

import (
	"encoding/json"
	"fmt"
)

// LookupRequest asks which courses at University the given source courses satisfy.
// Courses is treated as a set; duplicates are ignored.
type LookupRequest struct {
	University string   `json:"university"`
	Courses    []string `json:"courses"`
}

// EquivalencyEntry is one matched articulation row.
type EquivalencyEntry struct {
	CommunityCollegeInfo Institution `json:"community_college_info"`
	UniversityCourse     string      `json:"university_course"`
	CourseEquivalents    []string    `json:"course_equivalents"`
}

// CollegeGroup collects the entries that share a community college.
type CollegeGroup struct {
	Info    Institution        `json:"info"`
	Courses []EquivalencyEntry `json:"courses"`
}

// LookupResult is the outcome of a lookup. University is nil when the
// university is unknown; Groups is empty when nothing matched.
type LookupResult struct {
	University *Institution   `json:"university,omitempty"`
	Groups     []CollegeGroup `json:"groups"`
}

// Empty reports whether no equivalency matched.
func (r *LookupResult) Empty() bool {
	return r == nil || len(r.Groups) == 0
}

// Items flattens the result into its wire form: a university_info item
// followed by one equivalency item per entry in group order. An empty
// result flattens to an empty, non-nil slice.
func (r *LookupResult) Items() []ResultItem {
	items := []ResultItem{}
	if r.Empty() {
		return items
	}
	if r.University != nil {
		info := r.University.Info()
		items = append(items, ResultItem{Kind: ResultKindUniversityInfo, UniversityInfo: &info})
	}
	for _, g := range r.Groups {
		for _, e := range g.Courses {
			items = append(items, ResultItem{
				Kind:                 ResultKindEquivalency,
				CommunityCollegeInfo: ptr(e.CommunityCollegeInfo.Info()),
				UniversityCourse:     e.UniversityCourse,
				CourseEquivalent:     e.CourseEquivalents,
			})
		}
	}
	return items
}

func ptr[T any](v T) *T { return &v }

// ResultKind discriminates ResultItem variants.
type ResultKind string

// Result item kinds.
const (
	ResultKindUniversityInfo ResultKind = "university_info"
	ResultKindEquivalency    ResultKind = "equivalency"
)

// ResultItem is the tagged union returned by POST /equivalent-courses.
// Exactly the fields of the variant named by Kind are populated.
type ResultItem struct {
	Kind ResultKind

	// university_info variant
	UniversityInfo *InstitutionInfo

	// equivalency variant
	CommunityCollegeInfo *InstitutionInfo
	UniversityCourse     string
	CourseEquivalent     []string
}

type universityInfoItem struct {
	Kind           ResultKind       `json:"kind"`
	UniversityInfo *InstitutionInfo `json:"university_info"`
}

type equivalencyItem struct {
	Kind                 ResultKind       `json:"kind"`
	CommunityCollegeInfo *InstitutionInfo `json:"community_college_info"`
	UniversityCourse     string           `json:"university_course"`
	CourseEquivalent     []string         `json:"course_equivalent"`
}

// MarshalJSON encodes only the fields of the active variant.
func (it ResultItem) MarshalJSON() ([]byte, error) {
	switch it.Kind {
	case ResultKindUniversityInfo:
		return json.Marshal(universityInfoItem{Kind: it.Kind, UniversityInfo: it.UniversityInfo})
	case ResultKindEquivalency:
		eq := it.CourseEquivalent
		if eq == nil {
			eq = []string{}
		}
		return json.Marshal(equivalencyItem{
			Kind:                 it.Kind,
			CommunityCollegeInfo: it.CommunityCollegeInfo,
			UniversityCourse:     it.UniversityCourse,
			CourseEquivalent:     eq,
		})
	default:
		return nil, fmt.Errorf("unknown result item kind %q", it.Kind)
	}
}

// UnmarshalJSON decodes a result item, dispatching on its kind tag.
func (it *ResultItem) UnmarshalJSON(data []byte) error {
	var head struct {
		Kind ResultKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Kind {
	case ResultKindUniversityInfo:
		var v universityInfoItem
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*it = ResultItem{Kind: v.Kind, UniversityInfo: v.UniversityInfo}
	case ResultKindEquivalency:
		var v equivalencyItem
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*it = ResultItem{
			Kind:                 v.Kind,
			CommunityCollegeInfo: v.CommunityCollegeInfo,
			UniversityCourse:     v.UniversityCourse,
			CourseEquivalent:     v.CourseEquivalent,
		}
	default:
		return fmt.Errorf("unknown result item kind %q", head.Kind)
	}
	return nil
}
