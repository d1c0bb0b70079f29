// Package lookup answers "which courses at this university do my courses
// satisfy", grouped by the community college that offers them.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/transfer/pkg/core"
)

// Service runs lookups against a dataset. It holds no state between calls.
type Service struct {
	ds     core.Dataset
	logger *slog.Logger
}

// New creates a Service. If logger is nil, a discard logger is used.
func New(ds core.Dataset, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{ds: ds, logger: logger}
}

// Validate checks req and returns the selected courses as a set.
// Errors wrap core.ErrInvalidRequest.
func Validate(req core.LookupRequest) (map[string]struct{}, error) {
	if strings.TrimSpace(req.University) == "" {
		return nil, fmt.Errorf("%w: university is required", core.ErrInvalidRequest)
	}
	if len(req.Courses) == 0 {
		return nil, fmt.Errorf("%w: at least one course is required", core.ErrInvalidRequest)
	}

	selected := make(map[string]struct{}, len(req.Courses))
	for i, c := range req.Courses {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("%w: courses[%d] is empty", core.ErrInvalidRequest, i)
		}
		selected[c] = struct{}{}
	}
	return selected, nil
}

// LookupEquivalents returns the university courses satisfied by req.Courses,
// grouped by community college in first-seen row order. A row matches when
// every one of its sending courses was selected; extra selections never
// change the outcome. An unknown university or no matching row yields an
// empty result, not an error.
func (s *Service) LookupEquivalents(ctx context.Context, req core.LookupRequest) (*core.LookupResult, error) {
	selected, err := Validate(req)
	if err != nil {
		return nil, err
	}

	empty := &core.LookupResult{Groups: []core.CollegeGroup{}}

	university, err := s.ds.GetInstitution(ctx, req.University)
	if errors.Is(err, core.ErrNotFound) {
		s.logger.Debug("unknown university", slog.String("university", req.University))
		return empty, nil
	}
	if err != nil {
		return nil, err
	}
	if university.Type != core.InstitutionTypeUniversity {
		s.logger.Debug("lookup target is not a university",
			slog.String("university", req.University), slog.String("type", string(university.Type)))
		return empty, nil
	}

	rows, err := s.ds.ArticulationsFor(ctx, req.University)
	if err != nil {
		return nil, err
	}

	var matched []core.ArticulationRow
	for _, row := range rows {
		if row.SatisfiedBy(selected) {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return empty, nil
	}

	colleges, err := s.colleges(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]core.EquivalencyEntry, 0, len(matched))
	for _, row := range matched {
		info, ok := colleges[row.SendingInstitution]
		if !ok {
			s.logger.Warn("articulation references unknown community college",
				slog.String("college", row.SendingInstitution),
				slog.String("university_course", row.ReceivingCourse))
			info = core.Institution{Name: row.SendingInstitution, Type: core.InstitutionTypeCommunityCollege}
		}
		entries = append(entries, core.EquivalencyEntry{
			CommunityCollegeInfo: info,
			UniversityCourse:     row.ReceivingCourse,
			CourseEquivalents:    append([]string(nil), row.SendingCourses...),
		})
	}

	s.logger.Debug("lookup complete",
		slog.String("university", req.University),
		slog.Int("selected", len(selected)),
		slog.Int("matches", len(entries)))

	return &core.LookupResult{University: university, Groups: GroupByCollege(entries)}, nil
}

func (s *Service) colleges(ctx context.Context) (map[string]core.Institution, error) {
	list, err := s.ds.ListInstitutions(ctx, core.InstitutionTypeCommunityCollege)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]core.Institution, len(list))
	for _, inst := range list {
		byName[inst.Name] = inst
	}
	return byName, nil
}
