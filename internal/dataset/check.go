package dataset

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/transfer/pkg/core"
)

// Violation is one broken dataset invariant.
type Violation struct {
	Rule    string `json:"rule"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Integrity rules reported by Check.
const (
	RuleReceivingInstitution = "receiving-institution"
	RuleSendingInstitution   = "sending-institution"
	RuleEmptySendingSet      = "empty-sending-set"
)

// Check verifies the articulation invariants against the stored data:
// receiving institutions are universities, sending institutions are
// community colleges, and no row has an empty sending course set.
func (s *Store) Check(ctx context.Context) ([]Violation, error) {
	var violations []Violation

	refChecks := []struct {
		rule, column string
		want         core.InstitutionType
	}{
		{RuleReceivingInstitution, "receiving_institution", core.InstitutionTypeUniversity},
		{RuleSendingInstitution, "sending_institution", core.InstitutionTypeCommunityCollege},
	}
	for _, rc := range refChecks {
		query := fmt.Sprintf(`
			SELECT a.receiving_institution, a.receiving_course, a.%[1]s, COALESCE(i.type, '')
			FROM articulations a
			LEFT JOIN institutions i ON i.name = a.%[1]s
			WHERE i.name IS NULL OR i.type <> %[2]s
			ORDER BY a.id`, rc.column, s.adp.Placeholder(1))

		found, err := s.collect(ctx, query, func(sc scanner) (Violation, error) {
			var recv, course, ref, typ string
			if err := sc.Scan(&recv, &course, &ref, &typ); err != nil {
				return Violation{}, err
			}
			msg := fmt.Sprintf("%s %q is not defined", rc.column, ref)
			if typ != "" {
				msg = fmt.Sprintf("%s %q is a %s, want %s", rc.column, ref, typ, rc.want)
			}
			return Violation{Rule: rc.rule, Subject: recv + " / " + course, Message: msg}, nil
		}, string(rc.want))
		if err != nil {
			return nil, err
		}
		violations = append(violations, found...)
	}

	empty, err := s.collect(ctx, `
		SELECT a.receiving_institution, a.receiving_course, a.sending_institution
		FROM articulations a
		WHERE NOT EXISTS (SELECT 1 FROM articulation_courses c WHERE c.articulation_id = a.id)
		ORDER BY a.id`,
		func(sc scanner) (Violation, error) {
			var recv, course, send string
			if err := sc.Scan(&recv, &course, &send); err != nil {
				return Violation{}, err
			}
			return Violation{
				Rule:    RuleEmptySendingSet,
				Subject: recv + " / " + course,
				Message: fmt.Sprintf("no sending courses from %q", send),
			}, nil
		})
	if err != nil {
		return nil, err
	}
	return append(violations, empty...), nil
}

func (s *Store) collect(ctx context.Context, query string, scan func(scanner) (Violation, error), args ...any) ([]Violation, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("check dataset", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Violation
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, unavailable("scan violation", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate violations", err)
	}
	return out, nil
}
