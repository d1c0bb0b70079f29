package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/transfer/pkg/core"
	"gopkg.in/yaml.v3"
)

// Fixture is the YAML description of a complete dataset.
//
//	institutions:
//	  - name: State University
//	    type: university
//	    city: Davis
//	    state: CA
//	courses: [ENGL101]
//	articulations:
//	  - receiving_institution: State University
//	    receiving_course: ENGL 1A
//	    sending_institution: Valley College
//	    sending_courses: [ENGL101]
type Fixture struct {
	Institutions  []core.Institution     `yaml:"institutions"`
	Courses       []string               `yaml:"courses"`
	Articulations []core.ArticulationRow `yaml:"articulations"`
}

// LoadFixture reads and decodes a fixture file. It does not validate.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from trusted CLI input
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes fixture YAML, rejecting unknown fields.
func ParseFixture(data []byte) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &fx, nil
}

// CourseCatalog returns the declared courses followed by every sending course
// not already declared, without duplicates, in first-seen order.
func (fx *Fixture) CourseCatalog() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range fx.Courses {
		add(c)
	}
	for _, row := range fx.Articulations {
		for _, c := range row.SendingCourses {
			add(c)
		}
	}
	return out
}

// Validate checks every dataset invariant and returns all violations joined.
func (fx *Fixture) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	types := make(map[string]core.InstitutionType, len(fx.Institutions))
	for i, inst := range fx.Institutions {
		if strings.TrimSpace(inst.Name) == "" {
			fail("institutions[%d]: name is required", i)
			continue
		}
		if _, dup := types[inst.Name]; dup {
			fail("institutions[%d]: duplicate institution %q", i, inst.Name)
			continue
		}
		typ, err := core.ParseInstitutionType(string(inst.Type))
		if err != nil {
			fail("institutions[%d] %q: %v", i, inst.Name, err)
			continue
		}
		types[inst.Name] = typ
	}

	for i, c := range fx.Courses {
		if strings.TrimSpace(c) == "" {
			fail("courses[%d]: identifier is required", i)
		}
	}

	type rowKey struct{ recv, course, send string }
	seenRows := make(map[rowKey]int)
	for i, row := range fx.Articulations {
		where := fmt.Sprintf("articulations[%d] (%s / %s)", i, row.ReceivingInstitution, row.ReceivingCourse)

		if strings.TrimSpace(row.ReceivingCourse) == "" {
			fail("%s: receiving_course is required", where)
		}
		if typ, ok := types[row.ReceivingInstitution]; !ok {
			fail("%s: receiving institution %q is not defined", where, row.ReceivingInstitution)
		} else if typ != core.InstitutionTypeUniversity {
			fail("%s: receiving institution %q is a %s, want %s", where, row.ReceivingInstitution, typ, core.InstitutionTypeUniversity)
		}
		if typ, ok := types[row.SendingInstitution]; !ok {
			fail("%s: sending institution %q is not defined", where, row.SendingInstitution)
		} else if typ != core.InstitutionTypeCommunityCollege {
			fail("%s: sending institution %q is a %s, want %s", where, row.SendingInstitution, typ, core.InstitutionTypeCommunityCollege)
		}

		if len(row.SendingCourses) == 0 {
			fail("%s: sending_courses must not be empty", where)
		}
		inRow := make(map[string]struct{}, len(row.SendingCourses))
		for _, c := range row.SendingCourses {
			if strings.TrimSpace(c) == "" {
				fail("%s: sending course identifier is required", where)
				continue
			}
			if _, dup := inRow[c]; dup {
				fail("%s: sending course %q listed twice", where, c)
			}
			inRow[c] = struct{}{}
		}

		key := rowKey{row.ReceivingInstitution, row.ReceivingCourse, row.SendingInstitution}
		if first, dup := seenRows[key]; dup {
			fail("%s: duplicates articulations[%d] for %q", where, first, row.SendingInstitution)
		} else {
			seenRows[key] = i
		}
	}

	return errors.Join(errs...)
}
