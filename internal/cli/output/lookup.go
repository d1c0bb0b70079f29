package output

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/transfer/pkg/core"
)

// NoMatches is printed when a lookup finds nothing.
const NoMatches = "No equivalent courses found."

// LookupResult renders a grouped lookup result. JSON mode writes the same
// item array as POST /equivalent-courses.
func (r *Renderer) LookupResult(res *core.LookupResult) error {
	mode := r.EffectiveMode()
	if mode == ModeJSON {
		return r.JSON(res.Items())
	}
	if res.Empty() {
		r.Println(NoMatches)
		return nil
	}

	title := "Equivalent courses"
	if res.University != nil {
		title = fmt.Sprintf("Equivalent courses at %s", withLocation(res.University.Info()))
	}
	r.Header(1, title)

	for _, g := range res.Groups {
		if mode == ModeText {
			r.Println("")
		}
		r.Header(2, withLocation(g.Info.Info()))

		rows := make([][]string, 0, len(g.Courses))
		for _, e := range g.Courses {
			rows = append(rows, []string{e.UniversityCourse, strings.Join(e.CourseEquivalents, " + ")})
		}
		r.Table([]string{"University course", "Equivalent to"}, rows)
		if mode == ModeMarkdown {
			r.Println("")
		}
	}
	return nil
}

// Institution renders one institution's location record.
func (r *Renderer) Institution(inst *core.Institution) error {
	if r.EffectiveMode() == ModeJSON {
		return r.JSON(inst)
	}

	coords := ""
	if inst.Latitude != nil && inst.Longitude != nil {
		coords = fmt.Sprintf("%.6f, %.6f", *inst.Latitude, *inst.Longitude)
	}
	fields := [][2]string{
		{"Type", string(inst.Type)},
		{"Location", inst.DisplayLocation()},
		{"Address", inst.Address},
		{"City", inst.City},
		{"State", inst.State},
		{"Zip code", inst.ZipCode},
		{"Coordinates", coords},
	}

	r.Header(1, inst.Name)
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if r.EffectiveMode() == ModeMarkdown {
			r.Println(FormatKeyValue(f[0], f[1]))
		} else {
			r.Printf("  %s: %s\n", r.styles.Bold.Render(f[0]), f[1])
		}
	}
	return nil
}

func withLocation(info core.InstitutionInfo) string {
	if info.Location == "" {
		return info.Name
	}
	return fmt.Sprintf("%s (%s)", info.Name, info.Location)
}
