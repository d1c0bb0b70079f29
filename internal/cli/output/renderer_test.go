package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *core.LookupResult {
	valley := core.Institution{Name: "Valley College", Type: core.InstitutionTypeCommunityCollege, Location: "Van Nuys, CA"}
	return &core.LookupResult{
		University: &core.Institution{Name: "State University", Type: core.InstitutionTypeUniversity, Location: "Davis, CA"},
		Groups: []core.CollegeGroup{{
			Info: valley,
			Courses: []core.EquivalencyEntry{
				{CommunityCollegeInfo: valley, UniversityCourse: "CALC 3", CourseEquivalents: []string{"MATH200", "MATH201"}},
			},
		}},
	}
}

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ModeMarkdown, NewRenderer(&buf, &buf, ModeAuto).EffectiveMode(), "non-terminal auto renders markdown")
	assert.Equal(t, ModeMarkdown, NewRenderer(&buf, &buf, "").EffectiveMode())
	assert.Equal(t, ModeText, NewRenderer(&buf, &buf, ModeText).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRenderer(&buf, &buf, ModeJSON).EffectiveMode())
	assert.False(t, IsTerminal(&buf))
}

func TestRenderer_LookupResult(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		result   *core.LookupResult
		contains []string
	}{
		{
			name:   "markdown",
			mode:   ModeMarkdown,
			result: sampleResult(),
			contains: []string{
				"# Equivalent courses at State University (Davis, CA)",
				"## Valley College (Van Nuys, CA)",
				"| University course | Equivalent to |",
				"| CALC 3 | MATH200 + MATH201 |",
			},
		},
		{
			name:   "text",
			mode:   ModeText,
			result: sampleResult(),
			contains: []string{
				"Equivalent courses at State University (Davis, CA)",
				"Valley College (Van Nuys, CA)",
				"CALC 3",
				"MATH200 + MATH201",
			},
		},
		{
			name:     "empty",
			mode:     ModeText,
			result:   &core.LookupResult{Groups: []core.CollegeGroup{}},
			contains: []string{NoMatches},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewRenderer(&buf, &buf, tt.mode).LookupResult(tt.result))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderer_LookupResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, &buf, ModeJSON).LookupResult(sampleResult()))

	var items []core.ResultItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, core.ResultKindUniversityInfo, items[0].Kind)
	assert.Equal(t, []string{"MATH200", "MATH201"}, items[1].CourseEquivalent)

	buf.Reset()
	require.NoError(t, NewRenderer(&buf, &buf, ModeJSON).LookupResult(&core.LookupResult{}))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestRenderer_Table(t *testing.T) {
	t.Run("markdown escapes pipes", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, &buf, ModeMarkdown).Table([]string{"a", "b"}, [][]string{{"x|y", "z"}})
		assert.Equal(t, "| a | b |\n| --- | --- |\n| x\\|y | z |\n", buf.String())
	})

	t.Run("text box table", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, &buf, ModeText).Table([]string{"name"}, [][]string{{"Valley College"}})
		assert.Contains(t, buf.String(), "Valley College")
		assert.Contains(t, buf.String(), "NAME")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, &buf, ModeText).Table([]string{"name"}, nil)
		assert.Equal(t, "(0 rows)\n", buf.String())
	})
}

func TestRenderer_Institution(t *testing.T) {
	lat, lon := 34.1761, -118.4419
	inst := &core.Institution{
		Name: "Valley College", Type: core.InstitutionTypeCommunityCollege,
		City: "Van Nuys", State: "CA", ZipCode: "91401", Latitude: &lat, Longitude: &lon,
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, &buf, ModeMarkdown).Institution(inst))
	out := buf.String()
	assert.Contains(t, out, "# Valley College")
	assert.Contains(t, out, "- **Location**: Van Nuys, CA")
	assert.Contains(t, out, "- **Coordinates**: 34.176100, -118.441900")
	assert.NotContains(t, out, "Address")
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Sub", FormatHeader(3, "Sub"))
	assert.Equal(t, "# Zero", FormatHeader(0, "Zero"))
}
