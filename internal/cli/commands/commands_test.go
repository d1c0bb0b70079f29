package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd     *cobra.Command
		use     string
		flags   []string
		example bool
	}{
		{NewServeCommand(), "serve", []string{"port", "host", "watch"}, true},
		{NewLookupCommand(), "lookup --university <name> <course>...", []string{"university"}, true},
		{NewInstitutionsCommand(), "institutions", []string{"type", "query"}, true},
		{NewCoursesCommand(), "courses", []string{"query"}, true},
		{NewLocationCommand(), "location <institution>", nil, true},
		{NewSeedCommand(), "seed", []string{"fixture", "replace"}, true},
		{NewExportCommand(), "export", []string{"out"}, true},
		{NewDoctorCommand(), "doctor", nil, true},
		{NewShellCommand(), "shell", []string{"university"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			if tt.example {
				assert.NotEmpty(t, tt.cmd.Example, "Example should not be empty")
			}
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestRequiredFlags(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		flag string
	}{
		{NewLookupCommand(), "university"},
		{NewSeedCommand(), "fixture"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			f := tt.cmd.Flags().Lookup(tt.flag)
			if assert.NotNil(t, f) {
				assert.Equal(t, []string{"true"}, f.Annotations[cobra.BashCompOneRequiredFlag])
			}
		})
	}
}

func TestSplitCourses(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"separate args", []string{"ENGL101", "MATH200"}, []string{"ENGL101", "MATH200"}},
		{"comma separated", []string{"ENGL101,MATH200"}, []string{"ENGL101", "MATH200"}},
		{"mixed with spaces", []string{"ENGL101, MATH200", "HIST110"}, []string{"ENGL101", "MATH200", "HIST110"}},
		{"empty pieces dropped", []string{",ENGL101,,", " "}, []string{"ENGL101"}},
		{"nothing", []string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCourses(tt.args))
		})
	}
}

func TestServeWatchDefault(t *testing.T) {
	f := NewServeCommand().Flags().Lookup("watch")
	if assert.NotNil(t, f) {
		assert.Equal(t, "true", f.DefValue)
	}
}
