package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/transfer/internal/cli/output"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/lookup"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/spf13/cobra"
)

const shellPrompt = "transfer> "

// NewShellCommand creates the interactive shell command.
func NewShellCommand() *cobra.Command {
	var university string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive equivalency lookups",
		Long: `Start an interactive shell over the dataset.

Select a university with .use, then type community college courses
separated by spaces or commas to look up their equivalents.
Type .help for all commands.`,
		Example: `  transfer shell
  transfer shell --university "State University"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, university)
		},
	}

	cmd.Flags().StringVarP(&university, "university", "u", "", "University to start with")

	return cmd
}

func runShell(cmd *cobra.Command, university string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store, err := cc.OpenDataset(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sh := NewShell(store, cc.Renderer, cmd.ErrOrStderr(), cc.Logger)
	if university != "" {
		sh.Handle(ctx, ".use "+university)
	}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".transfer_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    sh.Completer(ctx),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Transfer equivalency shell")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := sh.Handle(ctx, line); quit {
			return nil
		}
	}
}

// Shell interprets interactive input against a dataset.
type Shell struct {
	ds     core.Dataset
	svc    *lookup.Service
	r      *output.Renderer
	errOut io.Writer

	university string
}

// NewShell creates a shell over ds. Results go to r; errors go to errOut.
func NewShell(ds core.Dataset, r *output.Renderer, errOut io.Writer, logger *slog.Logger) *Shell {
	return &Shell{ds: ds, svc: lookup.New(ds, logger), r: r, errOut: errOut}
}

// University returns the selected university.
func (s *Shell) University() string {
	return s.university
}

// Handle runs one input line and reports whether the shell should exit.
func (s *Shell) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if !strings.HasPrefix(line, ".") {
		s.report(s.lookup(ctx, line))
		return false
	}

	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true
	case ".help":
		printShellHelp(s.r.Writer())
	case ".use":
		s.report(s.use(ctx, arg))
	case ".institutions":
		s.report(s.institutions(ctx, arg))
	case ".courses":
		s.report(s.courses(ctx, arg))
	case ".location":
		s.report(s.location(ctx, arg))
	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func (s *Shell) report(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
}

func (s *Shell) use(ctx context.Context, name string) error {
	if name == "" {
		if s.university == "" {
			return fmt.Errorf("usage: .use <university>")
		}
		s.r.Println("Using " + s.university)
		return nil
	}
	inst, err := s.ds.GetInstitution(ctx, name)
	if err != nil {
		return err
	}
	if inst.Type != core.InstitutionTypeUniversity {
		return fmt.Errorf("%q is a %s, not a university", inst.Name, inst.Type)
	}
	s.university = inst.Name
	s.r.Println("Using " + inst.Name)
	return nil
}

func (s *Shell) lookup(ctx context.Context, line string) error {
	if s.university == "" {
		return fmt.Errorf("no university selected; use .use <university>")
	}
	req := core.LookupRequest{University: s.university, Courses: shellCourses(line)}
	res, err := s.svc.LookupEquivalents(ctx, req)
	if err != nil {
		return err
	}
	return s.r.LookupResult(res)
}

// shellCourses splits on commas when the line has any, so identifiers
// may contain spaces; otherwise it splits on whitespace.
func shellCourses(line string) []string {
	if strings.Contains(line, ",") {
		return SplitCourses([]string{line})
	}
	return strings.Fields(line)
}

func (s *Shell) institutions(ctx context.Context, q string) error {
	insts, err := s.ds.ListInstitutions(ctx, "")
	if err != nil {
		return err
	}
	insts = dataset.FilterInstitutions(insts, q)
	rows := make([][]string, len(insts))
	for i, inst := range insts {
		rows[i] = []string{inst.Name, string(inst.Type), inst.DisplayLocation()}
	}
	s.r.Table([]string{"Name", "Type", "Location"}, rows)
	return nil
}

func (s *Shell) courses(ctx context.Context, q string) error {
	courses, err := s.ds.ListCourses(ctx)
	if err != nil {
		return err
	}
	courses = dataset.FilterCourses(courses, q)
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.Identifier
	}
	s.r.List(ids)
	return nil
}

func (s *Shell) location(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("usage: .location <institution>")
	}
	inst, err := s.ds.GetInstitution(ctx, name)
	if err != nil {
		return err
	}
	return s.r.Institution(inst)
}

// Completer offers dot-commands, institution names after .use and
// .location, and course identifiers otherwise.
func (s *Shell) Completer(ctx context.Context) *readline.PrefixCompleter {
	var universities, everyone, courses []readline.PrefixCompleterInterface

	if insts, err := s.ds.ListInstitutions(ctx, ""); err == nil {
		for _, inst := range insts {
			everyone = append(everyone, readline.PcItem(inst.Name))
			if inst.Type == core.InstitutionTypeUniversity {
				universities = append(universities, readline.PcItem(inst.Name))
			}
		}
	}
	if cs, err := s.ds.ListCourses(ctx); err == nil {
		for _, c := range cs {
			courses = append(courses, readline.PcItem(c.Identifier))
		}
	}

	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".use", universities...),
		readline.PcItem(".institutions"),
		readline.PcItem(".courses"),
		readline.PcItem(".location", everyone...),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	items = append(items, courses...)

	return readline.NewPrefixCompleter(items...)
}

func printShellHelp(w io.Writer) {
	help := `
Commands:
  .use <university>     Select the university to look up against
  .institutions [text]  List institutions, optionally filtered
  .courses [text]       List course identifiers, optionally filtered
  .location <name>      Show an institution's address and coordinates
  .help                 Show this help message
  .quit / .exit         Exit the shell

Any other input is a list of community college courses, separated by
spaces, or by commas when identifiers contain spaces. A university course is shown only when every course
it requires is in the list.
`
	_, _ = fmt.Fprintln(w, help)
}
