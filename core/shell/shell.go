// Package shell implements the interactive read-parse-execute loop: one
// line is read, tokenized, dispatched to a builtin or launched as an
// external program, and fully resolved before the next prompt is shown.
package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/tinyshell/simplesh/core/config"
	"github.com/tinyshell/simplesh/core/logger"
)

var promptColor = color.New(color.FgGreen, color.Bold)

// Options configure a Shell. Config and Events may be nil; the compiled-in
// defaults and a no-op recorder are used in their place.
type Options struct {
	Config *config.Configuration
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
	Events *logger.SessionLogger
}

// Shell drives the interpreter loop. It owns the line reader and runs a
// single control thread; at most one child process is outstanding at any
// time.
type Shell struct {
	cfg      *config.Configuration
	readline *readline.Instance

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	events *logger.SessionLogger

	isTerminal bool

	// quit is set by the exit builtin to stop the loop.
	quit bool
}

// NewShell builds a Shell over the given streams.
func NewShell(opts Options) (*Shell, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Events == nil {
		opts.Events = logger.NewNopRecorder().Sessionless()
	}

	isTerminal := false
	if f, ok := opts.Stdout.(*os.File); ok {
		isTerminal = isatty.IsTerminal(f.Fd())
	}

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(opts.Stdin),
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		// Recall of previous commands is not part of this shell.
		HistoryLimit: -1,
		FuncIsTerminal: func() bool {
			return isTerminal
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		cfg:        opts.Config,
		readline:   rl,
		stdin:      opts.Stdin,
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
		events:     opts.Events,
		isTerminal: isTerminal,
	}, nil
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.readline.Close()
}

func (s *Shell) prompt() string {
	if s.isTerminal {
		return promptColor.Sprint(s.cfg.Prompt)
	}
	return s.cfg.Prompt
}

// Run executes the loop until the exit builtin, end-of-input, or an input
// stream fault. The result is the shell's exit code; all three ways out
// yield zero, matching the original interpreter's contract.
func (s *Shell) Run() int {
	if s.cfg.Motd != "" {
		fmt.Fprintln(s.stdout, s.cfg.Motd)
	}

	for !s.quit {
		s.readline.SetPrompt(s.prompt())
		if !s.isTerminal {
			// Readline only renders the prompt on a terminal; piped
			// sessions still get the prompt bytes before the read blocks.
			fmt.Fprint(s.stdout, s.cfg.Prompt)
		}
		line, err := s.readline.Readline()

		switch {
		case err == io.EOF:
			// Input closed; a graceful way out, not an error.
			fmt.Fprintln(s.stdout, "Exiting shell...")
			return 0

		case err == readline.ErrInterrupt:
			// Interrupt discards the line.
			continue

		case err != nil:
			fmt.Fprintf(s.stderr, "simple_shell: read error: %v\n", err)
			s.events.Record(&logger.Event{ReadFault: &logger.ReadFault{Error: err.Error()}})
			return 0
		}

		// Over-long input is truncated, never rejected.
		if max := s.cfg.MaxLineLength - 1; len(line) > max {
			line = line[:max]
		}

		args := Tokenize(line, s.cfg.MaxArgs)

		if s.dispatch(args) {
			continue
		}

		s.runExternal(args)
	}

	return 0
}

// dispatch runs args through the builtin table. It reports whether the
// command was handled in-process; the empty command is a handled no-op.
func (s *Shell) dispatch(args []string) bool {
	if len(args) == 0 {
		return true
	}

	builtin, ok := AllBuiltins[args[0]]
	if !ok {
		return false
	}

	s.events.Record(&logger.Event{Builtin: &logger.Builtin{Name: builtin.Name}})
	builtin.Main(s, args)
	return true
}
