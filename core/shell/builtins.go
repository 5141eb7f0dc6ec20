package shell

import "fmt"

// Builtin is a command whose effect is implemented by the shell process
// itself rather than by launching another program.
type Builtin struct {
	Name  string
	Short string

	// Main runs the builtin. Arguments past args[0] are ignored; no builtin
	// in this shell takes parameters.
	Main func(s *Shell, args []string)
}

// AllBuiltins holds every registered builtin, keyed by the exact
// case-sensitive command name.
var AllBuiltins = make(map[string]Builtin)

func mustAddBuiltin(b Builtin) {
	if _, ok := AllBuiltins[b.Name]; ok {
		panic(fmt.Sprintf("duplicate builtin: %q", b.Name))
	}
	AllBuiltins[b.Name] = b
}

// helpOrder fixes the listing order of the help text.
var helpOrder = []string{"help", "exit"}

// printHelp writes the fixed usage summary.
func (s *Shell) printHelp() {
	w := s.stdout
	fmt.Fprintln(w, "--- Simple Shell Help ---")
	fmt.Fprintln(w, "Available built-in commands:")
	for _, name := range helpOrder {
		fmt.Fprintf(w, "  %-6s : %s\n", name, AllBuiltins[name].Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other commands are executed via the system's PATH.")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ls -l")
	fmt.Fprintln(w, "  echo Hello World")
	fmt.Fprintln(w, "-------------------------")
}

func init() {
	mustAddBuiltin(Builtin{
		Name:  "help",
		Short: "Display this help message.",
		Main: func(s *Shell, args []string) {
			s.printHelp()
		},
	})

	mustAddBuiltin(Builtin{
		Name:  "exit",
		Short: "Terminate the shell.",
		Main: func(s *Shell, args []string) {
			fmt.Fprintln(s.stdout, s.cfg.Farewell)
			s.quit = true
		},
	})
}
