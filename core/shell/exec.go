package shell

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/tinyshell/simplesh/core/logger"
)

// runExternal launches args[0] as a child process, resolved through the
// system PATH, and blocks until it terminates. Every failure is reported at
// the point of occurrence and control returns to the loop; nothing here is
// fatal to the shell.
func (s *Shell) runExternal(args []string) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	// Start resolves the program image and spawns the child in one step, so
	// lookup and spawn failures both surface here.
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(s.stderr, "simple_shell: %s: %v\n", args[0], err)
		s.events.Record(&logger.Event{RunCommand: &logger.RunCommand{
			Command: args,
			Error:   err.Error(),
		}})
		return
	}

	s.events.Record(&logger.Event{RunCommand: &logger.RunCommand{Command: args}})

	if err := cmd.Wait(); err != nil {
		// The child's own exit status is deliberately never inspected; only
		// a failure of the wait itself is worth a diagnostic.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(s.stderr, "simple_shell: wait: %v\n", err)
		}
	}
}
