package shell

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinyshell/simplesh/core/config"
)

// newTestShell runs a Shell over scripted stdin, capturing stdout and
// stderr.
func newTestShell(t *testing.T, cfg *config.Configuration, input string) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	sh, err := NewShell(Options{
		Config: cfg,
		Stdin:  ioutil.NopCloser(strings.NewReader(input)),
		Stdout: stdout,
		Stderr: stderr,
	})
	require.NoError(t, err)
	t.Cleanup(func() { sh.Close() })

	return sh, stdout, stderr
}

func TestRunExitsOnEOF(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, nil, "")

	assert.Equal(t, 0, sh.Run())
	assert.Contains(t, stdout.String(), "Exiting shell...")
	assert.Empty(t, stderr.String())
}

func TestRunExitBuiltin(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, nil, "exit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Contains(t, stdout.String(), "Exiting simple_shell.")
	// The loop stopped at exit, so the EOF notice never printed.
	assert.NotContains(t, stdout.String(), "Exiting shell...")
	assert.Empty(t, stderr.String())
}

func TestRunExitIgnoresTrailingArgs(t *testing.T) {
	sh, stdout, _ := newTestShell(t, nil, "exit now please\n")

	assert.Equal(t, 0, sh.Run())
	assert.Contains(t, stdout.String(), "Exiting simple_shell.")
}

func TestRunHelpIgnoresTrailingArgs(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, nil, "help foo\nexit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Contains(t, stdout.String(), "--- Simple Shell Help ---")
	assert.Empty(t, stderr.String())
}

func TestRunWritesPromptToPipedOutput(t *testing.T) {
	sh, stdout, _ := newTestShell(t, nil, "echo hi\nexit\n")

	assert.Equal(t, 0, sh.Run())

	out := stdout.String()
	prompt := strings.Index(out, "simple_shell> ")
	hi := strings.Index(out, "hi\n")

	// The prompt reaches a piped stdout too, before the read blocks.
	require.NotEqual(t, -1, prompt)
	require.NotEqual(t, -1, hi)
	assert.Less(t, prompt, hi)

	// One prompt per read: two commands, two prompts.
	assert.Equal(t, 2, strings.Count(out, "simple_shell> "))
}

func TestRunNoPromptAfterEOF(t *testing.T) {
	sh, stdout, _ := newTestShell(t, nil, "")

	assert.Equal(t, 0, sh.Run())

	// The prompt for the read that hit end-of-input precedes the notice;
	// nothing re-prompts after it.
	assert.True(t, strings.HasSuffix(stdout.String(), "Exiting shell...\n"))
	assert.Equal(t, 1, strings.Count(stdout.String(), "simple_shell> "))
}

func TestRunEmptyLinesAreNoOps(t *testing.T) {
	sh, _, stderr := newTestShell(t, nil, "\n   \n\nexit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Empty(t, stderr.String())
}

func TestRunChildOutputPrecedesNextCommand(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, nil, "echo first\necho second\nexit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Empty(t, stderr.String())

	out := stdout.String()
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	farewell := strings.Index(out, "Exiting simple_shell.")

	// Synchronous waiting keeps iterations strictly ordered.
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, farewell)
	assert.Less(t, first, second)
	assert.Less(t, second, farewell)
}

func TestRunUnknownCommandContinues(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, nil, "this_does_not_exist_xyz\necho still here\nexit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Contains(t, stderr.String(), "this_does_not_exist_xyz")
	assert.Contains(t, stdout.String(), "still here")
}

func TestRunFailingChildIsNotFatal(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, nil, "false\necho still here\nexit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "still here")
}

func TestRunTruncatesLongLines(t *testing.T) {
	cfg := config.Default()
	cfg.MaxLineLength = 8

	// Only "echo ab" of the line survives truncation.
	sh, stdout, _ := newTestShell(t, cfg, "echo abcdefghij\nexit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Contains(t, stdout.String(), "ab\n")
	assert.NotContains(t, stdout.String(), "abcdefghij")
}

func TestRunDropsExcessArgs(t *testing.T) {
	cfg := config.Default()
	cfg.MaxArgs = 3

	// Two slots for tokens: "echo" and "a"; the rest are dropped.
	sh, stdout, _ := newTestShell(t, cfg, "echo a b c d\nexit\n")

	assert.Equal(t, 0, sh.Run())
	assert.Contains(t, stdout.String(), "a\n")
	assert.NotContains(t, stdout.String(), "b")
}

func TestRunPrintsMotd(t *testing.T) {
	cfg := config.Default()
	cfg.Motd = "welcome to simplesh"

	sh, stdout, _ := newTestShell(t, cfg, "exit\n")

	assert.Equal(t, 0, sh.Run())
	assert.True(t, strings.HasPrefix(stdout.String(), "welcome to simplesh\n"))
}

func TestNewShellDefaults(t *testing.T) {
	sh, _, _ := newTestShell(t, nil, "")

	assert.NotNil(t, sh.cfg)
	assert.NotNil(t, sh.events)
	assert.Equal(t, "simple_shell> ", sh.cfg.Prompt)
	assert.False(t, sh.isTerminal)
	assert.Equal(t, sh.cfg.Prompt, sh.prompt())
}
