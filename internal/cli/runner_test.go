package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/tui"
)

type testRunner struct {
	*runner
	out, errOut *bytes.Buffer
	views       []string
}

// newTestRunner replaces the terminal program with drive, which receives
// the root model and may feed it messages before "quitting".
func newTestRunner(t *testing.T, drive func(a *tui.App)) *testRunner {
	t.Helper()
	t.Setenv(config.EnvTheme, "")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tr := &testRunner{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	tr.runner = &runner{
		out:    tr.out,
		errOut: tr.errOut,
		program: func(m tea.Model) error {
			a, ok := m.(*tui.App)
			require.True(t, ok, "program got %T", m)
			if drive != nil {
				drive(a)
			}
			tr.views = append(tr.views, a.View())
			return nil
		},
	}
	return tr
}

func typeAndSubmit(a *tui.App, title string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(title)})
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestRunStartsProgram(t *testing.T) {
	tr := newTestRunner(t, func(a *tui.App) {
		typeAndSubmit(a, "Buy milk")
		typeAndSubmit(a, "Walk dog")
	})

	code := tr.execute(nil)
	require.Equal(t, 0, code, tr.errOut.String())
	require.Len(t, tr.views, 1)
	assert.Contains(t, tr.views[0], "Buy milk")
	assert.Contains(t, tr.views[0], "2 items left")
	assert.Contains(t, tr.out.String(), "0 of 2 todos completed")
}

func TestFilterFlag(t *testing.T) {
	tr := newTestRunner(t, nil)
	code := tr.execute([]string{"--filter", "completed", "--theme", "mono"})
	require.Equal(t, 0, code, tr.errOut.String())
	assert.Contains(t, tr.views[0], "[Completed]")
}

func TestConfigFileAndLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "todo.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("filter: active\nlog_level: debug\nplaceholder: Next?\n"), 0o644))

	tr := newTestRunner(t, func(a *tui.App) { typeAndSubmit(a, "A") })
	code := tr.execute([]string{"--config", cfgPath, "--log-file", logPath})
	require.Equal(t, 0, code, tr.errOut.String())
	assert.Contains(t, tr.views[0], "[Active]")

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(b)
	assert.Contains(t, log, "msg=starting")
	assert.Contains(t, log, "op=submit")
	assert.Contains(t, log, "msg=exit items=1 remaining=1")
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("filter: active\n"), 0o644))

	tr := newTestRunner(t, nil)
	code := tr.execute([]string{"--config", cfgPath, "--filter", "all"})
	require.Equal(t, 0, code, tr.errOut.String())
	assert.Contains(t, tr.views[0], "[All]")
}

func TestThemeFlagBeatsEnv(t *testing.T) {
	tr := newTestRunner(t, nil)
	t.Setenv(config.EnvTheme, "solarized")

	code := tr.execute([]string{"--theme", "mono"})
	require.Equal(t, 0, code, tr.errOut.String())
	require.Len(t, tr.views, 1)
	assert.Contains(t, tr.views[0], "- 0/0")
	assert.NotContains(t, tr.views[0], "░")
}

func TestInvalidEnvThemeIsUsageError(t *testing.T) {
	tr := newTestRunner(t, nil)
	t.Setenv(config.EnvTheme, "solarized")

	assert.Equal(t, 2, tr.execute(nil))
	assert.Contains(t, tr.errOut.String(), `unknown theme "solarized"`)
	assert.Empty(t, tr.views)
}

func TestInvalidConfigValueOverriddenByFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("filter: done\n"), 0o644))

	tr := newTestRunner(t, nil)
	code := tr.execute([]string{"--config", cfgPath, "--filter", "active"})
	require.Equal(t, 0, code, tr.errOut.String())
	assert.Contains(t, tr.views[0], "[Active]")
}

func TestNoColorFlag(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	tr := newTestRunner(t, func(a *tui.App) { typeAndSubmit(a, "A") })
	code := tr.execute([]string{"--no-color", "--theme", "classic"})
	require.Equal(t, 0, code, tr.errOut.String())
	require.Len(t, tr.views, 1)

	assert.Contains(t, tr.views[0], "A")
	assert.False(t, strings.Contains(tr.views[0], "\x1b["), "view has escape codes: %q", tr.views[0])
	assert.False(t, strings.Contains(tr.out.String(), "\x1b["), "summary has escape codes: %q", tr.out.String())
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"bad theme", []string{"--theme", "solarized"}},
		{"bad filter", []string{"--filter", "done"}},
		{"extra argument", []string{"buy", "milk"}},
		{"version argument", []string{"version", "now"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRunner(t, nil)
			assert.Equal(t, 2, tr.execute(tt.args))
			assert.Contains(t, tr.errOut.String(), "Usage:")
			assert.Empty(t, tr.views)
		})
	}
}

func TestProgramFailure(t *testing.T) {
	tr := newTestRunner(t, nil)
	tr.program = func(tea.Model) error { return errors.New("no tty") }

	assert.Equal(t, 1, tr.execute(nil))
	assert.Contains(t, tr.errOut.String(), "tui: no tty")
}

func TestUnwritableLogFile(t *testing.T) {
	tr := newTestRunner(t, nil)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "todo.log")

	assert.Equal(t, 1, tr.execute([]string{"--log-file", missing}))
	assert.Contains(t, tr.errOut.String(), "open log file")
}

func TestVersion(t *testing.T) {
	tr := newTestRunner(t, nil)
	assert.Equal(t, 0, tr.execute([]string{"version"}))
	assert.Equal(t, "todo dev\n", tr.out.String())
}
