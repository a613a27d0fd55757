package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	for _, name := range ThemeNames {
		th, err := ParseTheme(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, name, th.Name)
	}

	th, err := ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, "classic", th.Name)

	_, err = ParseTheme("solarized")
	assert.ErrorContains(t, err, "solarized")
}

func TestProgressBar(t *testing.T) {
	th, err := ParseTheme("mono")
	require.NoError(t, err)

	assert.Equal(t, "#####----- 1/2", th.ProgressBar(1, 2, 10))
	assert.Equal(t, "----- 0/0", th.ProgressBar(0, 0, 1))
	assert.Equal(t, "##### 9/3", th.ProgressBar(9, 3, 5))
}

func TestPanelFramesContent(t *testing.T) {
	out := Default().Panel("hello")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "hello")
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is way too long", 10, "this is w…"},
		{"日本語のテキスト", 7, "日本語…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "Truncate(%q, %d)", tt.in, tt.width)
	}
}

func TestMessenger(t *testing.T) {
	var out, errOut bytes.Buffer
	m := Messenger{Out: &out, Err: &errOut, Theme: Default()}

	m.OK("saved")
	m.Fail("broken")

	assert.Contains(t, out.String(), "✔ saved")
	assert.Contains(t, errOut.String(), "✖ broken")
}
