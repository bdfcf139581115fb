package notice

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixDeprecatedCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		project  string
		want     string
	}{
		{
			name:     "suffixed template",
			template: "webpack-2.0",
			project:  "my-app",
			want:     "vue init webpack my-app",
		},
		{
			name:     "marker in the middle",
			template: "browserify-2.0-simple",
			project:  "app",
			want:     "vue init browserify-simple app",
		},
		{
			name:     "only first marker removed",
			template: "a-2.0-2.0",
			project:  "app",
			want:     "vue init a-2.0 app",
		},
		{
			name:     "no marker",
			template: "webpack",
			project:  "app",
			want:     "vue init webpack app",
		},
		{
			name:     "empty name keeps separator",
			template: "webpack-2.0",
			project:  "",
			want:     "vue init webpack ",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SuffixDeprecatedCommand(tt.template, tt.project))
		})
	}
}

func TestLegacyBranchCommand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "vue init webpack#1.0 my-app", LegacyBranchCommand("webpack", "my-app"))
	assert.Equal(t, "vue init webpack-simple#1.0 ", LegacyBranchCommand("webpack-simple", ""))
}

func TestPrinter_V2SuffixDeprecated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf, WithNoColor()).V2SuffixDeprecated("webpack-2.0", "my-app")

	want := "  This template is deprecated, as the original template now uses Vue 2.0 by default.\n" +
		"\n" +
		"  Please use this command instead: vue init webpack my-app\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_V2BranchIsNowDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf, WithNoColor()).V2BranchIsNowDefault("webpack", "my-app")

	want := "  This will install Vue 2.x version of the template.\n" +
		"\n" +
		"  For Vue 1.x use: vue init webpack#1.0 my-app\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_FourLines(t *testing.T) {
	t.Parallel()

	inputs := [][2]string{
		{"webpack-2.0", "my-app"},
		{"", ""},
		{"x", "name with spaces"},
		{"pwa#dev", "ünïcode"},
	}

	for _, in := range inputs {
		for _, colored := range []bool{false, true} {
			opts := []Option{WithNoColor()}
			if colored {
				opts = append(opts, WithColorProfile(termenv.ANSI))
			}

			var buf bytes.Buffer
			p := NewPrinter(&buf, opts...)

			p.V2SuffixDeprecated(in[0], in[1])
			assertFourLines(t, buf.String())

			buf.Reset()
			p.V2BranchIsNowDefault(in[0], in[1])
			assertFourLines(t, buf.String())
		}
	}
}

func assertFourLines(t *testing.T, out string) {
	t.Helper()

	require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.NotEmpty(t, lines[0])
	assert.Empty(t, lines[1])
	assert.NotEmpty(t, lines[2])
	assert.Empty(t, lines[3])
}

func TestPrinter_KeepsTabs(t *testing.T) {
	t.Parallel()

	template, name := "web\tpack-2.0", "a\tb"

	var buf bytes.Buffer
	p := NewPrinter(&buf, WithNoColor())

	p.V2SuffixDeprecated(template, name)
	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[2], ": "+SuffixDeprecatedCommand(template, name)), lines[2])

	buf.Reset()
	p.V2BranchIsNowDefault(template, name)
	lines = strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[2], ": "+LegacyBranchCommand(template, name)), lines[2])
}

func TestPrinter_Colors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf, WithColorProfile(termenv.ANSI)).V2SuffixDeprecated("webpack-2.0", "my-app")
	out := buf.String()

	assert.Contains(t, out, "\x1b[31m  This template is deprecated")
	assert.Contains(t, out, "\x1b[33m  Please use this command instead: ")
	assert.Contains(t, out, "\x1b[32mvue init webpack my-app")

	buf.Reset()
	NewPrinter(&buf, WithColorProfile(termenv.ANSI)).V2BranchIsNowDefault("webpack", "my-app")
	out = buf.String()

	assert.Contains(t, out, "\x1b[32m  This will install Vue 2.x version of the template.")
	assert.Contains(t, out, "\x1b[33m  For Vue 1.x use: ")
	assert.Contains(t, out, "\x1b[32mvue init webpack#1.0 my-app")
}

func TestPrinter_NoColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf, WithColorProfile(termenv.ANSI), WithNoColor()).V2BranchIsNowDefault("webpack", "app")

	assert.NotContains(t, buf.String(), "\x1b[")
}
