// Package notice prints the console notices shown when a user picks an outdated project template.
package notice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	// v2Suffix is the marker legacy Vue 2.0 templates carried in their name before 2.0 became the default.
	v2Suffix = "-2.0"
	// v1Branch selects the Vue 1.x branch of an official template.
	v1Branch = "#1.0"
)

// ANSI basic colours.
const (
	red    = lipgloss.Color("1")
	green  = lipgloss.Color("2")
	yellow = lipgloss.Color("3")
)

// Printer writes notices to a destination, colouring them when the destination supports it.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// Option configures a Printer.
type Option func(*Printer)

// WithNoColor disables colour output regardless of the destination.
func WithNoColor() Option {
	return WithColorProfile(termenv.Ascii)
}

// WithColorProfile forces the colour profile instead of detecting it from the destination.
func WithColorProfile(profile termenv.Profile) Option {
	return func(p *Printer) {
		p.renderer.SetColorProfile(profile)
	}
}

// NewPrinter creates a Printer writing to w. Colours are detected from w unless an option overrides them.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = NewPrinter(os.Stdout)

// SuffixDeprecatedCommand returns the init command to use instead of a "-2.0" suffixed template.
// Only the first marker is removed.
func SuffixDeprecatedCommand(template, name string) string {
	return "vue init " + strings.Replace(template, v2Suffix, "", 1) + " " + name
}

// LegacyBranchCommand returns the init command that installs the Vue 1.x branch of the template.
func LegacyBranchCommand(template, name string) string {
	return "vue init " + template + v1Branch + " " + name
}

// V2SuffixDeprecated prints the deprecation notice for a "-2.0" suffixed template to standard output.
func V2SuffixDeprecated(template, name string) {
	std.V2SuffixDeprecated(template, name)
}

// V2BranchIsNowDefault prints to standard output that the default branch of the template targets Vue 2.x.
func V2BranchIsNowDefault(template, name string) {
	std.V2BranchIsNowDefault(template, name)
}

// V2SuffixDeprecated prints the deprecation notice for a "-2.0" suffixed template.
func (p *Printer) V2SuffixDeprecated(template, name string) {
	p.print(
		p.style(red).Render("  This template is deprecated, as the original template now uses Vue 2.0 by default."),
		p.style(yellow).Render("  Please use this command instead: ")+
			p.style(green).Render(SuffixDeprecatedCommand(template, name)),
	)
}

// V2BranchIsNowDefault prints that the default branch of the template targets Vue 2.x.
func (p *Printer) V2BranchIsNowDefault(template, name string) {
	p.print(
		p.style(green).Render("  This will install Vue 2.x version of the template."),
		p.style(yellow).Render("  For Vue 1.x use: ")+
			p.style(green).Render(LegacyBranchCommand(template, name)),
	)
}

// print writes the message and the suggestion each followed by a blank line.
// Write errors are ignored, a broken output stream is the caller's concern.
func (p *Printer) print(message, suggestion string) {
	_, _ = fmt.Fprintf(p.w, "%s\n\n%s\n\n", message, suggestion)
}

// style keeps tabs as is so the printed command matches the constructed one.
func (p *Printer) style(c lipgloss.Color) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
}
