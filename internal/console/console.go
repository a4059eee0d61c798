// Package console prints the tools' status lines.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled status lines. Colors are dropped automatically when
// the writer is not a terminal.
type Printer struct {
	w io.Writer

	info lipgloss.Style
	ok   lipgloss.Style
	fail lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:    w,
		info: r.NewStyle().Foreground(lipgloss.Color("#FFF7DB")),
		ok:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		fail: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87")),
	}
}

// Write lets a Printer stand in for the plain writer of library code; each
// line is rendered in the info style.
func (p *Printer) Write(b []byte) (int, error) {
	for _, line := range strings.SplitAfter(string(b), "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		if _, err := fmt.Fprint(p.w, p.info.Render(text)); err != nil {
			return 0, err
		}
		if len(text) < len(line) {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return 0, err
			}
		}
	}
	return len(b), nil
}

func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.w, p.info.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.w, p.ok.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Failf(format string, args ...any) {
	fmt.Fprintln(p.w, p.fail.Render(fmt.Sprintf(format, args...)))
}
