// Package report renders annotation results for humans: a colored terminal
// table and a standalone HTML page.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tkasela/origintag/pkg/annotate"
	"github.com/tkasela/origintag/pkg/origin"
)

var (
	colorNative  = lipgloss.Color("#00FF99")
	colorLoan    = lipgloss.Color("#F59E0B")
	colorUnknown = lipgloss.Color("#64748B")

	headerStyle  = lipgloss.NewStyle().Bold(true)
	nativeStyle  = lipgloss.NewStyle().Foreground(colorNative)
	loanStyle    = lipgloss.NewStyle().Foreground(colorLoan)
	unknownStyle = lipgloss.NewStyle().Foreground(colorUnknown)
)

func styleFor(tag origin.Tag) lipgloss.Style {
	switch {
	case tag == origin.NativeFinnic:
		return nativeStyle
	case strings.HasPrefix(string(tag), "loan:"):
		return loanStyle
	default:
		return unknownStyle
	}
}

// RenderTable formats annotations as an aligned, color-coded table.
func RenderTable(anns []annotate.Annotation) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-15s | %-15s | %-4s | %-20s | %-5s | %-12s",
		"TOKEN", "LEMMA", "POS", "ORIGIN", "CONF", "SOURCE")))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 85))
	b.WriteString("\n")

	for _, a := range anns {
		pos := "N/A"
		if a.POS != nil {
			pos = *a.POS
		}
		line := fmt.Sprintf("%-15s | %-15s | %-4s | %-20s | %-5.2f | %-12s",
			a.Token, a.Lemma, pos, a.Origin, a.Confidence, a.Evidence.Source)
		b.WriteString(styleFor(a.Origin).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
