package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tkasela/origintag/pkg/annotate"
	"github.com/tkasela/origintag/pkg/origin"
)

func sampleAnnotations() []annotate.Annotation {
	pos := "S"
	evidence := "Laen saksa keelest: Spiegel"
	return []annotate.Annotation{
		{
			Token: "Peegel", Lemma: "peegel", POS: &pos,
			Origin: origin.LoanGerman, Confidence: 0.9,
			Evidence:   annotate.Evidence{Source: "manual", Text: &evidence},
			Components: []string{},
		},
		{
			Token: "sätendab", Lemma: "sätendab",
			Origin: origin.Unknown, Confidence: 0.2,
			Evidence:   annotate.Evidence{Source: "none"},
			Components: []string{},
		},
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleAnnotations())
	for _, want := range []string{"TOKEN", "LEMMA", "Peegel", "loan:german", "0.90", "manual", "N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	// Header row comes before data rows.
	if strings.Index(out, "TOKEN") > strings.Index(out, "Peegel") {
		t.Error("header not first")
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, "Proovitekst", sampleAnnotations()); err != nil {
		t.Fatalf("write html: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Proovitekst",
		"Peegel",
		"sätendab",
		htmlColors[origin.LoanGerman],
		htmlColors[origin.Unknown],
		`class="legend"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing %q", want)
		}
	}
	// Tooltip carries lemma, confidence and evidence.
	if !strings.Contains(out, "peegel (S) loan:german 0.90 [manual] Laen saksa keelest: Spiegel") {
		t.Errorf("tooltip missing or malformed:\n%s", out)
	}
}

func TestWriteHTMLLegendDeduplicates(t *testing.T) {
	anns := append(sampleAnnotations(), sampleAnnotations()...)
	var buf bytes.Buffer
	if err := WriteHTML(&buf, "t", anns); err != nil {
		t.Fatalf("write html: %v", err)
	}
	if got := strings.Count(buf.String(), ">loan:german</span>"); got != 1 {
		t.Fatalf("expected one legend entry for loan:german, got %d", got)
	}
}
