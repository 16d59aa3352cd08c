package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/tkasela/origintag/pkg/annotate"
	"github.com/tkasela/origintag/pkg/origin"
)

// htmlColors maps origin tags to CSS colors; loans not listed here fall
// back to the generic loan color.
var htmlColors = map[origin.Tag]string{
	origin.NativeFinnic:   "#2e7d32",
	origin.LoanLowGerman:  "#e65100",
	origin.LoanGerman:     "#ef6c00",
	origin.LoanSwedish:    "#1565c0",
	origin.LoanRussian:    "#c62828",
	origin.LoanLatin:      "#6a1b9a",
	origin.LoanFrench:     "#ad1457",
	origin.LoanEnglish:    "#00838f",
	origin.LoanLatvian:    "#9e9d24",
	origin.LoanLithuanian: "#827717",
	origin.LoanBaltic:     "#4e342e",
	origin.LoanFinnish:    "#00695c",
	origin.Unknown:        "#757575",
}

const genericLoanColor = "#e65100"

func colorFor(tag origin.Tag) string {
	if c, ok := htmlColors[tag]; ok {
		return c
	}
	if strings.HasPrefix(string(tag), "loan:") {
		return genericLoanColor
	}
	return htmlColors[origin.Unknown]
}

type htmlWord struct {
	Token   string
	Color   string
	Tooltip string
}

type htmlLegendItem struct {
	Tag   origin.Tag
	Color string
}

type htmlPage struct {
	Title  string
	Words  []htmlWord
	Legend []htmlLegendItem
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="et">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 50em; margin: 2em auto; line-height: 1.8; }
.w { border-bottom: 2px solid; cursor: help; text-decoration: none; }
.legend { margin-top: 2em; padding-top: 1em; border-top: 1px solid #ccc; font-size: 0.85em; }
.legend span { display: inline-block; margin-right: 1em; padding: 0 0.4em; border-bottom: 2px solid; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>
{{- range .Words }}
<span class="w" style="border-color: {{.Color}}" title="{{.Tooltip}}">{{.Token}}</span>
{{ end -}}
</p>
<div class="legend">
{{- range .Legend }}
<span style="border-color: {{.Color}}">{{.Tag}}</span>
{{- end }}
</div>
</body>
</html>
`))

// WriteHTML renders annotations as a styled page: each word underlined in
// its origin color, with a tooltip showing lemma, POS, confidence and
// evidence, plus a legend of the tags that occur in the text.
func WriteHTML(w io.Writer, title string, anns []annotate.Annotation) error {
	page := htmlPage{Title: title}

	seen := map[origin.Tag]bool{}
	for _, a := range anns {
		pos := "-"
		if a.POS != nil {
			pos = *a.POS
		}
		tooltip := fmt.Sprintf("%s (%s) %s %.2f [%s]", a.Lemma, pos, a.Origin, a.Confidence, a.Evidence.Source)
		if a.Evidence.Text != nil {
			tooltip += " " + *a.Evidence.Text
		}
		page.Words = append(page.Words, htmlWord{
			Token:   a.Token,
			Color:   colorFor(a.Origin),
			Tooltip: tooltip,
		})
		if !seen[a.Origin] {
			seen[a.Origin] = true
			page.Legend = append(page.Legend, htmlLegendItem{Tag: a.Origin, Color: colorFor(a.Origin)})
		}
	}

	return pageTemplate.Execute(w, page)
}
