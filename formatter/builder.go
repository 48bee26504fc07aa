package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/parsec/ingest"
	"github.com/gnolang/parsec/result"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
	kindStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	fieldStyle   = color.New(color.FgWhite)
)

const failureTemplate = `{{header .Kind .MaxLineNumWidth .Filename .Line -}}
{{snippet .Text .Line .MaxLineNumWidth .Padding -}}
{{message .Message .Padding}}
`

var failureTmpl = template.Must(template.New("failure").Funcs(template.FuncMap{
	"header":  header,
	"snippet": snippet,
	"message": message,
}).Parse(failureTemplate))

type failureData struct {
	Kind            string
	Filename        string
	Line            int
	Text            string
	Message         string
	MaxLineNumWidth int
	Padding         string
}

// GenerateFormattedReports renders reports in order.
func GenerateFormattedReports(reports []ingest.Report, verbose bool) string {
	var builder strings.Builder
	for _, report := range reports {
		builder.WriteString(FormatReport(report, verbose))
	}
	return builder.String()
}

// FormatReport renders one report: a summary line for a parsed file, with the
// records themselves when verbose, or the failing line for a failed one.
func FormatReport(report ingest.Report, verbose bool) string {
	if report.Failed() {
		return buildFailure(report)
	}

	var builder strings.Builder
	builder.WriteString(okStyle.Sprint("ok: "))
	builder.WriteString(fileStyle.Sprint(report.Filename))
	builder.WriteString(fmt.Sprintf(" (%d records)\n", len(report.Records)))

	if verbose {
		for i, fields := range report.Records {
			parts := make([]string, len(fields))
			for j, f := range fields {
				parts[j] = fmt.Sprintf("%s=%v", f.Name, f.Value)
			}
			builder.WriteString(lineStyle.Sprintf("%4d | ", i+1))
			builder.WriteString(fieldStyle.Sprintln(strings.Join(parts, " ")))
		}
	}
	return builder.String()
}

// FormatFailure renders a failure that has no file position, such as a
// calculator error.
func FormatFailure(e result.Error) string {
	return errorStyle.Sprint("error: ") + kindStyle.Sprint(e.Kind.String()) + "\n" +
		messageStyle.Sprintf("  = %s\n", e.Error())
}

func buildFailure(report ingest.Report) string {
	maxLineNumWidth := len(fmt.Sprintf("%d", report.Line))
	data := failureData{
		Kind:            report.Failure.Kind.String(),
		Filename:        report.Filename,
		Line:            report.Line,
		Text:            strings.TrimRight(report.Text, "\r"),
		Message:         report.Failure.Error(),
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
	}

	var buf bytes.Buffer
	if err := failureTmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(kind string, maxLineNumWidth int, filename string, line int) string {
	endString := errorStyle.Sprint("error: ")
	endString += kindStyle.Sprintf("%s\n", kind)

	padding := strings.Repeat(" ", maxLineNumWidth)
	endString += lineStyle.Sprintf("%s--> ", padding)
	endString += fileStyle.Sprintf("%s:%d\n", filename, line)
	return endString
}

func snippet(text string, line int, maxLineNumWidth int, padding string) string {
	endString := lineStyle.Sprintf("%s|\n", padding)
	endString += lineStyle.Sprintf("%*d | ", maxLineNumWidth, line)
	endString += fmt.Sprintln(text)
	return endString
}

func message(msg string, padding string) string {
	endString := lineStyle.Sprintf("%s= ", padding)
	endString += messageStyle.Sprintf("%s\n", msg)
	return endString
}
