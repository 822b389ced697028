package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
	"github.com/trebuchet-org/scilla-check/internal/verify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VerifyRenderer handles rendering of verification results
type VerifyRenderer struct {
	out     io.Writer
	verbose bool
}

// NewVerifyRenderer creates a new verify renderer. Verbose output lists
// passing checks as well.
func NewVerifyRenderer(out io.Writer, verbose bool) *VerifyRenderer {
	return &VerifyRenderer{
		out:     out,
		verbose: verbose,
	}
}

// Render renders the result of a verify run
func (r *VerifyRenderer) Render(result *usecase.VerifyResult) error {
	for _, suite := range result.Suites {
		r.renderSuite(suite)
	}

	if len(result.Suites) > 0 {
		fmt.Fprintln(r.out, renderSummaryTable(result))
	}

	summary := fmt.Sprintf("%d passed, %d failed", result.Passed, result.Failed)
	if result.Skipped > 0 {
		summary += fmt.Sprintf(", %d skipped", result.Skipped)
	}
	if result.Failed > 0 {
		fmt.Fprintln(r.out, FormatError(summary))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(summary))
	}

	return nil
}

func (r *VerifyRenderer) renderSuite(suite *usecase.SuiteResult) {
	bold := color.New(color.Bold)
	fmt.Fprintf(r.out, "📋 %s %s\n", bold.Sprint(suite.Name), color.New(color.Faint).Sprintf("(%s)", suite.Path))

	for _, c := range suite.Cases {
		if c.Passed() {
			fmt.Fprintf(r.out, "  %s %s\n", color.GreenString("✓"), c.Name)
		} else {
			fmt.Fprintf(r.out, "  %s %s\n", color.RedString("✗"), c.Name)
		}

		for _, check := range c.Checks {
			if check.Passed && !r.verbose {
				continue
			}
			r.renderCheck(check)
		}
	}
	fmt.Fprintln(r.out)
}

func (r *VerifyRenderer) renderCheck(check usecase.CheckResult) {
	title := cases.Title(language.English).String(string(check.Kind))
	if check.Policy != "" {
		title += color.New(color.Faint).Sprintf(" [%s]", check.Policy)
	}

	if check.Passed {
		fmt.Fprintf(r.out, "      %s %s\n", color.GreenString("•"), title)
		return
	}

	if check.Error != "" {
		fmt.Fprintf(r.out, "      %s %s: %s\n", color.RedString("•"), title, check.Error)
		return
	}

	fmt.Fprintf(r.out, "      %s %s\n", color.RedString("•"), title)
	for _, m := range check.Mismatches {
		r.renderMismatch(m)
	}
}

// renderMismatch prints the expected and received values of a mismatch
func (r *VerifyRenderer) renderMismatch(m verify.Mismatch) {
	const indent = "          "

	location := string(m.Field)
	if m.Index >= 0 {
		location = fmt.Sprintf("record %d %s", m.Index, m.Field)
	}
	fmt.Fprintf(r.out, "        %s\n", location)

	if m.Field == verify.FieldParams {
		expected, actual := prettyJSON(m.Expected), prettyJSON(m.Actual)
		fmt.Fprintln(r.out, indentLines(ParamsDiff(expected, actual), indent))
		return
	}

	fmt.Fprintf(r.out, "%sExpected: %s\n", indent, color.GreenString(m.Expected))
	fmt.Fprintf(r.out, "%sReceived: %s\n", indent, color.RedString(m.Actual))
}

// ParamsDiff returns a colored unified diff between expected and received
// parameter lists
func ParamsDiff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected + "\n"),
		B:        difflib.SplitLines(actual + "\n"),
		FromFile: "Expected",
		ToFile:   "Received",
		Context:  2,
	})
	if err != nil || diff == "" {
		return fmt.Sprintf("Expected: %s\nReceived: %s", color.GreenString(expected), color.RedString(actual))
	}

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			lines[i] = color.New(color.Bold).Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = color.GreenString(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = color.RedString(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = color.CyanString(line)
		}
	}
	return strings.Join(lines, "\n")
}

func prettyJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func renderSummaryTable(result *usecase.VerifyResult) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{"Suite", "Cases", "Passed", "Failed"})
	for _, suite := range result.Suites {
		failed := suite.Failed()
		t.AppendRow(table.Row{suite.Name, len(suite.Cases), len(suite.Cases) - failed, failed})
	}
	t.AppendFooter(table.Row{"Total", result.Total, result.Passed, result.Failed})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	return t.Render()
}
