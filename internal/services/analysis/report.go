package analysis

import (
	"fmt"
	"io"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

const rule = "================================================================================"
const thinRule = "----------------------------------------"

// exampleLimit bounds how many sample answers each report section prints.
const exampleLimit = 3

// RenderReport writes the human-readable analysis summary, section by
// section, in the order the pipeline produced it.
func RenderReport(w io.Writer, res *Result) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SURVEY USE CASE ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "\nTotal Responses: %d\n", res.Responses)

	fmt.Fprintln(w, "\nColumns in dataset:")
	for _, col := range res.Columns {
		fmt.Fprintf(w, "  - %s\n", col)
	}

	fmt.Fprintln(w, "\nKey Use Case Columns Found:")
	for _, col := range res.KeyColumns {
		fmt.Fprintf(w, "  - %s\n", col)
	}

	fmt.Fprintf(w, "\nFound %d Geospatial Use Cases\n", len(res.UseCases))

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "DETAILED USE CASE ANALYSIS")
	fmt.Fprintln(w, rule)

	for _, cat := range constants.Categories() {
		cases := res.Summary.Buckets[cat]
		if len(cases) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (%d use cases)\n", cat, len(cases))
		fmt.Fprintln(w, thinRule)
		for i, c := range cases {
			if i >= exampleLimit {
				break
			}
			fmt.Fprintf(w, "%d. User %d: %s\n", i+1, c.Respondent, clip(c.Text, 150))
		}
	}

	if n := len(res.Summary.Uncategorized); n > 0 {
		fmt.Fprintf(w, "\nOther/Uncategorized (%d use cases)\n", n)
		fmt.Fprintln(w, thinRule)
		for i, c := range res.Summary.Uncategorized {
			if i >= exampleLimit {
				break
			}
			fmt.Fprintf(w, "%d. User %d: %s\n", i+1, c.Respondent, clip(c.Text, 150))
		}
	}

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "CAPABILITY COVERAGE")
	fmt.Fprintln(w, rule)

	if d := res.Summary.Detailed; d > 0 {
		fmt.Fprintf(w, "\nSupport Level Analysis (from %d detailed cases):\n", d)
		tally := res.Summary.SupportTally
		printTally := func(label string, level constants.SupportLevel) {
			n := tally[level]
			fmt.Fprintf(w, "  %s: %d (%.1f%%)\n", label, n, float64(n)/float64(d)*100)
		}
		printTally("Fully Supported", constants.SupportFull)
		printTally("Partially Supported", constants.SupportPartial)
		printTally("Needs Extension", constants.SupportNeedsExtension)
	}

	fmt.Fprintln(w, "\nTop Required Capabilities:")
	for i, cc := range res.Summary.Capabilities {
		if i >= 5 {
			break
		}
		fmt.Fprintf(w, "  - %s: %d use cases\n", cc.Capability, cc.Count)
	}

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintf(w, "Generated %d test cases, saved to: %s\n", len(res.TestCases), res.OutputPath)
	fmt.Fprintln(w, rule)
}

// RenderCategory writes the detailed section for a single bucket, every case
// included. Uncategorized selects the leftover bucket.
func RenderCategory(w io.Writer, res *Result, cat constants.Category) {
	var cases []entity.ClassifiedUseCase
	if cat == constants.Uncategorized {
		cases = res.Summary.Uncategorized
	} else {
		cases = res.Summary.Buckets[cat]
	}

	fmt.Fprintf(w, "%s (%d use cases)\n", cat, len(cases))
	fmt.Fprintln(w, thinRule)
	for i, c := range cases {
		fmt.Fprintf(w, "%d. User %d: %s\n", i+1, c.Respondent, clip(c.Text, 150))
	}
}

// clip cuts s to n characters (runes, never mid-character) and always marks
// the end, matching the report's console format.
func clip(s string, n int) string {
	if r := []rune(s); len(r) > n {
		s = string(r[:n])
	}
	return s + "..."
}
