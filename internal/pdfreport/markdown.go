// Package pdfreport renders the weekly report as a PDF. It is pure
// presentation over the fixed report shape: build markdown, convert to
// HTML, print through headless Chromium.
package pdfreport

import (
	"fmt"
	"strings"
	"time"

	"github.com/communityflow/flow/pkg/flow/report"
)

// BuildMarkdown lays the report out as a markdown document.
func BuildMarkdown(rep report.Report, now time.Time) string {
	var b strings.Builder

	b.WriteString("# COMMUNITY FLOW\n\n")
	b.WriteString("## Weekly Wellness Weather Report — Chicago\n\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("January 2, 2006"))

	b.WriteString("### Snapshot Summary\n\n")
	fmt.Fprintf(&b, "Total Articles: %d\n\n", rep.TotalArticles)

	b.WriteString("### Top Themes\n\n")
	b.WriteString("| Theme ID | Article Count |\n")
	b.WriteString("| --- | --- |\n")
	for _, tc := range rep.ThemeDistribution {
		fmt.Fprintf(&b, "| %d | %d |\n", tc.ID, tc.Count)
	}
	b.WriteString("\n")

	b.WriteString("### Top Topic Clusters\n\n")
	b.WriteString("| Topic ID | Article Count |\n")
	b.WriteString("| --- | --- |\n")
	for _, tc := range rep.TopClusters {
		fmt.Fprintf(&b, "| %d | %d |\n", tc.TopicID, tc.Count)
	}
	b.WriteString("\n")

	b.WriteString("### Latest Items\n\n")
	if len(rep.LatestItems) == 0 {
		b.WriteString("No articles in the current snapshot.\n")
	}
	for _, item := range rep.LatestItems {
		title := item.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&b, "- **%s**", title)
		if item.Date != "" {
			fmt.Fprintf(&b, " - %s", item.Date)
		}
		if item.Source != "" {
			fmt.Fprintf(&b, " (%s)", item.Source)
		}
		b.WriteString("\n")
	}

	return b.String()
}
