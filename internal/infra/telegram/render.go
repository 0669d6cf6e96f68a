package telegram

import (
	"fmt"
	"html"
	"strings"

	"qc_review_bot/internal/app"
	"qc_review_bot/internal/domain/qc"
	"qc_review_bot/internal/domain/report"
	"qc_review_bot/internal/domain/review"
)

const rowFormat = "%-10s %-11s %8s %-4s %-4s %6s %s"

// RenderView formats a report view as Telegram HTML: the summary header
// followed by a monospace run table.
func RenderView(v report.View) string {
	h := v.Header
	var b strings.Builder

	fmt.Fprintf(&b, "<b>Qualitative Report: %s</b>\n", html.EscapeString(h.AnalyteName))
	fmt.Fprintf(&b, "QC Panel: %s\n", html.EscapeString(h.QCPanelName))
	fmt.Fprintf(&b, "Lot #: %s\n", html.EscapeString(h.LotNumber))
	closed := ""
	if !h.ClosedDate.IsZero() {
		closed = h.ClosedDate.Format(report.RunDateLayout + " " + report.RunTimeLayout)
	}
	fmt.Fprintf(&b, "Closed Date: %s\n", closed)
	fmt.Fprintf(&b, "Analyte: %s\n", html.EscapeString(h.AnalyteName))
	fmt.Fprintf(&b, "Minimum Range: %s\n", report.FormatLevel(h.MinLevel))
	fmt.Fprintf(&b, "Maximum: %s\n", report.FormatLevel(h.MaxLevel))

	if v.Empty() {
		b.WriteString("\nNo data available.\n")
		return b.String()
	}

	b.WriteString("<pre>")
	writeRow(&b, "Run Date", "Run Time", "Result", "Tech", "QC", "SD", "Comments")
	for row := range v.Rows() {
		writeRow(&b, row.RunDate, row.RunTime, row.Result, row.Tech, row.Status.Label(), row.Deviation.String(), row.Comments)
	}
	b.WriteString("</pre>\n")

	for _, defect := range v.Defects {
		fmt.Fprintf(&b, "Warning: %s\n", html.EscapeString(defect.Error()))
	}
	return b.String()
}

func writeRow(b *strings.Builder, cols ...string) {
	args := make([]any, len(cols))
	for i, c := range cols {
		args[i] = html.EscapeString(c)
	}
	line := fmt.Sprintf(rowFormat, args...)
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}

// RenderState describes a review session for the reviewer.
func RenderState(snap review.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report %s\n", snap.ReportID)
	switch {
	case snap.Closed:
		fmt.Fprintf(&b, "Decision: %s\n", verdictLabel(snap.Choice))
	case snap.Choice == 0:
		b.WriteString("Choose a review option.\n")
	default:
		fmt.Fprintf(&b, "Selected: %s\n", verdictLabel(snap.Choice))
	}
	if snap.Choice == review.Concern {
		if strings.TrimSpace(snap.Draft) == "" {
			b.WriteString("Send the concern/corrective action as a message, then save.\n")
		} else {
			fmt.Fprintf(&b, "Comment: %s\n", html.EscapeString(snap.Draft))
		}
	}
	return b.String()
}

// RenderHistory lists a report's decision trail, oldest first.
func RenderHistory(records []*review.DecisionRecord) string {
	if len(records) == 0 {
		return "No review decisions recorded yet."
	}
	var b strings.Builder
	b.WriteString("<b>Review history</b>\n")
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %s %s by reviewer #%d", i+1, rec.DecidedAt.UTC().Format("01/02/2006 15:04"), verdictLabel(rec.Decision.Verdict()), rec.ReviewerID)
		if c := rec.Decision.Comment(); c != "" {
			fmt.Fprintf(&b, ": %s", html.EscapeString(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPanel formats a panel overview.
func RenderPanel(lotNumber string, entries []app.PanelEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Lot %s</b>\n<pre>", html.EscapeString(lotNumber))
	fmt.Fprintf(&b, "%-16s %4s %4s %4s %4s\n", "Analyte", "Runs", "OK", "HIGH", "LOW")
	for _, e := range entries {
		if e.Unavailable {
			fmt.Fprintf(&b, "%-16s %s\n", html.EscapeString(e.AnalyteName), "no data available")
			continue
		}
		fmt.Fprintf(&b, "%-16s %4d %4d %4d %4d\n", html.EscapeString(e.AnalyteName), e.Runs,
			e.Counts[qc.InRange], e.Counts[qc.OutOfRangeHigh], e.Counts[qc.OutOfRangeLow])
	}
	b.WriteString("</pre>")
	return b.String()
}

func verdictLabel(v review.Verdict) string {
	switch v {
	case review.Approved:
		return "QC Approved"
	case review.Concern:
		return "QC Concern/Corrective Action"
	default:
		return "none"
	}
}
