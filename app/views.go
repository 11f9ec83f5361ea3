package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/studyport/studyport-tui/msg"
	"github.com/studyport/studyport-tui/style"
	"github.com/studyport/studyport-tui/ui/vlist"
)

// Fixed row heights per list; the virtualizer clips anything longer.
const (
	schoolRowHeight = 2
	recRowHeight    = 2
	notifRowHeight  = 2
	promptRowHeight = 3
	caseRowHeight   = 6
	listGap         = 1
)

// cursors tracks the highlighted item per list view. Render closures capture
// a pointer so the value-receiver Update can still move the highlight.
type cursors struct {
	schools int
	recs    int
	notifs  int
	prompts int
	width   int
}

// -- Schools ----------------------------------------------------------------

func schoolRow(cur *cursors) vlist.RenderFunc[msg.School] {
	return func(s msg.School, index int, _ vlist.Slot) string {
		title := style.RowTitle.Render(s.Name)
		loc := style.RowMeta.Render("  " + s.Country)
		if s.City != "" {
			loc = style.RowMeta.Render("  " + s.City + ", " + s.Country)
		}

		meta := fmt.Sprintf("   #%d · $%s/yr · %.0f%% admit",
			s.Ranking, formatAmount(s.TuitionUSD), s.AcceptanceRate*100)
		if cur.width < compactBreakpoint {
			meta = fmt.Sprintf("   #%d · %.0f%%", s.Ranking, s.AcceptanceRate*100)
		}

		line1 := title + loc
		line2 := style.RowMeta.Render(meta)
		if index == cur.schools {
			line1 = style.RowSelected.Render("▸ " + s.Name + loc)
			line2 = style.RowSelected.Render(meta)
		} else {
			line1 = "  " + line1
		}
		return line1 + "\n" + line2
	}
}

func schoolKey(s msg.School, _ int) string { return s.ID }

// -- Admission cases (grid cards) --------------------------------------------

func caseCard(c msg.AdmissionCase, _ int) string {
	badge := style.OutcomeBadge(c.Outcome).Render(strings.ToUpper(c.Outcome))
	title := style.CardTitle.Render(clip(c.Title, 40))
	meta := style.CardMeta.Render(fmt.Sprintf("%s · %s · %d", clip(c.SchoolName, 24), c.Program, c.Year))
	gpa := style.CardMeta.Render(fmt.Sprintf("GPA %.2f", c.GPA))
	highlights := style.RowMeta.Render(clip(strings.Join(c.Highlights, " · "), 40))

	body := title + "\n" + meta + "\n" + badge + "  " + gpa + "\n" + highlights
	return style.CardBorder.Render(body)
}

// -- Recommendations -----------------------------------------------------------

func recRow(cur *cursors) vlist.RenderFunc[msg.Recommendation] {
	return func(r msg.Recommendation, index int, _ vlist.Slot) string {
		tier := style.TierStyle(r.Tier).Render(fmt.Sprintf("[%s]", r.Tier))
		name := style.RowTitle.Render(r.SchoolName)
		score := style.RowMeta.Render(fmt.Sprintf(" %.0f", r.Score*100))

		line1 := fmt.Sprintf("%s %s%s", tier, name, score)
		line2 := style.RowMeta.Render("   " + clip(r.Rationale, cur.width-4))
		if index == cur.recs {
			line1 = style.RowSelected.Render("▸ ") + line1
		} else {
			line1 = "  " + line1
		}
		return line1 + "\n" + line2
	}
}

func recKey(r msg.Recommendation, _ int) string { return r.SchoolID }

// -- Notifications ------------------------------------------------------------

func notifRow(cur *cursors) vlist.RenderFunc[msg.Notification] {
	return func(n msg.Notification, index int, _ vlist.Slot) string {
		dot := style.HeaderUnread.Render("●")
		if n.Read {
			dot = style.RowDivider.Render("○")
		}
		title := style.RowTitle.Render(n.Title)
		if n.Read {
			title = style.Faint.Render(n.Title)
		}

		line1 := dot + " " + title
		line2 := style.RowMeta.Render("  " + clip(n.Body, cur.width-4))
		if index == cur.notifs {
			line1 = style.RowSelected.Render("▸") + " " + title
		}
		return line1 + "\n" + line2
	}
}

func notifKey(n msg.Notification, _ int) string { return n.ID }

// -- Essay prompts (review queue) ----------------------------------------------

func promptRow(cur *cursors) vlist.RenderFunc[msg.EssayPrompt] {
	return func(p msg.EssayPrompt, index int, _ vlist.Slot) string {
		head := style.RowTitle.Render(p.SchoolName) +
			style.RowMeta.Render(fmt.Sprintf("  %d · %d words", p.CycleYear, p.WordLimit))
		text := style.Faint.Render("  " + clip(p.PromptText, cur.width-4))
		hint := style.Hint.Render("  a approve · x reject · enter detail")
		if index == cur.prompts {
			head = style.RowSelected.Render("▸ "+p.SchoolName) +
				style.RowMeta.Render(fmt.Sprintf("  %d · %d words", p.CycleYear, p.WordLimit))
		} else {
			head = "  " + head
		}
		return head + "\n" + text + "\n" + hint
	}
}

func promptKey(p msg.EssayPrompt, _ int) string { return p.ID }

// -- Detail markdown ------------------------------------------------------------

func schoolMarkdown(s msg.School) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", s.Name)
	fmt.Fprintf(&sb, "%s, %s\n\n", s.City, s.Country)
	fmt.Fprintf(&sb, "- **Ranking:** #%d\n", s.Ranking)
	fmt.Fprintf(&sb, "- **Tuition:** $%s per year\n", formatAmount(s.TuitionUSD))
	fmt.Fprintf(&sb, "- **Acceptance rate:** %.0f%%\n", s.AcceptanceRate*100)
	if s.Summary != "" {
		fmt.Fprintf(&sb, "\n%s\n", s.Summary)
	}
	return sb.String()
}

func recMarkdown(r msg.Recommendation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.SchoolName)
	fmt.Fprintf(&sb, "**%s** · fit score %.0f\n\n", r.Tier, r.Score*100)
	fmt.Fprintf(&sb, "%s\n", r.Rationale)
	return sb.String()
}

func notifMarkdown(n msg.Notification) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", n.Title)
	fmt.Fprintf(&sb, "%s\n\n", n.Body)
	fmt.Fprintf(&sb, "_%s · %s_\n", n.Kind, n.CreatedAt)
	return sb.String()
}

func promptMarkdown(p msg.EssayPrompt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s — %d\n\n", p.SchoolName, p.CycleYear)
	fmt.Fprintf(&sb, "> %s\n\n", p.PromptText)
	fmt.Fprintf(&sb, "- **Word limit:** %d\n", p.WordLimit)
	if p.SourceURL != "" {
		fmt.Fprintf(&sb, "- **Source:** %s\n", p.SourceURL)
	}
	fmt.Fprintf(&sb, "- **Status:** %s\n", p.Status)
	if p.Diff != "" {
		fmt.Fprintf(&sb, "\n## Changes since last cycle\n\n```diff\n%s\n```\n", p.Diff)
	}
	return sb.String()
}

func helpMarkdown(admin bool) string {
	var sb strings.Builder
	sb.WriteString("# Keys\n\n")
	sb.WriteString("| Key | Action |\n|---|---|\n")
	sb.WriteString("| tab / shift+tab | switch view |\n")
	sb.WriteString("| ↑/k ↓/j | move cursor |\n")
	sb.WriteString("| u / d | half page |\n")
	sb.WriteString("| enter | open detail |\n")
	sb.WriteString("| / | search schools |\n")
	sb.WriteString("| g | generate recommendations |\n")
	sb.WriteString("| m | mark notification read |\n")
	sb.WriteString("| y | copy item |\n")
	sb.WriteString("| r | refresh view |\n")
	if admin {
		sb.WriteString("| a / x | approve / reject prompt |\n")
		sb.WriteString("| s | scrape prompts for school |\n")
	}
	sb.WriteString("| q | quit |\n")
	return sb.String()
}

// renderMarkdown renders markdown using glamour, falling back to plain text
// on error.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// -- Helpers --------------------------------------------------------------------

// clip truncates s to max runes with an ellipsis.
func clip(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// formatAmount renders 1500 as "1,500".
func formatAmount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
