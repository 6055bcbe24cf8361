package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aklein/lobbyscribe/internal/recommend"
)

// scoreBarWidth is the character width of the quality bars.
const scoreBarWidth = 20

// QualityBadge renders the balance and fun scores as labeled bars.
func QualityBadge(balance, fun int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Balance %s %s\n", scoreBar(balance), ScoreColor(balance).Render(fmt.Sprintf("%3d", balance))))
	b.WriteString(fmt.Sprintf("Fun     %s %s", scoreBar(fun), ScoreColor(fun).Render(fmt.Sprintf("%3d", fun))))
	return b.String()
}

func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * scoreBarWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
	return ScoreColor(score).Render(bar)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// FormatAdvice renders the advice list for terminal output.
func FormatAdvice(advice []recommend.Advice) string {
	if len(advice) == 0 {
		return Dim("No recommendations — this configuration looks reasonable.")
	}

	var b strings.Builder
	for i, a := range advice {
		style := StyleYellow
		if a.Priority >= 65 {
			style = StyleRed
		} else if a.Priority < 35 {
			style = StyleBlue
		}
		b.WriteString(fmt.Sprintf("%s %s", style.Render("▸"), a.Message))
		if i < len(advice)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatPost renders the composed post for terminal display, dimming the
// attribution footer and highlighting the banner line.
func FormatPost(post string) string {
	lines := strings.Split(strings.TrimRight(post, "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			lines[i] = Bold(line)
		case strings.HasPrefix(line, "—"):
			lines[i] = Dim(line)
		}
	}
	return strings.Join(lines, "\n")
}
