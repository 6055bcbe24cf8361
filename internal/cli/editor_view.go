package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aklein/lobbyscribe/internal/cli/formatter"
	"github.com/aklein/lobbyscribe/internal/compose"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/recommend"
)

const listPaneWidth = 46

func (m editorModel) View() string {
	left := m.viewList()
	right := m.viewPreview()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var b strings.Builder
	b.WriteString(formatter.Header("lobbyscribe"))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m editorModel) viewList() string {
	var b strings.Builder
	lastCategory := domain.Category("")

	for i, row := range m.rows {
		if row.def.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			lastCategory = row.def.Category
			b.WriteString(formatter.StyleHeader.Render(
				fmt.Sprintf("%s %s", lastCategory.Icon(), lastCategory.Label())))
			b.WriteString("\n")
		}
		b.WriteString(m.viewRow(i, row))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(listPaneWidth).Render(b.String())
}

func (m editorModel) viewRow(i int, row editorRow) string {
	st, _ := m.eng.Setting(row.id)

	marker := "  "
	if i == m.cursor {
		marker = formatter.StyleHeader.Render("▸ ")
	}

	eye := formatter.Dim("·")
	if st.Visible {
		eye = formatter.StyleGreen.Render("●")
	}
	if st.ManuallySet {
		eye += formatter.StyleYellow.Render("*")
	} else {
		eye += " "
	}

	name := row.def.Name
	if row.sub != nil {
		name = fmt.Sprintf("%s / %s", row.def.Name, row.sub.Label)
	}

	value := compose.FormatValue(row.def.Spec, st.Value)
	if m.editing && i == m.cursor {
		value = m.input.View()
	}

	line := fmt.Sprintf("%s%s %-24s %s", marker, eye, name, value)
	if i == m.cursor {
		return formatter.Bold(line)
	}
	return line
}

func (m editorModel) viewPreview() string {
	post := formatter.FormatPost(compose.Post(m.eng))

	balance, fun := m.eng.Quality()
	badge := formatter.QualityBadge(balance, fun)

	advice := formatter.FormatAdvice(recommend.Active(m.eng, m.app.Logger))

	content := post + "\n\n" + badge + "\n\n" + advice
	return formatter.RenderBox("preview", content)
}

func (m editorModel) viewHelp() string {
	if m.editing {
		return formatter.Dim("enter apply · esc cancel")
	}
	return formatter.Dim("↑/↓ move · enter edit · v visibility · u auto · r reset · R reset all · a advanced · q quit")
}
