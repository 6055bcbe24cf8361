package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
)

// editorRow is one selectable line in the settings list: a plain setting or
// a single group sub-option.
type editorRow struct {
	id  string
	def domain.SettingDef
	sub *domain.SubOption
}

// editorModel is the bubbletea model for the interactive editor: a settings
// list on the left, the live post preview and advice on the right.
type editorModel struct {
	app *App
	eng *engine.Engine

	rows         []editorRow
	cursor       int
	showAdvanced bool

	editing bool
	input   textinput.Model

	status string
	width  int
	height int
}

func newEditorModel(app *App) editorModel {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24

	m := editorModel{
		app:   app,
		eng:   app.Engine,
		input: ti,
	}
	m.rebuildRows()
	return m
}

// rebuildRows flattens the catalog into selectable rows, expanding groups
// into their sub-options and hiding advanced settings unless toggled on.
func (m *editorModel) rebuildRows() {
	var rows []editorRow
	for _, def := range m.eng.Definitions() {
		if def.AdvancedByDefault && !m.showAdvanced {
			continue
		}
		if group, ok := def.Spec.(domain.GroupSpec); ok {
			for i := range group.Subs {
				sub := group.Subs[i]
				rows = append(rows, editorRow{
					id:  domain.SubID(def.ID, sub.ID),
					def: def,
					sub: &sub,
				})
			}
			continue
		}
		rows = append(rows, editorRow{id: def.ID, def: def})
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m editorModel) current() editorRow { return m.rows[m.cursor] }

func (m editorModel) Init() tea.Cmd { return nil }

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m editorModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "a":
		m.showAdvanced = !m.showAdvanced
		m.rebuildRows()

	case "enter":
		return m.beginEdit()

	case "v":
		row := m.current()
		st, _ := m.eng.Setting(row.id)
		m.eng.SetVisibility(row.id, !st.Visible)
		if !row.def.Hideable {
			m.status = fmt.Sprintf("%s is always shown", row.def.Name)
		}

	case "u":
		m.eng.ClearOverride(m.current().id)

	case "r":
		m.eng.ResetSetting(m.current().id)

	case "R":
		m.eng.ResetAll()
	}
	return m, nil
}

// beginEdit starts editing the selected row. Booleans and sub-options flip
// in place, selects cycle to the next option, text and numbers open the
// inline input.
func (m editorModel) beginEdit() (tea.Model, tea.Cmd) {
	row := m.current()
	st, ok := m.eng.Setting(row.id)
	if !ok {
		return m, nil
	}

	switch spec := row.def.Spec.(type) {
	case domain.BoolSpec, domain.GroupSpec:
		if f, isFlag := st.Value.(domain.Flag); isFlag {
			if res := m.eng.ApplyChange(row.id, !f); !res.Applied {
				m.status = res.Reason
			}
		}
		return m, nil

	case domain.SelectSpec:
		return m.cycleChoice(row, st, spec.Options), nil

	case domain.ChoiceSpec:
		return m.cycleChoice(row, st, spec.Options), nil

	default:
		m.editing = true
		m.input.SetValue(st.Value.Encode())
		m.input.Focus()
		return m, textinput.Blink
	}
}

func (m editorModel) cycleChoice(row editorRow, st domain.SettingState, opts []domain.Option) editorModel {
	cur, _ := st.Value.(domain.Choice)
	next := opts[0].ID
	for i, opt := range opts {
		if opt.ID == cur {
			next = opts[(i+1)%len(opts)].ID
			break
		}
	}
	if res := m.eng.ApplyChange(row.id, next); !res.Applied {
		m.status = res.Reason
	}
	return m
}

func (m editorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil

	case "enter":
		raw := strings.TrimSpace(m.input.Value())
		res := m.eng.ApplyRaw(m.current().id, raw)
		if !res.Applied {
			m.status = res.Reason
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
