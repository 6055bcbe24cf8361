// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and draining
// returned Cmds inline, which enables deterministic, goroutine-free testing.
// Cursor blink Cmds (which block on timer channels) are run with a short
// timeout and skipped when they don't return promptly.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth is the safety limit for command draining.
const maxDrainDepth = 100

// cmdTimeout separates instant Cmds (message factories) from blocking ones
// like cursor blink, which waits ~530ms.
const cmdTimeout = 10 * time.Millisecond

// Driver drives a tea.Model synchronously.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain; the runtime
	// normally intercepts it before the model does.
	Quitting bool
}

// New creates a Driver and processes the model's Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drain(model.Init(), 0)
	return d
}

// Send delivers a message to the model and drains any resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	d.deliver(msg, 0)
}

// Type delivers each rune of s as a key press.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Key delivers a special key press by type.
func (d *Driver) Key(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) deliver(msg tea.Msg, depth int) {
	if depth > maxDrainDepth {
		d.T.Fatalf("teatest: drain depth exceeded %d, likely a command loop", maxDrainDepth)
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
		return
	}

	model, cmd := d.Model.Update(msg)
	d.Model = model
	d.drain(cmd, depth+1)
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	if cmd == nil {
		return
	}

	msgCh := make(chan tea.Msg, 1)
	go func() { msgCh <- cmd() }()

	select {
	case msg := <-msgCh:
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				d.drain(c, depth+1)
			}
			return
		}
		d.deliver(msg, depth)
	case <-time.After(cmdTimeout):
		// Blocking Cmd (cursor blink); skip it.
	}
}
