package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/felixfbecker/resizegrid/internal/config"
	"github.com/felixfbecker/resizegrid/pkg/interact"
)

// With the default template a 3x3 item is 20x6 cells and the grid starts
// below the header, so item "1" covers (0,2)-(20,8) with its handle at
// (19,7), and item "2" starts at x=21.

func newTestModel(t *testing.T) GridModel {
	t.Helper()
	m, err := NewGridModel(config.Default(), log.New(io.Discard), nil)
	if err != nil {
		t.Fatalf("NewGridModel() error = %v", err)
	}
	return m
}

func send(t *testing.T, m GridModel, msg tea.Msg) (GridModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GridModel)
	if !ok {
		t.Fatalf("Update() returned %T, want GridModel", next)
	}
	return gm, cmd
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGridModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, mouse(tea.MouseActionPress, 19, 7))
	if snap, ok := m.s.grid.Controller().Snapshot(); !ok || snap.Operation != interact.OperationResize {
		t.Fatalf("Snapshot() = %+v, %v; want a resize of item 1", snap, ok)
	}

	m, _ = send(t, m, mouse(tea.MouseActionMotion, 25, 7))
	m, _ = send(t, m, mouse(tea.MouseActionRelease, 25, 7))

	got := m.Layout()[0]
	if got.Key != "1" || got.ColumnSpan != 4 || got.RowSpan != 3 {
		t.Errorf("item = %+v, want 1 spanning 4x3", got)
	}
	if m.s.grid.Controller().State() != interact.StateIdle {
		t.Error("controller still dragging after release")
	}
}

func TestGridModelMove(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, mouse(tea.MouseActionPress, 30, 4))
	if m.s.focus != "2" {
		t.Errorf("focus = %q, want the pressed item", m.s.focus)
	}
	m, _ = send(t, m, mouse(tea.MouseActionMotion, 5, 4))
	m, _ = send(t, m, mouse(tea.MouseActionRelease, 5, 4))

	keys := m.Layout().Keys()
	if keys[0] != "2" || keys[1] != "1" {
		t.Errorf("order = %v, want 2 before 1", keys)
	}
}

func TestGridModelIgnoresOtherButtons(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	if m.s.grid.Controller().State() != interact.StateIdle {
		t.Error("right button started a gesture")
	}
}

func TestGridModelKeys(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		wantItems int
		wantFocus string
	}{
		{"tab", []string{"tab"}, 7, "2"},
		{"tab wraps", []string{"shift+tab"}, 7, "7"},
		{"delete focused", []string{"d"}, 6, "2"},
		{"delete last", []string{"shift+tab", "d"}, 6, "6"},
		{"add", []string{"a"}, 8, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			for _, k := range tt.keys {
				m, _ = send(t, m, key(k))
			}
			if got := len(m.Layout()); got != tt.wantItems {
				t.Errorf("items = %d, want %d", got, tt.wantItems)
			}
			if tt.wantFocus != "" && m.s.focus != tt.wantFocus {
				t.Errorf("focus = %q, want %q", m.s.focus, tt.wantFocus)
			}
		})
	}
}

func TestGridModelAddFocusesNewItem(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, key("a"))

	last := m.Layout()[len(m.Layout())-1]
	if m.s.focus != last.Key {
		t.Errorf("focus = %q, want new item %q", m.s.focus, last.Key)
	}
	if m.s.grid.Item(last.Key) == nil {
		t.Error("new item not mounted")
	}
	if got := m.s.labels[last.Key]; got != "New 1" {
		t.Errorf("label = %q, want %q", got, "New 1")
	}
}

func TestGridModelAddFitsNarrowGrid(t *testing.T) {
	cfg := config.Default()
	cfg.Columns = 2
	cfg.Items = nil
	m, err := NewGridModel(cfg, log.New(io.Discard), nil)
	if err != nil {
		t.Fatalf("NewGridModel() error = %v", err)
	}

	m, _ = send(t, m, key("a"))
	if len(m.Layout()) != 1 || m.Layout()[0].ColumnSpan != 2 {
		t.Errorf("layout = %v, want one item spanning both columns", m.Layout())
	}
	if m.s.err != nil {
		t.Errorf("render error = %v", m.s.err)
	}
}

func TestNewGridModelRejectsWideItem(t *testing.T) {
	cfg := config.Default()
	cfg.Items[0].ColumnSpan = 20

	if _, err := NewGridModel(cfg, log.New(io.Discard), nil); err == nil {
		t.Error("NewGridModel() succeeded with a 20-column item on 12 columns")
	}
}

func TestGridModelEscReleases(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, mouse(tea.MouseActionPress, 30, 4))
	m, _ = send(t, m, key("esc"))

	if m.s.grid.Controller().State() != interact.StateIdle {
		t.Error("esc did not release the drag")
	}
}

func TestGridModelQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		_, cmd := send(t, m, k)
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestGridModelView(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})

	view := m.View()
	for _, want := range []string{appName, "Item 1", "Item 7", "3×3", string(handleRune), "╭", "7 items"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if got := strings.Count(view, "\n"); got != 19 {
		t.Errorf("View() has %d lines, want 20", got+1)
	}
}
