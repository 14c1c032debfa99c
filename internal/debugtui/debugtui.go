// Package debugtui is a single-step bubbletea debugger over a running
// Console: registers, flags, PPU mode/LY, and a hex dump of the page
// around PC, advancing one machine cycle per keypress.
//
// Grounded directly on _examples/hejops-gone/cpu/debugger.go, which
// builds exactly this shape of bubbletea Model (page table + status
// panel + spew dump, "space" single-steps, "q" quits) around a CPU. This
// is a diagnostic console, not the LCD presentation layer spec.md
// excludes from the core: it renders emulator state, not pixels, and the
// frame buffer stays behind the Renderer port.
package debugtui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gbcore"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pcStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

type model struct {
	console  *gbcore.Console
	prevPC   uint16
	err      error
	quitting bool
}

// New builds the debugger model over an already-constructed Console. The
// caller owns Console lifetime; debugtui never constructs one itself.
func New(console *gbcore.Console) tea.Model {
	return model{console: console, prevPC: console.CPU.Regs.PC}
}

// Run starts the interactive TUI and blocks until the user quits or the
// console hits a fatal error.
func Run(console *gbcore.Console) error {
	_, err := tea.NewProgram(New(console)).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "n":
			m.prevPC = m.console.CPU.Regs.PC
			if err := m.console.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory, highlighting PC if it
// falls in this row.
func (m model) renderPage(start uint16) string {
	pc := m.console.CPU.Regs.PC
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.console.Bus.Read8(addr)
		if addr == pc {
			s += pcStyle.Render(fmt.Sprintf("[%02x]", b)) + " "
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

// pageTable renders five 16-byte rows centered on the row containing PC.
func (m model) pageTable() string {
	base := m.console.CPU.Regs.PC &^ 0xF
	lines := []string{"addr |  0   1   2   3   4   5   6   7   8   9   a   b   c   d   e   f"}
	for row := -2; row <= 2; row++ {
		start := int(base) + row*16
		if start < 0 || start > 0xFFFF {
			continue
		}
		lines = append(lines, m.renderPage(uint16(start)))
	}
	return strings.Join(lines, "\n")
}

func boolGlyph(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (m model) status() string {
	r := m.console.CPU.Regs
	return fmt.Sprintf(
		"PC: %04x (was %04x)\nSP: %04x\n\nA:%02x F:%02x\nB:%02x C:%02x\nD:%02x E:%02x\nH:%02x L:%02x\n\nZ N H C\n%s %s %s %s\n\nIME:%v HALT:%v\n\nPPU mode:%d LY:%d",
		r.PC, m.prevPC, r.SP,
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L,
		boolGlyph(r.FlagZ()), boolGlyph(r.FlagN()), boolGlyph(r.FlagH()), boolGlyph(r.FlagC()),
		m.console.CPU.IME, m.console.CPU.Halted,
		m.console.PPU.Mode(), m.console.PPU.LY(),
	)
}

func (m model) View() string {
	if m.quitting {
		return "\n"
	}

	header := headerStyle.Render("gbcore debugger — space/n: step one machine cycle, q: quit")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), "   ", m.status())

	errLine := ""
	if m.err != nil {
		errLine = "\n" + errorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		"",
		spew.Sdump(m.console.CPU.Regs),
		errLine,
	)
}
