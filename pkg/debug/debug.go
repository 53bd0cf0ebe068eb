// Package debug is an interactive single-stepping front end for the
// emulator: a terminal UI showing a memory window around PC, the
// register file, and the decoded next instruction.
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/tismith/dcpu16/pkg/cpu"
	"github.com/tismith/dcpu16/pkg/inst"
)

// windowRows is how many memory rows the view shows around PC.
const windowRows = 8

// rowWidth is words per memory row.
const rowWidth = 8

type model struct {
	m      *cpu.Machine
	prevPC uint16
	err    error
}

// decoded is the next instruction, split out for the dump pane.
type decoded struct {
	Word     uint16
	Opcode   string
	Width    uint16
	Assembly string
}

func (d model) Init() tea.Cmd {
	return nil
}

func (d model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return d, tea.Quit
		case " ", "j":
			d.prevPC = d.m.PC
			if err := d.m.Step(); err != nil {
				d.err = err
				return d, tea.Quit
			}
		}
	}
	return d, nil
}

// renderRow renders one row of memory; the cell at PC is bracketed.
func (d model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < rowWidth; i++ {
		w := d.m.Mem[start+i]
		if start+i == d.m.PC {
			s += fmt.Sprintf("[%04x] ", w)
		} else {
			s += fmt.Sprintf(" %04x  ", w)
		}
	}
	return s
}

// memoryWindow renders the rows around PC.
func (d model) memoryWindow() string {
	header := "addr | "
	for i := range rowWidth {
		header += fmt.Sprintf("  +%x   ", i)
	}

	row := d.m.PC / rowWidth * rowWidth
	row -= rowWidth * (windowRows / 2) // wraps; fine either side of 0
	rows := []string{header}
	for range windowRows {
		rows = append(rows, d.renderRow(row))
		row += rowWidth
	}
	return strings.Join(rows, "\n")
}

func (d model) status() string {
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
 O: %04x
 A: %04x  B: %04x  C: %04x
 X: %04x  Y: %04x  Z: %04x
 I: %04x  J: %04x
cycles: %d
`,
		d.m.PC, d.prevPC,
		d.m.SP,
		d.m.O,
		d.m.Reg[cpu.A], d.m.Reg[cpu.B], d.m.Reg[cpu.C],
		d.m.Reg[cpu.X], d.m.Reg[cpu.Y], d.m.Reg[cpu.Z],
		d.m.Reg[cpu.I], d.m.Reg[cpu.J],
		d.m.Cycles,
	)
}

// next decodes the instruction at PC without executing it.
func (d model) next() decoded {
	w := d.m.Mem[d.m.PC]
	op, a, _ := inst.Decode(w)

	name := inst.BasicName(op)
	if op == inst.NonBasic {
		name = inst.NonBasicName(a)
		if name == "" {
			name = "???"
		}
	}

	pos := d.m.PC + 1
	text := inst.Format(w, func() uint16 {
		v := d.m.Mem[pos]
		pos++
		return v
	})

	return decoded{
		Word:     w,
		Opcode:   name,
		Width:    inst.Length(w),
		Assembly: text,
	}
}

func (d model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			d.memoryWindow(),
			d.status(),
		),
		"",
		spew.Sdump(d.next()),
		"space/j: step  q: quit",
	)
}

// Run starts the interactive stepper over the given machine and blocks
// until the user quits or the machine hits a decode error.
func Run(m *cpu.Machine) error {
	final, err := tea.NewProgram(model{m: m}).Run()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	if d := final.(model); d.err != nil {
		return d.err
	}
	return nil
}
