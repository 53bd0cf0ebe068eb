package cpu

import (
	"fmt"
	"io"
)

// DumpRegisters writes the register file to w, one screenful in the
// layout the run loop and the SIGUSR1 handler both use.
func (m *Machine) DumpRegisters(w io.Writer) {
	fmt.Fprintf(w, "DCPU-16 REGISTERS\n")
	fmt.Fprintf(w, "PC: 0x%04X SP: 0x%04X  O: 0x%04X\n", m.PC, m.SP, m.O)
	fmt.Fprintf(w, " A: 0x%04X  B: 0x%04X  C: 0x%04X\n", m.Reg[A], m.Reg[B], m.Reg[C])
	fmt.Fprintf(w, " X: 0x%04X  Y: 0x%04X  Z: 0x%04X\n", m.Reg[X], m.Reg[Y], m.Reg[Z])
	fmt.Fprintf(w, " I: 0x%04X  J: 0x%04X\n", m.Reg[I], m.Reg[J])
	fmt.Fprintf(w, " Cycles: %d\n", m.Cycles)
	fmt.Fprintf(w, "--------------------------------\n")
}

// dumpColumns is the number of words per memory dump row.
const dumpColumns = 8

// DumpMemory writes all 65,536 words of memory to w.
func (m *Machine) DumpMemory(w io.Writer) {
	fmt.Fprintf(w, "DCPU-16 MEMORY\n")
	for i := 0; i < MemSize; i++ {
		if i%dumpColumns == 0 {
			fmt.Fprintf(w, "0x%04X:", i)
		}
		fmt.Fprintf(w, " %04X", m.Mem[i])
		if i%dumpColumns == dumpColumns-1 {
			fmt.Fprintf(w, "\n")
		}
	}
	fmt.Fprintf(w, "--------------------------------\n")
}
