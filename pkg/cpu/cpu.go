// Package cpu implements the DCPU-16 virtual machine: the register file
// and word-addressable memory, operand resolution, the opcode handlers,
// and the fetch-decode-execute loop.
package cpu

const (
	// MemSize is the number of addressable words.
	MemSize = 0x10000

	// StackTop is the initial stack pointer. The stack grows downward;
	// 0xFFFF is the empty-stack sentinel and the first PUSH writes to
	// 0xFFFE.
	StackTop = 0xFFFF
)

// Register indices into Machine.Reg, in specifier order.
const (
	A = iota
	B
	C
	X
	Y
	Z
	I
	J
)

// Machine is a single DCPU-16. All arithmetic wraps modulo 2^16 with
// overflow captured in O. The zero value is not ready to run; use New,
// which applies the initial stack pointer.
type Machine struct {
	PC  uint16
	SP  uint16
	O   uint16
	Reg [8]uint16

	Mem [MemSize]uint16

	// Cycles counts elapsed machine cycles: the fixed cost of each
	// executed opcode plus one per immediate-consuming operand.
	Cycles uint64
}

// New returns a zeroed machine with SP at the top of memory.
func New() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

// Reset restores the power-on state: everything zero, SP = 0xFFFF.
func (m *Machine) Reset() {
	*m = Machine{SP: StackTop}
}

// Load copies a program image into memory starting at address 0. At most
// MemSize words are used; memory past the image stays zero.
func (m *Machine) Load(words []uint16) {
	copy(m.Mem[:], words)
}

// nextWord fetches the word at PC and advances PC, wrapping at the top
// of memory.
func (m *Machine) nextWord() uint16 {
	v := m.Mem[m.PC]
	m.PC++
	return v
}

// push writes v to the new top of stack ([--SP]).
func (m *Machine) push(v uint16) {
	m.SP--
	m.Mem[m.SP] = v
}
