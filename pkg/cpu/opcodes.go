package cpu

import "github.com/tismith/dcpu16/pkg/inst"

// Handlers return the number of following instructions to skip; only
// the conditionals ever return non-zero. Each handler charges its own
// fixed cycle cost (operand surcharges were already paid in resolve).

type basicOp struct {
	name string
	fn   func(m *Machine, a, b operand) int
}

type nonBasicOp struct {
	name string
	fn   func(m *Machine, a operand) int
}

// basicOps is indexed by the 4-bit opcode field. Entry 0 (the non-basic
// selector) stays nil; dispatch routes it to nonBasicOps first.
var basicOps = [16]basicOp{
	inst.SET: {"SET", (*Machine).opSet},
	inst.ADD: {"ADD", (*Machine).opAdd},
	inst.SUB: {"SUB", (*Machine).opSub},
	inst.MUL: {"MUL", (*Machine).opMul},
	inst.DIV: {"DIV", (*Machine).opDiv},
	inst.MOD: {"MOD", (*Machine).opMod},
	inst.SHL: {"SHL", (*Machine).opShl},
	inst.SHR: {"SHR", (*Machine).opShr},
	inst.AND: {"AND", (*Machine).opAnd},
	inst.BOR: {"BOR", (*Machine).opBor},
	inst.XOR: {"XOR", (*Machine).opXor},
	inst.IFE: {"IFE", (*Machine).opIfe},
	inst.IFN: {"IFN", (*Machine).opIfn},
	inst.IFG: {"IFG", (*Machine).opIfg},
	inst.IFB: {"IFB", (*Machine).opIfb},
}

// nonBasicOps is indexed by the sub-opcode from the a field. Index 0 is
// reserved and stays nil, which dispatch reports as a decode error.
var nonBasicOps = [2]nonBasicOp{
	inst.JSR: {"JSR", (*Machine).opJsr},
}

func (m *Machine) opSet(a, b operand) int {
	m.write(a, m.read(b))
	m.Cycles++
	return 0
}

func (m *Machine) opAdd(a, b operand) int {
	t := uint32(m.read(a)) + uint32(m.read(b))
	m.write(a, uint16(t))
	m.O = uint16(t >> 16)
	m.Cycles += 2
	return 0
}

func (m *Machine) opSub(a, b operand) int {
	t := int32(m.read(a)) - int32(m.read(b))
	m.write(a, uint16(t))
	if t < 0 {
		m.O = 0xFFFF
	} else {
		m.O = 0
	}
	m.Cycles += 2
	return 0
}

func (m *Machine) opMul(a, b operand) int {
	t := uint32(m.read(a)) * uint32(m.read(b))
	m.write(a, uint16(t))
	m.O = uint16(t >> 16)
	m.Cycles += 2
	return 0
}

func (m *Machine) opDiv(a, b operand) int {
	av, bv := m.read(a), m.read(b)
	if bv == 0 {
		m.write(a, 0)
		m.O = 0
	} else {
		m.write(a, av/bv)
		m.O = uint16((uint32(av) << 16) / uint32(bv))
	}
	m.Cycles += 3
	return 0
}

func (m *Machine) opMod(a, b operand) int {
	bv := m.read(b)
	if bv == 0 {
		m.write(a, 0)
	} else {
		m.write(a, m.read(a)%bv)
	}
	m.Cycles += 3
	return 0
}

func (m *Machine) opShl(a, b operand) int {
	av, bv := m.read(a), m.read(b)
	// overflow comes from the 32-bit product before truncation
	t := uint32(av) << bv
	m.write(a, uint16(t))
	m.O = uint16(t >> 16)
	m.Cycles += 2
	return 0
}

func (m *Machine) opShr(a, b operand) int {
	av, bv := m.read(a), m.read(b)
	m.write(a, av>>bv)
	m.O = uint16((uint32(av) << 16) >> bv)
	m.Cycles += 2
	return 0
}

func (m *Machine) opAnd(a, b operand) int {
	m.write(a, m.read(a)&m.read(b))
	m.Cycles++
	return 0
}

func (m *Machine) opBor(a, b operand) int {
	m.write(a, m.read(a)|m.read(b))
	m.Cycles++
	return 0
}

func (m *Machine) opXor(a, b operand) int {
	m.write(a, m.read(a)^m.read(b))
	m.Cycles++
	return 0
}

// branch charges the shared conditional cost: 2 cycles when the
// condition holds, 3 when the next instruction gets skipped.
func (m *Machine) branch(cond bool) int {
	m.Cycles += 2
	if cond {
		return 0
	}
	m.Cycles++
	return 1
}

func (m *Machine) opIfe(a, b operand) int {
	return m.branch(m.read(a) == m.read(b))
}

func (m *Machine) opIfn(a, b operand) int {
	return m.branch(m.read(a) != m.read(b))
}

func (m *Machine) opIfg(a, b operand) int {
	return m.branch(m.read(a) > m.read(b))
}

func (m *Machine) opIfb(a, b operand) int {
	return m.branch(m.read(a)&m.read(b) != 0)
}

func (m *Machine) opJsr(a operand) int {
	// PC already points past the JSR and its immediate: the return address
	m.push(m.PC)
	m.PC = m.read(a)
	m.Cycles += 2
	return 0
}
