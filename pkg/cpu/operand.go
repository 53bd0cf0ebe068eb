package cpu

import "github.com/tismith/dcpu16/pkg/inst"

// operandKind tags what a resolved operand refers to.
type operandKind uint8

const (
	operandReg operandKind = iota // general register, index in addr
	operandMem                    // memory cell, address in addr
	operandSP
	operandPC
	operandO
	operandLit // literal, value in lit; writes are dropped
)

// operand is a resolved read/write reference into machine state. Memory
// operands capture the effective address at resolve time, so a later PC
// or SP change cannot shift where the handler reads and writes. Literal
// operands carry their value directly; there is no shared scratch cell,
// so the a and b operands of one instruction can never alias each other.
type operand struct {
	kind operandKind
	addr uint16
	lit  uint16
}

// resolve maps a 6-bit operand specifier to an operand reference. The
// immediate-consuming modes (0x10-0x17, 0x1e, 0x1f) advance PC and cost
// one extra cycle; POP increments SP after taking the address, PUSH
// decrements it before.
func (m *Machine) resolve(spec uint16) operand {
	spec &= inst.OperandMask
	switch {
	case spec <= 0x07:
		return operand{kind: operandReg, addr: spec}
	case spec <= 0x0F:
		return operand{kind: operandMem, addr: m.Reg[spec-0x08]}
	case spec <= 0x17:
		m.Cycles++
		return operand{kind: operandMem, addr: m.nextWord() + m.Reg[spec-0x10]}
	case spec == inst.SpecPop:
		o := operand{kind: operandMem, addr: m.SP}
		m.SP++
		return o
	case spec == inst.SpecPeek:
		return operand{kind: operandMem, addr: m.SP}
	case spec == inst.SpecPush:
		m.SP--
		return operand{kind: operandMem, addr: m.SP}
	case spec == inst.SpecSP:
		return operand{kind: operandSP}
	case spec == inst.SpecPC:
		return operand{kind: operandPC}
	case spec == inst.SpecO:
		return operand{kind: operandO}
	case spec == inst.SpecIndirect:
		m.Cycles++
		return operand{kind: operandMem, addr: m.nextWord()}
	case spec == inst.SpecNextWord:
		m.Cycles++
		return operand{kind: operandLit, lit: m.nextWord()}
	}
	return operand{kind: operandLit, lit: spec - inst.SpecInlineMin}
}

// read returns the current value behind o.
func (m *Machine) read(o operand) uint16 {
	switch o.kind {
	case operandReg:
		return m.Reg[o.addr]
	case operandMem:
		return m.Mem[o.addr]
	case operandSP:
		return m.SP
	case operandPC:
		return m.PC
	case operandO:
		return m.O
	}
	return o.lit
}

// write stores v through o. Assignments to literal operands fail
// silently: the value is discarded and the literal stays observable.
func (m *Machine) write(o operand, v uint16) {
	switch o.kind {
	case operandReg:
		m.Reg[o.addr] = v
	case operandMem:
		m.Mem[o.addr] = v
	case operandSP:
		m.SP = v
	case operandPC:
		m.PC = v
	case operandO:
		m.O = v
	}
}
