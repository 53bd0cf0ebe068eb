package cpu

import (
	"testing"

	"github.com/tismith/dcpu16/pkg/inst"
)

func TestWriteToLiteralDiscarded(t *testing.T) {
	// SET 0x1f-literal, A then SET B, the same literal: the write must
	// not leak into the literal's stream word or anywhere else.
	m := load(
		inst.Encode(inst.SET, 0x1F, 0), 0x0123, // SET 0x0123, A
		inst.Encode(inst.SET, 1, 0x1F), 0x0123, // SET B, 0x0123
	)
	m.Reg[A] = 0xDEAD
	step(t, m, 2)

	if m.Mem[1] != 0x0123 {
		t.Errorf("literal word mutated to %#04x", m.Mem[1])
	}
	if m.Reg[B] != 0x0123 {
		t.Errorf("B = %#04x, want 0x0123", m.Reg[B])
	}
}

func TestWriteToInlineLiteralDiscarded(t *testing.T) {
	// ADD 0x05, 0x05: destination is immutable, but O is still assigned.
	m := load(inst.Encode(inst.ADD, 0x25, 0x25))
	step(t, m, 1)

	if m.O != 0 {
		t.Errorf("O = %#04x, want 0", m.O)
	}
	for i, v := range m.Reg {
		if v != 0 {
			t.Errorf("reg[%d] = %#04x, want 0", i, v)
		}
	}
	if m.PC != 1 {
		t.Errorf("PC = %d, want 1", m.PC)
	}
}

func TestPushPop(t *testing.T) {
	// SET PUSH, 0x11; SET PUSH, 0x12; SET A, POP; SET B, POP
	m := load(
		inst.Encode(inst.SET, 0x1A, 0x31),
		inst.Encode(inst.SET, 0x1A, 0x32),
		inst.Encode(inst.SET, 0, 0x18),
		inst.Encode(inst.SET, 1, 0x18),
	)

	step(t, m, 1)
	if m.SP != 0xFFFE {
		t.Fatalf("SP after first PUSH = %#04x, want 0xFFFE", m.SP)
	}
	if m.Mem[0xFFFE] != 0x11 {
		t.Fatalf("mem[0xFFFE] = %#04x, want 0x11", m.Mem[0xFFFE])
	}

	step(t, m, 3)
	if m.Reg[A] != 0x12 || m.Reg[B] != 0x11 {
		t.Errorf("A, B = %#04x, %#04x, want 0x12, 0x11", m.Reg[A], m.Reg[B])
	}
	if m.SP != StackTop {
		t.Errorf("SP = %#04x, want %#04x (stack drained)", m.SP, uint16(StackTop))
	}
}

func TestPeek(t *testing.T) {
	// SET PUSH, 0x07; SET A, PEEK — PEEK must not move SP.
	m := load(
		inst.Encode(inst.SET, 0x1A, 0x27),
		inst.Encode(inst.SET, 0, 0x19),
	)
	step(t, m, 2)

	if m.Reg[A] != 0x07 {
		t.Errorf("A = %#04x, want 0x07", m.Reg[A])
	}
	if m.SP != 0xFFFE {
		t.Errorf("SP = %#04x, want 0xFFFE", m.SP)
	}
}

func TestPopWrapsSP(t *testing.T) {
	// POP with SP at the top of memory wraps to 0.
	m := load(inst.Encode(inst.SET, 0, 0x18))
	m.SP = 0xFFFF
	step(t, m, 1)

	if m.SP != 0 {
		t.Errorf("SP = %#04x, want 0", m.SP)
	}
}

func TestRegisterIndirect(t *testing.T) {
	// SET A, [B] with B = 0x2000
	m := load(inst.Encode(inst.SET, 0, 0x09))
	m.Reg[B] = 0x2000
	m.Mem[0x2000] = 0xBEEF
	step(t, m, 1)

	if m.Reg[A] != 0xBEEF {
		t.Errorf("A = %#04x, want 0xBEEF", m.Reg[A])
	}
}

func TestIndexedIndirect(t *testing.T) {
	// SET A, [0x1000 + B] with B = 0x0010
	m := load(inst.Encode(inst.SET, 0, 0x11), 0x1000)
	m.Reg[B] = 0x0010
	m.Mem[0x1010] = 0xCAFE
	step(t, m, 1)

	if m.Reg[A] != 0xCAFE {
		t.Errorf("A = %#04x, want 0xCAFE", m.Reg[A])
	}
	if m.Cycles != 2 {
		t.Errorf("cycles = %d, want 2 (1 SET + 1 indexed fetch)", m.Cycles)
	}
}

func TestIndirectDereferences(t *testing.T) {
	// SET A, [0x0040]: the immediate is an address, not a value.
	m := load(inst.Encode(inst.SET, 0, 0x1E), 0x0040)
	m.Mem[0x0040] = 0x5555
	step(t, m, 1)

	if m.Reg[A] != 0x5555 {
		t.Errorf("A = %#04x, want 0x5555 (must dereference memory)", m.Reg[A])
	}
}

func TestImmediateStreamOrder(t *testing.T) {
	// SET [0x0100 + A], [0x0200 + B]: a's immediate comes first.
	m := load(inst.Encode(inst.SET, 0x10, 0x11), 0x0100, 0x0200)
	m.Mem[0x0200] = 0x7777
	step(t, m, 1)

	if m.Mem[0x0100] != 0x7777 {
		t.Errorf("mem[0x0100] = %#04x, want 0x7777", m.Mem[0x0100])
	}
	if m.PC != 3 {
		t.Errorf("PC = %d, want 3", m.PC)
	}
}

func TestOperandAddressCapturedAtResolve(t *testing.T) {
	// SET [A], POP: POP moves SP during resolve of b, but a's target
	// address was captured before and must not shift.
	m := load(inst.Encode(inst.SET, 0x08, 0x18))
	m.Reg[A] = 0x3000
	m.Mem[0xFFFF] = 0x4242
	m.SP = 0xFFFF
	step(t, m, 1)

	if m.Mem[0x3000] != 0x4242 {
		t.Errorf("mem[0x3000] = %#04x, want 0x4242", m.Mem[0x3000])
	}
}

func TestInlineLiteralRange(t *testing.T) {
	for v := uint16(0); v <= 0x1F; v++ {
		m := load(inst.Encode(inst.SET, 0, 0x20+v))
		step(t, m, 1)
		if m.Reg[A] != v {
			t.Errorf("SET A, inline %#x: A = %#04x", v, m.Reg[A])
		}
	}
}
