// Package dasm renders DCPU-16 binaries as assembly listings. It walks
// the same encoding as the emulator but formats instead of executing,
// and needs no machine state: width comes from the operand-length table,
// so the walk self-synchronizes even across reserved encodings.
package dasm

import (
	"fmt"
	"io"

	"github.com/tismith/dcpu16/pkg/inst"
	"github.com/tismith/dcpu16/pkg/prog"
)

// Disassemble writes one line per instruction to w, from offset 0 to
// the end of the big-endian byte image. Reserved encodings render as
// "???" and the walk continues past their full width.
func Disassemble(image []byte, w io.Writer) error {
	return Words(prog.Words(image), w)
}

// Words is Disassemble for an already-decoded word slice.
func Words(words []uint16, w io.Writer) error {
	for i := 0; i < len(words); {
		addr := i
		if !inst.Valid(words[addr]) {
			i += int(inst.Length(words[addr]))
			if _, err := fmt.Fprintf(w, "%04x: ???\n", addr); err != nil {
				return err
			}
			continue
		}
		i++
		next := func() uint16 {
			if i >= len(words) {
				// truncated immediate; render as zero
				return 0
			}
			v := words[i]
			i++
			return v
		}
		text := inst.Format(words[addr], next)
		if _, err := fmt.Fprintf(w, "%04x: %s\n", addr, text); err != nil {
			return err
		}
	}
	return nil
}
