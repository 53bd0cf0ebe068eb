// Package prog loads DCPU-16 program images: flat binary files of raw
// words in big-endian byte order.
package prog

import (
	"fmt"
	"io"
	"os"

	"github.com/tismith/dcpu16/pkg/cpu"
)

// Read decodes big-endian words from r, up to the full address space. A
// trailing odd byte becomes the high byte of one final word. Short
// images are returned as-is; the caller's memory past them stays zero.
func Read(r io.Reader) ([]uint16, error) {
	buf, err := io.ReadAll(io.LimitReader(r, 2*cpu.MemSize))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return Words(buf), nil
}

// Words converts a big-endian byte image to words, without length limits.
func Words(buf []byte) []uint16 {
	words := make([]uint16, 0, (len(buf)+1)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		words = append(words, uint16(buf[i])<<8|uint16(buf[i+1]))
	}
	if len(buf)%2 == 1 {
		words = append(words, uint16(buf[len(buf)-1])<<8)
	}
	return words
}

// Load reads the program file at path into a fresh machine.
func Load(path string) (*cpu.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening program: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, err
	}
	m := cpu.New()
	m.Load(words)
	return m, nil
}
