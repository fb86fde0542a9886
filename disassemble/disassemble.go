// Package disassemble renders 6502 instructions back to assembly text. It
// reads directly off a memory.Bus and the cpu package's own decode table,
// so it always stays in sync with what the executor actually implements.
package disassemble

import (
	"fmt"

	"github.com/corebit/nes6502/cpu"
	"github.com/corebit/nes6502/memory"
)

// Step disassembles the instruction at pc and returns its text plus the
// number of bytes it occupies (1-3). Unlike cpu.Cpu.Fetch this never
// mutates any register; it only reads the bus. An illegal opcode byte
// disassembles as "???" and occupies 1 byte so callers can keep scanning.
func Step(pc uint16, b memory.Bus) (string, int) {
	opByte := b.Load(pc)
	op, mode, legal := cpu.Lookup(opByte)
	if !legal {
		return "???", 1
	}

	addr := cpu.Address{Mode: mode}
	n := mode.OperandBytes()
	switch n {
	case 1:
		addr.Byte = b.Load(pc + 1)
	case 2:
		addr.Word = uint16(b.Load(pc+2))<<8 | uint16(b.Load(pc+1))
	}

	text := op.String()
	if operand := addr.String(); operand != "" {
		text = fmt.Sprintf("%s %s", text, operand)
	}
	return text, n + 1
}
