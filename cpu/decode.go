package cpu

// Fetch reads one instruction at PC, advances PC past the opcode and its
// operand bytes, and returns the decoded Instruction. PC is always left
// pointing at the next opcode byte to fetch, whether or not this call
// succeeds.
func (c *Cpu) Fetch() (Instruction, error) {
	opByte := c.bus.Load(c.PC)
	c.PC++

	entry := decodeTable[opByte]
	if !entry.Legal {
		return Instruction{}, IllegalOpcode{Opcode: opByte}
	}

	addr := Address{Mode: entry.Mode}
	switch entry.Mode.OperandBytes() {
	case 1:
		addr.Byte = c.bus.Load(c.PC)
		c.PC++
	case 2:
		addr.Word = c.bus.LoadU16(c.PC)
		c.PC += 2
	}

	return Instruction{Opcode: entry.Op, Address: addr}, nil
}

// Lookup exposes the decode table to callers outside the package, chiefly
// the disassembler, which needs to inspect an opcode byte's mnemonic and
// addressing mode without mutating any Cpu state.
func Lookup(opcodeByte uint8) (op Opcode, mode AddressMode, legal bool) {
	entry := decodeTable[opcodeByte]
	return entry.Op, entry.Mode, entry.Legal
}
