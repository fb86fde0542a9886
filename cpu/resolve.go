package cpu

// pageCross reports whether base and eff fall in different 256-byte pages.
func pageCross(base, eff uint16) bool {
	return base&0xFF00 != eff&0xFF00
}

// aluOperand resolves the read-only addressing modes shared by
// ADC/AND/CMP/EOR/LDA/LDX/LDY/ORA/SBC/BIT/CPX/CPY, returning the loaded
// byte and the cycle cost (including any page-crossing penalty).
func (c *Cpu) aluOperand(op Opcode, a Address) (value uint8, cycles int, err error) {
	switch a.Mode {
	case Immediate:
		return a.Byte, 2, nil
	case Zero:
		return c.bus.Load(uint16(a.Byte)), 3, nil
	case ZeroX:
		return c.bus.Load(uint16(a.Byte + c.X)), 4, nil
	case ZeroY:
		return c.bus.Load(uint16(a.Byte + c.Y)), 4, nil
	case Absolute:
		return c.bus.Load(a.Word), 4, nil
	case AbsoluteX:
		eff := a.Word + uint16(c.X)
		cyc := 4
		if pageCross(a.Word, eff) {
			cyc = 5
		}
		return c.bus.Load(eff), cyc, nil
	case AbsoluteY:
		eff := a.Word + uint16(c.Y)
		cyc := 4
		if pageCross(a.Word, eff) {
			cyc = 5
		}
		return c.bus.Load(eff), cyc, nil
	case IndirectX:
		eff := c.bus.LoadU16ZP(a.Byte + c.X)
		return c.bus.Load(eff), 6, nil
	case IndirectY:
		base := c.bus.LoadU16ZP(a.Byte)
		eff := base + uint16(c.Y)
		cyc := 5
		if pageCross(base, eff) {
			cyc = 6
		}
		return c.bus.Load(eff), cyc, nil
	}
	return 0, 0, IllegalAddressingMode{Opcode: op, Mode: a.Mode}
}

// rmwOperand is what the shift/RMW resolver hands the executor: the
// current value, its cycle cost, and where to write the result back to.
type rmwOperand struct {
	value       uint8
	cycles      int
	addr        uint16
	accumulator bool
}

// rmwResolve resolves the addressing modes used by ASL/LSR/ROL/ROR and (by
// the same cycle table) INC/DEC.
func (c *Cpu) rmwResolve(op Opcode, a Address) (rmwOperand, error) {
	switch a.Mode {
	case Accumulator:
		return rmwOperand{value: c.A, cycles: 2, accumulator: true}, nil
	case Zero:
		addr := uint16(a.Byte)
		return rmwOperand{value: c.bus.Load(addr), cycles: 5, addr: addr}, nil
	case ZeroX:
		addr := uint16(a.Byte + c.X)
		return rmwOperand{value: c.bus.Load(addr), cycles: 6, addr: addr}, nil
	case Absolute:
		return rmwOperand{value: c.bus.Load(a.Word), cycles: 6, addr: a.Word}, nil
	case AbsoluteX:
		addr := a.Word + uint16(c.X)
		return rmwOperand{value: c.bus.Load(addr), cycles: 7, addr: addr}, nil
	}
	return rmwOperand{}, IllegalAddressingMode{Opcode: op, Mode: a.Mode}
}

// writeBack stores the RMW result either to the accumulator or to the
// resolved effective address, per where the operand came from.
func (c *Cpu) writeBack(op rmwOperand, result uint8) {
	if op.accumulator {
		c.A = result
		return
	}
	c.bus.Store(op.addr, result)
}

// storeAddr resolves the addressing modes used by STA/STX/STY. Writes
// never pay the page-crossing penalty, unlike reads through the same
// modes, so this always returns the no-cross cost.
func (c *Cpu) storeAddr(op Opcode, a Address) (addr uint16, cycles int, err error) {
	switch a.Mode {
	case Zero:
		return uint16(a.Byte), 3, nil
	case ZeroX:
		return uint16(a.Byte + c.X), 4, nil
	case ZeroY:
		return uint16(a.Byte + c.Y), 4, nil
	case Absolute:
		return a.Word, 4, nil
	case AbsoluteX:
		return a.Word + uint16(c.X), 5, nil
	case AbsoluteY:
		return a.Word + uint16(c.Y), 5, nil
	case IndirectX:
		return c.bus.LoadU16ZP(a.Byte + c.X), 6, nil
	case IndirectY:
		base := c.bus.LoadU16ZP(a.Byte)
		return base + uint16(c.Y), 6, nil
	}
	return 0, 0, IllegalAddressingMode{Opcode: op, Mode: a.Mode}
}
