package cpu

// Execute runs one decoded Instruction to completion, mutating registers,
// flags, and memory as needed, and returns the cycle cost of the
// instruction (including any page-crossing or branch-taken penalty) and
// whether it was BRK.
func (c *Cpu) Execute(instr Instruction) (cycles int, terminated bool, err error) {
	a := instr.Address
	switch instr.Opcode {

	// Load/compare/logical group: read-only operand, ALU resolver.
	case LDA:
		return c.load(LDA, a, &c.A)
	case LDX:
		return c.load(LDX, a, &c.X)
	case LDY:
		return c.load(LDY, a, &c.Y)
	case ADC:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.adc(v)
		return cyc, false, nil
	case SBC:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.adc(^v)
		return cyc, false, nil
	case AND:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.A &= v
		c.P.nz(c.A)
		return cyc, false, nil
	case ORA:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.A |= v
		c.P.nz(c.A)
		return cyc, false, nil
	case EOR:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.A ^= v
		c.P.nz(c.A)
		return cyc, false, nil
	case CMP:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.compare(c.A, v)
		return cyc, false, nil
	case CPX:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.compare(c.X, v)
		return cyc, false, nil
	case CPY:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.compare(c.Y, v)
		return cyc, false, nil
	case BIT:
		v, cyc, err := c.aluOperand(instr.Opcode, a)
		if err != nil {
			return 0, false, err
		}
		c.P.SetNegative(v&0x80 != 0)
		c.P.SetOverflow(v&0x40 != 0)
		c.P.SetZero(v&c.A == 0)
		return cyc, false, nil

	// Stores: effective-address resolver, no page-cross penalty.
	case STA:
		return c.store(STA, a, c.A)
	case STX:
		return c.store(STX, a, c.X)
	case STY:
		return c.store(STY, a, c.Y)

	// Shift/rotate/increment-decrement group: RMW resolver.
	case ASL:
		return c.rmw(ASL, a, func(v uint8) uint8 {
			c.P.SetCarry(v&0x80 != 0)
			return v << 1
		})
	case LSR:
		return c.rmw(LSR, a, func(v uint8) uint8 {
			c.P.SetCarry(v&0x01 != 0)
			return v >> 1
		})
	case ROL:
		return c.rmw(ROL, a, func(v uint8) uint8 {
			carryIn := uint8(0)
			if c.P.Carry() {
				carryIn = 1
			}
			c.P.SetCarry(v&0x80 != 0)
			return v<<1 | carryIn
		})
	case ROR:
		return c.rmw(ROR, a, func(v uint8) uint8 {
			carryIn := uint8(0)
			if c.P.Carry() {
				carryIn = 0x80
			}
			c.P.SetCarry(v&0x01 != 0)
			return v>>1 | carryIn
		})
	case INC:
		return c.rmw(INC, a, func(v uint8) uint8 { return v + 1 })
	case DEC:
		return c.rmw(DEC, a, func(v uint8) uint8 { return v - 1 })

	// Register increment/decrement.
	case INX:
		c.X++
		c.P.nz(c.X)
		return 2, false, nil
	case INY:
		c.Y++
		c.P.nz(c.Y)
		return 2, false, nil
	case DEX:
		c.X--
		c.P.nz(c.X)
		return 2, false, nil
	case DEY:
		c.Y--
		c.P.nz(c.Y)
		return 2, false, nil

	// Transfers.
	case TAX:
		c.X = c.A
		c.P.nz(c.X)
		return 2, false, nil
	case TAY:
		c.Y = c.A
		c.P.nz(c.Y)
		return 2, false, nil
	case TXA:
		c.A = c.X
		c.P.nz(c.A)
		return 2, false, nil
	case TYA:
		c.A = c.Y
		c.P.nz(c.A)
		return 2, false, nil
	case TSX:
		c.X = c.SP
		c.P.nz(c.X)
		return 2, false, nil
	case TXS:
		c.SP = c.X
		return 2, false, nil

	// Stack.
	case PHA:
		c.push(c.A)
		return 3, false, nil
	case PHP:
		c.push(c.P.pushByte())
		return 3, false, nil
	case PLA:
		c.A = c.pop()
		c.P.nz(c.A)
		return 4, false, nil
	case PLP:
		c.P = fromPopped(c.pop())
		return 4, false, nil

	// Flags.
	case CLC:
		c.P.SetCarry(false)
		return 2, false, nil
	case SEC:
		c.P.SetCarry(true)
		return 2, false, nil
	case CLI:
		c.P.SetInterrupt(false)
		return 2, false, nil
	case SEI:
		c.P.SetInterrupt(true)
		return 2, false, nil
	case CLV:
		c.P.SetOverflow(false)
		return 2, false, nil
	case CLD:
		c.P.SetDecimal(false)
		return 2, false, nil
	case SED:
		c.P.SetDecimal(true)
		c.logger.Printf("cpu: SED executed; decimal mode has no effect on this Ricoh variant")
		return 2, false, nil

	// Control flow.
	case JMP:
		return c.jmp(a)
	case JSR:
		c.pushU16(c.PC - 1)
		c.PC = a.Word
		return 6, false, nil
	case RTS:
		c.PC = c.popU16() + 1
		return 6, false, nil
	case RTI:
		c.P = fromPopped(c.pop())
		c.PC = c.popU16()
		return 6, false, nil
	case BRK:
		c.pushU16(c.PC + 1)
		c.push(c.P.pushByte())
		c.P.SetInterrupt(true)
		c.PC = c.bus.LoadU16(0xFFFE)
		return 7, true, nil

	// Branches.
	case BCC:
		return c.branch(!c.P.Carry(), a.Byte), false, nil
	case BCS:
		return c.branch(c.P.Carry(), a.Byte), false, nil
	case BEQ:
		return c.branch(c.P.Zero(), a.Byte), false, nil
	case BNE:
		return c.branch(!c.P.Zero(), a.Byte), false, nil
	case BMI:
		return c.branch(c.P.Negative(), a.Byte), false, nil
	case BPL:
		return c.branch(!c.P.Negative(), a.Byte), false, nil
	case BVC:
		return c.branch(!c.P.Overflow(), a.Byte), false, nil
	case BVS:
		return c.branch(c.P.Overflow(), a.Byte), false, nil

	case NOP:
		return 2, false, nil
	}

	return 0, false, IllegalAddressingMode{Opcode: instr.Opcode, Mode: a.Mode}
}

// load resolves a into dst via the ALU resolver and sets N/Z.
func (c *Cpu) load(opcode Opcode, a Address, dst *uint8) (cycles int, terminated bool, err error) {
	v, cyc, err := c.aluOperand(opcode, a)
	if err != nil {
		return 0, false, err
	}
	*dst = v
	c.P.nz(*dst)
	return cyc, false, nil
}

// store resolves a's effective address via the no-page-penalty resolver
// and writes v there.
func (c *Cpu) store(opcode Opcode, a Address, v uint8) (cycles int, terminated bool, err error) {
	addr, cyc, err := c.storeAddr(opcode, a)
	if err != nil {
		return 0, false, err
	}
	c.bus.Store(addr, v)
	return cyc, false, nil
}

// rmw resolves a via the RMW resolver, applies f to the current value,
// sets N/Z on the result, and writes the result back.
func (c *Cpu) rmw(opcode Opcode, a Address, f func(uint8) uint8) (cycles int, terminated bool, err error) {
	op, err := c.rmwResolve(opcode, a)
	if err != nil {
		return 0, false, err
	}
	result := f(op.value)
	c.P.nz(result)
	c.writeBack(op, result)
	return op.cycles, false, nil
}

// adc implements ADC (and, via one's-complement of the operand, SBC),
// including the carry and overflow computation shared by both.
func (c *Cpu) adc(v uint8) {
	carryIn := uint16(0)
	if c.P.Carry() {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(v) + carryIn
	res := uint8(sum)
	c.P.overflowCheck(c.A, v, res)
	c.P.carryCheck(sum)
	c.A = res
	c.P.nz(c.A)
}

// compare implements CMP/CPX/CPY: subtract without storing, set C/N/Z.
func (c *Cpu) compare(reg, v uint8) {
	c.P.SetCarry(reg >= v)
	c.P.nz(reg - v)
}

// jmp implements both JMP addressing modes, including the indirect
// page-wrap bug: if the low byte of the pointer is 0xFF, the high byte of
// the target is read from the start of the same page rather than the next
// page, reproducing the original hardware fault.
func (c *Cpu) jmp(a Address) (cycles int, terminated bool, err error) {
	switch a.Mode {
	case Absolute:
		c.PC = a.Word
		return 3, false, nil
	case Indirect:
		lo := c.bus.Load(a.Word)
		hiAddr := (a.Word & 0xFF00) | ((a.Word + 1) & 0x00FF)
		hi := c.bus.Load(hiAddr)
		c.PC = uint16(hi)<<8 | uint16(lo)
		return 5, false, nil
	}
	return 0, false, IllegalAddressingMode{Opcode: JMP, Mode: a.Mode}
}

// branch implements the conditional branch family: 2 cycles if not taken,
// 3 if taken within the same page as the branch opcode itself, 4 if taken
// across a page boundary.
func (c *Cpu) branch(taken bool, offset uint8) int {
	if !taken {
		return 2
	}
	instrAddr := c.PC - 2
	target := uint16(int32(c.PC) + int32(int8(offset)))
	c.PC = target
	if instrAddr&0xFF00 != target&0xFF00 {
		return 4
	}
	return 3
}
