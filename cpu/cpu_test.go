package cpu

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/corebit/nes6502/clock"
	"github.com/corebit/nes6502/memory"
)

// newTestCpu builds a Cpu over a zeroed RAM image and a NullClock, then
// loads prog at loadAt. Registers start at the documented reset defaults,
// except PC, which is set to loadAt; callers that need explicit register
// state should call newTestCpuConfig instead.
func newTestCpu(t *testing.T, loadAt uint16, prog []byte) (*Cpu, *memory.RAM) {
	t.Helper()
	ram := memory.NewRAM()
	for i, b := range prog {
		ram.Store(loadAt+uint16(i), b)
	}
	c, err := New(Config{Bus: ram, Clock: &clock.NullClock{}, PC: 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.PC = loadAt
	return c, ram
}

func newTestCpuConfig(t *testing.T, cfg Config, loadAt uint16, prog []byte) (*Cpu, *memory.RAM) {
	t.Helper()
	ram := memory.NewRAM()
	for i, b := range prog {
		ram.Store(loadAt+uint16(i), b)
	}
	cfg.Bus = ram
	if cfg.Clock == nil {
		cfg.Clock = &clock.NullClock{}
	}
	cfg.Explicit = true
	cfg.PC = loadAt
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, ram
}

// S1: LDA #$42 at $0200 leaves a=0x42, Z=0, N=0, pc=0x0202, 2 cycles.
func TestLDAImmediate(t *testing.T) {
	c, _ := newTestCpu(t, 0x0200, []byte{0xA9, 0x42})
	cyc, terminated, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if terminated {
		t.Fatal("unexpected termination")
	}
	if c.A != 0x42 {
		t.Errorf("A = 0x%02X, want 0x42", c.A)
	}
	if c.P.Zero() || c.P.Negative() {
		t.Errorf("P = 0x%02X, want Z=0 N=0", c.P)
	}
	if c.PC != 0x0202 {
		t.Errorf("PC = 0x%04X, want 0x0202", c.PC)
	}
	if cyc != 2 {
		t.Errorf("cycles = %d, want 2", cyc)
	}
}

// S2: LDA $10,X with x=0xFF reads the zero-page-wrapped address $0F, not $010F.
func TestLDAZeroPageXWraps(t *testing.T) {
	c, ram := newTestCpu(t, 0x0200, []byte{0xB5, 0x10})
	c.X = 0xFF
	ram.Store(0x000F, 0x99)
	_, _, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x99 {
		t.Errorf("A = 0x%02X, want 0x99", c.A)
	}
	if !c.P.Negative() {
		t.Error("N flag not set for 0x99")
	}
}

// S3: LDA $01FF,Y with y=1 crosses a page boundary, costing 5 cycles.
func TestLDAAbsoluteYPageCross(t *testing.T) {
	c, ram := newTestCpu(t, 0x0200, []byte{0xB9, 0xFF, 0x01})
	c.Y = 0x01
	ram.Store(0x0200, 0xB9)
	ram.Store(0x0200+2, 0x01)
	ram.Store(0x0100, 0x00) // unrelated
	cyc, _, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cyc != 5 {
		t.Errorf("cycles = %d, want 5", cyc)
	}
}

// S4: JMP ($10FF) reads its high byte from $1000, not $1100 (the classic
// indirect-JMP page-wrap bug).
func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, ram := newTestCpu(t, 0x0200, []byte{0x6C, 0xFF, 0x10}) // JMP ($10FF)
	ram.Store(0x10FF, 0x34)
	ram.Store(0x1100, 0x12) // must be ignored
	ram.Store(0x1000, 0x56) // high byte actually read from here
	_, _, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x5634 {
		t.Errorf("PC = 0x%04X, want 0x5634", c.PC)
	}
}

// S5: JSR/RTS round-trips to the instruction after the call.
func TestJSRRTS(t *testing.T) {
	prog := []byte{0x20, 0x34, 0x12} // JSR $1234
	c, ram := newTestCpu(t, 0x0200, prog)
	ram.Store(0x1234, 0x60) // RTS
	cyc, _, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cyc != 6 {
		t.Errorf("JSR cycles = %d, want 6", cyc)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = 0x%04X, want 0x1234", c.PC)
	}
	// SP starts at the reset value 0: hi goes to $0100, then SP wraps to
	// $FF and lo goes to $01FF.
	if got := ram.Load(0x0100); got != 0x02 {
		t.Errorf("pushed pc hi = 0x%02X, want 0x02", got)
	}
	if got := ram.Load(0x01FF); got != 0x02 {
		t.Errorf("pushed pc lo = 0x%02X, want 0x02", got)
	}
	cyc, _, err = mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cyc != 6 {
		t.Errorf("RTS cycles = %d, want 6", cyc)
	}
	if c.PC != 0x0203 {
		t.Errorf("PC after RTS = 0x%04X, want 0x0203", c.PC)
	}
}

// S6: BNE +4 taken across a page boundary costs 4 cycles.
func TestBranchPageCross(t *testing.T) {
	c, _ := newTestCpu(t, 0x02FE, []byte{0xD0, 0x04})
	c.P.SetZero(false)
	cyc, _, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x0304 {
		t.Errorf("PC = 0x%04X, want 0x0304", c.PC)
	}
	if cyc != 4 {
		t.Errorf("cycles = %d, want 4", cyc)
	}
}

// S7: BRK pushes pc+1 (skipping the signature byte), sets I, and vectors
// through $FFFE/$FFFF.
func TestBRK(t *testing.T) {
	c, ram := newTestCpu(t, 0x0200, []byte{0x00, 0xEA})
	ram.Store(0xFFFE, 0x00)
	ram.Store(0xFFFF, 0x80)
	cyc, terminated, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !terminated {
		t.Error("BRK did not report termination")
	}
	if cyc != 7 {
		t.Errorf("cycles = %d, want 7", cyc)
	}
	if c.PC != 0x8000 {
		t.Errorf("PC = 0x%04X, want 0x8000", c.PC)
	}
	if !c.P.Interrupt() {
		t.Error("I flag not set after BRK")
	}
	// SP starts at the reset value 0: hi goes to $0100, lo to $01FF, and
	// the status byte to $01FE.
	if got := ram.Load(0x0100); got != 0x02 {
		t.Errorf("pushed pc hi = 0x%02X, want 0x02", got)
	}
	if got := ram.Load(0x01FF); got != 0x02 {
		t.Errorf("pushed pc lo = 0x%02X, want 0x02", got)
	}
}

func TestADCOverflow(t *testing.T) {
	c, _ := newTestCpuConfig(t, Config{A: 0x7F}, 0x0200, []byte{0x69, 0x01}) // ADC #$01
	_, _, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = 0x%02X, want 0x80", c.A)
	}
	if !c.P.Overflow() {
		t.Error("V flag not set for 0x7F+1")
	}
	if !c.P.Negative() {
		t.Error("N flag not set for 0x80")
	}
	if c.P.Carry() {
		t.Error("C flag unexpectedly set")
	}
}

func TestSBCBorrow(t *testing.T) {
	c, _ := newTestCpuConfig(t, Config{A: 0x00, P: Status(P_CARRY)}, 0x0200, []byte{0xE9, 0x01}) // SBC #$01
	_, _, err := mustStep(t, c)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0xFF {
		t.Errorf("A = 0x%02X, want 0xFF", c.A)
	}
	if c.P.Carry() {
		t.Error("C flag should be clear (borrow occurred)")
	}
}

func TestStackWrap(t *testing.T) {
	c, ram := newTestCpuConfig(t, Config{SP: 0x00, A: 0x7E}, 0x0200, []byte{0x48}) // PHA
	mustStep(t, c)
	if c.SP != 0xFF {
		t.Errorf("SP = 0x%02X, want 0xFF (wrapped)", c.SP)
	}
	if got := ram.Load(0x0100); got != 0x7E {
		t.Errorf("pushed byte = 0x%02X, want 0x7E", got)
	}
}

func TestIllegalOpcode(t *testing.T) {
	c, _ := newTestCpu(t, 0x0200, []byte{0x02}) // no legal use of 0x02
	_, err := c.Fetch()
	if _, ok := err.(IllegalOpcode); !ok {
		t.Fatalf("Fetch err = %v (%T), want IllegalOpcode", err, err)
	}
}

func TestSEDLogsAndSetsFlag(t *testing.T) {
	var logged bytes.Buffer
	c, _ := newTestCpuConfig(t, Config{Logger: log.New(&logged, "", 0)}, 0x0200, []byte{0xF8}) // SED
	mustStep(t, c)
	if !c.P.Decimal() {
		t.Error("D flag not set after SED")
	}
	if logged.Len() == 0 {
		t.Error("SED did not log a diagnostic")
	}
}

// aluModeCost, storeModeCost and rmwModeCost give the documented
// no-page-cross cycle cost for each resolver family's addressing modes;
// they mirror the per-case costs hardcoded in resolve.go's aluOperand,
// storeAddr and rmwResolve.
var aluModeCost = map[AddressMode]int{
	Immediate: 2, Zero: 3, ZeroX: 4, ZeroY: 4, Absolute: 4,
	AbsoluteX: 4, AbsoluteY: 4, IndirectX: 6, IndirectY: 5,
}

var storeModeCost = map[AddressMode]int{
	Zero: 3, ZeroX: 4, ZeroY: 4, Absolute: 4,
	AbsoluteX: 5, AbsoluteY: 5, IndirectX: 6, IndirectY: 6,
}

var rmwModeCost = map[AddressMode]int{
	Accumulator: 2, Zero: 5, ZeroX: 6, Absolute: 6, AbsoluteX: 7,
}

// fixedOpcodeCost gives the cycle cost of opcodes whose cost doesn't vary
// by addressing mode (the Implied opcodes and JSR, plus the Relative
// branches' not-taken cost; the two-mode JMP has its own table).
var fixedOpcodeCost = map[Opcode]int{
	BRK: 7, JSR: 6, RTS: 6, RTI: 6,
	PHA: 3, PHP: 3, PLA: 4, PLP: 4,
	CLC: 2, CLD: 2, CLI: 2, CLV: 2, DEX: 2, DEY: 2, INX: 2, INY: 2,
	NOP: 2, SEC: 2, SED: 2, SEI: 2, TAX: 2, TAY: 2, TSX: 2, TXA: 2, TXS: 2, TYA: 2,
	BCC: 2, BCS: 2, BEQ: 2, BMI: 2, BNE: 2, BPL: 2, BVC: 2, BVS: 2,
}

var jmpModeCost = map[AddressMode]int{Absolute: 3, Indirect: 5}

// notTakenStatus returns the P value that makes branch op's condition
// false, so its base cost (2 cycles) is what Execute reports.
func notTakenStatus(op Opcode) Status {
	var p Status
	switch op {
	case BCC, BVC, BPL:
		// BCC branches on !Carry, BVC on !Overflow, BPL on !Negative:
		// set the flag so the condition is false.
		switch op {
		case BCC:
			p.SetCarry(true)
		case BVC:
			p.SetOverflow(true)
		case BPL:
			p.SetNegative(true)
		}
	case BCS, BVS, BMI, BEQ:
		// these branch when the flag is set; leave it clear.
	case BNE:
		p.SetZero(true)
	}
	return p
}

// operandBytesFor builds operand bytes that keep every indexed/indirect
// mode's effective address within the base page, so the returned cost is
// always the no-page-cross base cost.
func operandBytesFor(mode AddressMode) []byte {
	switch mode {
	case Implied, Accumulator:
		return nil
	case Immediate:
		return []byte{0x01}
	case Zero, ZeroX, ZeroY, IndirectX, IndirectY:
		return []byte{0x10}
	case Relative:
		return []byte{0x05}
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return []byte{0x00, 0x10}
	}
	return nil
}

// TestOpcodeCycles iterates every legal opcode/mode pair in opcodes.txt and
// asserts Execute reports the documented no-page-cross base cycle cost.
// Page-crossing penalties are covered separately (TestLDAAbsoluteYPageCross,
// TestBranchPageCross); this test exercises the base cost across all 151
// legal pairs, not just one representative case per mode.
func TestOpcodeCycles(t *testing.T) {
	raw, err := os.ReadFile("opcodes.txt")
	if err != nil {
		t.Fatalf("reading opcodes.txt: %v", err)
	}

	nameToOpcode := make(map[string]Opcode, len(opcodeNames))
	for i, name := range opcodeNames {
		nameToOpcode[name] = Opcode(i)
	}
	nameToMode := make(map[string]AddressMode, len(addressModeNames))
	for i, name := range addressModeNames {
		nameToMode[name] = AddressMode(i)
	}

	lineRe := regexp.MustCompile(`^0x([0-9A-Fa-f]{2})\s+(\S+)\s+(\S+)\s*$`)
	n := 0
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("opcodes.txt: unparseable line %q", line)
		}
		opByte, err := strconv.ParseUint(m[1], 16, 8)
		if err != nil {
			t.Fatalf("opcodes.txt: bad hex byte %q: %v", m[1], err)
		}
		op, ok := nameToOpcode[m[2]]
		if !ok {
			t.Fatalf("opcodes.txt: unknown mnemonic %q", m[2])
		}
		mode, ok := nameToMode[m[3]]
		if !ok {
			t.Fatalf("opcodes.txt: unknown mode %q", m[3])
		}
		n++

		t.Run(fmt.Sprintf("%02X_%s_%s", opByte, m[2], m[3]), func(t *testing.T) {
			var want int
			var ok bool
			switch {
			case op == JMP:
				want, ok = jmpModeCost[mode]
			case isRMW(op):
				want, ok = rmwModeCost[mode]
			case op == STA || op == STX || op == STY:
				want, ok = storeModeCost[mode]
			default:
				if cost, isFixed := fixedOpcodeCost[op]; isFixed {
					want, ok = cost, true
				} else {
					want, ok = aluModeCost[mode]
				}
			}
			if !ok {
				t.Fatalf("no expected cost registered for %s/%s", m[2], m[3])
			}

			prog := append([]byte{uint8(opByte)}, operandBytesFor(mode)...)
			cfg := Config{}
			if isBranch(op) {
				cfg.P = notTakenStatus(op)
			}
			c, _ := newTestCpuConfig(t, cfg, 0x0200, prog)
			cyc, _, err := mustStep(t, c)
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if cyc != want {
				t.Errorf("cycles = %d, want %d", cyc, want)
			}
		})
	}
	if n != 151 {
		t.Errorf("parsed %d opcode/mode pairs from opcodes.txt, want 151", n)
	}
}

// isRMW reports whether op is dispatched through the shift/rotate/INC/DEC
// resolver (rmwResolve), which shares one cost table across its modes.
func isRMW(op Opcode) bool {
	switch op {
	case ASL, LSR, ROL, ROR, INC, DEC:
		return true
	}
	return false
}

// isBranch reports whether op is one of the eight Relative-mode branches.
func isBranch(op Opcode) bool {
	switch op {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	}
	return false
}

func mustStep(t *testing.T, c *Cpu) (cycles int, terminated bool, err error) {
	t.Helper()
	instr, err := c.Fetch()
	if err != nil {
		return 0, false, err
	}
	return c.Execute(instr)
}
