package cpu

import (
	"github.com/corebit/nes6502/clock"
	"github.com/corebit/nes6502/memory"
)

// Cpu is a MOS 6502 (NES/Ricoh variant) register and flag file bound to a
// host-supplied Bus and Clock, plus a diagnostic Logger. It holds no
// reference to anything else and creates, shares, or closes neither the Bus
// nor the Clock.
type Cpu struct {
	PC uint16
	SP uint8
	X  uint8
	Y  uint8
	A  uint8
	P  Status

	bus    memory.Bus
	clock  clock.Clock
	logger Logger
}

// Config bundles the dependencies and optional initial register state for
// a Cpu. Bus and Clock are required; Logger defaults to a no-op sink.
//
// By default New constructs a Cpu at the documented reset state (a=x=y=0,
// sp=0, p=0x20, pc=0x0200). Setting Explicit selects the register values
// below instead, which is how the test suite and the ProcessorTests
// fixture runner seed arbitrary starting states.
type Config struct {
	Bus    memory.Bus
	Clock  clock.Clock
	Logger Logger

	Explicit    bool
	A, X, Y, SP uint8
	P           Status
	PC          uint16
}

// New constructs a Cpu per cfg.
func New(cfg Config) (*Cpu, error) {
	if cfg.Bus == nil {
		return nil, InvalidCPUState{Reason: "Config.Bus is required"}
	}
	if cfg.Clock == nil {
		return nil, InvalidCPUState{Reason: "Config.Clock is required"}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	c := &Cpu{bus: cfg.Bus, clock: cfg.Clock, logger: logger}
	if cfg.Explicit {
		c.A, c.X, c.Y, c.SP = cfg.A, cfg.X, cfg.Y, cfg.SP
		c.P = cfg.P | Status(P_RESERVED)
		c.PC = cfg.PC
		return c, nil
	}

	c.A, c.X, c.Y, c.SP = 0, 0, 0, 0
	c.P = Status(P_RESERVED)
	c.PC = 0x0200
	return c, nil
}

// Step fetches and executes a single instruction, notifies the clock of
// the cycles it consumed, and reports whether BRK was just executed.
func (c *Cpu) Step() (terminated bool, err error) {
	instr, err := c.Fetch()
	if err != nil {
		return false, err
	}
	cycles, terminated, err := c.Execute(instr)
	if err != nil {
		return false, err
	}
	c.clock.Cycles(cycles)
	return terminated, nil
}

// Run steps the Cpu until Step reports termination (a BRK was executed)
// or returns an error, whichever happens first.
func (c *Cpu) Run() error {
	for {
		terminated, err := c.Step()
		if err != nil {
			return err
		}
		if terminated {
			return nil
		}
	}
}

func (c *Cpu) push(v uint8) {
	c.bus.Store(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *Cpu) pop() uint8 {
	c.SP++
	return c.bus.Load(0x0100 | uint16(c.SP))
}

func (c *Cpu) pushU16(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *Cpu) popU16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}
