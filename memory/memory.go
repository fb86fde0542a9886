// Package memory defines the Bus capability the cpu package requires and
// provides a flat 64KiB implementation of it suitable for a host driving
// a single CPU over an undivided address space.
package memory

import (
	"math/rand"
	"time"
)

// Bus is the capability the core requires of its host memory map: byte
// load/store plus the two 16-bit helpers with 6502 wrap semantics. A host
// mapping several devices into one address space implements this directly;
// a flat image can embed RAM and get the helpers for free.
type Bus interface {
	// Load returns the byte stored at addr.
	Load(addr uint16) uint8
	// Store writes val at addr.
	Store(addr uint16, val uint8)
	// LoadU16 does a little-endian 16-bit load with full-address wrap: the
	// high byte is read from (addr+1) mod 0x10000.
	LoadU16(addr uint16) uint16
	// LoadU16ZP does a little-endian 16-bit load from the zero page with
	// 8-bit pointer wrap: the high byte is read from (ptr+1) mod 0x100.
	LoadU16ZP(ptr uint8) uint16
}

// RAM is a flat 64KiB byte array implementing Bus directly. It is the
// default memory image a host constructs: load a program into it at a
// known offset, then hand it to cpu.New.
type RAM struct {
	mem [1 << 16]uint8
}

// NewRAM returns a zeroed RAM. Call PowerOn instead if random power-on
// contents are wanted (matching real hardware, where RAM content at power
// on is undefined).
func NewRAM() *RAM {
	return &RAM{}
}

// PowerOn fills RAM with random bytes, as real 6502 RAM powers up in an
// undefined state. Tests that need determinism should use NewRAM and seed
// memory explicitly instead.
func (r *RAM) PowerOn() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range r.mem {
		r.mem[i] = uint8(rnd.Intn(256))
	}
}

// Load implements Bus.
func (r *RAM) Load(addr uint16) uint8 {
	return r.mem[addr]
}

// Store implements Bus.
func (r *RAM) Store(addr uint16, val uint8) {
	r.mem[addr] = val
}

// LoadU16 implements Bus using the default full-address-wrap formula.
func (r *RAM) LoadU16(addr uint16) uint16 {
	return LoadU16(r, addr)
}

// LoadU16ZP implements Bus using the default zero-page-wrap formula.
func (r *RAM) LoadU16ZP(ptr uint8) uint16 {
	return LoadU16ZP(r, ptr)
}

// loader is the minimal read-only subset LoadU16/LoadU16ZP need, so a
// custom Bus implementation can embed these helpers without implementing
// Store.
type loader interface {
	Load(addr uint16) uint8
}

// LoadU16 implements the full-address-wrap 16-bit load in terms of Load
// alone. Bus implementations may call this from their own LoadU16 rather
// than reimplementing the wrap rule.
func LoadU16(b loader, addr uint16) uint16 {
	lo := b.Load(addr)
	hi := b.Load(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// LoadU16ZP implements the zero-page 16-bit load with 8-bit pointer wrap
// (ZP16 in the glossary) in terms of Load alone.
func LoadU16ZP(b loader, ptr uint8) uint16 {
	lo := b.Load(uint16(ptr))
	hi := b.Load(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}
