// Package cpu implements the fetch-decode-execute core of a MOS 6502
// (NES/Ricoh variant) processor: register/flag model, addressing-mode
// resolution, per-opcode semantics, and cycle accounting. It consumes a
// memory.Bus and a clock.Clock supplied by the host and never creates,
// shares, or closes either.
package cpu

//go:generate go run ../internal/gendecode
