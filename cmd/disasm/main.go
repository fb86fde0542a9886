// disasm loads a raw binary file into memory and disassembles it to
// stdout starting at a given program counter.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/corebit/nes6502/disassemble"
	"github.com/corebit/nes6502/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0200, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0200, "Offset into RAM to load the file at")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-start_pc <pc>] [-offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}
	max := 1<<16 - *offset
	if l := len(b); l > max {
		log.Printf("length %d at offset %d too long, truncating to 64k", l, *offset)
		b = b[:max]
	}

	ram := memory.NewRAM()
	for i, v := range b {
		ram.Store(uint16(*offset+i), v)
	}

	pc := uint16(*startPC)
	fmt.Printf("0x%04X bytes at pc: %04X\n", len(b), pc)
	for cnt := 0; cnt < len(b); {
		dis, n := disassemble.Step(pc, ram)
		fmt.Printf("%04X  %s\n", pc, dis)
		pc += uint16(n)
		cnt += n
	}
}
