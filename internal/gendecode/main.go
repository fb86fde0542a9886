// Command gendecode reads cpu/opcodes.txt and writes cpu/decode_table.go,
// the 256-entry opcode dispatch table the decoder consumes. Invoked via
// `go generate ./...` from the cpu package; see cpu/doc.go.
//
// This is the Go equivalent of original_source/build.rs's opcodes.txt-to-
// table transformation: that build.rs ran at Cargo build time and emitted
// Rust source via include!(); here the same contract (one HEX MNEMONIC MODE
// line per legal opcode) is compiled into a checked-in Go source file
// instead, which is the idiomatic Go convention for generated dispatch
// tables (e.g. stringer-style output committed alongside a //go:generate
// directive).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

const (
	// go generate runs this in the cpu package's directory.
	inputPath  = "opcodes.txt"
	outputPath = "decode_table.go"
)

type row struct {
	opcode uint8
	mnem   string
	mode   string
}

func main() {
	rows, err := readOpcodes(inputPath)
	if err != nil {
		log.Fatalf("gendecode: %v", err)
	}
	if err := writeTable(outputPath, rows); err != nil {
		log.Fatalf("gendecode: %v", err)
	}
}

func readOpcodes(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []row
	seen := map[uint8]bool{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed line %q: want HEX MNEMONIC MODE", line)
		}
		hex := strings.TrimPrefix(fields[0], "0x")
		v, err := strconv.ParseUint(hex, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad opcode byte %q: %w", fields[0], err)
		}
		op := uint8(v)
		if seen[op] {
			return nil, fmt.Errorf("duplicate opcode 0x%02X", op)
		}
		seen[op] = true
		rows = append(rows, row{opcode: op, mnem: fields[1], mode: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].opcode < rows[j].opcode })
	return rows, nil
}

func writeTable(path string, rows []row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "// Code generated by internal/gendecode from opcodes.txt. DO NOT EDIT.")
	fmt.Fprintln(w, "package cpu")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// decodeEntry is one row of the 256-entry opcode dispatch table.")
	fmt.Fprintln(w, "type decodeEntry struct {")
	fmt.Fprintln(w, "\tOp    Opcode")
	fmt.Fprintln(w, "\tMode  AddressMode")
	fmt.Fprintln(w, "\tLegal bool")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "var decodeTable = [256]decodeEntry{")
	for _, r := range rows {
		fmt.Fprintf(w, "\t0x%02X: {Op: %s, Mode: %s, Legal: true},\n", r.opcode, r.mnem, r.mode)
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}
