// handasm converts a hand-written listing of hex byte lines into a raw
// binary loadable by cmd/snake's -rom flag or as cmd/disasm's input file.
// Each input line holds one to three space-separated hex bytes; a leading
// 4-hex-digit address column (as printed by cmd/disasm or typed by hand to
// mirror it) is tolerated and stripped.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
)

var offset = flag.Int("offset", 0x0000, "Number of zero bytes to prepend before the assembled data")

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("usage: %s [-offset <n>] <input> <output>", os.Args[0])
	}
	in, out := flag.Args()[0], flag.Args()[1]

	output, err := assemble(in, *offset)
	if err != nil {
		log.Fatalf("handasm: %v", err)
	}
	if err := os.WriteFile(out, output, 0644); err != nil {
		log.Fatalf("handasm: writing %s: %v", out, err)
	}
}

func assemble(path string, offset int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	output := make([]byte, offset)
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		toks := strings.Fields(stripAddressColumn(line))
		if len(toks) == 0 || len(toks) > 3 {
			return nil, &parseError{lineNum, line, "expected 1-3 hex bytes"}
		}
		for _, tok := range toks {
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, &parseError{lineNum, line, err.Error()}
			}
			output = append(output, byte(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return output, nil
}

// stripAddressColumn removes a leading "XXXX  " address field if present,
// matching the column cmd/disasm prints before the mnemonic.
func stripAddressColumn(line string) string {
	fields := strings.Fields(line)
	if len(fields) > 0 && len(fields[0]) == 4 {
		if _, err := strconv.ParseUint(fields[0], 16, 16); err == nil {
			return strings.Join(fields[1:], " ")
		}
	}
	return line
}

type parseError struct {
	line int
	text string
	want string
}

func (e *parseError) Error() string {
	return "line " + strconv.Itoa(e.line) + " (" + e.text + "): " + e.want
}
