package cpu

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/corebit/nes6502/clock"
	"github.com/corebit/nes6502/memory"
)

// harteTestdataDir is where a checkout of the Tom Harte ProcessorTests
// nes6502 suite (https://github.com/SingleStepTests/ProcessorTests) is
// expected, one JSON file per opcode byte. The suite isn't vendored into
// this module; these tests skip entirely when it's absent.
const harteTestdataDir = "../testdata/nes6502"

type harteState struct {
	PC  uint16   `json:"pc"`
	S   uint8    `json:"s"`
	A   uint8    `json:"a"`
	X   uint8    `json:"x"`
	Y   uint8    `json:"y"`
	P   uint8    `json:"p"`
	RAM [][2]int `json:"ram"`
}

type harteCase struct {
	Name    string        `json:"name"`
	Initial harteState    `json:"initial"`
	Final   harteState    `json:"final"`
	Cycles  []interface{} `json:"cycles"`
}

// TestHarteProcessorTests runs every *.json fixture under harteTestdataDir
// against Execute, comparing the resulting register file and touched RAM
// bytes against the fixture's documented final state. See
// harteTestdataDir's doc comment for how to populate it.
func TestHarteProcessorTests(t *testing.T) {
	entries, err := os.ReadDir(harteTestdataDir)
	if os.IsNotExist(err) {
		t.Skipf("no ProcessorTests checkout at %s, skipping", harteTestdataDir)
	}
	if err != nil {
		t.Fatalf("reading %s: %v", harteTestdataDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		entry := entry
		t.Run(entry.Name(), func(t *testing.T) {
			runHarteFile(t, filepath.Join(harteTestdataDir, entry.Name()))
		})
	}
}

func runHarteFile(t *testing.T, path string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var cases []harteCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			ram := memory.NewRAM()
			for _, kv := range tc.Initial.RAM {
				ram.Store(uint16(kv[0]), uint8(kv[1]))
			}
			c, err := New(Config{
				Bus: ram, Clock: &clock.NullClock{}, Explicit: true,
				A: tc.Initial.A, X: tc.Initial.X, Y: tc.Initial.Y,
				SP: tc.Initial.S, P: Status(tc.Initial.P), PC: tc.Initial.PC,
			})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			instr, err := c.Fetch()
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			cyc, _, err := c.Execute(instr)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if want := len(tc.Cycles); cyc != want {
				t.Errorf("cycles = %d, want %d (len of fixture's cycles trace)", cyc, want)
			}

			got := harteState{PC: c.PC, S: c.SP, A: c.A, X: c.X, Y: c.Y, P: uint8(c.P)}
			want := harteState{PC: tc.Final.PC, S: tc.Final.S, A: tc.Final.A, X: tc.Final.X, Y: tc.Final.Y, P: tc.Final.P}
			if diff := deep.Equal(got, want); diff != nil {
				t.Errorf("register mismatch: %v\ncpu state: %s", diff, spew.Sdump(c))
			}

			for _, kv := range tc.Final.RAM {
				addr, want := uint16(kv[0]), uint8(kv[1])
				if got := ram.Load(addr); got != want {
					t.Errorf("mem[0x%04X] = 0x%02X, want 0x%02X", addr, got, want)
				}
			}
		})
	}
}
