// snake is a host for 6502 programs that follow the memory-mapped-I/O
// convention used by the classic "snake on the 6502" demo: a 16x16 tile
// grid rendered from $FD00-$FDFF (low two bits select one of four
// colors), the last pressed direction polled from $00FF, and a fresh
// random byte the guest can read from $0001 once per instruction.
//
// Without -rom this runs a small built-in demo program that paints the
// first grid tile from the random byte, to exercise the host end to end; point -rom
// at an assembled binary that honors the same memory map to run anything
// else built against it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io/ioutil"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/corebit/nes6502/clock"
	"github.com/corebit/nes6502/cpu"
	"github.com/corebit/nes6502/memory"
)

const (
	grid       = 16
	renderBase = 0xFD00
	keyAddr    = 0x00FF
	rngAddr    = 0x0001
	lastAddr   = 0x0000
	loadAddr   = 0x0200
)

var (
	rom       = flag.String("rom", "", "Path to an assembled binary to load at $0200; if empty, runs a built-in demo program")
	tileSize  = flag.Int("tile_size", 24, "Pixel size of one grid tile")
	freqHz    = flag.Float64("freq_hz", 80000, "Target CPU frequency in Hz")
	statusBar = flag.Int("status_height", 20, "Pixel height reserved above the grid for status text")
)

// demoProgram paints $FD00 from the random byte at $0001 and loops
// forever, exercising the host without requiring an external rom. In
// 6502 assembly: loop: lda $01; sta $fd00; jmp loop
var demoProgram = []byte{
	0xA5, 0x01, // LDA $01
	0x8D, 0x00, 0xFD, // STA $FD00
	0x4C, 0x00, 0x02, // JMP $0200
}

// syncRAM guards a memory.RAM with a mutex so the CPU goroutine and the
// SDL render/input loop can share it safely, the same way
// original_source/src/main.rs wraps its memory in an Arc<Mutex<...>>.
type syncRAM struct {
	mu  sync.Mutex
	ram *memory.RAM
}

func (s *syncRAM) Load(addr uint16) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ram.Load(addr)
}

func (s *syncRAM) Store(addr uint16, val uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ram.Store(addr, val)
}

func (s *syncRAM) LoadU16(addr uint16) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ram.LoadU16(addr)
}

func (s *syncRAM) LoadU16ZP(ptr uint8) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ram.LoadU16ZP(ptr)
}

// countingClock wraps another Clock and tallies total cycles seen, so the
// status line can show the running cycle count without the render loop
// touching Cpu state directly.
type countingClock struct {
	inner clock.Clock
	total uint64
}

func (c *countingClock) Cycles(n int) {
	atomic.AddUint64(&c.total, uint64(n))
	c.inner.Cycles(n)
}

func main() {
	flag.Parse()

	program := demoProgram
	if *rom != "" {
		b, err := ioutil.ReadFile(*rom)
		if err != nil {
			log.Fatalf("can't read rom %s: %v", *rom, err)
		}
		program = b
	}

	raw := memory.NewRAM()
	raw.PowerOn()
	for i, b := range program {
		raw.Store(loadAddr+uint16(i), b)
	}
	ram := &syncRAM{ram: raw}

	rt, err := clock.NewRealtimeClock(*freqHz)
	if err != nil {
		log.Fatalf("can't start clock: %v", err)
	}
	clk := &countingClock{inner: rt}
	c, err := cpu.New(cpu.Config{Bus: ram, Clock: clk, PC: loadAddr, Explicit: true})
	if err != nil {
		log.Fatalf("can't init cpu: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		for {
			terminated, err := c.Step()
			if err != nil {
				done <- err
				return
			}
			if terminated {
				done <- nil
				return
			}
			ram.Store(lastAddr, 0)
			ram.Store(rngAddr, uint8(rand.Intn(256)))
		}
	}()

	runWindow(ram, clk, done)
}

func runWindow(ram *syncRAM, clk *countingClock, done chan error) {
	tile := int32(*tileSize)
	w, h := tile*grid, tile*grid+int32(*statusBar)

	sdl.Main(func() {
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("can't init SDL: %v", err)
			}
		})
		var window *sdl.Window
		var surface *sdl.Surface
		sdl.Do(func() {
			var err error
			window, err = sdl.CreateWindow("6502 snake", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("can't create window: %v", err)
			}
			surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("can't get surface: %v", err)
			}
		})
		defer sdl.Do(func() {
			window.Destroy()
			sdl.Quit()
		})

		status := newStatusRenderer(int(w), int(*statusBar), basicfont.Face7x13)
		ticker := time.NewTicker(33 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case err := <-done:
				if err != nil {
					log.Printf("cpu stopped: %v", err)
				} else {
					log.Printf("cpu halted (BRK)")
				}
				return
			case <-ticker.C:
				sdl.Do(func() {
					pollInput(ram)
					drawGrid(surface, ram, tile, int32(*statusBar))
					status.render(fmt.Sprintf("cycles: %d", atomic.LoadUint64(&clk.total)))
					blit(surface, status.img, 0, 0)
					window.UpdateSurface()
				})
			}
		}
	})
}

func pollInput(ram *syncRAM) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ke, ok := event.(*sdl.KeyboardEvent)
		if !ok || ke.State != sdl.PRESSED {
			continue
		}
		var direction uint8
		switch ke.Keysym.Sym {
		case sdl.K_UP:
			direction = 3
		case sdl.K_DOWN:
			direction = 0
		case sdl.K_LEFT:
			direction = 1
		case sdl.K_RIGHT:
			direction = 2
		default:
			continue
		}
		prev := ram.Load(keyAddr)
		if (^direction & 0x03) != prev {
			ram.Store(keyAddr, direction)
		}
	}
}

var tileColor = [4]color.RGBA{
	{A: 255},
	{G: 200, A: 255},
	{R: 200, A: 255},
	{B: 200, A: 255},
}

func drawGrid(surface *sdl.Surface, ram *syncRAM, tile, yOff int32) {
	surface.FillRect(nil, 0)
	for i := 0; i < grid*grid; i++ {
		v := ram.Load(renderBase+uint16(i)) & 0x03
		c := tileColor[v]
		x, y := int32(i%grid), int32(i/grid)
		rect := &sdl.Rect{X: x * tile, Y: yOff + y*tile, W: tile, H: tile}
		surface.FillRect(rect, sdl.MapRGBA(surface.Format, c.R, c.G, c.B, c.A))
	}
}

// statusRenderer draws a single line of text into an off-screen RGBA
// image each frame, which is then blitted onto the SDL surface. Kept
// separate from the surface so the font.Drawer never has to know about
// SDL's pixel format.
type statusRenderer struct {
	img    *image.RGBA
	drawer *font.Drawer
}

func newStatusRenderer(w, h int, face font.Face) *statusRenderer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &statusRenderer{
		img: img,
		drawer: &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.RGBA{R: 0, G: 255, B: 0, A: 255}),
			Face: face,
		},
	}
}

func (s *statusRenderer) render(text string) {
	bounds := s.img.Bounds()
	s.img = image.NewRGBA(bounds) // fresh, fully transparent canvas each frame
	s.drawer.Dst = s.img
	s.drawer.Dot = fixed.Point26_6{X: fixed.I(4), Y: fixed.I(bounds.Dy() - 5)}
	s.drawer.DrawString(text)
}

// blit pokes img's pixels directly into surface's pixel buffer at (x0, y0)
// rather than going through Surface.Set, skipping fully transparent
// pixels. Each pixel is still read through img.At(...).RGBA().
func blit(surface *sdl.Surface, img *image.RGBA, x0, y0 int32) {
	data := surface.Pixels()
	bpp := int32(surface.Format.BytesPerPixel)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			off := (int32(y)+y0)*surface.Pitch + (int32(x)+x0)*bpp
			data[off+0] = uint8(r >> 8)
			data[off+1] = uint8(g >> 8)
			data[off+2] = uint8(b >> 8)
			data[off+3] = uint8(a >> 8)
		}
	}
}
