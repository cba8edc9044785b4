// Package monitor is a debug window for the CPU: registers, the instruction
// at the program counter, the zero page and the stack page, redrawn every
// frame while the program runs.
package monitor

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/n-ulricksen/nes-cpu/nes"
)

const (
	screenW    float64 = 520
	screenH    float64 = 560
	screenPosX float64 = 600 // Where to render the display on the user's monitor.
	screenPosY float64 = 400

	// Frames per second
	fps float64 = 30.0
)

// Monitor runs a CPU inside a pixel window.
type Monitor struct {
	cpu    *nes.Cpu6502
	window *pixelgl.Window
	txt    *text.Text

	// Instructions executed per frame while running.
	StepsPerFrame int

	paused bool
	err    error
}

func New(cpu *nes.Cpu6502) *Monitor {
	return &Monitor{
		cpu:           cpu,
		StepsPerFrame: 1,
	}
}

// Err returns the error that halted the CPU, if any.
func (m *Monitor) Err() error { return m.err }

// Run opens the window and drives the CPU until the window is closed. It must
// be passed to pixelgl.Run.
//
// Keys: Space pauses and resumes, S steps once while paused, Escape quits.
func (m *Monitor) Run() {
	config := pixelgl.WindowConfig{
		Title:    "6502 Monitor",
		Bounds:   pixel.R(0, 0, screenW, screenH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("Unable to create new PixelGl window...\n", err)
	}
	m.window = window

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	m.txt = text.New(pixel.V(8, screenH-20), atlas)

	interval := time.Duration((1/fps)*1000) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Use a time ticker to keep frames rendered steadily at a set FPS.
	for !m.window.Closed() {
		m.handleInput()

		if !m.paused {
			m.step(m.StepsPerFrame)
		}

		m.draw()

		<-ticker.C
	}
}

func (m *Monitor) handleInput() {
	switch {
	case m.window.JustPressed(pixelgl.KeyEscape):
		m.window.SetClosed(true)
	case m.window.JustPressed(pixelgl.KeySpace):
		m.paused = !m.paused
	case m.paused && m.window.JustPressed(pixelgl.KeyS):
		m.step(1)
	}
}

func (m *Monitor) step(n int) {
	for i := 0; i < n && !m.cpu.Halted(); i++ {
		if err := m.cpu.Step(); err != nil {
			m.err = err
			return
		}
	}
}

func (m *Monitor) draw() {
	m.window.Clear(colornames.Black)
	m.txt.Clear()

	status := "running"
	switch {
	case m.err != nil:
		status = m.err.Error()
	case m.cpu.Halted():
		status = "halted"
	case m.paused:
		status = "paused"
	}

	fmt.Fprintf(m.txt, "%s\n\n", m.cpu)
	fmt.Fprintf(m.txt, "Next: %s\n", m.cpu.Current())
	fmt.Fprintf(m.txt, "State: %s\n\n", status)

	// Print 16 bytes per line.
	fmt.Fprintf(m.txt, "Zero page\n%s\n", m.cpu.Bus.Dump(0x0000, 16))
	fmt.Fprintf(m.txt, "Stack\n%s", m.cpu.Bus.Dump(0x0100|uint16(m.cpu.Sp), 4))

	m.txt.Draw(m.window, pixel.IM)
	m.window.Update()
}
