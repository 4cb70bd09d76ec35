// Package memory defines the host-supplied storage interface the CPU
// core reads and writes through. The core owns no memory of its own;
// everything it touches funnels through this interface so every access
// is observable.
package memory

import (
	"math/rand"
	"time"
)

// Ram is the interface a host implements to back the address space the
// CPU core runs against. Memory maps, mirroring, and bank switching are
// entirely the host's concern; this interface only needs to answer
// Read/Write for a 16 bit address.
type Ram interface {
	// Read returns the byte currently stored at addr.
	Read(addr uint16) uint8
	// Write stores val at addr.
	Write(addr uint16, val uint8)
	// PowerOn (re)initializes the backing store. Implementation defined
	// whether this zeros or randomizes content.
	PowerOn()
}

// FlatRAM is a flat, unbanked 64KiB address space. It is the reference
// Ram implementation used by tests, the disassembler, and the
// conformance runner.
type FlatRAM struct {
	mem [1 << 16]uint8
}

// NewFlatRAM returns a powered-on FlatRAM.
func NewFlatRAM() *FlatRAM {
	r := &FlatRAM{}
	r.PowerOn()
	return r
}

// Read implements Ram.
func (r *FlatRAM) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Ram.
func (r *FlatRAM) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// PowerOn implements Ram, randomizing content the way real RAM powers up
// in an indeterminate state.
func (r *FlatRAM) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.mem {
		r.mem[i] = uint8(rand.Intn(256))
	}
}

// LoadAt copies data into the address space starting at addr, wrapping
// at 0xFFFF. Used by tests and cmd/disasm to seed a program image.
func (r *FlatRAM) LoadAt(addr uint16, data []uint8) {
	for i, b := range data {
		r.mem[uint16(int(addr)+i)] = b
	}
}
