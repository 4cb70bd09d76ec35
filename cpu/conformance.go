package cpu

import (
	"encoding/json"
	"fmt"

	"github.com/m6502/core/memory"
)

// RamEntry is one (address, value) pair in a test vector's initial or
// final RAM listing.
type RamEntry struct {
	Address uint16 `json:"address"`
	Value   uint8  `json:"value"`
}

// RegState is the register snapshot half of a test vector (the
// "initial" or "final" object).
type RegState struct {
	PC  uint16     `json:"pc"`
	S   uint8      `json:"s"`
	A   uint8      `json:"a"`
	X   uint8      `json:"x"`
	Y   uint8      `json:"y"`
	P   uint8      `json:"p"`
	Ram []RamEntry `json:"ram"`
}

// CycleEntry is one expected bus access in a test vector's cycle list.
type CycleEntry struct {
	Address uint16 `json:"address"`
	Value   uint8  `json:"value"`
	Ctype   string `json:"ctype"` // "read" or "write"
}

// Vector is a single conformance test case in the JSON format this
// module's test suite and cmd/conformance consume: a named instruction
// execution with its starting state, expected ending state, and the
// expected bus-cycle trace.
type Vector struct {
	Name    string       `json:"name"`
	Initial RegState     `json:"initial"`
	Final   RegState     `json:"final"`
	Cycles  []CycleEntry `json:"cycles"`
}

// LoadVectors parses a JSON document holding an array of Vector.
func LoadVectors(data []byte) ([]Vector, error) {
	var vecs []Vector
	if err := json.Unmarshal(data, &vecs); err != nil {
		return nil, fmt.Errorf("parsing vector document: %w", err)
	}
	return vecs, nil
}

// Load seeds ram and a Chip from a vector's initial state. cpuType
// selects the variant, since the vector format carries no CPU type of
// its own and the caller decides.
func Load(v Vector, cpuType CPUType, ram *memory.FlatRAM) (*Chip, error) {
	for _, e := range v.Initial.Ram {
		ram.Write(e.Address, e.Value)
	}
	c, err := New(cpuType, ram)
	if err != nil {
		return nil, err
	}
	c.PC = v.Initial.PC
	c.S = v.Initial.S
	c.A = v.Initial.A
	c.X = v.Initial.X
	c.Y = v.Initial.Y
	c.P = v.Initial.P
	return c, nil
}

// ActualCycles renders a Chip's recorded BusCycle log in the vector
// CycleEntry shape, for diffing against Vector.Cycles.
func ActualCycles(cycles []BusCycle) []CycleEntry {
	out := make([]CycleEntry, len(cycles))
	for i, bc := range cycles {
		out[i] = CycleEntry{Address: bc.Address, Value: bc.Value, Ctype: bc.Kind.String()}
	}
	return out
}

// ActualRegState renders a Chip's current registers plus the given RAM
// addresses in the vector RegState shape, for diffing against
// Vector.Final. Only the addresses named in want are compared, matching
// how the Tom Harte style corpus only lists RAM it cares about.
func ActualRegState(c *Chip, ram *memory.FlatRAM, want []RamEntry) RegState {
	rs := RegState{PC: c.PC, S: c.S, A: c.A, X: c.X, Y: c.Y, P: c.P}
	rs.Ram = make([]RamEntry, len(want))
	for i, e := range want {
		rs.Ram[i] = RamEntry{Address: e.Address, Value: ram.Read(e.Address)}
	}
	return rs
}
