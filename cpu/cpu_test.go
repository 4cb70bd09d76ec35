package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/m6502/core/memory"
)

// flatMemory is a trivial RAM used only by this package's own tests;
// cmd/conformance and the disassembler use memory.FlatRAM instead.
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8        { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, val uint8)  { r.addr[addr] = val }
func (r *flatMemory) PowerOn()                      {}

func setup(t *testing.T) (*Chip, *flatMemory) {
	t.Helper()
	r := &flatMemory{}
	c, err := New(CPU_NMOS, r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, r
}

func TestLDAImmediate(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	r.addr[0x0200] = 0xA9 // LDA #$42
	r.addr[0x0201] = 0x42

	cycles := c.Step()
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2\n%s", cycles, spew.Sdump(c.Cycles()))
	}
	if c.A != 0x42 {
		t.Errorf("A = %.2X, want 42", c.A)
	}
	if c.P&P_ZERO != 0 || c.P&P_NEGATIVE != 0 {
		t.Errorf("P = %.2X, want Z/N clear", c.P)
	}
	if c.PC != 0x0202 {
		t.Errorf("PC = %.4X, want 0202", c.PC)
	}
}

func TestLDAImmediateZeroAndNegative(t *testing.T) {
	tests := []struct {
		name    string
		val     uint8
		wantZ   bool
		wantN   bool
	}{
		{"zero", 0x00, true, false},
		{"negative", 0x80, false, true},
		{"positive", 0x01, false, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t)
			c.PC = 0x0200
			r.addr[0x0200] = 0xA9
			r.addr[0x0201] = test.val
			c.Step()
			if got := c.P&P_ZERO != 0; got != test.wantZ {
				t.Errorf("Z = %v, want %v", got, test.wantZ)
			}
			if got := c.P&P_NEGATIVE != 0; got != test.wantN {
				t.Errorf("N = %v, want %v", got, test.wantN)
			}
		})
	}
}

func TestSTAAbsolute(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	c.A = 0x99
	r.addr[0x0200] = 0x8D // STA $1234
	r.addr[0x0201] = 0x34
	r.addr[0x0202] = 0x12

	cycles := c.Step()
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
	if r.addr[0x1234] != 0x99 {
		t.Errorf("mem[1234] = %.2X, want 99", r.addr[0x1234])
	}
	want := []BusCycle{
		{Address: 0x0200, Value: 0x8D, Kind: CycleRead},
		{Address: 0x0201, Value: 0x34, Kind: CycleRead},
		{Address: 0x0202, Value: 0x12, Kind: CycleRead},
		{Address: 0x1234, Value: 0x99, Kind: CycleWrite},
	}
	if diff := deep.Equal(c.Cycles(), want); diff != nil {
		t.Errorf("cycle log diff: %v\n%s", diff, spew.Sdump(c.Cycles()))
	}
}

// TestJMPIndirectPageWrapBug exercises the famous 6502 bug: JMP ($xxFF)
// reads its high byte from $xx00, not from the start of the next page.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	r.addr[0x0200] = 0x6C // JMP ($30FF)
	r.addr[0x0201] = 0xFF
	r.addr[0x0202] = 0x30
	r.addr[0x30FF] = 0x80
	r.addr[0x3000] = 0x12 // wrapped read, not 0x3100
	r.addr[0x3100] = 0x99 // must NOT be read

	c.Step()
	if c.PC != 0x1280 {
		t.Errorf("PC = %.4X, want 1280 (page-wrap bug not reproduced)", c.PC)
	}
}

// TestJSRCycleTrace checks JSR's exact bus-cycle ordering: low operand,
// dummy stack read, push PC high then low, high operand, jump.
func TestJSRCycleTrace(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x8000
	c.S = 0xFF
	r.addr[0x8000] = 0x20 // JSR $1234
	r.addr[0x8001] = 0x34
	r.addr[0x8002] = 0x12

	c.Step()

	want := []BusCycle{
		{Address: 0x8000, Value: 0x20, Kind: CycleRead},
		{Address: 0x8001, Value: 0x34, Kind: CycleRead},
		{Address: 0x01FF, Value: 0x00, Kind: CycleRead},
		{Address: 0x01FF, Value: 0x80, Kind: CycleWrite},
		{Address: 0x01FE, Value: 0x02, Kind: CycleWrite},
		{Address: 0x8002, Value: 0x12, Kind: CycleRead},
	}
	if diff := deep.Equal(c.Cycles(), want); diff != nil {
		t.Errorf("cycle log diff: %v\n%s", diff, spew.Sdump(c.Cycles()))
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = %.4X, want 1234", c.PC)
	}
	if c.S != 0xFD {
		t.Errorf("S = %.2X, want FD", c.S)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x8000
	c.S = 0xFF
	r.addr[0x8000] = 0x20 // JSR $9000
	r.addr[0x8001] = 0x00
	r.addr[0x8002] = 0x90
	r.addr[0x9000] = 0x60 // RTS

	c.Step() // JSR
	if c.PC != 0x9000 {
		t.Fatalf("PC after JSR = %.4X, want 9000", c.PC)
	}
	c.Step() // RTS
	if c.PC != 0x8003 {
		t.Errorf("PC after RTS = %.4X, want 8003", c.PC)
	}
	if c.S != 0xFF {
		t.Errorf("S after round trip = %.2X, want FF", c.S)
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	c.S = 0xFF
	c.A = 0x7E
	r.addr[0x0200] = 0x48 // PHA
	r.addr[0x0201] = 0xA9 // LDA #$00
	r.addr[0x0202] = 0x00
	r.addr[0x0203] = 0x68 // PLA

	c.Step() // PHA
	c.Step() // LDA #$00
	if c.A != 0 {
		t.Fatalf("A after LDA #0 = %.2X, want 0", c.A)
	}
	c.Step() // PLA
	if c.A != 0x7E {
		t.Errorf("A after PLA = %.2X, want 7E", c.A)
	}
	if c.S != 0xFF {
		t.Errorf("S after round trip = %.2X, want FF", c.S)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	c.S = 0xFF
	c.P = P_S1 | P_CARRY | P_ZERO
	r.addr[0x0200] = 0x08 // PHP
	r.addr[0x0201] = 0x18 // CLC
	r.addr[0x0202] = 0x28 // PLP

	c.Step() // PHP
	c.Step() // CLC
	if c.P&P_CARRY != 0 {
		t.Fatalf("carry set after CLC")
	}
	c.Step() // PLP
	if c.P&P_CARRY == 0 || c.P&P_ZERO == 0 {
		t.Errorf("P = %.2X, want carry+zero restored", c.P)
	}
}

// TestADCDecimalMode checks BCD addition: A and the carry come from the
// decimal fixup, so 58+46 wraps past 99 and sets C.
func TestADCDecimalMode(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	c.P = P_S1 | P_DECIMAL
	c.A = 0x58 // 58 BCD
	r.addr[0x0200] = 0x69 // ADC #$46
	r.addr[0x0201] = 0x46 // 46 BCD

	c.Step()
	if c.A != 0x04 {
		t.Errorf("A = %.2X, want 04 (58+46 BCD = 104, wraps to 04)", c.A)
	}
	if c.P&P_CARRY == 0 {
		t.Errorf("carry not set for BCD overflow past 99")
	}
}

func TestSBCDecimalMode(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	c.P = P_S1 | P_DECIMAL | P_CARRY
	c.A = 0x12 // 12 BCD
	r.addr[0x0200] = 0xE9 // SBC #$06
	r.addr[0x0201] = 0x06

	c.Step()
	if c.A != 0x06 {
		t.Errorf("A = %.2X, want 06 (12-06 BCD)", c.A)
	}
	if c.P&P_CARRY == 0 {
		t.Errorf("carry should be set (no borrow)")
	}
}

func TestBranchCycleCosts(t *testing.T) {
	tests := []struct {
		name       string
		zeroFlag   bool
		pc         uint16
		offset     uint8
		wantCycles int
		wantPC     uint16
	}{
		{"not taken", true, 0x0200, 0x05, 2, 0x0202},
		{"taken, same page", false, 0x0200, 0x05, 3, 0x0207},
		{"taken, crosses page", false, 0x02FD, 0x05, 4, 0x0304},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t)
			c.PC = test.pc
			if test.zeroFlag {
				c.P = P_S1 | P_ZERO
			} else {
				c.P = P_S1
			}
			r.addr[test.pc] = 0xD0 // BNE
			r.addr[test.pc+1] = test.offset

			cycles := c.Step()
			if cycles != test.wantCycles {
				t.Errorf("cycles = %d, want %d", cycles, test.wantCycles)
			}
			if c.PC != test.wantPC {
				t.Errorf("PC = %.4X, want %.4X", c.PC, test.wantPC)
			}
		})
	}
}

func TestRMWDummyWrite(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	r.addr[0x0200] = 0xE6 // INC $50
	r.addr[0x0201] = 0x50
	r.addr[0x0050] = 0x7F

	c.Step()
	want := []BusCycle{
		{Address: 0x0200, Value: 0xE6, Kind: CycleRead},
		{Address: 0x0201, Value: 0x50, Kind: CycleRead},
		{Address: 0x0050, Value: 0x7F, Kind: CycleRead},
		{Address: 0x0050, Value: 0x7F, Kind: CycleWrite}, // dummy write-back of unmodified value
		{Address: 0x0050, Value: 0x80, Kind: CycleWrite}, // real write of the incremented value
	}
	if diff := deep.Equal(c.Cycles(), want); diff != nil {
		t.Errorf("cycle log diff: %v\n%s", diff, spew.Sdump(c.Cycles()))
	}
}

func TestJAMHalts(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x0200
	r.addr[0x0200] = 0x02 // JAM

	c.Step()
	if !c.Halted() {
		t.Fatalf("expected halted after JAM")
	}
	if c.HaltOpcode() != 0x02 {
		t.Errorf("HaltOpcode = %.2X, want 02", c.HaltOpcode())
	}
	if c.PC != 0x0200 {
		t.Errorf("PC = %.4X, want 0200 (address of JAM opcode)", c.PC)
	}

	cycles := c.Step()
	if cycles != 0 {
		t.Errorf("cycles after halt = %d, want 0", cycles)
	}
}

func TestNewRejectsInvalidCPUType(t *testing.T) {
	r := &flatMemory{}
	if _, err := New(CPU_UNIMPLEMENTED, r); err == nil {
		t.Errorf("expected error for CPU_UNIMPLEMENTED")
	}
	if _, err := New(CPU_MAX, r); err == nil {
		t.Errorf("expected error for CPU_MAX")
	}
}

func TestReset(t *testing.T) {
	c, r := setup(t)
	r.addr[RESET_VECTOR] = 0x00
	r.addr[RESET_VECTOR+1] = 0x80

	c.Reset()
	if c.PC != 0x8000 {
		t.Errorf("PC = %.4X, want 8000", c.PC)
	}
	if c.P&P_INTERRUPT == 0 {
		t.Errorf("interrupt disable not set after reset")
	}
	if c.Halted() {
		t.Errorf("halted after reset")
	}
}

// TestIllegalOpcodeFusions spot-checks a handful of the undocumented
// opcodes against their documented two-instruction equivalents.
func TestIllegalOpcodeFusions(t *testing.T) {
	t.Run("SLO", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.A = 0x01
		r.addr[0x0200] = 0x07 // SLO $10  (ASL $10; ORA $10)
		r.addr[0x0201] = 0x10
		r.addr[0x0010] = 0x81 // carries out, shifts to 0x02

		c.Step()
		if r.addr[0x0010] != 0x02 {
			t.Errorf("mem[10] = %.2X, want 02", r.addr[0x0010])
		}
		if c.A != 0x03 {
			t.Errorf("A = %.2X, want 03 (0x01 | 0x02)", c.A)
		}
		if c.P&P_CARRY == 0 {
			t.Errorf("carry not set from the shifted-out bit")
		}
	})

	t.Run("LAX", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		r.addr[0x0200] = 0xA7 // LAX $10
		r.addr[0x0201] = 0x10
		r.addr[0x0010] = 0x55

		c.Step()
		if c.A != 0x55 || c.X != 0x55 {
			t.Errorf("A=%.2X X=%.2X, want both 55", c.A, c.X)
		}
	})

	t.Run("DCP", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.A = 0x10
		r.addr[0x0200] = 0xC7 // DCP $10 (DEC $10; CMP $10)
		r.addr[0x0201] = 0x10
		r.addr[0x0010] = 0x11

		c.Step()
		if r.addr[0x0010] != 0x10 {
			t.Errorf("mem[10] = %.2X, want 10", r.addr[0x0010])
		}
		if c.P&P_ZERO == 0 {
			t.Errorf("zero flag not set (A == decremented value)")
		}
	})
}

// TestIndexedPageCross covers the ABSX/ABSY/INDY carry-out case: indexing
// off the low byte crosses into the next page, costing an extra read
// cycle on loads and landing on the correct (carried) address, except
// for SHA, whose page-crossing write goes to a corrupted address.
func TestIndexedPageCross(t *testing.T) {
	t.Run("LDA absolute,X same page", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.X = 0x02
		r.addr[0x0200] = 0xBD // LDA $12F0,X
		r.addr[0x0201] = 0xF0
		r.addr[0x0202] = 0x12
		r.addr[0x12F2] = 0x77

		cycles := c.Step()
		if cycles != 4 {
			t.Errorf("cycles = %d, want 4\n%s", cycles, spew.Sdump(c.Cycles()))
		}
		if c.A != 0x77 {
			t.Errorf("A = %.2X, want 77", c.A)
		}
	})

	t.Run("LDA absolute,X crosses page", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.X = 0x02
		r.addr[0x0200] = 0xBD // LDA $12FF,X
		r.addr[0x0201] = 0xFF
		r.addr[0x0202] = 0x12
		r.addr[0x1301] = 0x88
		r.addr[0x1201] = 0x99 // the bogus same-page address; must not be the result

		cycles := c.Step()
		if cycles != 5 {
			t.Errorf("cycles = %d, want 5\n%s", cycles, spew.Sdump(c.Cycles()))
		}
		if c.A != 0x88 {
			t.Errorf("A = %.2X, want 88 (read from carried address 0x1301)", c.A)
		}
	})

	t.Run("STA absolute,X always writes the carried address", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.X = 0x02
		c.A = 0x42
		r.addr[0x0200] = 0x9D // STA $12FF,X
		r.addr[0x0201] = 0xFF
		r.addr[0x0202] = 0x12

		cycles := c.Step()
		if cycles != 5 {
			t.Errorf("cycles = %d, want 5", cycles)
		}
		if r.addr[0x1301] != 0x42 {
			t.Errorf("mem[1301] = %.2X, want 42", r.addr[0x1301])
		}
		if r.addr[0x1201] != 0 {
			t.Errorf("mem[1201] = %.2X, want untouched (bogus same-page address)", r.addr[0x1201])
		}
	})

	t.Run("INC absolute,X always 7 cycles regardless of crossing", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.X = 0x02
		r.addr[0x0200] = 0xFE // INC $12FF,X
		r.addr[0x0201] = 0xFF
		r.addr[0x0202] = 0x12
		r.addr[0x1301] = 0x09

		cycles := c.Step()
		if cycles != 7 {
			t.Errorf("cycles = %d, want 7", cycles)
		}
		if r.addr[0x1301] != 0x0A {
			t.Errorf("mem[1301] = %.2X, want 0A", r.addr[0x1301])
		}
	})

	t.Run("LDA (zp),Y crosses page", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.Y = 0x02
		r.addr[0x0200] = 0xB1 // LDA ($10),Y
		r.addr[0x0201] = 0x10
		r.addr[0x0010] = 0xFF // pointer low
		r.addr[0x0011] = 0x12 // pointer high -> base 0x12FF
		r.addr[0x1301] = 0x55
		r.addr[0x1201] = 0x66 // bogus same-page address; must not be the result

		cycles := c.Step()
		if cycles != 6 {
			t.Errorf("cycles = %d, want 6\n%s", cycles, spew.Sdump(c.Cycles()))
		}
		if c.A != 0x55 {
			t.Errorf("A = %.2X, want 55 (read from carried address 0x1301)", c.A)
		}
	})

	t.Run("SHA absolute,Y corrupts the written address on page-cross", func(t *testing.T) {
		c, r := setup(t)
		c.PC = 0x0200
		c.Y = 0x02
		c.A = 0xFF
		c.X = 0xFF
		r.addr[0x0200] = 0x9F // SHA $12FF,Y
		r.addr[0x0201] = 0xFF
		r.addr[0x0202] = 0x12

		c.Step()
		// hi+1 = 0x13; A&X&(hi+1) = 0x13. Crossing corrupts the stored
		// value to A&X&hi = 0x12 and writes it into the address's own
		// high byte instead of the carried 0x13.
		if r.addr[0x1201] != 0x12 {
			t.Errorf("mem[1201] = %.2X, want 12 (address high byte corrupted to the masked value)", r.addr[0x1201])
		}
		if r.addr[0x1301] != 0 {
			t.Errorf("mem[1301] = %.2X, want untouched (carried address not used on cross)", r.addr[0x1301])
		}
	})
}
