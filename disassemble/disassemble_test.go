package disassemble

import (
	"testing"

	"github.com/m6502/core/memory"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name   string
		bytes  []uint8
		want   string
		wantN  int
	}{
		{"implied", []uint8{0xEA}, "NOP", 1},
		{"accumulator", []uint8{0x0A}, "ASL A", 1},
		{"immediate", []uint8{0xA9, 0x42}, "LDA #$42", 2},
		{"zero page", []uint8{0xA5, 0x10}, "LDA $10", 2},
		{"zero page,X", []uint8{0xB5, 0x10}, "LDA $10,X", 2},
		{"indirect,X", []uint8{0xA1, 0x10}, "LDA ($10,X)", 2},
		{"indirect,Y", []uint8{0xB1, 0x10}, "LDA ($10),Y", 2},
		{"absolute", []uint8{0xAD, 0x34, 0x12}, "LDA $1234", 3},
		{"absolute,X", []uint8{0xBD, 0x34, 0x12}, "LDA $1234,X", 3},
		{"indirect (JMP)", []uint8{0x6C, 0x34, 0x12}, "JMP ($1234)", 3},
		{"illegal SLO", []uint8{0x07, 0x10}, "SLO $10", 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := memory.NewFlatRAM()
			r.LoadAt(0x0200, test.bytes)
			got, n := Step(0x0200, r)
			if got != test.want {
				t.Errorf("Step() = %q, want %q", got, test.want)
			}
			if n != test.wantN {
				t.Errorf("Step() size = %d, want %d", n, test.wantN)
			}
		})
	}
}

func TestStepRelativeResolvesTarget(t *testing.T) {
	r := memory.NewFlatRAM()
	r.LoadAt(0x0200, []uint8{0xD0, 0x05}) // BNE *+7
	got, n := Step(0x0200, r)
	if want := "BNE $0207"; got != want {
		t.Errorf("Step() = %q, want %q", got, want)
	}
	if n != 2 {
		t.Errorf("Step() size = %d, want 2", n)
	}
}
