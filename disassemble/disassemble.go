// Package disassemble implements a one-pass disassembler for 6502
// opcodes, sharing its opcode/mode/size data with the executor so the
// two can never disagree about what an opcode is.
package disassemble

import (
	"fmt"

	"github.com/m6502/core/cpu"
	"github.com/m6502/core/memory"
)

// Step disassembles the instruction at pc, returning its text and the
// number of bytes it occupies. It does not interpret the instruction,
// so a JMP target is printed numerically and never followed.
//
// This always reads at least the opcode byte and, for multi-byte
// opcodes, the operand bytes that follow — callers must ensure those
// addresses are valid to read.
func Step(pc uint16, r memory.Ram) (string, int) {
	opcode := r.Read(pc)
	desc := &cpu.OpcodeTable[opcode]

	switch desc.Mode {
	case cpu.ACM:
		return fmt.Sprintf("%s A", desc.Name), 1
	case cpu.IMP:
		return desc.Name, int(desc.Size)
	case cpu.IMM:
		v := r.Read(pc + 1)
		return fmt.Sprintf("%s #$%.2X", desc.Name, v), 2
	case cpu.ZPG:
		v := r.Read(pc + 1)
		return fmt.Sprintf("%s $%.2X", desc.Name, v), 2
	case cpu.ZPGX:
		v := r.Read(pc + 1)
		return fmt.Sprintf("%s $%.2X,X", desc.Name, v), 2
	case cpu.ZPGY:
		v := r.Read(pc + 1)
		return fmt.Sprintf("%s $%.2X,Y", desc.Name, v), 2
	case cpu.INDX:
		v := r.Read(pc + 1)
		return fmt.Sprintf("%s ($%.2X,X)", desc.Name, v), 2
	case cpu.INDY:
		v := r.Read(pc + 1)
		return fmt.Sprintf("%s ($%.2X),Y", desc.Name, v), 2
	case cpu.REL:
		offset := r.Read(pc + 1)
		target := pc + 2 + uint16(int16(int8(offset)))
		return fmt.Sprintf("%s $%.4X", desc.Name, target), 2
	case cpu.ABS:
		lo := r.Read(pc + 1)
		hi := r.Read(pc + 2)
		return fmt.Sprintf("%s $%.4X", desc.Name, uint16(lo)|uint16(hi)<<8), 3
	case cpu.ABSX:
		lo := r.Read(pc + 1)
		hi := r.Read(pc + 2)
		return fmt.Sprintf("%s $%.4X,X", desc.Name, uint16(lo)|uint16(hi)<<8), 3
	case cpu.ABSY:
		lo := r.Read(pc + 1)
		hi := r.Read(pc + 2)
		return fmt.Sprintf("%s $%.4X,Y", desc.Name, uint16(lo)|uint16(hi)<<8), 3
	case cpu.IND:
		lo := r.Read(pc + 1)
		hi := r.Read(pc + 2)
		return fmt.Sprintf("%s ($%.4X)", desc.Name, uint16(lo)|uint16(hi)<<8), 3
	}
	return fmt.Sprintf("??? ($%.2X)", opcode), 1
}
