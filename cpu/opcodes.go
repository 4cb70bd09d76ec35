package cpu

// OpcodeDesc is the one descriptor record type dispatch needs: a
// name for disassembly, the addressing mode, the instruction's size in
// bytes (including the opcode itself), and the handler that carries out
// its semantics. OpcodeTable is the 256-entry array indexed directly by
// opcode byte — data, not polymorphism: dispatch is a single array
// index, never a type switch or interface call.
type OpcodeDesc struct {
	Name string
	Mode AddrMode
	Size uint8

	handler handlerFunc
}

// modeSize returns the byte count the ordinary addressing modes imply.
// BRK is the one documented exception (IMP but 2 bytes); JSR is handled
// entirely outside the table-driven prefetch (see Step).
func modeSize(mode AddrMode) uint8 {
	switch mode {
	case ACM, IMP:
		return 1
	case ABS, ABSX, ABSY, IND:
		return 3
	default: // IMM, ZPG, ZPGX, ZPGY, INDX, INDY, REL
		return 2
	}
}

func op(name string, mode AddrMode, h handlerFunc) OpcodeDesc {
	return OpcodeDesc{Name: name, Mode: mode, Size: modeSize(mode), handler: h}
}

// OpcodeTable is the static, closed 256-entry dispatch table. Every
// byte value 0x00-0xFF has an entry, documented or not; undocumented
// slots implement the well known fusions of two legal instructions'
// datapath signals, and the twelve JAM-family opcodes halt the chip the
// way real silicon locks up on them.
var OpcodeTable = [256]OpcodeDesc{
	0x00: {Name: "BRK", Mode: IMP, Size: 2, handler: brk},
	0x01: op("ORA", INDX, loadOp(INDX, ora)),
	0x02: op("JAM", IMP, jamOp(0x02)),
	0x03: op("SLO", INDX, rmwOp(INDX, slo)),
	0x04: op("NOP", ZPG, nopLoad(ZPG)),
	0x05: op("ORA", ZPG, loadOp(ZPG, ora)),
	0x06: op("ASL", ZPG, rmwOp(ZPG, asl)),
	0x07: op("SLO", ZPG, rmwOp(ZPG, slo)),
	0x08: op("PHP", IMP, php),
	0x09: op("ORA", IMM, loadOp(IMM, ora)),
	0x0A: op("ASL", ACM, aslAcc),
	0x0B: op("ANC", IMM, loadOp(IMM, anc)),
	0x0C: op("NOP", ABS, nopLoad(ABS)),
	0x0D: op("ORA", ABS, loadOp(ABS, ora)),
	0x0E: op("ASL", ABS, rmwOp(ABS, asl)),
	0x0F: op("SLO", ABS, rmwOp(ABS, slo)),

	0x10: op("BPL", REL, bpl),
	0x11: op("ORA", INDY, loadOp(INDY, ora)),
	0x12: op("JAM", IMP, jamOp(0x12)),
	0x13: op("SLO", INDY, rmwOp(INDY, slo)),
	0x14: op("NOP", ZPGX, nopLoad(ZPGX)),
	0x15: op("ORA", ZPGX, loadOp(ZPGX, ora)),
	0x16: op("ASL", ZPGX, rmwOp(ZPGX, asl)),
	0x17: op("SLO", ZPGX, rmwOp(ZPGX, slo)),
	0x18: op("CLC", IMP, clc),
	0x19: op("ORA", ABSY, loadOp(ABSY, ora)),
	0x1A: op("NOP", IMP, nop),
	0x1B: op("SLO", ABSY, rmwOp(ABSY, slo)),
	0x1C: op("NOP", ABSX, nopLoad(ABSX)),
	0x1D: op("ORA", ABSX, loadOp(ABSX, ora)),
	0x1E: op("ASL", ABSX, rmwOp(ABSX, asl)),
	0x1F: op("SLO", ABSX, rmwOp(ABSX, slo)),

	0x20: {Name: "JSR", Mode: ABS, Size: 3, handler: jsr},
	0x21: op("AND", INDX, loadOp(INDX, and)),
	0x22: op("JAM", IMP, jamOp(0x22)),
	0x23: op("RLA", INDX, rmwOp(INDX, rla)),
	0x24: op("BIT", ZPG, loadOp(ZPG, bit)),
	0x25: op("AND", ZPG, loadOp(ZPG, and)),
	0x26: op("ROL", ZPG, rmwOp(ZPG, rol)),
	0x27: op("RLA", ZPG, rmwOp(ZPG, rla)),
	0x28: op("PLP", IMP, plp),
	0x29: op("AND", IMM, loadOp(IMM, and)),
	0x2A: op("ROL", ACM, rolAcc),
	0x2B: op("ANC", IMM, loadOp(IMM, anc)),
	0x2C: op("BIT", ABS, loadOp(ABS, bit)),
	0x2D: op("AND", ABS, loadOp(ABS, and)),
	0x2E: op("ROL", ABS, rmwOp(ABS, rol)),
	0x2F: op("RLA", ABS, rmwOp(ABS, rla)),

	0x30: op("BMI", REL, bmi),
	0x31: op("AND", INDY, loadOp(INDY, and)),
	0x32: op("JAM", IMP, jamOp(0x32)),
	0x33: op("RLA", INDY, rmwOp(INDY, rla)),
	0x34: op("NOP", ZPGX, nopLoad(ZPGX)),
	0x35: op("AND", ZPGX, loadOp(ZPGX, and)),
	0x36: op("ROL", ZPGX, rmwOp(ZPGX, rol)),
	0x37: op("RLA", ZPGX, rmwOp(ZPGX, rla)),
	0x38: op("SEC", IMP, sec),
	0x39: op("AND", ABSY, loadOp(ABSY, and)),
	0x3A: op("NOP", IMP, nop),
	0x3B: op("RLA", ABSY, rmwOp(ABSY, rla)),
	0x3C: op("NOP", ABSX, nopLoad(ABSX)),
	0x3D: op("AND", ABSX, loadOp(ABSX, and)),
	0x3E: op("ROL", ABSX, rmwOp(ABSX, rol)),
	0x3F: op("RLA", ABSX, rmwOp(ABSX, rla)),

	0x40: op("RTI", IMP, rti),
	0x41: op("EOR", INDX, loadOp(INDX, eor)),
	0x42: op("JAM", IMP, jamOp(0x42)),
	0x43: op("SRE", INDX, rmwOp(INDX, sre)),
	0x44: op("NOP", ZPG, nopLoad(ZPG)),
	0x45: op("EOR", ZPG, loadOp(ZPG, eor)),
	0x46: op("LSR", ZPG, rmwOp(ZPG, lsr)),
	0x47: op("SRE", ZPG, rmwOp(ZPG, sre)),
	0x48: op("PHA", IMP, pha),
	0x49: op("EOR", IMM, loadOp(IMM, eor)),
	0x4A: op("LSR", ACM, lsrAcc),
	0x4B: op("ALR", IMM, loadOp(IMM, alr)),
	0x4C: op("JMP", ABS, jmpAbs),
	0x4D: op("EOR", ABS, loadOp(ABS, eor)),
	0x4E: op("LSR", ABS, rmwOp(ABS, lsr)),
	0x4F: op("SRE", ABS, rmwOp(ABS, sre)),

	0x50: op("BVC", REL, bvc),
	0x51: op("EOR", INDY, loadOp(INDY, eor)),
	0x52: op("JAM", IMP, jamOp(0x52)),
	0x53: op("SRE", INDY, rmwOp(INDY, sre)),
	0x54: op("NOP", ZPGX, nopLoad(ZPGX)),
	0x55: op("EOR", ZPGX, loadOp(ZPGX, eor)),
	0x56: op("LSR", ZPGX, rmwOp(ZPGX, lsr)),
	0x57: op("SRE", ZPGX, rmwOp(ZPGX, sre)),
	0x58: op("CLI", IMP, cli),
	0x59: op("EOR", ABSY, loadOp(ABSY, eor)),
	0x5A: op("NOP", IMP, nop),
	0x5B: op("SRE", ABSY, rmwOp(ABSY, sre)),
	0x5C: op("NOP", ABSX, nopLoad(ABSX)),
	0x5D: op("EOR", ABSX, loadOp(ABSX, eor)),
	0x5E: op("LSR", ABSX, rmwOp(ABSX, lsr)),
	0x5F: op("SRE", ABSX, rmwOp(ABSX, sre)),

	0x60: op("RTS", IMP, rts),
	0x61: op("ADC", INDX, loadOp(INDX, adc)),
	0x62: op("JAM", IMP, jamOp(0x62)),
	0x63: op("RRA", INDX, rmwOp(INDX, rra)),
	0x64: op("NOP", ZPG, nopLoad(ZPG)),
	0x65: op("ADC", ZPG, loadOp(ZPG, adc)),
	0x66: op("ROR", ZPG, rmwOp(ZPG, ror)),
	0x67: op("RRA", ZPG, rmwOp(ZPG, rra)),
	0x68: op("PLA", IMP, pla),
	0x69: op("ADC", IMM, loadOp(IMM, adc)),
	0x6A: op("ROR", ACM, rorAcc),
	0x6B: op("ARR", IMM, loadOp(IMM, arr)),
	0x6C: op("JMP", IND, jmpInd),
	0x6D: op("ADC", ABS, loadOp(ABS, adc)),
	0x6E: op("ROR", ABS, rmwOp(ABS, ror)),
	0x6F: op("RRA", ABS, rmwOp(ABS, rra)),

	0x70: op("BVS", REL, bvs),
	0x71: op("ADC", INDY, loadOp(INDY, adc)),
	0x72: op("JAM", IMP, jamOp(0x72)),
	0x73: op("RRA", INDY, rmwOp(INDY, rra)),
	0x74: op("NOP", ZPGX, nopLoad(ZPGX)),
	0x75: op("ADC", ZPGX, loadOp(ZPGX, adc)),
	0x76: op("ROR", ZPGX, rmwOp(ZPGX, ror)),
	0x77: op("RRA", ZPGX, rmwOp(ZPGX, rra)),
	0x78: op("SEI", IMP, sei),
	0x79: op("ADC", ABSY, loadOp(ABSY, adc)),
	0x7A: op("NOP", IMP, nop),
	0x7B: op("RRA", ABSY, rmwOp(ABSY, rra)),
	0x7C: op("NOP", ABSX, nopLoad(ABSX)),
	0x7D: op("ADC", ABSX, loadOp(ABSX, adc)),
	0x7E: op("ROR", ABSX, rmwOp(ABSX, ror)),
	0x7F: op("RRA", ABSX, rmwOp(ABSX, rra)),

	0x80: op("NOP", IMM, nopLoad(IMM)),
	0x81: op("STA", INDX, storeOp(INDX, sta)),
	0x82: op("NOP", IMM, nopLoad(IMM)),
	0x83: op("SAX", INDX, storeOp(INDX, sax)),
	0x84: op("STY", ZPG, storeOp(ZPG, sty)),
	0x85: op("STA", ZPG, storeOp(ZPG, sta)),
	0x86: op("STX", ZPG, storeOp(ZPG, stx)),
	0x87: op("SAX", ZPG, storeOp(ZPG, sax)),
	0x88: op("DEY", IMP, dey),
	0x89: op("NOP", IMM, nopLoad(IMM)),
	0x8A: op("TXA", IMP, txa),
	0x8B: op("ANE", IMM, loadOp(IMM, ane)),
	0x8C: op("STY", ABS, storeOp(ABS, sty)),
	0x8D: op("STA", ABS, storeOp(ABS, sta)),
	0x8E: op("STX", ABS, storeOp(ABS, stx)),
	0x8F: op("SAX", ABS, storeOp(ABS, sax)),

	0x90: op("BCC", REL, bcc),
	0x91: op("STA", INDY, storeOp(INDY, sta)),
	0x92: op("JAM", IMP, jamOp(0x92)),
	0x93: op("SHA", INDY, shaIndY),
	0x94: op("STY", ZPGX, storeOp(ZPGX, sty)),
	0x95: op("STA", ZPGX, storeOp(ZPGX, sta)),
	0x96: op("STX", ZPGY, storeOp(ZPGY, stx)),
	0x97: op("SAX", ZPGY, storeOp(ZPGY, sax)),
	0x98: op("TYA", IMP, tya),
	0x99: op("STA", ABSY, storeOp(ABSY, sta)),
	0x9A: op("TXS", IMP, txs),
	0x9B: op("TAS", ABSY, tas),
	0x9C: op("SHY", ABSX, shyAbsX),
	0x9D: op("STA", ABSX, storeOp(ABSX, sta)),
	0x9E: op("SHX", ABSY, shxAbsY),
	0x9F: op("SHA", ABSY, shaAbsY),

	0xA0: op("LDY", IMM, loadOp(IMM, ldy)),
	0xA1: op("LDA", INDX, loadOp(INDX, lda)),
	0xA2: op("LDX", IMM, loadOp(IMM, ldx)),
	0xA3: op("LAX", INDX, loadOp(INDX, lax)),
	0xA4: op("LDY", ZPG, loadOp(ZPG, ldy)),
	0xA5: op("LDA", ZPG, loadOp(ZPG, lda)),
	0xA6: op("LDX", ZPG, loadOp(ZPG, ldx)),
	0xA7: op("LAX", ZPG, loadOp(ZPG, lax)),
	0xA8: op("TAY", IMP, tay),
	0xA9: op("LDA", IMM, loadOp(IMM, lda)),
	0xAA: op("TAX", IMP, tax),
	0xAB: op("LXA", IMM, loadOp(IMM, lxa)),
	0xAC: op("LDY", ABS, loadOp(ABS, ldy)),
	0xAD: op("LDA", ABS, loadOp(ABS, lda)),
	0xAE: op("LDX", ABS, loadOp(ABS, ldx)),
	0xAF: op("LAX", ABS, loadOp(ABS, lax)),

	0xB0: op("BCS", REL, bcs),
	0xB1: op("LDA", INDY, loadOp(INDY, lda)),
	0xB2: op("JAM", IMP, jamOp(0xB2)),
	0xB3: op("LAX", INDY, loadOp(INDY, lax)),
	0xB4: op("LDY", ZPGX, loadOp(ZPGX, ldy)),
	0xB5: op("LDA", ZPGX, loadOp(ZPGX, lda)),
	0xB6: op("LDX", ZPGY, loadOp(ZPGY, ldx)),
	0xB7: op("LAX", ZPGY, loadOp(ZPGY, lax)),
	0xB8: op("CLV", IMP, clv),
	0xB9: op("LDA", ABSY, loadOp(ABSY, lda)),
	0xBA: op("TSX", IMP, tsx),
	0xBB: op("LAS", ABSY, loadOp(ABSY, lasOp)),
	0xBC: op("LDY", ABSX, loadOp(ABSX, ldy)),
	0xBD: op("LDA", ABSX, loadOp(ABSX, lda)),
	0xBE: op("LDX", ABSY, loadOp(ABSY, ldx)),
	0xBF: op("LAX", ABSY, loadOp(ABSY, lax)),

	0xC0: op("CPY", IMM, loadOp(IMM, cpy)),
	0xC1: op("CMP", INDX, loadOp(INDX, cmp)),
	0xC2: op("NOP", IMM, nopLoad(IMM)),
	0xC3: op("DCP", INDX, rmwOp(INDX, dcp)),
	0xC4: op("CPY", ZPG, loadOp(ZPG, cpy)),
	0xC5: op("CMP", ZPG, loadOp(ZPG, cmp)),
	0xC6: op("DEC", ZPG, rmwOp(ZPG, dec)),
	0xC7: op("DCP", ZPG, rmwOp(ZPG, dcp)),
	0xC8: op("INY", IMP, iny),
	0xC9: op("CMP", IMM, loadOp(IMM, cmp)),
	0xCA: op("DEX", IMP, dex),
	0xCB: op("AXS", IMM, loadOp(IMM, axs)),
	0xCC: op("CPY", ABS, loadOp(ABS, cpy)),
	0xCD: op("CMP", ABS, loadOp(ABS, cmp)),
	0xCE: op("DEC", ABS, rmwOp(ABS, dec)),
	0xCF: op("DCP", ABS, rmwOp(ABS, dcp)),

	0xD0: op("BNE", REL, bne),
	0xD1: op("CMP", INDY, loadOp(INDY, cmp)),
	0xD2: op("JAM", IMP, jamOp(0xD2)),
	0xD3: op("DCP", INDY, rmwOp(INDY, dcp)),
	0xD4: op("NOP", ZPGX, nopLoad(ZPGX)),
	0xD5: op("CMP", ZPGX, loadOp(ZPGX, cmp)),
	0xD6: op("DEC", ZPGX, rmwOp(ZPGX, dec)),
	0xD7: op("DCP", ZPGX, rmwOp(ZPGX, dcp)),
	0xD8: op("CLD", IMP, cld),
	0xD9: op("CMP", ABSY, loadOp(ABSY, cmp)),
	0xDA: op("NOP", IMP, nop),
	0xDB: op("DCP", ABSY, rmwOp(ABSY, dcp)),
	0xDC: op("NOP", ABSX, nopLoad(ABSX)),
	0xDD: op("CMP", ABSX, loadOp(ABSX, cmp)),
	0xDE: op("DEC", ABSX, rmwOp(ABSX, dec)),
	0xDF: op("DCP", ABSX, rmwOp(ABSX, dcp)),

	0xE0: op("CPX", IMM, loadOp(IMM, cpx)),
	0xE1: op("SBC", INDX, loadOp(INDX, sbc)),
	0xE2: op("NOP", IMM, nopLoad(IMM)),
	0xE3: op("ISC", INDX, rmwOp(INDX, isc)),
	0xE4: op("CPX", ZPG, loadOp(ZPG, cpx)),
	0xE5: op("SBC", ZPG, loadOp(ZPG, sbc)),
	0xE6: op("INC", ZPG, rmwOp(ZPG, inc)),
	0xE7: op("ISC", ZPG, rmwOp(ZPG, isc)),
	0xE8: op("INX", IMP, inx),
	0xE9: op("SBC", IMM, loadOp(IMM, sbc)),
	0xEA: op("NOP", IMP, nop),
	0xEB: op("SBC", IMM, loadOp(IMM, sbc)),
	0xEC: op("CPX", ABS, loadOp(ABS, cpx)),
	0xED: op("SBC", ABS, loadOp(ABS, sbc)),
	0xEE: op("INC", ABS, rmwOp(ABS, inc)),
	0xEF: op("ISC", ABS, rmwOp(ABS, isc)),

	0xF0: op("BEQ", REL, beq),
	0xF1: op("SBC", INDY, loadOp(INDY, sbc)),
	0xF2: op("JAM", IMP, jamOp(0xF2)),
	0xF3: op("ISC", INDY, rmwOp(INDY, isc)),
	0xF4: op("NOP", ZPGX, nopLoad(ZPGX)),
	0xF5: op("SBC", ZPGX, loadOp(ZPGX, sbc)),
	0xF6: op("INC", ZPGX, rmwOp(ZPGX, inc)),
	0xF7: op("ISC", ZPGX, rmwOp(ZPGX, isc)),
	0xF8: op("SED", IMP, sed),
	0xF9: op("SBC", ABSY, loadOp(ABSY, sbc)),
	0xFA: op("NOP", IMP, nop),
	0xFB: op("ISC", ABSY, rmwOp(ABSY, isc)),
	0xFC: op("NOP", ABSX, nopLoad(ABSX)),
	0xFD: op("SBC", ABSX, loadOp(ABSX, sbc)),
	0xFE: op("INC", ABSX, rmwOp(ABSX, inc)),
	0xFF: op("ISC", ABSX, rmwOp(ABSX, isc)),
}
