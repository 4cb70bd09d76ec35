package cpu

// This file implements the semantic routines for every documented and
// undocumented opcode, grouped by family: loads, stores, transfers,
// stack, logic, ADC/SBC, compare, inc/dec, shifts, jumps/calls,
// branches, flag ops, system, and the illegal-opcode fusions.
// opcodes.go wires these into the 256-entry table via the
// loadOp/storeOp/rmwOp combinators below.

// handlerFunc is the uniform shape every opcode table entry dispatches
// to: the two (possibly unused) operand bytes already fetched by Step.
type handlerFunc func(c *Chip, op1, op2 uint8)

// loadOp adapts a value-consuming semantic routine to the table's
// handler shape by running the addressing mode in load class first.
func loadOp(mode AddrMode, f func(c *Chip, v uint8)) handlerFunc {
	return func(c *Chip, op1, op2 uint8) {
		_, v, _ := c.evalAddr(mode, [2]uint8{op1, op2}, classLoad)
		f(c, v)
	}
}

// storeOp adapts a register-selecting routine to the table's handler
// shape, running the addressing mode in store class (no read) and
// writing whatever f returns.
func storeOp(mode AddrMode, f func(c *Chip) uint8) handlerFunc {
	return func(c *Chip, op1, op2 uint8) {
		addr, _, _ := c.evalAddr(mode, [2]uint8{op1, op2}, classStore)
		c.write(addr, f(c))
	}
}

// rmwOp adapts a read-modify-write routine to the table's handler
// shape. The addressing mode (in rmw class) has already performed the
// dummy write of the unmodified value by the time f runs; this emits
// the real write with f's result.
func rmwOp(mode AddrMode, f func(c *Chip, v uint8) uint8) handlerFunc {
	return func(c *Chip, op1, op2 uint8) {
		addr, v, _ := c.evalAddr(mode, [2]uint8{op1, op2}, classRMW)
		c.write(addr, f(c, v))
	}
}

// nopLoad reads through an addressing mode purely for its bus-cycle
// side effects, discarding the value. Used for the undocumented
// multi-byte NOPs.
func nopLoad(mode AddrMode) handlerFunc {
	return func(c *Chip, op1, op2 uint8) {
		c.evalAddr(mode, [2]uint8{op1, op2}, classLoad)
	}
}

// --- loads ---

func lda(c *Chip, v uint8) { c.A = v; c.setZN(v) }
func ldx(c *Chip, v uint8) { c.X = v; c.setZN(v) }
func ldy(c *Chip, v uint8) { c.Y = v; c.setZN(v) }

// --- stores ---

func sta(c *Chip) uint8 { return c.A }
func stx(c *Chip) uint8 { return c.X }
func sty(c *Chip) uint8 { return c.Y }
func sax(c *Chip) uint8 { return c.A & c.X }

// --- transfers ---

func tax(c *Chip, _, _ uint8) { c.X = c.A; c.setZN(c.X) }
func tay(c *Chip, _, _ uint8) { c.Y = c.A; c.setZN(c.Y) }
func txa(c *Chip, _, _ uint8) { c.A = c.X; c.setZN(c.A) }
func tya(c *Chip, _, _ uint8) { c.A = c.Y; c.setZN(c.A) }
func tsx(c *Chip, _, _ uint8) { c.X = c.S; c.setZN(c.X) }
func txs(c *Chip, _, _ uint8) { c.S = c.X }

func inx(c *Chip, _, _ uint8) { c.X++; c.setZN(c.X) }
func iny(c *Chip, _, _ uint8) { c.Y++; c.setZN(c.Y) }
func dex(c *Chip, _, _ uint8) { c.X--; c.setZN(c.X) }
func dey(c *Chip, _, _ uint8) { c.Y--; c.setZN(c.Y) }

// --- stack ---

func pha(c *Chip, _, _ uint8) { c.push(c.A) }

func pla(c *Chip, _, _ uint8) {
	c.read(0x0100 + uint16(c.S)) // dummy read of the current stack slot
	c.A = c.pop()
	c.setZN(c.A)
}

func php(c *Chip, _, _ uint8) {
	c.push(c.P | P_S1 | P_B)
}

func plp(c *Chip, _, _ uint8) {
	c.read(0x0100 + uint16(c.S)) // dummy read of the current stack slot
	v := c.pop()
	c.P = (v | P_S1) &^ P_B
}

// --- logic ---

func ora(c *Chip, v uint8) { c.A |= v; c.setZN(c.A) }
func and(c *Chip, v uint8) { c.A &= v; c.setZN(c.A) }
func eor(c *Chip, v uint8) { c.A ^= v; c.setZN(c.A) }

func bit(c *Chip, v uint8) {
	c.setZ(c.A & v)
	c.P &^= P_NEGATIVE | P_OVERFLOW
	if v&P_NEGATIVE != 0 {
		c.P |= P_NEGATIVE
	}
	if v&P_OVERFLOW != 0 {
		c.P |= P_OVERFLOW
	}
}

// --- ADC / SBC ---

// adc implements binary and BCD addition. N/V in decimal mode come from
// the pre-high-fixup binary-style nibble sum; Z always comes from the
// pure binary sum; C comes from the post-fixup sum. This is the 6502's
// well known decimal-mode flag quirk.
func adc(c *Chip, v uint8) {
	carry := c.P & P_CARRY
	if c.P&P_DECIMAL != 0 && c.cpuType != CPU_NMOS_RICOH {
		al := (c.A & 0x0F) + (v & 0x0F) + carry
		if al >= 0x0A {
			al = ((al + 0x06) & 0x0F) + 0x10
		}
		seq := (c.A & 0xF0) + (v & 0xF0) + al
		bin := c.A + v + carry
		sum := uint16(c.A&0xF0) + uint16(v&0xF0) + uint16(al)
		c.setOverflow(c.A, v, seq)
		c.setN(seq)
		c.setZ(bin)
		if sum >= 0xA0 {
			sum += 0x60
		}
		c.setCarry(uint32(sum))
		c.A = uint8(sum & 0xFF)
		return
	}

	sum := uint16(c.A) + uint16(v) + uint16(carry)
	res := uint8(sum)
	c.setOverflow(c.A, v, res)
	c.setCarry(uint32(sum))
	c.A = res
	c.setZN(res)
}

// sbc implements binary and BCD subtraction. Flags always reflect the
// binary intermediate; decimal mode only changes what ends up in A.
func sbc(c *Chip, v uint8) {
	carry := c.P & P_CARRY
	wide := uint16(c.A) + uint16(^v) + uint16(carry)
	bin := uint8(wide)
	c.setCarry(uint32(wide))
	c.setZN(bin)
	c.setOverflow(c.A, ^v, bin)

	if c.P&P_DECIMAL != 0 && c.cpuType != CPU_NMOS_RICOH {
		al := int16(c.A&0x0F) - int16(v&0x0F) + int16(carry) - 1
		if al < 0 {
			al = ((al - 0x06) & 0x0F) - 0x10
		}
		sum := int16(c.A&0xF0) - int16(v&0xF0) + al
		if sum < 0 {
			sum -= 0x60
		}
		c.A = uint8(sum & 0xFF)
		return
	}
	c.A = bin
}

// --- compare ---

func doCompare(c *Chip, reg, v uint8) {
	res := reg - v
	c.setZN(res)
	c.P &^= P_CARRY
	if reg >= v {
		c.P |= P_CARRY
	}
}

func cmp(c *Chip, v uint8) { doCompare(c, c.A, v) }
func cpx(c *Chip, v uint8) { doCompare(c, c.X, v) }
func cpy(c *Chip, v uint8) { doCompare(c, c.Y, v) }

// --- inc/dec ---

func inc(c *Chip, v uint8) uint8 { nv := v + 1; c.setZN(nv); return nv }
func dec(c *Chip, v uint8) uint8 { nv := v - 1; c.setZN(nv); return nv }

// --- shifts/rotates ---

func asl(c *Chip, v uint8) uint8 {
	c.P &^= P_CARRY
	if v&0x80 != 0 {
		c.P |= P_CARRY
	}
	nv := v << 1
	c.setZN(nv)
	return nv
}

func lsr(c *Chip, v uint8) uint8 {
	c.P &^= P_CARRY
	if v&0x01 != 0 {
		c.P |= P_CARRY
	}
	nv := v >> 1
	c.setZN(nv)
	return nv
}

func rol(c *Chip, v uint8) uint8 {
	carryIn := c.P & P_CARRY
	c.P &^= P_CARRY
	if v&0x80 != 0 {
		c.P |= P_CARRY
	}
	nv := (v << 1) | carryIn
	c.setZN(nv)
	return nv
}

func ror(c *Chip, v uint8) uint8 {
	carryIn := c.P & P_CARRY
	c.P &^= P_CARRY
	if v&0x01 != 0 {
		c.P |= P_CARRY
	}
	nv := (v >> 1) | (carryIn << 7)
	c.setZN(nv)
	return nv
}

func aslAcc(c *Chip, _, _ uint8) { c.A = asl(c, c.A) }
func lsrAcc(c *Chip, _, _ uint8) { c.A = lsr(c, c.A) }
func rolAcc(c *Chip, _, _ uint8) { c.A = rol(c, c.A) }
func rorAcc(c *Chip, _, _ uint8) { c.A = ror(c, c.A) }

// --- jumps & calls ---

func jmpAbs(c *Chip, op1, op2 uint8) {
	c.PC = uint16(op1) | uint16(op2)<<8
}

func jmpInd(c *Chip, op1, op2 uint8) {
	addr, _, _ := c.evalAddr(IND, [2]uint8{op1, op2}, classLoad)
	c.PC = addr
}

// jsr implements the byte-accurate cycle sequence real hardware runs:
// fetch low operand, dummy-read the stack, push PC (which now points at
// the high-operand byte), fetch high operand, jump.
func jsr(c *Chip, _, _ uint8) {
	lo := c.read(c.PC)
	c.PC++
	c.read(0x0100 + uint16(c.S)) // dummy read, stack pointer unchanged
	c.push16(c.PC)
	hi := c.read(c.PC)
	c.PC++
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func rts(c *Chip, _, _ uint8) {
	c.read(0x0100 + uint16(c.S)) // dummy read
	c.PC = c.pop16()
	c.read(c.PC) // dummy read at the popped address before the +1 takes effect
	c.PC++
}

// --- branches ---

func doBranch(c *Chip, offset uint8, taken bool) {
	if !taken {
		return
	}
	c.read(c.PC) // dummy read of the following opcode byte
	base := c.PC
	unfixed := (base & 0xFF00) | uint16(uint8(base)+offset)
	target := base + uint16(int16(int8(offset)))
	if unfixed != target {
		c.read(unfixed) // extra cycle when the branch crosses a page
	}
	c.PC = target
}

func bcc(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_CARRY == 0) }
func bcs(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_CARRY != 0) }
func beq(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_ZERO != 0) }
func bne(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_ZERO == 0) }
func bpl(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_NEGATIVE == 0) }
func bmi(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_NEGATIVE != 0) }
func bvc(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_OVERFLOW == 0) }
func bvs(c *Chip, op1, _ uint8) { doBranch(c, op1, c.P&P_OVERFLOW != 0) }

// --- flag ops ---

func clc(c *Chip, _, _ uint8) { c.P &^= P_CARRY }
func sec(c *Chip, _, _ uint8) { c.P |= P_CARRY }
func cld(c *Chip, _, _ uint8) { c.P &^= P_DECIMAL }
func sed(c *Chip, _, _ uint8) { c.P |= P_DECIMAL }
func cli(c *Chip, _, _ uint8) { c.P &^= P_INTERRUPT }
func sei(c *Chip, _, _ uint8) { c.P |= P_INTERRUPT }
func clv(c *Chip, _, _ uint8) { c.P &^= P_OVERFLOW }

// --- system ---

func nop(c *Chip, _, _ uint8) {}

func brk(c *Chip, _, _ uint8) {
	c.push16(c.PC)
	c.push(c.P | P_S1 | P_B)
	lo := c.read(IRQ_VECTOR)
	hi := c.read(IRQ_VECTOR + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.P |= P_INTERRUPT
}

func rti(c *Chip, _, _ uint8) {
	c.read(0x0100 + uint16(c.S)) // dummy read
	p := c.pop()
	c.P = (p | P_S1) &^ P_B
	c.PC = c.pop16()
}

func jamOp(op uint8) handlerFunc {
	return func(c *Chip, _, _ uint8) {
		c.jam(op)
	}
}

// --- illegal opcode fusions ---

func lax(c *Chip, v uint8) { c.A = v; c.X = v; c.setZN(v) }

func anc(c *Chip, v uint8) {
	c.A &= v
	c.setZN(c.A)
	c.P &^= P_CARRY
	if c.A&P_NEGATIVE != 0 {
		c.P |= P_CARRY
	}
}

func alr(c *Chip, v uint8) {
	c.A &= v
	c.P &^= P_CARRY
	if c.A&0x01 != 0 {
		c.P |= P_CARRY
	}
	c.A >>= 1
	c.setZN(c.A)
}

// arr implements AND then accumulator ROR with the 6502's documented
// BCD-mode quirks for V/C (nesdev 6502_cpu.txt).
func arr(c *Chip, v uint8) {
	t := c.A & v
	carryIn := c.P & P_CARRY
	c.A = (t >> 1) | (carryIn << 7)
	c.setZN(c.A)

	if c.P&P_DECIMAL != 0 {
		if (t^c.A)&0x40 != 0 {
			c.P |= P_OVERFLOW
		} else {
			c.P &^= P_OVERFLOW
		}
		al := t & 0x0F
		if al+(al&1) > 5 {
			c.A = (c.A & 0xF0) | ((c.A + 6) & 0x0F)
		}
		ah := t >> 4
		if ah+(ah&1) > 5 {
			c.P |= P_CARRY
			c.A += 0x60
		} else {
			c.P &^= P_CARRY
		}
		return
	}

	c.P &^= P_CARRY
	if c.A&0x40 != 0 {
		c.P |= P_CARRY
	}
	c.P &^= P_OVERFLOW
	if (c.A&0x40)>>6^(c.A&0x20)>>5 != 0 {
		c.P |= P_OVERFLOW
	}
}

func axs(c *Chip, v uint8) {
	t := c.A & c.X
	res := t - v
	c.setZN(res)
	c.P &^= P_CARRY
	if t >= v {
		c.P |= P_CARRY
	}
	c.X = res
}

func lasOp(c *Chip, v uint8) {
	c.S &= v
	c.A = c.S
	c.X = c.S
	c.setZN(c.S)
}

// ane and lxa model the unstable ANE/LXA datapath with the fixed
// "magic" constant 0xEE the Tom Harte test corpus assumes.
func ane(c *Chip, v uint8) {
	c.A = (c.A | 0xEE) & c.X & v
	c.setZN(c.A)
}

func lxa(c *Chip, v uint8) {
	c.A = (c.A | 0xEE) & c.X & v
	c.X = c.A
	c.setZN(c.A)
}

func slo(c *Chip, v uint8) uint8 {
	c.P &^= P_CARRY
	if v&0x80 != 0 {
		c.P |= P_CARRY
	}
	nv := v << 1
	c.A |= nv
	c.setZN(c.A)
	return nv
}

func rla(c *Chip, v uint8) uint8 {
	carryIn := c.P & P_CARRY
	c.P &^= P_CARRY
	if v&0x80 != 0 {
		c.P |= P_CARRY
	}
	nv := (v << 1) | carryIn
	c.A &= nv
	c.setZN(c.A)
	return nv
}

func sre(c *Chip, v uint8) uint8 {
	c.P &^= P_CARRY
	if v&0x01 != 0 {
		c.P |= P_CARRY
	}
	nv := v >> 1
	c.A ^= nv
	c.setZN(c.A)
	return nv
}

func rra(c *Chip, v uint8) uint8 {
	carryIn := c.P & P_CARRY
	newCarry := v & 0x01
	nv := (v >> 1) | (carryIn << 7)
	c.P &^= P_CARRY
	if newCarry != 0 {
		c.P |= P_CARRY
	}
	adc(c, nv)
	return nv
}

func dcp(c *Chip, v uint8) uint8 {
	nv := v - 1
	doCompare(c, c.A, nv)
	return nv
}

func isc(c *Chip, v uint8) uint8 {
	nv := v + 1
	sbc(c, nv)
	return nv
}

// evalStoreHiQuirk evaluates the indexed addressing SHA/SHX/SHY/TAS use,
// exposing the base (pre-index) address's high byte: on real hardware
// these instructions AND a register against that high byte (see
// shWrite), and a page-crossing index corrupts the written address's
// own high byte too.
func (c *Chip) evalStoreHiQuirk(mode AddrMode, operands [2]uint8, index uint8) (writeAddr uint16, addrHiOrig uint8, pageCrossed bool) {
	var base uint16
	switch mode {
	case ABSX, ABSY:
		base = uint16(operands[0]) | uint16(operands[1])<<8
		addrHiOrig = operands[1]
	case INDY:
		zp := operands[0]
		lo := c.read(uint16(zp))
		hi := c.read(uint16(uint8(zp + 1)))
		base = uint16(lo) | uint16(hi)<<8
		addrHiOrig = hi
	}
	unfixed := (base & 0xFF00) | uint16(uint8(base)+index)
	writeAddr = base + uint16(index)
	pageCrossed = writeAddr&0xFF00 != base&0xFF00
	c.read(unfixed) // dummy read, always
	return writeAddr, addrHiOrig, pageCrossed
}

// shWrite implements the SHA/SHX/SHY/TAS write: reg & (hi+1) normally,
// or — when indexing crossed a page — reg & hi written to an address
// whose own high byte has been corrupted to that same masked value.
func (c *Chip) shWrite(mode AddrMode, operands [2]uint8, index, reg uint8) {
	addr, hiOrig, crossed := c.evalStoreHiQuirk(mode, operands, index)
	val := reg & (hiOrig + 1)
	if crossed {
		val = reg & hiOrig
		addr = uint16(val)<<8 | (addr & 0xFF)
	}
	c.write(addr, val)
}

func shaIndY(c *Chip, op1, op2 uint8) {
	c.shWrite(INDY, [2]uint8{op1, op2}, c.Y, c.A&c.X)
}

func shaAbsY(c *Chip, op1, op2 uint8) {
	c.shWrite(ABSY, [2]uint8{op1, op2}, c.Y, c.A&c.X)
}

func shxAbsY(c *Chip, op1, op2 uint8) {
	c.shWrite(ABSY, [2]uint8{op1, op2}, c.Y, c.X)
}

func shyAbsX(c *Chip, op1, op2 uint8) {
	c.shWrite(ABSX, [2]uint8{op1, op2}, c.X, c.Y)
}

func tas(c *Chip, op1, op2 uint8) {
	c.S = c.A & c.X
	c.shWrite(ABSY, [2]uint8{op1, op2}, c.Y, c.A&c.X)
}
