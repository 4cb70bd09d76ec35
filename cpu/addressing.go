package cpu

// AddrMode is a tag for one of the 13 addressing modes. The mode set is
// closed and fixed size, so this is plain data switched on in one
// function rather than a "mode object" hierarchy.
type AddrMode int

const (
	ACM  AddrMode = iota // Accumulator
	ABS                  // Absolute
	ABSX                 // Absolute,X
	ABSY                 // Absolute,Y
	IMM                  // Immediate
	IMP                  // Implied
	IND                  // (Indirect) — JMP only
	INDX                 // (Indirect,X)
	INDY                 // (Indirect),Y
	REL                  // Relative — branches only
	ZPG                  // Zero page
	ZPGX                 // Zero page,X
	ZPGY                 // Zero page,Y
)

// instrClass distinguishes how an addressing mode's final cycles behave:
// loads skip the corrective re-read when no page was crossed, stores
// never re-read at all, and read-modify-write always re-reads and always
// performs the dummy write-back of the unmodified value.
type instrClass int

const (
	classLoad instrClass = iota
	classStore
	classRMW
)

// evalAddr evaluates one addressing mode given its already-fetched
// operand bytes, emitting exactly the bus cycles the real 6502 issues
// for that mode/class combination. operands[0] is the first
// byte after the opcode; operands[1] is the second, when the mode uses
// one (ABS/ABSX/ABSY/IND).
//
// Returns the effective address, the value to operate on (valid for
// load/rmw; zero for store, which the caller writes to addr itself),
// and whether the index crossed a page boundary.
func (c *Chip) evalAddr(mode AddrMode, operands [2]uint8, class instrClass) (addr uint16, value uint8, pageCrossed bool) {
	switch mode {
	case IMM:
		return 0, operands[0], false

	case ZPG:
		addr = uint16(operands[0])
		if class != classStore {
			value = c.read(addr)
		}
		if class == classRMW {
			c.write(addr, value)
		}
		return addr, value, false

	case ZPGX:
		return c.evalZPIndexed(operands[0], c.X, class)
	case ZPGY:
		return c.evalZPIndexed(operands[0], c.Y, class)

	case ABS:
		addr = uint16(operands[0]) | uint16(operands[1])<<8
		if class != classStore {
			value = c.read(addr)
		}
		if class == classRMW {
			c.write(addr, value)
		}
		return addr, value, false

	case ABSX:
		return c.evalAbsIndexed(operands, c.X, class)
	case ABSY:
		return c.evalAbsIndexed(operands, c.Y, class)

	case INDX:
		zp := operands[0]
		c.read(uint16(zp)) // dummy read of the un-indexed zero page address
		ptr := zp + c.X
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(uint8(ptr + 1)))
		addr = uint16(lo) | uint16(hi)<<8
		if class != classStore {
			value = c.read(addr)
		}
		if class == classRMW {
			c.write(addr, value)
		}
		return addr, value, false

	case INDY:
		zp := operands[0]
		lo := c.read(uint16(zp))
		hi := c.read(uint16(uint8(zp + 1)))
		base := uint16(lo) | uint16(hi)<<8
		unfixed := (base & 0xFF00) | uint16(uint8(base)+c.Y)
		fixed := base + uint16(c.Y)
		pageCrossed = fixed&0xFF00 != base&0xFF00
		tentative := c.read(unfixed)
		switch class {
		case classStore:
			return fixed, 0, pageCrossed
		case classRMW:
			value = c.read(fixed)
			c.write(fixed, value)
			return fixed, value, pageCrossed
		default: // classLoad
			if pageCrossed {
				value = c.read(fixed)
			} else {
				value = tentative
			}
			return fixed, value, pageCrossed
		}

	case IND:
		// JMP (a) only; no page-cross concept, no class gating. The
		// famous page-wrap bug: the high byte is read from the start
		// of the same page, never the next one.
		ptr := uint16(operands[0]) | uint16(operands[1])<<8
		lo := c.read(ptr)
		hi := c.read((ptr & 0xFF00) | uint16(uint8(ptr)+1))
		return uint16(lo) | uint16(hi)<<8, 0, false

	case ACM, IMP, REL:
		// No bus cycles; callers handle these directly.
		return 0, 0, false
	}
	return 0, 0, false
}

// evalZPIndexed implements ZPGX/ZPGY: a dummy read of the un-indexed
// zero page address (always), then — for load/rmw — a real read at the
// wrapped indexed address.
func (c *Chip) evalZPIndexed(zp, index uint8, class instrClass) (addr uint16, value uint8, pageCrossed bool) {
	c.read(uint16(zp))
	addr = uint16(zp + index)
	if class != classStore {
		value = c.read(addr)
	}
	if class == classRMW {
		c.write(addr, value)
	}
	return addr, value, false
}

// evalAbsIndexed implements ABSX/ABSY. The unfixed-address read always
// happens, even for stores and even when no page is crossed — that's
// the cycle real hardware spends computing the carry. Loads skip the
// corrective second read when the carry wasn't needed; stores never
// re-read and spend that cycle on their write to the fixed address; RMW
// always re-reads/dummy-writes regardless of crossing, which is why e.g.
// "INC a,X" is always 7 cycles.
func (c *Chip) evalAbsIndexed(operands [2]uint8, index uint8, class instrClass) (addr uint16, value uint8, pageCrossed bool) {
	base := uint16(operands[0]) | uint16(operands[1])<<8
	unfixed := (base & 0xFF00) | uint16(uint8(operands[0])+index)
	fixed := base + uint16(index)
	pageCrossed = fixed&0xFF00 != base&0xFF00
	tentative := c.read(unfixed)
	switch class {
	case classStore:
		return fixed, 0, pageCrossed
	case classRMW:
		value = c.read(fixed)
		c.write(fixed, value)
		return fixed, value, pageCrossed
	default: // classLoad
		if pageCrossed {
			value = c.read(fixed)
		} else {
			value = tentative
		}
		return fixed, value, pageCrossed
	}
}
