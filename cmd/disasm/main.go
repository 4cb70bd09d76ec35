// disasm takes a filename and loads it into a flat 64KiB address space,
// then disassembles it to stdout starting at the first instruction.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/m6502/core/disassemble"
	"github.com/m6502/core/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	r := &memory.FlatRAM{}
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}

	max := 1<<16 - *offset
	if l := len(b); l > max {
		log.Printf("Length %d at offset %d too long, truncating to 64k", l, *offset)
		b = b[:max]
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), *offset)
	r.LoadAt(uint16(*offset), b)

	pc := uint16(*startPC)
	cnt := 0
	// Can't base it on PC since it may rollover so just disassemble until
	// we run out of buffer.
	for cnt < len(b) {
		dis, off := disassemble.Step(pc, r)
		fmt.Printf("%.4X %s\n", pc, dis)
		pc += uint16(off)
		cnt += off
	}
}
