// conformance walks a directory of JSON test vectors (initial/final/
// cycles shape) and runs each one through a cpu.Chip, reporting
// pass/fail with a structural diff on failure.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"gopkg.in/urfave/cli.v2"

	"github.com/m6502/core/cpu"
	"github.com/m6502/core/memory"
)

func main() {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "directory of *.json test vector files",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print every passing vector, not just failures",
			},
		},
		Name:    "conformance",
		Usage:   "Run MOS 6502 JSON conformance vectors against the cpu package",
		Version: "v0.0.1",
		Action: func(c *cli.Context) error {
			dir := c.String("dir")
			if dir == "" {
				cli.ShowAppHelp(c)
				return cli.Exit("", 86)
			}
			return run(dir, c.Bool("verbose"))
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dir string, verbose bool) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("globbing %s: %w", dir, err)
	}

	total, failed := 0, 0
	for _, fn := range files {
		data, err := ioutil.ReadFile(fn)
		if err != nil {
			return fmt.Errorf("reading %s: %w", fn, err)
		}
		vecs, err := cpu.LoadVectors(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", fn, err)
		}
		for _, v := range vecs {
			total++
			if ok := runOne(v, verbose); !ok {
				failed++
			}
		}
	}

	fmt.Printf("%d/%d vectors passed\n", total-failed, total)
	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func runOne(v cpu.Vector, verbose bool) bool {
	ram := memory.NewFlatRAM()
	chip, err := cpu.Load(v, cpu.CPU_NMOS, ram)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", v.Name, err)
		return false
	}
	chip.Step()

	gotRegs := cpu.ActualRegState(chip, ram, v.Final.Ram)
	gotCycles := cpu.ActualCycles(chip.Cycles())

	regDiff := deep.Equal(gotRegs, v.Final)
	cycleDiff := deep.Equal(gotCycles, v.Cycles)
	if regDiff == nil && cycleDiff == nil {
		if verbose {
			fmt.Printf("PASS %s\n", v.Name)
		}
		return true
	}

	fmt.Printf("FAIL %s\n", v.Name)
	for _, d := range regDiff {
		fmt.Printf("  register: %s\n", d)
	}
	for _, d := range cycleDiff {
		fmt.Printf("  cycle: %s\n", d)
	}
	fmt.Print(spew.Sdump(chip))
	return false
}
