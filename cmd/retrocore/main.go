// Command retrocore loads a ROM image, builds a system bus around it, and
// runs it headless for a fixed CPU cycle count — a smoke-test harness for
// the 6502 execution engine and cartridge subsystem, not a front end.
package main

import (
	"flag"
	"log"

	"retrocore/internal/cartridge"
	"retrocore/internal/nes"
	"retrocore/internal/version"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES/NES 2.0 ROM image")
	cycles := flag.Uint64("cycles", 1_000_000, "number of CPU cycles to run")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *romPath == "" {
		if *showVersion {
			version.PrintBuildInfo(nil)
			return
		}
		log.Fatal("retrocore: -rom is required")
	}

	mapper, err := cartridge.Load(*romPath)
	if err != nil {
		log.Fatalf("retrocore: failed to load cartridge: %v", err)
	}

	if *showVersion {
		version.PrintBuildInfo(mapper)
		return
	}

	bus := nes.New()
	bus.LoadCartridge(mapper)

	log.Printf("retrocore: loaded %s mapper, running %d cycles", mapper.Name(), *cycles)
	bus.RunCycles(*cycles)

	log.Printf("retrocore: halted after %d cycles: %s — %s", bus.CycleCount(), bus, version.CartridgeSummary(mapper))
}
