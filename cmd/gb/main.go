// Command gb is a thin demonstration CLI over the gameboy package's
// stepping interface: it loads a ROM (and optional boot ROM), runs it
// for a fixed number of frames, and reports what it saw. It is not a
// frontend — there is no windowing, input, or audio here, just enough
// to exercise LoadROM/StepFrame/Framebuffer end to end.
package main

import (
	"fmt"
	"os"

	"github.com/nfsu/gb/internal/cartridge"
	"github.com/nfsu/gb/internal/cheats"
	"github.com/nfsu/gb/internal/gameboy"
	"github.com/nfsu/gb/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gb",
		Short: "A Game Boy (DMG) emulator core",
	}

	var (
		romPath        string
		bootPath       string
		strictChecksum bool
		pace           bool
		frames         int
		verbose        bool
		gameGenie      []string
		gameShark      []string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a ROM and step it for a fixed number of frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(romPath)
			if err != nil {
				return fmt.Errorf("reading rom: %w", err)
			}

			logger := log.Logger(log.NullLogger{})
			if verbose {
				logger = log.New()
			}

			policy := cartridge.Permissive
			if strictChecksum {
				policy = cartridge.Strict
			}

			opts := []gameboy.Option{
				gameboy.WithLogger(logger),
				gameboy.WithChecksumPolicy(policy),
			}

			if len(gameGenie) > 0 || len(gameShark) > 0 {
				set := &cheats.Set{}
				for i, code := range gameGenie {
					if err := set.AddGameGenie(code, fmt.Sprintf("gg%d", i)); err != nil {
						return err
					}
				}
				for i, code := range gameShark {
					if err := set.AddGameShark(code, fmt.Sprintf("gs%d", i)); err != nil {
						return err
					}
				}
				opts = append(opts, gameboy.WithCheats(set))
			}

			gb := gameboy.New(opts...)

			if bootPath != "" {
				boot, err := os.ReadFile(bootPath)
				if err != nil {
					return fmt.Errorf("reading boot rom: %w", err)
				}
				if err := gb.LoadBoot(boot); err != nil {
					return fmt.Errorf("loading boot rom: %w", err)
				}
			}

			if err := gb.LoadROM(rom); err != nil {
				return fmt.Errorf("loading rom: %w", err)
			}

			fmt.Printf("loaded %q, running %d frame(s)\n", romPath, frames)
			for i := 0; i < frames; i++ {
				if err := gb.StepFrame(pace); err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
			}

			fmt.Printf("ran %d frame(s), final frame hash 0x%016x\n", frames, gb.PPU.FrameHash())
			return nil
		},
	}

	runCmd.Flags().StringVar(&romPath, "rom", "", "path to the cartridge ROM image (required)")
	runCmd.Flags().StringVar(&bootPath, "boot", "", "path to a 256-byte boot ROM image")
	runCmd.Flags().BoolVar(&strictChecksum, "strict-checksum", false, "reject ROMs whose header checksum doesn't match")
	runCmd.Flags().BoolVar(&pace, "pace", false, "pace StepFrame to real time (~59.7 Hz)")
	runCmd.Flags().IntVar(&frames, "frames", 60, "number of frames to run before exiting")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log subsystem trace output")
	runCmd.Flags().StringArrayVar(&gameGenie, "game-genie", nil, "Game Genie code to apply (repeatable)")
	runCmd.Flags().StringArrayVar(&gameShark, "game-shark", nil, "GameShark code to apply (repeatable)")
	_ = runCmd.MarkFlagRequired("rom")

	rootCmd.AddCommand(runCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
