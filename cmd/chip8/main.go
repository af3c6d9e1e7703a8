package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	chip8 "github.com/valerio/go-chip8/chip8"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
	"github.com/valerio/go-chip8/chip8/backend/terminal"
	"github.com/valerio/go-chip8/chip8/cpu"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/timing"
	"github.com/valerio/go-chip8/chip8/video"
)

func main() {
	app := cli.NewApp()
	app.Name = "chip8"
	app.Description = "A CHIP-8 interpreter with phosphor fade"
	app.Usage = "chip8 [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "profile",
			Usage: "Quirk profile: vip, schip or modern",
			Value: "vip",
		},
		cli.IntFlag{
			Name:  "cycles",
			Usage: "Instructions executed per 60Hz frame",
			Value: 12,
		},
		cli.BoolFlag{
			Name:  "no-fade",
			Usage: "Disable the phosphor fade effect",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
	}
	app.Action = runMachine

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running machine", "error", err)
		os.Exit(1)
	}
}

func quirksForProfile(profile string) (cpu.Quirks, error) {
	switch profile {
	case "vip":
		return cpu.CosmacVIP(), nil
	case "schip":
		return cpu.SuperChip(), nil
	case "modern", "":
		return cpu.Quirks{}, nil
	}
	return cpu.Quirks{}, fmt.Errorf("unknown quirk profile %q", profile)
}

func runMachine(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	quirks, err := quirksForProfile(c.String("profile"))
	if err != nil {
		return err
	}

	opts := chip8.Options{Quirks: quirks}
	if c.Bool("no-fade") {
		opts.FadeStep = video.MaxBrightness
	}

	machine, err := chip8.NewWithFile(romPath, opts)
	if err != nil {
		return err
	}

	romName := strings.TrimSuffix(filepath.Base(romPath), filepath.Ext(romPath))

	var b backend.Backend
	limiter := timing.NewFrameLimiter()

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}

		snapshots := headless.SnapshotConfig{
			Interval:  c.Int("snapshot-interval"),
			Directory: c.String("snapshot-dir"),
		}
		snapshots.Enabled = snapshots.Interval > 0
		if snapshots.Enabled {
			if snapshots.Directory == "" {
				tempDir, err := os.MkdirTemp("", "chip8-snapshots-*")
				if err != nil {
					return fmt.Errorf("failed to create snapshot directory: %v", err)
				}
				snapshots.Directory = tempDir
			} else if err := os.MkdirAll(snapshots.Directory, 0755); err != nil {
				return fmt.Errorf("failed to create snapshot directory: %v", err)
			}
		}

		b = headless.New(frames, snapshots)
		limiter = timing.NewNoOpLimiter()
	} else {
		b = terminal.New()
	}

	if err := b.Init(backend.Config{Title: "chip8", ROMName: romName}); err != nil {
		return err
	}
	defer b.Cleanup()

	manager := input.NewManager(machine.Keypad())

	running := true
	manager.On(action.EmulatorQuit, event.Press, func() { running = false })
	manager.On(action.EmulatorSnapshot, event.Press, func() {
		path, err := debug.SaveFramePNG(machine.CurrentFrame(), romName, "")
		if err != nil {
			slog.Error("Failed to save snapshot", "error", err)
			return
		}
		slog.Info("Saved snapshot", "path", path)
	})

	cycles := c.Int("cycles")
	for running {
		if err := machine.RunFrame(cycles); err != nil {
			return fmt.Errorf("machine fault at %#04x: %w", machine.PC(), err)
		}

		events, err := b.Update(machine.CurrentFrame())
		if err != nil {
			return err
		}
		for _, ev := range events {
			manager.Trigger(ev.Action, ev.Type)
		}

		limiter.WaitForNextFrame()
	}

	return nil
}
