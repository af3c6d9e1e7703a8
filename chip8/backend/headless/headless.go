package headless

import (
	"fmt"
	"log/slog"

	chip8 "github.com/valerio/go-chip8/chip8"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
)

// SnapshotConfig holds configuration for periodic frame snapshots.
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save a snapshot every N frames
	Directory string // Directory to save snapshots to
}

// Backend runs the machine for a fixed number of frames with no
// display, for automated testing and batch processing.
type Backend struct {
	config     backend.Config
	frameCount int
	maxFrames  int
	snapshots  SnapshotConfig
}

func New(maxFrames int, snapshots SnapshotConfig) *Backend {
	return &Backend{
		maxFrames: maxFrames,
		snapshots: snapshots,
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshots.Interval,
		"snapshot_dir", h.snapshots.Directory)

	return nil
}

// Update counts frames, saves snapshots and signals completion through
// a quit event once the frame budget is spent.
func (h *Backend) Update(frame chip8.FrameSnapshot) ([]backend.InputEvent, error) {
	h.frameCount++

	if h.snapshots.Enabled && h.frameCount%h.snapshots.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%60 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		if h.snapshots.Enabled && h.frameCount%h.snapshots.Interval != 0 {
			h.saveSnapshot(frame)
		}

		slog.Info("Headless execution completed", "frames", h.frameCount)
		return []backend.InputEvent{{Action: action.EmulatorQuit, Type: event.Press}}, nil
	}

	return nil, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

func (h *Backend) saveSnapshot(frame chip8.FrameSnapshot) {
	baseName := fmt.Sprintf("%s_frame_%d", h.config.ROMName, h.frameCount)

	path, err := debug.SaveFramePNG(frame, baseName, h.snapshots.Directory)
	if err != nil {
		slog.Error("Failed to save snapshot", "frame", h.frameCount, "error", err)
		return
	}
	slog.Info("Saved frame snapshot", "frame", h.frameCount, "path", path)
}
