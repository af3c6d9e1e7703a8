package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	chip8 "github.com/valerio/go-chip8/chip8"
)

// SaveFramePNG saves a frame snapshot as a timestamped grayscale PNG in
// the given directory ("" for the working directory). Returns the path
// of the file written.
func SaveFramePNG(frame chip8.FrameSnapshot, baseName, directory string) (string, error) {
	img := image.NewGray(image.Rect(0, 0, frame.Width, frame.Height))
	copy(img.Pix, frame.Brightness)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)
	path := filepath.Join(directory, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return path, nil
}
