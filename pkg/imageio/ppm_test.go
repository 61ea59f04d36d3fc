package imageio

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/renderer"
)

func TestWritePPMHeaderAndDimensions(t *testing.T) {
	fb := renderer.NewFrameBuffer(3, 2)
	fb.Pixels[0][0] = core.Color{X: 1, Y: 0, Z: 0}
	fb.Pixels[1][2] = core.Color{X: 0, Y: 1, Z: 0}

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if len(lines) != 3+3*2 {
		t.Fatalf("got %d lines, want %d (3 header + 6 pixels)", len(lines), 3+3*2)
	}
	if lines[0] != "P3" {
		t.Errorf("magic number = %q, want P3", lines[0])
	}
	if lines[1] != "3 2" {
		t.Errorf("dimensions line = %q, want \"3 2\"", lines[1])
	}
	if lines[2] != "255" {
		t.Errorf("max value line = %q, want 255", lines[2])
	}
}

func TestWritePPMClampsOutOfRangeColors(t *testing.T) {
	fb := renderer.NewFrameBuffer(1, 1)
	fb.Pixels[0][0] = core.Color{X: 10, Y: -5, Z: 0.5}

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	pixelLine := lines[len(lines)-1]
	fields := strings.Fields(pixelLine)
	if len(fields) != 3 {
		t.Fatalf("pixel line %q should have 3 fields", pixelLine)
	}
	if fields[0] != "255" {
		t.Errorf("over-bright red channel should clamp to 255, got %q", fields[0])
	}
	if fields[1] != "0" {
		t.Errorf("negative green channel should clamp to 0, got %q", fields[1])
	}
}
