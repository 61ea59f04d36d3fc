// Package imageio writes the rendered framebuffer out as a PPM (P3,
// ASCII) image, arclight's final output format.
package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wrenlight/arclight/pkg/renderer"
)

// gamma is the display gamma applied before quantizing to 8 bits.
const gamma = 2.0

// WritePPM writes fb to w as a P3 (ASCII) PPM image: gamma-corrected,
// clamped to [0, 0.999] and scaled into 256 integer buckets per
// channel.
func WritePPM(w io.Writer, fb *renderer.FrameBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.Pixels[y][x].GammaCorrect(gamma).Clamp(0, 0.999)
			r := int(256 * c.X)
			g := int(256 * c.Y)
			b := int(256 * c.Z)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
