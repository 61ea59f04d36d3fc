// Package camera implements the thin-lens camera model: ray
// generation from pixel coordinates, with optional defocus blur and a
// horizontal flip for mirrored output.
package camera

import (
	"math"
	"math/rand"

	"github.com/wrenlight/arclight/pkg/core"
)

// Config describes a camera's placement and lens parameters.
type Config struct {
	LookFrom core.Point3
	LookAt   core.Point3
	Up       core.Vec3

	ImageWidth  int
	ImageHeight int

	VFov          float64 // vertical field of view, in degrees
	DefocusAngle  float64 // full angle of the defocus cone, in degrees; 0 disables defocus blur
	FocusDistance float64 // distance from LookFrom to the focal plane

	HorizontalFlip bool
}

// Camera generates primary rays for pixel (i, j), with sub-pixel jitter
// and, when configured, thin-lens defocus sampling.
type Camera struct {
	origin       core.Point3
	pixelOrigin  core.Point3
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	defocusAngle float64
}

// New builds a Camera from a Config.
func New(cfg Config) *Camera {
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	aspectRatio := float64(cfg.ImageWidth) / float64(cfg.ImageHeight)
	viewportWidth := viewportHeight * aspectRatio

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	if cfg.HorizontalFlip {
		u = u.Negate()
	}

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(cfg.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(cfg.ImageHeight))

	viewportTopLeft := cfg.LookFrom.
		Subtract(w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixelOrigin := viewportTopLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(cfg.DefocusAngle/2*math.Pi/180)

	return &Camera{
		origin:       cfg.LookFrom,
		pixelOrigin:  pixelOrigin,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		defocusAngle: cfg.DefocusAngle,
	}
}

// Ray returns a jittered primary ray through pixel (i, j), sampling the
// lens aperture when defocus blur is enabled.
func (c *Camera) Ray(i, j int, random *rand.Rand) core.Ray {
	offsetU := random.Float64() - 0.5
	offsetV := random.Float64() - 0.5

	pixelSample := c.pixelOrigin.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetU)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetV))

	rayOrigin := c.origin
	if c.defocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(random)
	}

	direction := pixelSample.Subtract(rayOrigin)
	return core.NewRay(rayOrigin, direction)
}

func (c *Camera) defocusDiskSample(random *rand.Rand) core.Point3 {
	p := core.RandomInUnitDisk(random)
	return c.origin.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
