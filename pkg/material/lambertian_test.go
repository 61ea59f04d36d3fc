package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/wrenlight/arclight/pkg/core"
)

// property 5/6: Monte-Carlo integrating f*cos(theta) over the lobe's
// own cosine-weighted sampler should converge to the albedo, and the
// per-sample estimator 1/pdf * f * cos(theta) averages to the same
// value (the two properties share one Monte-Carlo loop here since the
// lobe's sampler IS the hemisphere integral's importance sampler).
func TestLambertianLobeEnergyConservation(t *testing.T) {
	albedo := core.Color{X: 0.5, Y: 0.7, Z: 0.3}
	lobe := LambertianLobe{Albedo: albedo}
	random := rand.New(rand.NewSource(42))

	wo := core.Vec3{X: 0, Y: 0, Z: 1}

	const n = 2_000_000
	var sum core.Color
	for i := 0; i < n; i++ {
		f, wi, pdf, _, ok := lobe.Sample(wo, random)
		if !ok || pdf <= 0 {
			continue
		}
		cos := wi.Z
		estimate := f.Multiply(cos / pdf)
		sum = sum.Add(estimate)
	}
	result := sum.Multiply(1.0 / n)

	const tol = 0.01
	if math.Abs(result.X-albedo.X) > tol || math.Abs(result.Y-albedo.Y) > tol || math.Abs(result.Z-albedo.Z) > tol {
		t.Errorf("Monte-Carlo estimate = %v, want close to albedo %v", result, albedo)
	}
}

func TestLambertianLobeZeroBelowHorizon(t *testing.T) {
	lobe := LambertianLobe{Albedo: core.Color{X: 1, Y: 1, Z: 1}}
	wo := core.Vec3{X: 0, Y: 0, Z: 1}
	wiBelow := core.Vec3{X: 0, Y: 0, Z: -1}

	if f := lobe.F(wo, wiBelow); !f.IsBlack() {
		t.Errorf("F below the horizon should be zero, got %v", f)
	}
	if pdf := lobe.Pdf(wo, wiBelow); pdf != 0 {
		t.Errorf("Pdf below the horizon should be zero, got %v", pdf)
	}
}
