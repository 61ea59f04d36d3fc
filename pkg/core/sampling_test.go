package core

import (
	"math"
	"math/rand"
	"testing"
)

// property 7: dielectric reciprocity -- swapping incident/transmitted
// indices and reversing the direction yields the same reflectance.
func TestFresnelDielectricReciprocity(t *testing.T) {
	eta := 1.5
	cosThetaI := 0.6

	rForward := FresnelDielectric(cosThetaI, eta)

	// The transmitted-side cosine for the same geometric ray, viewed
	// from the other medium.
	sin2ThetaI := 1 - cosThetaI*cosThetaI
	sin2ThetaT := sin2ThetaI / (eta * eta)
	cosThetaT := math.Sqrt(1 - sin2ThetaT)

	rBackward := FresnelDielectric(cosThetaT, 1/eta)

	if math.Abs(rForward-rBackward) > 1e-9 {
		t.Errorf("Fresnel reciprocity broken: forward=%v backward=%v", rForward, rBackward)
	}
}

func TestFresnelDielectricNormalIncidence(t *testing.T) {
	eta := 1.5
	r := FresnelDielectric(1.0, eta)
	want := math.Pow((eta-1)/(eta+1), 2)
	if math.Abs(r-want) > 1e-9 {
		t.Errorf("FresnelDielectric(1, %v) = %v, want %v", eta, r, want)
	}
}

func TestFresnelDielectricTotalInternalReflection(t *testing.T) {
	// Light travelling from glass (eta=1.5) into air at a grazing angle
	// beyond the critical angle must reflect entirely.
	cosThetaI := 0.1
	r := FresnelDielectric(-cosThetaI, 1.5)
	if r != 1 {
		t.Errorf("expected total internal reflection (R=1), got %v", r)
	}
}

func TestPowerHeuristicSymmetry(t *testing.T) {
	w := PowerHeuristic(1, 2.0, 1, 2.0)
	if math.Abs(w-0.5) > 1e-9 {
		t.Errorf("equal pdfs should split the weight evenly, got %v", w)
	}
}

func TestPowerHeuristicDominance(t *testing.T) {
	// A much larger pdf should dominate the mixture weight.
	w := PowerHeuristic(1, 100.0, 1, 1.0)
	if w < 0.99 {
		t.Errorf("dominant strategy should carry nearly all the weight, got %v", w)
	}
}

func TestPowerHeuristicZeroPDFs(t *testing.T) {
	if w := PowerHeuristic(1, 0, 1, 0); w != 0 {
		t.Errorf("PowerHeuristic with both pdfs zero = %v, want 0", w)
	}
}

func TestRandomCosineDirectionIsUnitInUpperHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandomCosineDirection(random)
		if v.Z < 0 {
			t.Fatalf("cosine-weighted sample should stay in the +Z hemisphere, got z=%v", v.Z)
		}
		if math.Abs(v.LengthSquared()-1) > 1e-6 {
			t.Fatalf("sample should be unit length, got length^2=%v", v.LengthSquared())
		}
	}
}

func TestRandomInUnitDiskBounded(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.LengthSquared() >= 1 || p.Z != 0 {
			t.Fatalf("disk sample out of bounds: %v", p)
		}
	}
}

func TestNewONBOrthonormal(t *testing.T) {
	normals := []Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
	}
	for _, n := range normals {
		onb := NewONB(n)
		if math.Abs(onb.U.Dot(onb.V)) > 1e-9 || math.Abs(onb.V.Dot(onb.W)) > 1e-9 || math.Abs(onb.U.Dot(onb.W)) > 1e-9 {
			t.Errorf("ONB for normal %v is not orthogonal", n)
		}
		if math.Abs(onb.W.Normalize().Dot(n.Normalize())-1) > 1e-9 {
			t.Errorf("ONB.W should align with the input normal %v, got %v", n, onb.W)
		}
	}
}
