package gamemath

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNormalizeZeroSafe(t *testing.T) {
	v := Vec2{}.NormalizeOr(V(1, 0))
	if v != V(1, 0) {
		t.Errorf("Expected fallback (1,0), got %v", v)
	}

	if n := (Vec2{}).Normalize(); !n.IsZero() {
		t.Errorf("Expected zero vector, got %v", n)
	}

	n := V(3, 4).Normalize()
	if !near(n.X, 0.6) || !near(n.Y, 0.8) {
		t.Errorf("Expected (0.6,0.8), got %v", n)
	}
}

func TestRotate(t *testing.T) {
	r := V(1, 0).Rotate(90)
	if !near(r.X, 0) || !near(r.Y, 1) {
		t.Errorf("Expected (0,1), got %v", r)
	}

	back := V(1, 0).Rotate(10).Rotate(-10)
	if !near(back.X, 1) || !near(back.Y, 0) {
		t.Errorf("Expected rotation to round trip, got %v", back)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want bool
	}{
		{"touching", V(0, 0), V(10, 0), true},
		{"apart", V(0, 0), V(10.01, 0), false},
		{"inside", V(0, 0), V(1, 1), true},
	}

	for _, tt := range tests {
		if got := CirclesOverlap(tt.a, 4, tt.b, 6); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestClampToRect(t *testing.T) {
	p := ClampToRect(V(-50, 700), 20, 900, 600)
	if p != V(20, 580) {
		t.Errorf("Expected (20,580), got %v", p)
	}
}

func TestReflectInRect(t *testing.T) {
	vel := ReflectInRect(V(5, 300), V(-10, 3), 16, 900, 600)
	if vel != V(10, 3) {
		t.Errorf("Expected x velocity to flip, got %v", vel)
	}

	// Moving back inside keeps its direction
	vel = ReflectInRect(V(5, 300), V(10, 3), 16, 900, 600)
	if vel != V(10, 3) {
		t.Errorf("Expected velocity unchanged, got %v", vel)
	}
}

func TestSmoothFactorClamped(t *testing.T) {
	if f := SmoothFactor(10, 0.5); f != 1 {
		t.Errorf("Expected factor clamped to 1, got %v", f)
	}
	if f := SmoothFactor(10, 0.01); !near(f, 0.1) {
		t.Errorf("Expected 0.1, got %v", f)
	}
}

func TestIntRangeInclusive(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := IntRange(r, 1, 3)
		if n < 1 || n > 3 {
			t.Fatalf("Expected value in [1,3], got %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all of 1..3 to appear, got %v", seen)
	}
}

func TestWeightedSkipsZeroWeights(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		if idx := Weighted(r, []float64{0, 1, 0}); idx != 1 {
			t.Fatalf("Expected index 1, got %d", idx)
		}
	}
}
