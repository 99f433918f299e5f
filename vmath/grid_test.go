package vmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestDistanceTruncates(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{"same cell", Point{3, 3}, Point{3, 3}, 0},
		{"orthogonal neighbour", Point{3, 3}, Point{3, 4}, 1},
		{"diagonal neighbour", Point{3, 3}, Point{4, 4}, 1},
		{"knight move", Point{0, 0}, Point{1, 2}, 2},
		{"two apart", Point{20, 18}, Point{20, 20}, 2},
		{"pythagorean", Point{0, 0}, Point{3, 4}, 5},
		{"just under six", Point{0, 0}, Point{4, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetricAndReflexive(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 500; i++ {
		a := Point{Y: rng.IntN(200) - 100, X: rng.IntN(200) - 100}
		b := Point{Y: rng.IntN(200) - 100, X: rng.IntN(200) - 100}

		if Distance(a, b) != Distance(b, a) {
			t.Fatalf("Distance not symmetric for %v, %v", a, b)
		}
		if Distance(a, a) != 0 {
			t.Fatalf("Distance(%v, %v) != 0", a, a)
		}
		want := int(math.Sqrt(float64((a.Y-b.Y)*(a.Y-b.Y) + (a.X-b.X)*(a.X-b.X))))
		if got := Distance(a, b); got != want {
			t.Fatalf("Distance(%v, %v) = %d, float reference %d", a, b, got, want)
		}
	}
}

func TestCollision(t *testing.T) {
	if !Collision(Point{5, 5}, Point{5, 5}) {
		t.Error("Expected collision on the same cell")
	}
	if Collision(Point{5, 5}, Point{5, 6}) {
		t.Error("Adjacent cells must not collide")
	}
}

func TestScreenBounds(t *testing.T) {
	b := ScreenBounds(80, 24)
	want := Bounds{MinY: 1, MaxY: 19, MinX: 1, MaxX: 78}
	if b != want {
		t.Fatalf("ScreenBounds(80, 24) = %+v, want %+v", b, want)
	}
	if b.Size() != 19*78 {
		t.Errorf("Size = %d, want %d", b.Size(), 19*78)
	}
	if c := b.Center(); c != (Point{9, 39}) {
		t.Errorf("Center = %v, want {9 39}", c)
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{MinY: 1, MaxY: 10, MinX: 1, MaxX: 20}

	tests := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{1, 1}},
		{Point{5, 5}, Point{5, 5}},
		{Point{11, 25}, Point{10, 20}},
		{Point{-3, 21}, Point{1, 20}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if !b.Contains(b.Clamp(tt.in)) {
			t.Errorf("Clamp(%v) escaped bounds", tt.in)
		}
	}
}

func TestBoundsDegenerate(t *testing.T) {
	b := ScreenBounds(2, 3)
	if b.Size() != 0 {
		t.Errorf("Expected zero size for tiny screen, got %d", b.Size())
	}
}
