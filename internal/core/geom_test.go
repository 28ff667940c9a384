package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 6)

	if inner != NewRect(30, 9, 20, 6) {
		t.Errorf("Centered() = %+v, expected {30 9 20 6}", inner)
	}
	if inner.Right() != 50 || inner.Bottom() != 15 {
		t.Errorf("edges = (%d, %d), expected (50, 15)", inner.Right(), inner.Bottom())
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		angle    float64
		expected Vec
	}{
		{"zero angle", Vec{10, 0}, 0, Vec{10, 0}},
		{"quarter turn dips the nose", Vec{10, 0}, math.Pi / 2, Vec{0, 10}},
		{"negative quarter turn lifts the nose", Vec{10, 0}, -math.Pi / 2, Vec{0, -10}},
		{"half turn", Vec{3, 4}, math.Pi, Vec{-3, -4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("Rotate(%v) = %+v, expected %+v", tc.angle, got, tc.expected)
			}
		})
	}
}

func TestVecAdd(t *testing.T) {
	if got := (Vec{1, 2}).Add(Vec{3, -5}); got != (Vec{4, -3}) {
		t.Errorf("Add() = %+v, expected {4 -3}", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
