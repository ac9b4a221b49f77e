package math

import (
	gomath "math"
	"reflect"
	"testing"
)

func TestMaximum(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"First number is greater", 10, 5, 10},
		{"Second number is greater", 3, 8, 8},
		{"Numbers are equal", 5, 5, 5},
		{"Negative numbers", -0.2, -0.6, -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Maximum(tt.a, tt.b); got != tt.expected {
				t.Errorf("Maximum() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMinimum(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"First number is smaller", 3, 10, 3},
		{"Second number is smaller", 8, 2, 2},
		{"Numbers are equal", 5, 5, 5},
		{"Negative numbers", -0.2, -0.6, -0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minimum(tt.a, tt.b); got != tt.expected {
				t.Errorf("Minimum() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name          string
		min, max, step float64
		expected      []float64
	}{
		{"axis up to 15", 0, 15, 5, []float64{0, 5, 10, 15}},
		{"axis up to 18", 0, 18, 5, []float64{0, 5, 10, 15}},
		{"range not starting on a multiple", 3, 12, 5, []float64{5, 10}},
		{"zero step", 0, 10, 0, nil},
		{"inverted range", 10, 0, 5, nil},
		{"infinite range", 0, gomath.Inf(1), 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ticks(tt.min, tt.max, tt.step); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Ticks() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{"zero", 0, true},
		{"NaN", gomath.NaN(), false},
		{"positive infinity", gomath.Inf(1), false},
		{"negative infinity", gomath.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.value); got != tt.expected {
				t.Errorf("IsFinite() = %v, want %v", got, tt.expected)
			}
		})
	}
}
