package liquidglass

import (
	"math"
	"testing"
)

// --- Table length ---

func TestTableLength(t *testing.T) {
	for _, name := range ProfileNames() {
		t.Run(name, func(t *testing.T) {
			p, _ := ProfileByName(name)
			table := ComputeRefractionTable(80, 16, p, 1.45, 128)
			if len(table) != 128 {
				t.Errorf("table length = %d, want 128", len(table))
			}
		})
	}
}

func TestTableDefaultSamples(t *testing.T) {
	for _, samples := range []int{0, -7} {
		table := ComputeRefractionTable(80, 16, ConvexCircle, 1.45, samples)
		if len(table) != DefaultSamples {
			t.Errorf("samples=%d: table length = %d, want %d", samples, len(table), DefaultSamples)
		}
	}
}

// --- Matched indices refract nothing ---

func TestTableUnityIndexIsZero(t *testing.T) {
	for _, name := range ProfileNames() {
		t.Run(name, func(t *testing.T) {
			p, _ := ProfileByName(name)
			table := ComputeRefractionTable(80, 16, p, 1, 128)
			for i, v := range table {
				if math.Abs(v) > 1e-9 {
					t.Errorf("table[%d] = %v, want ≈0 for refractiveIndex 1", i, v)
				}
			}
		})
	}
}

// --- Wider bezels never refract less (convex profiles) ---

func TestTableMaxAbsGrowsWithBezelWidth(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    SurfaceProfile
	}{
		{"ConvexCircle", ConvexCircle},
		{"ConvexSquircle", ConvexSquircle},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prev := -1.0
			for _, b := range []float64{8, 16, 32} {
				m := ComputeRefractionTable(80, b, tc.p, 1.5, 128).MaxAbs()
				if m < prev {
					t.Fatalf("MaxAbs decreased from %v to %v at bezelWidth %v", prev, m, b)
				}
				prev = m
			}
		})
	}
}

// --- Entries are finite and meaningful at typical parameters ---

func TestTableTypicalParameters(t *testing.T) {
	table := ComputeRefractionTable(80, 16, ConvexSquircle, 1.45, 128)
	for i, v := range table {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("table[%d] = %v at typical parameters", i, v)
		}
	}
	if table.MaxAbs() <= 0 {
		t.Error("MaxAbs = 0; a convex bezel at index 1.45 must displace")
	}
	// Displacement is strongest at the steep outer edge and vanishes toward
	// the flat top of the bezel.
	if math.Abs(table[0]) <= math.Abs(table[len(table)-1]) {
		t.Errorf("|table[0]| = %v not greater than |table[last]| = %v",
			math.Abs(table[0]), math.Abs(table[len(table)-1]))
	}
}

// --- Lookup ---

func TestTableAt(t *testing.T) {
	table := RefractionTable{10, 20, 30, 40}
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"start", 0, 10},
		{"floor below quarter", 0.24, 10},
		{"second entry", 0.26, 20},
		{"midpoint", 0.5, 30},
		{"near end", 0.99, 40},
		{"end clamps", 1, 40},
		{"above clamps", 2.5, 40},
		{"below clamps", -1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.At(tt.ratio); got != tt.want {
				t.Errorf("At(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestTableAtEmpty(t *testing.T) {
	if got := RefractionTable(nil).At(0.5); got != 0 {
		t.Errorf("empty table At = %v, want 0", got)
	}
}

func TestTableMaxAbs(t *testing.T) {
	tests := []struct {
		name  string
		table RefractionTable
		want  float64
	}{
		{"empty", nil, 0},
		{"positive", RefractionTable{1, 3, 2}, 3},
		{"negative dominates", RefractionTable{1, -9, 2}, 9},
		{"zeros", RefractionTable{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.MaxAbs(); got != tt.want {
				t.Errorf("MaxAbs() = %v, want %v", got, tt.want)
			}
		})
	}
}
