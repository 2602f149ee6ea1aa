package ntt

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

func TestCircularConvolve_KnownValues(t *testing.T) {
	t.Parallel()

	// The wraparound convolution of [1,2,3,4] and [5,6,7,8]: the linear
	// convolution [5,16,34,60,61,52,32] folded back to length 4. As a sanity
	// anchor, the output total must equal (1+2+3+4)·(5+6+7+8) = 260.
	got, err := CircularConvolve(vector(1, 2, 3, 4), vector(5, 6, 7, 8), Options{})
	if err != nil {
		t.Fatalf("CircularConvolve error = %v", err)
	}
	if !vectorsEqual(got, vector(66, 68, 66, 60)) {
		t.Errorf("CircularConvolve([1,2,3,4], [5,6,7,8]) = %v, want [66 68 66 60]", got)
	}
}

func TestCircularConvolve_NonPowerOfTwoLength(t *testing.T) {
	t.Parallel()

	// Length 3 exercises the direct-transform fallback.
	got, err := CircularConvolve(vector(1, 2, 3), vector(4, 5, 6), Options{})
	if err != nil {
		t.Fatalf("CircularConvolve error = %v", err)
	}
	if !vectorsEqual(got, vector(31, 31, 28)) {
		t.Errorf("CircularConvolve([1,2,3], [4,5,6]) = %v, want [31 31 28]", got)
	}
}

func TestCircularConvolve_LengthOne(t *testing.T) {
	t.Parallel()

	got, err := CircularConvolve(vector(6), vector(7), Options{})
	if err != nil {
		t.Fatalf("CircularConvolve error = %v", err)
	}
	if !vectorsEqual(got, vector(42)) {
		t.Errorf("CircularConvolve([6], [7]) = %v, want [42]", got)
	}
}

func TestCircularConvolve_AllZeros(t *testing.T) {
	t.Parallel()

	got, err := CircularConvolve(vector(0, 0, 0, 0), vector(0, 0, 0, 0), Options{})
	if err != nil {
		t.Fatalf("CircularConvolve error = %v", err)
	}
	if !vectorsEqual(got, vector(0, 0, 0, 0)) {
		t.Errorf("CircularConvolve of zero vectors = %v, want all zeros", got)
	}
}

func TestCircularConvolve_MatchesReference(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(24)
		vec0 := make([]*big.Int, n)
		vec1 := make([]*big.Int, n)
		for i := 0; i < n; i++ {
			vec0[i] = big.NewInt(rng.Int63n(10000))
			vec1[i] = big.NewInt(rng.Int63n(10000))
		}

		want := referenceConvolve(vec0, vec1)
		got, err := CircularConvolve(vec0, vec1, Options{})
		if err != nil {
			t.Fatalf("n=%d: CircularConvolve error = %v", n, err)
		}
		if !vectorsEqual(got, want) {
			t.Errorf("n=%d: CircularConvolve = %v, reference = %v", n, got, want)
		}
	}
}

func TestCircularConvolve_ParallelPathMatchesSequential(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(123))
	n := 16
	vec0 := make([]*big.Int, n)
	vec1 := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		vec0[i] = big.NewInt(rng.Int63n(1 << 30))
		vec1[i] = big.NewInt(rng.Int63n(1 << 30))
	}

	seq, err := CircularConvolve(vec0, vec1, Options{})
	if err != nil {
		t.Fatalf("sequential CircularConvolve error = %v", err)
	}
	// A threshold of 1 forces the concurrent forward transforms.
	par, err := CircularConvolve(vec0, vec1, Options{ParallelThreshold: 1})
	if err != nil {
		t.Fatalf("parallel CircularConvolve error = %v", err)
	}
	if !vectorsEqual(seq, par) {
		t.Errorf("parallel result %v differs from sequential %v", par, seq)
	}
}

func TestCircularConvolve_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	vec0 := vector(1, 2, 3, 4)
	vec1 := vector(5, 6, 7, 8)
	snap0 := copyVector(vec0)
	snap1 := copyVector(vec1)

	if _, err := CircularConvolve(vec0, vec1, Options{}); err != nil {
		t.Fatalf("CircularConvolve error = %v", err)
	}
	if !vectorsEqual(vec0, snap0) || !vectorsEqual(vec1, snap1) {
		t.Error("CircularConvolve mutated its inputs")
	}
}

func TestCircularConvolve_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vec0 []*big.Int
		vec1 []*big.Int
	}{
		{"empty vectors", []*big.Int{}, []*big.Int{}},
		{"length mismatch", vector(1, 2, 3), vector(1, 2)},
		{"negative element", vector(1, -2, 3), vector(1, 2, 3)},
		{"nil element", []*big.Int{big.NewInt(1), nil}, vector(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := CircularConvolve(tt.vec0, tt.vec1, Options{})
			var valErr apperrors.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    string
		y    string
	}{
		{"zero times anything", "0", "123456789"},
		{"one digit", "7", "8"},
		{"single byte operands", "200", "250"},
		{"classic", "123456789", "987654321"},
		{"asymmetric sizes", "12345678901234567890123456789012345678901234567890", "97"},
		{"multi word", "340282366920938463463374607431768211456", "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, _ := new(big.Int).SetString(tt.x, 10)
			y, _ := new(big.Int).SetString(tt.y, 10)
			want := new(big.Int).Mul(x, y)

			got, err := Multiply(x, y, Options{})
			if err != nil {
				t.Fatalf("Multiply error = %v", err)
			}
			if got.Cmp(want) != 0 {
				t.Errorf("Multiply(%s, %s) = %v, want %v", tt.x, tt.y, got, want)
			}
		})
	}
}

func TestMultiply_RandomAgainstBigInt(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 10; trial++ {
		xb := make([]byte, 1+rng.Intn(24))
		yb := make([]byte, 1+rng.Intn(24))
		rng.Read(xb)
		rng.Read(yb)
		x := new(big.Int).SetBytes(xb)
		y := new(big.Int).SetBytes(yb)
		want := new(big.Int).Mul(x, y)

		got, err := Multiply(x, y, Options{})
		if err != nil {
			t.Fatalf("Multiply error = %v", err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("Multiply(%v, %v) = %v, want %v", x, y, got, want)
		}
	}
}

func TestMultiply_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    *big.Int
		y    *big.Int
	}{
		{"nil x", nil, big.NewInt(2)},
		{"nil y", big.NewInt(2), nil},
		{"negative x", big.NewInt(-3), big.NewInt(2)},
		{"negative y", big.NewInt(3), big.NewInt(-2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Multiply(tt.x, tt.y, Options{})
			var valErr apperrors.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{100, 128},
		{1024, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
