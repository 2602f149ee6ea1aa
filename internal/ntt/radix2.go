package ntt

import (
	"math/big"
	"math/bits"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

// TransformRadix2 computes the number-theoretic transform of vec in place
// using the iterative Cooley-Tukey decomposition. The result is identical to
// Transform on the same input, but the length must be a power of two and the
// work drops to O(n log n) modular multiplications.
//
// The algorithm precomputes the table root^i for i in [0, n/2), applies the
// bit-reversal permutation (each pair swapped exactly once), then runs the
// butterfly passes for block sizes 2, 4, ..., n. Differences are reduced
// with Euclidean modulo, so every slot ends in the canonical range [0, mod)
// even when the subtraction goes negative.
//
// The caller must own vec exclusively for the duration of the call: the
// vector is mutated, and its elements must not alias each other or be
// shared with another goroutine.
//
// Parameters:
//   - vec: The vector to transform in place. Length must be a power of two.
//   - root: A primitive n-th root of unity modulo mod (not verified here).
//   - mod: The working modulus.
//
// Returns:
//   - error: A ValidationError if the length is not a power of two or the
//     arguments are malformed. On error the vector is left unmodified.
func TransformRadix2(vec []*big.Int, root, mod *big.Int) error {
	if err := checkTransformArgs(vec, root, mod); err != nil {
		return err
	}
	n := len(vec)
	if n&(n-1) != 0 {
		return apperrors.NewValidationError("vec", "length %d is not a power of 2", n)
	}
	if n == 1 {
		// Zero butterfly levels: the transform of a singleton is itself.
		return nil
	}
	levels := bits.TrailingZeros(uint(n)) // log2(n)

	// PowTable[i] = root^i mod mod for i in [0, n/2), consumed read-only by
	// the butterfly passes.
	powTable := make([]*big.Int, n/2)
	p := big.NewInt(1)
	for i := range powTable {
		powTable[i] = new(big.Int).Set(p)
		p.Mul(p, root)
		p.Mod(p, mod)
	}

	// Bit-reversal permutation. Swapping only when j > i guarantees each
	// pair is exchanged exactly once.
	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> (bits.UintSize - levels))
		if j > i {
			vec[i], vec[j] = vec[j], vec[i]
		}
	}

	left := new(big.Int)
	right := new(big.Int)
	for size := 2; size <= n; size *= 2 {
		halfsize := size / 2
		tablestep := n / size
		for i := 0; i < n; i += size {
			for j, k := i, 0; j < i+halfsize; j, k = j+1, k+tablestep {
				l := j + halfsize
				left.Set(vec[j])
				right.Mul(vec[l], powTable[k])
				vec[j].Add(left, right)
				vec[j].Mod(vec[j], mod)
				vec[l].Sub(left, right)
				// Euclidean Mod lands negative differences in [0, mod).
				vec[l].Mod(vec[l], mod)
			}
		}
	}
	return nil
}

// inverseTransformRadix2 computes the inverse transform in place: the
// radix-2 transform with root⁻¹ followed by scaling with n⁻¹ mod mod.
func inverseTransformRadix2(vec []*big.Int, root, mod *big.Int) error {
	if err := checkTransformArgs(vec, root, mod); err != nil {
		return err
	}
	rootInv := new(big.Int).ModInverse(root, mod)
	if rootInv == nil {
		return apperrors.ArithmeticError{Op: "inverseTransformRadix2", Message: "root has no inverse modulo mod"}
	}
	scaler := new(big.Int).ModInverse(big.NewInt(int64(len(vec))), mod)
	if scaler == nil {
		return apperrors.ArithmeticError{Op: "inverseTransformRadix2", Message: "vector length has no inverse modulo mod"}
	}
	if err := TransformRadix2(vec, rootInv, mod); err != nil {
		return err
	}
	for _, v := range vec {
		v.Mul(v, scaler)
		v.Mod(v, mod)
	}
	return nil
}
