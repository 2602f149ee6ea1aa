package ntt

import (
	"math/big"
	"math/bits"
	"sync"

	apperrors "github.com/agbru/nttcalc/internal/errors"
	"github.com/agbru/nttcalc/internal/parallel"
)

// validateConvolutionInputs checks the shared driver preconditions: equal
// non-zero lengths, no nil elements, no negative elements. It returns the
// largest element seen across both vectors.
func validateConvolutionInputs(vec0, vec1 []*big.Int) (*big.Int, error) {
	if len(vec0) == 0 {
		return nil, apperrors.NewValidationError("vec0", "vectors must not be empty")
	}
	if len(vec1) != len(vec0) {
		return nil, apperrors.NewValidationError("vec1", "length %d does not match vec0 length %d", len(vec1), len(vec0))
	}
	maxval := new(big.Int)
	for _, vec := range [][]*big.Int{vec0, vec1} {
		for i, v := range vec {
			if v == nil {
				return nil, apperrors.NewValidationError("vec", "element %d is nil", i)
			}
			if v.Sign() < 0 {
				return nil, apperrors.NewValidationError("vec", "element %d is negative; only non-negative values are supported", i)
			}
			if v.Cmp(maxval) > 0 {
				maxval.Set(v)
			}
		}
	}
	return maxval, nil
}

// CircularConvolve computes the exact circular convolution of vec0 and vec1:
//
//	result[i] = Σ_j vec0[j] · vec1[(i−j) mod n]
//
// as true unbounded integers, with no modular wraparound and no rounding
// error. The driver sizes the working prime at maxval²·n+1 or above, which
// strictly exceeds every possible convolution sum, so the residues the
// inverse transform produces are already the exact values.
//
// Power-of-two lengths take the in-place radix-2 fast path on private
// copies; any other length falls back to the direct O(n²) transform. When
// opts.ParallelThreshold is positive and n reaches it, the two independent
// forward transforms run concurrently.
//
// Parameters:
//   - vec0: The first input vector. Elements must be non-negative.
//   - vec1: The second input vector. Must have the same length as vec0.
//   - opts: Driver options (parallelism, modulus search cap).
//
// Returns:
//   - []*big.Int: The exact circular convolution, same length as the inputs.
//   - error: A ValidationError for malformed input, a SearchLimitError when
//     a capped modulus search is exhausted, or an ArithmeticError from the
//     number-theory layer.
func CircularConvolve(vec0, vec1 []*big.Int, opts Options) ([]*big.Int, error) {
	maxval, err := validateConvolutionInputs(vec0, vec1)
	if err != nil {
		return nil, err
	}
	n := len(vec0)

	// minmod = maxval²·n + 1 is the smallest bound guaranteeing no sum wraps.
	minmod := new(big.Int).Mul(maxval, maxval)
	minmod.Mul(minmod, big.NewInt(int64(n)))
	minmod.Add(minmod, bigOne)

	mod, err := searchModulus(n, minmod, opts.ModulusSearchCap)
	if err != nil {
		return nil, err
	}
	totient := new(big.Int).Sub(mod, bigOne)
	root, err := FindPrimitiveRoot(big.NewInt(int64(n)), totient, mod)
	if err != nil {
		return nil, err
	}

	radix2 := n&(n-1) == 0
	forward := func(src []*big.Int) ([]*big.Int, error) {
		if radix2 {
			buf := copyVector(src)
			if err := TransformRadix2(buf, root, mod); err != nil {
				return nil, err
			}
			return buf, nil
		}
		return Transform(src, root, mod)
	}

	var temp0, temp1 []*big.Int
	if opts.ParallelThreshold > 0 && n >= opts.ParallelThreshold {
		// The two forward transforms touch disjoint data, so they can run
		// on separate goroutines without coordination.
		var ec parallel.ErrorCollector
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			var ferr error
			temp0, ferr = forward(vec0)
			ec.SetError(ferr)
		}()
		go func() {
			defer wg.Done()
			var ferr error
			temp1, ferr = forward(vec1)
			ec.SetError(ferr)
		}()
		wg.Wait()
		if err := ec.Err(); err != nil {
			return nil, err
		}
	} else {
		if temp0, err = forward(vec0); err != nil {
			return nil, err
		}
		if temp1, err = forward(vec1); err != nil {
			return nil, err
		}
	}

	// Pointwise product in the transform domain.
	for i := range temp0 {
		temp0[i].Mul(temp0[i], temp1[i])
		temp0[i].Mod(temp0[i], mod)
	}

	if radix2 {
		if err := inverseTransformRadix2(temp0, root, mod); err != nil {
			return nil, err
		}
		return temp0, nil
	}
	return InverseTransform(temp0, root, mod)
}

// Multiply computes x·y exactly by convolving the base-256 limb vectors of
// the operands. The limbs are zero-padded to the next power of two at least
// the combined length, which turns the circular convolution into a linear
// one, and the limb products are recombined with a single carry-propagating
// Horner pass. This is the classic large-integer multiplication use of the
// NTT.
//
// Parameters:
//   - x: The first operand. Must be non-negative.
//   - y: The second operand. Must be non-negative.
//   - opts: Driver options, passed through to CircularConvolve.
//
// Returns:
//   - *big.Int: The exact product x·y.
//   - error: A ValidationError for nil or negative operands, or any error
//     from CircularConvolve.
func Multiply(x, y *big.Int, opts Options) (*big.Int, error) {
	if x == nil || y == nil {
		return nil, apperrors.NewValidationError("x", "operands must not be nil")
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, apperrors.NewValidationError("x", "operands must be non-negative")
	}
	if x.Sign() == 0 || y.Sign() == 0 {
		return new(big.Int), nil
	}

	xb := x.Bytes() // big-endian
	yb := y.Bytes()
	n := nextPowerOfTwo(len(xb) + len(yb))
	a := bytesToLimbs(xb, n)
	b := bytesToLimbs(yb, n)

	res, err := CircularConvolve(a, b, opts)
	if err != nil {
		return nil, err
	}

	// Horner recombination in base 256; the shifts also propagate carries.
	acc := new(big.Int)
	for i := n - 1; i >= 0; i-- {
		acc.Lsh(acc, 8)
		acc.Add(acc, res[i])
	}
	return acc, nil
}

// bytesToLimbs converts a big-endian byte string into a least-significant-
// first limb vector of length n, zero-padded at the top.
func bytesToLimbs(be []byte, n int) []*big.Int {
	limbs := make([]*big.Int, n)
	for i := range limbs {
		limbs[i] = new(big.Int)
	}
	for i, b := range be {
		limbs[len(be)-1-i].SetInt64(int64(b))
	}
	return limbs
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// copyVector deep-copies a vector so in-place transforms cannot touch the
// caller's elements.
func copyVector(src []*big.Int) []*big.Int {
	dst := make([]*big.Int, len(src))
	for i, v := range src {
		dst[i] = new(big.Int).Set(v)
	}
	return dst
}

// referenceConvolve computes the circular convolution by the defining double
// sum. O(n²) big-integer multiplications; used as the correctness oracle and
// by ReferenceConvolver. Inputs must already be validated.
func referenceConvolve(vec0, vec1 []*big.Int) []*big.Int {
	n := len(vec0)
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
	}
	term := new(big.Int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := (i + j) % n
			term.Mul(vec0[i], vec1[j])
			out[k].Add(out[k], term)
		}
	}
	return out
}
