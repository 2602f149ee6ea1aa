package ntt

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genVector builds a gopter generator producing non-negative integer vectors
// of length vecLen with element values in [0, maxVal].
func genVector(vecLen int, maxVal int64) gopter.Gen {
	return gen.SliceOfN(vecLen, gen.Int64Range(0, maxVal)).Map(func(vals []int64) []*big.Int {
		out := make([]*big.Int, len(vals))
		for i, v := range vals {
			out[i] = big.NewInt(v)
		}
		return out
	})
}

// discoverParams mirrors the driver's modulus/root discovery for a vector.
func discoverParams(vec []*big.Int) (root, mod *big.Int, err error) {
	n := int64(len(vec))
	maxval := new(big.Int)
	for _, v := range vec {
		if v.Cmp(maxval) > 0 {
			maxval.Set(v)
		}
	}
	minmod := new(big.Int).Mul(maxval, maxval)
	minmod.Mul(minmod, big.NewInt(n))
	minmod.Add(minmod, big.NewInt(1))

	mod, err = FindModulus(len(vec), minmod)
	if err != nil {
		return nil, nil, err
	}
	totient := new(big.Int).Sub(mod, big.NewInt(1))
	root, err = FindPrimitiveRoot(big.NewInt(n), totient, mod)
	if err != nil {
		return nil, nil, err
	}
	return root, mod, nil
}

// TestTransformRoundTrip_PropertyBased verifies the fundamental identity
//
//	inverseTransform(transform(vec)) == vec
//
// for arbitrary vectors, with modulus and root discovered the way the
// convolution driver discovers them.
func TestTransformRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("inverse transform undoes the transform", prop.ForAll(
		func(vec []*big.Int) bool {
			root, mod, err := discoverParams(vec)
			if err != nil {
				t.Logf("parameter discovery failed: %v", err)
				return false
			}
			forward, err := Transform(vec, root, mod)
			if err != nil {
				return false
			}
			back, err := InverseTransform(forward, root, mod)
			if err != nil {
				return false
			}
			return vectorsEqual(back, vec)
		},
		genVector(12, 2000),
	))

	properties.TestingRun(t)
}

// TestRadix2MatchesDirect_PropertyBased verifies that the fast in-place
// radix-2 path and the direct O(n²) transform agree on every power-of-two
// length input.
func TestRadix2MatchesDirect_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("radix-2 equals direct transform", prop.ForAll(
		func(raw []int64, logLen uint8) bool {
			n := 1 << (logLen % 6) // lengths 1..32
			vec := make([]*big.Int, n)
			for i := range vec {
				vec[i] = big.NewInt(raw[i%len(raw)])
			}
			root, mod, err := discoverParams(vec)
			if err != nil {
				return false
			}
			want, err := Transform(vec, root, mod)
			if err != nil {
				return false
			}
			got := copyVector(vec)
			if err := TransformRadix2(got, root, mod); err != nil {
				return false
			}
			return vectorsEqual(got, want)
		},
		gen.SliceOfN(8, gen.Int64Range(0, 5000)),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestSqrtBounds_PropertyBased verifies sqrt(n)² <= n < (sqrt(n)+1)² for
// arbitrary non-negative inputs.
func TestSqrtBounds_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("floor square root bounds", prop.ForAll(
		func(n int64) bool {
			x := big.NewInt(n)
			r, err := Sqrt(x)
			if err != nil {
				return false
			}
			lower := new(big.Int).Mul(r, r)
			upper := new(big.Int).Add(r, big.NewInt(1))
			upper.Mul(upper, upper)
			return lower.Cmp(x) <= 0 && x.Cmp(upper) < 0
		},
		gen.Int64Range(0, 1<<55),
	))

	properties.TestingRun(t)
}

// TestPrimeFactorization_PropertyBased verifies that every factor returned
// by UniquePrimeFactors is prime and divides n, and that multiplying the
// factors back with their multiplicities reconstructs n exactly.
func TestPrimeFactorization_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("factors are prime, divide n, and reconstruct n", prop.ForAll(
		func(n int64) bool {
			x := big.NewInt(n)
			factors, err := UniquePrimeFactors(x)
			if err != nil {
				return false
			}
			remaining := new(big.Int).Set(x)
			rem := new(big.Int)
			for _, p := range factors {
				prime, err := IsPrime(p)
				if err != nil || !prime {
					return false
				}
				if rem.Mod(x, p).Sign() != 0 {
					return false
				}
				for rem.Mod(remaining, p).Sign() == 0 {
					remaining.Quo(remaining, p)
				}
			}
			// Dividing out every factor's full multiplicity must leave 1.
			return remaining.Cmp(big.NewInt(1)) == 0
		},
		gen.Int64Range(2, 1_000_000),
	))

	properties.TestingRun(t)
}

// TestPrimitiveRootDiscovery_PropertyBased verifies that for every modulus
// found for a transform length n, the discovered root really has order
// exactly n.
func TestPrimitiveRootDiscovery_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("discovered roots verify", prop.ForAll(
		func(n int, minimum int64) bool {
			mod, err := FindModulus(n, big.NewInt(minimum))
			if err != nil {
				return false
			}
			totient := new(big.Int).Sub(mod, big.NewInt(1))
			root, err := FindPrimitiveRoot(big.NewInt(int64(n)), totient, mod)
			if err != nil {
				return false
			}
			ok, err := IsPrimitiveRoot(root, big.NewInt(int64(n)), mod)
			return err == nil && ok
		},
		gen.IntRange(1, 48),
		gen.Int64Range(1, 50_000),
	))

	properties.TestingRun(t)
}

// TestConvolutionMatchesReference_PropertyBased verifies the transform
// pipeline against the defining double sum for arbitrary vectors.
func TestConvolutionMatchesReference_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("pipeline equals defining double sum", prop.ForAll(
		func(vec0, vec1 []*big.Int) bool {
			n := len(vec0)
			if len(vec1) < n {
				n = len(vec1)
			}
			vec0, vec1 = vec0[:n], vec1[:n]
			got, err := CircularConvolve(vec0, vec1, Options{})
			if err != nil {
				return false
			}
			return vectorsEqual(got, referenceConvolve(vec0, vec1))
		},
		genVector(10, 100_000),
		genVector(10, 100_000),
	))

	properties.TestingRun(t)
}
