//go:build gmp

package ntt

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

// GMPConvolver runs the convolution pipeline with the hot modular arithmetic
// carried by GMP through github.com/ncw/gmp. Modulus and root discovery stay
// on math/big; the transform loops, where virtually all the multiplication
// time is spent, run on gmp.Int. Built only with the `gmp` build tag since it
// requires cgo and libgmp.
type GMPConvolver struct{}

// Name returns the display name of this convolution path.
//
// Returns:
//   - string: The algorithm name.
func (c *GMPConvolver) Name() string { return "GMP NTT" }

// Convolve computes the exact circular convolution using GMP arithmetic for
// the transforms. Results are identical to NTTConvolver.
func (c *GMPConvolver) Convolve(ctx context.Context, vec0, vec1 []*big.Int, opts Options) ([]*big.Int, error) {
	maxval, err := validateConvolutionInputs(vec0, vec1)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := len(vec0)

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
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gmod := toGMP(mod)
	groot := toGMP(root)
	temp0 := gmpTransform(toGMPVector(vec0), groot, gmod)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	temp1 := gmpTransform(toGMPVector(vec1), groot, gmod)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range temp0 {
		temp0[i].Mul(temp0[i], temp1[i])
		temp0[i].Mod(temp0[i], gmod)
	}

	// Inverse: forward transform with root⁻¹, then scale by n⁻¹.
	grootInv := new(gmp.Int).ModInverse(groot, gmod)
	out := gmpTransform(temp0, grootInv, gmod)
	scaler := new(gmp.Int).ModInverse(gmp.NewInt(int64(n)), gmod)
	for _, v := range out {
		v.Mul(v, scaler)
		v.Mod(v, gmod)
	}
	return fromGMPVector(out), nil
}

// gmpTransform is the direct O(n²) transform on gmp.Int operands.
func gmpTransform(vec []*gmp.Int, root, mod *gmp.Int) []*gmp.Int {
	n := len(vec)
	out := make([]*gmp.Int, n)
	exp := new(gmp.Int)
	power := new(gmp.Int)
	term := new(gmp.Int)
	for i := 0; i < n; i++ {
		sum := new(gmp.Int)
		for j := 0; j < n; j++ {
			exp.SetInt64(int64((i * j) % n))
			power.Exp(root, exp, mod)
			term.Mul(vec[j], power)
			sum.Add(sum, term)
		}
		out[i] = sum.Mod(sum, mod)
	}
	return out
}

// toGMP converts a non-negative big.Int to a gmp.Int.
func toGMP(x *big.Int) *gmp.Int {
	return new(gmp.Int).SetBytes(x.Bytes())
}

func toGMPVector(vec []*big.Int) []*gmp.Int {
	out := make([]*gmp.Int, len(vec))
	for i, v := range vec {
		out[i] = toGMP(v)
	}
	return out
}

func fromGMPVector(vec []*gmp.Int) []*big.Int {
	out := make([]*big.Int, len(vec))
	for i, v := range vec {
		out[i] = new(big.Int).SetBytes(v.Bytes())
	}
	return out
}
