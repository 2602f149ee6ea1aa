package ntt

import (
	"math/big"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

// checkTransformArgs validates the arguments shared by every transform
// variant: a non-empty vector with no nil elements, and a modulus above 1.
// Whether root really is a primitive root of the right order is the caller's
// responsibility; verifying it here would cost more than the transform.
func checkTransformArgs(vec []*big.Int, root, mod *big.Int) error {
	if len(vec) == 0 {
		return apperrors.NewValidationError("vec", "vector must not be empty")
	}
	for i, v := range vec {
		if v == nil {
			return apperrors.NewValidationError("vec", "element %d is nil", i)
		}
	}
	if root == nil {
		return apperrors.NewValidationError("root", "root must not be nil")
	}
	if mod == nil || mod.Cmp(bigOne) <= 0 {
		return apperrors.NewValidationError("mod", "modulus must be greater than 1")
	}
	return nil
}

// Transform computes the direct number-theoretic transform of vec:
//
//	out[i] = Σ_j vec[j] · root^(i·j mod n)   (mod mod)
//
// It is a pure function: the input is left untouched and a fresh output
// vector with canonical residues in [0, mod) is returned. Complexity is
// O(n²) modular multiplications, valid for any length n >= 1.
//
// Parameters:
//   - vec: The input vector.
//   - root: A primitive n-th root of unity modulo mod (not verified here).
//   - mod: The working modulus.
//
// Returns:
//   - []*big.Int: The transformed vector.
//   - error: A ValidationError for malformed arguments.
func Transform(vec []*big.Int, root, mod *big.Int) ([]*big.Int, error) {
	if err := checkTransformArgs(vec, root, mod); err != nil {
		return nil, err
	}
	n := len(vec)
	out := make([]*big.Int, n)
	exp := new(big.Int)
	power := new(big.Int)
	term := new(big.Int)
	for i := 0; i < n; i++ {
		sum := new(big.Int)
		for j := 0; j < n; j++ {
			// Exponents live modulo n because root^n ≡ 1.
			exp.SetInt64(int64((i * j) % n))
			power.Exp(root, exp, mod)
			term.Mul(vec[j], power)
			sum.Add(sum, term)
		}
		out[i] = sum.Mod(sum, mod)
	}
	return out, nil
}

// InverseTransform computes the inverse number-theoretic transform of vec:
// the direct transform using root⁻¹, with every output element scaled by
// n⁻¹ modulo mod. The modulus must make n invertible, which always holds for
// the primes FindModulus produces since they exceed n.
//
// Parameters:
//   - vec: The input vector.
//   - root: The same root used for the forward transform.
//   - mod: The working modulus.
//
// Returns:
//   - []*big.Int: The inverse-transformed vector.
//   - error: A ValidationError for malformed arguments, or an
//     ArithmeticError if root or the vector length has no inverse modulo mod.
func InverseTransform(vec []*big.Int, root, mod *big.Int) ([]*big.Int, error) {
	if err := checkTransformArgs(vec, root, mod); err != nil {
		return nil, err
	}
	rootInv := new(big.Int).ModInverse(root, mod)
	if rootInv == nil {
		return nil, apperrors.ArithmeticError{Op: "InverseTransform", Message: "root has no inverse modulo mod"}
	}
	out, err := Transform(vec, rootInv, mod)
	if err != nil {
		return nil, err
	}
	scaler := new(big.Int).ModInverse(big.NewInt(int64(len(vec))), mod)
	if scaler == nil {
		return nil, apperrors.ArithmeticError{Op: "InverseTransform", Message: "vector length has no inverse modulo mod"}
	}
	for _, v := range out {
		v.Mul(v, scaler)
		v.Mod(v, mod)
	}
	return out, nil
}
