package ntt

import (
	"fmt"
	"math/big"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

// hasOrder reports whether val has multiplicative order exactly order modulo
// mod, given the distinct prime factors of order. The test checks
// val^order ≡ 1 and val^(order/p) ≠ 1 for every prime factor p; checking only
// the prime cofactors suffices because the order of val divides order, and a
// proper divisor of order would divide order/p for some p.
func hasOrder(val, order *big.Int, factors []*big.Int, mod *big.Int) bool {
	tmp := new(big.Int)
	if tmp.Exp(val, order, mod).Cmp(bigOne) != 0 {
		return false
	}
	cofactor := new(big.Int)
	for _, p := range factors {
		cofactor.Quo(order, p)
		if tmp.Exp(val, cofactor, mod).Cmp(bigOne) == 0 {
			return false
		}
	}
	return true
}

// checkOrderArgs validates that 1 <= order < mod.
func checkOrderArgs(name string, order, mod *big.Int) error {
	if mod == nil {
		return apperrors.NewValidationError("mod", "modulus must not be nil")
	}
	if order == nil || order.Cmp(bigOne) < 0 || order.Cmp(mod) >= 0 {
		return apperrors.NewValidationError(name, "value must be in the range [1, mod)")
	}
	return nil
}

// FindGenerator returns the smallest integer in [1, mod) that generates the
// full multiplicative group modulo mod, i.e. has order exactly totient.
//
// Parameters:
//   - totient: The order of the multiplicative group (mod−1 for prime mod).
//     Must satisfy 1 <= totient < mod.
//   - mod: The modulus.
//
// Returns:
//   - *big.Int: The smallest generator.
//   - error: A ValidationError for out-of-range arguments, or an
//     ArithmeticError when no generator exists (impossible for a prime
//     modulus with totient = mod−1).
func FindGenerator(totient, mod *big.Int) (*big.Int, error) {
	if err := checkOrderArgs("totient", totient, mod); err != nil {
		return nil, err
	}
	factors, err := UniquePrimeFactors(totient)
	if err != nil {
		return nil, err
	}
	for val := big.NewInt(1); val.Cmp(mod) < 0; val.Add(val, bigOne) {
		if hasOrder(val, totient, factors, mod) {
			return new(big.Int).Set(val), nil
		}
	}
	return nil, apperrors.ArithmeticError{
		Op:      "FindGenerator",
		Message: fmt.Sprintf("no element of order %s exists modulo %s", totient, mod),
	}
}

// FindPrimitiveRoot returns a primitive degree-th root of unity modulo mod,
// computed as generator^(totient/degree).
//
// Parameters:
//   - degree: The desired order of the root. Must satisfy
//     1 <= degree <= totient and divide totient exactly.
//   - totient: The order of the multiplicative group. Must satisfy
//     totient < mod.
//   - mod: The modulus.
//
// Returns:
//   - *big.Int: A root of order exactly degree.
//   - error: A ValidationError for out-of-range or non-dividing arguments,
//     or an ArithmeticError propagated from FindGenerator.
func FindPrimitiveRoot(degree, totient, mod *big.Int) (*big.Int, error) {
	if err := checkOrderArgs("totient", totient, mod); err != nil {
		return nil, err
	}
	if degree == nil || degree.Cmp(bigOne) < 0 || degree.Cmp(totient) > 0 {
		return nil, apperrors.NewValidationError("degree", "value must be in the range [1, totient]")
	}
	quo, rem := new(big.Int).QuoRem(totient, degree, new(big.Int))
	if rem.Sign() != 0 {
		return nil, apperrors.NewValidationError("degree", "value %s does not divide totient %s", degree, totient)
	}
	gen, err := FindGenerator(totient, mod)
	if err != nil {
		return nil, err
	}
	return gen.Exp(gen, quo, mod), nil
}

// IsGenerator reports whether val generates the full multiplicative group
// modulo mod, i.e. has order exactly totient.
//
// Parameters:
//   - val: The candidate. Must be in the range [0, mod).
//   - totient: The group order. Must satisfy 1 <= totient < mod.
//   - mod: The modulus.
//
// Returns:
//   - bool: true if the order of val is exactly totient.
//   - error: A ValidationError for out-of-range arguments.
func IsGenerator(val, totient, mod *big.Int) (bool, error) {
	if err := checkOrderArgs("totient", totient, mod); err != nil {
		return false, err
	}
	if val == nil || val.Sign() < 0 || val.Cmp(mod) >= 0 {
		return false, apperrors.NewValidationError("val", "value must be in the range [0, mod)")
	}
	factors, err := UniquePrimeFactors(totient)
	if err != nil {
		return false, err
	}
	return hasOrder(val, totient, factors, mod), nil
}

// IsPrimitiveRoot reports whether val is a primitive degree-th root of unity
// modulo mod, i.e. has order exactly degree. The test structure is the same
// exact-order check as IsGenerator applied to degree.
//
// Parameters:
//   - val: The candidate. Must be in the range [0, mod).
//   - degree: The order to verify. Must satisfy 1 <= degree < mod.
//   - mod: The modulus.
//
// Returns:
//   - bool: true if the order of val is exactly degree.
//   - error: A ValidationError for out-of-range arguments.
func IsPrimitiveRoot(val, degree, mod *big.Int) (bool, error) {
	if err := checkOrderArgs("degree", degree, mod); err != nil {
		return false, err
	}
	if val == nil || val.Sign() < 0 || val.Cmp(mod) >= 0 {
		return false, apperrors.NewValidationError("val", "value must be in the range [0, mod)")
	}
	factors, err := UniquePrimeFactors(degree)
	if err != nil {
		return false, err
	}
	return hasOrder(val, degree, factors, mod), nil
}
