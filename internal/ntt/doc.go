// Package ntt implements the number-theoretic transform (NTT) over the
// integers modulo a prime, together with the number-theory machinery it
// needs: integer square root, primality testing, unique prime factorization,
// NTT-friendly modulus search, and generator/primitive-root discovery.
//
// The package exposes two transform paths with identical mathematical
// results: a direct O(n²) transform valid for any length, and an in-place
// iterative radix-2 transform restricted to power-of-two lengths. On top of
// them, CircularConvolve performs exact circular convolution of non-negative
// integer vectors with no rounding error, by working modulo a prime chosen
// large enough that no convolution sum can wrap. Multiply applies the same
// pipeline to big-integer multiplication.
//
// All arithmetic is carried by *math/big.Int; every residue the package
// produces is canonical, i.e. in the range [0, mod). Operations are pure and
// allocate fresh outputs, with the single documented exception of
// TransformRadix2, which mutates its input vector in place and therefore
// requires exclusive ownership of the buffer for the duration of the call.
package ntt
