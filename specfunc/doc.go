// Package specfunc provides the Bessel-family special functions used by
// horn diffraction and radiation-impedance formulas.
//
// All functions are pure and stateless. The implementations are
// deliberately self-contained (series plus asymptotic pieces on stdlib
// math) so the package carries no numerics dependency; the stdlib
// integer-order Bessel functions serve only as test oracles.
//
// Domain sentinels: BesselY returns -Inf and BesselK returns +Inf for
// non-positive arguments. These are documented sentinel values, not
// errors, since both appear as intermediate terms in composite
// formulas.
package specfunc
