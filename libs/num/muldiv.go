package num

import "math/big"

// MulDiv computes a * b / c at full intermediate precision, rounding the
// result down. It panics when c is zero: callers are expected to have
// validated their denominators, a zero here is a programming error.
func MulDiv(a, b, c *Uint) *Uint {
	q, _ := mulDiv(a, b, c)
	return q
}

// MulDivUp computes a * b / c at full intermediate precision, rounding
// the result up. Same zero-denominator semantics as MulDiv.
func MulDivUp(a, b, c *Uint) *Uint {
	q, rem := mulDiv(a, b, c)
	if !rem.IsZero() {
		q.AddSum(NewUint(1))
	}
	return q
}

func mulDiv(a, b, c *Uint) (*Uint, *Uint) {
	if c.IsZero() {
		panic("num: division by zero in MulDiv")
	}
	p := new(big.Int).Mul(a.BigInt(), b.BigInt())
	q, m := new(big.Int).QuoRem(p, c.BigInt(), new(big.Int))
	quo, overflow := UintFromBig(q)
	if overflow {
		panic("num: overflow in MulDiv")
	}
	rem, _ := UintFromBig(m)
	return quo, rem
}
