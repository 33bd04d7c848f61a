// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package num

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint is a wrapper to a big unsigned int underlying a uint256.Int.
type Uint struct {
	u uint256.Int
}

var maxU256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// NewUint creates a new Uint with the value of the
// uint64 passed as a parameter.
func NewUint(val uint64) *Uint {
	u := Uint{}
	u.u.SetUint64(val)
	return &u
}

// UintZero returns a new Uint set to 0.
func UintZero() *Uint {
	return NewUint(0)
}

// UintOne returns a new Uint set to 1.
func UintOne() *Uint {
	return NewUint(1)
}

// MaxUint returns the maximum value a Uint can hold.
func MaxUint() *Uint {
	u := UintZero()
	u.u.SetAllOne()
	return u
}

// UintFromBig constructs a new Uint from a big.Int,
// returns (zero, true) in case of overflow or negative input.
func UintFromBig(b *big.Int) (*Uint, bool) {
	if b.Sign() < 0 {
		return UintZero(), true
	}
	u := Uint{}
	if overflow := u.u.SetFromBig(b); overflow {
		return UintZero(), true
	}
	return &u, false
}

// UintFromDecimal returns a new Uint from a Decimal, the Uint is
// the truncated integer part of the decimal, the flag reports failure.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	return UintFromBig(d.BigInt())
}

// UintFromString created a new Uint from a string
// interpreted using the give base.
// A big.Int is used to read the string, so
// all error related to big.Int parsing apply here.
// Will return true if an error / overflow happened.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString returns a new Uint from the given base-10 string,
// panics on invalid input. Meant for constants and tests.
func MustUintFromString(str string) *Uint {
	u, overflow := UintFromString(str, 10)
	if overflow {
		panic(fmt.Sprintf("invalid uint string: %q", str))
	}
	return u
}

// Sum just removes the need to write num.UintZero().AddSum(x, y, z)
// so you can write num.Sum(x, y, z) instead, equivalent, but simpler.
func Sum(vals ...*Uint) *Uint {
	return UintZero().AddSum(vals...)
}

// Add will add x and y then store the result into u
// this is equivalent to:
// `u = x + y`
// u is returned for convenience, no new variable is created.
func (u *Uint) Add(x, y *Uint) *Uint {
	u.u.Add(&x.u, &y.u)
	return u
}

// AddSum adds multiple values at the same time to a given uint
// so u = u + x + y + z.
func (u *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		u.u.Add(&u.u, &x.u)
	}
	return u
}

// Sub will subtract y from x then store the result into u
// this is equivalent to:
// `u = x - y`
// u is returned for convenience, no new variable is created.
func (u *Uint) Sub(x, y *Uint) *Uint {
	u.u.Sub(&x.u, &y.u)
	return u
}

// Mul will multiply x and y then store the result into u
// this is equivalent to:
// `u = x * y`
// u is returned for convenience, no new variable is created.
func (u *Uint) Mul(x, y *Uint) *Uint {
	u.u.Mul(&x.u, &y.u)
	return u
}

// Div will divide x by y then store the result into u
// this is equivalent to:
// `u = x / y`
// u is returned for convenience, no new variable is created.
func (u *Uint) Div(x, y *Uint) *Uint {
	u.u.Div(&x.u, &y.u)
	return u
}

// Exp sets u = x**y and returns u.
func (u *Uint) Exp(x, y *Uint) *Uint {
	u.u.Exp(&x.u, &y.u)
	return u
}

// Delta will subtract y from x and store the result unless x-y overflowed,
// in which case the neg field will be set and the result of y - x is set instead.
func (u *Uint) Delta(x, y *Uint) (*Uint, bool) {
	if x.GTE(y) {
		return u.Sub(x, y), false
	}
	return u.Sub(y, x), true
}

// Clone creates a copy of the uint so that
// either the original or the clone can be mutated safely.
func (u *Uint) Clone() *Uint {
	return &Uint{u.u}
}

// Copy stores a copy of x into u, and returns u.
func (u *Uint) Copy(x *Uint) *Uint {
	u.u = x.u
	return u
}

// Set sets the underlying value to the given uint64.
func (u *Uint) Set(val uint64) *Uint {
	u.u.SetUint64(val)
	return u
}

// SetUint64 sets the value to the given uint64, returns u.
func (u *Uint) SetUint64(val uint64) *Uint {
	u.u.SetUint64(val)
	return u
}

// Uint64 returns the u as a uint64, wrapping on overflow.
func (u *Uint) Uint64() uint64 {
	return u.u.Uint64()
}

// BigInt returns the underlying value as a new big.Int.
func (u *Uint) BigInt() *big.Int {
	return u.u.ToBig()
}

// ToDecimal returns the value as an arbitrary precision Decimal.
func (u *Uint) ToDecimal() Decimal {
	return DecimalFromUint(u)
}

func (u *Uint) String() string {
	return u.u.Dec()
}

// Format implements fmt.Formatter so %v, %s and %d all behave.
func (u *Uint) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, u.String())
}

// IsZero returns whether u == 0.
func (u *Uint) IsZero() bool {
	return u.u.IsZero()
}

// EQ returns u == oth.
func (u *Uint) EQ(oth *Uint) bool {
	return u.u.Eq(&oth.u)
}

// NEQ returns u != oth.
func (u *Uint) NEQ(oth *Uint) bool {
	return !u.u.Eq(&oth.u)
}

// GT returns u > oth.
func (u *Uint) GT(oth *Uint) bool {
	return u.u.Gt(&oth.u)
}

// GTE returns u >= oth.
func (u *Uint) GTE(oth *Uint) bool {
	return !u.u.Lt(&oth.u)
}

// LT returns u < oth.
func (u *Uint) LT(oth *Uint) bool {
	return u.u.Lt(&oth.u)
}

// LTE returns u <= oth.
func (u *Uint) LTE(oth *Uint) bool {
	return !u.u.Gt(&oth.u)
}

// Min returns the smallest of the 2 numbers.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a.Clone()
	}
	return b.Clone()
}

// Max returns the largest of the 2 numbers.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a.Clone()
	}
	return b.Clone()
}
