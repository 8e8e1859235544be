// SPDX-License-Identifier: MIT

package subgroup

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strings"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/normalform"
)

// Subgroup is an ordered list of positive rationals together with the sorted
// set of primes that appear in them. Subgroups are immutable.
type Subgroup struct {
	elements []*big.Rat
	primes   []int64 // sorted prime expansion
}

// New builds a subgroup from its elements in the given order.
// Stage 1 (Validate): non-empty, every element positive and not 1/1.
// Stage 2 (Execute): factor every element over the prime table.
// Errors: ErrEmpty, ErrNonPositive, ErrUnison, ErrFactorization.
func New(elements ...*big.Rat) (Subgroup, error) {
	if len(elements) == 0 {
		return Subgroup{}, subgroupErrorf(opNew, ErrEmpty)
	}

	one := big.NewRat(1, 1)
	seen := make(map[int64]struct{})
	copies := make([]*big.Rat, len(elements))
	for i, e := range elements {
		if e == nil || e.Sign() <= 0 {
			return Subgroup{}, subgroupErrorf(opNew, fmt.Errorf("element %d: %w", i, ErrNonPositive))
		}
		if e.Cmp(one) == 0 {
			return Subgroup{}, subgroupErrorf(opNew, fmt.Errorf("element %d: %w", i, ErrUnison))
		}
		ps, err := primeFactors(e)
		if err != nil {
			return Subgroup{}, subgroupErrorf(opNew, fmt.Errorf("element %s: %w", e.RatString(), err))
		}
		for _, p := range ps {
			seen[p] = struct{}{}
		}
		copies[i] = new(big.Rat).Set(e)
	}

	primes := make([]int64, 0, len(seen))
	for p := range seen {
		primes = append(primes, p)
	}
	slices.Sort(primes)

	return Subgroup{elements: copies, primes: primes}, nil
}

// Parse reads dot-separated ratios, e.g. "2.3.5" or "2.3.7/5".
func Parse(s string) (Subgroup, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	elements := make([]*big.Rat, 0, len(parts))
	for _, part := range parts {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(part))
		if !ok {
			return Subgroup{}, subgroupErrorf(opParse, fmt.Errorf("%q in %q: %w", part, s, ErrParse))
		}
		elements = append(elements, r)
	}
	sg, err := New(elements...)
	if err != nil {
		return Subgroup{}, subgroupErrorf(opParse, err)
	}

	return sg, nil
}

// PrimeLimit returns the subgroup of all primes ≤ limit, e.g. 5 → 2.3.5.
func PrimeLimit(limit int64) (Subgroup, error) {
	if limit <= 1 || limit > maxPrime {
		return Subgroup{}, subgroupErrorf(opLimit, fmt.Errorf("%d: %w", limit, ErrLimit))
	}
	var elements []*big.Rat
	for _, p := range primeTable() {
		if p > limit {
			break
		}
		elements = append(elements, new(big.Rat).SetInt64(p))
	}

	return New(elements...)
}

// MustParse is Parse for package-level fixtures; it panics on malformed input.
func MustParse(s string) Subgroup {
	sg, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return sg
}

// Len returns the number of elements (the dimension d of mappings over it).
func (s Subgroup) Len() int { return len(s.elements) }

// Elements returns copies of the elements in order.
func (s Subgroup) Elements() []*big.Rat {
	out := make([]*big.Rat, len(s.elements))
	for i, e := range s.elements {
		out[i] = new(big.Rat).Set(e)
	}

	return out
}

// Primes returns the sorted prime expansion of the subgroup.
func (s Subgroup) Primes() []int64 {
	return append([]int64(nil), s.primes...)
}

// Logs returns the log-subgroup vector: log₂ of every element.
func (s Subgroup) Logs() []float64 {
	out := make([]float64, len(s.elements))
	for i, e := range s.elements {
		out[i] = log2Int(e.Num()) - log2Int(e.Denom())
	}

	return out
}

// log2Int computes log₂ of a positive integer of any size.
func log2Int(n *big.Int) float64 {
	mant := new(big.Float)
	exp := new(big.Float).SetInt(n).MantExp(mant) // n = mant·2^exp, mant ∈ [0.5, 1)
	f, _ := new(big.Float).SetMantExp(mant, 0).Float64()

	return math.Log2(f) + float64(exp)
}

// Equal reports whether both subgroups list the same elements in the same order.
func (s Subgroup) Equal(o Subgroup) bool {
	if len(s.elements) != len(o.elements) {
		return false
	}
	for i, e := range s.elements {
		if e.Cmp(o.elements[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders the subgroup in dot notation, e.g. "2.3.7/5".
func (s Subgroup) String() string {
	parts := make([]string, len(s.elements))
	for i, e := range s.elements {
		parts[i] = e.RatString()
	}

	return strings.Join(parts, ".")
}

// Basis returns the prime-exponent basis of the subgroup: one column per
// element, one row per prime of Primes(). When the elements are redundant
// (dependent) or their normal form is diagonal, the HNF-normalized basis is
// returned instead, which can have fewer columns.
func (s Subgroup) Basis() (*intmat.Matrix, error) {
	cols := make([][]int64, len(s.elements))
	for i, e := range s.elements {
		v, err := Factors(e, s.primes)
		if err != nil {
			return nil, subgroupErrorf(opBasis, err)
		}
		cols[i] = v
	}
	byElement, err := intmat.FromInts(cols)
	if err != nil {
		return nil, subgroupErrorf(opBasis, err)
	}

	normal, err := normalform.HNF(byElement, normalform.WithRemoveZeros())
	if err != nil {
		return nil, subgroupErrorf(opBasis, err)
	}
	basis := byElement.Transpose()
	reduced := normal.Transpose()
	if reduced.Cols() < basis.Cols() || isDiagonal(reduced) {
		return reduced, nil
	}

	return basis, nil
}

// Normalized returns the subgroup spanned by the columns of Basis, which
// removes redundant elements (e.g. 2.3.9 → 2.3).
func (s Subgroup) Normalized() (Subgroup, error) {
	b, err := s.Basis()
	if err != nil {
		return Subgroup{}, err
	}

	return FromBasis(b, s.primes)
}

func isDiagonal(m *intmat.Matrix) bool {
	rows, err := m.Ints()
	if err != nil {
		return false
	}
	for i, row := range rows {
		for j, v := range row {
			if i != j && v != 0 {
				return false
			}
		}
	}

	return true
}

// FromBasis rebuilds a subgroup from a prime-exponent basis (one column per
// element) over the given primes.
func FromBasis(basis *intmat.Matrix, primes []int64) (Subgroup, error) {
	if basis == nil || basis.Rows() != len(primes) {
		return Subgroup{}, subgroupErrorf(opFromBase, ErrDimensionMismatch)
	}
	elements := make([]*big.Rat, basis.Cols())
	for j := range elements {
		col, err := basis.Slice(0, basis.Rows(), j, j+1)
		if err != nil {
			return Subgroup{}, subgroupErrorf(opFromBase, err)
		}
		r, err := Ratio(col, primes)
		if err != nil {
			return Subgroup{}, subgroupErrorf(opFromBase, err)
		}
		elements[j] = r
	}

	return New(elements...)
}

// Factors returns the exponent vector of q over primes. Primes of q missing
// from the list make the decomposition fail.
func Factors(q *big.Rat, primes []int64) ([]int64, error) {
	num := new(big.Int).Set(q.Num())
	den := new(big.Int).Set(q.Denom())
	out := make([]int64, len(primes))
	for i, p := range primes {
		out[i] = strip(num, p) - strip(den, p)
	}
	if num.Cmp(big.NewInt(1)) != 0 || den.Cmp(big.NewInt(1)) != 0 {
		return nil, subgroupErrorf(opFactors, fmt.Errorf("%s over %v: %w", q.RatString(), primes, ErrFactorization))
	}

	return out, nil
}

// strip divides every factor p out of n in place and returns the multiplicity.
func strip(n *big.Int, p int64) int64 {
	bp := big.NewInt(p)
	q, r := new(big.Int), new(big.Int)
	var k int64
	for {
		q.QuoRem(n, bp, r)
		if r.Sign() != 0 {
			return k
		}
		n.Set(q)
		k++
	}
}

// primeFactors returns the distinct primes dividing the numerator or
// denominator of q, ascending.
func primeFactors(q *big.Rat) ([]int64, error) {
	num := new(big.Int).Set(q.Num())
	den := new(big.Int).Set(q.Denom())
	one := big.NewInt(1)
	var out []int64
	for _, p := range primeTable() {
		if num.Cmp(one) == 0 && den.Cmp(one) == 0 {
			break
		}
		if strip(num, p)+strip(den, p) > 0 {
			out = append(out, p)
		}
	}
	if num.Cmp(one) != 0 || den.Cmp(one) != 0 {
		return nil, ErrFactorization
	}

	return out, nil
}

// Ratio returns the rational with exponent column v over primes, the inverse
// of Factors. v is a d×1 matrix (an interval).
func Ratio(v *intmat.Matrix, primes []int64) (*big.Rat, error) {
	if v == nil || v.Cols() != 1 || v.Rows() != len(primes) {
		return nil, subgroupErrorf(opRatio, ErrDimensionMismatch)
	}
	num, den := big.NewInt(1), big.NewInt(1)
	pow := new(big.Int)
	for i, p := range primes {
		e, err := v.At(i, 0)
		if err != nil {
			return nil, subgroupErrorf(opRatio, err)
		}
		pow.Exp(big.NewInt(p), new(big.Int).Abs(e), nil)
		if e.Sign() > 0 {
			num.Mul(num, pow)
		} else if e.Sign() < 0 {
			den.Mul(den, pow)
		}
	}

	return new(big.Rat).SetFrac(num, den), nil
}
