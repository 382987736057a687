package polynomial

import (
	"go.uber.org/multierr"

	"github.com/njchilds90/gocas/number"
)

// Factor iteratively extracts linear factors (x - r) for every
// rational root findRationalRoot can locate, returning the list of
// linear factors found plus whatever irreducible remainder is left
// (degree 0 if p split completely). A remainder with no rational root
// is returned as is, with a nil error. If dividing by a found root ever
// leaves a nonzero remainder, factoring stops there and ErrNoRoots is
// returned (through multierr) alongside the factors found so far.
func Factor(p *Polynomial) (factors []*Polynomial, remainder *Polynomial, err error) {
	cur := p
	var errs error
	for cur.Degree() > 0 {
		root, ok := findRationalRoot(cur)
		if !ok {
			break
		}
		factors = append(factors, New([]number.Number{number.Negate(root), number.One}))
		q, rem := cur.DivideByLinearFactor(root)
		if !rem.IsZero() {
			errs = multierr.Append(errs, ErrNoRoots)
			break
		}
		cur = q
	}
	return factors, cur, errs
}
