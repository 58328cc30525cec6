package shamir

import (
	"math/big"
	"strconv"
	"strings"
)

// Term is one non-elided monomial of a reconstructed polynomial.
type Term struct {
	Degree      int
	Coefficient *big.Rat
}

// Result is the outcome of a single reconstruction.
type Result struct {
	// N and K are the declared share count and threshold.
	N int
	K int
	// Shares holds every decoded share, ascending by index.
	Shares []Share
	// Selected holds the K shares used for interpolation.
	Selected []Share
	// Polynomial is the interpolating polynomial through Selected.
	Polynomial *Polynomial
	// Terms lists the polynomial terms, highest degree first, with zero
	// coefficients elided except the constant term.
	Terms []Term
	// Constant is the constant term, the reconstructed secret.
	Constant *big.Rat
	// Method names the solver that produced Polynomial.
	Method Method
}

// NewResult assembles a result from the pipeline stages.
func NewResult(set *ShareSet, shares, selected []Share, poly *Polynomial, method Method) *Result {
	return &Result{
		N:          set.N,
		K:          set.K,
		Shares:     shares,
		Selected:   selected,
		Polynomial: poly,
		Terms:      buildTerms(poly),
		Constant:   poly.Constant(),
		Method:     method,
	}
}

func buildTerms(poly *Polynomial) []Term {
	degree := poly.Degree()
	terms := make([]Term, 0, len(poly.Coefficients))

	for i, c := range poly.Coefficients {
		d := degree - i
		if d > 0 && c.Sign() == 0 {
			continue
		}

		terms = append(terms, Term{
			Degree:      d,
			Coefficient: new(big.Rat).Set(c),
		})
	}

	return terms
}

// Expression renders the polynomial in conventional notation, e.g. "x^2 - 3/2x + 3".
func (r *Result) Expression() string {
	var b strings.Builder

	for i, t := range r.Terms {
		coeff := t.Coefficient
		negative := coeff.Sign() < 0
		abs := new(big.Rat).Abs(coeff)

		switch {
		case i == 0 && negative:
			b.WriteString("-")
		case i > 0 && negative:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}

		unit := abs.Cmp(big.NewRat(1, 1)) == 0
		if t.Degree == 0 || !unit {
			b.WriteString(FormatRat(abs))
		}

		switch t.Degree {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(t.Degree))
		}
	}

	return b.String()
}

// FormatRat formats integers in decimal and other rationals as reduced fractions.
func FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

// ShareReport is the display form of a share.
type ShareReport struct {
	Index   int64  `json:"index"`
	Base    int    `json:"base"`
	Value   string `json:"value"`
	Decoded string `json:"decoded"`
	Exact   bool   `json:"exact_float"`
}

// TermReport is the display form of a term.
type TermReport struct {
	Degree      int    `json:"degree"`
	Coefficient string `json:"coefficient"`
}

// Report is a display-neutral, string-only rendering of a Result.
type Report struct {
	N          int           `json:"n"`
	K          int           `json:"k"`
	Method     string        `json:"method"`
	Shares     []ShareReport `json:"shares"`
	Selected   []int64       `json:"selected"`
	Terms      []TermReport  `json:"terms"`
	Expression string        `json:"expression"`
	Constant   string        `json:"constant"`
}

// Report converts the result into its display form.
func (r *Result) Report() Report {
	rep := Report{
		N:          r.N,
		K:          r.K,
		Method:     r.Method.String(),
		Shares:     make([]ShareReport, len(r.Shares)),
		Selected:   make([]int64, len(r.Selected)),
		Terms:      make([]TermReport, len(r.Terms)),
		Expression: r.Expression(),
		Constant:   FormatRat(r.Constant),
	}

	for i, s := range r.Shares {
		rep.Shares[i] = ShareReport{
			Index:   s.X,
			Base:    s.Base,
			Value:   s.Value,
			Decoded: s.Y.String(),
			Exact:   s.Exact(),
		}
	}

	for i, s := range r.Selected {
		rep.Selected[i] = s.X
	}

	for i, t := range r.Terms {
		rep.Terms[i] = TermReport{
			Degree:      t.Degree,
			Coefficient: FormatRat(t.Coefficient),
		}
	}

	return rep
}
