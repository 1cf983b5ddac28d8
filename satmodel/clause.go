package satmodel

// Lit is a single literal: variable id Var (0-based) with polarity
// Positive.
type Lit struct {
	Var      int
	Positive bool
}

// Pos builds a positive literal for variable id v.
func Pos(v int) Lit { return Lit{Var: v, Positive: true} }

// Neg builds a negative literal for variable id v.
func Neg(v int) Lit { return Lit{Var: v, Positive: false} }

// Negate flips the literal's polarity, keeping the same variable.
func (l Lit) Negate() Lit { return Lit{Var: l.Var, Positive: !l.Positive} }

// Clause is a disjunction of literals.
type Clause struct {
	Lits []Lit
}

// NewClause builds a clause from the given literals.
func NewClause(lits ...Lit) Clause { return Clause{Lits: append([]Lit(nil), lits...)} }

// With returns a new clause with extra literals appended.
func (c Clause) With(lits ...Lit) Clause {
	out := make([]Lit, len(c.Lits)+len(lits))
	copy(out, c.Lits)
	copy(out[len(c.Lits):], lits)

	return Clause{Lits: out}
}
