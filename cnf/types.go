package cnf

// Lit is a signed propositional literal. A positive Lit asserts its
// variable (Var) true; a negative Lit asserts it false. Var is never zero.
type Lit int

// Var returns the variable this literal refers to, always positive.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Sign reports whether the literal asserts its variable true.
func (l Lit) Sign() bool {
	return l > 0
}

// Negate returns the complementary literal (¬l).
func (l Lit) Negate() Lit {
	return -l
}

// Clause is a disjunction of literals. A clause is satisfied when at least
// one of its literals is true under a given assignment. An empty Clause is
// unsatisfiable by definition.
type Clause []Lit

// Clone returns an independent copy of the clause.
func (c Clause) Clone() Clause {
	out := make(Clause, len(c))
	copy(out, c)
	return out
}

// Formula is an ordered, append-only list of clauses together with the
// monotonic counter of the next fresh variable ID. Every encoder phase
// appends clauses and advances NextVar; nothing removes a clause once
// added.
type Formula struct {
	Clauses []Clause
	NextVar int
}

// NewFormula returns an empty Formula whose variable counter starts at 1
// (variable IDs are dense and positive, per the module's data model).
func NewFormula() *Formula {
	return &Formula{NextVar: 1}
}

// FreshVar allocates and returns a new variable ID, advancing NextVar.
func (f *Formula) FreshVar() int {
	v := f.NextVar
	f.NextVar++
	return v
}

// Add appends a clause to the formula.
func (f *Formula) Add(c Clause) {
	f.Clauses = append(f.Clauses, c)
}

// AddUnsat appends the canonical two-clause contradiction {[v], [-v]} over a
// fresh variable, marking the formula permanently unsatisfiable without
// disturbing any variable already in use.
func (f *Formula) AddUnsat() {
	v := f.FreshVar()
	f.Add(Clause{Lit(v)})
	f.Add(Clause{Lit(-v)})
}

// Model is a complete truth assignment: one literal per variable, indexed by
// Var()-1, signed according to the variable's assigned truth value.
type Model []Lit

// True reports whether the variable assigned by this model to v is true.
// It returns false for any variable outside the model's range — callers are
// expected to only query variables that exist in the formula the model was
// produced for.
func (m Model) True(v int) bool {
	idx := v - 1
	if idx < 0 || idx >= len(m) {
		return false
	}
	return m[idx] > 0
}

// Literals returns the model flattened as a slice of signed literals, one
// per variable, in variable order.
func (m Model) Literals() []Lit {
	out := make([]Lit, len(m))
	copy(out, m)
	return out
}
