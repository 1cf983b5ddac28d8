package satmodel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteDIMACS renders the model as a DIMACS CNF file: a "p cnf nvars
// nclauses" header followed by one "lit lit ... 0" line per clause.
func (m *Model) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", m.VarCount(), m.ClauseCount()); err != nil {
		return err
	}
	for _, c := range m.clauses {
		for _, l := range c.Lits {
			v := l.Var + 1
			if l.Positive {
				if _, err := fmt.Fprintf(bw, "%d ", v); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(bw, "-%d ", v); err != nil {
					return err
				}
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteDIMACSFile writes the model's DIMACS rendering to path, creating
// or truncating it.
func (m *Model) WriteDIMACSFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return m.WriteDIMACS(f)
}

// Result is a parsed solver result: the status line ("SATISFIABLE",
// "UNSATISFIABLE", or whatever the solver emits) and, when satisfiable,
// the per-variable assignment.
type Result struct {
	Status string
	Vars   map[int]bool
}

// Satisfiable reports whether the solver reported SATISFIABLE.
func (r *Result) Satisfiable() bool { return r.Status == "SATISFIABLE" }

// Value returns the assignment for variable id v, failing if v was
// never assigned (e.g. the result is UNSATISFIABLE).
func (r *Result) Value(v int) (bool, error) {
	val, ok := r.Vars[v]
	if !ok {
		return false, fmt.Errorf("var %d: %w", v, ErrUnassignedVar)
	}

	return val, nil
}

// Lit evaluates a literal under this result.
func (r *Result) Lit(l Lit) (bool, error) {
	val, err := r.Value(l.Var)
	if err != nil {
		return false, err
	}

	return val == l.Positive, nil
}

// ReadDIMACSResult parses a solver's DIMACS-style result stream: an
// 's <status>' status line and zero or more 'v <lit> <lit> ... 0' value
// lines. When the status is SATISFIABLE, wantVars must equal the number
// of distinct variables assigned (ErrVarCountMismatch otherwise).
func ReadDIMACSResult(r io.Reader, wantVars int) (*Result, error) {
	res := &Result{Vars: make(map[int]bool)}
	scanner := bufio.NewScanner(r)
	const maxLine = 1 << 20
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "s":
			if len(fields) >= 2 {
				res.Status = fields[1]
			}
		case "v":
			for _, tok := range fields[1:] {
				n, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("satmodel: malformed literal %q: %w", tok, err)
				}
				if n == 0 {
					continue
				}
				if n > 0 {
					res.Vars[n-1] = true
				} else {
					res.Vars[-n-1] = false
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if res.Status == "" {
		return nil, ErrNoResult
	}
	if res.Status == "SATISFIABLE" && len(res.Vars) != wantVars {
		return nil, fmt.Errorf("satmodel: have %d, want %d: %w", len(res.Vars), wantVars, ErrVarCountMismatch)
	}

	return res, nil
}

// ReadDIMACSResultFile opens path and parses it as a solver result.
func ReadDIMACSResultFile(path string, wantVars int) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDIMACSResult(f, wantVars)
}
