package certifier

import (
	"context"

	"github.com/lukpank/go-glpk/glpk"
)

// GLPKSolver solves feasibility problems with the GNU Linear Programming Kit's
// branch-and-cut MIP solver. One GLPKSolver may be shared across goroutines;
// every Solve builds its own independent GLPK problem object.
type GLPKSolver struct{}

// Ensure GLPKSolver implements Solver
var _ Solver = (*GLPKSolver)(nil)

// NewGLPKSolver creates a new GLPK-backed solver.
func NewGLPKSolver() *GLPKSolver {
	return &GLPKSolver{}
}

type solveOutcome struct {
	status Status
	err    error
}

// Solve runs the MIP search. GLPK's Intopt is not interruptible, so the solve
// races the context: if the deadline wins, the result is StatusUnknown and the
// abandoned search is left to finish on its own goroutine before the problem
// object is released.
func (s *GLPKSolver) Solve(ctx context.Context, p *Problem) (Status, error) {
	prob := glpk.New()
	prob.SetProbName(p.Name)
	prob.SetObjDir(glpk.MIN)

	prob.AddCols(p.NumCols)
	for j := 1; j <= p.NumCols; j++ {
		prob.SetColKind(j, glpk.BV)
		prob.SetObjCoef(j, 0)
	}

	prob.AddRows(len(p.Rows))
	for i, row := range p.Rows {
		prob.SetRowName(i+1, row.Name)
		switch row.Kind {
		case RowEqual:
			prob.SetRowBnds(i+1, glpk.FX, row.RHS, row.RHS)
		case RowAtLeast:
			prob.SetRowBnds(i+1, glpk.LO, row.RHS, 0)
		}
		// GLPK sparse rows are 1-based with a dummy leading element.
		ind := make([]int32, len(row.Cols)+1)
		val := make([]float64, len(row.Coefs)+1)
		for k, col := range row.Cols {
			ind[k+1] = int32(col)
			val[k+1] = row.Coefs[k]
		}
		prob.SetMatRow(i+1, ind, val)
	}

	done := make(chan solveOutcome, 1)
	go func() {
		done <- runIntopt(prob)
	}()

	select {
	case out := <-done:
		prob.Delete()
		return out.status, out.err
	case <-ctx.Done():
		go func() {
			<-done
			prob.Delete()
		}()
		return StatusUnknown, ctx.Err()
	}
}

func runIntopt(prob *glpk.Prob) solveOutcome {
	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)

	if err := prob.Intopt(iocp); err != nil {
		// The presolver reports a relaxation with no feasible solution as an
		// error; that is a definitive infeasibility proof, not an unknown.
		if optErr, ok := err.(glpk.OptError); ok && (optErr == glpk.ENOPFS || optErr == glpk.ENODFS) {
			return solveOutcome{status: StatusInfeasible}
		}
		return solveOutcome{status: StatusUnknown, err: err}
	}

	switch prob.MipStatus() {
	case glpk.OPT, glpk.FEAS:
		return solveOutcome{status: StatusFeasible}
	case glpk.NOFEAS:
		return solveOutcome{status: StatusInfeasible}
	default:
		return solveOutcome{status: StatusUnknown}
	}
}
