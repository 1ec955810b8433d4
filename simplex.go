package cargo

import (
	"math"

	"github.com/willauld/lpsimplex"
)

const (
	// DefaultMaxNodes caps the branch and bound tree. The assignment models
	// here are tiny; hitting the cap means something is off and the solve
	// ends as OTHER rather than spinning.
	DefaultMaxNodes = 50000

	intTol             = 1e-6
	lpIterLimit        = 4000
	lpTol              = 1.0e-9
	pruneSlack         = 1e-9
	lpStatusInfeasible = 2
)

// BranchBoundOracle is a pure Go backend: exact depth-first branch and
// bound over the LP relaxation, solved per node with lpsimplex. It needs
// no external solver installation.
type BranchBoundOracle struct {
	MaxNodes int
}

func NewBranchBoundOracle() *BranchBoundOracle {
	return &BranchBoundOracle{}
}

func (b *BranchBoundOracle) Solve(model *Model) (Solution, error) {
	varCount := model.VarCount()
	if varCount == 0 {
		return Solution{Status: StatusOptimal}, nil
	}
	maxNodes := b.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	aub, bub, aeq, beq := denseRows(model)

	type node struct {
		lb, ub []float64
	}
	rootLB := make([]float64, varCount)
	rootUB := make([]float64, varCount)
	for i := range rootUB {
		rootUB[i] = 1
	}
	stack := []node{{lb: rootLB, ub: rootUB}}

	var best []float64
	bestObj := math.Inf(1)
	explored := 0
	truncated := false

	for len(stack) > 0 {
		if explored >= maxNodes {
			truncated = true
			break
		}
		explored++
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		bounds := make([]lpsimplex.Bound, varCount)
		for i := range bounds {
			bounds[i] = lpsimplex.Bound{Lb: nd.lb[i], Ub: nd.ub[i]}
		}
		callback := lpsimplex.Callbackfunc(nil)
		res := lpsimplex.LPSimplex(model.Obj, aub, bub, aeq, beq, bounds, callback, false, lpIterLimit, lpTol, false)
		if res.Status == lpStatusInfeasible {
			continue
		}
		if !res.Success {
			// Iteration limit or numerical trouble in the relaxation. The
			// subtree cannot be pruned soundly, so the search cannot prove
			// anything anymore.
			truncated = true
			continue
		}
		if res.Fun >= bestObj-pruneSlack {
			continue
		}

		branch := -1
		frac := 0.0
		for i, v := range res.X {
			f := math.Abs(v - math.Round(v))
			if f > intTol && f > frac {
				frac = f
				branch = i
			}
		}
		if branch < 0 {
			x := make([]float64, varCount)
			for i, v := range res.X {
				x[i] = math.Round(v)
			}
			best = x
			bestObj = res.Fun
			continue
		}

		downUB := append([]float64(nil), nd.ub...)
		downUB[branch] = 0
		upLB := append([]float64(nil), nd.lb...)
		upLB[branch] = 1
		stack = append(stack, node{lb: nd.lb, ub: downUB}, node{lb: upLB, ub: nd.ub})
	}

	if best != nil && !truncated {
		return Solution{Status: StatusOptimal, Obj: bestObj, X: best}, nil
	}
	if truncated {
		// A found incumbent without a fully explored tree is not proven
		// optimal; report it as indeterminate, not as a solution.
		return Solution{Status: StatusIndeterminate}, nil
	}
	return Solution{Status: StatusInfeasible}, nil
}

func denseRows(model *Model) (aub [][]float64, bub []float64, aeq [][]float64, beq []float64) {
	varCount := model.VarCount()
	for _, c := range model.Constrs {
		row := make([]float64, varCount)
		for pos, ind := range c.Ind {
			row[ind] += c.Val[pos]
		}
		switch c.Sense {
		case SenseEQ:
			aeq = append(aeq, row)
			beq = append(beq, c.RHS)
		case SenseGE:
			for i := range row {
				row[i] = -row[i]
			}
			aub = append(aub, row)
			bub = append(bub, -c.RHS)
		default:
			aub = append(aub, row)
			bub = append(bub, c.RHS)
		}
	}
	return aub, bub, aeq, beq
}
