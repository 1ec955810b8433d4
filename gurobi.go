/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */
/* Copyright 2021, Gurobi Optimization, LLC */

package cargo

import (
	"fmt"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

// GurobiOracle solves the model through the gorobi bindings. Construction
// fails with ErrOracleUnavailable when no environment (installation or
// license) can be loaded.
type GurobiOracle struct {
	env *gurobi.Env
}

func NewGurobiOracle(logFile string) (*GurobiOracle, error) {
	env, err := gurobi.LoadEnv(logFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOracleUnavailable, err.Error())
	}
	return &GurobiOracle{env: env}, nil
}

func (g *GurobiOracle) Free() {
	g.env.Free()
}

func (g *GurobiOracle) Solve(model *Model) (Solution, error) {
	varCount := model.VarCount()
	if varCount == 0 {
		// Empty table: trivially optimal with an empty objective.
		return Solution{Status: StatusOptimal}, nil
	}

	varType := make([]int8, varCount)
	for i := range varType {
		varType[i] = gurobi.BINARY
	}
	gmodel, err := g.env.NewModel("cargo", int32(varCount), model.Obj, nil, nil, varType, model.VarNames)
	if err != nil {
		return Solution{}, err
	}

	err = gmodel.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MINIMIZE)
	if err != nil {
		return Solution{}, err
	}

	for _, c := range model.Constrs {
		var sense int8
		switch c.Sense {
		case SenseEQ:
			sense = gurobi.EQUAL
		case SenseGE:
			sense = gurobi.GREATER_EQUAL
		default:
			sense = gurobi.LESS_EQUAL
		}
		err = gmodel.AddConstr(c.Ind, c.Val, sense, c.RHS, c.Name)
		if err != nil {
			return Solution{}, fmt.Errorf("adding constraint %s: %w", c.Name, err)
		}
	}

	err = gmodel.Optimize()
	if err != nil {
		return Solution{}, err
	}

	optimstatus, err := gmodel.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		return Solution{}, fmt.Errorf("couldn't retrieve optimization status: %w", err)
	}

	sol := Solution{Status: StatusIndeterminate}
	switch optimstatus {
	case gurobi.OPTIMAL:
		sol.Status = StatusOptimal
	case gurobi.INFEASIBLE, gurobi.INF_OR_UNBD:
		sol.Status = StatusInfeasible
	}
	if sol.Status != StatusOptimal {
		return sol, nil
	}

	sol.Obj, err = gmodel.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
	if err != nil {
		return Solution{}, fmt.Errorf("couldn't retrieve the obj-value: %w", err)
	}
	sol.X, err = gmodel.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(varCount))
	if err != nil {
		return Solution{}, fmt.Errorf("couldn't retrieve the variable values: %w", err)
	}
	return sol, nil
}
