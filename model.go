package cargo

import (
	"fmt"
	"math"
)

// BuildModel translates the client table and the fleet parameters into the
// binary program. One variable Y_i_j_k per (truck i, center j, client k);
// per client one equality row forcing exactly one active variable and one
// row bounding the realized transport cost by the client's budget. The
// builder never mutates its inputs and is deterministic.
func BuildModel(clients []Client, fleet FleetConfig) (*Model, error) {
	if err := fleet.Validate(); err != nil {
		return nil, err
	}
	p := len(fleet.TruckTypes)
	m := fleet.Centers
	n := len(clients)

	for k := range clients {
		c := &clients[k]
		if len(c.Distances) != m {
			return nil, fmt.Errorf("%w: client %d has %d distance entries, want %d",
				ErrInputMalformed, c.ID, len(c.Distances), m)
		}
		if !finiteNonNeg(c.Budget) {
			return nil, fmt.Errorf("%w: client %d has invalid budget %v", ErrInputMalformed, c.ID, c.Budget)
		}
		if !finiteNonNeg(c.Rate) {
			return nil, fmt.Errorf("%w: client %d has invalid deterioration rate %v", ErrInputMalformed, c.ID, c.Rate)
		}
		for j, d := range c.Distances {
			if !finiteNonNeg(d) {
				return nil, fmt.Errorf("%w: client %d has invalid distance %v to center %d",
					ErrInputMalformed, c.ID, d, j+1)
			}
		}
	}

	varCount := p * m * n
	objFun := make([]float64, varCount)
	varNames := make([]string, varCount)
	for i := 0; i < p; i++ {
		for j := 0; j < m; j++ {
			for k := 0; k < n; k++ {
				idx := VarIndex(i, j, k, m, n)
				varNames[idx] = fmt.Sprintf("Y_%d_%d_%d", i, j, k)
				// Deterioration depends on the distance driven, not on the
				// truck type. The truck axis is steered by the budget rows
				// alone.
				objFun[idx] = clients[k].Rate * clients[k].Distances[j]
			}
		}
	}

	model := &Model{
		NumTrucks:  p,
		NumCenters: m,
		NumClients: n,
		Obj:        objFun,
		VarNames:   varNames,
	}

	// Constraints (1): sum over the p*m block of client k equals 1.
	for k := 0; k < n; k++ {
		ind := make([]int32, 0, p*m)
		val := make([]float64, 0, p*m)
		for i := 0; i < p; i++ {
			for j := 0; j < m; j++ {
				ind = append(ind, int32(VarIndex(i, j, k, m, n)))
				val = append(val, 1.0)
			}
		}
		model.Constrs = append(model.Constrs, LinConstr{
			Ind: ind, Val: val, Sense: SenseEQ, RHS: 1.0,
			Name: fmt.Sprintf("assign_%d", clients[k].ID),
		})
	}

	// Constraints (2): realized transport cost of client k stays within the
	// budget. The lower bound 0 is implied by the binary variable bounds.
	for k := 0; k < n; k++ {
		ind := make([]int32, 0, p*m)
		val := make([]float64, 0, p*m)
		for i := 0; i < p; i++ {
			for j := 0; j < m; j++ {
				ind = append(ind, int32(VarIndex(i, j, k, m, n)))
				val = append(val, fleet.TruckTypes[i].CostPerKm*clients[k].Distances[j])
			}
		}
		model.Constrs = append(model.Constrs, LinConstr{
			Ind: ind, Val: val, Sense: SenseLE, RHS: clients[k].Budget,
			Name: fmt.Sprintf("budget_%d", clients[k].ID),
		})
	}

	return model, nil
}

func finiteNonNeg(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
