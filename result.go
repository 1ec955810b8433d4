package cargo

import (
	"fmt"
	"math"
)

// Values above this count as an active binary variable; the slack absorbs
// floating point noise in solver output.
const activeThreshold = 0.5

const objTolerance = 1e-6

// Interpret reconstructs the per-client route choices from an OPTIMAL
// variable assignment. Cost and deterioration are recomputed from the raw
// client and fleet data rather than taken from the solver, so the report
// can be verified against the input table. Exactly one variable per client
// block must be active; zero or several indicate a modeling or solver bug
// and are surfaced, never resolved by first match.
func Interpret(clients []Client, fleet FleetConfig, sol Solution) (*Allocation, error) {
	if sol.Status != StatusOptimal {
		return nil, fmt.Errorf("cannot interpret a %s solution", sol.Status)
	}
	p := len(fleet.TruckTypes)
	m := fleet.Centers
	n := len(clients)
	if len(sol.X) != p*m*n {
		return nil, fmt.Errorf("%w: solution has %d variable values, model has %d",
			ErrAssignmentInvariant, len(sol.X), p*m*n)
	}

	alloc := &Allocation{Assignments: make([]Assignment, 0, n)}
	for k := 0; k < n; k++ {
		c := clients[k]
		active := 0
		truck, center := -1, -1
		for i := 0; i < p; i++ {
			for j := 0; j < m; j++ {
				if sol.X[VarIndex(i, j, k, m, n)] > activeThreshold {
					active++
					truck, center = i, j
				}
			}
		}
		if active != 1 {
			return nil, fmt.Errorf("%w: client %d has %d active variables, want exactly 1",
				ErrAssignmentInvariant, c.ID, active)
		}

		cost := fleet.TruckTypes[truck].CostPerKm * c.Distances[center]
		det := c.Rate * c.Distances[center]
		alloc.Assignments = append(alloc.Assignments, Assignment{
			ClientID:      c.ID,
			Truck:         truck + 1,
			Center:        center + 1,
			Budget:        c.Budget,
			Cost:          cost,
			Deterioration: det,
		})
		alloc.TotalCost += cost
		alloc.TotalDeterioration += det
	}

	// The recomputed deterioration must match the oracle's objective. A gap
	// beyond numerical tolerance means model and report disagree.
	if diff := math.Abs(alloc.TotalDeterioration - sol.Obj); diff > objTolerance*(1+math.Abs(sol.Obj)) {
		return nil, fmt.Errorf("%w: recomputed total deterioration %v, oracle objective %v",
			ErrObjectiveMismatch, alloc.TotalDeterioration, sol.Obj)
	}

	return alloc, nil
}

// CheckReportValidity re-verifies an allocation report against itself: one
// entry per client, every cost within its budget and totals matching the
// entry sums.
func CheckReportValidity(rep *AllocationReport) (bool, string) {
	if rep.Status != StatusOptimal {
		return true, ""
	}
	seen := make(map[int]bool)
	sumCost := 0.0
	sumDet := 0.0
	for _, a := range rep.Assignments {
		if seen[a.ClientID] {
			return false, fmt.Sprintf("client %d appears more than once", a.ClientID)
		}
		seen[a.ClientID] = true
		if a.Cost > a.Budget+objTolerance {
			return false, fmt.Sprintf("client %d pays %.4f but only has %.4f", a.ClientID, a.Cost, a.Budget)
		}
		sumCost += a.Cost
		sumDet += a.Deterioration
	}
	if math.Abs(sumCost-rep.TotalCost) > objTolerance*(1+math.Abs(rep.TotalCost)) {
		return false, fmt.Sprintf("total cost is %.4f but the entries sum to %.4f", rep.TotalCost, sumCost)
	}
	if math.Abs(sumDet-rep.TotalDeterioration) > objTolerance*(1+math.Abs(rep.TotalDeterioration)) {
		return false, fmt.Sprintf("total deterioration is %.4f but the entries sum to %.4f", rep.TotalDeterioration, sumDet)
	}
	return true, ""
}
