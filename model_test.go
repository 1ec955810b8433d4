package cargo

import (
	"errors"
	"math"
	"testing"
)

// exampleClients is the standard 4-client table used across the package
// tests: m=5 distance columns, solved against DefaultFleet.
func exampleClients() []Client {
	return []Client{
		{ID: 1, Budget: 100, Rate: 0.2, Distances: []float64{150, 200, 80, 300, 500}},
		{ID: 2, Budget: 30, Rate: 0.1, Distances: []float64{120, 90, 200, 60, 150}},
		{ID: 3, Budget: 80, Rate: 0.15, Distances: []float64{90, 110, 150, 250, 400}},
		{ID: 4, Budget: 55, Rate: 0.3, Distances: []float64{500, 400, 300, 200, 100}},
	}
}

func TestBuildModelDimensions(t *testing.T) {
	clients := exampleClients()
	fleet := DefaultFleet()

	model, err := BuildModel(clients, fleet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := model.VarCount(), 2*5*4; got != want {
		t.Errorf("VarCount = %d, want %d", got, want)
	}
	if got, want := len(model.Obj), model.VarCount(); got != want {
		t.Errorf("len(Obj) = %d, want %d", got, want)
	}
	if got, want := len(model.Constrs), 2*len(clients); got != want {
		t.Errorf("len(Constrs) = %d, want %d", got, want)
	}
	for idx, name := range model.VarNames {
		if name == "" {
			t.Errorf("variable %d has no name", idx)
		}
	}
}

func TestBuildModelObjectiveIgnoresTruckAxis(t *testing.T) {
	clients := exampleClients()
	fleet := DefaultFleet()
	m := fleet.Centers
	n := len(clients)

	model, err := BuildModel(clients, fleet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for j := 0; j < m; j++ {
		for k := 0; k < n; k++ {
			want := clients[k].Rate * clients[k].Distances[j]
			for i := 0; i < len(fleet.TruckTypes); i++ {
				got := model.Obj[VarIndex(i, j, k, m, n)]
				if got != want {
					t.Errorf("Obj[Y_%d_%d_%d] = %v, want %v", i, j, k, got, want)
				}
			}
		}
	}
}

func TestBuildModelConstraintRows(t *testing.T) {
	clients := exampleClients()
	fleet := DefaultFleet()
	m := fleet.Centers
	n := len(clients)
	blockSize := len(fleet.TruckTypes) * m

	model, err := BuildModel(clients, fleet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// assignment rows first, budget rows after, one of each per client
	for k := 0; k < n; k++ {
		assign := model.Constrs[k]
		if assign.Sense != SenseEQ || assign.RHS != 1.0 {
			t.Errorf("assignment row %d: sense %c rhs %v, want = 1", k, assign.Sense, assign.RHS)
		}
		if len(assign.Ind) != blockSize {
			t.Errorf("assignment row %d touches %d variables, want %d", k, len(assign.Ind), blockSize)
		}
		for _, v := range assign.Val {
			if v != 1.0 {
				t.Errorf("assignment row %d has coefficient %v, want 1", k, v)
			}
		}

		budget := model.Constrs[n+k]
		if budget.Sense != SenseLE || budget.RHS != clients[k].Budget {
			t.Errorf("budget row %d: sense %c rhs %v, want <= %v", k, budget.Sense, budget.RHS, clients[k].Budget)
		}
		for pos, ind := range budget.Ind {
			i, j, kk := VarTriple(int(ind), m, n)
			if kk != k {
				t.Fatalf("budget row %d touches variable of client %d", k, kk)
			}
			want := fleet.TruckTypes[i].CostPerKm * clients[k].Distances[j]
			if budget.Val[pos] != want {
				t.Errorf("budget row %d coefficient for Y_%d_%d_%d = %v, want %v", k, i, j, kk, budget.Val[pos], want)
			}
		}
	}
}

func TestBuildModelEmptyTable(t *testing.T) {
	model, err := BuildModel(nil, DefaultFleet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.VarCount() != 0 {
		t.Errorf("VarCount = %d, want 0", model.VarCount())
	}
	if len(model.Constrs) != 0 {
		t.Errorf("len(Constrs) = %d, want 0", len(model.Constrs))
	}
}

func TestBuildModelRejectsBadInput(t *testing.T) {
	fleet := DefaultFleet()
	cases := []struct {
		name   string
		client Client
	}{
		{"short distance vector", Client{ID: 1, Budget: 10, Rate: 0.1, Distances: []float64{1, 2, 3}}},
		{"nan budget", Client{ID: 1, Budget: math.NaN(), Rate: 0.1, Distances: []float64{1, 2, 3, 4, 5}}},
		{"negative rate", Client{ID: 1, Budget: 10, Rate: -0.1, Distances: []float64{1, 2, 3, 4, 5}}},
		{"infinite distance", Client{ID: 1, Budget: 10, Rate: 0.1, Distances: []float64{1, 2, math.Inf(1), 4, 5}}},
	}
	for _, tc := range cases {
		_, err := BuildModel([]Client{tc.client}, fleet)
		if !errors.Is(err, ErrInputMalformed) {
			t.Errorf("%s: error = %v, want ErrInputMalformed", tc.name, err)
		}
	}
}

func TestBuildModelDoesNotMutateInputs(t *testing.T) {
	clients := exampleClients()
	before := exampleClients()
	fleet := DefaultFleet()

	if _, err := BuildModel(clients, fleet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := range clients {
		if clients[k].ID != before[k].ID || clients[k].Budget != before[k].Budget || clients[k].Rate != before[k].Rate {
			t.Fatalf("client %d was mutated", before[k].ID)
		}
		for j := range clients[k].Distances {
			if clients[k].Distances[j] != before[k].Distances[j] {
				t.Fatalf("client %d distances were mutated", before[k].ID)
			}
		}
	}
}
