package cargo

const (
	StatusOptimal       = "OPTIMAL"
	StatusInfeasible    = "INFEASIBLE"
	StatusIndeterminate = "OTHER"

	OracleGurobi      = "GRB"
	OracleBranchBound = "BB"
)

// Row senses of the intermediate form, using the single-character
// convention MILP backends use.
const (
	SenseLE int8 = '<'
	SenseEQ int8 = '='
	SenseGE int8 = '>'
)

// Client is one row of the input table. Distances holds one entry per
// destination center, in column order.
type Client struct {
	ID        int       `json:"id"`
	Budget    float64   `json:"budget"`
	Rate      float64   `json:"deterioration_rate"`
	Distances []float64 `json:"distances"`
}

// TruckType is static fleet configuration, never derived from client data.
type TruckType struct {
	CostPerKm float64 `yaml:"cost_per_km" json:"cost_per_km"`
}

type FleetConfig struct {
	TruckTypes []TruckType `yaml:"truck_types" json:"truck_types"`
	Centers    int         `yaml:"centers" json:"centers"`
}

// LinConstr is one linear row of the model.
type LinConstr struct {
	Ind   []int32
	Val   []float64
	Sense int8
	RHS   float64
	Name  string
}

// Model is the solver-agnostic form of the 0/1 program. Every variable is
// binary and the objective is minimized. Variables live in a flat array
// addressed by VarIndex over the (truck, center, client) lattice.
type Model struct {
	NumTrucks  int
	NumCenters int
	NumClients int

	Obj      []float64
	VarNames []string
	Constrs  []LinConstr
}

func (m *Model) VarCount() int {
	return m.NumTrucks * m.NumCenters * m.NumClients
}

// Solution is what an oracle hands back. X is only set for StatusOptimal
// and then assigns every variable a value in {0,1} up to solver noise.
type Solution struct {
	Status string    `json:"status"`
	Obj    float64   `json:"obj"`
	X      []float64 `json:"-"`
}

// Assignment is one client's chosen route. Truck and Center are 1-based,
// matching the truck list position and the distance_j input column.
type Assignment struct {
	ClientID      int     `json:"client_id"`
	Truck         int     `json:"truck"`
	Center        int     `json:"center"`
	Budget        float64 `json:"budget"`
	Cost          float64 `json:"cost"`
	Deterioration float64 `json:"deterioration"`
}

// Allocation is the interpreted business-level result of an optimal solve.
type Allocation struct {
	Assignments        []Assignment `json:"assignments"`
	TotalCost          float64      `json:"total_cost"`
	TotalDeterioration float64      `json:"total_deterioration"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

type AllocationReport struct {
	RunID              string       `json:"run_id"`
	Status             string       `json:"status"`
	Assignments        []Assignment `json:"assignments,omitempty"`
	TotalCost          float64      `json:"total_cost"`
	TotalDeterioration float64      `json:"total_deterioration"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}
