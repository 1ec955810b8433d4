package cargo

// Oracle is the solve contract. A backend receives the full model once and
// reports OPTIMAL with a value for every variable, INFEASIBLE when no
// assignment satisfies all rows, or OTHER when it stopped without proving
// either. The error return is reserved for backend faults (environment,
// licensing, numerical breakdown), never for infeasibility.
type Oracle interface {
	Solve(model *Model) (Solution, error)
}
