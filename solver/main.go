/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/cargo"
)

var (
	inputF  *string
	fleetF  *string
	outputF *string
	oracleF *string
	logLvl  *int
)

func main() {
	inputF = flag.String("input", "clients.csv", "Path to the client table")
	fleetF = flag.String("fleet", "", "Path to the fleet configuration. By default 2 truck types (0.5, 0.7 per km) and 5 centers are used")
	outputF = flag.String("output", "", "Path to the report file. By default derived from the input file name")
	oracleF = flag.String("oracle", cargo.OracleBranchBound, "Solver backend to use. GRB|BB")
	logLvl = flag.Int("log", 2, "Level of the logging output. Higher value is more verbose. Range 1-4")

	flag.Parse()

	cargo.InitLoggers(*logLvl)

	fleet := cargo.DefaultFleet()
	if *fleetF != "" {
		var err error
		fleet, err = cargo.LoadFleetConfig(*fleetF)
		if err != nil {
			cargo.Log(1, "At %s: %s\n", *fleetF, err.Error())
			os.Exit(2)
		}
	}

	clients, err := cargo.LoadClients(*inputF, fleet.Centers)
	if err != nil {
		cargo.Log(1, "At %s: %s\n", *inputF, err.Error())
		if errors.Is(err, cargo.ErrInputNotFound) {
			os.Exit(2)
		}
		os.Exit(3)
	}

	model, err := cargo.BuildModel(clients, fleet)
	if err != nil {
		cargo.Log(1, "At %s: %s\n", *inputF, err.Error())
		os.Exit(3)
	}
	cargo.Log(2, "Built a model with %d variables and %d constraints for %d clients\n",
		model.VarCount(), len(model.Constrs), len(clients))

	var oracle cargo.Oracle
	switch *oracleF {
	case cargo.OracleGurobi:
		grb, err := cargo.NewGurobiOracle("cargo_gurobi.log")
		if err != nil {
			cargo.Log(1, "%s\n", err.Error())
			os.Exit(4)
		}
		defer grb.Free()
		oracle = grb
	case cargo.OracleBranchBound:
		oracle = cargo.NewBranchBoundOracle()
	default:
		cargo.Log(1, "Unsupported oracle: %s\n", *oracleF)
		os.Exit(2)
	}

	rep := cargo.NewReport(fmt.Sprintf("Solver-Settings: Oracle=%s, Trucks=%d, Centers=%d",
		*oracleF, len(fleet.TruckTypes), fleet.Centers))

	startTime := time.Now()
	sol, err := oracle.Solve(model)
	rep.Time = time.Since(startTime).String()
	if err != nil {
		cargo.Log(1, "At %s: %s\n", *inputF, err.Error())
		os.Exit(4)
	}
	cargo.Log(2, "\n---OPTIMIZATION DONE---\n")
	rep.Status = sol.Status

	switch sol.Status {
	case cargo.StatusOptimal:
		alloc, err := cargo.Interpret(clients, fleet, sol)
		if err != nil {
			cargo.Log(1, "At %s: %s\n", *inputF, err.Error())
			os.Exit(5)
		}
		rep.Assignments = alloc.Assignments
		rep.TotalCost = alloc.TotalCost
		rep.TotalDeterioration = alloc.TotalDeterioration

		repValid, validComment := cargo.CheckReportValidity(&rep)
		if !repValid {
			cargo.Log(1, "%s\n", validComment)
			os.Exit(5)
		}
		cargo.Log(1, "The computed allocation is valid!\n")
		cargo.Log(2, "Found an allocation with total deterioration %.2f and total cost %.2f\n",
			rep.TotalDeterioration, rep.TotalCost)
		cargo.Log(2, "%s", cargo.PrintAssignments(rep.Assignments))
	case cargo.StatusInfeasible:
		cargo.Log(1, "No allocation satisfies every budget. Reporting infeasible.\n")
	default:
		cargo.Log(1, "The oracle stopped without proving optimality or infeasibility.\n")
	}

	fileName := *outputF
	if fileName == "" {
		fileName = strings.TrimSuffix(*inputF, ".csv") + "_report.json"
	}
	err = cargo.WriteReport(fileName, &rep)
	if err != nil {
		cargo.Log(1, "At %s: %s\n", fileName, err.Error())
		os.Exit(3)
	}
	cargo.Log(2, "Wrote the report to %s\n", fileName)
}
