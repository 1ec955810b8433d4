package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"git.solver4all.com/azaryc2s/cargo"
)

var clientCounts cargo.ArrayIntFlags
var name *string
var output *string
var count *int
var centers *int
var budgetFrom *int
var budgetTo *int
var rateTo *float64
var distFrom *int
var distTo *int
var infeasible *bool

func main() {
	flag.Var(&clientCounts, "n", "List of client counts to generate tables for")
	name = flag.String("name", "zarychta", "Name for the instance")
	output = flag.String("outputDir", ".", "Output directory")
	count = flag.Int("count", 1, "Number of tables per client count")
	centers = flag.Int("centers", 5, "Number of destination centers (distance columns)")
	budgetFrom = flag.Int("budgetFrom", 20, "The lowest generated budget")
	budgetTo = flag.Int("budgetTo", 200, "The highest added value for the budget (actual max is from+to-1)")
	rateTo = flag.Float64("rateTo", 0.5, "The highest generated deterioration rate")
	distFrom = flag.Int("distFrom", 50, "The lowest generated distance")
	distTo = flag.Int("distTo", 450, "The highest added value for distances (actual max is from+to-1)")
	infeasible = flag.Bool("infeasible", false, "Inject one client whose budget cannot cover any route")

	flag.Parse()

	if len(clientCounts) == 0 {
		clientCounts = cargo.ArrayIntFlags{4}
	}

	for l := 0; l < *count; l++ {
		rand.Seed(time.Now().UnixNano())
		for i := 0; i < len(clientCounts); i++ {
			n := clientCounts[i]
			instName := fmt.Sprintf("%s_%d_%d", *name, n, l)
			rows := [][]string{cargo.ClientHeader(*centers)}
			for k := 0; k < n; k++ {
				budget := float64(*budgetFrom + rand.Intn(*budgetTo))
				rate := rand.Float64() * *rateTo
				if *infeasible && k == 0 {
					// Cheaper than every candidate route cost, so the whole
					// model has to come out infeasible.
					budget = float64(*distFrom) * 0.1
				}
				row := []string{
					strconv.Itoa(k + 1),
					strconv.FormatFloat(budget, 'f', 2, 64),
					strconv.FormatFloat(rate, 'f', 4, 64),
				}
				for j := 0; j < *centers; j++ {
					d := *distFrom + rand.Intn(*distTo)
					row = append(row, strconv.Itoa(d))
				}
				rows = append(rows, row)
			}

			fileName := fmt.Sprintf("%s/%s.csv", *output, instName)
			f, err := os.Create(fileName)
			if err != nil {
				log.Fatal(err)
			}
			w := csv.NewWriter(f)
			err = w.WriteAll(rows)
			if err != nil {
				log.Fatal(err)
			}
			err = f.Close()
			if err != nil {
				log.Fatal(err)
			}
		}
	}
}
