package cargo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClientHeader is the required column set of the input table for m centers.
func ClientHeader(m int) []string {
	header := []string{"id", "budget", "deterioration_rate"}
	for j := 1; j <= m; j++ {
		header = append(header, fmt.Sprintf("distance_%d", j))
	}
	return header
}

// LoadClients reads the client table from a CSV file. Every field is parsed
// strictly into its declared type; a missing file, a wrong header, a short
// row or an unparsable field aborts with the offending record, nothing is
// silently defaulted.
func LoadClients(path string, centers int) ([]Client, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	return ParseClients(f, centers)
}

func ParseClients(r io.Reader, centers int) ([]Client, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputMalformed, err.Error())
	}
	if len(records) == 0 {
		return nil, &InputError{Line: 1, Msg: "missing header row"}
	}

	want := ClientHeader(centers)
	got := records[0]
	if len(got) != len(want) {
		return nil, &InputError{Line: 1, Msg: fmt.Sprintf("header has %d columns, want %d", len(got), len(want))}
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != want[i] {
			return nil, &InputError{Line: 1, Msg: fmt.Sprintf("column %d is %q, want %q", i+1, got[i], want[i])}
		}
	}

	clients := make([]Client, 0, len(records)-1)
	seen := make(map[int]bool)
	for r, rec := range records[1:] {
		line := r + 2
		if len(rec) != len(want) {
			return nil, &InputError{Line: line, Msg: fmt.Sprintf("row has %d columns, want %d", len(rec), len(want))}
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, &InputError{Line: line, Field: "id", Msg: fmt.Sprintf("cannot parse %q as integer", rec[0])}
		}
		if seen[id] {
			return nil, &InputError{Line: line, Field: "id", Msg: fmt.Sprintf("duplicate client id %d", id)}
		}
		seen[id] = true

		budget, err := parseNonNeg(line, "budget", rec[1])
		if err != nil {
			return nil, err
		}
		rate, err := parseNonNeg(line, "deterioration_rate", rec[2])
		if err != nil {
			return nil, err
		}
		distances := make([]float64, centers)
		for j := 0; j < centers; j++ {
			d, err := parseNonNeg(line, want[3+j], rec[3+j])
			if err != nil {
				return nil, err
			}
			distances[j] = d
		}
		clients = append(clients, Client{ID: id, Budget: budget, Rate: rate, Distances: distances})
	}
	return clients, nil
}

func parseNonNeg(line int, field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &InputError{Line: line, Field: field, Msg: fmt.Sprintf("cannot parse %q as number", raw)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, &InputError{Line: line, Field: field, Msg: fmt.Sprintf("%v is not a finite non-negative number", v)}
	}
	return v, nil
}

// DefaultFleet is the standard configuration the tools fall back to: two
// truck types at 0.5 and 0.7 per km and five destination centers.
func DefaultFleet() FleetConfig {
	return FleetConfig{
		TruckTypes: []TruckType{{CostPerKm: 0.5}, {CostPerKm: 0.7}},
		Centers:    5,
	}
}

func LoadFleetConfig(path string) (FleetConfig, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return FleetConfig{}, fmt.Errorf("reading fleet config: %w", err)
	}
	var cfg FleetConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return FleetConfig{}, fmt.Errorf("parsing fleet config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FleetConfig{}, err
	}
	return cfg, nil
}

func (f FleetConfig) Validate() error {
	if len(f.TruckTypes) == 0 {
		return errors.New("fleet config needs at least one truck type")
	}
	if f.Centers < 1 {
		return fmt.Errorf("fleet config needs at least one center, got %d", f.Centers)
	}
	for i, t := range f.TruckTypes {
		if math.IsNaN(t.CostPerKm) || math.IsInf(t.CostPerKm, 0) || t.CostPerKm <= 0 {
			return fmt.Errorf("truck type %d has invalid cost per km %v", i+1, t.CostPerKm)
		}
	}
	return nil
}
