package cargo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// VarIndex maps the (truck i, center j, client k) triple onto the flat
// variable array of a model with m centers and n clients.
func VarIndex(i, j, k, m, n int) int {
	return i*(m*n) + j*n + k
}

// VarTriple is the inverse of VarIndex.
func VarTriple(idx, m, n int) (i, j, k int) {
	i = idx / (m * n)
	rest := idx % (m * n)
	j = rest / n
	k = rest % n
	return i, j, k
}

type ArrayStringFlags []string

func (a *ArrayStringFlags) String() string {
	return strings.Join(*a, ",")
}

func (a *ArrayStringFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

type ArrayIntFlags []int

func (a *ArrayIntFlags) String() string {
	parts := make([]string, len(*a))
	for i, v := range *a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (a *ArrayIntFlags) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*a = append(*a, v)
	return nil
}

func PrintAssignments(assignments []Assignment) string {
	res := ""
	for _, a := range assignments {
		res += fmt.Sprintf("client %d: truck %d -> center %d (cost %.2f, deterioration %.2f)\n",
			a.ClientID, a.Truck, a.Center, a.Cost, a.Deterioration)
	}
	return res
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
