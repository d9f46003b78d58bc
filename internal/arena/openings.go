package arena

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

func getOpenings() []string {
	var result []string
	var lines = strings.Split(openingsTxt, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}

// parseOpening plays a SAN move list from the initial position and returns the FEN reached.
func parseOpening(opening string) (string, error) {
	var b = common.NewBoard()
	for _, token := range strings.Fields(opening) {
		if strings.HasSuffix(token, ".") {
			continue
		}
		if err := b.MakeMoveSAN(token); err != nil {
			return "", fmt.Errorf("opening %q: %w", opening, err)
		}
	}
	return b.String(), nil
}

func shuffleOpenings(openings []string, seed uint64) []string {
	var result = append([]string(nil), openings...)
	if seed == 0 {
		return result
	}
	var r = rand.New(rand.NewSource(seed))
	r.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
