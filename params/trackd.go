package params

import (
	"os"
	"path/filepath"
)

var DatadirRoot = func() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".trackd")
}()

// BenchEpsilonDefaults is the default epsilon sweep for `trackd bench`.
// Spans "keep nearly everything" to "keep only the coarse shape".
var BenchEpsilonDefaults = []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001}
