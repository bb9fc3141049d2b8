// Package runner executes batches of puzzle cases through the registry.
package runner

import (
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/kiereneinar/windowscan/registry"
)

// Result is the outcome of one case. Exactly one of Output and Error is
// meaningful.
type Result struct {
	Case    string `yaml:"case" json:"case"`
	Problem string `yaml:"problem" json:"problem"`
	Output  any    `yaml:"output" json:"output"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
}

func (r Result) Failed() bool {
	return r.Error != ""
}

type Runner struct {
	registry *registry.Registry
	logger   *zap.Logger
}

func New(reg *registry.Registry, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: reg, logger: logger}
}

// Run solves every case in order. A failing case is reported in its Result
// and does not stop the batch.
func (r *Runner) Run(cases []Case) []Result {
	runID := xid.New().String()
	logger := r.logger.With(zap.String("run", runID))
	start := time.Now()

	results := make([]Result, 0, len(cases))
	failed := 0
	for i := range cases {
		c := &cases[i]
		res := Result{Case: c.Name, Problem: c.Problem}

		out, err := r.registry.Solve(c.Problem, &c.Args)
		if err != nil {
			failed++
			res.Error = err.Error()
			logger.Warn("Case failed",
				zap.String("case", c.Name),
				zap.String("problem", c.Problem),
				zap.Error(err))
		} else {
			res.Output = out
			logger.Debug("Case solved",
				zap.String("case", c.Name),
				zap.String("problem", c.Problem),
				zap.Any("output", out))
		}
		results = append(results, res)
	}

	logger.Info("Run finished",
		zap.Int("cases", len(cases)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))
	return results
}
