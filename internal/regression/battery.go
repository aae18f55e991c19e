// Package regression runs YAML-defined batteries of battle logs against the
// renderer and compares the narrative with what each case expects.
// Batteries let template authors check an overlay against known battles.
package regression

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"battletext/internal/logging"
	"battletext/internal/narrator"
	"battletext/internal/templates"
)

// slowCase is the per-case budget before a battery run is logged as slow.
const slowCase = 100 * time.Millisecond

// Battery is a collection of regression cases.
type Battery struct {
	Version int    `yaml:"version"`
	Cases   []Case `yaml:"cases"`
	// FailFast stops at the first failing case.
	FailFast bool `yaml:"fail_fast,omitempty"`
}

// Case is a single battle log with its expected narrative.
// Supported types: "exact" (the default) and "contains".
type Case struct {
	ID          string   `yaml:"id"`
	Type        string   `yaml:"type,omitempty"`
	Perspective int      `yaml:"perspective,omitempty"` // 0 or 1
	Generation  int      `yaml:"generation,omitempty"`
	Log         string   `yaml:"log"`
	Want        string   `yaml:"want,omitempty"`
	Contains    []string `yaml:"contains,omitempty"`
}

// Result captures the outcome for a case.
type Result struct {
	CaseID     string
	Success    bool
	Output     string
	Error      string
	DurationMs int64
}

// LoadBattery reads a YAML battery file from disk.
func LoadBattery(path string) (*Battery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Battery
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse battery YAML: %w", err)
	}
	return &b, nil
}

// RunBattery renders every case with a fresh renderer over store.
// It returns early only when ctx is cancelled.
func RunBattery(ctx context.Context, store *templates.Store, b *Battery) ([]Result, error) {
	if b == nil || len(b.Cases) == 0 {
		return nil, nil
	}

	timer := logging.StartTimer(logging.CategoryCLI, "RunBattery")
	defer timer.StopWithThreshold(time.Duration(len(b.Cases)) * slowCase)

	results := make([]Result, 0, len(b.Cases))
	for _, c := range b.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := time.Now()
		res := runCase(store, c)
		res.DurationMs = time.Since(start).Milliseconds()
		results = append(results, res)

		if !res.Success {
			logging.Get(logging.CategoryCLI).Warn("battery case %s failed: %s", c.ID, res.Error)
			if b.FailFast {
				break
			}
		}
	}

	return results, nil
}

func runCase(store *templates.Store, c Case) Result {
	res := Result{CaseID: c.ID}

	if c.Perspective != 0 && c.Perspective != 1 {
		res.Error = fmt.Sprintf("invalid perspective: %d", c.Perspective)
		return res
	}
	opts := []narrator.Option{narrator.WithRunID("battery-" + c.ID)}
	if c.Generation > 0 {
		opts = append(opts, narrator.WithGeneration(c.Generation))
	}
	r := narrator.New(store, narrator.Side(c.Perspective), opts...)
	res.Output = r.Consume(c.Log)

	switch t := strings.ToLower(strings.TrimSpace(c.Type)); t {
	case "", "exact":
		if diff := cmp.Diff(c.Want, res.Output); diff != "" {
			res.Error = fmt.Sprintf("narrative mismatch (-want +got):\n%s", diff)
			return res
		}
	case "contains":
		for _, want := range c.Contains {
			if !strings.Contains(res.Output, want) {
				res.Error = fmt.Sprintf("narrative does not contain %q", want)
				return res
			}
		}
	default:
		res.Error = fmt.Sprintf("unsupported case type: %s", c.Type)
		return res
	}

	res.Success = true
	return res
}

// Failed counts unsuccessful results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}

// DefaultBatteryPath returns the canonical battery path for a project.
func DefaultBatteryPath(workspace string) string {
	return filepath.Join(workspace, ".battletext", "regression", "battery.yaml")
}
