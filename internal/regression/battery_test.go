package regression

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"battletext/internal/templates"
)

func embeddedStore(t *testing.T) *templates.Store {
	t.Helper()
	s, err := templates.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	return s
}

func TestLoadBattery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "battery.yaml")
	content := `version: 1
cases:
  - id: turn
    log: "|turn|1\n"
    want: "== Turn 1 ==\n\n"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write battery: %v", err)
	}

	b, err := LoadBattery(path)
	if err != nil {
		t.Fatalf("LoadBattery failed: %v", err)
	}
	if b.Version != 1 {
		t.Fatalf("Version = %d, want 1", b.Version)
	}
	if len(b.Cases) != 1 || b.Cases[0].ID != "turn" {
		t.Fatalf("unexpected cases: %+v", b.Cases)
	}
}

func TestRunBatterySuccess(t *testing.T) {
	b := &Battery{
		Version: 1,
		Cases: []Case{
			{ID: "move", Log: "|move|p1a: Pikachu|Thunderbolt|p2a: Eevee\n", Want: "Pikachu used **Thunderbolt**!\n"},
			{ID: "opposing", Type: "contains", Perspective: 1, Log: "|move|p1a: Pikachu|Thunderbolt|p2a: Eevee\n", Contains: []string{"The opposing Pikachu"}},
		},
	}

	results, err := RunBattery(context.Background(), embeddedStore(t), b)
	if err != nil {
		t.Fatalf("RunBattery failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results len = %d, want 2", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("case %s failed: %s", r.CaseID, r.Error)
		}
	}
	if Failed(results) != 0 {
		t.Fatalf("Failed = %d, want 0", Failed(results))
	}
}

func TestRunBatteryMismatchReportsDiff(t *testing.T) {
	b := &Battery{
		Cases: []Case{
			{ID: "wrong", Log: "|turn|2\n", Want: "== Turn 1 ==\n\n"},
			{ID: "after", Log: "|turn|3\n", Want: "== Turn 3 ==\n\n"},
		},
	}

	results, err := RunBattery(context.Background(), embeddedStore(t), b)
	if err != nil {
		t.Fatalf("RunBattery failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected every case to run, got %d", len(results))
	}
	if results[0].Success {
		t.Fatalf("expected mismatch to fail")
	}
	if !strings.Contains(results[0].Error, "mismatch (-want +got)") {
		t.Fatalf("unexpected error: %s", results[0].Error)
	}
	if !results[1].Success {
		t.Fatalf("second case failed: %s", results[1].Error)
	}
	if Failed(results) != 1 {
		t.Fatalf("Failed = %d, want 1", Failed(results))
	}
}

func TestRunBatteryFailFast(t *testing.T) {
	b := &Battery{
		FailFast: true,
		Cases: []Case{
			{ID: "bad", Type: "unknown", Log: "|turn|1\n"},
			{ID: "after", Log: "|turn|1\n", Want: "== Turn 1 ==\n\n"},
		},
	}

	results, err := RunBattery(context.Background(), embeddedStore(t), b)
	if err != nil {
		t.Fatalf("RunBattery failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected fail-fast after first case, got %d", len(results))
	}
	if !strings.Contains(results[0].Error, "unsupported case type") {
		t.Fatalf("unexpected error: %s", results[0].Error)
	}
}

func TestRunBatteryInvalidPerspective(t *testing.T) {
	b := &Battery{Cases: []Case{{ID: "p3", Perspective: 3, Log: "|turn|1\n"}}}

	results, err := RunBattery(context.Background(), embeddedStore(t), b)
	if err != nil {
		t.Fatalf("RunBattery failed: %v", err)
	}
	if results[0].Success || !strings.Contains(results[0].Error, "invalid perspective") {
		t.Fatalf("unexpected result: %+v", results[0])
	}
}

func TestRunBatteryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Battery{Cases: []Case{{ID: "x", Log: "|turn|1\n"}}}
	results, err := RunBattery(ctx, embeddedStore(t), b)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestRunBatteryEmpty(t *testing.T) {
	results, err := RunBattery(context.Background(), embeddedStore(t), &Battery{})
	if err != nil {
		t.Fatalf("RunBattery returned error: %v", err)
	}
	if results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}

func TestDefaultBatteryPath(t *testing.T) {
	path := DefaultBatteryPath("/workspace")
	if !strings.Contains(path, ".battletext") || !strings.Contains(path, "battery.yaml") {
		t.Fatalf("unexpected battery path: %s", path)
	}
}
