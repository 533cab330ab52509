package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
  "landoptimizer": {
    "suggested_locations": [{
      "cost_breakdown": {"land_cost": "₹12,000", "equipment_cost": "₹30,000"},
      "revenue_estimation": {
        "domestic_sales_revenue": "₹25 Million",
        "export_revenue": "₹15 Million",
        "carbon_credit_revenue": "₹5 Million"
      },
      "resource_sizing": {"solar_panels_required": "4,500 panels", "wind_turbines_required": "12 turbines"},
      "plant_location": {"name": "Kutch Plant", "address": "Kutch, Gujarat"}
    }]
  }
}`

const snapshotYAML = `landoptimizer:
  suggested_locations:
    - cost_breakdown:
        land_cost: "₹12,000"
        equipment_cost: "₹30,000"
      revenue_estimation:
        domestic_sales_revenue: "₹25 Million"
        export_revenue: "₹15 Million"
        carbon_credit_revenue: "₹5 Million"
      resource_sizing:
        solar_panels_required: "4,500 panels"
        wind_turbines_required: "12 turbines"
      plant_location:
        name: Kutch Plant
        address: Kutch, Gujarat
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSnapshot(t *testing.T) {
	dir := t.TempDir()

	fromJSON, err := loadSnapshot(writeFile(t, dir, "snapshot.json", snapshotJSON))
	require.NoError(t, err)
	fromYAML, err := loadSnapshot(writeFile(t, dir, "snapshot.yml", snapshotYAML))
	require.NoError(t, err)

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("YAML snapshot differs from JSON (-json +yaml):\n%s", diff)
	}
	require.NotNil(t, fromJSON.PrimaryLocation())
	assert.Equal(t, "₹30,000", fromJSON.PrimaryLocation().CostBreakdown["equipment_cost"])
}

func TestLoadSnapshot_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadSnapshot(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = loadSnapshot(writeFile(t, dir, "empty.json", "  \n"))
	assert.Error(t, err)

	_, err = loadSnapshot(writeFile(t, dir, "broken.json", `{"landoptimizer":`))
	assert.Error(t, err)

	_, err = loadSnapshot(writeFile(t, dir, "broken.yaml", "landoptimizer: [\n"))
	assert.Error(t, err)
}

func TestRunRender_WritesEverySlot(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "charts")
	args := &RenderArgs{
		input:  writeFile(t, dir, "snapshot.json", snapshotJSON),
		out:    out,
		format: "svg",
		width:  320,
		height: 200,
	}

	var stdout bytes.Buffer
	require.NoError(t, runRender(context.Background(), args, &stdout))

	for _, name := range []string{"trend", "breakdown", "comparison", "utilization"} {
		info, err := os.Stat(filepath.Join(out, name+".svg"))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 4)
}

func TestRunRender_NoLocationDrawsNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "charts")
	args := &RenderArgs{
		input:  writeFile(t, dir, "snapshot.json", `{"landoptimizer": {"suggested_locations": []}}`),
		out:    out,
		format: "png",
		width:  320,
		height: 200,
	}

	var stdout bytes.Buffer
	require.NoError(t, runRender(context.Background(), args, &stdout))
	assert.Empty(t, stdout.String())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunRender_WatchRedraws(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "snapshot.yaml", snapshotYAML)

	var generation atomic.Uint64
	args := &RenderArgs{
		input:  input,
		out:    filepath.Join(dir, "charts"),
		format: "svg",
		width:  320,
		height: 200,
		watch:  true,
		onDraw: func(gen uint64) { generation.Store(gen) },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runRender(ctx, args, &bytes.Buffer{}) }()

	require.Eventually(t, func() bool { return generation.Load() == 1 }, 5*time.Second, 10*time.Millisecond)

	// rewrite until the watcher is registered and picks the change up
	require.Eventually(t, func() bool {
		_ = os.WriteFile(input, []byte(snapshotYAML), 0o644)
		return generation.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("render did not stop after cancel")
	}
}

func TestNewRenderCmd_RejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "snapshot.json", snapshotJSON)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing input", args: []string{"--out", dir}},
		{name: "bad format", args: []string{"--input", input, "--format", "gif"}},
		{name: "bad size", args: []string{"--input", input, "--width", "0"}},
		{name: "positional arg", args: []string{"--input", input, "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRenderCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			assert.Error(t, cmd.Execute())
		})
	}
}

func TestNewRenderCmd_Renders(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "snapshot.json", snapshotJSON)
	out := filepath.Join(dir, "charts")

	cmd := NewRenderCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--input", input, "--out", out, "--format", "svg"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), filepath.Join(out, "trend.svg"))
}
