package plot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nimblegrid/mapfm/bench/plot"
	"github.com/stretchr/testify/require"
)

func TestSaveCostChartWritesFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "costs.png")

	results := []plot.Result{
		{Label: "scenario-1", Cost: 4},
		{Label: "scenario-2", Cost: 12},
	}

	require.NoError(t, plot.SaveCostChart(results, "total cost", out, 12, 8))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestSaveCostChartRejectsBadPath(t *testing.T) {
	results := []plot.Result{{Label: "a", Cost: 1}}
	err := plot.SaveCostChart(results, "t", filepath.Join(t.TempDir(), "missing-dir", "out.png"), 12, 8)
	require.Error(t, err)
}
