package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dddictionary/cars/internal/preset"
	"github.com/dddictionary/cars/pkg/engine"
	"github.com/dddictionary/cars/pkg/rules"
)

func TestSweepKeepsOrderAndMatchesSequentialRun(t *testing.T) {
	cfg := SweepConfig{
		Rules:   []string{"B3/S23", "B36/S23", "B2/S", "B1357/S02468"},
		Width:   24,
		Height:  24,
		Steps:   15,
		Seed:    3,
		Density: 0.35,
		Workers: 2,
	}
	results, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Rules))

	for i, rs := range cfg.Rules {
		assert.Equal(t, rs, results[i].Rule)
		assert.Equal(t, cfg.Steps, results[i].Final.Generation)

		a := engine.New(cfg.Width, cfg.Height, rules.MustParse(rs))
		preset.Scatter(a, cfg.Seed, cfg.Density)
		for s := 0; s < cfg.Steps; s++ {
			a.Tick()
		}
		assert.Equal(t, a.LiveCells(), results[i].Final.LiveCells, rs)
	}
}

func TestSweepRejectsBadRuleBeforeRunning(t *testing.T) {
	_, err := Sweep(context.Background(), SweepConfig{Rules: []string{"B3/S23", "B3/23"}, Width: 4, Height: 4, Steps: 1})
	require.ErrorIs(t, err, rules.ErrMissingPrefix)
}

func TestSweepRejectsDensityOutOfRange(t *testing.T) {
	for _, d := range []float64{-0.1, 7} {
		_, err := Sweep(context.Background(), SweepConfig{Rules: []string{"B3/S23"}, Width: 4, Height: 4, Steps: 1, Density: d})
		assert.ErrorContains(t, err, "density", "density %v", d)
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, SweepConfig{Rules: []string{"B3/S23"}, Width: 8, Height: 8, Steps: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteSweep(t *testing.T) {
	results, err := Sweep(context.Background(), SweepConfig{Rules: []string{"B/S"}, Width: 4, Height: 4, Steps: 1, Density: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSweep(&buf, results))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"RULE", "GENERATIONS", "LIVE", "ENTROPY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"B/S", "1", "0", "0.0000"}, strings.Fields(lines[1]))
}
