package solver_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
	"github.com/pointfit/relax/solver"
)

func flat(_ geom.Vec2, _ core.Positions) (float64, error) { return 0, nil }

func TestNewNilRegistry(t *testing.T) {
	t.Parallel()

	_, err := solver.New(nil)
	require.Truef(t, errors.Is(err, solver.ErrNilRegistry), "got %v", err)
}

func TestNewValidatesOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		opts    []solver.Option
		wantErr error
	}{
		{"defaults pass", nil, nil},
		{"zero samples", []solver.Option{solver.WithSamples(0)}, solver.ErrSampleCount},
		{"negative samples", []solver.Option{solver.WithSamples(-5)}, solver.ErrSampleCount},
		{"zero radius", []solver.Option{solver.WithRadius(0)}, solver.ErrRadius},
		{"negative radius", []solver.Option{solver.WithRadius(-1)}, solver.ErrRadius},
		{"NaN radius", []solver.Option{solver.WithRadius(math.NaN())}, solver.ErrRadius},
		{"infinite radius", []solver.Option{solver.WithRadius(math.Inf(1))}, solver.ErrRadius},
		{"zero workers", []solver.Option{solver.WithWorkers(0)}, solver.ErrWorkerCount},
		{"zero pass limit", []solver.Option{solver.WithPassLimit(0)}, solver.ErrPassLimit},
		{"first offender wins", []solver.Option{solver.WithSamples(0), solver.WithRadius(0)}, solver.ErrSampleCount},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reg := core.New()
			_, err := reg.Register("a", flat)
			require.NoError(t, err)

			s, err := solver.New(reg, tc.opts...)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestOptionsApplyOverDefaults(t *testing.T) {
	t.Parallel()

	reg := core.New()
	_, err := reg.Register("a", flat)
	require.NoError(t, err)

	s, err := solver.New(reg,
		solver.WithSamples(123),
		solver.WithRadius(7.5),
		solver.WithSeed(42),
		solver.WithWorkers(3),
		solver.WithPassLimit(9),
	)
	require.NoError(t, err)

	got := s.Options()
	require.Equal(t, 123, got.Samples)
	require.Equal(t, 7.5, got.Radius)
	require.Equal(t, int64(42), got.Seed)
	require.Equal(t, 3, got.Workers)
	require.Equal(t, 9, got.PassLimit)

	// Untouched solvers keep the documented defaults.
	d, err := solver.New(reg)
	require.NoError(t, err)
	require.Equal(t, solver.DefaultOptions(), d.Options())
}
