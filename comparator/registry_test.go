package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/arraycompare/core"
	"github.com/poiesic/arraycompare/registry"
	"github.com/poiesic/arraycompare/strategies"
)

func alwaysTrue(core.Sample) core.Probe {
	return core.ProbeFunc(func() bool { return true })
}

func TestNewStrategyRegistry_LoadsBuiltins(t *testing.T) {
	r := NewStrategyRegistry()
	assert.Equal(t, "comparator", r.Kind())
	for name := range strategies.Builtins() {
		assert.True(t, r.Has(name), "missing builtin %s", name)
	}
}

func TestStrategyRegistry_DualCapabilityCheck(t *testing.T) {
	tests := []struct {
		name     string
		strategy core.Strategy
		wantErr  bool
	}{
		{name: "valid strategy", strategy: core.StrategyFunc(alwaysTrue)},
		{name: "nil strategy", strategy: nil, wantErr: true},
		{name: "nil strategy func", strategy: core.StrategyFunc(nil), wantErr: true},
		{
			name:     "builds no probe",
			strategy: core.StrategyFunc(func(core.Sample) core.Probe { return nil }),
			wantErr:  true,
		},
		{
			name:     "builds nil probe func",
			strategy: core.StrategyFunc(func(core.Sample) core.Probe { return core.ProbeFunc(nil) }),
			wantErr:  true,
		},
		{
			name:     "panics on empty sample",
			strategy: core.StrategyFunc(func(s core.Sample) core.Probe {
				_ = s.Data[0]
				return nil
			}),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStrategyRegistry()
			before := r.Len()

			err := r.Register("candidate", tt.strategy)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.True(t, r.Has("candidate"))
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, registry.ErrRegistrationRejected)
			assert.ErrorIs(t, err, ErrIncompatibleComparator)
			assert.Equal(t, before, r.Len())
		})
	}
}

func TestStrategyRegistry_RejectionKeepsPriorEntry(t *testing.T) {
	r := NewStrategyRegistry()
	err := r.Register(strategies.NameIsNotEqual, nil)
	require.ErrorIs(t, err, ErrIncompatibleComparator)

	s, err := r.Lookup(strategies.NameIsNotEqual)
	require.NoError(t, err)
	assert.False(t, s.NewProbe(core.Sample{}).Success(), "builtin is_not_equal should still be registered")
}

func TestDefaultStrategies(t *testing.T) {
	assert.Same(t, DefaultStrategies(), DefaultStrategies())

	require.NoError(t, Register("test_default_always_true", core.StrategyFunc(alwaysTrue)))
	assert.True(t, DefaultStrategies().Has("test_default_always_true"))
}
