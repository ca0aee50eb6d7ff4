package arraycompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/arraycompare/cache"
	"github.com/poiesic/arraycompare/cache/badger"
	"github.com/poiesic/arraycompare/comparator"
	"github.com/poiesic/arraycompare/core"
	"github.com/poiesic/arraycompare/registry"
	"github.com/poiesic/arraycompare/strategies"
)

func TestNew(t *testing.T) {
	tk, err := New()
	require.NoError(t, err)
	require.NotNil(t, tk)

	assert.True(t, tk.ComparatorStrategies().Has(strategies.NameIsNotEqual))
	assert.Equal(t, []string{cache.StrategyAnonymous, badger.StrategyName, cache.StrategySingleValue},
		tk.CachingStrategies().Names())
	assert.NotNil(t, tk.logger)
}

func TestNew_FreshRegistries(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)

	require.NoError(t, a.RegisterComparator("only_in_a", strategies.IsEqual))
	assert.True(t, a.ComparatorStrategies().Has("only_in_a"))
	assert.False(t, b.ComparatorStrategies().Has("only_in_a"))
	assert.False(t, comparator.DefaultStrategies().Has("only_in_a"))
}

func TestNew_InjectedRegistries(t *testing.T) {
	comparators := comparator.NewStrategyRegistry()
	caching := cache.NewStrategyRegistry()

	tk, err := New(WithComparatorStrategies(comparators), WithCachingStrategies(caching))
	require.NoError(t, err)
	assert.Same(t, comparators, tk.ComparatorStrategies())
	assert.Same(t, caching, tk.CachingStrategies())
	assert.True(t, caching.Has(badger.StrategyName))
}

func TestNew_MisconfiguredCachingRegistry(t *testing.T) {
	broken := registry.NewWithContract("caching", registry.Contract{})
	_, err := New(WithCachingStrategies(broken))
	assert.ErrorIs(t, err, registry.ErrMissingRegistryConfiguration)
}

func TestToolkit_NewComparator(t *testing.T) {
	tk, err := New()
	require.NoError(t, err)

	c, err := tk.NewComparator()
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.AddProbe([]string{"a", "b", "c"}, strategies.NameIsNotEqual, []string{"d"}))
	assert.True(t, c.Success())
	require.NoError(t, c.AddProbe([]string{"a", "b", "c"}, strategies.NameIsNotEqual, []string{"a"}))
	assert.False(t, c.Success())
}

func TestToolkit_NewComparatorWithBadgerResults(t *testing.T) {
	tk, err := New()
	require.NoError(t, err)

	c, err := tk.NewComparator(comparator.WithResultCache(badger.StrategyName))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.AddProbe([]string{"a"}, strategies.NameContainsAll, []string{"a"}))
	assert.True(t, c.Success())
	assert.True(t, c.Success())
}

func TestToolkit_RegisterComparator(t *testing.T) {
	tk, err := New()
	require.NoError(t, err)

	never := core.StrategyFunc(func(core.Sample) core.Probe {
		return core.ProbeFunc(func() bool { return false })
	})
	require.NoError(t, tk.RegisterComparator("never", never))

	err = tk.RegisterComparator("broken", nil)
	assert.ErrorIs(t, err, comparator.ErrIncompatibleComparator)

	c, err := tk.NewComparator()
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, c.AddProbe(nil, "never", nil))
	assert.False(t, c.Success())
}

type halfCache struct{}

func (halfCache) Add(obj any) any { return obj }

func TestToolkit_CacheContainer(t *testing.T) {
	tk, err := New()
	require.NoError(t, err)

	err = tk.RegisterCachingStrategy("half", func() any { return halfCache{} })
	assert.ErrorIs(t, err, cache.ErrIncompatibleCachingStrategy)
	require.NoError(t, tk.RegisterCachingStrategy("anon", func() any { return cache.NewAnonymousCache() }))

	container := tk.NewCacheContainer()
	defer container.Close()

	samples, err := container.Add("samples", badger.StrategyName)
	require.NoError(t, err)
	sample := core.Sample{Data: []string{"a"}, Tag: "t"}
	samples.Add(sample)
	assert.Equal(t, []any{sample}, samples.StoredObjects())

	_, err = container.Add("other", "anon")
	require.NoError(t, err)
	_, err = container.Add("missing", "half")
	assert.ErrorIs(t, err, cache.ErrUnknownCachingStrategy)
	assert.Equal(t, []string{"other", "samples"}, container.Names())
}
