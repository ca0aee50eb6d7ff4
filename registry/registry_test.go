package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooShort = errors.New("value too short")

// minLength accepts strings of at least n bytes.
func minLength(n int) ValidatorFunc[string] {
	return func(impl string) error {
		if len(impl) < n {
			return fmt.Errorf("%w: %q", errTooShort, impl)
		}
		return nil
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := New[string]("test", minLength(2))

	require.NoError(t, r.Register("greeting", "hello"))

	got, err := r.Lookup("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.True(t, r.Has("greeting"))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "test", r.Kind())
}

func TestRegister_RejectedLeavesRegistryUnchanged(t *testing.T) {
	r := New[string]("test", minLength(3))
	require.NoError(t, r.Register("word", "abc"))

	err := r.Register("word", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistrationRejected)
	assert.ErrorIs(t, err, errTooShort, "validator error should be wrapped")
	assert.Contains(t, err.Error(), `"word"`)

	err = r.Register("other", "y")
	assert.ErrorIs(t, err, ErrRegistrationRejected)

	got, err := r.Lookup("word")
	require.NoError(t, err)
	assert.Equal(t, "abc", got, "prior value must survive a rejected registration")
	assert.Equal(t, []string{"word"}, r.Names())
}

func TestRegister_Overwrite(t *testing.T) {
	r := New[string]("test", minLength(1))
	require.NoError(t, r.Register("name", "first"))
	require.NoError(t, r.Register("name", "second"))

	got, err := r.Lookup("name")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, r.Len())
}

func TestRegister_Idempotent(t *testing.T) {
	once := New[string]("test", minLength(1))
	twice := New[string]("test", minLength(1))

	require.NoError(t, once.Register("name", "value"))
	require.NoError(t, twice.Register("name", "value"))
	require.NoError(t, twice.Register("name", "value"))

	assert.Equal(t, once.Names(), twice.Names())
	a, _ := once.Lookup("name")
	b, _ := twice.Lookup("name")
	assert.Equal(t, a, b)
}

func TestRegister_EmptyName(t *testing.T) {
	r := New[string]("test", minLength(1))
	err := r.Register("", "value")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 0, r.Len())
}

func TestRegister_NilValidator(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator[string]
	}{
		{name: "nil interface", validator: nil},
		{name: "nil validator func", validator: ValidatorFunc[string](nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New[string]("broken", tt.validator)
			err := r.Register("name", "value")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingRegistryConfiguration)
			assert.NotErrorIs(t, err, ErrRegistrationRejected)
			assert.False(t, r.Has("name"))
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	r := New[string]("test", minLength(1))
	got, err := r.Lookup("missing")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Empty(t, got)
	assert.False(t, r.Has("missing"))
}

func TestNames_Sorted(t *testing.T) {
	r := New[string]("test", minLength(1))
	for _, name := range []string{"zeta", "alpha", "mu"} {
		require.NoError(t, r.Register(name, name))
	}
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, r.Names())
}

func TestEach_VisitsEveryEntryOnce(t *testing.T) {
	r := New[string]("test", minLength(1))
	want := map[string]string{"a": "1", "b": "2", "c": "3"}
	for name, impl := range want {
		require.NoError(t, r.Register(name, impl))
	}

	seen := make(map[string]string)
	r.Each(func(name, impl string) bool {
		_, dup := seen[name]
		assert.False(t, dup, "entry %s visited twice", name)
		seen[name] = impl
		return true
	})
	assert.Equal(t, want, seen)
}

func TestEach_StopsEarly(t *testing.T) {
	r := New[string]("test", minLength(1))
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, r.Register(name, name))
	}

	visits := 0
	r.Each(func(string, string) bool {
		visits++
		return false
	})
	assert.Equal(t, 1, visits)
}

func TestEach_VisitorMayRegister(t *testing.T) {
	r := New[string]("test", minLength(1))
	require.NoError(t, r.Register("a", "a"))

	r.Each(func(name, impl string) bool {
		require.NoError(t, r.Register(name+"-copy", impl))
		return true
	})
	assert.Equal(t, []string{"a", "a-copy"}, r.Names())
}

func TestMustRegister_PanicsOnError(t *testing.T) {
	r := New[string]("test", minLength(5))
	MustRegister(r, "ok", "long enough")

	defer func() {
		if rec := recover(); rec == nil {
			t.Fatal("expected panic from MustRegister on rejected candidate")
		}
	}()
	MustRegister(r, "bad", "no")
}

func TestConcurrentRegisterAndLookup(t *testing.T) {
	r := New[string]("test", minLength(1))

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n * 2)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("s%d", i)
		go func() {
			defer wg.Done()
			if err := r.Register(name, name); err != nil {
				t.Errorf("Register(%s): %v", name, err)
			}
		}()
		go func() {
			defer wg.Done()
			_ = r.Names()
			_, _ = r.Lookup(name)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, r.Len())
}
