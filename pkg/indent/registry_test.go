package indent_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goindent/pkg/indent"
)

func namedStrategy(name string) indent.Strategy {
	s := indent.NewBaseStrategy(name, "Test", "test strategy", regexp.MustCompile(`\{$`), nil)
	return &s
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := indent.NewRegistry()
	registry.Register(namedStrategy("alpha"))
	registry.Register(namedStrategy("beta"))

	s, ok := registry.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", s.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistryReplaceOnSameName(t *testing.T) {
	t.Parallel()

	registry := indent.NewRegistry()
	first := namedStrategy("alpha")
	second := namedStrategy("alpha")
	registry.Register(first)
	registry.Register(second)

	got, ok := registry.Get("alpha")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Len(t, registry.Names(), 1)
}

func TestRegistryAliases(t *testing.T) {
	t.Parallel()

	registry := indent.NewRegistry()
	registry.Register(namedStrategy("braces"))
	registry.RegisterAlias("go", "braces")
	registry.RegisterAlias("dangling", "nowhere")

	s, ok := registry.Get("go")
	require.True(t, ok)
	assert.Equal(t, "braces", s.Name())

	// An alias to an unregistered strategy resolves to nothing.
	_, ok = registry.Get("dangling")
	assert.False(t, ok)

	// A direct name wins over an alias of the same key.
	registry.Register(namedStrategy("go"))
	s, ok = registry.Get("go")
	require.True(t, ok)
	assert.Equal(t, "go", s.Name())
}

func TestRegistrySortedListings(t *testing.T) {
	t.Parallel()

	registry := indent.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		registry.Register(namedStrategy(name))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, registry.Names())

	all := registry.Strategies()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name())
	assert.Equal(t, "zeta", all[2].Name())
}

func TestNewBaseStrategyRequiresIncrease(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		indent.NewBaseStrategy("broken", "Test", "no increase", nil, nil)
	})
}
