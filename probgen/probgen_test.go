package probgen_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/probgen"
)

// TestBeltsDeterministic pins generation to the seed.
func TestBeltsDeterministic(t *testing.T) {
	a := probgen.Belts(42)
	b := probgen.Belts(42)
	require.True(t, reflect.DeepEqual(a, b))

	c := probgen.Belts(43)
	require.False(t, reflect.DeepEqual(a, c))
}

// TestFactoryDeterministic pins generation to the seed.
func TestFactoryDeterministic(t *testing.T) {
	a := probgen.Factory(42)
	b := probgen.Factory(42)
	require.True(t, reflect.DeepEqual(a, b))

	c := probgen.Factory(43)
	require.False(t, reflect.DeepEqual(a, c))
}

// TestBeltsShape checks the structural promises of the generator.
func TestBeltsShape(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		p := probgen.Belts(seed)
		require.NoError(t, p.Validate())
		require.GreaterOrEqual(t, len(p.Nodes), 5)
		require.LessOrEqual(t, len(p.Nodes), 10)
		require.Len(t, p.Sources, 1)
		require.Equal(t, "n0", p.Nodes[0])
		require.Equal(t, p.Nodes[len(p.Nodes)-1], p.Sink)
		for _, e := range p.Edges {
			require.NotEqual(t, e.From, p.Sink)
			require.NotEqual(t, e.To, p.Nodes[0])
		}
	}
}

// TestFactoryShape checks the structural promises of the generator.
func TestFactoryShape(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		p := probgen.Factory(seed)
		require.NoError(t, p.Validate())
		require.GreaterOrEqual(t, len(p.Recipes), 4)
		require.LessOrEqual(t, len(p.Recipes), 8)
		for name, r := range p.Recipes {
			require.Contains(t, p.Machines, r.Machine, name)
			require.Positive(t, r.TimeS, name)
		}
	}
}
