package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-livingston/DNest4/internal/dist"
)

func TestFromPriorSingleCoordinate(t *testing.T) {
	m := New()
	m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 0))

	// Exactly one assignment, nothing else.
	assert.Equal(t, "x = 0 + (1 - (0))*rng.rand();\n", m.FromPrior())
}

func TestFromPriorCoordinatesBeforeDerived(t *testing.T) {
	// Register the derived node first; the pass must still emit every
	// coordinate before any derived value.
	m := New()
	m.Add(mustNode(t, TypeReal, "y", dist.NewDeterministic("2*x"), Derived, 0))
	m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "10"), Coordinate, 0))

	assert.Equal(t, "x = 0 + (10 - (0))*rng.rand();\ny = 2*x;\n", m.FromPrior())
}

func TestPerturbSingleCoordinate(t *testing.T) {
	m := New()
	m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 0))

	want := "double log_H = 0.0;\n" +
		"int which = rng.rand_int(1);\n" +
		"if(which == 0)\n{\n" +
		"    x += (1 - (0))*rng.randh();\n" +
		"    wrap(x, 0, 1);\n" +
		"}\n" +
		"return log_H;\n"
	got := m.Perturb()
	assert.Equal(t, want, got)

	// With one coordinate the index draw is over range size 1, so the
	// single branch is taken unconditionally.
	assert.Contains(t, got, "rng.rand_int(1)")
	assert.Equal(t, 1, strings.Count(got, "if(which =="))
}

func TestPerturbAssignsSequentialBranches(t *testing.T) {
	m := New()
	m.Add(mustNode(t, TypeReal, "a", dist.NewUniform("0", "1"), Coordinate, 0))
	m.Add(mustNode(t, TypeReal, "y", dist.NewDeterministic("a+b"), Derived, 0))
	m.Add(mustNode(t, TypeReal, "b", dist.NewUniform("0", "1"), Coordinate, 0))

	got := m.Perturb()
	assert.Contains(t, got, "rng.rand_int(2)")
	assert.Contains(t, got, "if(which == 0)")
	assert.Contains(t, got, "if(which == 1)")

	// Derived recompute happens after every conditional block.
	lastIf := strings.LastIndex(got, "if(which ==")
	recompute := strings.Index(got, "y = a+b;")
	require.Greater(t, recompute, lastIf)
	assert.True(t, strings.HasSuffix(got, "return log_H;\n"))
}

func TestLogLikelihoodSumsDataNodesOnly(t *testing.T) {
	m := New()
	m.Add(mustNode(t, TypeReal, "d1", dist.NewNormal("0", "1"), Data, 0))
	m.Add(mustNode(t, TypeReal, "d2", dist.NewNormal("0", "2"), Data, 0))

	base := m.LogLikelihood()
	assert.True(t, strings.HasPrefix(base, "double logp = 0.0;\n\n"))
	assert.True(t, strings.HasSuffix(base, "\nreturn logp;"))

	d1 := strings.Index(base, "(d1)")
	d2 := strings.Index(base, "(d2)")
	require.NotEqual(t, -1, d1)
	require.NotEqual(t, -1, d2)
	assert.Less(t, d1, d2, "density contributions keep registration order")

	// Adding coordinate and prior_info nodes must not change the output.
	m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 0))
	m.Add(mustNode(t, TypeInt, "N", nil, PriorInfo, 0))
	assert.Equal(t, base, m.LogLikelihood())
}

func TestPrintCode(t *testing.T) {
	m := New()
	m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 0))
	m.Add(mustNode(t, TypeReal, "d", dist.NewNormal("0", "1"), Data, 0))
	m.Add(mustNode(t, TypeReal, "s", dist.NewLogUniform("1", "2"), Coordinate, 0))

	assert.Equal(t, "out<<x<<\" \";\nout<<s<<\" \";\n", m.PrintCode())
}

func TestDescription(t *testing.T) {
	t.Run("joins coordinate names", func(t *testing.T) {
		m := New()
		m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 0))
		m.Add(mustNode(t, TypeReal, "s", dist.NewLogUniform("1", "2"), Coordinate, 0))

		want := "string s;\n" +
			"s += \"x, \";\n" +
			"s += \"s\";\n" +
			"return s;"
		assert.Equal(t, want, m.Description())
	})

	t.Run("no coordinates yields an empty string", func(t *testing.T) {
		m := New()
		assert.Equal(t, "string s;\n\nreturn s;", m.Description())
	})
}

func TestEndToEndScenario(t *testing.T) {
	// x ~ Uniform(0,10), y = 2*x, d ~ Normal(y, 1).
	m := New()
	m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "10"), Coordinate, 0))
	m.Add(mustNode(t, TypeReal, "y", dist.NewDeterministic("2*x"), Derived, 0))
	m.Add(mustNode(t, TypeReal, "d", dist.NewNormal("y", "1"), Data, 0))

	assert.Equal(t, "x = 0 + (10 - (0))*rng.rand();\ny = 2*x;\n", m.FromPrior())

	ll := m.LogLikelihood()
	assert.Equal(t, 1, strings.Count(ll, "logp +="), "a single density accumulation")
	assert.Contains(t, ll, "pow(((d) - (y))/(1), 2)")
}
