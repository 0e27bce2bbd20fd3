package criterion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gainsel/pkg/criterion"
	"gainsel/pkg/entropy"
	"gainsel/pkg/frame"
)

// weather/play: (Sunny,Yes)x3, (Sunny,No)x1, (Rainy,Yes)x1, (Rainy,No)x3.
func weatherFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.Column{Name: "Weather", Values: []string{
			"Sunny", "Sunny", "Sunny", "Sunny", "Rainy", "Rainy", "Rainy", "Rainy",
		}},
		frame.Column{Name: "Play", Values: []string{
			"Yes", "Yes", "Yes", "No", "Yes", "No", "No", "No",
		}},
	)
	require.NoError(t, err)
	return f
}

func playLabel() frame.Column {
	return frame.Column{Name: "Play", Values: []string{
		"Yes", "Yes", "Yes", "No", "Yes", "No", "No", "No",
	}}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"entropy", "gini", "gainratio"} {
		c, err := criterion.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	_, err := criterion.Get("chi2")
	require.Error(t, err)
}

func TestEntropyCriterion_MatchesFeatureEntropy(t *testing.T) {
	f := weatherFrame(t)

	want, err := entropy.Feature(f, "Weather", "Play")
	require.NoError(t, err)

	got, err := criterion.Entropy{}.Impurity(f, "Weather", "Play")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGini_WeatherScenario(t *testing.T) {
	f := weatherFrame(t)

	// Each partition: 1 - (3/4)^2 - (1/4)^2 = 0.375, weighted 0.5 each.
	g, err := criterion.Gini{}.Impurity(f, "Weather", "Play")
	require.NoError(t, err)
	assert.InDelta(t, 0.375, g, 1e-9)
}

func TestGini_PerfectSplitIsZero(t *testing.T) {
	f, err := frame.New(
		frame.Column{Name: "F", Values: []string{"A", "A", "B", "B"}},
		frame.Column{Name: "Play", Values: []string{"Yes", "Yes", "No", "No"}},
	)
	require.NoError(t, err)

	g, err := criterion.Gini{}.Impurity(f, "F", "Play")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, g, 1e-9)
}

func TestGainRatio_WeatherScenario(t *testing.T) {
	f := weatherFrame(t)

	// Parent entropy 1.0, conditional 0.8113, split information 1.0:
	// ratio 0.1887, negated so lower still means better.
	r, err := criterion.GainRatio{}.Impurity(f, "Weather", "Play")
	require.NoError(t, err)
	assert.InDelta(t, -0.1887, r, 1e-4)
}

func TestGainRatio_SingleValuedFeature(t *testing.T) {
	f, err := frame.New(
		frame.Column{Name: "F", Values: []string{"A", "A", "A", "A"}},
		frame.Column{Name: "Play", Values: []string{"Yes", "Yes", "No", "No"}},
	)
	require.NoError(t, err)

	r, err := criterion.GainRatio{}.Impurity(f, "F", "Play")
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestSelector_DefaultMatchesBestFeature(t *testing.T) {
	f, err := frame.New(
		frame.Column{Name: "Noisy", Values: []string{"a", "b", "a", "b", "a", "b", "a", "b"}},
		frame.Column{Name: "F", Values: []string{"A", "A", "A", "B", "A", "B", "B", "B"}},
	)
	require.NoError(t, err)

	want, err := entropy.BestFeature(f, playLabel())
	require.NoError(t, err)

	got, err := criterion.NewSelector().BestFeature(f, playLabel())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelector_WithCriterion(t *testing.T) {
	f, err := frame.New(
		frame.Column{Name: "Noisy", Values: []string{"a", "b", "a", "b", "a", "b", "a", "b"}},
		frame.Column{Name: "F", Values: []string{"A", "A", "A", "B", "A", "B", "B", "B"}},
	)
	require.NoError(t, err)

	for _, name := range []string{"entropy", "gini", "gainratio"} {
		c, err := criterion.Get(name)
		require.NoError(t, err)

		s := criterion.NewSelector(
			criterion.WithCriterion(c),
			criterion.WithLogger(zaptest.NewLogger(t)),
		)
		best, err := s.BestFeature(f, playLabel())
		require.NoError(t, err)
		assert.Equal(t, "F", best, "criterion %s", name)
	}
}

func TestSelector_ErrorsPropagate(t *testing.T) {
	f, err := frame.New(frame.Column{Name: "Play", Values: []string{"a"}})
	require.NoError(t, err)

	_, err = criterion.NewSelector().BestFeature(f, frame.Column{Name: "Play", Values: []string{"Yes"}})
	require.ErrorIs(t, err, entropy.ErrAmbiguousLabel)
}
