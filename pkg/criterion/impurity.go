package criterion

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"

	"gainsel/pkg/entropy"
	"gainsel/pkg/frame"
)

// Entropy is the ID3 criterion: weighted conditional entropy of the
// label after the split.
type Entropy struct{}

func (Entropy) Name() string { return "entropy" }

func (Entropy) Impurity(f *frame.Frame, feature, label string) (float64, error) {
	return entropy.Feature(f, feature, label)
}

// Gini is the CART criterion: weighted Gini impurity of the label
// distribution within each partition.
type Gini struct{}

func (Gini) Name() string { return "gini" }

func (Gini) Impurity(f *frame.Frame, feature, label string) (float64, error) {
	if !f.Has(label) {
		return 0, errors.Wrapf(entropy.ErrInvalidInput, "no label column %q", label)
	}
	groups, err := f.GroupBy(feature)
	if err != nil {
		return 0, errors.Wrapf(entropy.ErrInvalidInput, "no feature column %q", feature)
	}
	if f.Rows() == 0 {
		return 0, errors.Wrapf(entropy.ErrInvalidInput, "empty frame")
	}
	terms := make([]float64, 0, len(groups))
	for _, g := range groups {
		p, err := entropy.Probability(f, feature, g.Value)
		if err != nil {
			return 0, err
		}
		labelGroups, err := g.Frame.GroupBy(label)
		if err != nil {
			return 0, errors.Wrapf(entropy.ErrInvalidInput, "group by label %q", label)
		}
		n := float64(g.Frame.Rows())
		gini := 1.0
		for _, lg := range labelGroups {
			q := float64(lg.Frame.Rows()) / n
			gini -= q * q
		}
		terms = append(terms, p*gini)
	}
	return floats.Sum(terms), nil
}

// GainRatio is the C4.5 criterion: information gain normalized by the
// split information of the feature's own value distribution. The ratio
// is negated so that, like the other criteria, lower means better.
type GainRatio struct{}

func (GainRatio) Name() string { return "gainratio" }

func (GainRatio) Impurity(f *frame.Frame, feature, label string) (float64, error) {
	gain, err := entropy.InformationGain(f, feature, label)
	if err != nil {
		return 0, err
	}
	split, err := entropy.Subset(f, feature)
	if err != nil {
		return 0, err
	}
	// A single-valued feature has zero split information and zero gain.
	if split == 0 {
		return 0, nil
	}
	return -(gain / split), nil
}
