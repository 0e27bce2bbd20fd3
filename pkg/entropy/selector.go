package entropy

import (
	"sort"

	"github.com/cockroachdb/errors"

	"gainsel/pkg/frame"
)

// indexColumn is leftover row-numbering metadata some callers carry in
// their tables. It is never a feature and is stripped before ranking.
const indexColumn = "index"

// FeatureEntropy pairs a candidate feature with its weighted post-split
// impurity score.
type FeatureEntropy struct {
	Feature string
	Entropy float64
}

// ImpurityFunc scores the label impurity remaining after splitting f on
// feature. Feature (conditional entropy) is the ID3 default; pkg/criterion
// supplies alternatives.
type ImpurityFunc func(f *frame.Frame, feature, label string) (float64, error)

// RankBy merges the label vector into a working copy of f, strips the
// "index" column, scores every candidate feature with impurity and
// returns the candidates in ascending score order. Ties keep the
// original column order (stable sort), so the first column in table
// order wins among equals.
//
// Fails with ErrAmbiguousLabel if the label name collides with a feature
// column, and with ErrInvalidInput if the table has no rows or no
// candidate features remain.
func RankBy(f *frame.Frame, label frame.Column, impurity ImpurityFunc) ([]FeatureEntropy, error) {
	if f.Has(label.Name) {
		return nil, errors.Wrapf(ErrAmbiguousLabel, "label %q collides with a feature column", label.Name)
	}
	if len(label.Values) == 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "label %q has no rows", label.Name)
	}
	work, err := f.Insert(0, label)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "merge label %q: %v", label.Name, err)
	}
	if label.Name != indexColumn {
		work = work.Drop(indexColumn)
	}
	if work.Width() < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "no candidate feature columns")
	}

	ranking := make([]FeatureEntropy, 0, work.Width())
	for _, name := range work.Names() {
		score, err := impurity(work, name, label.Name)
		if err != nil {
			return nil, err
		}
		ranking = append(ranking, FeatureEntropy{Feature: name, Entropy: score})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Entropy < ranking[j].Entropy
	})

	// The label scored against itself is always 0 and never a candidate.
	candidates := make([]FeatureEntropy, 0, len(ranking)-1)
	for _, fe := range ranking {
		if fe.Feature == label.Name {
			continue
		}
		candidates = append(candidates, fe)
	}
	return candidates, nil
}

// Rank is RankBy with conditional entropy as the impurity measure.
func Rank(f *frame.Frame, label frame.Column) ([]FeatureEntropy, error) {
	return RankBy(f, label, Feature)
}

// BestFeature returns the name of the feature with the lowest
// conditional entropy, equivalently the highest information gain. This
// is the single entry point a tree builder needs.
func BestFeature(f *frame.Frame, label frame.Column) (string, error) {
	ranking, err := Rank(f, label)
	if err != nil {
		return "", err
	}
	return ranking[0].Feature, nil
}
