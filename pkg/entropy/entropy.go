// Package entropy computes the information-theoretic statistics an
// ID3-style decision-tree builder needs to pick a split feature: Shannon
// entropy of a label distribution, weighted conditional entropy of a
// candidate feature, and the feature ranking derived from them.
//
// All functions are pure: they never mutate the caller's frame and hold
// no state between calls.
package entropy

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"

	"gainsel/pkg/frame"
)

// OfCounts returns the base-2 Shannon entropy of a count distribution,
// one count per distinct label value. Zero counts contribute exactly
// zero; a single nonzero count yields entropy 0 (a pure subset).
//
// A zero total is a contract violation and panics: every subset the
// selection path evaluates holds at least one row.
func OfCounts(counts []int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		panic("entropy: zero total count")
	}
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// Subset returns the entropy of the label distribution within f: group
// by the label column, take the group sizes, delegate to OfCounts.
func Subset(f *frame.Frame, label string) (float64, error) {
	if !f.Has(label) {
		return 0, errors.Wrapf(ErrInvalidInput, "no label column %q", label)
	}
	if f.Rows() == 0 {
		return 0, errors.Wrapf(ErrInvalidInput, "empty frame")
	}
	groups, err := f.GroupBy(label)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "group by label %q", label)
	}
	counts := make([]int, 0, len(groups))
	for _, g := range groups {
		counts = append(counts, g.Frame.Rows())
	}
	return OfCounts(counts), nil
}

// Feature returns the conditional entropy of the label after splitting f
// on the named feature: for each distinct feature value v, the entropy
// of the label within the v-partition, weighted by P(v), summed over all
// values. Lower means the feature produces purer partitions.
//
// Partitions are visited in first-seen value order and the weighted
// terms are summed once at the end, so results are reproducible across
// runs.
func Feature(f *frame.Frame, feature, label string) (float64, error) {
	if !f.Has(feature) {
		return 0, errors.Wrapf(ErrInvalidInput, "no feature column %q", feature)
	}
	if f.Rows() == 0 {
		return 0, errors.Wrapf(ErrInvalidInput, "empty frame")
	}
	groups, err := f.GroupBy(feature)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "group by feature %q", feature)
	}
	terms := make([]float64, 0, len(groups))
	for _, g := range groups {
		p, err := Probability(f, feature, g.Value)
		if err != nil {
			return 0, err
		}
		h, err := Subset(g.Frame, label)
		if err != nil {
			return 0, err
		}
		terms = append(terms, p*h)
	}
	return floats.Sum(terms), nil
}

// InformationGain returns the reduction in label entropy achieved by
// splitting f on the named feature: parent entropy minus conditional
// entropy. The selector itself only needs the conditional-entropy
// minimizer; gain is for callers that want the actual reduction.
func InformationGain(f *frame.Frame, feature, label string) (float64, error) {
	parent, err := Subset(f, label)
	if err != nil {
		return 0, err
	}
	cond, err := Feature(f, feature, label)
	if err != nil {
		return 0, err
	}
	return parent - cond, nil
}
