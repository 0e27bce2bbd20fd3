package entropy

import (
	"github.com/cockroachdb/errors"

	"gainsel/pkg/frame"
)

// Probability returns the empirical probability of value occurring in the
// named feature column: matching rows divided by total rows.
//
// A missing column or a value with no matching rows is ErrInvalidInput.
// Calling with a zero-row frame is a contract violation and panics: the
// selection path only probes values actually observed in the data, so an
// empty frame here means an upstream bug, not a recoverable condition.
func Probability(f *frame.Frame, feature, value string) (float64, error) {
	col, err := f.Column(feature)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "no feature column %q", feature)
	}
	if f.Rows() == 0 {
		panic("entropy: probability over a zero-row frame")
	}
	matched := 0
	for _, v := range col {
		if v == value {
			matched++
		}
	}
	if matched == 0 {
		return 0, errors.Wrapf(ErrInvalidInput, "feature %q has no value %q", feature, value)
	}
	return float64(matched) / float64(f.Rows()), nil
}
