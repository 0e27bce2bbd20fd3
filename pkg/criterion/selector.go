package criterion

import (
	"go.uber.org/zap"

	"gainsel/pkg/entropy"
	"gainsel/pkg/frame"
)

// Selector ranks candidate features under a configurable criterion.
// The zero-configuration Selector behaves exactly like
// entropy.BestFeature.
type Selector struct {
	crit Criterion
	log  *zap.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithCriterion sets the split criterion. Default is Entropy.
func WithCriterion(c Criterion) Option {
	return func(s *Selector) { s.crit = c }
}

// WithLogger sets the logger the Selector emits its ranking to at Debug
// level. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Selector) { s.log = l }
}

// NewSelector returns a Selector with the given options applied.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		crit: Entropy{},
		log:  zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Rank scores every candidate feature of f under the configured
// criterion and returns the candidates in ascending score order.
func (s *Selector) Rank(f *frame.Frame, label frame.Column) ([]entropy.FeatureEntropy, error) {
	ranking, err := entropy.RankBy(f, label, s.crit.Impurity)
	if err != nil {
		return nil, err
	}
	for _, fe := range ranking {
		s.log.Debug("ranked feature",
			zap.String("criterion", s.crit.Name()),
			zap.String("feature", fe.Feature),
			zap.Float64("impurity", fe.Entropy),
		)
	}
	return ranking, nil
}

// BestFeature returns the candidate feature with the lowest impurity
// under the configured criterion.
func (s *Selector) BestFeature(f *frame.Frame, label frame.Column) (string, error) {
	ranking, err := s.Rank(f, label)
	if err != nil {
		return "", err
	}
	best := ranking[0]
	s.log.Debug("selected split feature",
		zap.String("criterion", s.crit.Name()),
		zap.String("feature", best.Feature),
		zap.Float64("impurity", best.Entropy),
	)
	return best.Feature, nil
}
