package stats

import (
	"fmt"
	"strings"

	"github.com/arloliu/sigma/arith"
	"github.com/arloliu/sigma/errs"
	"github.com/arloliu/sigma/internal/options"
	"github.com/arloliu/sigma/internal/pool"
)

// DescribeConfig holds the settings used by Describe.
type DescribeConfig struct {
	VarianceMode VarianceMode
	IncludeModes bool
}

// DescribeOption configures Describe.
type DescribeOption = options.Option[*DescribeConfig]

// WithVarianceMode selects the divisor for Summary.Variance and Summary.StdDev.
// The default is Sample.
func WithVarianceMode(mode VarianceMode) DescribeOption {
	return options.New(func(c *DescribeConfig) error {
		if !mode.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidMode, mode)
		}
		c.VarianceMode = mode

		return nil
	})
}

// WithModes controls whether Summary.Modes is populated. It is off by default
// because counting needs a map sized to the input.
func WithModes(enabled bool) DescribeOption {
	return options.NoError(func(c *DescribeConfig) {
		c.IncludeModes = enabled
	})
}

// Summary is a descriptive snapshot of a sequence.
type Summary[T arith.Real] struct {
	Count          int
	Sum            T
	Min            T
	Max            T
	Average        T
	Median         T
	VarianceMode   VarianceMode
	Variance       T
	StdDev         T
	// Shape statistics are computed in float64 for every T.
	Skewness       float64
	Kurtosis       float64
	ExcessKurtosis float64
	// Modes is nil unless WithModes(true) was passed.
	Modes []T
}

// Describe computes a Summary of seq.
//
// Parameters:
//   - seq: values to describe; not modified
//   - opts: WithVarianceMode, WithModes
//
// Returns:
//   - *Summary[T]: the summary
//   - error: errs.ErrInsufficientData when seq is too short for the variance
//     mode (2 values for Sample, 1 for Population), or an option error
//
// Average and variance use the same two-pass formulas as Average and
// Variance. The shape statistics come from a single NewMoments pass over a
// float64 copy, so integer input does not truncate the recurrence.
func Describe[T arith.Real](seq []T, opts ...DescribeOption) (*Summary[T], error) {
	cfg := &DescribeConfig{VarianceMode: Sample}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	variance, err := Variance(seq, cfg.VarianceMode)
	if err != nil {
		return nil, err
	}

	moments, err := floatMoments(seq)
	if err != nil {
		return nil, err
	}

	sorted := sortedCopy(seq)
	s := &Summary[T]{
		Count:          len(seq),
		Sum:            Sum(seq),
		Min:            sorted[0],
		Max:            sorted[len(sorted)-1],
		Average:        Average(seq),
		Median:         medianOfSorted(sorted),
		VarianceMode:   cfg.VarianceMode,
		Variance:       variance,
		StdDev:         arith.Sqrt(variance),
		Skewness:       moments.Skewness(),
		Kurtosis:       moments.Kurtosis(),
		ExcessKurtosis: moments.ExcessKurtosis(),
	}

	if cfg.IncludeModes {
		s.Modes = Mode(seq)
	}

	return s, nil
}

func floatMoments[T arith.Real](seq []T) (Moments[float64], error) {
	values, cleanup := pool.GetFloat64Slice(len(seq))
	defer cleanup()

	for i, v := range seq {
		values[i] = float64(v)
	}

	return NewMoments(values)
}

// String returns a one-line rendering of the summary.
func (s *Summary[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "n=%d sum=%v min=%v max=%v mean=%v median=%v", s.Count, s.Sum, s.Min, s.Max, s.Average, s.Median)
	fmt.Fprintf(&sb, " var(%s)=%v sd=%v skew=%v kurt=%v", s.VarianceMode, s.Variance, s.StdDev, s.Skewness, s.Kurtosis)
	if s.Modes != nil {
		fmt.Fprintf(&sb, " modes=%v", s.Modes)
	}

	return sb.String()
}
