package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sigma/errs"
)

func TestMedian(t *testing.T) {
	t.Run("even length averages middle values", func(t *testing.T) {
		values := []float64{1, 12, 19.5, 3, -5, 8}
		got, err := Median(values)
		require.NoError(t, err)
		require.Equal(t, 5.5, got)
	})

	t.Run("odd length", func(t *testing.T) {
		got, err := Median([]float64{1, 12, 19.5, 3, -5})
		require.NoError(t, err)
		require.Equal(t, 3.0, got)
	})

	t.Run("integers", func(t *testing.T) {
		got, err := Median([]int{4, 1, 3, 2})
		require.NoError(t, err)
		require.Equal(t, 2, got)
	})

	t.Run("input order untouched", func(t *testing.T) {
		values := []float64{3, 1, 2}
		_, err := Median(values)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 1, 2}, values)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Median([]float64{})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestMedianLowHigh(t *testing.T) {
	values := []float64{1, 12, 19.5, 3, -5, 8}

	low, err := MedianLow(values)
	require.NoError(t, err)
	require.Equal(t, 3.0, low)

	high, err := MedianHigh(values)
	require.NoError(t, err)
	require.Equal(t, 8.0, high)

	t.Run("odd length agrees", func(t *testing.T) {
		odd := []int{5, 1, 9}
		low, err := MedianLow(odd)
		require.NoError(t, err)
		high, err := MedianHigh(odd)
		require.NoError(t, err)
		mid, err := Median(odd)
		require.NoError(t, err)
		require.Equal(t, 5, low)
		require.Equal(t, low, high)
		require.Equal(t, low, mid)
	})

	t.Run("strings", func(t *testing.T) {
		words := []string{"pear", "apple", "fig", "kiwi"}
		low, err := MedianLow(words)
		require.NoError(t, err)
		require.Equal(t, "fig", low)

		high, err := MedianHigh(words)
		require.NoError(t, err)
		require.Equal(t, "kiwi", high)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := MedianLow([]string{})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
		_, err = MedianHigh([]int{})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{4}, []int{4}},
		{"all distinct", []int{1, 2, 3}, []int{1, 2, 3}},
		{"tie in join order", []int{1, 2, 2, 3, 3}, []int{2, 3}},
		{"later value overtakes", []int{3, 1, 1, 3, 1}, []int{1}},
		{"tie reached late", []int{5, 5, 7, 9, 7}, []int{5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mode(tt.values)
			require.NotNil(t, got)
			require.Equal(t, tt.want, got)
		})
	}

	require.Equal(t, []string{"a"}, Mode([]string{"a", "b", "a"}))
}
