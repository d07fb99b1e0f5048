package stats

import (
	"fmt"

	"github.com/arloliu/sigma/errs"
)

func checkCount(n, required int) error {
	if n < required {
		return fmt.Errorf("%w: need at least %d values, got %d", errs.ErrInsufficientData, required, n)
	}

	return nil
}

func checkPaired(na, nb, required int) error {
	if na != nb {
		return fmt.Errorf("%w: %d vs %d values", errs.ErrLengthMismatch, na, nb)
	}

	return checkCount(na, required)
}
