package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/andrevlb/sushi-api/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func fastRetry(attempts int) utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := utils.Retry(fastRetry(3), func() error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("still broken")
	calls := 0

	err := utils.Retry(fastRetry(3), func() error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls)
}

func TestRetry_NonRetryableBailsOut(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0

	err := utils.Retry(fastRetry(5), func() error {
		calls++
		return fatal
	}, fatal)

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}
