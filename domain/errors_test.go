package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDomainError(t *testing.T) {
	t.Run("Should match the classification of a sentinel", func(t *testing.T) {
		assert.True(t, IsDomainError(ErrUserNotFound, ErrCodeNotFound))
		assert.False(t, IsDomainError(ErrUserNotFound, ErrCodeConflict))
	})

	t.Run("Should see through wrapping", func(t *testing.T) {
		err := fmt.Errorf("fetching user: %w", ErrUserNotFound)
		assert.True(t, IsDomainError(err, ErrCodeNotFound))

		wrapped := WrapError(ErrCodeInternal, "couldn't delete user accounts", errors.New("write concern error"))
		assert.True(t, IsDomainError(wrapped, ErrCodeInternal))
		assert.ErrorContains(t, wrapped, "write concern error")
	})

	t.Run("Should not match plain errors", func(t *testing.T) {
		assert.False(t, IsDomainError(errors.New("boom"), ErrCodeInternal))
	})
}
