package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serErr := &pq.Error{Code: pq.ErrorCode(pgerrcode.SerializationFailure)}

	t.Run("bare driver error detected", func(t *testing.T) {
		assert.True(t, isSerializationFailure(serErr))
	})

	t.Run("wrapped driver error detected", func(t *testing.T) {
		wrapped := fmt.Errorf("repository: execute query: %w", serErr)
		assert.True(t, isSerializationFailure(wrapped))
	})

	t.Run("flattened error not detected", func(t *testing.T) {
		// %v разрывает цепочку - такая ошибка ретраиться не будет
		flattened := fmt.Errorf("repository: execute query: %v", serErr)
		assert.False(t, isSerializationFailure(flattened))
	})

	t.Run("other pq codes not retried", func(t *testing.T) {
		assert.False(t, isSerializationFailure(&pq.Error{Code: pq.ErrorCode(pgerrcode.UniqueViolation)}))
	})

	t.Run("nil and plain errors not retried", func(t *testing.T) {
		assert.False(t, isSerializationFailure(nil))
		assert.False(t, isSerializationFailure(errors.New("plain")))
	})
}
