//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"table-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to DB failure", func(t *testing.T) {
		err := infra.WrapRepoErr("query failed", errors.New("connection refused"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("no row", nil, infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unique violations classify as duplicate key", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		err := infra.WrapRepoErr("insert failed", pgErr)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("other pg errors stay DB failures", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", Message: "foreign key violation"}
		err := infra.WrapRepoErr("insert failed", pgErr)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("wrapped cause stays reachable", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := infra.WrapRepoErr("query failed", cause)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("kind survives further wrapping", func(t *testing.T) {
		err := infra.WrapRepoErr("no row", nil, infra.KindNotFound)
		wrapped := errors.Join(errors.New("outer context"), err)

		assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	})

	t.Run("unrelated errors match no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindDBFailure))
	})
}
