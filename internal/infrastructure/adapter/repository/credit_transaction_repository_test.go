package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCreditTransactionRepository(db, newTestLogger())
		mock.ExpectExec(`INSERT INTO "credit_transactions"`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, &entity.CreditTransaction{
			ID:           "tx1",
			UserID:       "u1",
			Delta:        -1,
			BalanceAfter: 4,
			Reason:       entity.ReasonTransformation,
			Reference:    "session-1",
			CreatedAt:    fixedTime,
		})
		require.NoError(t, err)
	})

	t.Run("list newest first", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCreditTransactionRepository(db, newTestLogger())
		rows := sqlmock.NewRows([]string{"id", "user_id", "delta", "balance_after", "reason", "reference", "created_at"}).
			AddRow("tx2", "u1", -1, 4, "transformation", "s1", fixedTime).
			AddRow("tx1", "u1", 5, 5, "purchase", "order-9", fixedTime)
		mock.ExpectQuery(`SELECT \* FROM "credit_transactions" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT`).
			WillReturnRows(rows)

		entries, err := repo.ListByUser(ctx, "u1", 20)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].IsDebit())
		assert.Equal(t, entity.ReasonPurchase, entries[1].Reason)
	})

	t.Run("concurrent duplicate purchase", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCreditTransactionRepository(db, newTestLogger())
		mock.ExpectExec(`INSERT INTO "credit_transactions"`).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_credit_transactions_purchase_reference" (SQLSTATE 23505)`))

		err := repo.Create(ctx, &entity.CreditTransaction{
			ID:        "tx3",
			UserID:    "u1",
			Delta:     100,
			Reason:    entity.ReasonPurchase,
			Reference: "order-9",
			CreatedAt: fixedTime,
		})
		assert.ErrorIs(t, err, errs.ErrDuplicatePurchase)
	})

	t.Run("purchase reference lookup", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCreditTransactionRepository(db, newTestLogger())
		mock.ExpectQuery(`SELECT count\(\*\) FROM "credit_transactions" WHERE reason = \$1 AND reference = \$2`).
			WithArgs("purchase", "order-9").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByReference(ctx, entity.ReasonPurchase, "order-9")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
