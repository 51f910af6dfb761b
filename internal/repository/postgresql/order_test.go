package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"

	mock_database "shopgenie/internal/db/mocks"
	"shopgenie/internal/repository"
	"shopgenie/internal/repository/postgresql"
	"go.uber.org/mock/gomock"
)

func testOrder(now time.Time) *repository.Order {
	return &repository.Order{
		OrderID:    42,
		UserID:     "user-456",
		ProductID:  1,
		Quantity:   2,
		TotalPrice: 5598,
		Status:     repository.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestOrderRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns the generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		order := testOrder(now)
		order.OrderID = 0

		mockTx.EXPECT().Get(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(order.UserID),
			gomock.Eq(order.ProductID),
			gomock.Eq(order.Quantity),
			gomock.Eq(order.TotalPrice),
			gomock.Eq(order.Status),
			gomock.Eq(order.CreatedAt),
			gomock.Eq(order.UpdatedAt),
		).DoAndReturn(func(_ context.Context, dest *int64, _ string, _ ...interface{}) error {
			*dest = 42
			return nil
		})

		err := repo.CreateTx(ctx, mockTx, order)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), order.OrderID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		err := repo.CreateTx(ctx, mockTx, testOrder(time.Now().UTC()))
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("order found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		order := testOrder(now)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(42))).
			DoAndReturn(func(_ context.Context, dest *repository.Order, _ string, _ int64) error {
				*dest = *order
				return nil
			})

		got, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		got, err := repo.GetByID(ctx, 42)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, got)
	})
}

func TestOrderRepo_UpdateStatusTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(42)), gomock.Eq(repository.OrderStatusReturned), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateStatusTx(ctx, mockTx, 42, repository.OrderStatusReturned)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.UpdateStatusTx(ctx, mockTx, 42, repository.OrderStatusReturned)
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("limit applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		testOrders := []*repository.Order{testOrder(now)}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("user-456"), gomock.Eq(10)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Order, _ string, _ ...interface{}) error {
				*dest = testOrders
				return nil
			})

		orders, err := repo.GetByUserID(ctx, "user-456", 10)
		assert.NoError(t, err)
		assert.Equal(t, testOrders, orders)
	})

	t.Run("no limit fetches everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("user-456")).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Order, _ string, _ ...interface{}) error {
				*dest = nil
				return nil
			})

		orders, err := repo.GetByUserID(ctx, "user-456", 0)
		assert.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		orders, err := repo.GetByUserID(ctx, "user-456", 10)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, orders)
	})
}
