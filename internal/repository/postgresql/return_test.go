package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"

	mock_database "shopgenie/internal/db/mocks"
	"shopgenie/internal/repository"
	"shopgenie/internal/repository/postgresql"
	"go.uber.org/mock/gomock"
)

func TestReturnRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns the generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		ret := &repository.ReturnRequest{
			OrderID:      42,
			UserID:       "user-456",
			Reason:       "broken",
			Status:       repository.ReturnStatusRequested,
			RefundAmount: 5598,
			CreatedAt:    now,
		}

		mockTx.EXPECT().Get(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(ret.OrderID),
			gomock.Eq(ret.UserID),
			gomock.Eq(ret.Reason),
			gomock.Eq(ret.Status),
			gomock.Eq(ret.RefundAmount),
			gomock.Eq(ret.CreatedAt),
			gomock.Nil(),
		).DoAndReturn(func(_ context.Context, dest *int64, _ string, _ ...interface{}) error {
			*dest = 7
			return nil
		})

		err := repo.CreateTx(ctx, mockTx, ret)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), ret.ReturnID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.ReturnRequest{OrderID: 42})
		assert.Equal(t, expectedErr, err)
	})
}

func TestReturnRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("return found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		testReturn := &repository.ReturnRequest{
			ReturnID:     7,
			OrderID:      42,
			UserID:       "user-456",
			Status:       repository.ReturnStatusRequested,
			RefundAmount: 5598,
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
			DoAndReturn(func(_ context.Context, dest *repository.ReturnRequest, _ string, _ int64) error {
				*dest = *testReturn
				return nil
			})

		ret, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, testReturn, ret)
	})

	t.Run("return not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		ret, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, ret)
	})
}

func TestReturnRepo_CountByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("user-456")).
			DoAndReturn(func(_ context.Context, dest *int, _ string, _ string) error {
				*dest = 3
				return nil
			})

		count, err := repo.CountByUserID(ctx, "user-456")
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		count, err := repo.CountByUserID(ctx, "user-456")
		assert.Equal(t, expectedErr, err)
		assert.Zero(t, count)
	})
}

func TestReturnRepo_CountByOrderID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(42))).
			DoAndReturn(func(_ context.Context, dest *int, _ string, _ int64) error {
				*dest = 1
				return nil
			})

		count, err := repo.CountByOrderID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestReturnRepo_GetPaginated(t *testing.T) {
	ctx := context.Background()

	t.Run("offset computed from page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		testReturns := []*repository.ReturnRequest{{ReturnID: 7}}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(20), gomock.Eq(20)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.ReturnRequest, _ string, _ ...interface{}) error {
				*dest = testReturns
				return nil
			})

		returns, err := repo.GetPaginated(ctx, 2, 20)
		assert.NoError(t, err)
		assert.Equal(t, testReturns, returns)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		returns, err := repo.GetPaginated(ctx, 1, 20)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, returns)
	})
}
