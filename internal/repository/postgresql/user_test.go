package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"

	mock_database "shopgenie/internal/db/mocks"
	"shopgenie/internal/repository/postgresql"
	"go.uber.org/mock/gomock"
)

func TestUserRepo_EnsureTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("user-456"), gomock.Any()).
			Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.EnsureTx(ctx, mockTx, "user-456")
		assert.NoError(t, err)
	})

	t.Run("conflict is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("user-456"), gomock.Any()).
			Return(pgconn.CommandTag("INSERT 0 0"), nil)

		err := repo.EnsureTx(ctx, mockTx, "user-456")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.EnsureTx(ctx, mockTx, "user-456")
		assert.Equal(t, expectedErr, err)
	})
}
