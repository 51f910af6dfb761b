package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"

	mock_database "shopgenie/internal/db/mocks"
	"shopgenie/internal/repository"
	"shopgenie/internal/repository/postgresql"
	"go.uber.org/mock/gomock"
)

func TestOutboxTaskRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		task := &repository.OutboxTask{
			Payload: []byte(`{"order_id":42}`),
			Topic:   "shop_events",
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(repository.TaskStatusCreated),
			gomock.Eq(task.Payload),
			gomock.Eq(task.Topic),
			gomock.Any(),
			gomock.Any(),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.CreateTx(ctx, mockTx, task)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID)
	})

	t.Run("keeps a preset id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		presetID := uuid.New()
		task := &repository.OutboxTask{
			ID:      presetID,
			Payload: []byte(`{}`),
			Topic:   "shop_events",
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(presetID),
			gomock.Eq(repository.TaskStatusCreated),
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.CreateTx(ctx, mockTx, task)
		assert.NoError(t, err)
		assert.Equal(t, presetID, task.ID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.OutboxTask{Topic: "shop_events"})
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestOutboxTaskRepo_GetProcessableTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		testTasks := []*repository.OutboxTask{
			{ID: uuid.New(), Status: repository.TaskStatusCreated, Topic: "shop_events"},
		}

		mockDB.EXPECT().Select(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(repository.TaskStatusCreated),
			gomock.Eq(repository.TaskStatusFailed),
			gomock.Eq(5),
			gomock.Eq(20),
		).DoAndReturn(func(_ context.Context, dest *[]*repository.OutboxTask, _ string, _ ...interface{}) error {
			*dest = testTasks
			return nil
		})

		tasks, err := repo.GetProcessableTasks(ctx, mockDB, 20)
		assert.NoError(t, err)
		assert.Equal(t, testTasks, tasks)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		tasks, err := repo.GetProcessableTasks(ctx, mockDB, 20)
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, tasks)
	})
}

func TestOutboxTaskRepo_UpdateTaskStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("tx variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		id := uuid.New()
		completedAt := time.Now().UTC()

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(id),
			gomock.Eq(repository.TaskStatusDone),
			gomock.Eq(1),
			gomock.Nil(),
			gomock.Eq(&completedAt),
			gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateTaskStatusTx(ctx, mockTx, id, repository.TaskStatusDone, 1, nil, &completedAt)
		assert.NoError(t, err)
	})

	t.Run("pool variant records the failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		id := uuid.New()
		lastError := "kafka unreachable"

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(id),
			gomock.Eq(repository.TaskStatusFailed),
			gomock.Eq(2),
			gomock.Eq(&lastError),
			gomock.Nil(),
			gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateTaskStatus(ctx, mockDB, id, repository.TaskStatusFailed, 2, &lastError, nil)
		assert.NoError(t, err)
	})
}
