package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopgenie/internal/catalog"
	mock_catalog "shopgenie/internal/catalog/mocks"
	"shopgenie/internal/repository"
)

func seedCatalog() []repository.Product {
	return []repository.Product{
		{
			ID:       1,
			Name:     "Nike Revolution 6",
			Category: "Shoes",
			Brand:    "Nike",
			Price:    2799,
			Color:    "Black",
			Features: []string{"lightweight", "breathable"},
			Rating:   4.5,
			Stock:    12,
		},
		{
			ID:       2,
			Name:     "Samsung Galaxy M14",
			Category: "Electronics",
			Brand:    "Samsung",
			Price:    12999,
			Color:    "Blue",
			Features: []string{"5G", "6000mAh battery"},
			Rating:   4.2,
			Stock:    5,
		},
		{
			ID:       3,
			Name:     "Adidas Ultraboost 22",
			Category: "Shoes",
			Brand:    "Adidas",
			Price:    3999,
			Color:    "White",
			Features: []string{"boost cushioning", "lightweight"},
			Rating:   4.7,
			Stock:    2,
		},
	}
}

func intPtr(v int64) *int64 { return &v }

func TestRanker_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters returns everything ranked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(seedCatalog(), nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{})
		require.NoError(t, err)

		require.Len(t, result.Products, 3)
		assert.Equal(t, 3, result.TotalFound)

		// Nike: 4.5*20 = 90. Samsung: 4.2*20 = 84.
		// Adidas: 4.7*20 - 20 (low stock) = 74.
		assert.Equal(t, int64(1), result.Products[0].ID)
		assert.InDelta(t, 90.0, result.Products[0].Score, 0.001)
		assert.Equal(t, int64(2), result.Products[1].ID)
		assert.InDelta(t, 84.0, result.Products[1].Score, 0.001)
		assert.Equal(t, int64(3), result.Products[2].ID)
		assert.InDelta(t, 74.0, result.Products[2].Score, 0.001)
	})

	t.Run("max price is an inclusive cutoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(seedCatalog(), nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{MaxPrice: intPtr(3000)})
		require.NoError(t, err)

		require.Len(t, result.Products, 1)
		assert.Equal(t, "Nike Revolution 6", result.Products[0].Name)
		assert.InDelta(t, 90.0, result.Products[0].Score, 0.001)
	})

	t.Run("name match adds weighted similarity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(seedCatalog(), nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{Name: "nike"})
		require.NoError(t, err)

		// Containment scores 100, weighted by 0.5 on top of 4.5*20.
		require.Len(t, result.Products, 1)
		assert.InDelta(t, 140.0, result.Products[0].Score, 0.001)
	})

	t.Run("name below threshold excludes the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(seedCatalog(), nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{Name: "washing machine"})
		require.NoError(t, err)

		assert.Empty(t, result.Products)
		assert.Equal(t, 0, result.TotalFound)
	})

	t.Run("category filter narrows and boosts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(seedCatalog(), nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{Category: "shoes"})
		require.NoError(t, err)

		require.Len(t, result.Products, 2)
		// Nike: 90 + 100*0.3 = 120. Adidas: 94 + 30 - 20 = 104.
		assert.Equal(t, int64(1), result.Products[0].ID)
		assert.InDelta(t, 120.0, result.Products[0].Score, 0.001)
		assert.Equal(t, int64(3), result.Products[1].ID)
		assert.InDelta(t, 104.0, result.Products[1].Score, 0.001)
	})

	t.Run("features require at least one overlap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(seedCatalog(), nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{Features: []string{"lightweight", "waterproof"}})
		require.NoError(t, err)

		// Only the two shoes carry "lightweight"; each gets one feature bonus.
		require.Len(t, result.Products, 2)
		assert.InDelta(t, 100.0, result.Products[0].Score, 0.001)
		assert.InDelta(t, 84.0, result.Products[1].Score, 0.001)
	})

	t.Run("out of stock penalty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := seedCatalog()
		products[0].Stock = 0

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(products, nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{Name: "nike"})
		require.NoError(t, err)

		require.Len(t, result.Products, 1)
		assert.InDelta(t, 90.0, result.Products[0].Score, 0.001)
		assert.Equal(t, 0, result.Products[0].Stock)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := []repository.Product{
			{ID: 10, Name: "A", Rating: 4.0, Stock: 5},
			{ID: 11, Name: "B", Rating: 4.0, Stock: 5},
			{ID: 12, Name: "C", Rating: 4.0, Stock: 5},
		}
		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(products, nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{})
		require.NoError(t, err)

		require.Len(t, result.Products, 3)
		assert.Equal(t, int64(10), result.Products[0].ID)
		assert.Equal(t, int64(11), result.Products[1].ID)
		assert.Equal(t, int64(12), result.Products[2].ID)
	})

	t.Run("empty catalog is an empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(nil, nil)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{})
		require.NoError(t, err)
		assert.Empty(t, result.Products)
		assert.Equal(t, 0, result.TotalFound)
	})

	t.Run("snapshot error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expectedErr := errors.New("database error")
		source := mock_catalog.NewMockSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any()).Return(nil, expectedErr)

		ranker := catalog.NewRanker(source)
		result, err := ranker.Search(ctx, catalog.Filters{})
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, result)
	})
}
