package cache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"shopgenie/internal/metrics"
	"shopgenie/internal/repository"
)

type ProductRepository interface {
	List(ctx context.Context) ([]*repository.Product, error)
}

// ProductCache holds an in-memory copy of the catalog so ranking does not hit
// the database on every search. The store writes stock changes through after
// each committed transaction.
type ProductCache struct {
	mu    sync.RWMutex
	cache map[int64]*repository.Product
	repo  ProductRepository
}

func NewProductCache(repo ProductRepository) *ProductCache {
	return &ProductCache{
		cache: make(map[int64]*repository.Product),
		repo:  repo,
	}
}

func (c *ProductCache) LoadInitialData(ctx context.Context) error {
	products, err := c.repo.List(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[int64]*repository.Product, len(products))
	for _, product := range products {
		productCopy := *product
		c.cache[product.ID] = &productCopy
	}
	metrics.ProductCacheItems.Set(float64(len(c.cache)))
	zap.L().Info("product cache loaded", zap.Int("products", len(c.cache)))
	return nil
}

func (c *ProductCache) Get(id int64) (*repository.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, found := c.cache[id]
	if !found {
		return nil, false
	}
	productCopy := *product
	return &productCopy, true
}

func (c *ProductCache) Set(product *repository.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	productCopy := *product
	c.cache[product.ID] = &productCopy
	metrics.ProductCacheItems.Set(float64(len(c.cache)))
}

func (c *ProductCache) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.ProductCacheItems.Set(float64(len(c.cache)))
	}
}

// Snapshot returns the catalog in stable id order. The ranker relies on this
// ordering for deterministic tie-breaks.
func (c *ProductCache) Snapshot(ctx context.Context) ([]repository.Product, error) {
	c.mu.RLock()
	empty := len(c.cache) == 0
	c.mu.RUnlock()

	if empty {
		if err := c.LoadInitialData(ctx); err != nil {
			return nil, err
		}
	}

	c.mu.RLock()
	products := make([]repository.Product, 0, len(c.cache))
	for _, product := range c.cache {
		products = append(products, *product)
	}
	c.mu.RUnlock()

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}
