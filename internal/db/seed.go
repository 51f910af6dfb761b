package db

import (
	"context"
	"fmt"
)

type seedProduct struct {
	name     string
	category string
	brand    string
	price    int64
	color    string
	features []string
	rating   float64
	stock    int
	image    string
}

var seedCatalog = []seedProduct{
	{
		name:     "Nike Revolution 6",
		category: "running shoes",
		brand:    "nike",
		price:    2799,
		color:    "black",
		features: []string{"cushioned", "breathable", "lightweight", "durable"},
		rating:   4.5,
		stock:    12,
		image:    "images/1.jpeg",
	},
	{
		name:     "Samsung Galaxy M14",
		category: "smartphones",
		brand:    "samsung",
		price:    12999,
		color:    "blue",
		features: []string{"battery", "camera", "display", "5g"},
		rating:   4.2,
		stock:    4,
		image:    "images/2.jpeg",
	},
	{
		name:     "Adidas Ultraboost 22",
		category: "running shoes",
		brand:    "adidas",
		price:    3999,
		color:    "white",
		features: []string{"cushioned", "responsive", "energy-return", "breathable"},
		rating:   4.7,
		stock:    8,
		image:    "images/3.jpeg",
	},
}

// SeedProducts inserts the starter catalog if the products table is empty.
func SeedProducts(ctx context.Context, database *Database) error {
	var count int
	if err := database.ExecQueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedCatalog {
		_, err := database.Exec(ctx, `
            INSERT INTO products (name, category, brand, price, color, features, rating, stock, image, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
        `, p.name, p.category, p.brand, p.price, p.color, p.features, p.rating, p.stock, p.image)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}
	return nil
}
