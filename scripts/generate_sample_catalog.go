//go:build ignore

// Generates data/catalog/products.jsonl.gz from the built-in seed catalogue
// plus a few extra products, for running with CATALOG_SOURCE=file or
// importing with `sharectl import --file`.
//
// Usage: go run scripts/generate_sample_catalog.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"kart-compare/internal/catalog"
	"kart-compare/internal/model"
)

func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	createdAt := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	products := append(catalog.SeedProducts(),
		model.Product{
			ID:          "7",
			Name:        "亞麻休閒襯衫",
			Description: "透氣亞麻材質，夏日首選。",
			Price:       990,
			Image:       "/images/products/linen-shirt.jpg",
			Images:      []string{"/images/products/linen-shirt.jpg"},
			Category:    "上衣",
			Rating:      4.1,
			Reviews:     42,
			Features:    []string{"100% 亞麻", "寬鬆版型"},
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"米白", "淺灰"},
			InStock:     true,
			CreatedAt:   createdAt,
		},
		model.Product{
			ID:          "8",
			Name:        "帆布托特包",
			Description: "大容量帆布包，通勤購物都好用。",
			Price:       680,
			Image:       "/images/products/canvas-tote.jpg",
			Images:      []string{"/images/products/canvas-tote.jpg"},
			Category:    "配件",
			Rating:      4.6,
			Reviews:     87,
			Features:    []string{"加厚帆布", "內袋設計"},
			Colors:      []string{"原色", "黑色"},
			InStock:     true,
			CreatedAt:   createdAt,
		},
	)

	filePath := filepath.Join(dataDir, "products.jsonl.gz")
	if err := writeCatalog(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func writeCatalog(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := catalog.WriteSnapshot(file, products); err != nil {
		return err
	}

	return file.Close()
}
