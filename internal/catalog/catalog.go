// Package catalog loads product catalogue snapshots.
//
// A snapshot is a gzipped JSON Lines file with one model.Product per line.
// Snapshots can be read from the local file system or from S3.
package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"kart-compare/internal/model"
)

// Loader defines the interface for loading catalogue snapshots.
type Loader interface {
	// Load reads a gzipped JSON Lines snapshot and returns its products in
	// file order.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// cancelCheckInterval is how many lines are read between context checks.
const cancelCheckInterval = 10_000

// readSnapshot decodes a gzipped JSON Lines stream. Blank lines are skipped
// and a later line with an already seen ID replaces the earlier product in
// place.
func readSnapshot(ctx context.Context, r io.Reader) ([]model.Product, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	products := []model.Product{}
	index := make(map[string]int)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		if lineNumber%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p model.Product
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("line %d: invalid product: %w", lineNumber, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("line %d: product id is required", lineNumber)
		}

		if i, seen := index[p.ID]; seen {
			products[i] = p
			continue
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	// A context cancelled before a short file finished is still reported.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// WriteSnapshot writes products to w in the snapshot format.
func WriteSnapshot(w io.Writer, products []model.Product) error {
	gzipWriter := gzip.NewWriter(w)

	encoder := json.NewEncoder(gzipWriter)
	encoder.SetEscapeHTML(false)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			gzipWriter.Close()
			return fmt.Errorf("failed to write product %s: %w", p.ID, err)
		}
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}

	return nil
}
