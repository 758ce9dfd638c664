// Package loader wires the workbook decoder to the portfolio store.
package loader

import (
	"github.com/estateworks/estates-go/internal/portfolio"
	"github.com/estateworks/estates-go/internal/workbook"
)

// Open loads and normalizes the workbook at path into a fresh store.
func Open(path string) (*portfolio.Store, error) {
	store := portfolio.NewStore()
	if err := Reload(store, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Reload re-reads the workbook and replaces the store's contents wholesale.
// On failure the store is left untouched: normalization runs to completion
// before any mutation.
func Reload(store *portfolio.Store, path string) error {
	input, err := workbook.Load(path)
	if err != nil {
		return err
	}
	store.Replace(portfolio.Normalize(input))
	return nil
}
