// internal/repository/repository.go
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/roofdesk/internal/model"
)

// Seed imports ds into s unless s already holds data. It reports whether
// anything was written.
func Seed(ctx context.Context, s Seeder, ds model.Dataset) (bool, error) {
	has, err := s.HasData(ctx)
	if err != nil {
		return false, fmt.Errorf("checking existing data: %w", err)
	}
	if has {
		slog.InfoContext(ctx, "Store already seeded, skipping import")
		return false, nil
	}

	if err := s.Import(ctx, ds); err != nil {
		return false, fmt.Errorf("importing dataset: %w", err)
	}

	slog.InfoContext(ctx, "Seeded store",
		"organizations", len(ds.Organizations),
		"departments", len(ds.Departments),
		"users", len(ds.Users),
		"reports", len(ds.Reports),
		"quotes", len(ds.Quotes),
	)
	return true, nil
}
