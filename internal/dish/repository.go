package dish

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	dishdb "menu-planner/internal/dish/db"
)

// Repository is the database-backed catalog store. Dish records are kept as
// JSON blobs keyed by ID; the catalog file stays the source of truth and the
// table is reseeded from it.
type Repository struct {
	queries *dishdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: dishdb.New(d),
		db:      d,
	}
}

// Save inserts or updates a dish.
func (r *Repository) Save(ctx context.Context, d Dish) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal dish to JSON: %w", err)
	}

	return r.queries.UpsertDish(ctx, dishdb.UpsertDishParams{
		ID:        d.ID,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	})
}

// Get retrieves a dish by ID. A missing dish returns (nil, nil).
func (r *Repository) Get(ctx context.Context, id string) (*Dish, error) {
	row, err := r.queries.GetDishByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dish by ID: %w", err)
	}

	var d Dish
	if err := json.Unmarshal([]byte(row.Data), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dish JSON: %w", err)
	}
	d = d.Normalize()
	return &d, nil
}

// List returns the whole catalog. Rows with corrupted JSON are logged and
// skipped rather than failing the read.
func (r *Repository) List(ctx context.Context) ([]Dish, error) {
	rows, err := r.queries.ListDishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	var dishes []Dish
	for _, row := range rows {
		var d Dish
		if err := json.Unmarshal([]byte(row.Data), &d); err != nil {
			log.Printf("Warning: failed to unmarshal dish JSON for ID %s: %v", row.ID, err)
			continue
		}
		dishes = append(dishes, d.Normalize())
	}
	return dishes, nil
}

// Count returns the number of dishes in the catalog.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountDishes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count dishes: %w", err)
	}
	return int(count), nil
}

// Delete removes a dish from the catalog.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteDish(ctx, id)
}
