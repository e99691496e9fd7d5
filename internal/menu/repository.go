package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	menudb "menu-planner/internal/menu/menu_db"
)

// HistoryLimit caps how many generated menus are kept. Each successful
// generation supersedes the previous current menu; older ones age out.
const HistoryLimit = 10

// StoredMenu pairs a persisted menu with its database identity.
type StoredMenu struct {
	ID        int64
	Menu      *WeeklyMenu
	CreatedAt time.Time
}

// Repository is the database-backed store for generated menus.
type Repository struct {
	queries *menudb.Queries
	db      *sql.DB
}

// NewRepository creates a new menu Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: menudb.New(d),
		db:      d,
	}
}

// Save persists a freshly generated menu as the new current menu and prunes
// history beyond HistoryLimit.
func (r *Repository) Save(ctx context.Context, m *WeeklyMenu) (int64, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal menu: %w", err)
	}

	id, err := r.queries.InsertMenu(ctx, menudb.InsertMenuParams{
		Season:      string(m.Season),
		GeneratedAt: m.GeneratedAt,
		Data:        string(data),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert menu: %w", err)
	}

	if err := r.queries.PruneMenus(ctx, HistoryLimit); err != nil {
		return 0, fmt.Errorf("failed to prune menu history: %w", err)
	}
	return id, nil
}

// Latest returns the current menu, or (nil, nil) when none has been
// generated yet.
func (r *Repository) Latest(ctx context.Context) (*StoredMenu, error) {
	row, err := r.queries.GetLatestMenu(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest menu: %w", err)
	}
	return storedFromRow(row)
}

// Update rewrites a stored menu in place, used after a single-cell
// substitution.
func (r *Repository) Update(ctx context.Context, id int64, m *WeeklyMenu) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}
	return r.queries.UpdateMenuData(ctx, menudb.UpdateMenuDataParams{
		Data: string(data),
		ID:   id,
	})
}

// ListRecent returns up to limit menus, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]StoredMenu, error) {
	rows, err := r.queries.ListRecentMenus(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent menus: %w", err)
	}

	var menus []StoredMenu
	for _, row := range rows {
		sm, err := storedFromRow(row)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *sm)
	}
	return menus, nil
}

func storedFromRow(row menudb.Menu) (*StoredMenu, error) {
	var m WeeklyMenu
	if err := json.Unmarshal([]byte(row.Data), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu JSON for ID %d: %w", row.ID, err)
	}
	return &StoredMenu{
		ID:        row.ID,
		Menu:      &m,
		CreatedAt: row.CreatedAt,
	}, nil
}
