package menu

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE menus (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		season TEXT NOT NULL,
		generated_at TEXT NOT NULL,
		data TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		t.Fatalf("failed to create menus table: %v", err)
	}
	return db
}

func weeklyMenuFixture(generatedAt string) *WeeklyMenu {
	m := &WeeklyMenu{GeneratedAt: generatedAt, Season: SeasonSummer}
	for _, day := range WeekDays {
		m.Days = append(m.Days, DayMenu{Day: day})
	}
	return m
}

func TestRepositorySaveAndLatest(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	if stored, err := repo.Latest(ctx); err != nil || stored != nil {
		t.Fatalf("empty store should read as (nil, nil), got (%v, %v)", stored, err)
	}

	id, err := repo.Save(ctx, weeklyMenuFixture("2025-07-07"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	stored, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if stored == nil || stored.ID != id {
		t.Fatalf("Latest = %+v, want ID %d", stored, id)
	}
	if stored.Menu.GeneratedAt != "2025-07-07" {
		t.Errorf("round-tripped GeneratedAt = %q", stored.Menu.GeneratedAt)
	}
	if len(stored.Menu.Days) != 7 {
		t.Errorf("round-tripped menu has %d days", len(stored.Menu.Days))
	}
}

func TestRepositoryHistoryCap(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < HistoryLimit+3; i++ {
		if _, err := repo.Save(ctx, weeklyMenuFixture(fmt.Sprintf("2025-07-%02d", i+1))); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
		time.Sleep(time.Millisecond)
	}

	menus, err := repo.ListRecent(ctx, HistoryLimit+3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(menus) != HistoryLimit {
		t.Fatalf("history holds %d menus, want %d", len(menus), HistoryLimit)
	}
	// Newest first; the most recent save survives pruning.
	if menus[0].Menu.GeneratedAt != fmt.Sprintf("2025-07-%02d", HistoryLimit+3) {
		t.Errorf("newest menu = %q", menus[0].Menu.GeneratedAt)
	}
}

func TestRepositoryUpdate(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Save(ctx, weeklyMenuFixture("2025-07-07"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	changed := weeklyMenuFixture("2025-07-07")
	changed.Days[0].Meals.Midday = &Meal{DishID: "cod", Name: "Baked cod"}
	if err := repo.Update(ctx, id, changed); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	got := stored.Menu.Meal("Monday", "midday")
	if got == nil || got.DishID != "cod" {
		t.Errorf("updated cell = %+v, want cod", got)
	}
}
