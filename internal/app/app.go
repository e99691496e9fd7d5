package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"menu-planner/internal/config"
	"menu-planner/internal/dish"
	"menu-planner/internal/importer"
	"menu-planner/internal/menu"
	"menu-planner/internal/report"
	"menu-planner/internal/shopping"
)

// Sharer delivers a shopping list to the outside world.
type Sharer interface {
	ShareShoppingList(list shopping.List) error
}

// App holds the application's dependencies and implements the CLI commands.
type App struct {
	cfg          *config.Config
	dishRepo     *dish.Repository
	menuRepo     *menu.Repository
	generator    *menu.Generator
	tracker      *shopping.PurchaseTracker
	sharer       Sharer
	dishImporter *importer.Importer
}

// NewApp creates and initializes a new App instance. sharer and dishImporter
// may be nil when their commands are not used.
func NewApp(
	cfg *config.Config,
	dishRepo *dish.Repository,
	menuRepo *menu.Repository,
	generator *menu.Generator,
	tracker *shopping.PurchaseTracker,
	sharer Sharer,
	dishImporter *importer.Importer,
) *App {
	return &App{
		cfg:          cfg,
		dishRepo:     dishRepo,
		menuRepo:     menuRepo,
		generator:    generator,
		tracker:      tracker,
		sharer:       sharer,
		dishImporter: dishImporter,
	}
}

// SeedCatalog loads the catalog file and upserts every dish into the
// database.
func (a *App) SeedCatalog(ctx context.Context) error {
	fmt.Printf("Seeding catalog from %s...\n", a.cfg.CatalogPath)

	dishes, err := dish.LoadCatalog(a.cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	for _, d := range dishes {
		if err := a.dishRepo.Save(ctx, d); err != nil {
			log.Printf("Failed to save dish '%s': %v", d.Name, err)
			continue
		}
	}

	count, err := a.dishRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count dishes: %w", err)
	}
	fmt.Printf("Catalog seeded: %d dishes.\n", count)
	return nil
}

// GenerateMenu creates a weekly menu, stores it as the current menu, resets
// purchase state, and prints the result.
func (a *App) GenerateMenu(ctx context.Context) error {
	catalog, err := a.dishRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(catalog) == 0 {
		return fmt.Errorf("catalog is empty; run the seed command first")
	}

	m := a.generator.Generate(catalog, time.Now())
	if _, err := a.menuRepo.Save(ctx, m); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	if err := a.tracker.Reset(); err != nil {
		log.Printf("Warning: failed to reset purchase state: %v", err)
	}

	fmt.Printf("\n=== WEEKLY MENU (%s) ===\n", m.Season)
	for _, day := range m.Days {
		fmt.Printf("%-10s midday:  %s\n", day.Day, mealName(day.Meals.Midday))
		fmt.Printf("%-10s evening: %s\n", "", mealName(day.Meals.Evening))
	}
	return nil
}

// ShoppingList derives the categorized shopping list for the current menu
// and prints its shareable text form.
func (a *App) ShoppingList(ctx context.Context) error {
	list, err := a.buildList(ctx)
	if err != nil {
		return err
	}
	fmt.Print(shopping.FormatText(list))
	return nil
}

// Share sends the current shopping list through the configured share
// collaborator.
func (a *App) Share(ctx context.Context) error {
	if a.sharer == nil {
		return fmt.Errorf("sharing is not configured")
	}
	list, err := a.buildList(ctx)
	if err != nil {
		return err
	}
	if err := a.sharer.ShareShoppingList(list); err != nil {
		return err
	}
	fmt.Println("Shopping list shared.")
	return nil
}

// ClipDish imports a dish from a recipe URL into the catalog.
func (a *App) ClipDish(ctx context.Context, url string) error {
	if a.dishImporter == nil {
		return fmt.Errorf("importing is not configured")
	}
	fmt.Printf("Importing dish from %s...\n", url)

	d, err := a.dishImporter.ImportURL(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to import dish: %w", err)
	}
	if err := a.dishRepo.Save(ctx, *d); err != nil {
		return fmt.Errorf("failed to save imported dish: %w", err)
	}

	fmt.Printf("Imported '%s' (%s, %g kcal).\n", d.Name, d.Category, d.Nutrition.Calories)
	return nil
}

// NutritionReport writes the current menu's nutrition chart to an HTML file.
func (a *App) NutritionReport(ctx context.Context, outputPath string) error {
	stored, err := a.currentMenu(ctx)
	if err != nil {
		return err
	}
	if err := report.WriteNutritionReport(stored.Menu, outputPath); err != nil {
		return err
	}
	fmt.Printf("Nutrition report written to %s.\n", outputPath)
	return nil
}

// History prints the stored menu history, newest first.
func (a *App) History(ctx context.Context) error {
	menus, err := a.menuRepo.ListRecent(ctx, menu.HistoryLimit)
	if err != nil {
		return fmt.Errorf("failed to list menu history: %w", err)
	}
	if len(menus) == 0 {
		fmt.Println("No menus generated yet.")
		return nil
	}
	for _, sm := range menus {
		fmt.Printf("#%d  %s  season=%s  dishes=%d\n",
			sm.ID, sm.Menu.GeneratedAt, sm.Menu.Season, len(sm.Menu.UsedDishIDs()))
	}
	return nil
}

func (a *App) buildList(ctx context.Context) (shopping.List, error) {
	stored, err := a.currentMenu(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := a.dishRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return shopping.Build(stored.Menu, catalog), nil
}

func (a *App) currentMenu(ctx context.Context) (*menu.StoredMenu, error) {
	stored, err := a.menuRepo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current menu: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("no menu generated yet; run the generate command first")
	}
	return stored, nil
}

func mealName(m *menu.Meal) string {
	if m == nil {
		return "(empty)"
	}
	return m.Name
}
