package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"menu-planner/internal/app"
	"menu-planner/internal/config"
	"menu-planner/internal/database"
	"menu-planner/internal/dish"
	"menu-planner/internal/importer"
	"menu-planner/internal/kv"
	"menu-planner/internal/llm"
	"menu-planner/internal/menu"
	"menu-planner/internal/share"
	"menu-planner/internal/shopping"

	"github.com/go-redis/redis/v8"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	dishRepo := dish.NewRepository(db.SQL)
	menuRepo := menu.NewRepository(db.SQL)
	generator := menu.NewGenerator(menu.DefaultRules(), nil)

	tracker := shopping.NewPurchaseTracker(newKVClient(ctx, cfg))
	if err := tracker.Load(); err != nil {
		log.Printf("Warning: failed to load purchase state: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var sharer app.Sharer
	var dishImporter *importer.Importer

	switch os.Args[1] {
	case "share":
		if err := cfg.RequireTelegram(); err != nil {
			log.Fatalf("Sharing unavailable: %v", err)
		}
		s, err := share.NewTelegramSharer(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram: %v", err)
		}
		sharer = s
	case "clip":
		if err := cfg.RequireGemini(); err != nil {
			log.Fatalf("Importing unavailable: %v", err)
		}
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		if closer, ok := gemini.(llm.Closer); ok {
			defer closer.Close()
		}
		dishImporter = importer.NewImporter(gemini)
	}

	application := app.NewApp(cfg, dishRepo, menuRepo, generator, tracker, sharer, dishImporter)

	switch os.Args[1] {
	case "seed":
		if err := application.SeedCatalog(ctx); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	case "generate":
		if err := application.GenerateMenu(ctx); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
	case "list":
		if err := application.ShoppingList(ctx); err != nil {
			log.Fatalf("Shopping list failed: %v", err)
		}
	case "share":
		if err := application.Share(ctx); err != nil {
			log.Fatalf("Sharing failed: %v", err)
		}
	case "clip":
		if len(os.Args) < 3 {
			log.Fatal("Usage: menu-planner clip <url>")
		}
		if err := application.ClipDish(ctx, os.Args[2]); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
	case "report":
		reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
		out := reportCmd.String("out", "nutrition_report.html", "Output HTML file")
		reportCmd.Parse(os.Args[2:])

		if err := application.NutritionReport(ctx, *out); err != nil {
			log.Fatalf("Report failed: %v", err)
		}
	case "history":
		if err := application.History(ctx); err != nil {
			log.Fatalf("History failed: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// newKVClient connects to Redis when configured and falls back to in-memory
// state otherwise, so purchase marks just don't survive restarts.
func newKVClient(ctx context.Context, cfg *config.Config) kv.Client {
	if cfg.RedisAddr == "" {
		return kv.NewMockClient()
	}
	client, err := kv.NewRedisClient(ctx, redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}))
	if err != nil {
		log.Printf("Warning: %v; purchase state will not persist", err)
		return kv.NewMockClient()
	}
	return client
}

func printUsage() {
	fmt.Println("Usage: menu-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed        Load the catalog JSON file into the database")
	fmt.Println("  generate    Generate a new weekly menu")
	fmt.Println("  list        Print the shopping list for the current menu")
	fmt.Println("  share       Send the shopping list via Telegram")
	fmt.Println("  clip <url>  Import a dish from a recipe web page")
	fmt.Println("  report      Write the weekly nutrition chart to HTML")
	fmt.Println("  history     Show recently generated menus")
}
