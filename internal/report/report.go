package report

import (
	"fmt"
	"os"

	"menu-planner/internal/menu"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteNutritionReport renders the week's daily calories and protein as a
// bar chart in a standalone HTML file.
func WriteNutritionReport(m *menu.WeeklyMenu, outputPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Nutrition",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Weekly nutrition (%s)", m.Season),
			Subtitle: "Generated " + m.GeneratedAt,
		}),
	)

	days := make([]string, 0, len(m.Days))
	calories := make([]opts.BarData, 0, len(m.Days))
	protein := make([]opts.BarData, 0, len(m.Days))
	for _, day := range m.Days {
		n := menu.DayNutrients(day.Meals.Midday, day.Meals.Evening)
		days = append(days, day.Day)
		calories = append(calories, opts.BarData{Value: n.Calories})
		protein = append(protein, opts.BarData{Value: n.Protein})
	}

	bar.SetXAxis(days).
		AddSeries("Calories (kcal)", calories).
		AddSeries("Protein (g)", protein)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
