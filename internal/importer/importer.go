package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"menu-planner/internal/dish"
	"menu-planner/internal/llm"

	"github.com/PuerkitoBio/goquery"
)

// Importer fetches a recipe web page and normalizes it into a catalog dish.
// The catalog file ships pre-normalized dishes; this is the normalization
// step for new entries.
type Importer struct {
	textGen    llm.TextGenerator
	httpClient *http.Client
}

// NewImporter creates a new Importer instance.
func NewImporter(textGen llm.TextGenerator) *Importer {
	return &Importer{
		textGen:    textGen,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ImportURL fetches the URL, extracts a structured dish, and returns it with
// its category normalized. The caller decides whether to save it.
func (imp *Importer) ImportURL(ctx context.Context, url string) (*dish.Dish, error) {
	content, err := imp.fetchAndCleanHTML(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a dish extraction expert. Extract the dish details from the following page content.
Estimate calories and protein per serving when the page does not state them.
Category must be one of: eggs, legumes, fish, meat, other.
Meal slots must be a subset of: midday, evening.
Seasons must be a subset of: winter, spring, summer, autumn, or ["all seasons"].
Return the result strictly as a JSON object with this structure:
{
  "name": "Dish name",
  "category": "meat",
  "meal_slots": ["midday", "evening"],
  "seasons": ["all seasons"],
  "tags": ["light"],
  "nutrition": {"calories": 450, "protein": 30},
  "ingredients": [{"name": "chicken breast", "quantity": 200, "unit": "g"}, ...]
}

Do not include any other text or formatting in your response.

Page Content:
%s
`, content)

	resp, err := imp.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}

	var d dish.Dish
	if err := json.Unmarshal([]byte(resp), &d); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w. Response: %s", err, resp)
	}

	d = d.Normalize()
	if d.Name == "" {
		return nil, fmt.Errorf("extracted dish has no name")
	}
	if d.ID == "" {
		d.ID = slugify(d.Name)
	}
	return &d, nil
}

func (imp *Importer) fetchAndCleanHTML(url string) (string, error) {
	resp, err := imp.httpClient.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return doc.Find("body").Text(), nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
