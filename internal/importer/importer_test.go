package importer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menu-planner/internal/dish"
)

type stubTextGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

const recipePage = `<html>
<head><script>tracking();</script><style>body{}</style></head>
<body>
<nav>Home | Recipes</nav>
<h1>Baked Cod with Potatoes</h1>
<p>A simple oven dish with cod, potatoes and onion.</p>
<footer>Copyright</footer>
</body>
</html>`

func TestImportURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, recipePage)
	}))
	defer srv.Close()

	stub := &stubTextGenerator{response: `{
		"name": "Baked Cod with Potatoes",
		"category": "Fish",
		"meal_slots": ["midday", "evening"],
		"seasons": ["all seasons"],
		"nutrition": {"calories": 520, "protein": 35},
		"ingredients": [{"name": "cod", "quantity": 300, "unit": "g"}]
	}`}

	imp := NewImporter(stub)
	d, err := imp.ImportURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ImportURL: %v", err)
	}

	if d.ID != "baked-cod-with-potatoes" {
		t.Errorf("expected slugified ID, got %q", d.ID)
	}
	if d.Category != dish.CategoryFish {
		t.Errorf("category not normalized: %q", d.Category)
	}
	if d.Nutrition.Calories != 520 {
		t.Errorf("calories = %g", d.Nutrition.Calories)
	}

	if !strings.Contains(stub.prompt, "Baked Cod with Potatoes") {
		t.Error("page content missing from prompt")
	}
	if strings.Contains(stub.prompt, "tracking()") {
		t.Error("script content should be stripped from the prompt")
	}
	if strings.Contains(stub.prompt, "Home | Recipes") {
		t.Error("nav content should be stripped from the prompt")
	}
}

func TestImportURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	imp := NewImporter(&stubTextGenerator{})
	if _, err := imp.ImportURL(context.Background(), srv.URL); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestImportURLInvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, recipePage)
	}))
	defer srv.Close()

	t.Run("not json", func(t *testing.T) {
		imp := NewImporter(&stubTextGenerator{response: "Sure! Here is the dish:"})
		if _, err := imp.ImportURL(context.Background(), srv.URL); err == nil {
			t.Error("expected error on unparseable response")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		imp := NewImporter(&stubTextGenerator{response: `{"category": "fish"}`})
		if _, err := imp.ImportURL(context.Background(), srv.URL); err == nil {
			t.Error("expected error on dish without a name")
		}
	})

	t.Run("generator error", func(t *testing.T) {
		imp := NewImporter(&stubTextGenerator{err: fmt.Errorf("quota exceeded")})
		if _, err := imp.ImportURL(context.Background(), srv.URL); err == nil {
			t.Error("expected error when generation fails")
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Baked Cod":          "baked-cod",
		"  Crème brûlée!  ":  "cr-me-br-l-e",
		"Rice & Beans (big)": "rice-beans-big",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
