package services

import (
	"errors"
	"testing"

	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
	"github.com/ghuser/zwitch/services/listing/domain/models"
)

func TestComposeDashboard_NoLocality(t *testing.T) {
	for _, locality := range []string{"", "   "} {
		_, err := ComposeDashboard(Criteria{Locality: locality, Category: CategoryAll})
		if !errors.Is(err, listingdomain.ErrLocalityRequired) {
			t.Fatalf("locality %q: expected ErrLocalityRequired, got %v", locality, err)
		}
	}
}

func TestComposeDashboard_BrowseAll(t *testing.T) {
	plan, err := ComposeDashboard(Criteria{Locality: "Kothrud", Category: CategoryAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("main query filters status and locality only", func(t *testing.T) {
		if plan.Main.Status != models.StatusAvailable {
			t.Errorf("expected Available status, got %v", plan.Main.Status)
		}
		if plan.Main.Locality != "Kothrud" {
			t.Errorf("expected locality Kothrud, got %q", plan.Main.Locality)
		}
		if plan.Main.Category != "" {
			t.Errorf("expected no category filter, got %q", plan.Main.Category)
		}
		if plan.Main.SortByTitle {
			t.Error("expected default posted_at ordering when not searching")
		}
	})

	t.Run("featured carousel capped and locality-scoped", func(t *testing.T) {
		if plan.Featured == nil {
			t.Fatal("expected featured sub-query")
		}
		if !plan.Featured.FeaturedOnly {
			t.Error("expected FeaturedOnly")
		}
		if plan.Featured.Locality != "Kothrud" {
			t.Errorf("expected locality Kothrud, got %q", plan.Featured.Locality)
		}
		if plan.Featured.Limit != CarouselLimit {
			t.Errorf("expected limit %d, got %d", CarouselLimit, plan.Featured.Limit)
		}
	})

	t.Run("donation carousel capped and locality-scoped", func(t *testing.T) {
		if plan.Donations == nil {
			t.Fatal("expected donations sub-query")
		}
		if plan.Donations.ListingType != models.ListingTypeDonate {
			t.Errorf("expected Donate filter, got %q", plan.Donations.ListingType)
		}
		if plan.Donations.Limit != CarouselLimit {
			t.Errorf("expected limit %d, got %d", CarouselLimit, plan.Donations.Limit)
		}
	})

	if plan.TitleSearch != "" {
		t.Errorf("expected no title search, got %q", plan.TitleSearch)
	}
}

func TestComposeDashboard_CategoryAndSearch(t *testing.T) {
	plan, err := ComposeDashboard(Criteria{Locality: "Baner", Category: "Laptops", Search: "xps"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Main.Locality != "Baner" {
		t.Errorf("expected locality Baner, got %q", plan.Main.Locality)
	}
	if plan.Main.Category != models.CategoryLaptops {
		t.Errorf("expected Laptops category filter, got %q", plan.Main.Category)
	}
	if plan.TitleSearch != "xps" {
		t.Errorf("expected active title search, got %q", plan.TitleSearch)
	}
	if !plan.Main.SortByTitle {
		t.Error("expected title ordering while searching")
	}
	if plan.Featured != nil || plan.Donations != nil {
		t.Error("expected carousels suppressed for a filtered view")
	}
}

func TestComposeDashboard_CategoryOnlySuppressesCarousels(t *testing.T) {
	plan, err := ComposeDashboard(Criteria{Locality: "Baner", Category: "Mobiles"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Featured != nil || plan.Donations != nil {
		t.Error("expected carousels suppressed when a category filter is active")
	}
	if plan.TitleSearch != "" {
		t.Errorf("expected no search, got %q", plan.TitleSearch)
	}
}

func TestComposeDashboard_ShortSearchIgnored(t *testing.T) {
	plan, err := ComposeDashboard(Criteria{Locality: "Kothrud", Category: CategoryAll, Search: "xp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TitleSearch != "" {
		t.Errorf("expected sub-minimum search to be ignored, got %q", plan.TitleSearch)
	}
	if plan.Main.SortByTitle {
		t.Error("expected default ordering when search is inactive")
	}
	if plan.Featured == nil || plan.Donations == nil {
		t.Error("expected carousels present when search is inactive")
	}
}

func TestComposeDashboard_EmptyCategoryMeansAll(t *testing.T) {
	plan, err := ComposeDashboard(Criteria{Locality: "Kothrud"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Main.Category != "" {
		t.Errorf("expected no category filter, got %q", plan.Main.Category)
	}
	if plan.Featured == nil {
		t.Error("expected carousels for browse-all view")
	}
}

func testItem(t *testing.T, title string) *models.Item {
	t.Helper()
	tt, err := models.NewTitle(title)
	if err != nil {
		t.Fatalf("invalid test title %q: %v", title, err)
	}
	price := int64(1000)
	item, err := models.NewItem(
		tt, "desc", models.CategoryLaptops, models.ConditionGood,
		models.ListingTypeSell, &price, nil, "Baner",
		models.Owner{Name: "seller"},
	)
	if err != nil {
		t.Fatalf("build test item: %v", err)
	}
	return item
}

func TestFilterByTitle(t *testing.T) {
	items := []*models.Item{
		testItem(t, "Dell XPS 13"),
		testItem(t, "Apple MacBook Air"),
		testItem(t, "dell xps 15 touch"),
		testItem(t, "Lenovo ThinkPad"),
	}

	t.Run("case-insensitive substring match", func(t *testing.T) {
		got := FilterByTitle(items, "xps")
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].Title != "Dell XPS 13" || got[1].Title != "dell xps 15 touch" {
			t.Fatalf("unexpected matches: %q, %q", got[0].Title, got[1].Title)
		}
	})

	t.Run("mixed-case needle", func(t *testing.T) {
		got := FilterByTitle(items, "XpS")
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
	})

	t.Run("short search is a no-op", func(t *testing.T) {
		got := FilterByTitle(items, "xp")
		if len(got) != len(items) {
			t.Fatalf("expected unfiltered set, got %d of %d", len(got), len(items))
		}
	})

	t.Run("whitespace-padded search is trimmed", func(t *testing.T) {
		got := FilterByTitle(items, "  xps  ")
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
	})

	t.Run("no matches yields empty non-nil slice", func(t *testing.T) {
		got := FilterByTitle(items, "chromebook")
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty slice, got %v", got)
		}
	})
}
