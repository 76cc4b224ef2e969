package services

import (
	"context"
	"errors"
	"testing"

	listingmodels "github.com/ghuser/zwitch/services/listing/domain/models"
	valuationdomain "github.com/ghuser/zwitch/services/valuation/domain"
	"github.com/ghuser/zwitch/services/valuation/domain/models"
)

// fakeModel returns canned output and records whether it was called.
type fakeModel struct {
	valuation  models.RawValuation
	categories []string
	title      string
	text       string
	err        error
	calls      int
}

func (f *fakeModel) Valuate(ctx context.Context, req models.ValuationRequest) (models.RawValuation, error) {
	f.calls++
	return f.valuation, f.err
}

func (f *fakeModel) SuggestCategories(ctx context.Context, description string, photos []models.Photo) ([]string, error) {
	f.calls++
	return f.categories, f.err
}

func (f *fakeModel) SuggestTitle(ctx context.Context, description string, photos []models.Photo) (string, error) {
	f.calls++
	return f.title, f.err
}

func (f *fakeModel) SuggestDescription(ctx context.Context, deviceType, deviceModel, condition string) (string, error) {
	f.calls++
	return f.text, f.err
}

func validRequest() models.ValuationRequest {
	return models.ValuationRequest{
		DeviceType: "Laptop",
		Model:      "Dell XPS 13 9310",
		Condition:  "Works fine, battery holds about 2 hours",
	}
}

func TestValuate(t *testing.T) {
	t.Run("valid request returns full valuation", func(t *testing.T) {
		model := &fakeModel{valuation: models.RawValuation{
			EstimatedMinValue: 18000,
			EstimatedMaxValue: 25000,
			Recommendation:    "Sell it; XPS 13 models hold value well.",
			SuggestedTitle:    "Dell XPS 13 9310 - Great Condition",
			SuggestedCategory: "laptops",
		}}
		svc := NewValuationService(model)

		valuation, err := svc.Valuate(context.Background(), validRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valuation.EstimatedMinValue != 18000 || valuation.EstimatedMaxValue != 25000 {
			t.Fatalf("unexpected range: %+v", valuation)
		}
		if valuation.SuggestedCategory != listingmodels.CategoryLaptops {
			t.Fatalf("expected Laptops, got %q", valuation.SuggestedCategory)
		}
	})

	t.Run("unknown suggested category falls back to Other", func(t *testing.T) {
		model := &fakeModel{valuation: models.RawValuation{
			EstimatedMinValue: 100,
			EstimatedMaxValue: 200,
			SuggestedCategory: "Gadgets",
		}}
		svc := NewValuationService(model)

		valuation, err := svc.Valuate(context.Background(), validRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valuation.SuggestedCategory != listingmodels.CategoryOther {
			t.Fatalf("expected Other, got %q", valuation.SuggestedCategory)
		}
	})

	t.Run("inverted range is rejected as retryable", func(t *testing.T) {
		model := &fakeModel{valuation: models.RawValuation{
			EstimatedMinValue: 500,
			EstimatedMaxValue: 100,
			SuggestedCategory: "Laptops",
		}}
		svc := NewValuationService(model)

		_, err := svc.Valuate(context.Background(), validRequest())
		if !errors.Is(err, valuationdomain.ErrValuationUnavailable) {
			t.Fatalf("expected ErrValuationUnavailable, got %v", err)
		}
	})

	t.Run("upstream failure wrapped as unavailable", func(t *testing.T) {
		model := &fakeModel{err: errors.New("rate limited")}
		svc := NewValuationService(model)

		_, err := svc.Valuate(context.Background(), validRequest())
		if !errors.Is(err, valuationdomain.ErrValuationUnavailable) {
			t.Fatalf("expected ErrValuationUnavailable, got %v", err)
		}
	})

	t.Run("missing device identity rejected before upstream call", func(t *testing.T) {
		model := &fakeModel{}
		svc := NewValuationService(model)

		req := validRequest()
		req.Model = ""
		_, err := svc.Valuate(context.Background(), req)
		if !errors.Is(err, valuationdomain.ErrInvalidValuationInput) {
			t.Fatalf("expected ErrInvalidValuationInput, got %v", err)
		}
		if model.calls != 0 {
			t.Fatalf("expected no upstream call, got %d", model.calls)
		}
	})

	t.Run("missing condition evidence rejected", func(t *testing.T) {
		svc := NewValuationService(&fakeModel{})

		req := validRequest()
		req.Condition = ""
		req.Photos = nil
		if _, err := svc.Valuate(context.Background(), req); !errors.Is(err, valuationdomain.ErrInvalidValuationInput) {
			t.Fatalf("expected ErrInvalidValuationInput, got %v", err)
		}
	})

	t.Run("photos alone satisfy the condition requirement", func(t *testing.T) {
		model := &fakeModel{valuation: models.RawValuation{
			EstimatedMinValue: 100,
			EstimatedMaxValue: 200,
			SuggestedCategory: "Mobiles",
		}}
		svc := NewValuationService(model)

		req := validRequest()
		req.Condition = ""
		req.Photos = []models.Photo{{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}}
		if _, err := svc.Valuate(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSuggestCategories(t *testing.T) {
	t.Run("maps, dedupes, and caps suggestions", func(t *testing.T) {
		model := &fakeModel{categories: []string{"laptops", "Laptops", "Gizmos", "Components", "Monitors", "Mobiles"}}
		svc := NewValuationService(model)

		categories, err := svc.SuggestCategories(context.Background(), "old workstation parts", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []listingmodels.Category{
			listingmodels.CategoryLaptops,
			listingmodels.CategoryComponents,
			listingmodels.CategoryMonitors,
		}
		if len(categories) != len(want) {
			t.Fatalf("expected %d categories, got %v", len(want), categories)
		}
		for i := range want {
			if categories[i] != want[i] {
				t.Fatalf("position %d: expected %q, got %q", i, want[i], categories[i])
			}
		}
	})

	t.Run("all-unknown suggestions become unavailable", func(t *testing.T) {
		model := &fakeModel{categories: []string{"Gizmos", "Doohickeys"}}
		svc := NewValuationService(model)

		if _, err := svc.SuggestCategories(context.Background(), "mystery box", nil); !errors.Is(err, valuationdomain.ErrValuationUnavailable) {
			t.Fatalf("expected ErrValuationUnavailable, got %v", err)
		}
	})

	t.Run("empty input rejected", func(t *testing.T) {
		svc := NewValuationService(&fakeModel{})
		if _, err := svc.SuggestCategories(context.Background(), "  ", nil); !errors.Is(err, valuationdomain.ErrInvalidValuationInput) {
			t.Fatalf("expected ErrInvalidValuationInput, got %v", err)
		}
	})
}

func TestSuggestTitle(t *testing.T) {
	model := &fakeModel{title: "  Sony WH-1000XM4 Headphones, Barely Used  "}
	svc := NewValuationService(model)

	title, err := svc.SuggestTitle(context.Background(), "sony noise cancelling headphones", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Sony WH-1000XM4 Headphones, Barely Used" {
		t.Fatalf("unexpected title: %q", title)
	}

	blank := NewValuationService(&fakeModel{title: "   "})
	if _, err := blank.SuggestTitle(context.Background(), "something", nil); !errors.Is(err, valuationdomain.ErrValuationUnavailable) {
		t.Fatalf("expected ErrValuationUnavailable, got %v", err)
	}
}

func TestSuggestDescription(t *testing.T) {
	model := &fakeModel{text: "Lightly used mechanical keyboard. All keys work."}
	svc := NewValuationService(model)

	description, err := svc.SuggestDescription(context.Background(), "Keyboard", "Keychron K2", "lightly used")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if description == "" {
		t.Fatal("expected a description")
	}

	if _, err := svc.SuggestDescription(context.Background(), "", "Keychron K2", ""); !errors.Is(err, valuationdomain.ErrInvalidValuationInput) {
		t.Fatalf("expected ErrInvalidValuationInput, got %v", err)
	}
}
