package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
)

func sellPrice(v int64) *int64 { return &v }

func newTestItem(t *testing.T, listingType ListingType, price *int64) (*Item, error) {
	t.Helper()
	title, err := NewTitle("Used iPhone 11")
	if err != nil {
		t.Fatalf("title: %v", err)
	}
	owner := Owner{ID: uuid.New(), Name: "Asha", AvgRating: 4.5}
	return NewItem(title, "Minor scratches", CategoryMobiles, ConditionGood,
		listingType, price, []string{"https://img.example/1.jpg"}, "Kothrud", owner)
}

func TestNewItem(t *testing.T) {
	t.Run("sell listing with positive price", func(t *testing.T) {
		item, err := newTestItem(t, ListingTypeSell, sellPrice(12000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
		if item.Status != StatusAvailable {
			t.Fatalf("expected Available, got %v", item.Status)
		}
		if item.Price == nil || *item.Price != 12000 {
			t.Fatalf("expected price 12000, got %v", item.Price)
		}
	})

	t.Run("sell listing without price is rejected", func(t *testing.T) {
		_, err := newTestItem(t, ListingTypeSell, nil)
		if !errors.Is(err, listingdomain.ErrPriceRequired) {
			t.Fatalf("expected ErrPriceRequired, got %v", err)
		}
	})

	t.Run("sell listing with zero price is rejected", func(t *testing.T) {
		_, err := newTestItem(t, ListingTypeSell, sellPrice(0))
		if !errors.Is(err, listingdomain.ErrPriceRequired) {
			t.Fatalf("expected ErrPriceRequired, got %v", err)
		}
	})

	t.Run("sell listing with negative price is rejected", func(t *testing.T) {
		_, err := newTestItem(t, ListingTypeSell, sellPrice(-100))
		if !errors.Is(err, listingdomain.ErrPriceRequired) {
			t.Fatalf("expected ErrPriceRequired, got %v", err)
		}
	})

	t.Run("donate listing with price is rejected", func(t *testing.T) {
		_, err := newTestItem(t, ListingTypeDonate, sellPrice(500))
		if !errors.Is(err, listingdomain.ErrPriceNotAllowed) {
			t.Fatalf("expected ErrPriceNotAllowed, got %v", err)
		}
	})

	t.Run("donate listing with zero price normalizes to nil", func(t *testing.T) {
		item, err := newTestItem(t, ListingTypeDonate, sellPrice(0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Price != nil {
			t.Fatalf("expected nil price, got %v", *item.Price)
		}
	})

	t.Run("sets PostedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := newTestItem(t, ListingTypeSpareParts, nil)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.PostedAt.Before(before) || item.PostedAt.After(after) {
			t.Fatalf("PostedAt %v not between %v and %v", item.PostedAt, before, after)
		}
	})
}

func TestBuyerPrice(t *testing.T) {
	t.Run("sell listing exposes price", func(t *testing.T) {
		item, _ := newTestItem(t, ListingTypeSell, sellPrice(9999))
		if p := item.BuyerPrice(); p == nil || *p != 9999 {
			t.Fatalf("expected 9999, got %v", p)
		}
	})

	t.Run("non-sell listing never exposes a price", func(t *testing.T) {
		item, _ := newTestItem(t, ListingTypeDonate, nil)
		// Even if a stray price reaches the aggregate, buyers never see it.
		stray := int64(100)
		item.Price = &stray
		if item.BuyerPrice() != nil {
			t.Fatal("expected nil buyer price for Donate listing")
		}
	})
}

func TestTransitionTo(t *testing.T) {
	t.Run("available to sold", func(t *testing.T) {
		item, _ := newTestItem(t, ListingTypeSell, sellPrice(100))
		if err := item.TransitionTo(StatusSold); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Status != StatusSold {
			t.Fatalf("expected Sold, got %v", item.Status)
		}
	})

	t.Run("available to recycled", func(t *testing.T) {
		item, _ := newTestItem(t, ListingTypeDonate, nil)
		if err := item.TransitionTo(StatusRecycled); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sold is terminal", func(t *testing.T) {
		item, _ := newTestItem(t, ListingTypeSell, sellPrice(100))
		_ = item.TransitionTo(StatusSold)
		if err := item.TransitionTo(StatusAvailable); !errors.Is(err, listingdomain.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
		if err := item.TransitionTo(StatusRecycled); !errors.Is(err, listingdomain.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("available to available is rejected", func(t *testing.T) {
		item, _ := newTestItem(t, ListingTypeSell, sellPrice(100))
		if err := item.TransitionTo(StatusAvailable); !errors.Is(err, listingdomain.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}
