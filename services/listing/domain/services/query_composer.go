// Package services contains stateless domain services for the listing bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"strings"

	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
	"github.com/ghuser/zwitch/services/listing/domain/models"
	"github.com/ghuser/zwitch/services/listing/domain/repositories"
)

const (
	// CategoryAll is the sentinel meaning "no category filter".
	CategoryAll = "all"

	// CarouselLimit caps the featured and donation sub-queries.
	CarouselLimit = 10

	// minSearchLength is the minimum free-text length before the title
	// filter takes effect. Shorter input behaves as no search at all.
	minSearchLength = 3
)

// Criteria is the user-supplied dashboard input. Ephemeral, never persisted.
type Criteria struct {
	Locality string
	Category string // CategoryAll or a member of the fixed category set
	Search   string
}

// DashboardPlan is the composed set of store queries for one dashboard view.
// Featured and Donations are nil when the carousels are suppressed (an active
// category filter or free-text search makes this a filtered view, not a
// browse-all surface).
type DashboardPlan struct {
	Main      repositories.SearchFilter
	Featured  *repositories.SearchFilter
	Donations *repositories.SearchFilter
	// TitleSearch is the active free-text term, empty when inactive. It is
	// applied with FilterByTitle over the fetched main results, never pushed
	// to the store.
	TitleSearch string
}

// ComposeDashboard translates Criteria into a DashboardPlan.
// Returns ErrLocalityRequired when no locality is set: dashboard results
// without a locality are meaningless, so no query may be issued at all.
//
// TODO: push TitleSearch into a text-search index once the store grows one;
// FilterByTitle over the fetched set does not scale past small localities.
func ComposeDashboard(c Criteria) (*DashboardPlan, error) {
	if strings.TrimSpace(c.Locality) == "" {
		return nil, listingdomain.ErrLocalityRequired
	}

	search := strings.TrimSpace(c.Search)
	if len(search) < minSearchLength {
		search = ""
	}

	plan := &DashboardPlan{
		Main: repositories.SearchFilter{
			Status:      models.StatusAvailable,
			Locality:    c.Locality,
			SortByTitle: search != "",
		},
		TitleSearch: search,
	}

	categoryActive := c.Category != "" && c.Category != CategoryAll
	if categoryActive {
		plan.Main.Category = models.Category(c.Category)
	}

	// Carousels are browse-all surfaces only.
	if !categoryActive && search == "" {
		plan.Featured = &repositories.SearchFilter{
			Status:       models.StatusAvailable,
			Locality:     c.Locality,
			FeaturedOnly: true,
			Limit:        CarouselLimit,
		}
		plan.Donations = &repositories.SearchFilter{
			Status:      models.StatusAvailable,
			Locality:    c.Locality,
			ListingType: models.ListingTypeDonate,
			Limit:       CarouselLimit,
		}
	}

	return plan, nil
}

// FilterByTitle applies the client-side free-text pass: keep items whose
// case-folded title contains the case-folded search term. A term shorter than
// the minimum returns the input unchanged.
func FilterByTitle(items []*models.Item, search string) []*models.Item {
	search = strings.TrimSpace(search)
	if len(search) < minSearchLength {
		return items
	}
	needle := strings.ToLower(search)

	out := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title.String()), needle) {
			out = append(out, item)
		}
	}
	return out
}
