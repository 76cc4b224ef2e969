package services

import (
	"context"
	"fmt"
	"strings"

	listingmodels "github.com/ghuser/zwitch/services/listing/domain/models"
	valuationdomain "github.com/ghuser/zwitch/services/valuation/domain"
	"github.com/ghuser/zwitch/services/valuation/domain/models"
)

// GenerativeModel is the port to the hosted model. Implementations return
// raw, untrusted output; all schema enforcement happens in this service.
type GenerativeModel interface {
	Valuate(ctx context.Context, req models.ValuationRequest) (models.RawValuation, error)
	SuggestCategories(ctx context.Context, description string, photos []models.Photo) ([]string, error)
	SuggestTitle(ctx context.Context, description string, photos []models.Photo) (string, error)
	SuggestDescription(ctx context.Context, deviceType, deviceModel, condition string) (string, error)
}

// maxCategorySuggestions caps how many category suggestions are surfaced.
const maxCategorySuggestions = 3

// ValuationService turns device descriptions into value estimates and
// listing-metadata suggestions. Every call is synchronous and all-or-nothing:
// either a fully valid result comes back or an error does.
type ValuationService struct {
	model GenerativeModel
}

// NewValuationService returns a ValuationService backed by the given model.
func NewValuationService(model GenerativeModel) *ValuationService {
	return &ValuationService{model: model}
}

// Valuate estimates a value range for the described device. Input is
// validated before the upstream call; malformed upstream output is rejected
// as ErrValuationUnavailable so callers can retry.
func (s *ValuationService) Valuate(ctx context.Context, req models.ValuationRequest) (*models.Valuation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.model.Valuate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", valuationdomain.ErrValuationUnavailable, err)
	}

	valuation, err := models.NewValuation(
		raw.EstimatedMinValue,
		raw.EstimatedMaxValue,
		raw.Recommendation,
		raw.SuggestedTitle,
		raw.SuggestedCategory,
	)
	if err != nil {
		return nil, err
	}
	return valuation, nil
}

// SuggestCategories proposes up to three categories for the described item.
// Unknown category names from the model are dropped, duplicates collapsed.
func (s *ValuationService) SuggestCategories(ctx context.Context, description string, photos []models.Photo) ([]listingmodels.Category, error) {
	if strings.TrimSpace(description) == "" && len(photos) == 0 {
		return nil, fmt.Errorf("%w: a description or photos are required", valuationdomain.ErrInvalidValuationInput)
	}

	raw, err := s.model.SuggestCategories(ctx, description, photos)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", valuationdomain.ErrValuationUnavailable, err)
	}

	seen := map[listingmodels.Category]bool{}
	categories := []listingmodels.Category{}
	for _, name := range raw {
		category, ok := listingmodels.MatchCategory(name)
		if !ok || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
		if len(categories) == maxCategorySuggestions {
			break
		}
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no usable category suggestions", valuationdomain.ErrValuationUnavailable)
	}
	return categories, nil
}

// SuggestTitle proposes a listing title for the described item.
func (s *ValuationService) SuggestTitle(ctx context.Context, description string, photos []models.Photo) (string, error) {
	if strings.TrimSpace(description) == "" && len(photos) == 0 {
		return "", fmt.Errorf("%w: a description or photos are required", valuationdomain.ErrInvalidValuationInput)
	}

	title, err := s.model.SuggestTitle(ctx, description, photos)
	if err != nil {
		return "", fmt.Errorf("%w: %w", valuationdomain.ErrValuationUnavailable, err)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: empty title suggestion", valuationdomain.ErrValuationUnavailable)
	}
	return title, nil
}

// SuggestDescription drafts a listing description from device identity and
// condition keywords.
func (s *ValuationService) SuggestDescription(ctx context.Context, deviceType, deviceModel, condition string) (string, error) {
	if strings.TrimSpace(deviceType) == "" || strings.TrimSpace(deviceModel) == "" {
		return "", fmt.Errorf("%w: device type and model are required", valuationdomain.ErrInvalidValuationInput)
	}

	description, err := s.model.SuggestDescription(ctx, deviceType, deviceModel, condition)
	if err != nil {
		return "", fmt.Errorf("%w: %w", valuationdomain.ErrValuationUnavailable, err)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: empty description suggestion", valuationdomain.ErrValuationUnavailable)
	}
	return description, nil
}
