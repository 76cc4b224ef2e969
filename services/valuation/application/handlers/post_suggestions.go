package handlers

import (
	"net/http"

	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	pkgvalidator "github.com/ghuser/zwitch/pkg/validator"
	appsvcs "github.com/ghuser/zwitch/services/valuation/application/services"
)

// SuggestionRequest is the request body for the category and title
// suggestion endpoints.
type SuggestionRequest struct {
	Description string         `json:"description" validate:"max=2000" example:"old sony noise cancelling headphones"`
	Photos      []PhotoPayload `json:"photos"      validate:"max=3,dive"`
} // @name SuggestionRequest

// CategorySuggestionsResponse lists up to three fitting categories, most
// likely first.
type CategorySuggestionsResponse struct {
	Categories []string `json:"categories" example:"Audio Devices"`
} // @name CategorySuggestionsResponse

// TextSuggestionResponse carries one generated text suggestion.
type TextSuggestionResponse struct {
	Text string `json:"text" example:"Sony WH-1000XM4 Headphones, Barely Used"`
} // @name TextSuggestionResponse

// DescriptionSuggestionRequest is the request body for POST /suggestions/description.
type DescriptionSuggestionRequest struct {
	DeviceType string `json:"device_type" validate:"required,max=100" example:"Keyboard"`
	Model      string `json:"model"       validate:"required,max=200" example:"Keychron K2"`
	Condition  string `json:"condition"   validate:"max=2000"         example:"lightly used"`
} // @name DescriptionSuggestionRequest

// SuggestionsHandler handles the POST /suggestions/* requests.
type SuggestionsHandler struct {
	svc *appsvcs.Services
}

// NewSuggestionsHandler returns a SuggestionsHandler backed by the given services.
func NewSuggestionsHandler(svc *appsvcs.Services) *SuggestionsHandler {
	return &SuggestionsHandler{svc: svc}
}

// Categories suggests categories for a described item.
//
//	@Summary		Suggest categories
//	@Description	Proposes up to three categories from the fixed set for the described item.
//	@Tags			valuations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SuggestionRequest	true	"Item description"
//	@Success		200		{object}	CategorySuggestionsResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/suggestions/categories [post]
func (h *SuggestionsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SuggestionRequest](w, r)
	if !ok {
		return
	}

	categories, err := h.svc.Valuation.SuggestCategories(r.Context(), req.Description, toPhotos(req.Photos))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = category.String()
	}
	httpx.JSON(w, http.StatusOK, CategorySuggestionsResponse{Categories: names})
}

// Title suggests a listing title for a described item.
//
//	@Summary		Suggest a title
//	@Description	Drafts a concise listing title for the described item.
//	@Tags			valuations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SuggestionRequest	true	"Item description"
//	@Success		200		{object}	TextSuggestionResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/suggestions/title [post]
func (h *SuggestionsHandler) Title(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SuggestionRequest](w, r)
	if !ok {
		return
	}

	title, err := h.svc.Valuation.SuggestTitle(r.Context(), req.Description, toPhotos(req.Photos))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, TextSuggestionResponse{Text: title})
}

// Description drafts a listing description from device identity and condition.
//
//	@Summary		Suggest a description
//	@Description	Drafts an honest listing description from device identity and condition keywords.
//	@Tags			valuations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DescriptionSuggestionRequest	true	"Device identity and condition"
//	@Success		200		{object}	TextSuggestionResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/suggestions/description [post]
func (h *SuggestionsHandler) Description(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[DescriptionSuggestionRequest](w, r)
	if !ok {
		return
	}

	description, err := h.svc.Valuation.SuggestDescription(r.Context(), req.DeviceType, req.Model, req.Condition)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, TextSuggestionResponse{Text: description})
}
