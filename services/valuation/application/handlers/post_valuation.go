package handlers

import (
	"net/http"

	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	pkgvalidator "github.com/ghuser/zwitch/pkg/validator"
	appsvcs "github.com/ghuser/zwitch/services/valuation/application/services"
	"github.com/ghuser/zwitch/services/valuation/domain/models"
)

// PhotoPayload is one image attachment. Data is base64-encoded in JSON.
type PhotoPayload struct {
	MIMEType string `json:"mime_type" validate:"required" example:"image/jpeg"`
	Data     []byte `json:"data"      validate:"required"`
} // @name PhotoPayload

// ValuationRequest is the request body for POST /valuations. Condition may be
// given as text, as 1-3 photos, or both.
type ValuationRequest struct {
	DeviceType string         `json:"device_type" validate:"required,max=100" example:"Laptop"`
	Model      string         `json:"model"       validate:"required,max=200" example:"Dell XPS 13 9310"`
	Condition  string         `json:"condition"   validate:"max=2000"         example:"Works fine, battery holds 2 hours"`
	Photos     []PhotoPayload `json:"photos"      validate:"max=3,dive"`
} // @name ValuationRequest

// ValuationResponse is the complete valuation result.
type ValuationResponse struct {
	EstimatedMinValue float64 `json:"estimated_min_value" example:"18000"`
	EstimatedMaxValue float64 `json:"estimated_max_value" example:"25000"`
	Recommendation    string  `json:"recommendation"      example:"Sell it; XPS 13 models hold value well."`
	SuggestedTitle    string  `json:"suggested_title"     example:"Dell XPS 13 9310 - Great Condition"`
	SuggestedCategory string  `json:"suggested_category"  example:"Laptops"`
} // @name ValuationResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"valuation unavailable"`
} // @name ErrorResponse

// PostValuationHandler handles POST /valuations requests.
type PostValuationHandler struct {
	svc *appsvcs.Services
}

// NewPostValuationHandler returns a PostValuationHandler backed by the given services.
func NewPostValuationHandler(svc *appsvcs.Services) *PostValuationHandler {
	return &PostValuationHandler{svc: svc}
}

// Execute estimates a resale value range for a described device.
//
//	@Summary		Value a device
//	@Description	Returns an estimated resale value range with a sell/donate/recycle recommendation and suggested listing metadata. All fields come back together or not at all; on 502, retry.
//	@Tags			valuations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ValuationRequest	true	"Device description"
//	@Success		200		{object}	ValuationResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/valuations [post]
func (h *PostValuationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ValuationRequest](w, r)
	if !ok {
		return
	}

	valuation, err := h.svc.Valuation.Valuate(r.Context(), models.ValuationRequest{
		DeviceType: req.DeviceType,
		Model:      req.Model,
		Condition:  req.Condition,
		Photos:     toPhotos(req.Photos),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ValuationResponse{
		EstimatedMinValue: valuation.EstimatedMinValue,
		EstimatedMaxValue: valuation.EstimatedMaxValue,
		Recommendation:    valuation.Recommendation,
		SuggestedTitle:    valuation.SuggestedTitle,
		SuggestedCategory: valuation.SuggestedCategory.String(),
	})
}

func toPhotos(payloads []PhotoPayload) []models.Photo {
	if len(payloads) == 0 {
		return nil
	}
	photos := make([]models.Photo, len(payloads))
	for i, p := range payloads {
		photos[i] = models.Photo{MIMEType: p.MIMEType, Data: p.Data}
	}
	return photos
}
