package handlers

import (
	"net/http"

	"github.com/ghuser/zwitch/pkg/errhttp"
	"github.com/ghuser/zwitch/pkg/httpx"
	appsvcs "github.com/ghuser/zwitch/services/listing/application/services"
	domainsvcs "github.com/ghuser/zwitch/services/listing/domain/services"
)

// DashboardResponse is the assembled dashboard view. Featured and Donations
// are omitted on filtered views (active category or search) and when their
// sub-query failed; the main list is unaffected either way.
type DashboardResponse struct {
	Items     []ListingResponse `json:"items"`
	Featured  []ListingResponse `json:"featured,omitempty"`
	Donations []ListingResponse `json:"donations,omitempty"`
} // @name DashboardResponse

// GetDashboardHandler handles GET /dashboard requests.
type GetDashboardHandler struct {
	svc *appsvcs.Services
}

// NewGetDashboardHandler returns a GetDashboardHandler backed by the given services.
func NewGetDashboardHandler(svc *appsvcs.Services) *GetDashboardHandler {
	return &GetDashboardHandler{svc: svc}
}

// Execute runs the dashboard queries for the caller's locality.
//
//	@Summary		Browse the dashboard
//	@Description	Returns available listings in a locality, with optional category filter and free-text title search. Search terms under 3 characters are ignored. Featured and donation carousels appear only on unfiltered views.
//	@Tags			listings
//	@Produce		json
//	@Param			locality	query		string	true	"Locality to browse"
//	@Param			category	query		string	false	"Category filter, or 'all'"
//	@Param			search		query		string	false	"Free-text title search"
//	@Success		200			{object}	DashboardResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/dashboard [get]
func (h *GetDashboardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := domainsvcs.Criteria{
		Locality: q.Get("locality"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	dash, err := h.svc.Dashboard.Browse(r.Context(), criteria)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if dash.Main.Err != nil {
		errhttp.WriteError(w, dash.Main.Err)
		return
	}

	resp := DashboardResponse{Items: NewListingResponses(dash.Main.Items)}
	if dash.Featured != nil && dash.Featured.Err == nil {
		resp.Featured = NewListingResponses(dash.Featured.Items)
	}
	if dash.Donations != nil && dash.Donations.Err == nil {
		resp.Donations = NewListingResponses(dash.Donations.Items)
	}

	httpx.JSON(w, http.StatusOK, resp)
}
