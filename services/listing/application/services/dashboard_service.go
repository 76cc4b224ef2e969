package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ghuser/zwitch/services/listing/domain/models"
	"github.com/ghuser/zwitch/services/listing/domain/repositories"
	domainsvcs "github.com/ghuser/zwitch/services/listing/domain/services"
)

// Panel is one dashboard surface: its items, or the error that produced none.
// Panels fail independently; a failed carousel never blocks the main list.
type Panel struct {
	Items []*models.Item
	Err   error
}

// Dashboard is the assembled result of one dashboard request.
// Featured and Donations are nil when the query plan suppressed them.
type Dashboard struct {
	Main      Panel
	Featured  *Panel
	Donations *Panel
}

// DashboardService composes and executes the dashboard query plan.
type DashboardService struct {
	repo repositories.ItemRepository
}

// NewDashboardService returns a DashboardService backed by the given repository.
func NewDashboardService(repo repositories.ItemRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Browse runs the dashboard queries for the given criteria. The main query
// and both carousels execute concurrently, each with an independent error.
// Returns ErrLocalityRequired without touching the store when no locality is set.
func (s *DashboardService) Browse(ctx context.Context, criteria domainsvcs.Criteria) (*Dashboard, error) {
	plan, err := domainsvcs.ComposeDashboard(criteria)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{}
	if plan.Featured != nil {
		dash.Featured = &Panel{}
	}
	if plan.Donations != nil {
		dash.Donations = &Panel{}
	}

	var wg sync.WaitGroup
	run := func(filter repositories.SearchFilter, panel *Panel) {
		defer wg.Done()
		items, err := s.repo.Search(ctx, filter)
		if err != nil {
			panel.Err = fmt.Errorf("search items: %w", err)
			return
		}
		panel.Items = items
	}

	wg.Add(1)
	go run(plan.Main, &dash.Main)
	if dash.Featured != nil {
		wg.Add(1)
		go run(*plan.Featured, dash.Featured)
	}
	if dash.Donations != nil {
		wg.Add(1)
		go run(*plan.Donations, dash.Donations)
	}
	wg.Wait()

	// The free-text pass runs over the fetched set; the store has no
	// substring queries.
	if dash.Main.Err == nil && plan.TitleSearch != "" {
		dash.Main.Items = domainsvcs.FilterByTitle(dash.Main.Items, plan.TitleSearch)
	}

	return dash, nil
}
