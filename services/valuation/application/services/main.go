package services

// Services is the application-layer service container for this bounded context.
type Services struct {
	Valuation *ValuationService
}

// New wires the valuation services. The generative model client is constructed
// at process startup from config and passed in explicitly.
func New(model GenerativeModel) *Services {
	return &Services{
		Valuation: NewValuationService(model),
	}
}
