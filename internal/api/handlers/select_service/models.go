package select_service

// SelectServiceRequest HTTP request model
type SelectServiceRequest struct {
	Service string `json:"service"`
}
