package linewebhook

// SuccessResponse acknowledges a webhook delivery.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is returned for requests the endpoint does not serve.
type ErrorResponse struct {
	Error string `json:"error"`
}
