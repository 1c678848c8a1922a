package dto

// ErrorResponse is the body of every failed request. Field and Label name the form
// field a validation error belongs to.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Label   string `json:"label,omitempty"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	DB         string `json:"db"`
	SchemaKeys int    `json:"schema_keys"`
}

type PageResponse struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
