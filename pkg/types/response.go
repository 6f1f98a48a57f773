package types

type SuccessEnvelope struct {
	Data any            `json:"data"`
	Meta *PaginationMeta `json:"meta,omitempty"`
}

// PaginationMeta mirrors the storefront's page-based listing metadata.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
