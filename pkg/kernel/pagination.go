package kernel

// PaginationOptions is the requested window, 1-based
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
