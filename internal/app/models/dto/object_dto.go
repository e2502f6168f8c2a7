package dto

import "github.com/astrolabs/skywatch/internal/app/models"

// ObjectListQuery holds the accepted query parameters of the list endpoint.
// Range parameters (ndet, firstmjd, lastmjd) take one value for a lower bound
// or two values for inclusive lower and upper bounds.
type ObjectListQuery struct {
	// Filters
	Classifier  string    `form:"classifier"`
	Class       string    `form:"class"`
	Ndet        []int     `form:"ndet"`
	FirstMJD    []float64 `form:"firstmjd"`
	LastMJD     []float64 `form:"lastmjd"`
	Probability *float64  `form:"probability"`

	// Cone search. The predicate is applied only when all three are present;
	// radius is given in arcseconds.
	RA     *float64 `form:"ra"`
	Dec    *float64 `form:"dec"`
	Radius *float64 `form:"radius"`

	// Ordering
	OrderBy   string `form:"order_by"`
	OrderMode string `form:"order_mode" binding:"omitempty,oneof=ASC DESC"`

	// Pagination
	Page     int  `form:"page,default=1"`
	PageSize int  `form:"page_size,default=10"`
	Count    bool `form:"count,default=true"`
}

// HasConeSearch reports whether ra, dec and radius are all present.
func (q *ObjectListQuery) HasConeSearch() bool {
	return q.RA != nil && q.Dec != nil && q.Radius != nil
}

// ObjectListResponse is the page payload of the list endpoint. Total is null
// when counting was disabled; Next/Prev are null at the page boundaries.
type ObjectListResponse struct {
	Total   *int64                  `json:"total"`
	Page    int                     `json:"page"`
	Next    *int                    `json:"next"`
	HasNext bool                    `json:"has_next"`
	Prev    *int                    `json:"prev"`
	HasPrev bool                    `json:"has_prev"`
	Items   []models.ObjectListItem `json:"items"`
}

// FromObjectPage converts a repository page into the response payload.
func FromObjectPage(page *models.ObjectPage) ObjectListResponse {
	return ObjectListResponse{
		Total:   page.Total,
		Page:    page.Page,
		Next:    page.NextNum,
		HasNext: page.HasNext,
		Prev:    page.PrevNum,
		HasPrev: page.HasPrev,
		Items:   page.Items,
	}
}
