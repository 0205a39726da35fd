package handler

import (
	"github.com/nightshift/gigboard/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type locationRequest struct {
	City   string `json:"city"   validate:"required,max=80"`
	Street string `json:"street" validate:"max=120"`
	Number string `json:"number" validate:"max=20"`
}

type jobRequest struct {
	Role          string          `json:"role"           validate:"required,max=80"`
	Venue         string          `json:"venue"          validate:"required,max=120"`
	Location      locationRequest `json:"location"`
	Date          string          `json:"date"           validate:"required,yyyymmdd"`
	StartTime     string          `json:"start_time"     validate:"required,hhmm"`
	EndTime       string          `json:"end_time"       validate:"required,hhmm"`
	PaymentType   string          `json:"payment_type"   validate:"required,oneof=PerHour FixedPrice WithTips TipBasedMinWage"`
	PaymentAmount float64         `json:"payment_amount" validate:"gte=0"`
	Currency      string          `json:"currency"       validate:"required,oneof=USD EUR ILS"`
	Description   string          `json:"description"    validate:"max=2000"`
}

type jobSearchRequest struct {
	Page              int    `query:"page"`
	PageSize          int    `query:"page_size"`
	ExcludeApplied    bool   `query:"exclude_applied"`
	ExcludePostedByMe bool   `query:"exclude_posted_by_me"`
	City              string `query:"city"`
	Role              string `query:"role"`
	DateRange         string `query:"date_range"`
}

type pageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// --- Response types ---

type jobResponse struct {
	*domain.Job
	IsActive bool             `json:"is_active"`
	State    domain.JobState  `json:"state"`
	Owner    *domain.Identity `json:"owner,omitempty"`
}

type jobPageResponse struct {
	Items      []jobResponse `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}
