package handler

import (
	"strings"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// --- Request → Service input ---

func toJobFields(req jobRequest) domain.JobFields {
	return domain.JobFields{
		Role:  req.Role,
		Venue: req.Venue,
		Location: domain.Location{
			City:   req.Location.City,
			Street: req.Location.Street,
			Number: req.Location.Number,
		},
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PaymentType:   domain.PaymentType(req.PaymentType),
		PaymentAmount: req.PaymentAmount,
		Currency:      domain.Currency(req.Currency),
		Description:   req.Description,
	}
}

func toSearchInput(req jobSearchRequest, requesterID string) (ports.JobSearchInput, error) {
	dr, err := domain.ParseDateRange(strings.TrimSpace(req.DateRange))
	if err != nil {
		return ports.JobSearchInput{}, err
	}
	return ports.JobSearchInput{
		RequesterID:       requesterID,
		Page:              req.Page,
		PageSize:          req.PageSize,
		ExcludeApplied:    req.ExcludeApplied,
		ExcludePostedByMe: req.ExcludePostedByMe,
		City:              strings.TrimSpace(req.City),
		Role:              strings.TrimSpace(req.Role),
		DateRange:         dr,
	}, nil
}

// --- Service result → HTTP response ---

func toJobResponse(v ports.JobView) jobResponse {
	return jobResponse{Job: v.Job, IsActive: v.IsActive, State: v.State, Owner: v.Owner}
}

func toJobResponses(views []ports.JobView) []jobResponse {
	out := make([]jobResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toJobResponse(v))
	}
	return out
}

func toJobPageResponse(p *ports.JobPage) jobPageResponse {
	return jobPageResponse{
		Items:      toJobResponses(p.Items),
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
