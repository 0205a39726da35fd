package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// ReviewHandler serves the owner side of the ledger.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Grouped handles GET /v1/my-jobs/applicants.
//
// @Summary      List applicants across all my jobs
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  jobApplicantsResponse
// @Router       /v1/my-jobs/applicants [get]
func (h *ReviewHandler) Grouped(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	groups, err := h.reviews.ListApplicantsGrouped(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	out := make([]jobApplicantsResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toJobApplicantsResponse(g))
	}
	return c.JSON(http.StatusOK, out)
}

// ForJob handles GET /v1/jobs/:id/applicants.
//
// @Summary      List the applicants of one of my jobs
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobApplicantsResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id}/applicants [get]
func (h *ReviewHandler) ForJob(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	group, err := h.reviews.ListApplicantsForJob(c.Request().Context(), c.Param("id"), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobApplicantsResponse(*group))
}

// Answer handles PUT /v1/jobs/:id/applicants/:applicant_id.
//
// @Summary      Connect with or decline an applicant
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string         true  "Job id"
// @Param        applicant_id  path      string         true  "Applicant user id"
// @Param        body          body      answerRequest  true  "connected or declined"
// @Success      200           {object}  applicantResponse
// @Failure      400           {object}  errorResponse
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Failure      409           {object}  errorResponse
// @Router       /v1/jobs/{id}/applicants/{applicant_id} [put]
func (h *ReviewHandler) Answer(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	jobID, applicantID := c.Param("id"), c.Param("applicant_id")

	var entry *ports.ApplicantEntry
	if domain.ApplicationStatus(req.Status) == domain.StatusConnected {
		entry, err = h.reviews.Connect(ctx, jobID, applicantID, id.ID)
	} else {
		entry, err = h.reviews.Decline(ctx, jobID, applicantID, id.ID)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantResponse(*entry))
}
