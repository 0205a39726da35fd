package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// JobHandler serves job postings and job listings.
type JobHandler struct {
	jobs    ports.JobService
	queries ports.QueryService
}

func NewJobHandler(jobs ports.JobService, queries ports.QueryService) *JobHandler {
	return &JobHandler{jobs: jobs, queries: queries}
}

// Create handles POST /v1/jobs.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.jobs.CreateJob(c.Request().Context(), id.ID, toJobFields(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// Update handles PUT /v1/jobs/:id.
//
// @Summary      Replace the editable fields of a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Job id"
// @Param        body  body      jobRequest  true  "Job details"
// @Success      200   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.jobs.UpdateJob(c.Request().Context(), c.Param("id"), id.ID, toJobFields(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /v1/jobs/:id.
//
// @Summary      Soft-delete a job
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.jobs.SoftDeleteJob(c.Request().Context(), c.Param("id"), id.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /v1/jobs/:id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      string  true   "Job id"
// @Param        include_deleted  query     bool    false  "Owner only: also return a soft-deleted job"
// @Success      200              {object}  jobResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	includeDeleted, _ := strconv.ParseBool(c.QueryParam("include_deleted"))

	view, err := h.jobs.GetJob(c.Request().Context(), ports.GetJobInput{
		JobID:          c.Param("id"),
		RequesterID:    id.ID,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(*view))
}

// List handles GET /v1/jobs.
//
// @Summary      Browse jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        page                  query     int     false  "Page number, 1-based"
// @Param        page_size             query     int     false  "Page size (default 10, max 100)"
// @Param        exclude_applied       query     bool    false  "Hide jobs I applied to"
// @Param        exclude_posted_by_me  query     bool    false  "Hide jobs I posted"
// @Param        city                  query     string  false  "Exact city"
// @Param        role                  query     string  false  "Exact role"
// @Param        date_range            query     string  false  "all, today, tomorrow, this_week or this_month"
// @Success      200                   {object}  jobPageResponse
// @Failure      400                   {object}  errorResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req jobSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	in, err := toSearchInput(req, id.ID)
	if err != nil {
		return err
	}

	page, err := h.queries.QueryJobs(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobPageResponse(page))
}

// ListMine handles GET /v1/my-jobs.
//
// @Summary      List the jobs I posted
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int  false  "Page number, 1-based"
// @Param        page_size  query     int  false  "Page size (default 10, max 100)"
// @Success      200        {object}  jobPageResponse
// @Router       /v1/my-jobs [get]
func (h *JobHandler) ListMine(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	page, err := h.queries.ListMyJobs(c.Request().Context(), id.ID, domain.Page{Number: req.Page, Size: req.PageSize})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobPageResponse(page))
}

// History handles GET /v1/history/posted-jobs.
//
// @Summary      List my deleted or expired jobs
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  jobResponse
// @Router       /v1/history/posted-jobs [get]
func (h *JobHandler) History(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	views, err := h.queries.ListPostedHistory(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(views))
}

// Purge handles DELETE /v1/history/posted-jobs/:id.
//
// @Summary      Remove a deleted or expired job for good
// @Tags         history
// @Security     BearerAuth
// @Param        id  path  string  true  "Job id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/history/posted-jobs/{id} [delete]
func (h *JobHandler) Purge(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.jobs.PurgeJob(c.Request().Context(), c.Param("id"), id.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
