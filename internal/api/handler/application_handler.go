package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// ApplicationHandler serves the applicant side of the ledger.
type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply handles POST /v1/jobs/:id/apply.
//
// @Summary      Apply to a job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      201  {object}  domain.Application
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Router       /v1/jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	app, err := h.apps.Apply(c.Request().Context(), c.Param("id"), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// Withdraw handles DELETE /v1/applications/:id.
//
// @Summary      Withdraw my application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	app, err := h.apps.Withdraw(c.Request().Context(), c.Param("id"), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// SetStatus handles PUT /v1/applications/:id.
//
// @Summary      Change the status of an application
// @Description  The job owner may connect or decline; the applicant may withdraw.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Application id"
// @Param        body  body      setStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/applications/{id} [put]
func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.apps.SetStatus(c.Request().Context(), c.Param("id"), id.ID, domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Get handles GET /v1/applications/:id.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	view, err := h.apps.GetApplication(c.Request().Context(), c.Param("id"), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(*view))
}

// ListMine handles GET /v1/applications/me.
//
// @Summary      List my live applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  applicationResponse
// @Router       /v1/applications/me [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	views, err := h.apps.ListForApplicant(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponses(views))
}

// History handles GET /v1/history/applications.
//
// @Summary      List my withdrawn applications
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  applicationResponse
// @Router       /v1/history/applications [get]
func (h *ApplicationHandler) History(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	views, err := h.apps.ListHistoryForApplicant(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponses(views))
}
