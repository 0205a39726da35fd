package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/core/ports"
)

// CatalogHandler serves the lookup lists used by the post and search forms.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createVenueRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// Filters handles GET /v1/filters.
//
// @Summary      Cities and roles offered in the search form
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  ports.FilterOptions
// @Router       /v1/filters [get]
func (h *CatalogHandler) Filters(c echo.Context) error {
	opts, err := h.catalog.FilterOptions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opts)
}

// Roles handles GET /v1/roles.
//
// @Summary      Search posted roles
// @Tags         catalog
// @Produce      json
// @Param        search  query    string  false  "Case-insensitive substring"
// @Success      200     {array}  string
// @Router       /v1/roles [get]
func (h *CatalogHandler) Roles(c echo.Context) error {
	roles, err := h.catalog.SearchRoles(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Venues handles GET /v1/venues.
//
// @Summary      Search venues
// @Tags         catalog
// @Produce      json
// @Param        search  query    string  false  "Case-insensitive substring"
// @Success      200     {array}  domain.Venue
// @Router       /v1/venues [get]
func (h *CatalogHandler) Venues(c echo.Context) error {
	venues, err := h.catalog.ListVenues(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venues)
}

// CreateVenue handles POST /v1/venues.
//
// @Summary      Add a venue
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVenueRequest  true  "Venue name"
// @Success      201   {object}  domain.Venue
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/venues [post]
func (h *CatalogHandler) CreateVenue(c echo.Context) error {
	var req createVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	venue, err := h.catalog.CreateVenue(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, venue)
}

// Cities handles GET /v1/cities.
//
// @Summary      Search supported cities
// @Tags         catalog
// @Produce      json
// @Param        search  query    string  false  "Case-insensitive substring"
// @Success      200     {array}  string
// @Router       /v1/cities [get]
func (h *CatalogHandler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.ListCities(c.QueryParam("search")))
}
