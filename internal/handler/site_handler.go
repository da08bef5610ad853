package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Omer-KISAKOL/site-builder/internal/auth"
	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/service"
)

// SiteHandler handles the owner-scoped site endpoints.
type SiteHandler struct {
	siteService service.SiteService
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(siteService service.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// CreateSiteRequest represents a site creation request.
type CreateSiteRequest struct {
	Name        string `json:"name" validate:"required"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
}

// UpdateSiteRequest represents a partial site update.
type UpdateSiteRequest struct {
	Name        *string `json:"name"`
	Domain      *string `json:"domain"`
	Description *string `json:"description"`
	IsPublished *bool   `json:"is_published"`
}

// UpdateComponentRequest represents a component payload update.
type UpdateComponentRequest struct {
	ComponentID uuid.UUID       `json:"component_id" validate:"required"`
	Data        json.RawMessage `json:"component_data" validate:"required"`
}

func currentIdentity(c echo.Context) (auth.Identity, error) {
	ident, ok := auth.IdentityFrom(c.Request().Context())
	if !ok {
		return auth.Identity{}, apperr.ErrInvalidToken
	}
	return ident, nil
}

// ListSites godoc
// @Summary List the caller's sites
// @Tags sites
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /sites [get]
func (h *SiteHandler) ListSites(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return respondError(c, err)
	}
	sites, err := h.siteService.List(c.Request().Context(), ident.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"sites": sites})
}

// CreateSite godoc
// @Summary Create a site with its default components
// @Tags sites
// @Accept json
// @Produce json
// @Param request body CreateSiteRequest true "Site data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /sites [post]
func (h *SiteHandler) CreateSite(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return respondError(c, err)
	}

	var req CreateSiteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperr.ErrSiteNameRequired)
	}

	site, err := h.siteService.Create(c.Request().Context(), ident.UserID, req.Name, req.Domain, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "site created successfully",
		"site":    site,
	})
}

// GetSite godoc
// @Summary Get a site and all its components
// @Tags sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} service.SiteView
// @Failure 404 {object} errors.ErrorResponse
// @Router /sites/{id} [get]
func (h *SiteHandler) GetSite(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.ErrSiteNotFound)
	}

	view, err := h.siteService.Get(c.Request().Context(), ident.UserID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateSite godoc
// @Summary Update site fields
// @Tags sites
// @Accept json
// @Produce json
// @Param id path string true "Site ID"
// @Param request body UpdateSiteRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sites/{id} [put]
func (h *SiteHandler) UpdateSite(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.ErrSiteNotFound)
	}

	var req UpdateSiteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}

	site, err := h.siteService.Update(c.Request().Context(), ident.UserID, id, service.UpdateSiteInput{
		Name:        req.Name,
		Domain:      req.Domain,
		Description: req.Description,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "site updated successfully",
		"site":    site,
	})
}

// DeleteSite godoc
// @Summary Delete a site and its components
// @Tags sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /sites/{id} [delete]
func (h *SiteHandler) DeleteSite(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.ErrSiteNotFound)
	}

	if err := h.siteService.Delete(c.Request().Context(), ident.UserID, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "site deleted successfully"})
}

// UpdateComponent godoc
// @Summary Update a component's typed payload
// @Tags sites
// @Accept json
// @Produce json
// @Param id path string true "Site ID"
// @Param request body UpdateComponentRequest true "Component payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sites/{id}/components [put]
func (h *SiteHandler) UpdateComponent(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return respondError(c, err)
	}
	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.ErrSiteNotFound)
	}

	var req UpdateComponentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if req.ComponentID == uuid.Nil || len(req.Data) == 0 {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "component_id and component_data are required", Code: "BAD_REQUEST"})
	}

	component, err := h.siteService.UpdateComponent(c.Request().Context(), ident.UserID, siteID, req.ComponentID, req.Data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "component updated successfully",
		"component": component,
	})
}

// PreviewSite godoc
// @Summary Render snapshot of a site's active components
// @Tags sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} service.SiteView
// @Failure 404 {object} errors.ErrorResponse
// @Router /sites/{id}/preview [get]
func (h *SiteHandler) PreviewSite(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.ErrSiteNotFound)
	}

	view, err := h.siteService.Preview(c.Request().Context(), ident.UserID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
