package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

// RegistryHandler serves the back-office record endpoints (centers,
// collections, sales, customers, accounts, center bank accounts). Methods
// for the trading and ledger entities live in trade_handler.go and
// account_handler.go.
type RegistryHandler struct {
	registry ports.RegistryService
}

func NewRegistryHandler(registry ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// --- Centers ---

type centerRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ListCenters handles GET /api/centers.
//
// @Summary      List collection centers
// @Tags         centers
// @Produce      json
// @Success      200  {array}   domain.Center
// @Failure      401  {object}  map[string]string
// @Router       /centers [get]
func (h *RegistryHandler) ListCenters(c echo.Context) error {
	centers, err := h.registry.ListCenters(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, centers)
}

// CreateCenter handles POST /api/centers.
//
// @Summary      Create a collection center
// @Tags         centers
// @Accept       json
// @Produce      json
// @Param        body  body      centerRequest  true  "Center details"
// @Success      201   {object}  domain.Center
// @Failure      400   {object}  map[string]string
// @Router       /centers [post]
func (h *RegistryHandler) CreateCenter(c echo.Context) error {
	var req centerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.registry.CreateCenter(c.Request().Context(), &domain.Center{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCenter handles PUT /api/centers/:id.
//
// @Summary      Update a collection center
// @Tags         centers
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Center id"
// @Param        body  body      centerRequest  true  "Center details"
// @Success      200   {object}  domain.Center
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /centers/{id} [put]
func (h *RegistryHandler) UpdateCenter(c echo.Context) error {
	var req centerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.registry.UpdateCenter(c.Request().Context(), &domain.Center{
		ID:       c.Param("id"),
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCenter handles DELETE /api/centers/:id.
//
// @Summary      Delete a collection center
// @Tags         centers
// @Param        id  path  string  true  "Center id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /centers/{id} [delete]
func (h *RegistryHandler) DeleteCenter(c echo.Context) error {
	if err := h.registry.DeleteCenter(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Collections ---

type collectionRequest struct {
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	CenterID string  `json:"center_id"`
}

// ListCollections handles GET /api/collections.
//
// @Summary      List daily collections
// @Tags         collections
// @Produce      json
// @Success      200  {array}  domain.Collection
// @Router       /collections [get]
func (h *RegistryHandler) ListCollections(c echo.Context) error {
	collections, err := h.registry.ListCollections(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, collections)
}

// CreateCollection handles POST /api/collections.
//
// @Summary      Record a daily collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        body  body      collectionRequest  true  "Collection details"
// @Success      201   {object}  domain.Collection
// @Failure      400   {object}  map[string]string
// @Router       /collections [post]
func (h *RegistryHandler) CreateCollection(c echo.Context) error {
	var req collectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.registry.CreateCollection(c.Request().Context(), &domain.Collection{
		Amount:   req.Amount,
		Date:     req.Date,
		CenterID: req.CenterID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCollection handles PUT /api/collections/:id.
//
// @Summary      Update a daily collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Collection id"
// @Param        body  body      collectionRequest  true  "Collection details"
// @Success      200   {object}  domain.Collection
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /collections/{id} [put]
func (h *RegistryHandler) UpdateCollection(c echo.Context) error {
	var req collectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.registry.UpdateCollection(c.Request().Context(), &domain.Collection{
		ID:       c.Param("id"),
		Amount:   req.Amount,
		Date:     req.Date,
		CenterID: req.CenterID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCollection handles DELETE /api/collections/:id.
//
// @Summary      Delete a daily collection
// @Tags         collections
// @Param        id  path  string  true  "Collection id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /collections/{id} [delete]
func (h *RegistryHandler) DeleteCollection(c echo.Context) error {
	if err := h.registry.DeleteCollection(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
