package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// Sales and customer endpoints; part of RegistryHandler.

type saleRequest struct {
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Date       string  `json:"date"`
	CenterID   string  `json:"center_id"`
	CustomerID string  `json:"customer_id"`
}

// ListSales handles GET /api/sales.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Success      200  {array}  domain.Sale
// @Router       /sales [get]
func (h *RegistryHandler) ListSales(c echo.Context) error {
	sales, err := h.registry.ListSales(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// CreateSale handles POST /api/sales.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body      saleRequest  true  "Sale details"
// @Success      201   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Router       /sales [post]
func (h *RegistryHandler) CreateSale(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.registry.CreateSale(c.Request().Context(), &domain.Sale{
		Item:       req.Item,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Date:       req.Date,
		CenterID:   req.CenterID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSale handles PUT /api/sales/:id.
//
// @Summary      Update a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Sale id"
// @Param        body  body      saleRequest  true  "Sale details"
// @Success      200   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /sales/{id} [put]
func (h *RegistryHandler) UpdateSale(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.registry.UpdateSale(c.Request().Context(), &domain.Sale{
		ID:         c.Param("id"),
		Item:       req.Item,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Date:       req.Date,
		CenterID:   req.CenterID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSale handles DELETE /api/sales/:id.
//
// @Summary      Delete a sale
// @Tags         sales
// @Param        id  path  string  true  "Sale id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sales/{id} [delete]
func (h *RegistryHandler) DeleteSale(c echo.Context) error {
	if err := h.registry.DeleteSale(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Customers ---

type customerRequest struct {
	Name          string `json:"name"`
	GSTNumber     string `json:"gst_number"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	Bank          string `json:"bank"`
	Address       string `json:"address"`
	MobileNumber  string `json:"mobile_number"`
}

func (r customerRequest) toDomain(id string) *domain.Customer {
	return &domain.Customer{
		ID:            id,
		Name:          r.Name,
		GSTNumber:     r.GSTNumber,
		AccountNumber: r.AccountNumber,
		IFSCCode:      r.IFSCCode,
		Bank:          r.Bank,
		Address:       r.Address,
		MobileNumber:  r.MobileNumber,
	}
}

// ListCustomers handles GET /api/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  domain.Customer
// @Router       /customers [get]
func (h *RegistryHandler) ListCustomers(c echo.Context) error {
	customers, err := h.registry.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// CreateCustomer handles POST /api/customers.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Router       /customers [post]
func (h *RegistryHandler) CreateCustomer(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.registry.CreateCustomer(c.Request().Context(), req.toDomain(""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCustomer handles PUT /api/customers/:id.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Customer id"
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /customers/{id} [put]
func (h *RegistryHandler) UpdateCustomer(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.registry.UpdateCustomer(c.Request().Context(), req.toDomain(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCustomer handles DELETE /api/customers/:id.
//
// @Summary      Delete a customer
// @Tags         customers
// @Param        id  path  string  true  "Customer id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id} [delete]
func (h *RegistryHandler) DeleteCustomer(c echo.Context) error {
	if err := h.registry.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
