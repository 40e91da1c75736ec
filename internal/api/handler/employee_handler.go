package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/littlesona/vks-portal/internal/core/ports"
)

// EmployeeHandler serves the admin-only staff management and audit-trail
// endpoints. RBAC is enforced by the router; handlers assume an admin caller.
type EmployeeHandler struct {
	employees ports.EmployeeService
	audit     ports.AuditService
}

func NewEmployeeHandler(employees ports.EmployeeService, audit ports.AuditService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, audit: audit}
}

type employeeRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Mobile   string `json:"mobile"`
}

// List handles GET /api/employees.
//
// @Summary      List staff accounts
// @Tags         employees
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	users, err := h.employees.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /api/employees.
//
// @Summary      Create a staff account
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      employeeRequest  true  "Staff account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.employees.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/employees/:id. An empty password keeps the stored
// hash.
//
// @Summary      Update a staff account
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string           true  "User id"
// @Param        body  body      employeeRequest  true  "Staff account details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.employees.Update(c.Request().Context(), ports.UpdateEmployeeInput{
		ID:       c.Param("id"),
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete a staff account
// @Tags         employees
// @Security     CookieAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employees.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListLoginEvents handles GET /api/login_events?username=&limit=.
//
// @Summary      Recent login audit events for a user
// @Tags         employees
// @Produce      json
// @Security     CookieAuth
// @Param        username  query     string  true   "Username to inspect"
// @Param        limit     query     int     false  "Maximum entries (default 50, cap 100)"
// @Success      200       {array}   domain.LoginEvent
// @Failure      400       {object}  map[string]string
// @Router       /login_events [get]
func (h *EmployeeHandler) ListLoginEvents(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	events, err := h.audit.Recent(c.Request().Context(), username, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
