package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// Ledger account and center bank account endpoints; part of RegistryHandler.

type accountRequest struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// ListAccounts handles GET /api/accounts.
//
// @Summary      List ledger accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  domain.Account
// @Router       /accounts [get]
func (h *RegistryHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.registry.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// CreateAccount handles POST /api/accounts.
//
// @Summary      Create a ledger account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /accounts [post]
func (h *RegistryHandler) CreateAccount(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.registry.CreateAccount(c.Request().Context(), &domain.Account{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAccount handles PUT /api/accounts/:id.
//
// @Summary      Update a ledger account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Account id"
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /accounts/{id} [put]
func (h *RegistryHandler) UpdateAccount(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.registry.UpdateAccount(c.Request().Context(), &domain.Account{
		ID:      c.Param("id"),
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAccount handles DELETE /api/accounts/:id.
//
// @Summary      Delete a ledger account
// @Tags         accounts
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /accounts/{id} [delete]
func (h *RegistryHandler) DeleteAccount(c echo.Context) error {
	if err := h.registry.DeleteAccount(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Center bank accounts ---

type bankAccountRequest struct {
	Code          int     `json:"code"`
	SubCode       string  `json:"sub_code"`
	BankAccNumber string  `json:"bank_acc_number"`
	Name          string  `json:"name"`
	IFSC          string  `json:"ifsc"`
	Branch        string  `json:"branch"`
	Amount        float64 `json:"amount"`
}

func (r bankAccountRequest) toDomain(code int) *domain.CenterBankAccount {
	return &domain.CenterBankAccount{
		Code:          code,
		SubCode:       r.SubCode,
		BankAccNumber: r.BankAccNumber,
		Name:          r.Name,
		IFSC:          r.IFSC,
		Branch:        r.Branch,
		Amount:        r.Amount,
	}
}

// bankAccountCode parses the :code path parameter.
func bankAccountCode(c echo.Context) (int, error) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "code must be an integer")
	}
	return code, nil
}

// ListBankAccounts handles GET /api/center_account_details.
//
// @Summary      List center bank accounts
// @Tags         bank-accounts
// @Produce      json
// @Success      200  {array}  domain.CenterBankAccount
// @Router       /center_account_details [get]
func (h *RegistryHandler) ListBankAccounts(c echo.Context) error {
	accounts, err := h.registry.ListBankAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// CreateBankAccount handles POST /api/center_account_details.
//
// @Summary      Create a center bank account
// @Tags         bank-accounts
// @Accept       json
// @Produce      json
// @Param        body  body      bankAccountRequest  true  "Bank account details"
// @Success      201   {object}  domain.CenterBankAccount
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /center_account_details [post]
func (h *RegistryHandler) CreateBankAccount(c echo.Context) error {
	var req bankAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.registry.CreateBankAccount(c.Request().Context(), req.toDomain(req.Code))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateBankAccount handles PUT /api/center_account_details/:code.
//
// @Summary      Update a center bank account
// @Tags         bank-accounts
// @Accept       json
// @Produce      json
// @Param        code  path      int                 true  "Account code"
// @Param        body  body      bankAccountRequest  true  "Bank account details"
// @Success      200   {object}  domain.CenterBankAccount
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /center_account_details/{code} [put]
func (h *RegistryHandler) UpdateBankAccount(c echo.Context) error {
	code, err := bankAccountCode(c)
	if err != nil {
		return err
	}

	var req bankAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.registry.UpdateBankAccount(c.Request().Context(), req.toDomain(code))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBankAccount handles DELETE /api/center_account_details/:code.
//
// @Summary      Delete a center bank account
// @Tags         bank-accounts
// @Param        code  path  int  true  "Account code"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /center_account_details/{code} [delete]
func (h *RegistryHandler) DeleteBankAccount(c echo.Context) error {
	code, err := bankAccountCode(c)
	if err != nil {
		return err
	}
	if err := h.registry.DeleteBankAccount(c.Request().Context(), code); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
