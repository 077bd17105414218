package handlers

import (
	"net/http"

	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// RegisterAccountRoutes registers all account-related routes.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/user/:userID", h.listAccounts)
		accounts.POST("/user/:userID", h.createAccount)
		accounts.GET("/wallet/user/:userID", h.getWallet)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id/balance", h.updateBalance)
		accounts.PUT("/:id/spending-limit", h.updateSpendingLimit)
		accounts.POST("/transfer", h.transfer)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// listAccounts godoc
// @Summary List a user's accounts
// @Description Returns the dashboard cards: every account with its percentage-change trend, plus the total balance.
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/user/{userID} [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	accounts, err := h.accountService.GetUserAccounts(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	totalBalance, err := h.accountService.GetTotalBalance(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts:     dto.ToAccountResponseSlice(accounts),
		TotalBalance: totalBalance,
	})
}

// createAccount godoc
// @Summary Create an account
// @Description Creates an account for the user. At most one account per type.
// @Tags accounts
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input or duplicate account type"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/user/{userID} [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getWallet godoc
// @Summary Get the user's wallet account
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/wallet/user/{userID} [get]
func (h *accountHandler) getWallet(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	account, err := h.accountService.GetWalletAccount(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), requesterID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateBalance godoc
// @Summary Overwrite an account's balance
// @Description Snapshots the current balance as the previous balance, then overwrites it.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param balance body dto.UpdateBalanceRequest true "New balance"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/balance [put]
func (h *accountHandler) updateBalance(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if !req.Balance.IsPositive() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Balance must be positive"})
		return
	}

	account, err := h.accountService.UpdateBalance(c.Request.Context(), requesterID, c.Param("id"), req.Balance)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateSpendingLimit godoc
// @Summary Update the wallet spending limit
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param limit body dto.UpdateSpendingLimitRequest true "New spending limit"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Not a wallet account"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/spending-limit [put]
func (h *accountHandler) updateSpendingLimit(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.UpdateSpendingLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateSpendingLimit(c.Request.Context(), requesterID, c.Param("id"), req.SpendingLimit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// transfer godoc
// @Summary Transfer between two accounts
// @Description Moves the amount between two accounts of the authenticated user as a single atomic unit.
// @Tags accounts
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Insufficient funds or invalid amount"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/transfer [post]
func (h *accountHandler) transfer(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.accountService.TransferMoney(c.Request.Context(), requesterID, req.FromAccountID, req.ToAccountID, req.Amount); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transfer completed"})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account that owns zero transactions.
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Account still has transactions"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), requesterID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
