package handlers

import (
	"net/http"

	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions, plus the
// chart and statistics endpoints backed by the reporting service.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reportingService   portssvc.ReportingSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		reportingService:   rs,
	}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newTransactionHandler(transactionService, reportingService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/recent/user/:userID", h.recentTransactions)
		transactions.GET("/user/:userID", h.userTransactions)
		transactions.GET("/account/:accountID", h.accountTransactions)
		transactions.GET("/pending/user/:userID", h.pendingTransactions)
		transactions.GET("/search/user/:userID", h.searchTransactions)
		transactions.GET("/chart/user/:userID", h.chart)
		transactions.GET("/statistics/user/:userID", h.statistics)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id/status", h.processTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

func totalPages(totalElements int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((totalElements + int64(size) - 1) / int64(size))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a new PENDING transaction against one of the requester's accounts.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), requesterID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recentTransactions godoc
// @Summary Recent transactions
// @Description Returns the user's 10 most recent transactions.
// @Tags transactions
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/recent/user/{userID} [get]
func (h *transactionHandler) recentTransactions(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	txns, err := h.transactionService.GetRecentTransactions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponseSlice(txns)})
}

// userTransactions godoc
// @Summary Paginated transaction listing
// @Tags transactions
// @Produce json
// @Param userID path string true "User ID"
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.PagedTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/user/{userID} [get]
func (h *transactionHandler) userTransactions(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	txns, total, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID, params.Page, params.Size)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedTransactionsResponse{
		Transactions:  dto.ToTransactionResponseSlice(txns),
		TotalElements: total,
		TotalPages:    totalPages(total, params.Size),
		CurrentPage:   params.Page,
		Size:          params.Size,
	})
}

// accountTransactions godoc
// @Summary Paginated listing for one account
// @Tags transactions
// @Produce json
// @Param accountID path string true "Account ID"
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.PagedTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/account/{accountID} [get]
func (h *transactionHandler) accountTransactions(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	txns, total, err := h.transactionService.GetAccountTransactions(c.Request.Context(), requesterID, c.Param("accountID"), params.Page, params.Size)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedTransactionsResponse{
		Transactions:  dto.ToTransactionResponseSlice(txns),
		TotalElements: total,
		TotalPages:    totalPages(total, params.Size),
		CurrentPage:   params.Page,
		Size:          params.Size,
	})
}

// pendingTransactions godoc
// @Summary Pending transactions
// @Tags transactions
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/pending/user/{userID} [get]
func (h *transactionHandler) pendingTransactions(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	txns, err := h.transactionService.GetPendingTransactions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponseSlice(txns)})
}

// searchTransactions godoc
// @Summary Search transactions by business name
// @Tags transactions
// @Produce json
// @Param userID path string true "User ID"
// @Param query query string true "Search term (case-insensitive substring)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/search/user/{userID} [get]
func (h *transactionHandler) searchTransactions(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	var params dto.SearchTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter is required"})
		return
	}

	txns, err := h.transactionService.SearchTransactions(c.Request.Context(), userID, params.Query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponseSlice(txns)})
}

// chart godoc
// @Summary Money-flow chart
// @Description Settled income and expense totals per calendar month: always 12 buckets per series, zero-filled.
// @Tags transactions
// @Produce json
// @Param userID path string true "User ID"
// @Param year query int false "Calendar year, defaults to current"
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/chart/user/{userID} [get]
func (h *transactionHandler) chart(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	var params dto.ChartParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year parameter"})
		return
	}

	flow, err := h.reportingService.GetMonthlyFlow(c.Request.Context(), userID, params.Year)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChartResponse(flow))
}

// statistics godoc
// @Summary Spending statistics
// @Description Settled expense totals per category for a named period (current, last, quarter, year).
// @Tags transactions
// @Produce json
// @Param userID path string true "User ID"
// @Param period query string false "Period name" default(current)
// @Success 200 {object} dto.StatisticsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/statistics/user/{userID} [get]
func (h *transactionHandler) statistics(c *gin.Context) {
	userID, ok := requireOwnPath(c, c.Param("userID"))
	if !ok {
		return
	}

	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid period parameter"})
		return
	}

	stats, err := h.reportingService.GetSpendingStatistics(c.Request.Context(), userID, params.Period)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), requesterID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// processTransaction godoc
// @Summary Settle a pending transaction
// @Description Moves a PENDING transaction to SUCCESS or FAILED. SUCCESS applies the amount to the owning account atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param status body dto.ProcessTransactionRequest true "Terminal status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Transaction is not pending"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/status [put]
func (h *transactionHandler) processTransaction(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.ProcessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.ProcessTransaction(c.Request.Context(), requesterID, c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction unless it settled SUCCESS.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Successful transactions cannot be deleted"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	requesterID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), requesterID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
