package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financas/internal/errors"
	"financas/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	InitialBalance int64  `json:"initial_balance" binding:"gte=0"`
	Color          string `json:"color" binding:"omitempty,hex_color"`
}

// SetBalanceRequest represents the request payload for a manual balance override
type SetBalanceRequest struct {
	Balance int64 `json:"balance"`
}

// AccountResponse represents an account in the response
type AccountResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Create handles the creation of a new account
// @Summary     Create an account
// @Description Create a new account with a starting balance and display color
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} AccountResponse "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.Create(req.Name, req.InitialBalance, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// List handles listing all accounts in insertion order
// @Summary     List accounts
// @Description List all accounts in creation order
// @Tags        accounts
// @Produce     json
// @Success     200 {array} AccountResponse "Accounts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountService.List()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetByID handles retrieving a single account
// @Summary     Get an account
// @Description Get an account by ID
// @Tags        accounts
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} AccountResponse "Account"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// SetBalance handles a manual balance override
// @Summary     Override an account balance
// @Description Unconditionally set an account's balance, establishing a new baseline
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Param       request body SetBalanceRequest true "New balance"
// @Success     200 {object} AccountResponse "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /accounts/{id}/balance [put]
func (h *AccountHandler) SetBalance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.SetBalance(id, req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// Delete handles deleting an account and its transactions
// @Summary     Delete an account
// @Description Delete an account, cascading to all its transactions
// @Tags        accounts
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
