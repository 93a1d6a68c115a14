package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ledger "github.com/xraph/invoiceledger"
	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/types"
)

// handler adapts HTTP requests to ledger commands. The caller identity comes
// from the X-Sender header, standing in for whatever authentication the
// deployment fronts this daemon with.
type handler struct {
	ledger *ledger.Ledger
}

func registerRoutes(r *gin.Engine, l *ledger.Ledger) {
	h := &handler{ledger: l}

	api := r.Group("/api")

	api.GET("/health", h.health)

	invoices := api.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("/:id/pay", h.payInvoice)
	}

	api.GET("/users/:address/invoices", h.listUserInvoices)
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type createInvoiceRequest struct {
	Recipient   string `json:"recipient" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
	DueDate     uint64 `json:"due_date"`
}

func (h *handler) createInvoice(c *gin.Context) {
	sender, ok := senderFrom(c)
	if !ok {
		return
	}

	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := types.ParseUint128(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount: " + err.Error()})
		return
	}

	info := ledger.MsgInfo{Sender: sender}
	resp, err := h.ledger.CreateInvoice(c.Request.Context(), info, req.Recipient, amount, req.Description, req.DueDate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type payInvoiceRequest struct {
	Funds []coinPayload `json:"funds" binding:"required"`
}

type coinPayload struct {
	Denom  string `json:"denom" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

func (h *handler) payInvoice(c *gin.Context) {
	sender, ok := senderFrom(c)
	if !ok {
		return
	}
	invoiceID, ok := invoiceIDFrom(c)
	if !ok {
		return
	}

	var req payInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	funds := make([]types.Coin, 0, len(req.Funds))
	for _, f := range req.Funds {
		amount, err := types.ParseUint128(f.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount: " + err.Error()})
			return
		}
		funds = append(funds, types.NewCoin(f.Denom, amount))
	}

	info := ledger.MsgInfo{Sender: sender, Funds: funds}
	resp, err := h.ledger.PayInvoice(c.Request.Context(), info, invoiceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) getInvoice(c *gin.Context) {
	invoiceID, ok := invoiceIDFrom(c)
	if !ok {
		return
	}

	p, err := h.ledger.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) listUserInvoices(c *gin.Context) {
	projections, err := h.ledger.InvoicesByUser(c.Request.Context(), c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": projections})
}

func senderFrom(c *gin.Context) (addr.Address, bool) {
	raw := c.GetHeader("X-Sender")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Sender header"})
		return addr.Nil, false
	}
	return addr.New(raw), true
}

func invoiceIDFrom(c *gin.Context) (uint64, bool) {
	invoiceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return 0, false
	}
	return invoiceID, true
}

// writeError maps ledger errors onto HTTP statuses. Domain rejections keep
// their sentinel messages; storage faults are masked as a plain 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrIncorrectPayment):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrAlreadyPaid):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidAddress),
		errors.Is(err, ledger.ErrSelfInvoice),
		errors.Is(err, ledger.ErrZeroAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrNotReady):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
