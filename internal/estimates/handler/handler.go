package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"buildsmart_backend/internal/estimates/repository"
	"buildsmart_backend/internal/estimates/service"
	"buildsmart_backend/internal/estimates/transport"
	"buildsmart_backend/platform/httpkit"
)

// Handler handles public HTTP requests for estimates.
type Handler struct {
	svc *service.Service
}

const msgInvalidToken = "invalid share token"

// Share tokens are 32 random bytes hex encoded.
const shareTokenLength = 64

// New creates a new estimates handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Get returns the estimate behind a share token.
// GET /api/v1/estimates/:token
func (h *Handler) Get(c *gin.Context) {
	token, ok := shareToken(c)
	if !ok {
		return
	}

	est, err := h.svc.GetByShareToken(c.Request.Context(), token)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromEstimate(est, h.svc.ShareURL(est.ShareToken)))
}

// ExportCSV streams the estimate line items as CSV.
// GET /api/v1/estimates/:token/export
func (h *Handler) ExportCSV(c *gin.Context) {
	token, ok := shareToken(c)
	if !ok {
		return
	}

	est, err := h.svc.GetByShareToken(c.Request.Context(), token)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=estimate.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write([]string{"Section", "Room", "Item", "Detail", "Cost"}); err != nil {
		return
	}
	writeProductRows(writer, est)
	writeLaborRows(writer, est)
	writeTotalRows(writer, est)
}

func writeProductRows(writer *csv.Writer, est repository.Estimate) {
	for _, product := range est.State.SelectedProducts {
		_ = writer.Write([]string{
			"Products",
			"",
			product.Name,
			product.Description,
			formatCost(product.Price),
		})
	}
}

func writeLaborRows(writer *csv.Writer, est repository.Estimate) {
	for _, breakdown := range est.State.LaborCosts {
		for _, item := range breakdown.Items {
			_ = writer.Write([]string{
				"Labor",
				breakdown.RoomName,
				item.Name,
				item.Description,
				formatCost(item.Cost),
			})
		}
	}
}

func writeTotalRows(writer *csv.Writer, est repository.Estimate) {
	rows := [][2]string{
		{"Products Subtotal", formatCost(est.ProductsCost)},
		{"Labor Subtotal", formatCost(est.LaborCost)},
		{"Sales Tax", formatCost(est.Tax)},
		{"Total", formatCost(est.Total)},
	}
	for _, row := range rows {
		_ = writer.Write([]string{"Totals", "", row[0], "", row[1]})
	}
}

func formatCost(amount float64) string {
	if amount == float64(int64(amount)) {
		return strconv.FormatInt(int64(amount), 10)
	}
	return fmt.Sprintf("%.2f", amount)
}

func shareToken(c *gin.Context) (string, bool) {
	token := c.Param("token")
	if len(token) != shareTokenLength {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidToken, nil)
		return "", false
	}
	return token, true
}
