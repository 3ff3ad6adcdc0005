package api

import (
	"net/http"

	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary List rooms
// @Description List every room with its bookings, in creation order
// @Tags reports
// @Produce json
// @Success 200 {array} resdto.RoomReportResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *ReportHandler) ListRooms(c *gin.Context) {
	reports, err := h.q.Rooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomReports(reports))
}

// @Summary List customers
// @Description List every booking with its customer and room name, in creation order
// @Tags reports
// @Produce json
// @Success 200 {array} resdto.CustomerBookingResponse
// @Failure 500 {object} httperr.Response
// @Router /customers [get]
func (h *ReportHandler) ListCustomers(c *gin.Context) {
	items, err := h.q.Customers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerBookings(items))
}

// @Summary Customer bookings
// @Description Summarize the bookings of one customer (exact, case-sensitive name match)
// @Tags reports
// @Produce json
// @Param customerName path string true "Customer name"
// @Success 200 {object} resdto.CustomerSummaryResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /customer-bookings/{customerName} [get]
func (h *ReportHandler) CustomerBookings(c *gin.Context) {
	summary, err := h.q.CustomerSummary(c.Request.Context(), c.Param("customerName"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCustomerBookingsNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No bookings found for this customer", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerSummary(summary))
}
