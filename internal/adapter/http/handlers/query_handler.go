package handlers

import (
	"log"
	"net/http"

	response "atelier_backoffice/internal/adapter/http/dto/response"
	"atelier_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QueryHandler serves the read side: one entity plus its full audit history.

type QueryHandler struct {
	bookings usecase.IBookingWorkflowUseCase
	repairs  usecase.IRepairWorkflowUseCase
	deposits usecase.IDepositWorkflowUseCase
}

func NewQueryHandler(bookings usecase.IBookingWorkflowUseCase, repairs usecase.IRepairWorkflowUseCase, deposits usecase.IDepositWorkflowUseCase) *QueryHandler {
	return &QueryHandler{bookings: bookings, repairs: repairs, deposits: deposits}
}

// GetBooking godoc
//
//	@Summary	Get a booking with its quote, measurement, payments and history
//	@Tags		bookings
//	@Produce	json
//	@Param		id	path		string	true	"Booking id"
//	@Success	200	{object}	response.BookingDetailResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/bookings/{id} [get]
func (h *QueryHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[query][handler] get booking failed id=%s err=%v", id, err)
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingDetail(detail))
}

// GetRepair godoc
//
//	@Summary	Get a repair request with its payments and history
//	@Tags		repairs
//	@Produce	json
//	@Param		id	path		string	true	"Repair request id"
//	@Success	200	{object}	response.RepairDetailResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/repairs/{id} [get]
func (h *QueryHandler) GetRepair(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.repairs.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[query][handler] get repair failed id=%s err=%v", id, err)
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepairDetail(detail))
}

// GetDeposit godoc
//
//	@Summary	Get an investor deposit with its confirmation log
//	@Tags		deposits
//	@Produce	json
//	@Param		id	path		string	true	"Deposit id"
//	@Success	200	{object}	response.DepositDetailResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/deposits/{id} [get]
func (h *QueryHandler) GetDeposit(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.deposits.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[query][handler] get deposit failed id=%s err=%v", id, err)
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositDetail(detail))
}
