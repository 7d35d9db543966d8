package api

import (
	"errors"
	"net/http"
	"time"

	"table-booking/internal/domain/schedule"
	reqdto "table-booking/internal/handler/dto/request"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// User-facing form messages. Failures re-render the booking form inline
// instead of surfacing an error page.
const (
	msgInvalidForm    = "Please fill all fields correctly."
	msgNoAvailability = "No available tables for this time and party size."
	msgBookingFailed  = "Reservation failed. Try again."
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
	window   schedule.Window
	loc      *time.Location
}

func NewBookingHandler(
	commands commands.BookingCommands,
	queries queries.BookingQueries,
	window schedule.Window,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		commands: commands,
		queries:  queries,
		window:   window,
		loc:      loc,
	}
}

// @Summary Booking form
// @Description Render the booking form with the generated seating slots
// @Tags bookings
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (h *BookingHandler) ShowBookingForm(c *gin.Context) {
	h.renderForm(c, "")
}

// @Summary Submit booking
// @Description Assign the best-fitting free table and confirm the reservation
// @Tags bookings
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Guest name"
// @Param date formData string true "Reservation date (YYYY-MM-DD)"
// @Param time formData string true "Seating start time (HH:MM)"
// @Param party_size formData int true "Party size (1-6)"
// @Success 303 {string} string
// @Router / [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var form reqdto.CreateBookingForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, msgInvalidForm)
		return
	}

	params, err := form.ToParams(h.loc)
	if err != nil {
		h.renderForm(c, msgInvalidForm)
		return
	}

	result, err := h.commands.CreateReservation(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			h.renderForm(c, msgInvalidForm)
		case errors.Is(err, errs.ErrNoAvailability):
			h.renderForm(c, msgNoAvailability)
		default:
			_ = c.Error(err)
			h.renderForm(c, msgBookingFailed)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/confirm/"+result.ReservationID.String())
}

// @Summary Confirmation view
// @Description Show a confirmed reservation
// @Tags bookings
// @Produce html
// @Param id path string true "Reservation ID"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /confirm/{id} [get]
func (h *BookingHandler) ShowConfirmation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	view, err := h.queries.GetConfirmed(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			c.String(http.StatusNotFound, "Reservation not found or cancelled.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"Res": resdto.FromReservationView(view, h.loc),
	})
}

// @Summary Admin list
// @Description List all confirmed reservations
// @Tags admin
// @Produce html
// @Success 200 {string} string
// @Router /admin [get]
func (h *BookingHandler) AdminList(c *gin.Context) {
	rows, err := h.queries.ListConfirmed(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	list := make([]*resdto.AdminListRow, len(rows))
	for i, row := range rows {
		list[i] = resdto.FromAdminRow(row)
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Reservations": list,
	})
}

// @Summary Cancel reservation
// @Description Cancel a confirmed reservation and return to the admin list
// @Tags admin
// @Produce html
// @Param id path string true "Reservation ID"
// @Success 302 {string} string
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /cancel/{id} [get]
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.commands.CancelReservation(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			c.String(http.StatusNotFound, "Reservation not found or already cancelled.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *BookingHandler) renderForm(c *gin.Context, errorMsg string) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Error": errorMsg,
		"Slots": resdto.FromSlots(h.window.Slots()),
	})
}
