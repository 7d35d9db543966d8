//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"table-booking/internal/domain/schedule"
	"table-booking/internal/domain/table"
	"table-booking/internal/handler/api"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/httptest"
	commandsmock "table-booking/tests/mock/commands"
	queriesmock "table-booking/tests/mock/queries"
	"table-booking/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.SetHTMLTemplate(web.Templates())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	open, err := schedule.ParseTimeOfDay("10:00")
	s.Require().NoError(err)
	close, err := schedule.ParseTimeOfDay("22:00")
	s.Require().NoError(err)
	window, err := schedule.NewWindow(open, close, 90*time.Minute)
	s.Require().NoError(err)

	loc, err := time.LoadLocation("America/New_York")
	s.Require().NoError(err)

	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, window, loc)

	s.router.GET("/", s.handler.ShowBookingForm)
	s.router.POST("/", s.handler.SubmitBooking)
	s.router.GET("/confirm/:id", s.handler.ShowConfirmation)
	s.router.GET("/admin", s.handler.AdminList)
	s.router.GET("/cancel/:id", s.handler.CancelReservation)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestShowBookingForm
// ================================================================================

func (s *BookingHandlerTestSuite) TestShowBookingForm() {
	s.Run("renders the form with the seating grid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/")

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "Reserve a Table"))
		s.True(httptest.BodyContains(rec, `<option value="10:00">`))
		s.True(httptest.BodyContains(rec, `<option value="20:30">`))
		s.False(httptest.BodyContains(rec, `<option value="22:00">`))
		s.False(httptest.BodyContains(rec, `class="error"`))
	})
}

// ================================================================================
// TestSubmitBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmitBooking() {
	b := builder.NewBookingBuilder()

	s.Run("success redirects to the confirmation page", func() {
		reservationID := uuid.New()
		assigned, err := table.New(3, 4)
		s.Require().NoError(err)

		var got commands.CreateReservationParams
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateReservationParams) (*commands.CreateReservationResult, error) {
				got = params
				return &commands.CreateReservationResult{ReservationID: reservationID, Table: assigned}, nil
			}).Times(1)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/", b.BuildFormValues())

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("/confirm/"+reservationID.String(), httptest.RedirectLocation(s.T(), rec))

		want := b.BuildParams()
		s.Equal(want.GuestName, got.GuestName)
		s.Equal(want.PartySize, got.PartySize)
		s.True(want.StartsAt.Equal(got.StartsAt))
	})

	s.Run("incomplete form re-renders with the validation message", func() {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
		}{
			{name: "missing name", mutate: func(b *builder.BookingBuilder) { b.GuestName = "" }},
			{name: "missing date", mutate: func(b *builder.BookingBuilder) { b.Date = "" }},
			{name: "missing time", mutate: func(b *builder.BookingBuilder) { b.Time = "" }},
			{name: "party size zero", mutate: func(b *builder.BookingBuilder) { b.PartySize = 0 }},
			{name: "party size above maximum", mutate: func(b *builder.BookingBuilder) { b.PartySize = 7 }},
			{name: "malformed date", mutate: func(b *builder.BookingBuilder) { b.Date = "05/20/2026" }},
			{name: "malformed time", mutate: func(b *builder.BookingBuilder) { b.Time = "6pm" }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				bad := builder.NewBookingBuilder()
				tc.mutate(bad)

				rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/", bad.BuildFormValues())

				s.Equal(http.StatusOK, rec.Code)
				s.True(httptest.BodyContains(rec, "Please fill all fields correctly."))
			})
		}
	})

	s.Run("domain validation failure shows the validation message", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/", b.BuildFormValues())

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "Please fill all fields correctly."))
	})

	s.Run("no free table shows the availability message", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrNoAvailability).Times(1)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/", b.BuildFormValues())

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "No available tables for this time and party size."))
	})

	s.Run("storage failure shows the retry message", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrPersistenceFailure).Times(1)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/", b.BuildFormValues())

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "Reservation failed. Try again."))
	})
}

// ================================================================================
// TestShowConfirmation
// ================================================================================

func (s *BookingHandlerTestSuite) TestShowConfirmation() {
	s.Run("renders the confirmed reservation", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetConfirmed(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/confirm/"+view.ID.String())

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "Reservation Confirmed"))
		s.True(httptest.BodyContains(rec, "Alice"))
		s.True(httptest.BodyContains(rec, "2026-05-20"))
		s.True(httptest.BodyContains(rec, "18:00"))
		s.True(httptest.BodyContains(rec, "19:30"))
		s.True(httptest.BodyContains(rec, view.ID.String()))
	})

	s.Run("malformed id is a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/confirm/not-a-uuid")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.True(httptest.BodyContains(rec, "Invalid reservation ID"))
	})

	s.Run("unknown reservation is a 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetConfirmed(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/confirm/"+id.String())

		s.Equal(http.StatusNotFound, rec.Code)
		s.True(httptest.BodyContains(rec, "Reservation not found or cancelled."))
	})
}

// ================================================================================
// TestAdminList
// ================================================================================

func (s *BookingHandlerTestSuite) TestAdminList() {
	s.Run("lists confirmed reservations with cancel links", func() {
		row := builder.NewBookingBuilder().BuildAdminRow()
		s.mockQueries.EXPECT().ListConfirmed(gomock.Any()).
			Return([]*queries.AdminReservationRow{row}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin")

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "Confirmed Reservations"))
		s.True(httptest.BodyContains(rec, "Alice"))
		s.True(httptest.BodyContains(rec, "/cancel/"+row.ID.String()))
	})

	s.Run("empty list still renders", func() {
		s.mockQueries.EXPECT().ListConfirmed(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin")

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "Confirmed Reservations"))
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelReservation() {
	s.Run("success redirects back to the admin list", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cancel/"+id.String())

		s.Equal(http.StatusFound, rec.Code)
		s.Equal("/admin", httptest.RedirectLocation(s.T(), rec))
	})

	s.Run("malformed id is a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cancel/not-a-uuid")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.True(httptest.BodyContains(rec, "Invalid ID"))
	})

	s.Run("unknown or already cancelled reservation is a 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cancel/"+id.String())

		s.Equal(http.StatusNotFound, rec.Code)
		s.True(httptest.BodyContains(rec, "Reservation not found or already cancelled."))
	})
}
