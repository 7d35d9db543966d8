//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"table-booking/tests/common/builder"
	"table-booking/tests/common/httptest"
	"table-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingURL = "/"
	confirmURL = "/confirm/%s"
	adminURL   = "/admin"
	cancelURL  = "/cancel/%s"
)

var confirmLocationRe = regexp.MustCompile(`^/confirm/([0-9a-f-]{36})$`)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// book submits the form and returns the new reservation id from the redirect.
func (s *BookingSuite) book(b *builder.BookingBuilder) string {
	t := s.T()

	rec := httptest.PerformForm(t, s.Router, http.MethodPost, bookingURL, b.BuildFormValues())
	require.Equal(t, http.StatusSeeOther, rec.Code, "booking was not accepted: %s", rec.Body.String())

	loc := httptest.RedirectLocation(t, rec)
	m := confirmLocationRe.FindStringSubmatch(loc)
	require.NotNil(t, m, "unexpected redirect target %q", loc)
	return m[1]
}

func (s *BookingSuite) confirmationBody(id string) string {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(confirmURL, id))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

// =============================================================================
// TestBookingForm
// =============================================================================

func (s *BookingSuite) TestBookingForm() {
	s.Run("form lists the full seating grid", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL)

		s.Equal(http.StatusOK, rec.Code)
		for _, slot := range []string{"10:00", "11:30", "13:00", "14:30", "16:00", "17:30", "19:00", "20:30"} {
			s.True(httptest.BodyContains(rec, fmt.Sprintf(`<option value="%s">`, slot)), "missing slot %s", slot)
		}
	})
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("party of three gets the smallest 4-top", func() {
		id := s.book(builder.NewBookingBuilder())

		body := s.confirmationBody(id)
		s.Contains(body, "Alice")
		s.Contains(body, "Table: #3 (4 seats)")
		s.Contains(body, "2026-05-20")
		s.Contains(body, "18:00")
		s.Contains(body, "19:30")
		s.Contains(body, "confirmed")
	})

	s.Run("party of five gets a 6-top", func() {
		id := s.book(builder.NewBookingBuilder().WithGuestName("Bob").WithPartySize(5))

		body := s.confirmationBody(id)
		s.Contains(body, "Table: #5 (6 seats)")
	})

	s.Run("same slot fills tables smallest-first", func() {
		first := s.book(builder.NewBookingBuilder().WithGuestName("First"))
		second := s.book(builder.NewBookingBuilder().WithGuestName("Second"))

		s.Contains(s.confirmationBody(first), "Table: #3")
		s.Contains(s.confirmationBody(second), "Table: #4")
	})

	s.Run("slot exhaustion reports no availability", func() {
		// A party of three fits tables 3-6; book all four.
		for _, name := range []string{"A", "B", "C", "D"} {
			s.book(builder.NewBookingBuilder().WithGuestName(name))
		}

		rec := httptest.PerformForm(s.T(), s.Router, http.MethodPost, bookingURL,
			builder.NewBookingBuilder().WithGuestName("Late").BuildFormValues())

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "No available tables for this time and party size."))
	})

	s.Run("adjacent seating reuses the same table", func() {
		first := s.book(builder.NewBookingBuilder().WithTime("18:00"))
		second := s.book(builder.NewBookingBuilder().WithGuestName("Next").WithTime("19:30"))

		s.Contains(s.confirmationBody(first), "Table: #3")
		s.Contains(s.confirmationBody(second), "Table: #3")
	})

	s.Run("invalid form input re-renders the form", func() {
		form := builder.NewBookingBuilder().BuildFormValues()
		form.Set("party_size", "9")

		rec := httptest.PerformForm(s.T(), s.Router, http.MethodPost, bookingURL, form)

		s.Equal(http.StatusOK, rec.Code)
		s.True(httptest.BodyContains(rec, "Please fill all fields correctly."))
	})
}

// =============================================================================
// TestConfirmation
// =============================================================================

func (s *BookingSuite) TestConfirmation() {
	s.Run("unknown reservation is a 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf(confirmURL, "00000000-0000-0000-0000-000000000000"))

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id is a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/confirm/garbage")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// =============================================================================
// TestAdminList
// =============================================================================

func (s *BookingSuite) TestAdminList() {
	s.Run("lists confirmed reservations in seating order", func() {
		evening := s.book(builder.NewBookingBuilder().WithGuestName("Evening").WithTime("19:00"))
		morning := s.book(builder.NewBookingBuilder().WithGuestName("Morning").WithTime("10:00"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminURL)
		s.Equal(http.StatusOK, rec.Code)

		linkRe := regexp.MustCompile(`/cancel/([0-9a-f-]{36})`)
		var listed []string
		for _, m := range linkRe.FindAllStringSubmatch(rec.Body.String(), -1) {
			listed = append(listed, m[1])
		}

		want := []string{morning, evening}
		s.Empty(cmp.Diff(want, listed))
	})

	s.Run("cancelled reservations disappear from the list", func() {
		id := s.book(builder.NewBookingBuilder())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(cancelURL, id))
		s.Equal(http.StatusFound, rec.Code)
		s.Equal(adminURL, httptest.RedirectLocation(s.T(), rec))

		listRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminURL)
		s.Equal(http.StatusOK, listRec.Code)
		s.False(strings.Contains(listRec.Body.String(), id))
	})
}

// =============================================================================
// TestCancel
// =============================================================================

func (s *BookingSuite) TestCancel() {
	s.Run("cancelling frees the table for the same slot", func() {
		id := s.book(builder.NewBookingBuilder())
		s.Contains(s.confirmationBody(id), "Table: #3")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(cancelURL, id))
		s.Equal(http.StatusFound, rec.Code)

		rebooked := s.book(builder.NewBookingBuilder().WithGuestName("Replacement"))
		s.Contains(s.confirmationBody(rebooked), "Table: #3")
	})

	s.Run("confirmation page stops serving a cancelled reservation", func() {
		id := s.book(builder.NewBookingBuilder())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(cancelURL, id))
		s.Equal(http.StatusFound, rec.Code)

		confirmRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(confirmURL, id))
		s.Equal(http.StatusNotFound, confirmRec.Code)
	})

	s.Run("cancelling twice is a 404", func() {
		id := s.book(builder.NewBookingBuilder())

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(cancelURL, id))
		s.Equal(http.StatusFound, first.Code)

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(cancelURL, id))
		s.Equal(http.StatusNotFound, second.Code)
	})

	s.Run("cancelling an unknown reservation is a 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf(cancelURL, "00000000-0000-0000-0000-000000000000"))

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
