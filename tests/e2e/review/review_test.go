//go:build e2e

package review_test

import (
	"net/http"
	"testing"
	"time"

	"bookit-api/internal/domain/user"
	"bookit-api/internal/handler/dto/request"
	"bookit-api/internal/handler/dto/response"
	"bookit-api/tests/common/authtest"
	"bookit-api/tests/common/dbtest"
	"bookit-api/tests/common/httptest"
	"bookit-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reviewsURL = "/reviews"

type ReviewSuite struct {
	e2e.SharedSuite
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

// seeds a user with a booking of the given status that ended an hour ago
func (s *ReviewSuite) seedBooking(email, status string) (uuid.UUID, uuid.UUID, string) {
	t := s.T()

	userID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleUser))
	serviceID := dbtest.CreateTestService(t, s.DB, "Reviewed Service", 60)

	now := time.Now().UTC()
	bookingID := dbtest.CreateTestBooking(t, s.DB, userID, serviceID,
		now.Add(-2*time.Hour), now.Add(-1*time.Hour), status)

	token := authtest.LoginUser(t, s.Router, email, "password123")
	return bookingID, serviceID, token
}

func (s *ReviewSuite) TestReviewLifecycle() {
	s.Run("completed booking can be reviewed once", func() {
		t := s.T()

		bookingID, serviceID, token := s.seedBooking("reviewer@example.com", "completed")

		reqBody := request.CreateReviewRequest{
			BookingID: bookingID.String(),
			Rating:    5,
			Comment:   "Excellent service!",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, 5, created.Rating)
		require.Equal(t, serviceID.String(), created.ServiceID)

		// a second review for the same booking is rejected
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// the review is publicly readable
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"/"+created.ID, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var fetched response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))

		expected := response.ReviewResponse{
			BookingID: bookingID.String(),
			ServiceID: serviceID.String(),
			Rating:    5,
			Comment:   "Excellent service!",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "UserID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, fetched, opts...); diff != "" {
			t.Errorf("Review response mismatch (-want +got):\n%s", diff)
		}

		// and shows up on the service listing
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/services/"+serviceID.String()+"/reviews", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list []response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 1)
	})

	s.Run("non-completed bookings cannot be reviewed", func() {
		t := s.T()

		for _, status := range []string{"pending", "confirmed", "cancelled"} {
			bookingID, _, token := s.seedBooking(status+"@example.com", status)

			reqBody := request.CreateReviewRequest{
				BookingID: bookingID.String(),
				Rating:    4,
				Comment:   "Premature review",
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
			require.Equal(t, http.StatusBadRequest, w.Code, "status %s: %s", status, w.Body.String())
		}
	})

	s.Run("completing a booking unlocks the review", func() {
		t := s.T()

		bookingID, _, token := s.seedBooking("eager@example.com", "pending")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		reqBody := request.CreateReviewRequest{
			BookingID: bookingID.String(),
			Rating:    5,
			Comment:   "Worth the wait",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		completed := "completed"
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, "/bookings/"+bookingID.String(),
			request.UpdateBookingRequest{Status: &completed}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("only the booking owner may review it", func() {
		t := s.T()

		bookingID, _, _ := s.seedBooking("owner@example.com", "completed")
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleUser))

		reqBody := request.CreateReviewRequest{
			BookingID: bookingID.String(),
			Rating:    1,
			Comment:   "Not my booking",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("author updates, admin deletes", func() {
		t := s.T()

		bookingID, _, token := s.seedBooking("author@example.com", "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
			BookingID: bookingID.String(),
			Rating:    4,
			Comment:   "Good",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// author rewrites the review
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reviewsURL+"/"+created.ID, request.UpdateReviewRequest{
			Rating:  2,
			Comment: "Changed my mind",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, 2, updated.Rating)

		// an admin may not rewrite it
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "moderator@example.com", string(user.RoleAdmin))
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reviewsURL+"/"+created.ID, request.UpdateReviewRequest{
			Rating:  5,
			Comment: "Admin edit",
		}, adminToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// but may remove it
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+created.ID, nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"/"+created.ID, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}
