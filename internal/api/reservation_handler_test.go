package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/mocks"
	"github.com/phrazzld/clinic-api/internal/pagination"
	"github.com/phrazzld/clinic-api/internal/service"
	"github.com/phrazzld/clinic-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedPage(_ context.Context, userID int64, page int) (pagination.Page[domain.ReservationView], error) {
	views := []domain.ReservationView{}
	if userID == customer.UserID {
		views = append(views, domain.ReservationView{
			ID:           6,
			HospitalName: "Seoul Dental",
			DoctorName:   "Dr. Choi",
			Status:       domain.ReservationStatusApproved,
		})
	}
	return pagination.NewPage(views, len(views), page, pagination.DefaultLimit), nil
}

func TestReservationHandler_ListByStatus(t *testing.T) {
	var waitingPage int
	svc := &mocks.MockReservationService{
		GetApprovedFn: approvedPage,
		GetWaitingFn: func(_ context.Context, _ int64, page int) (pagination.Page[domain.ReservationView], error) {
			waitingPage = page
			return pagination.NewPage[domain.ReservationView](nil, 25, page, pagination.DefaultLimit), nil
		},
	}
	h := NewReservationHandler(svc, testLogger())

	t.Run("approved page 1", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListApproved(rr, newRequest(t, http.MethodGet, "/api/users/me/reservations/approved?page=1", nil, &customer))

		require.Equal(t, http.StatusOK, rr.Code)
		page := decodeBody[pagination.Page[domain.ReservationView]](t, rr)
		require.Len(t, page.Items, 1)
		assert.Equal(t, int64(6), page.Items[0].ID)
		assert.Equal(t, domain.ReservationStatusApproved, page.Items[0].Status)
		assert.Equal(t, 1, page.LastPage)
	})

	t.Run("empty result encodes items as array", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListApproved(rr, newRequest(t, http.MethodGet, "/x", nil, &partner))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"items":[]`)
		assert.Contains(t, rr.Body.String(), `"lastPage":0`)
		assert.Contains(t, rr.Body.String(), `"hasNext":false`)
	})

	t.Run("page forwarded", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListWaiting(rr, newRequest(t, http.MethodGet, "/x?page=3", nil, &customer))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, waitingPage)
		assert.Equal(t, 3, decodeBody[pagination.Page[domain.ReservationView]](t, rr).LastPage)
	})

	t.Run("page zero rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListCanceled(rr, newRequest(t, http.MethodGet, "/x?page=0", nil, &customer))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("done or reviewed uses default page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListDoneOrReviewed(rr, newRequest(t, http.MethodGet, "/x", nil, &customer))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, decodeBody[pagination.Page[domain.ReservationView]](t, rr).Page)
	})
}

func TestReservationHandler_Cancel(t *testing.T) {
	var adminPath, ownerPath bool
	svc := &mocks.MockReservationService{
		CancelReservationFn: func(_ context.Context, id int64) (domain.CancelResult, error) {
			adminPath = true
			return domain.CancelResult{ReservationID: id, Status: domain.ReservationStatusCanceled}, nil
		},
		CancelOwnReservationFn: func(_ context.Context, userID, id int64) (domain.CancelResult, error) {
			ownerPath = true
			switch {
			case id == 404:
				return domain.CancelResult{}, store.ErrReservationNotFound
			case userID != customer.UserID:
				return domain.CancelResult{}, service.ErrNotOwned
			}
			return domain.CancelResult{
				ReservationID:  id,
				Status:         domain.ReservationStatusCanceled,
				PreviousStatus: domain.ReservationStatusWaiting,
			}, nil
		},
	}
	h := NewReservationHandler(svc, testLogger())

	rr := httptest.NewRecorder()
	h.Cancel(rr, newRequest(t, http.MethodPut, "/api/reservations/5/cancel", nil, &customer, "id", "5"))
	require.Equal(t, http.StatusOK, rr.Code)
	result := decodeBody[domain.CancelResult](t, rr)
	assert.Equal(t, domain.ReservationStatusWaiting, result.PreviousStatus)
	assert.True(t, ownerPath)
	assert.False(t, adminPath)

	rr = httptest.NewRecorder()
	h.Cancel(rr, newRequest(t, http.MethodPut, "/x", nil, &partner, "id", "5"))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	h.Cancel(rr, newRequest(t, http.MethodPut, "/x", nil, &customer, "id", "404"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.Cancel(rr, newRequest(t, http.MethodPut, "/x", nil, &admin, "id", "9"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, adminPath)

	rr = httptest.NewRecorder()
	h.Cancel(rr, newRequest(t, http.MethodPut, "/x", nil, &customer, "id", "abc"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReservationHandler_Update(t *testing.T) {
	newDate := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	var gotStatus *domain.ReservationStatus
	var gotDate *time.Time
	svc := &mocks.MockReservationService{
		UpdateReservationFn: func(
			_ context.Context,
			owner, id int64,
			date *time.Time,
			status *domain.ReservationStatus,
		) (*domain.Reservation, error) {
			gotDate, gotStatus = date, status
			if id == 7 {
				return nil, domain.ErrReservationCanceled
			}
			if owner != partner.UserID {
				return nil, service.ErrNotOwned
			}
			r := &domain.Reservation{ID: id, Status: domain.ReservationStatusApproved, Date: newDate}
			return r, nil
		},
	}
	h := NewReservationHandler(svc, testLogger())

	approved := "approved"
	tests := []struct {
		name       string
		body       interface{}
		id         string
		principal  bool
		wantStatus int
	}{
		{name: "approve", body: UpdateReservationRequest{Status: &approved, Date: &newDate}, id: "5", wantStatus: http.StatusOK},
		{name: "empty body", body: UpdateReservationRequest{}, id: "5", wantStatus: http.StatusBadRequest},
		{name: "unknown status", body: `{"status":"lost"}`, id: "5", wantStatus: http.StatusBadRequest},
		{name: "canceled is terminal", body: UpdateReservationRequest{Status: &approved}, id: "7", wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Update(rr, newRequest(t, http.MethodPatch, "/api/partner/reservations/"+tt.id, tt.body, &partner, "id", tt.id))
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}

	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.ReservationStatusApproved, *gotStatus)
	assert.Nil(t, gotDate, "last call carried only a status")
}

func TestReservationHandler_ListHospital(t *testing.T) {
	var owner int64
	svc := &mocks.MockReservationService{
		ListHospitalFn: func(_ context.Context, ownerID int64, page int) (pagination.Page[domain.ReservationView], error) {
			owner = ownerID
			return pagination.NewPage[domain.ReservationView](nil, 0, page, pagination.DefaultLimit), nil
		},
	}
	h := NewReservationHandler(svc, testLogger())

	rr := httptest.NewRecorder()
	h.ListHospital(rr, newRequest(t, http.MethodGet, "/api/partner/reservations?page=2", nil, &partner))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, partner.UserID, owner)
}
