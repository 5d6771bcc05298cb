package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lawflow/config"
	"lawflow/middleware"
	"lawflow/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// stubEngine records which engine operations the handlers reached.
type stubEngine struct {
	transitioned *models.BookingTransitionRequest
	deleted      string
}

func (s *stubEngine) ListSlots(ctx context.Context, profileID, fromDate, toDate string) ([]models.Slot, error) {
	return nil, nil
}

func (s *stubEngine) Reserve(ctx context.Context, profileID string, sub *models.BookingSubmission) (*models.Booking, error) {
	return &models.Booking{ID: "bk-1", AvailabilityID: profileID}, nil
}

func (s *stubEngine) TransitionBooking(ctx context.Context, bookingID string, req models.BookingTransitionRequest) (*models.Booking, error) {
	s.transitioned = &req
	return &models.Booking{ID: bookingID, AvailabilityID: "prof-1", Status: req.Status}, nil
}

func (s *stubEngine) ListBookings(ctx context.Context, profileID string, from, to time.Time, status string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubEngine) DeleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	s.deleted = bookingID
	return &models.Booking{ID: bookingID, AvailabilityID: "prof-1"}, nil
}

func bookingRouter(engine *stubEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(engine, nil)
	r.PATCH("/api/bookings/:id", middleware.OptionalHostAuth(), h.TransitionBooking)
	r.DELETE("/api/bookings/:id", h.DeleteBooking)
	return r
}

func hostToken(t *testing.T) string {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "host-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func patchBooking(r *gin.Engine, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/bk-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransitionAnonymousClientCancel(t *testing.T) {
	engine := &stubEngine{}
	r := bookingRouter(engine)

	w := patchBooking(r, `{"status":"cancelled","cancelledBy":"client"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("client cancellation must work without a token, got %d: %s", w.Code, w.Body.String())
	}
	if engine.transitioned == nil {
		t.Fatal("expected the transition to reach the engine")
	}
}

func TestTransitionAnonymousHostActionsRejected(t *testing.T) {
	bodies := map[string]string{
		"approve":     `{"status":"confirmed"}`,
		"reject":      `{"status":"rejected"}`,
		"complete":    `{"status":"completed"}`,
		"host cancel": `{"status":"cancelled","cancelledBy":"host"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			engine := &stubEngine{}
			r := bookingRouter(engine)

			w := patchBooking(r, body, "")
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 for anonymous host action, got %d", w.Code)
			}
			if engine.transitioned != nil {
				t.Fatal("host action must not reach the engine without a token")
			}
		})
	}
}

func TestTransitionWithHostToken(t *testing.T) {
	engine := &stubEngine{}
	r := bookingRouter(engine)

	w := patchBooking(r, `{"status":"confirmed"}`, hostToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("host approval with a valid token should pass, got %d: %s", w.Code, w.Body.String())
	}
	if engine.transitioned == nil || engine.transitioned.Status != models.BookingConfirmed {
		t.Fatalf("expected a confirm transition at the engine, got %+v", engine.transitioned)
	}
}

func TestDeleteBookingInvalidatesByProfile(t *testing.T) {
	engine := &stubEngine{}
	r := bookingRouter(engine)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/bk-9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if engine.deleted != "bk-9" {
		t.Fatalf("expected delete to reach the engine, got %q", engine.deleted)
	}
}
