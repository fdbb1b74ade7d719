package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-portfolio-backend/internal/delivery/http/middleware"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("error")
	os.Exit(m.Run())
}

type stubContactUC struct {
	outcome  domain.SubmissionOutcome
	received *domain.ContactMessage
}

func (s *stubContactUC) Submit(ctx context.Context, msg *domain.ContactMessage) domain.SubmissionOutcome {
	s.received = msg
	return s.outcome
}

func newContactRouter(uc domain.ContactUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	v1.NewContactHandler(r.Group("/v1"), uc)
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactSuccess(t *testing.T) {
	uc := &stubContactUC{outcome: domain.SuccessOutcome()}
	r := newContactRouter(uc)

	w := postContact(r, `{"name":"Jane Doe","email":"jane@example.com","message":"I would like to discuss a project."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.NotNil(t, uc.received)
	assert.Equal(t, "jane@example.com", uc.received.Email)
}

func TestSubmitContactValidationFailure(t *testing.T) {
	uc := &stubContactUC{outcome: domain.ValidationFailureOutcome(map[string]string{
		"email": "Please enter a valid email",
	})}
	r := newContactRouter(uc)

	w := postContact(r, `{"name":"Jane Doe","email":"bad","message":"I would like to discuss a project."}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Please enter a valid email")
}

func TestSubmitContactDispatchFailure(t *testing.T) {
	uc := &stubContactUC{outcome: domain.DispatchFailureOutcome("Your message could not be saved. Please try again later.")}
	r := newContactRouter(uc)

	w := postContact(r, `{"name":"Jane Doe","email":"jane@example.com","message":"I would like to discuss a project."}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "could not be saved")
}

func TestSubmitContactMalformedBody(t *testing.T) {
	uc := &stubContactUC{outcome: domain.SuccessOutcome()}
	r := newContactRouter(uc)

	w := postContact(r, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// The usecase is never reached for a body that does not parse.
	assert.Nil(t, uc.received)
}
