package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/copy/model"
	usermodel "library-backend/internal/domains/user/model"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/jwt"
)

const testSecret = "test-secret"

// stubCopyService returns canned results so handler tests exercise only
// HTTP translation, not business rules.
type stubCopyService struct {
	copy       *model.Copy
	renewErr   error
	prepareErr error
}

func (s *stubCopyService) Create(ctx context.Context, req *model.CreateCopyRequest) (*model.Copy, error) {
	return s.copy, nil
}

func (s *stubCopyService) GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error) {
	if s.copy == nil {
		return nil, model.ErrCopyNotFound
	}
	return s.copy, nil
}

func (s *stubCopyService) PrepareRenewal(ctx context.Context, id uuid.UUID) (*model.RenewalProposal, error) {
	if s.prepareErr != nil {
		return nil, s.prepareErr
	}
	return &model.RenewalProposal{
		Copy:            s.copy,
		ProposedDueDate: time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (s *stubCopyService) Renew(ctx context.Context, id uuid.UUID, requestedDate time.Time) (*model.Copy, error) {
	if s.renewErr != nil {
		return nil, s.renewErr
	}
	return s.copy, nil
}

func (s *stubCopyService) ListLoansForBorrower(ctx context.Context, borrowerID uuid.UUID, page int) ([]model.Copy, int64, error) {
	return nil, 0, nil
}

func (s *stubCopyService) ListAllLoans(ctx context.Context, page int) ([]model.Copy, int64, error) {
	return nil, 0, nil
}

// setupRenewalRouter wires the renewal routes exactly as the server
// does, auth and capability check included.
func setupRenewalRouter(svc *stubCopyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCopyHandler(svc)

	router := gin.New()
	renew := router.Group("/api/v1/copies")
	renew.Use(
		middleware.AuthMiddleware(testSecret),
		middleware.RequirePermission(usermodel.PermCanMarkReturned),
	)
	{
		renew.GET("/:id/renew", h.PrepareRenewal)
		renew.POST("/:id/renew", h.Renew)
	}

	return router
}

func accessToken(t *testing.T, role usermodel.Role) string {
	t.Helper()
	token, err := jwt.NewManager(testSecret).GenerateAccessToken(
		uuid.NewString(), "someone@example.com", string(role))
	require.NoError(t, err)
	return token
}

func renewalRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRenewRequiresAuthentication(t *testing.T) {
	router := setupRenewalRouter(&stubCopyService{})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodPost, "/api/v1/copies/"+uuid.NewString()+"/renew", "",
		gin.H{"due_date": "2024-01-29"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRenewForbiddenWithoutCapability(t *testing.T) {
	router := setupRenewalRouter(&stubCopyService{})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodPost, "/api/v1/copies/"+uuid.NewString()+"/renew",
		accessToken(t, usermodel.RolePatron),
		gin.H{"due_date": "2024-01-29"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRenewUnknownCopyReturnsNotFound(t *testing.T) {
	router := setupRenewalRouter(&stubCopyService{renewErr: model.ErrCopyNotFound})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodPost, "/api/v1/copies/"+uuid.NewString()+"/renew",
		accessToken(t, usermodel.RoleLibrarian),
		gin.H{"due_date": "2024-01-29"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenewSuccessRedirectsToLoanListing(t *testing.T) {
	c := &model.Copy{ID: uuid.New(), Status: model.StatusOnLoan}
	router := setupRenewalRouter(&stubCopyService{copy: c})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodPost, "/api/v1/copies/"+c.ID.String()+"/renew",
		accessToken(t, usermodel.RoleLibrarian),
		gin.H{"due_date": "2024-01-29"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, AllLoansPath, w.Header().Get("Location"))
}

func TestRenewRejectedDateRedisplaysWithMessage(t *testing.T) {
	dueDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	c := &model.Copy{ID: uuid.New(), Status: model.StatusOnLoan, DueDate: &dueDate}

	router := setupRenewalRouter(&stubCopyService{
		copy: c,
		renewErr: &model.RenewalRejectedError{
			Copy:          c,
			SubmittedDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Err:           model.ErrRenewalInPast,
		},
	})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodPost, "/api/v1/copies/"+c.ID.String()+"/renew",
		accessToken(t, usermodel.RoleLibrarian),
		gin.H{"due_date": "2024-01-05"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Success bool `json:"success"`
		Copy    struct {
			ID string `json:"id"`
		} `json:"copy"`
		DueDate string `json:"due_date"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, c.ID.String(), body.Copy.ID)
	assert.Equal(t, "2024-01-05", body.DueDate)
	assert.Equal(t, "INVALID_DATE", body.Error.Code)
	assert.Equal(t, "Invalid date — renewal in the past", body.Error.Message)
}

func TestRenewMalformedDateRejectedBeforeService(t *testing.T) {
	router := setupRenewalRouter(&stubCopyService{})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodPost, "/api/v1/copies/"+uuid.NewString()+"/renew",
		accessToken(t, usermodel.RoleLibrarian),
		gin.H{"due_date": "05/01/2024"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPrepareRenewalReturnsProposal(t *testing.T) {
	c := &model.Copy{ID: uuid.New(), Status: model.StatusOnLoan}
	router := setupRenewalRouter(&stubCopyService{copy: c})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodGet, "/api/v1/copies/"+c.ID.String()+"/renew",
		accessToken(t, usermodel.RoleLibrarian), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "proposed_due_date")
	assert.Contains(t, w.Body.String(), c.ID.String())
}

func TestPrepareRenewalUnknownCopy(t *testing.T) {
	router := setupRenewalRouter(&stubCopyService{prepareErr: model.ErrCopyNotFound})

	w := httptest.NewRecorder()
	req := renewalRequest(t, http.MethodGet, "/api/v1/copies/"+uuid.NewString()+"/renew",
		accessToken(t, usermodel.RoleLibrarian), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
