package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/domain/mocks"
	"github.com/converso/converso/pkg/logger"
)

func newLeadHandlerMux(t *testing.T, ctrl *gomock.Controller) (*http.ServeMux, *mocks.MockLeadService) {
	service := mocks.NewMockLeadService(ctrl)
	handler := NewLeadHandler(service, testSecretKey, logger.NewMockLogger(t))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux, service
}

func TestLeadHandler_List_FiltersFromQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, service := newLeadHandlerMux(t, ctrl)

	service.EXPECT().
		List(gomock.Any(), "org-1", domain.LeadFilter{Stage: domain.LeadStageQuoted, Search: "fence"}).
		Return([]*domain.Lead{{ID: "lead-1", Title: "Fence repair"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/leads.list?stage=QUOTED&search=fence", nil)
	req.Header.Set("Authorization", bearerToken(t, "org-1"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fence repair")
}

func TestLeadHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, service := newLeadHandlerMux(t, ctrl)

	service.EXPECT().
		Get(gomock.Any(), "org-1", "missing").
		Return(nil, &domain.ErrNotFound{Entity: "lead", ID: "missing"})

	req := httptest.NewRequest(http.MethodGet, "/api/leads.get?id=missing", nil)
	req.Header.Set("Authorization", bearerToken(t, "org-1"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadHandler_Create_ValidationErrorIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, service := newLeadHandlerMux(t, ctrl)

	service.EXPECT().
		Create(gomock.Any(), "org-1", gomock.Any()).
		Return(nil, domain.NewValidationError("title is required"))

	req := httptest.NewRequest(http.MethodPost, "/api/leads.create", strings.NewReader(`{}`))
	req.Header.Set("Authorization", bearerToken(t, "org-1"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, service := newLeadHandlerMux(t, ctrl)

	service.EXPECT().
		Create(gomock.Any(), "org-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *domain.CreateLeadRequest) (*domain.Lead, error) {
			assert.Equal(t, "Fence repair", req.Title)
			return &domain.Lead{ID: "lead-1", Title: req.Title, Stage: domain.LeadStageNew}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/leads.create", strings.NewReader(`{"title": "Fence repair"}`))
	req.Header.Set("Authorization", bearerToken(t, "org-1"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "lead-1")
}
