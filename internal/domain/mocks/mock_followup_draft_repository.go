package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockFollowupDraftRepository is a mock of FollowupDraftRepository interface
type MockFollowupDraftRepository struct {
	ctrl     *gomock.Controller
	recorder *MockFollowupDraftRepositoryMockRecorder
}

// MockFollowupDraftRepositoryMockRecorder is the mock recorder for MockFollowupDraftRepository
type MockFollowupDraftRepositoryMockRecorder struct {
	mock *MockFollowupDraftRepository
}

// NewMockFollowupDraftRepository creates a new mock instance
func NewMockFollowupDraftRepository(ctrl *gomock.Controller) *MockFollowupDraftRepository {
	mock := &MockFollowupDraftRepository{ctrl: ctrl}
	mock.recorder = &MockFollowupDraftRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockFollowupDraftRepository) EXPECT() *MockFollowupDraftRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockFollowupDraftRepository) Create(ctx context.Context, draft *domain.FollowupDraft) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, draft)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create
func (mr *MockFollowupDraftRepositoryMockRecorder) Create(ctx, draft interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFollowupDraftRepository)(nil).Create), ctx, draft)
}

// GetOpenByLead mocks base method
func (m *MockFollowupDraftRepository) GetOpenByLead(ctx context.Context, leadID string) (*domain.FollowupDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOpenByLead", ctx, leadID)
	ret0, _ := ret[0].(*domain.FollowupDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOpenByLead indicates an expected call of GetOpenByLead
func (mr *MockFollowupDraftRepositoryMockRecorder) GetOpenByLead(ctx, leadID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOpenByLead", reflect.TypeOf((*MockFollowupDraftRepository)(nil).GetOpenByLead), ctx, leadID)
}
