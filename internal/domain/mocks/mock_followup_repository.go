package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockFollowupRepository is a mock of FollowupRepository interface
type MockFollowupRepository struct {
	ctrl     *gomock.Controller
	recorder *MockFollowupRepositoryMockRecorder
}

// MockFollowupRepositoryMockRecorder is the mock recorder for MockFollowupRepository
type MockFollowupRepositoryMockRecorder struct {
	mock *MockFollowupRepository
}

// NewMockFollowupRepository creates a new mock instance
func NewMockFollowupRepository(ctrl *gomock.Controller) *MockFollowupRepository {
	mock := &MockFollowupRepository{ctrl: ctrl}
	mock.recorder = &MockFollowupRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockFollowupRepository) EXPECT() *MockFollowupRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockFollowupRepository) Create(ctx context.Context, followup *domain.Followup) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, followup)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create
func (mr *MockFollowupRepositoryMockRecorder) Create(ctx, followup interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFollowupRepository)(nil).Create), ctx, followup)
}

// ListOverdue mocks base method
func (m *MockFollowupRepository) ListOverdue(ctx context.Context, orgID string) ([]*domain.OverdueFollowup, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOverdue", ctx, orgID)
	ret0, _ := ret[0].([]*domain.OverdueFollowup)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOverdue indicates an expected call of ListOverdue
func (mr *MockFollowupRepositoryMockRecorder) ListOverdue(ctx, orgID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOverdue", reflect.TypeOf((*MockFollowupRepository)(nil).ListOverdue), ctx, orgID)
}

// MarkDone mocks base method
func (m *MockFollowupRepository) MarkDone(ctx context.Context, orgID, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkDone", ctx, orgID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkDone indicates an expected call of MarkDone
func (mr *MockFollowupRepositoryMockRecorder) MarkDone(ctx, orgID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkDone", reflect.TypeOf((*MockFollowupRepository)(nil).MarkDone), ctx, orgID, id)
}
