package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockMessageRepository is a mock of MessageRepository interface
type MockMessageRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMessageRepositoryMockRecorder
}

// MockMessageRepositoryMockRecorder is the mock recorder for MockMessageRepository
type MockMessageRepositoryMockRecorder struct {
	mock *MockMessageRepository
}

// NewMockMessageRepository creates a new mock instance
func NewMockMessageRepository(ctrl *gomock.Controller) *MockMessageRepository {
	mock := &MockMessageRepository{ctrl: ctrl}
	mock.recorder = &MockMessageRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMessageRepository) EXPECT() *MockMessageRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, message)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create
func (mr *MockMessageRepositoryMockRecorder) Create(ctx, message interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockMessageRepository)(nil).Create), ctx, message)
}

// CountByConversation mocks base method
func (m *MockMessageRepository) CountByConversation(ctx context.Context, conversationID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByConversation", ctx, conversationID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByConversation indicates an expected call of CountByConversation
func (mr *MockMessageRepositoryMockRecorder) CountByConversation(ctx, conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByConversation", reflect.TypeOf((*MockMessageRepository)(nil).CountByConversation), ctx, conversationID)
}

// ListByConversation mocks base method
func (m *MockMessageRepository) ListByConversation(ctx context.Context, orgID, conversationID string) ([]*domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByConversation", ctx, orgID, conversationID)
	ret0, _ := ret[0].([]*domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByConversation indicates an expected call of ListByConversation
func (mr *MockMessageRepositoryMockRecorder) ListByConversation(ctx, orgID, conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByConversation", reflect.TypeOf((*MockMessageRepository)(nil).ListByConversation), ctx, orgID, conversationID)
}

// ListRecentByConversation mocks base method
func (m *MockMessageRepository) ListRecentByConversation(ctx context.Context, conversationID string, limit int) ([]*domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecentByConversation", ctx, conversationID, limit)
	ret0, _ := ret[0].([]*domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecentByConversation indicates an expected call of ListRecentByConversation
func (mr *MockMessageRepositoryMockRecorder) ListRecentByConversation(ctx, conversationID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecentByConversation", reflect.TypeOf((*MockMessageRepository)(nil).ListRecentByConversation), ctx, conversationID, limit)
}
