package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockConversationRepository is a mock of ConversationRepository interface
type MockConversationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockConversationRepositoryMockRecorder
}

// MockConversationRepositoryMockRecorder is the mock recorder for MockConversationRepository
type MockConversationRepositoryMockRecorder struct {
	mock *MockConversationRepository
}

// NewMockConversationRepository creates a new mock instance
func NewMockConversationRepository(ctrl *gomock.Controller) *MockConversationRepository {
	mock := &MockConversationRepository{ctrl: ctrl}
	mock.recorder = &MockConversationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockConversationRepository) EXPECT() *MockConversationRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, conversation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create
func (mr *MockConversationRepositoryMockRecorder) Create(ctx, conversation interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockConversationRepository)(nil).Create), ctx, conversation)
}

// GetByID mocks base method
func (m *MockConversationRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, orgID, id)
	ret0, _ := ret[0].(*domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID
func (mr *MockConversationRepositoryMockRecorder) GetByID(ctx, orgID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockConversationRepository)(nil).GetByID), ctx, orgID, id)
}

// FindLatestByContact mocks base method
func (m *MockConversationRepository) FindLatestByContact(ctx context.Context, orgID, contactID string) (*domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindLatestByContact", ctx, orgID, contactID)
	ret0, _ := ret[0].(*domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindLatestByContact indicates an expected call of FindLatestByContact
func (mr *MockConversationRepositoryMockRecorder) FindLatestByContact(ctx, orgID, contactID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindLatestByContact", reflect.TypeOf((*MockConversationRepository)(nil).FindLatestByContact), ctx, orgID, contactID)
}

// List mocks base method
func (m *MockConversationRepository) List(ctx context.Context, orgID string, limit int) ([]*domain.ConversationWithContact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, orgID, limit)
	ret0, _ := ret[0].([]*domain.ConversationWithContact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List
func (mr *MockConversationRepositoryMockRecorder) List(ctx, orgID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockConversationRepository)(nil).List), ctx, orgID, limit)
}

// UpdateLastMessageAt mocks base method
func (m *MockConversationRepository) UpdateLastMessageAt(ctx context.Context, orgID, id string, lastMessageAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateLastMessageAt", ctx, orgID, id, lastMessageAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateLastMessageAt indicates an expected call of UpdateLastMessageAt
func (mr *MockConversationRepositoryMockRecorder) UpdateLastMessageAt(ctx, orgID, id, lastMessageAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateLastMessageAt", reflect.TypeOf((*MockConversationRepository)(nil).UpdateLastMessageAt), ctx, orgID, id, lastMessageAt)
}
