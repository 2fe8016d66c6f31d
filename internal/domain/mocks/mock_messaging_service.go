package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockMessagingService is a mock of MessagingService interface
type MockMessagingService struct {
	ctrl     *gomock.Controller
	recorder *MockMessagingServiceMockRecorder
}

// MockMessagingServiceMockRecorder is the mock recorder for MockMessagingService
type MockMessagingServiceMockRecorder struct {
	mock *MockMessagingService
}

// NewMockMessagingService creates a new mock instance
func NewMockMessagingService(ctrl *gomock.Controller) *MockMessagingService {
	mock := &MockMessagingService{ctrl: ctrl}
	mock.recorder = &MockMessagingServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMessagingService) EXPECT() *MockMessagingServiceMockRecorder {
	return m.recorder
}

// Webhook mocks base method
func (m *MockMessagingService) Webhook(ctx context.Context, orgID string, payload []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Webhook", ctx, orgID, payload)
	ret0, _ := ret[0].(error)
	return ret0
}

// Webhook indicates an expected call of Webhook
func (mr *MockMessagingServiceMockRecorder) Webhook(ctx, orgID, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Webhook", reflect.TypeOf((*MockMessagingService)(nil).Webhook), ctx, orgID, payload)
}

// ResolveOrgFromDestination mocks base method
func (m *MockMessagingService) ResolveOrgFromDestination(ctx context.Context, to string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveOrgFromDestination", ctx, to)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveOrgFromDestination indicates an expected call of ResolveOrgFromDestination
func (mr *MockMessagingServiceMockRecorder) ResolveOrgFromDestination(ctx, to interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveOrgFromDestination", reflect.TypeOf((*MockMessagingService)(nil).ResolveOrgFromDestination), ctx, to)
}

// ListConversations mocks base method
func (m *MockMessagingService) ListConversations(ctx context.Context, orgID string, limit int) ([]*domain.ConversationWithContact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListConversations", ctx, orgID, limit)
	ret0, _ := ret[0].([]*domain.ConversationWithContact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListConversations indicates an expected call of ListConversations
func (mr *MockMessagingServiceMockRecorder) ListConversations(ctx, orgID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListConversations", reflect.TypeOf((*MockMessagingService)(nil).ListConversations), ctx, orgID, limit)
}

// GetConversation mocks base method
func (m *MockMessagingService) GetConversation(ctx context.Context, orgID, id string) (*domain.ConversationDetail, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConversation", ctx, orgID, id)
	ret0, _ := ret[0].(*domain.ConversationDetail)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConversation indicates an expected call of GetConversation
func (mr *MockMessagingServiceMockRecorder) GetConversation(ctx, orgID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConversation", reflect.TypeOf((*MockMessagingService)(nil).GetConversation), ctx, orgID, id)
}

// Send mocks base method
func (m *MockMessagingService) Send(ctx context.Context, orgID, conversationID, text string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, orgID, conversationID, text)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send
func (mr *MockMessagingServiceMockRecorder) Send(ctx, orgID, conversationID, text interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockMessagingService)(nil).Send), ctx, orgID, conversationID, text)
}
