package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockAutomationService is a mock of AutomationService interface
type MockAutomationService struct {
	ctrl     *gomock.Controller
	recorder *MockAutomationServiceMockRecorder
}

// MockAutomationServiceMockRecorder is the mock recorder for MockAutomationService
type MockAutomationServiceMockRecorder struct {
	mock *MockAutomationService
}

// NewMockAutomationService creates a new mock instance
func NewMockAutomationService(ctrl *gomock.Controller) *MockAutomationService {
	mock := &MockAutomationService{ctrl: ctrl}
	mock.recorder = &MockAutomationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAutomationService) EXPECT() *MockAutomationServiceMockRecorder {
	return m.recorder
}

// CheckAndCaptureLead mocks base method
func (m *MockAutomationService) CheckAndCaptureLead(ctx context.Context, orgID, conversationID string) (*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckAndCaptureLead", ctx, orgID, conversationID)
	ret0, _ := ret[0].(*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckAndCaptureLead indicates an expected call of CheckAndCaptureLead
func (mr *MockAutomationServiceMockRecorder) CheckAndCaptureLead(ctx, orgID, conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAndCaptureLead", reflect.TypeOf((*MockAutomationService)(nil).CheckAndCaptureLead), ctx, orgID, conversationID)
}

// CheckAndUpdateStage mocks base method
func (m *MockAutomationService) CheckAndUpdateStage(ctx context.Context, orgID, leadID, text string) (domain.LeadStage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckAndUpdateStage", ctx, orgID, leadID, text)
	ret0, _ := ret[0].(domain.LeadStage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckAndUpdateStage indicates an expected call of CheckAndUpdateStage
func (mr *MockAutomationServiceMockRecorder) CheckAndUpdateStage(ctx, orgID, leadID, text interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAndUpdateStage", reflect.TypeOf((*MockAutomationService)(nil).CheckAndUpdateStage), ctx, orgID, leadID, text)
}

// CreateFollowupDraftIfNeeded mocks base method
func (m *MockAutomationService) CreateFollowupDraftIfNeeded(ctx context.Context, orgID, leadID string) (*domain.FollowupDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateFollowupDraftIfNeeded", ctx, orgID, leadID)
	ret0, _ := ret[0].(*domain.FollowupDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateFollowupDraftIfNeeded indicates an expected call of CreateFollowupDraftIfNeeded
func (mr *MockAutomationServiceMockRecorder) CreateFollowupDraftIfNeeded(ctx, orgID, leadID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateFollowupDraftIfNeeded", reflect.TypeOf((*MockAutomationService)(nil).CreateFollowupDraftIfNeeded), ctx, orgID, leadID)
}

// CreateWorkOrderDraft mocks base method
func (m *MockAutomationService) CreateWorkOrderDraft(ctx context.Context, orgID, leadID string) (*domain.WorkOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateWorkOrderDraft", ctx, orgID, leadID)
	ret0, _ := ret[0].(*domain.WorkOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateWorkOrderDraft indicates an expected call of CreateWorkOrderDraft
func (mr *MockAutomationServiceMockRecorder) CreateWorkOrderDraft(ctx, orgID, leadID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateWorkOrderDraft", reflect.TypeOf((*MockAutomationService)(nil).CreateWorkOrderDraft), ctx, orgID, leadID)
}

// GetDeadLeadsForRevival mocks base method
func (m *MockAutomationService) GetDeadLeadsForRevival(ctx context.Context, orgID string) ([]*domain.LeadWithContact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDeadLeadsForRevival", ctx, orgID)
	ret0, _ := ret[0].([]*domain.LeadWithContact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDeadLeadsForRevival indicates an expected call of GetDeadLeadsForRevival
func (mr *MockAutomationServiceMockRecorder) GetDeadLeadsForRevival(ctx, orgID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDeadLeadsForRevival", reflect.TypeOf((*MockAutomationService)(nil).GetDeadLeadsForRevival), ctx, orgID)
}

// CreateRevivalDraft mocks base method
func (m *MockAutomationService) CreateRevivalDraft(ctx context.Context, orgID, leadID string) (*domain.FollowupDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRevivalDraft", ctx, orgID, leadID)
	ret0, _ := ret[0].(*domain.FollowupDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRevivalDraft indicates an expected call of CreateRevivalDraft
func (mr *MockAutomationServiceMockRecorder) CreateRevivalDraft(ctx, orgID, leadID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRevivalDraft", reflect.TypeOf((*MockAutomationService)(nil).CreateRevivalDraft), ctx, orgID, leadID)
}
