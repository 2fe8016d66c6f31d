package mocks

import (
	"reflect"
	"time"

	"github.com/golang/mock/gomock"
)

// MockMailer is a mock of Mailer interface
type MockMailer struct {
	ctrl     *gomock.Controller
	recorder *MockMailerMockRecorder
}

// MockMailerMockRecorder is the mock recorder for MockMailer
type MockMailerMockRecorder struct {
	mock *MockMailer
}

// NewMockMailer creates a new mock instance
func NewMockMailer(ctrl *gomock.Controller) *MockMailer {
	mock := &MockMailer{ctrl: ctrl}
	mock.recorder = &MockMailerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMailer) EXPECT() *MockMailerMockRecorder {
	return m.recorder
}

// SendOverdueFollowupAlert mocks base method
func (m *MockMailer) SendOverdueFollowupAlert(email, orgName, leadTitle string, dueAt time.Time, leadURL string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendOverdueFollowupAlert", email, orgName, leadTitle, dueAt, leadURL)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendOverdueFollowupAlert indicates an expected call of SendOverdueFollowupAlert
func (mr *MockMailerMockRecorder) SendOverdueFollowupAlert(email, orgName, leadTitle, dueAt, leadURL interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendOverdueFollowupAlert", reflect.TypeOf((*MockMailer)(nil).SendOverdueFollowupAlert), email, orgName, leadTitle, dueAt, leadURL)
}
