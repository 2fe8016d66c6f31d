package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/domain/mocks"
	"github.com/converso/converso/pkg/logger"
)

type messagingMocks struct {
	jobQueue         *mocks.MockJobQueue
	chatAccountRepo  *mocks.MockChatAccountRepository
	conversationRepo *mocks.MockConversationRepository
	contactRepo      *mocks.MockContactRepository
	messageRepo      *mocks.MockMessageRepository
	leadRepo         *mocks.MockLeadRepository
	automationSvc    *mocks.MockAutomationService
	sender           *mocks.MockMessageSender
}

func newTestMessagingService(t *testing.T, ctrl *gomock.Controller) (*MessagingService, *messagingMocks) {
	m := &messagingMocks{
		jobQueue:         mocks.NewMockJobQueue(ctrl),
		chatAccountRepo:  mocks.NewMockChatAccountRepository(ctrl),
		conversationRepo: mocks.NewMockConversationRepository(ctrl),
		contactRepo:      mocks.NewMockContactRepository(ctrl),
		messageRepo:      mocks.NewMockMessageRepository(ctrl),
		leadRepo:         mocks.NewMockLeadRepository(ctrl),
		automationSvc:    mocks.NewMockAutomationService(ctrl),
		sender:           mocks.NewMockMessageSender(ctrl),
	}
	svc := NewMessagingService(
		m.jobQueue,
		m.chatAccountRepo,
		m.conversationRepo,
		m.contactRepo,
		m.messageRepo,
		m.leadRepo,
		m.automationSvc,
		m.sender,
		logger.NewMockLogger(t),
	)
	return svc, m
}

func TestMessagingService_Webhook_MalformedPayloadRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestMessagingService(t, ctrl)

	// Missing body text must fail synchronously, before any enqueue
	err := svc.Webhook(context.Background(), "org-1", []byte(`{"From": "whatsapp:+15551234567"}`))
	require.Error(t, err)

	var validationErr domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMessagingService_Webhook_Enqueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	payload := []byte(`{"From": "whatsapp:+15551234567", "Body": "hi there"}`)

	m.jobQueue.EXPECT().
		Enqueue(ctx, domain.TopicInboundMessages, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p interface{}) (string, error) {
			job, ok := p.(*domain.InboundMessageJob)
			require.True(t, ok)
			assert.Equal(t, "org-1", job.OrgID)
			assert.Equal(t, payload, job.Payload)
			assert.Greater(t, job.ReceivedAt, int64(0))
			return "postgres", nil
		})

	err := svc.Webhook(ctx, "org-1", payload)
	assert.NoError(t, err)
}

func TestMessagingService_Webhook_QueueUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	m.jobQueue.EXPECT().
		Enqueue(ctx, domain.TopicInboundMessages, gomock.Any()).
		Return("", domain.ErrQueueUnavailable)

	err := svc.Webhook(ctx, "org-1", []byte(`{"From": "whatsapp:+15551234567", "Body": "hi"}`))
	assert.ErrorIs(t, err, domain.ErrQueueUnavailable)
}

func TestMessagingService_ResolveOrgFromDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	m.chatAccountRepo.EXPECT().
		GetActiveByExternalID(ctx, domain.ChatProviderTwilioWhatsApp, "whatsapp:+15550001111").
		Return(&domain.ChatAccount{OrgID: "org-1"}, nil)

	orgID, err := svc.ResolveOrgFromDestination(ctx, "whatsapp:+15550001111")
	assert.NoError(t, err)
	assert.Equal(t, "org-1", orgID)
}

func TestMessagingService_ResolveOrgFromDestination_Unregistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	m.chatAccountRepo.EXPECT().
		GetActiveByExternalID(ctx, domain.ChatProviderTwilioWhatsApp, "whatsapp:+15559999999").
		Return(nil, nil)

	orgID, err := svc.ResolveOrgFromDestination(ctx, "whatsapp:+15559999999")
	assert.NoError(t, err)
	assert.Equal(t, "", orgID)
}

func TestMessagingService_Send_ProviderFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	conversation := &domain.Conversation{ID: "conv-1", OrgID: "org-1", ContactID: "contact-1"}
	contact := &domain.Contact{ID: "contact-1", Handle: "whatsapp:+15551234567"}
	providerErr := &domain.ProviderError{Provider: "twilio", Message: "credentials not configured"}

	m.conversationRepo.EXPECT().GetByID(ctx, "org-1", "conv-1").Return(conversation, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.sender.EXPECT().
		SendMessage(ctx, "org-1", contact.Handle, "quote attached").
		Return("", providerErr)

	// Nothing is persisted when the provider rejects the send
	err := svc.Send(ctx, "org-1", "conv-1", "quote attached")
	require.Error(t, err)

	var target *domain.ProviderError
	assert.ErrorAs(t, err, &target)
}

func TestMessagingService_Send_PersistsAndRunsStageCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	conversation := &domain.Conversation{ID: "conv-1", OrgID: "org-1", ContactID: "contact-1"}
	contact := &domain.Contact{ID: "contact-1", Handle: "whatsapp:+15551234567"}
	lead := &domain.Lead{ID: "lead-1", OrgID: "org-1", ConversationID: "conv-1"}

	m.conversationRepo.EXPECT().GetByID(ctx, "org-1", "conv-1").Return(conversation, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.sender.EXPECT().
		SendMessage(ctx, "org-1", contact.Handle, "see you tomorrow").
		Return("SM123", nil)
	m.messageRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *domain.Message) error {
			assert.Equal(t, domain.MessageDirectionOut, msg.Direction)
			assert.Equal(t, "see you tomorrow", msg.Text)
			return nil
		})
	m.conversationRepo.EXPECT().
		UpdateLastMessageAt(ctx, "org-1", "conv-1", gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)
	m.leadRepo.EXPECT().GetByConversation(ctx, "org-1", "conv-1").Return(lead, nil)
	m.leadRepo.EXPECT().
		UpdateLastRepliedAt(ctx, "org-1", "lead-1", gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)
	m.automationSvc.EXPECT().
		CheckAndUpdateStage(ctx, "org-1", "lead-1", "see you tomorrow").
		Return(domain.LeadStage(""), nil)

	err := svc.Send(ctx, "org-1", "conv-1", "see you tomorrow")
	assert.NoError(t, err)
}

func TestMessagingService_Send_NoLeadSkipsAutomation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	conversation := &domain.Conversation{ID: "conv-1", OrgID: "org-1", ContactID: "contact-1"}
	contact := &domain.Contact{ID: "contact-1", Handle: "whatsapp:+15551234567"}

	m.conversationRepo.EXPECT().GetByID(ctx, "org-1", "conv-1").Return(conversation, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.sender.EXPECT().SendMessage(ctx, "org-1", contact.Handle, "hello").Return("SM124", nil)
	m.messageRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.conversationRepo.EXPECT().
		UpdateLastMessageAt(ctx, "org-1", "conv-1", gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)
	m.leadRepo.EXPECT().GetByConversation(ctx, "org-1", "conv-1").Return(nil, nil)

	err := svc.Send(ctx, "org-1", "conv-1", "hello")
	assert.NoError(t, err)
}

func TestMessagingService_GetConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	conversation := &domain.Conversation{ID: "conv-1", OrgID: "org-1", ContactID: "contact-1"}
	contact := &domain.Contact{ID: "contact-1", Name: "Maya"}
	messages := []*domain.Message{{ID: "msg-1", Text: "hi"}}

	m.conversationRepo.EXPECT().GetByID(ctx, "org-1", "conv-1").Return(conversation, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.messageRepo.EXPECT().ListByConversation(ctx, "org-1", "conv-1").Return(messages, nil)

	detail, err := svc.GetConversation(ctx, "org-1", "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", detail.ID)
	assert.Equal(t, "Maya", detail.Contact.Name)
	assert.Len(t, detail.Messages, 1)
}

func TestMessagingService_GetConversation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestMessagingService(t, ctrl)
	ctx := context.Background()

	m.conversationRepo.EXPECT().
		GetByID(ctx, "org-1", "missing").
		Return(nil, &domain.ErrNotFound{Entity: "conversation", ID: "missing"})

	_, err := svc.GetConversation(ctx, "org-1", "missing")
	assert.True(t, domain.IsNotFound(err))
}
