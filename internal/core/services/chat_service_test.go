package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/core/services"
)

type ChatServiceTestSuite struct {
	suite.Suite
	mockSessions *MockSessionRepository
	mockAI       *MockAIBackend
	service      portssvc.ChatSvcFacade
}

func (suite *ChatServiceTestSuite) SetupTest() {
	suite.mockSessions = new(MockSessionRepository)
	suite.mockAI = new(MockAIBackend)
	suite.mockSessions.expectActiveSession(testBusinessID)
	suite.service = services.NewChatService(suite.mockAI, suite.mockSessions)
}

func interactionFor(chatID int64, question, answer string) *domain.ChatInteraction {
	now := time.Now()
	return &domain.ChatInteraction{
		Chat:        &domain.Chat{ID: chatID, CreatedAt: now, UpdatedAt: now},
		UserMessage: domain.ChatMessage{ID: 1, ChatID: chatID, Role: domain.RoleUser, Content: question, CreatedAt: now},
		BotReply:    domain.ChatMessage{ID: 2, ChatID: chatID, Role: domain.RoleBot, Content: answer, CreatedAt: now},
	}
}

func (suite *ChatServiceTestSuite) TestSendMessage_AppendsUserThenReply() {
	ctx := context.Background()

	suite.mockAI.On("SendChatMessage", ctx, testBusinessID, "halo", (*int64)(nil)).
		Return(interactionFor(11, "halo", "Halo! Ada yang bisa dibantu?"), nil).Once()

	messages, err := suite.service.SendMessage(ctx, "  halo  ")
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.Equal(domain.RoleUser, messages[0].Role)
	suite.Equal("halo", messages[0].Content, "input is trimmed before sending")
	suite.Equal(domain.RoleBot, messages[1].Role)

	// the adopted chat id flows into follow-up sends
	suite.Require().NotNil(suite.service.ChatID())
	suite.Equal(int64(11), *suite.service.ChatID())
	suite.Equal(int64(11), messages[0].ChatID)

	suite.mockAI.AssertExpectations(suite.T())
}

func (suite *ChatServiceTestSuite) TestSendMessage_FailureRemovesOptimisticMessage() {
	ctx := context.Background()

	suite.mockAI.On("SendChatMessage", ctx, testBusinessID, "pertama", (*int64)(nil)).
		Return(interactionFor(11, "pertama", "ok"), nil).Once()
	suite.mockAI.On("SendChatMessage", ctx, testBusinessID, "kedua", mock.Anything).
		Return(nil, errors.New("model unavailable")).Once()

	_, err := suite.service.SendMessage(ctx, "pertama")
	suite.Require().NoError(err)

	_, err = suite.service.SendMessage(ctx, "kedua")
	suite.Require().Error(err)

	// only the failed message disappeared; earlier history is untouched
	messages := suite.service.Messages()
	suite.Require().Len(messages, 2)
	suite.Equal("pertama", messages[0].Content)
	suite.Equal("ok", messages[1].Content)
}

func (suite *ChatServiceTestSuite) TestSendMessage_EmptyInputIsNoOp() {
	messages, err := suite.service.SendMessage(context.Background(), "   ")
	suite.Require().NoError(err)
	suite.Empty(messages)
	suite.mockAI.AssertNotCalled(suite.T(), "SendChatMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChatServiceTestSuite) TestLoadHistoryReplacesSession() {
	ctx := context.Background()
	now := time.Now()

	history := &domain.ChatHistory{
		Chat: &domain.Chat{ID: 5},
		Messages: []domain.ChatMessage{
			{ID: 1, ChatID: 5, Role: domain.RoleUser, Content: "q", CreatedAt: now},
			{ID: 2, ChatID: 5, Role: domain.RoleBot, Content: "a", CreatedAt: now},
		},
	}
	suite.mockAI.On("ChatHistory", ctx, testBusinessID, 50).Return(history, nil).Once()

	messages, err := suite.service.LoadHistory(ctx, 50)
	suite.Require().NoError(err)
	suite.Len(messages, 2)
	suite.Require().NotNil(suite.service.ChatID())
	suite.Equal(int64(5), *suite.service.ChatID())
}

func (suite *ChatServiceTestSuite) TestStartNewChatClearsState() {
	ctx := context.Background()
	suite.mockAI.On("SendChatMessage", ctx, testBusinessID, "halo", (*int64)(nil)).
		Return(interactionFor(11, "halo", "hi"), nil).Once()

	_, err := suite.service.SendMessage(ctx, "halo")
	suite.Require().NoError(err)

	suite.service.StartNewChat()
	suite.Empty(suite.service.Messages())
	suite.Nil(suite.service.ChatID())
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}
