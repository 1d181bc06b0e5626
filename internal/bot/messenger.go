package bot

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Messenger provides an abstraction for sending and editing Telegram messages.
// This interface enables testing handlers without a live Telegram connection.
// *tgbot.Bot satisfies it directly.
type Messenger interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *tgbot.EditMessageTextParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *tgbot.DeleteMessageParams) (bool, error)
	SendAudio(ctx context.Context, params *tgbot.SendAudioParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error)
}

var _ Messenger = (*tgbot.Bot)(nil)

// FileClient resolves Telegram file identifiers to downloadable URLs.
// *tgbot.Bot satisfies it directly.
type FileClient interface {
	GetFile(ctx context.Context, params *tgbot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
}

var _ FileClient = (*tgbot.Bot)(nil)

// MockMessenger is a test double for Messenger.
type MockMessenger struct {
	SentMessages   []*tgbot.SendMessageParams
	EditedMessages []*tgbot.EditMessageTextParams
	DeletedIDs     []int
	SentAudio      []*tgbot.SendAudioParams
	AnsweredIDs    []string
	Err            error
}

// SendMessage records the sent message for testing.
func (m *MockMessenger) SendMessage(
	_ context.Context,
	params *tgbot.SendMessageParams,
) (*models.Message, error) {
	m.SentMessages = append(m.SentMessages, params)
	return &models.Message{ID: len(m.SentMessages)}, m.Err
}

// EditMessageText records the edit for testing.
func (m *MockMessenger) EditMessageText(
	_ context.Context,
	params *tgbot.EditMessageTextParams,
) (*models.Message, error) {
	m.EditedMessages = append(m.EditedMessages, params)
	return &models.Message{ID: params.MessageID}, m.Err
}

// DeleteMessage records the deletion for testing.
func (m *MockMessenger) DeleteMessage(
	_ context.Context,
	params *tgbot.DeleteMessageParams,
) (bool, error) {
	m.DeletedIDs = append(m.DeletedIDs, params.MessageID)
	return m.Err == nil, m.Err
}

// SendAudio records the sent audio for testing.
func (m *MockMessenger) SendAudio(
	_ context.Context,
	params *tgbot.SendAudioParams,
) (*models.Message, error) {
	m.SentAudio = append(m.SentAudio, params)
	return &models.Message{ID: len(m.SentAudio)}, m.Err
}

// AnswerCallbackQuery records the answered callback for testing.
func (m *MockMessenger) AnswerCallbackQuery(
	_ context.Context,
	params *tgbot.AnswerCallbackQueryParams,
) (bool, error) {
	m.AnsweredIDs = append(m.AnsweredIDs, params.CallbackQueryID)
	return m.Err == nil, m.Err
}
