package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/aglarus/tunegram/internal/bot"
	"github.com/aglarus/tunegram/internal/modules/music/application/usecases"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// Handlers implements the Telegram-facing side of the music module. All
// outbound traffic goes through bot.Messenger so handlers are testable
// without a live connection.
type Handlers struct {
	search      *usecases.SearchService
	recognition *usecases.RecognitionService
	browse      *usecases.BrowseService
	delivery    *usecases.DeliveryService
	prefs       *usecases.PreferenceService
	messenger   bot.Messenger
	files       bot.FileClient
	httpClient  *http.Client
	cacheDir    string
}

// NewHandlers creates a new Handlers.
func NewHandlers(
	search *usecases.SearchService,
	recognition *usecases.RecognitionService,
	browse *usecases.BrowseService,
	delivery *usecases.DeliveryService,
	prefs *usecases.PreferenceService,
	messenger bot.Messenger,
	files bot.FileClient,
	cacheDir string,
) *Handlers {
	return &Handlers{
		search:      search,
		recognition: recognition,
		browse:      browse,
		delivery:    delivery,
		prefs:       prefs,
		messenger:   messenger,
		files:       files,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		cacheDir:    cacheDir,
	}
}

// HandleStart responds to /start with the language picker.
func (h *Handlers) HandleStart(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	loc := LocaleFor(h.prefs.Language(update.Message.From.ID))
	_, err := h.messenger.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        loc.LangSelect,
		ReplyMarkup: languageKeyboard(),
	})
	if err != nil {
		slog.Error("failed to send language picker", "error", err)
	}
}

// HandleTextMessage treats any non-command text message as a search query.
// It posts a status message synchronously and runs the search in its own
// goroutine so one slow provider call never stalls other users.
func (h *Handlers) HandleTextMessage(ctx context.Context, _ *tgbot.Bot, update *models.Update) bool {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return false
	}
	query := strings.TrimSpace(msg.Text)
	if query == "" || strings.HasPrefix(query, "/") {
		return false
	}

	userID := msg.From.ID
	loc := LocaleFor(h.prefs.Language(userID))
	status, err := h.messenger.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   pick(loc.Searching),
	})
	if err != nil {
		slog.Error("failed to send search status", "user_id", userID, "error", err)
		return true
	}

	go h.runSearch(ctx, userID, msg.Chat.ID, status.ID, loc, query)
	return true
}

// HandleMediaMessage routes voice, audio and video messages into the
// recognition pipeline. Audio and video documents count too.
func (h *Handlers) HandleMediaMessage(ctx context.Context, _ *tgbot.Bot, update *models.Update) bool {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return false
	}
	fileID := sampleFileID(msg)
	if fileID == "" {
		return false
	}

	userID := msg.From.ID
	loc := LocaleFor(h.prefs.Language(userID))
	status, err := h.messenger.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    msg.Chat.ID,
		Text:      loc.Recognizing,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		slog.Error("failed to send recognition status", "user_id", userID, "error", err)
		return true
	}

	go h.runRecognition(ctx, userID, msg.Chat.ID, status.ID, loc, fileID)
	return true
}

// HandleCallback decodes and dispatches an inline-button tap.
func (h *Handlers) HandleCallback(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}
	if _, err := h.messenger.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: cq.ID,
	}); err != nil {
		slog.Warn("failed to answer callback query", "error", err)
	}

	msg := cq.Message.Message
	if msg == nil {
		return
	}

	userID := cq.From.ID
	loc := LocaleFor(h.prefs.Language(userID))

	action, err := domain.ParseAction(cq.Data)
	if err != nil {
		slog.Warn("ignoring callback", "user_id", userID, "data", cq.Data, "error", err)
		return
	}

	switch a := action.(type) {
	case domain.SetLanguageAction:
		if err := h.prefs.SetLanguage(userID, a.Code); err != nil {
			slog.Error("failed to persist language", "user_id", userID, "error", err)
		}
		loc = LocaleFor(a.Code)
		h.editText(ctx, msg.Chat.ID, msg.ID, loc.Start+loc.Footer, nil)

	case domain.PageNextAction:
		h.navigate(ctx, userID, msg.Chat.ID, msg.ID, loc, 1)

	case domain.PagePrevAction:
		h.navigate(ctx, userID, msg.Chat.ID, msg.ID, loc, -1)

	case domain.SelectAction:
		h.selectTrack(ctx, userID, msg.Chat.ID, loc, a.Index)
	}
}

func (h *Handlers) runSearch(
	ctx context.Context,
	userID, chatID int64,
	statusID int,
	loc *Locale,
	query string,
) {
	out, err := h.search.Search(ctx, usecases.SearchInput{UserID: userID, Query: query})
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNoResults), errors.Is(err, usecases.ErrEmptyQuery):
			h.editText(ctx, chatID, statusID, loc.NotFound, nil)
		default:
			slog.Error("search failed", "user_id", userID, "query", query, "error", err)
			h.editText(ctx, chatID, statusID, loc.SearchError, nil)
		}
		return
	}

	h.editPage(ctx, chatID, statusID, out.Session, loc)
}

func (h *Handlers) runRecognition(
	ctx context.Context,
	userID, chatID int64,
	statusID int,
	loc *Locale,
	fileID string,
) {
	samplePath, err := h.downloadSample(ctx, fileID)
	if err != nil {
		slog.Error("failed to fetch sample", "user_id", userID, "error", err)
		h.editText(ctx, chatID, statusID, loc.RecognitionError, nil)
		return
	}
	defer func() {
		if err := os.Remove(samplePath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove sample", "path", samplePath, "error", err)
		}
	}()

	out, err := h.recognition.Recognize(ctx, usecases.RecognizeInput{
		UserID:     userID,
		SamplePath: samplePath,
		OnMatch: func(match domain.RecognitionMatch) {
			h.editText(ctx, chatID, statusID,
				fmt.Sprintf(loc.Recognized, match.Artist, match.Title), nil)
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotRecognized):
			h.editText(ctx, chatID, statusID, loc.NotRecognized, nil)
		case errors.Is(err, usecases.ErrNoResults):
			h.editText(ctx, chatID, statusID, loc.NotFound, nil)
		default:
			slog.Error("recognition search failed", "user_id", userID, "error", err)
			h.editText(ctx, chatID, statusID, loc.SearchError, nil)
		}
		return
	}

	h.editPage(ctx, chatID, statusID, out.Search.Session, loc)
}

func (h *Handlers) navigate(
	ctx context.Context,
	userID, chatID int64,
	messageID int,
	loc *Locale,
	delta int,
) {
	out, err := h.browse.Navigate(usecases.NavigateInput{UserID: userID, Delta: delta})
	if err != nil {
		h.editText(ctx, chatID, messageID, loc.Expired, nil)
		return
	}
	h.editPage(ctx, chatID, messageID, out.Session, loc)
}

func (h *Handlers) selectTrack(
	ctx context.Context,
	userID, chatID int64,
	loc *Locale,
	index int,
) {
	out, err := h.browse.Select(usecases.SelectInput{UserID: userID, Index: index})
	if err != nil {
		text := loc.TrackError
		if errors.Is(err, usecases.ErrNoActiveSession) {
			text = loc.Expired
		}
		if _, err := h.messenger.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   text,
		}); err != nil {
			slog.Error("failed to send selection error", "user_id", userID, "error", err)
		}
		return
	}

	candidate := out.Candidate
	status, err := h.messenger.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      fmt.Sprintf(loc.Sending, candidate.DisplayTitle()),
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		slog.Error("failed to send delivery status", "user_id", userID, "error", err)
		return
	}

	go h.deliverTrack(ctx, userID, chatID, status.ID, loc, candidate)
}

func (h *Handlers) deliverTrack(
	ctx context.Context,
	userID, chatID int64,
	statusID int,
	loc *Locale,
	candidate domain.Candidate,
) {
	out, err := h.delivery.Deliver(ctx, usecases.DeliverInput{Candidate: candidate})
	if err != nil {
		slog.Error("delivery failed", "user_id", userID, "url", candidate.URL, "error", err)
		h.editText(ctx, chatID, statusID, loc.DownloadError, nil)
		return
	}
	defer func() {
		if err := os.Remove(out.FilePath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove downloaded track", "path", out.FilePath, "error", err)
		}
	}()

	f, err := os.Open(out.FilePath)
	if err != nil {
		slog.Error("failed to open downloaded track", "path", out.FilePath, "error", err)
		h.editText(ctx, chatID, statusID, loc.DownloadError, nil)
		return
	}
	defer f.Close()

	_, err = h.messenger.SendAudio(ctx, &tgbot.SendAudioParams{
		ChatID: chatID,
		Audio: &models.InputFileUpload{
			Filename: candidate.DisplayTitle() + filepath.Ext(out.FilePath),
			Data:     f,
		},
		Title:     candidate.Title,
		Performer: candidate.Artist,
		Caption:   candidate.DisplayTitle() + loc.Footer,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		slog.Error("failed to send audio", "user_id", userID, "error", err)
		h.editText(ctx, chatID, statusID, loc.DownloadError, nil)
		return
	}

	if _, err := h.messenger.DeleteMessage(ctx, &tgbot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: statusID,
	}); err != nil {
		slog.Warn("failed to delete delivery status", "error", err)
	}
}

// downloadSample fetches a Telegram file into the cache directory and
// returns its local path. The caller removes the file when done.
func (h *Handlers) downloadSample(ctx context.Context, fileID string) (string, error) {
	file, err := h.files.GetFile(ctx, &tgbot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("failed to resolve file: %w", err)
	}

	ext := filepath.Ext(file.FilePath)
	if ext == "" {
		ext = ".ogg"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.files.FileDownloadLink(file), nil)
	if err != nil {
		return "", err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d fetching file", resp.StatusCode)
	}

	dst := filepath.Join(h.cacheDir, fmt.Sprintf("sample-%d%s", time.Now().UnixNano(), ext))
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(dst)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

func (h *Handlers) editPage(
	ctx context.Context,
	chatID int64,
	messageID int,
	session domain.SearchSession,
	loc *Locale,
) {
	page := usecases.RenderPage(session, usecases.RenderLabels{
		Header:    pick(loc.Found),
		Prev:      loc.Prev,
		Next:      loc.Next,
		Footer:    loc.Dev,
		FooterURL: devURL,
	})
	h.editText(ctx, chatID, messageID, page.Text, inlineKeyboard(page.Keyboard))
}

func (h *Handlers) editText(
	ctx context.Context,
	chatID int64,
	messageID int,
	text string,
	markup *models.InlineKeyboardMarkup,
) {
	params := &tgbot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := h.messenger.EditMessageText(ctx, params); err != nil {
		slog.Warn("failed to edit message", "message_id", messageID, "error", err)
	}
}

// sampleFileID picks the recognizable attachment out of a message, if any.
func sampleFileID(msg *models.Message) string {
	switch {
	case msg.Voice != nil:
		return msg.Voice.FileID
	case msg.Audio != nil:
		return msg.Audio.FileID
	case msg.VideoNote != nil:
		return msg.VideoNote.FileID
	case msg.Video != nil:
		return msg.Video.FileID
	case msg.Document != nil &&
		(strings.HasPrefix(msg.Document.MimeType, "audio/") ||
			strings.HasPrefix(msg.Document.MimeType, "video/")):
		return msg.Document.FileID
	}
	return ""
}

func pick(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[rand.IntN(len(variants))]
}
