package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

const posterExt = ".jpg"

// questionMessage is the last question message sent to a chat.
type questionMessage struct {
	messageID int
	caption   string
	isPhoto   bool
}

// Presenter renders quiz events as Telegram messages.
type Presenter struct {
	bot              botAPI
	logger           *zap.Logger
	imagesDir        string
	placeholderImage string

	mu        sync.Mutex
	questions map[int64]questionMessage
}

func NewPresenter(bot botAPI, imagesDir, placeholderImage string, logger *zap.Logger) *Presenter {
	return &Presenter{
		bot:              bot,
		logger:           logger,
		imagesDir:        imagesDir,
		placeholderImage: placeholderImage,
		questions:        make(map[int64]questionMessage),
	}
}

// ShowQuestion sends the poster with the question caption and the answer
// keyboard. Falls back to the placeholder poster, then to a text message.
func (p *Presenter) ShowQuestion(_ context.Context, chatID int64, ev entities.QuestionChanged) error {
	caption := questionCaption(ev)
	kb := buildAnswerKeyboard(ev.Index)

	if path, ok := p.posterPath(ev.ImageRef); ok {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
		photo.Caption = caption
		photo.ReplyMarkup = kb

		sent, err := p.bot.Send(photo)
		if err != nil {
			return fmt.Errorf("send question photo: %w", err)
		}
		p.remember(chatID, questionMessage{messageID: sent.MessageID, caption: caption, isPhoto: true})
		return nil
	}

	p.logger.Warn("no poster available, sending text question",
		zap.Int64("chat_id", chatID),
		zap.String("image", ev.ImageRef),
	)

	msg := newPlainMessage(chatID, caption)
	msg.ReplyMarkup = kb

	sent, err := p.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send question: %w", err)
	}
	p.remember(chatID, questionMessage{messageID: sent.MessageID, caption: caption})
	return nil
}

// ShowFeedback removes the answer keyboard from the question message and
// appends the verdict to it.
func (p *Presenter) ShowFeedback(_ context.Context, chatID int64, ev entities.FeedbackShown) error {
	verdict := verdictLine(ev.IsCorrect)

	q, ok := p.lastQuestion(chatID)
	if !ok {
		if _, err := p.bot.Send(newPlainMessage(chatID, verdict)); err != nil {
			return fmt.Errorf("send feedback: %w", err)
		}
		return nil
	}

	text := q.caption + "\n\n" + verdict

	var edit tgbotapi.Chattable
	if q.isPhoto {
		edit = tgbotapi.NewEditMessageCaption(chatID, q.messageID, text)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, q.messageID, text)
	}

	if _, err := p.bot.Send(edit); err != nil {
		return fmt.Errorf("edit question with feedback: %w", err)
	}
	return nil
}

// ShowResult sends the round score with the restart button.
func (p *Presenter) ShowResult(_ context.Context, chatID int64, ev entities.SessionEnded) error {
	p.forget(chatID)

	msg := newPlainMessage(chatID, resultText(ev))
	msg.ReplyMarkup = buildResultKeyboard()

	if _, err := p.bot.Send(msg); err != nil {
		return fmt.Errorf("send result: %w", err)
	}
	return nil
}

func (p *Presenter) posterPath(imageRef string) (string, bool) {
	if imageRef != "" {
		path := filepath.Join(p.imagesDir, imageRef+posterExt)
		if fileExists(path) {
			return path, true
		}
	}

	if p.placeholderImage != "" && fileExists(p.placeholderImage) {
		return p.placeholderImage, true
	}

	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (p *Presenter) remember(chatID int64, q questionMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.questions[chatID] = q
}

func (p *Presenter) lastQuestion(chatID int64) (questionMessage, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q, ok := p.questions[chatID]
	return q, ok
}

func (p *Presenter) forget(chatID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.questions, chatID)
}
