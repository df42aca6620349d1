package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer h.answerCallback(cb.ID)

	if cb.Message == nil || cb.Message.Chat == nil {
		h.logger.Debug("callback without message", zap.String("data", cb.Data))
		return
	}

	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	var fn HandlerFunc

	switch data.Action {
	case actionQuiz:
		fn = h.quizCallback(data, userID)
	case actionReset:
		fn = h.resetCallback(data, userID, cb.Message.MessageID)
	}

	if fn == nil {
		h.logger.Warn("unknown callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
		)
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) quizCallback(data callbackData, userID int64) HandlerFunc {
	switch data.param(0) {
	case quizAnswer:
		index, given, ok := parseQuizAnswer(data)
		if !ok {
			return nil
		}
		return func(ctx context.Context, chatID int64) error {
			return h.quizService.SubmitAnswer(ctx, chatID, index, given)
		}

	case quizRestart:
		return func(ctx context.Context, chatID int64) error {
			return h.quizService.Restart(ctx, chatID, userID)
		}

	case quizStart:
		return h.handleQuiz(userID)
	}

	return nil
}

func (h *Handler) resetCallback(data callbackData, userID int64, messageID int) HandlerFunc {
	switch data.param(0) {
	case resetConfirm:
		return func(ctx context.Context, chatID int64) error {
			if err := h.resetService.ResetUser(ctx, userID); err != nil {
				return err
			}
			h.logger.Info("user history reset", zap.Int64("user_id", userID))
			return h.send(newEdit(chatID, messageID, md(msgResetDone)))
		}

	case resetCancel:
		return func(_ context.Context, chatID int64) error {
			return h.send(newEdit(chatID, messageID, md(msgResetCancelled)))
		}
	}

	return nil
}

func (h *Handler) answerCallback(id string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, "")); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
