package telegram

import (
	"context"
)

// handleStart greets the user and opens the first round.
func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.send(newMessage(chatID, welcomeMarkdownV2())); err != nil {
			return err
		}
		return h.quizService.Start(ctx, chatID, userID)
	}
}

// handleQuiz starts a new round, replacing the one in progress.
func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.quizService.Start(ctx, chatID, userID)
	}
}

func (h *Handler) handleStats(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		stats, err := h.statsService.GetStats(ctx, userID)
		if err != nil {
			return err
		}

		if stats == nil || stats.GamesPlayed == 0 {
			msg := newPlainMessage(chatID, msgNoStats)
			msg.ReplyMarkup = buildStartKeyboard()
			return h.send(msg)
		}

		recent, err := h.statsService.GetRecent(ctx, userID)
		if err != nil {
			return err
		}

		return h.send(newMessage(chatID, formatStats(stats, recent)))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMarkdownV2()))
	}
}

// handleReset asks for confirmation before wiping the history.
func (h *Handler) handleReset() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgResetPrompt)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.send(msg)
	}
}
