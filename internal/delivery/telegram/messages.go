// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

const (
	msgInternalError  = "Что‑то пошло не так. Попробуйте позже."
	msgUnknownCommand = "Неизвестная команда. Список доступных команд:\n\n/quiz — начать новый раунд\n/stats — ваша статистика\n/help — помощь"
	msgUseButtons     = "Отвечайте кнопками «Да» и «Нет» под постером. Новый раунд: /quiz"
	msgNoSession      = "Этот раунд уже не активен. Нажмите /quiz, чтобы начать заново."
	msgNoStats        = "Вы ещё не закончили ни одного раунда. Начните с /quiz!"
	msgResetPrompt    = "Удалить всю историю ваших раундов? Это действие нельзя отменить."
	msgResetDone      = "История раундов очищена."
	msgResetCancelled = "Сброс отменён."

	verdictCorrect = "✅ Верно!"
	verdictWrong   = "❌ Неверно"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("Movie Quiz"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Я покажу вам постеры десяти фильмов. Про каждый ответьте, "))
	sb.WriteString(md("выше ли его рейтинг, чем 6."))
	sb.WriteString("\n\n")
	sb.WriteString(md("После каждого ответа вы увидите, угадали ли, а в конце раунда узнаете свой счёт."))
	sb.WriteString("\n\n")
	sb.WriteString(md("/quiz — начать новый раунд"))
	sb.WriteString("\n")
	sb.WriteString(md("/stats — ваша статистика"))
	sb.WriteString("\n")
	sb.WriteString(md("/reset — удалить историю раундов"))

	return sb.String()
}

func helpMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("Как играть"))
	sb.WriteString("\n\n")
	sb.WriteString(md("1. На каждый постер отвечайте «Да», если рейтинг фильма больше 6, иначе «Нет»."))
	sb.WriteString("\n")
	sb.WriteString(md("2. После ответа секунду показывается, верно ли вы ответили."))
	sb.WriteString("\n")
	sb.WriteString(md("3. В конце раунда можно сыграть ещё раз."))
	sb.WriteString("\n\n")
	sb.WriteString(md("/quiz — новый раунд\n/stats — статистика\n/reset — сброс истории"))

	return sb.String()
}

// questionCaption renders "<i/total>\n\n<prompt>".
func questionCaption(ev entities.QuestionChanged) string {
	return ev.DisplayIndex + "\n\n" + ev.Prompt
}

func verdictLine(isCorrect bool) string {
	if isCorrect {
		return verdictCorrect
	}
	return verdictWrong
}

func resultText(ev entities.SessionEnded) string {
	return fmt.Sprintf("Раунд окончен!\nВы ответили правильно на %d из %d вопросов.", ev.CorrectCount, ev.Total)
}

func formatStats(stats *entities.QuizStats, recent []*entities.QuizResult) string {
	var sb strings.Builder

	sb.WriteString(bold("📊 Ваша статистика"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("🎬 Сыграно раундов: %d", stats.GamesPlayed)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🏆 Лучший результат: %d", stats.BestScore)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🕐 Последний раунд: %d из %d", stats.LastScore, stats.LastTotal)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🎯 Точность: %.1f%%", stats.Accuracy())))

	if len(recent) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Последние раунды"))
		for _, r := range recent {
			sb.WriteString("\n")
			sb.WriteString(md(fmt.Sprintf("%s — %d/%d",
				r.FinishedAt.UTC().Format("02.01.2006 15:04"),
				r.CorrectAnswers,
				r.TotalQuestions,
			)))
		}
	}

	return sb.String()
}
