package usecase

import (
	"context"
	"fmt"

	pkgTelegram "marketplace-bot/pkg/telegram"
)

// reply sends one HTML message with an optional keyboard.
func (uc *implUseCase) reply(ctx context.Context, chatID int64, text string, markup any) error {
	_, err := uc.messenger.Send(ctx, pkgTelegram.SendMessageRequest{
		ChatID:      pkgTelegram.FormatChatID(chatID),
		Text:        text,
		ParseMode:   pkgTelegram.ParseModeHTML,
		ReplyMarkup: markup,
	})
	if err != nil {
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return nil
}

// AnswerCallback stops the client-side spinner on a pressed inline button.
func (uc *implUseCase) AnswerCallback(ctx context.Context, callbackID string) error {
	if callbackID == "" {
		return nil
	}
	return uc.messenger.AnswerCallbackQuery(ctx, pkgTelegram.AnswerCallbackQueryRequest{CallbackQueryID: callbackID})
}
