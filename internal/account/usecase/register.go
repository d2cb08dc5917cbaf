package usecase

import (
	"context"
	"errors"
	"strings"

	"marketplace-bot/internal/account"
	repo "marketplace-bot/internal/account/repository"
	"marketplace-bot/internal/notification"
)

// Register creates the account, pays the welcome bonus and opens a session.
// The registration notification is fired in the background.
func (uc *implUseCase) Register(ctx context.Context, input account.RegisterInput) (account.AuthOutput, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		return account.AuthOutput{}, account.ErrInvalidPayload
	}
	if input.DisplayName == "" {
		input.DisplayName = input.Username
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Username:    input.Username,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Password:    input.Password,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return account.AuthOutput{}, account.ErrUsernameTaken
		}
		uc.l.Errorf(ctx, "internal.account.usecase.Register.CreateUser: %v", err)
		return account.AuthOutput{}, err
	}

	if input.TelegramID != 0 {
		user = uc.linkTelegram(ctx, user, input.TelegramID)
	}

	if uc.bonus != nil && uc.opts.WelcomeBonus.IsPositive() {
		if err := uc.bonus.Credit(ctx, user.ID, uc.opts.WelcomeBonus); err != nil {
			uc.l.Warnf(ctx, "internal.account.usecase.Register.Credit: welcome bonus for %s: %v", user.ID, err)
		}
	}

	out, err := uc.openSession(ctx, user)
	if err != nil {
		return account.AuthOutput{}, err
	}

	notification.Dispatch(ctx, uc.notifier, notification.RegistrationEvent{
		Session:      uc.sessionInfo(user, input.Client),
		WelcomeBonus: uc.opts.WelcomeBonus,
	})
	return out, nil
}
