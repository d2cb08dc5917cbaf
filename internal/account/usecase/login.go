package usecase

import (
	"context"
	"errors"

	"marketplace-bot/internal/account"
	repo "marketplace-bot/internal/account/repository"
	"marketplace-bot/internal/model"
	"marketplace-bot/internal/notification"
)

// Login checks the credentials and opens a session. A notification failure never
// turns a successful login into an error.
func (uc *implUseCase) Login(ctx context.Context, input account.LoginInput) (account.AuthOutput, error) {
	if input.Username == "" || input.Password == "" {
		return account.AuthOutput{}, account.ErrInvalidCredentials
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: input.Username})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return account.AuthOutput{}, account.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.account.usecase.Login.GetOneUser: %v", err)
		return account.AuthOutput{}, err
	}

	ok, err := uc.repo.CheckPassword(ctx, user.ID, input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.account.usecase.Login.CheckPassword: %v", err)
		return account.AuthOutput{}, err
	}
	if !ok {
		return account.AuthOutput{}, account.ErrInvalidCredentials
	}

	if input.TelegramID != 0 && input.TelegramID != user.TelegramID {
		user = uc.linkTelegram(ctx, user, input.TelegramID)
	}

	out, err := uc.openSession(ctx, user)
	if err != nil {
		return account.AuthOutput{}, err
	}

	notification.Dispatch(ctx, uc.notifier, notification.LoginEvent{Session: uc.sessionInfo(user, input.Client)})
	return out, nil
}

func (uc *implUseCase) Logout(ctx context.Context, input account.LogoutInput) error {
	s, err := uc.repo.DeleteSession(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return account.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "internal.account.usecase.Logout.DeleteSession: %v", err)
		return err
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: s.UserID})
	if err != nil {
		uc.l.Warnf(ctx, "internal.account.usecase.Logout.GetOneUser: %v", err)
		return nil
	}

	notification.Dispatch(ctx, uc.notifier, notification.LogoutEvent{Session: uc.sessionInfo(user, input.Client)})
	return nil
}

func (uc *implUseCase) openSession(ctx context.Context, user model.User) (account.AuthOutput, error) {
	s, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{UserID: user.ID, TTL: uc.opts.SessionTTL})
	if err != nil {
		uc.l.Errorf(ctx, "internal.account.usecase.openSession: %v", err)
		return account.AuthOutput{}, err
	}
	return account.AuthOutput{User: user, Token: s.Token, ExpiresAt: s.ExpiresAt}, nil
}

// linkTelegram is best effort: a chat already taken by someone else leaves the user unlinked.
func (uc *implUseCase) linkTelegram(ctx context.Context, user model.User, telegramID int64) model.User {
	linked, err := uc.repo.LinkTelegram(ctx, user.ID, telegramID)
	if err != nil {
		uc.l.Warnf(ctx, "internal.account.usecase.linkTelegram: %s -> %d: %v", user.ID, telegramID, err)
		return user
	}
	return linked
}

func (uc *implUseCase) sessionInfo(user model.User, client account.ClientInfo) notification.Session {
	return notification.Session{
		DisplayName: user.DisplayName,
		Username:    user.Username,
		At:          uc.now(),
		IPAddress:   client.IPAddress,
		Device:      client.Device,
	}
}
