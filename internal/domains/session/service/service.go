package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"restate/config"
	"restate/infras/appwrite"
	"restate/infras/browser"
	"restate/infras/otel"
	"restate/internal/domains/session/model"
	"restate/internal/domains/session/model/dto"
	"restate/shared/constant"
	"restate/shared/failure"
)

type Session interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (model.User, error)
	CreateJWT(ctx context.Context) (string, error)
}

type serviceImpl struct {
	account appwrite.Account
	surface browser.Surface
	avatars *appwrite.Avatars
	cfg     *config.Config
	otel    otel.Otel
}

func New(account appwrite.Account, surface browser.Surface, avatars *appwrite.Avatars, cfg *config.Config, otl otel.Otel) Session {
	return &serviceImpl{
		account: account,
		surface: surface,
		avatars: avatars,
		cfg:     cfg,
		otel:    otl,
	}
}

// Login runs the OAuth2 redirect handshake: request a provider-hosted
// one-time token URL scoped to the redirect URI, hand it to the
// interactive auth surface, and exchange the returned token parameters
// for a persistent session.
func (s *serviceImpl) Login(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	redirectURI := s.surface.RedirectURI()

	authURL := s.account.CreateOAuth2TokenURL(s.cfg.OAuth.Provider, redirectURI, redirectURI)
	if authURL == constant.Empty {
		log.Error().Str("provider", s.cfg.OAuth.Provider).Msg("failed to create OAuth2 token URL")

		return failure.InternalError(fmt.Errorf("empty OAuth2 token URL for provider %s", s.cfg.OAuth.Provider)) //nolint:wrapcheck
	}

	result, err := s.surface.OpenAuthSession(ctx, authURL)
	if err != nil {
		log.Error().Err(err).Msg("interactive auth session failed")

		return fmt.Errorf("interactive auth session failed: %w", err)
	}

	if result.Type != browser.ResultSuccess {
		log.Warn().Str("result", string(result.Type)).Msg("interactive auth session not completed")

		return failure.Cancelled("user abandoned the auth flow") //nolint:wrapcheck
	}

	callback, err := dto.ParseCallback(result.URL)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse auth callback URL")

		return err //nolint:wrapcheck
	}

	if _, err = s.account.CreateSession(ctx, callback.UserID, callback.Secret); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Logout deletes the active session.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.account.DeleteSession(ctx, constant.SessionCurrent); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// CurrentUser resolves the identity of the active session and attaches
// the initials avatar.
func (s *serviceImpl) CurrentUser(ctx context.Context) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.CurrentUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, err := s.account.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to fetch current user")

		return res, fmt.Errorf("failed to fetch current user: %w", err)
	}

	if account.ID == constant.Empty {
		return res, failure.SessionMissing
	}

	res.FromAccount(account, s.avatars.GetInitials(account.Name))

	return res, nil
}

// CreateJWT issues a short-lived token bound to the active session, for
// calls made on the user's behalf outside this client.
func (s *serviceImpl) CreateJWT(ctx context.Context) (token string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.CreateJWT")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err = s.account.CreateJWT(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to create JWT")

		return constant.Empty, fmt.Errorf("failed to create JWT: %w", err)
	}

	return token, nil
}
