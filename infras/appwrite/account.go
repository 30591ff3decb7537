package appwrite

//go:generate go run go.uber.org/mock/mockgen -source=./account.go -destination=./mocks/account_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"restate/infras/otel"
	"restate/shared/constant"
)

const (
	otelAttrProvider = "provider"
	otelAttrUserID   = "user_id"
)

// User is the identity record held by the provider. Read-only to this
// client; created externally at signup.
type User struct {
	ID           string    `json:"$id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registration"`
	Status       bool      `json:"status"`
}

// Session is a backend-issued credential representing an authenticated
// identity.
type Session struct {
	ID       string `json:"$id"`
	UserID   string `json:"userId"`
	Secret   string `json:"secret"`
	Provider string `json:"provider"`
	Expire   string `json:"expire"`
}

// Account is the identity/session surface of the remote backend.
type Account interface {
	// CreateOAuth2TokenURL builds the provider-hosted URL that starts the
	// OAuth2 token flow. Opening it in a browser ends with a redirect to
	// successURL carrying userId and secret query parameters.
	CreateOAuth2TokenURL(provider, successURL, failureURL string) string
	// CreateSession exchanges a one-time token for a persistent session
	// and retains its secret on the base client.
	CreateSession(ctx context.Context, userID, secret string) (Session, error)
	// DeleteSession deletes the session with the given id. The keyword
	// "current" addresses the active session.
	DeleteSession(ctx context.Context, sessionID string) error
	// CreateJWT issues a short-lived JWT bound to the active session.
	CreateJWT(ctx context.Context) (string, error)
	// Get fetches the identity of the active session.
	Get(ctx context.Context) (User, error)
}

type accountImpl struct {
	client *Client
	otel   otel.Otel
}

func NewAccount(client *Client, otl otel.Otel) Account {
	return &accountImpl{
		client: client,
		otel:   otl,
	}
}

func (a *accountImpl) CreateOAuth2TokenURL(provider, successURL, failureURL string) string {
	query := url.Values{}
	query.Set("project", a.client.Project())
	query.Set("success", successURL)
	query.Set("failure", failureURL)

	return fmt.Sprintf("%s/account/tokens/oauth2/%s?%s", a.client.Endpoint(), url.PathEscape(provider), query.Encode())
}

func (a *accountImpl) CreateSession(ctx context.Context, userID, secret string) (res Session, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".account.CreateSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrUserID, userID)

	body := map[string]string{
		"userId": userID,
		"secret": secret,
	}

	if err = a.client.call(ctx, http.MethodPost, "/account/sessions/token", nil, body, &res); err != nil {
		return res, fmt.Errorf("failed to create session: %w", err)
	}

	a.client.SetSession(res.Secret)

	return res, nil
}

func (a *accountImpl) DeleteSession(ctx context.Context, sessionID string) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".account.DeleteSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = a.client.call(ctx, http.MethodDelete, "/account/sessions/"+url.PathEscape(sessionID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	a.client.ClearSession()

	return nil
}

func (a *accountImpl) CreateJWT(ctx context.Context) (token string, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".account.CreateJWT")
	defer scope.End()
	defer scope.TraceIfError(err)

	res := struct {
		JWT string `json:"jwt"`
	}{}

	if err = a.client.call(ctx, http.MethodPost, "/account/jwts", nil, nil, &res); err != nil {
		return "", fmt.Errorf("failed to create JWT: %w", err)
	}

	// The backend signs with its own key; the claims are only inspected,
	// not verified, to surface the expiry in the trace.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(res.JWT, claims); err != nil {
		return "", fmt.Errorf("backend returned a malformed JWT: %w", err)
	}

	if expiry, expErr := claims.GetExpirationTime(); expErr == nil && expiry != nil {
		scope.SetAttribute("jwt_expiry", expiry.Format(constant.DateFormat))
	} else {
		log.Warn().Msg("backend JWT carries no expiry claim")
	}

	return res.JWT, nil
}

func (a *accountImpl) Get(ctx context.Context) (res User, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".account.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = a.client.call(ctx, http.MethodGet, "/account", nil, nil, &res); err != nil {
		return res, fmt.Errorf("failed to fetch account: %w", err)
	}

	return res, nil
}
