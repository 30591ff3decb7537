package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"restate/config"
	"restate/infras/appwrite"
	appwriteMocks "restate/infras/appwrite/mocks"
	"restate/infras/browser"
	browserMocks "restate/infras/browser/mocks"
	"restate/infras/otel/mocks"
	"restate/internal/domains/session/service"
	"restate/shared/failure"
)

const (
	testAuthURL     = "https://cloud.example.com/v1/account/tokens/oauth2/google?project=proj"
	testRedirectURI = "http://127.0.0.1:48321/callback"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Appwrite.Endpoint = "https://cloud.example.com/v1"
	cfg.Appwrite.ProjectID = "proj"
	cfg.OAuth.Provider = "google"

	return cfg
}

func newAvatars(cfg *config.Config) *appwrite.Avatars {
	return appwrite.NewAvatars(appwrite.NewClient(cfg))
}

func TestSessionService_Login(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(account *appwriteMocks.MockAccount, surface *browserMocks.MockSurface)
		wantErr       bool
		wantCancelled bool
	}{
		{
			name: "successful login",
			setupMock: func(account *appwriteMocks.MockAccount, surface *browserMocks.MockSurface) {
				surface.EXPECT().RedirectURI().Return(testRedirectURI)

				account.EXPECT().
					CreateOAuth2TokenURL("google", testRedirectURI, testRedirectURI).
					Return(testAuthURL)

				surface.EXPECT().
					OpenAuthSession(gomock.Any(), testAuthURL).
					Return(browser.Result{Type: browser.ResultSuccess, URL: testRedirectURI + "?userId=user-1&secret=tok-1"}, nil)

				account.EXPECT().
					CreateSession(gomock.Any(), "user-1", "tok-1").
					Return(appwrite.Session{ID: "sess-1", UserID: "user-1", Secret: "sess-secret"}, nil)
			},
			wantErr: false,
		},
		{
			name: "user abandoned the browser flow",
			setupMock: func(account *appwriteMocks.MockAccount, surface *browserMocks.MockSurface) {
				surface.EXPECT().RedirectURI().Return(testRedirectURI)

				account.EXPECT().
					CreateOAuth2TokenURL("google", testRedirectURI, testRedirectURI).
					Return(testAuthURL)

				surface.EXPECT().
					OpenAuthSession(gomock.Any(), testAuthURL).
					Return(browser.Result{Type: browser.ResultCancel}, nil)
			},
			wantErr:       true,
			wantCancelled: true,
		},
		{
			name: "empty token URL",
			setupMock: func(account *appwriteMocks.MockAccount, surface *browserMocks.MockSurface) {
				surface.EXPECT().RedirectURI().Return(testRedirectURI)

				account.EXPECT().
					CreateOAuth2TokenURL("google", testRedirectURI, testRedirectURI).
					Return("")
			},
			wantErr: true,
		},
		{
			name: "auth surface error",
			setupMock: func(account *appwriteMocks.MockAccount, surface *browserMocks.MockSurface) {
				surface.EXPECT().RedirectURI().Return(testRedirectURI)

				account.EXPECT().
					CreateOAuth2TokenURL("google", testRedirectURI, testRedirectURI).
					Return(testAuthURL)

				surface.EXPECT().
					OpenAuthSession(gomock.Any(), testAuthURL).
					Return(browser.Result{Type: browser.ResultCancel}, errors.New("failed to open the system browser"))
			},
			wantErr: true,
		},
		{
			name: "redirect with missing parameters",
			setupMock: func(account *appwriteMocks.MockAccount, surface *browserMocks.MockSurface) {
				surface.EXPECT().RedirectURI().Return(testRedirectURI)

				account.EXPECT().
					CreateOAuth2TokenURL("google", testRedirectURI, testRedirectURI).
					Return(testAuthURL)

				surface.EXPECT().
					OpenAuthSession(gomock.Any(), testAuthURL).
					Return(browser.Result{Type: browser.ResultSuccess, URL: testRedirectURI + "?userId=user-1"}, nil)
			},
			wantErr: true,
		},
		{
			name: "session creation failure",
			setupMock: func(account *appwriteMocks.MockAccount, surface *browserMocks.MockSurface) {
				surface.EXPECT().RedirectURI().Return(testRedirectURI)

				account.EXPECT().
					CreateOAuth2TokenURL("google", testRedirectURI, testRedirectURI).
					Return(testAuthURL)

				surface.EXPECT().
					OpenAuthSession(gomock.Any(), testAuthURL).
					Return(browser.Result{Type: browser.ResultSuccess, URL: testRedirectURI + "?userId=user-1&secret=tok-1"}, nil)

				account.EXPECT().
					CreateSession(gomock.Any(), "user-1", "tok-1").
					Return(appwrite.Session{}, failure.Unauthorized("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccount := appwriteMocks.NewMockAccount(ctrl)
			mockSurface := browserMocks.NewMockSurface(ctrl)
			cfg := newConfig()

			tt.setupMock(mockAccount, mockSurface)

			svc := service.New(mockAccount, mockSurface, newAvatars(cfg), cfg, mocks.NewOtel())

			err := svc.Login(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.wantCancelled {
				assert.True(t, failure.IsCancelled(err))
			}
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(account *appwriteMocks.MockAccount)
		wantErr   bool
	}{
		{
			name: "successful logout",
			setupMock: func(account *appwriteMocks.MockAccount) {
				account.EXPECT().DeleteSession(gomock.Any(), "current").Return(nil)
			},
			wantErr: false,
		},
		{
			name: "delete session failure",
			setupMock: func(account *appwriteMocks.MockAccount) {
				account.EXPECT().DeleteSession(gomock.Any(), "current").Return(failure.Unauthorized("no session"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccount := appwriteMocks.NewMockAccount(ctrl)
			cfg := newConfig()

			tt.setupMock(mockAccount)

			svc := service.New(mockAccount, browserMocks.NewMockSurface(ctrl), newAvatars(cfg), cfg, mocks.NewOtel())

			err := svc.Logout(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := appwriteMocks.NewMockAccount(ctrl)
	cfg := newConfig()

	mockAccount.EXPECT().
		Get(gomock.Any()).
		Return(appwrite.User{ID: "user-1", Name: "Ada Lovelace", Email: "ada@example.com"}, nil)

	svc := service.New(mockAccount, browserMocks.NewMockSurface(ctrl), newAvatars(cfg), cfg, mocks.NewOtel())

	user, err := svc.CurrentUser(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Ada Lovelace", user.Name)

	if !strings.Contains(user.Avatar, "/avatars/initials") {
		t.Errorf("expected avatar to be an initials URL, got %s", user.Avatar)
	}

	if !strings.Contains(user.Avatar, "Ada+Lovelace") {
		t.Errorf("expected avatar URL to carry the user name, got %s", user.Avatar)
	}
}

func TestSessionService_CurrentUser_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := appwriteMocks.NewMockAccount(ctrl)
	cfg := newConfig()

	mockAccount.EXPECT().
		Get(gomock.Any()).
		Return(appwrite.User{}, failure.Unauthorized("missing scope"))

	svc := service.New(mockAccount, browserMocks.NewMockSurface(ctrl), newAvatars(cfg), cfg, mocks.NewOtel())

	_, err := svc.CurrentUser(context.Background())
	assert.Error(t, err)
}

func TestSessionService_CurrentUser_EmptyIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := appwriteMocks.NewMockAccount(ctrl)
	cfg := newConfig()

	mockAccount.EXPECT().Get(gomock.Any()).Return(appwrite.User{}, nil)

	svc := service.New(mockAccount, browserMocks.NewMockSurface(ctrl), newAvatars(cfg), cfg, mocks.NewOtel())

	_, err := svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, failure.SessionMissing)
}

func TestSessionService_CreateJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := appwriteMocks.NewMockAccount(ctrl)
	cfg := newConfig()

	mockAccount.EXPECT().CreateJWT(gomock.Any()).Return("header.payload.signature", nil)

	svc := service.New(mockAccount, browserMocks.NewMockSurface(ctrl), newAvatars(cfg), cfg, mocks.NewOtel())

	token, err := svc.CreateJWT(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "header.payload.signature", token)
}
