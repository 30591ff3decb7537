package browser

//go:generate go run go.uber.org/mock/mockgen -source=./browser.go -destination=./mocks/browser_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"restate/config"
)

type ResultType string

const (
	// ResultSuccess means the flow reached the terminal redirect.
	ResultSuccess ResultType = "success"
	// ResultCancel means the user abandoned the flow before the redirect
	// arrived. Treated as an ordinary failure, never as a hang.
	ResultCancel ResultType = "cancel"
)

// Result is the outcome of an interactive auth session.
type Result struct {
	Type ResultType
	// URL is the terminal redirect URL, including its query parameters.
	// Empty unless Type is ResultSuccess.
	URL string
}

// Surface opens a URL in a user-controlled browser context and resolves
// when the user completes or abandons the flow.
type Surface interface {
	// RedirectURI is the application-specific URI the provider redirects
	// to when the flow completes.
	RedirectURI() string
	// OpenAuthSession launches the interactive flow at authURL and blocks
	// until the terminal redirect lands on RedirectURI or ctx is done.
	OpenAuthSession(ctx context.Context, authURL string) (Result, error)
}

type surfaceImpl struct {
	listenAddress string
	callbackPath  string
}

func New(cfg *config.Config) Surface {
	return &surfaceImpl{
		listenAddress: cfg.OAuth.ListenAddress,
		callbackPath:  cfg.OAuth.CallbackPath,
	}
}

func (s *surfaceImpl) RedirectURI() string {
	return "http://" + s.listenAddress + s.callbackPath
}

func (s *surfaceImpl) OpenAuthSession(ctx context.Context, authURL string) (Result, error) {
	listener, err := net.Listen("tcp", s.listenAddress)
	if err != nil {
		return Result{Type: ResultCancel}, fmt.Errorf("failed to listen for the auth redirect: %w", err)
	}

	redirects := make(chan string, 1)

	router := chi.NewRouter()
	router.Get(s.callbackPath, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = writer.Write([]byte("<html><body>Signed in. You can close this window.</body></html>"))

		select {
		case redirects <- "http://" + s.listenAddress + request.URL.String():
		default:
		}
	})

	server := &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Error().Err(serveErr).Msg("auth redirect listener stopped unexpectedly")
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
		defer cancel()

		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Warn().Err(shutdownErr).Msg("failed to shut down auth redirect listener")
		}
	}()

	if err := openInBrowser(authURL); err != nil {
		return Result{Type: ResultCancel}, err
	}

	select {
	case terminal := <-redirects:
		return Result{Type: ResultSuccess, URL: terminal}, nil
	case <-ctx.Done():
		// Closing the app or timing out while the browser tab is open is
		// the user-driven cancellation path.
		return Result{Type: ResultCancel}, nil
	}
}

// openInBrowser is a variable so tests can stand in for the system
// browser.
var openInBrowser = func(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open the system browser: %w", err)
	}

	return nil
}
