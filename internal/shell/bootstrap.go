package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/piltismart/pilti/internal/logger"
)

// ErrMainWindowMissing means the host has no main window to navigate.
var ErrMainWindowMissing = errors.New("main window not found")

// MainWindow is the primary window showing the remote application.
type MainWindow interface {
	Navigate(url string) error
}

// URLSource provides the server URL to show.
type URLSource interface {
	CurrentURL() string
}

// Bootstrap points the main window at the configured server.
type Bootstrap struct {
	urls URLSource
	log  zerolog.Logger
	once sync.Once
}

func NewBootstrap(urls URLSource, log zerolog.Logger) *Bootstrap {
	return &Bootstrap{
		urls: urls,
		log:  logger.Component(log, "bootstrap"),
	}
}

// Start navigates w to the current URL. Only the first call navigates.
func (b *Bootstrap) Start(w MainWindow) error {
	if w == nil {
		return ErrMainWindowMissing
	}

	var err error
	b.once.Do(func() {
		url := b.urls.CurrentURL()
		b.log.Info().Str("url", url).Msg("loading server")
		if navErr := w.Navigate(url); navErr != nil {
			err = fmt.Errorf("navigate to %s: %w", url, navErr)
		}
	})
	return err
}

// NavigateScript is the JavaScript that sends the window to url.
func NavigateScript(url string) string {
	quoted, _ := json.Marshal(url)
	return fmt.Sprintf("window.location.replace(%s);", quoted)
}
