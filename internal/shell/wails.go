package shell

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

type wailsMainWindow struct {
	ctx context.Context
}

// MainWindowFromContext wraps the Wails runtime context of the main window.
// A nil context means Wails has not created the window.
func MainWindowFromContext(ctx context.Context) MainWindow {
	if ctx == nil {
		return nil
	}
	return &wailsMainWindow{ctx: ctx}
}

func (w *wailsMainWindow) Navigate(url string) error {
	runtime.WindowExecJS(w.ctx, NavigateScript(url))
	return nil
}

// Raise brings the window of ctx to the front.
func Raise(ctx context.Context) {
	runtime.WindowUnminimise(ctx)
	runtime.WindowShow(ctx)
}
