package shell

import (
	"github.com/google/uuid"

	"github.com/piltismart/pilti/internal/config"
)

// ExitRestart is the exit status a window process uses to ask the main
// shell to relaunch itself.
const ExitRestart = 3

// WindowSpec describes a secondary window.
type WindowSpec struct {
	ID        string
	Title     string
	Width     int
	Height    int
	Resizable bool
	Center    bool
	Focused   bool
}

// SettingsWindow hosts the server URL form.
var SettingsWindow = WindowSpec{
	ID:        "settings",
	Title:     "Change Server",
	Width:     420,
	Height:    280,
	Resizable: false,
	Center:    true,
	Focused:   true,
}

var windows = map[string]WindowSpec{
	SettingsWindow.ID: SettingsWindow,
}

// LookupWindow returns the spec registered under id.
func LookupWindow(id string) (WindowSpec, bool) {
	spec, ok := windows[id]
	return spec, ok
}

// InstanceID is a stable identifier for the window's single-instance lock.
// Shells editing different settings files get different locks.
func (s WindowSpec) InstanceID(settingsPath string) string {
	name := config.DefaultURL + "/" + config.AppID + "/window/" + s.ID + "?settings=" + settingsPath
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// WindowArgs are the command-line arguments that start the window process.
func WindowArgs(id string) []string {
	return []string{"--window", id}
}
