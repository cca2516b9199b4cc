package config

const (
	// AppID is the fixed identifier used for config file paths.
	// Even if the app display name changes, keep this value to
	// maintain compatibility with existing user data.
	AppID = "pilti"

	// AppName is the display name used for window titles and the app menu.
	AppName = "Pilti"

	// DefaultURL is shown whenever no usable settings file exists.
	DefaultURL = "https://smartyapp.piltismart.com"

	// SettingsFile is the name of the settings file inside the app config dir.
	SettingsFile = "settings.json"
)
