package store

// MaxRecent bounds the number of previously used servers kept in the file.
const MaxRecent = 5

// AppConfig is the JSON file structure.
type AppConfig struct {
	URL    string   `json:"url"`
	Recent []string `json:"recent,omitempty"`
}

// withURL returns the config after switching to url: the old URL moves to
// the front of Recent, url itself is dropped from it.
func (c AppConfig) withURL(url string) AppConfig {
	recent := make([]string, 0, MaxRecent)
	if c.URL != "" && c.URL != url {
		recent = append(recent, c.URL)
	}
	for _, r := range c.Recent {
		if len(recent) == MaxRecent {
			break
		}
		if r == url || r == c.URL || r == "" {
			continue
		}
		recent = append(recent, r)
	}
	return AppConfig{URL: url, Recent: recent}
}
