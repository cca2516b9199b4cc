package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/piltismart/pilti/internal/config"
	"github.com/piltismart/pilti/internal/logger"
)

// Store manages the persisted settings file.
type Store struct {
	path string
	log  zerolog.Logger
	mu   sync.Mutex

	// backedUp is set once a corrupted file has been copied aside.
	backedUp bool
	now      func() time.Time
}

// New creates a store at the path resolved from opts.
func New(opts config.Options, log zerolog.Logger) (*Store, error) {
	path, err := opts.SettingsPath()
	if err != nil {
		return nil, fmt.Errorf("resolve settings path: %w", err)
	}
	return NewAt(path, log), nil
}

// NewAt creates a store backed by the file at path.
func NewAt(path string, log zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  logger.Component(log, "store"),
		now:  time.Now,
	}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the configured URL, or config.DefaultURL when the file is
// missing, unreadable, malformed or has no url.
func (s *Store) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.read()
	if !ok || cfg.URL == "" {
		return config.DefaultURL
	}
	return cfg.URL
}

// Recent returns previously configured URLs, most recent first.
func (s *Store) Recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, _ := s.read()
	result := make([]string, len(cfg.Recent))
	copy(result, cfg.Recent)
	return result
}

// Save persists url as the current server. The caller validates url.
func (s *Store) Save(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.read()
	next := current.withURL(url)

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	s.log.Info().Str("url", url).Str("path", s.path).Msg("server url saved")
	return nil
}

// read must be called with mu held.
func (s *Store) read() (AppConfig, bool) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return AppConfig{}, false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("settings unreadable, using default")
		return AppConfig{}, false
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("settings corrupted, using default")
		s.backup(data)
		return AppConfig{}, false
	}
	return cfg, true
}

// backup copies a corrupted file aside so the next Save does not lose it.
func (s *Store) backup(data []byte) {
	if s.backedUp {
		return
	}
	s.backedUp = true

	backupPath := s.path + ".backup." + s.now().Format("20060102150405")
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		s.log.Warn().Err(err).Str("path", backupPath).Msg("failed to back up corrupted settings")
	}
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
