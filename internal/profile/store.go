package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the version written by Save. Version 0 is the legacy,
// unversioned shape: a bare profile object.
const SchemaVersion = 1

var ErrNotFound = errors.New("profile file not found")

type envelope struct {
	Version int         `json:"version" yaml:"version"`
	Profile ProfileData `json:"profile" yaml:"profile"`
}

// Store persists a single profile in a JSON or YAML file, chosen by extension.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.profile-readme/profile.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".profile-readme", "profile.json"), nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.path))
	return ext == ".yaml" || ext == ".yml"
}

func (s *Store) Load() (ProfileData, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ProfileData{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return ProfileData{}, fmt.Errorf("failed to read profile %s: %w", s.path, err)
	}

	p, err := s.decode(data)
	if err != nil {
		return ProfileData{}, fmt.Errorf("failed to parse profile %s: %w", s.path, err)
	}
	return p, nil
}

func (s *Store) Save(p ProfileData) error {
	data, err := s.encode(envelope{Version: SchemaVersion, Profile: p})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create profile directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set profile permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) encode(env envelope) ([]byte, error) {
	if s.isYAML() {
		return yaml.Marshal(env)
	}
	return json.MarshalIndent(env, "", "  ")
}

func (s *Store) unmarshal(data []byte, v interface{}) error {
	if s.isYAML() {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func (s *Store) decode(data []byte) (ProfileData, error) {
	var header struct {
		Version *int `json:"version" yaml:"version"`
	}
	if err := s.unmarshal(data, &header); err != nil {
		return ProfileData{}, err
	}

	version := 0
	if header.Version != nil {
		version = *header.Version
	}

	switch version {
	case 0:
		return s.migrateLegacy(data)
	case SchemaVersion:
		var env envelope
		if err := s.unmarshal(data, &env); err != nil {
			return ProfileData{}, err
		}
		return env.Profile, nil
	default:
		return ProfileData{}, fmt.Errorf("unsupported profile schema version %d (newest known is %d)", version, SchemaVersion)
	}
}

// migrateLegacy reads a bare profile object. Early files stored the bio under
// "bio" rather than "about".
func (s *Store) migrateLegacy(data []byte) (ProfileData, error) {
	var legacy struct {
		ProfileData `yaml:",inline"`
		Bio         string `json:"bio" yaml:"bio"`
	}
	if err := s.unmarshal(data, &legacy); err != nil {
		return ProfileData{}, err
	}

	p := legacy.ProfileData
	if p.About == "" {
		p.About = legacy.Bio
	}
	return p, nil
}
