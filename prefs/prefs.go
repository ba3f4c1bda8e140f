package prefs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultMinGapMinutes = 30

// Prefs is the persisted user preference set.
type Prefs struct {
	// MinGapMinutes is the minimum gap required between any two meetings.
	// A candidate whose span comes closer than this to an existing meeting
	// is reported as conflicting.
	MinGapMinutes int `yaml:"min_gap_minutes" json:"min_gap_minutes"`

	// BookFilePath is where the serialized address book lives. The model
	// treats it as an opaque pointer for the persistence boundary.
	BookFilePath string `yaml:"book_file_path" json:"book_file_path"`
}

// Default returns the in-memory default preference set.
func Default() *Prefs {
	return &Prefs{
		MinGapMinutes: defaultMinGapMinutes,
		BookFilePath:  "meetbook.json",
	}
}

// MinGap returns the minimum gap as a duration.
func (p *Prefs) MinGap() time.Duration {
	return time.Duration(p.MinGapMinutes) * time.Minute
}

// Normalize fills missing or out-of-range values with defaults so that
// partially filled preference files from older versions still behave.
func (p *Prefs) Normalize() {
	if p.MinGapMinutes < 0 {
		p.MinGapMinutes = defaultMinGapMinutes
	}
	if p.BookFilePath == "" {
		p.BookFilePath = "meetbook.json"
	}
}

// Load reads preferences from the given YAML path. A missing file is a
// first run: the default set is written to disk (creating parent
// directories) and returned.
func Load(path string) (*Prefs, error) {
	if path == "" {
		return nil, errors.New("prefs path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p := Default()
			if err := Save(path, p); err != nil {
				return p, err
			}
			return p, nil
		}
		return nil, err
	}

	p := &Prefs{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	p.Normalize()
	return p, nil
}

// Save writes preferences as YAML with 0600 permissions.
func Save(path string, p *Prefs) error {
	if path == "" {
		return errors.New("prefs path is empty")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
