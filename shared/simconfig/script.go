package simconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed battle.yaml
var defaultScriptYAML []byte

var (
	ErrUnknownPatternKind = errors.New("unknown pattern kind")
	ErrInvalidDuration    = errors.New("pattern duration must be positive")
	ErrFinaleOutOfRange   = errors.New("intermissionAfter out of range")
)

// NoIntermission disables the intermission dialogue.
const NoIntermission = -1

// Ending is the text shown for one ending. Lines, when present, are typed out
// before the ending screen appears.
type Ending struct {
	Title string   `yaml:"title"`
	Text  string   `yaml:"text"`
	Lines []string `yaml:"lines"`
}

// Endings holds the two branches reachable from Command Selection.
type Endings struct {
	Fight Ending `yaml:"fight"`
	Spare Ending `yaml:"spare"`
}

// Script is the authored, immutable content of one battle.
type Script struct {
	Patterns          []AttackPattern `yaml:"patterns"`
	IntermissionAfter int             `yaml:"intermissionAfter"`
	Opening           []string        `yaml:"opening"`
	Intermission      []string        `yaml:"intermission"`
	Endings           Endings         `yaml:"endings"`
}

// Pattern returns the pattern at index i.
func (s *Script) Pattern(i int) (AttackPattern, bool) {
	if s == nil || i < 0 || i >= len(s.Patterns) {
		return AttackPattern{}, false
	}
	return s.Patterns[i], true
}

// IsFinale reports whether the intermission follows pattern i.
func (s *Script) IsFinale(i int) bool {
	return s.IntermissionAfter != NoIntermission && i == s.IntermissionAfter
}

// Validate checks pattern kinds, durations and the finale index. An empty
// pattern list is valid; the battle then ends immediately.
func (s *Script) Validate() error {
	for i, p := range s.Patterns {
		if !p.Kind.Valid() {
			return fmt.Errorf("pattern %d (%q): %w: %q", i, p.Name, ErrUnknownPatternKind, p.Kind)
		}
		if p.DurationMS <= 0 {
			return fmt.Errorf("pattern %d (%q): %w, got %d", i, p.Name, ErrInvalidDuration, p.DurationMS)
		}
	}
	if len(s.Patterns) > 0 && s.IntermissionAfter != NoIntermission {
		if s.IntermissionAfter < 0 || s.IntermissionAfter >= len(s.Patterns) {
			return fmt.Errorf("%w: %d with %d patterns", ErrFinaleOutOfRange, s.IntermissionAfter, len(s.Patterns))
		}
	}
	return nil
}

// ParseScript decodes and validates a YAML battle script.
func ParseScript(data []byte) (*Script, error) {
	s := Script{IntermissionAfter: NoIntermission}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse battle script YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid battle script: %w", err)
	}
	return &s, nil
}

// LoadScript reads a YAML battle script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read battle script file: %w", err)
	}
	return ParseScript(data)
}

// DefaultScript returns the embedded battle script.
func DefaultScript() *Script {
	s, err := ParseScript(defaultScriptYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded battle script: %v", err))
	}
	return s
}
