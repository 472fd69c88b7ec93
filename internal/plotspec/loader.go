package plotspec

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var validLines = map[string]bool{
	"":        true,
	"solid":   true,
	"dash":    true,
	"dashdot": true,
	"dot":     true,
}

// LoadFromFile reads and validates a spec YAML.
func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plot spec: %w", err)
	}
	return Parse(data)
}

// Parse validates a spec and fills unset fields with defaults.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse plot spec YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the configured values and applies defaults in place.
func (s *Spec) Validate() error {
	def := Default()

	if s.DataDir == "" {
		s.DataDir = def.DataDir
	}
	if s.OutDir == "" {
		s.OutDir = def.OutDir
	}
	if s.Scale == "" {
		s.Scale = def.Scale
	}
	switch s.Language {
	case "":
		s.Language = def.Language
	case "en", "zh":
	default:
		return fmt.Errorf("unsupported language %q (want en or zh)", s.Language)
	}

	if len(s.Algorithms) == 0 {
		s.Algorithms = def.Algorithms
	}
	seen := make(map[string]bool, len(s.Algorithms))
	for i, a := range s.Algorithms {
		if a.Name == "" {
			return fmt.Errorf("algorithm at index %d has no name", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("algorithm %q listed twice", a.Name)
		}
		seen[a.Name] = true
		if a.Color != "" && !hexColor.MatchString(a.Color) {
			return fmt.Errorf("algorithm %q has invalid color %q", a.Name, a.Color)
		}
		if !validLines[a.Line] {
			return fmt.Errorf("algorithm %q has invalid line style %q", a.Name, a.Line)
		}
		if a.Color == "" {
			s.Algorithms[i].Color = def.Lookup(a.Name).Color
		}
		if a.Line == "" {
			s.Algorithms[i].Line = def.Lookup(a.Name).Line
		}
	}
	return nil
}
