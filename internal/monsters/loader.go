package monsters

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/rng"
	"gopkg.in/yaml.v3"
)

// MonsterDefinition is one entry of the monsters YAML file.
type MonsterDefinition struct {
	Key        string `yaml:"key"`
	Name       string `yaml:"name"`
	Glyph      string `yaml:"glyph"`
	HP         string `yaml:"hp"`
	ArmorClass int    `yaml:"armor_class"`
	Damage     string `yaml:"damage"`
	XP         int    `yaml:"xp"`
	MinDepth   int    `yaml:"min_depth"`
	MaxDepth   int    `yaml:"max_depth,omitempty"`
	Frequency  int    `yaml:"frequency"`
}

// MonstersFile is the layout of the monsters YAML file.
type MonstersFile struct {
	Monsters []MonsterDefinition `yaml:"monsters"`
}

// LoadFromYAML reads and validates a monsters file.
func LoadFromYAML(filename string) ([]Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read monsters file: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes monsters YAML. Unknown fields and bad dice fail.
func ParseTemplates(data []byte) ([]Template, error) {
	var file MonstersFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse monsters YAML: %w", err)
	}

	templates := make([]Template, 0, len(file.Monsters))
	for i, def := range file.Monsters {
		t, err := def.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("monster %d (%s): %w", i, def.Key, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// LoadOrDefault loads filename, or the built-in bestiary when the name is
// empty or the file is missing.
func LoadOrDefault(filename string) ([]Template, error) {
	if filename == "" {
		return DefaultTemplates(), nil
	}
	templates, err := LoadFromYAML(filename)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warning("monsters file not found, using built-in bestiary", "path", filename)
		return DefaultTemplates(), nil
	}
	return templates, err
}

func (def MonsterDefinition) toTemplate() (Template, error) {
	if def.Key == "" || def.Name == "" {
		return Template{}, errors.New("key and name are required")
	}
	glyph, size := utf8.DecodeRuneInString(def.Glyph)
	if glyph == utf8.RuneError || size != len(def.Glyph) {
		return Template{}, fmt.Errorf("glyph %q must be a single character", def.Glyph)
	}
	for _, notation := range []string{def.HP, def.Damage} {
		if _, err := rng.ParseDice(notation); err != nil {
			return Template{}, err
		}
	}
	if def.Frequency <= 0 {
		return Template{}, fmt.Errorf("frequency must be positive, got %d", def.Frequency)
	}
	if def.MaxDepth > 0 && def.MinDepth > def.MaxDepth {
		return Template{}, fmt.Errorf("min_depth %d exceeds max_depth %d", def.MinDepth, def.MaxDepth)
	}
	return Template{
		Key:        def.Key,
		Name:       def.Name,
		Glyph:      glyph,
		HP:         def.HP,
		ArmorClass: def.ArmorClass,
		Damage:     def.Damage,
		XP:         def.XP,
		MinDepth:   def.MinDepth,
		MaxDepth:   def.MaxDepth,
		Frequency:  def.Frequency,
	}, nil
}
