package items

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/rng"
	"gopkg.in/yaml.v3"
)

// ItemDefinition is one entry of the items YAML file.
type ItemDefinition struct {
	Key       string `yaml:"key"`
	Name      string `yaml:"name"`
	Sprite    string `yaml:"sprite,omitempty"`
	Category  string `yaml:"category"`
	Rarity    string `yaml:"rarity"`
	PowerTier string `yaml:"power_tier,omitempty"`
	MinDepth  int    `yaml:"min_depth,omitempty"`
	MaxDepth  int    `yaml:"max_depth,omitempty"`

	// Category-specific fields
	Damage     string `yaml:"damage,omitempty"`
	TwoHanded  bool   `yaml:"two_handed,omitempty"`
	ArmorClass int    `yaml:"armor_class,omitempty"`
	Subtype    string `yaml:"subtype,omitempty"`
	Charges    string `yaml:"charges,omitempty"`
	Power      string `yaml:"power,omitempty"`
	Nutrition  int    `yaml:"nutrition,omitempty"`
}

// ItemsFile is the layout of the items YAML file. Entries are a sequence so
// template order, and therefore generation, is stable.
type ItemsFile struct {
	Items []ItemDefinition `yaml:"items"`
}

// LoadTemplatesFromYAML reads and validates an items file. Unknown fields,
// categories, rarities, tiers and subtypes are all errors.
func LoadTemplatesFromYAML(filename string) (*TemplateSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes items YAML into a TemplateSet.
func ParseTemplates(data []byte) (*TemplateSet, error) {
	var file ItemsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}

	seen := make(map[string]bool, len(file.Items))
	templates := make([]Template, 0, len(file.Items))
	for i, def := range file.Items {
		tmpl, err := def.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, def.Key, err)
		}
		if seen[tmpl.Key] {
			return nil, fmt.Errorf("item %d: duplicate key %q", i, tmpl.Key)
		}
		seen[tmpl.Key] = true
		templates = append(templates, tmpl)
	}
	return NewTemplateSet(templates), nil
}

// LoadTemplatesOrDefault loads filename, falling back to DefaultTemplates when
// the name is empty or the file does not exist. A file that exists but fails
// to parse is still an error.
func LoadTemplatesOrDefault(filename string) (*TemplateSet, error) {
	if filename == "" {
		return NewTemplateSet(DefaultTemplates()), nil
	}
	set, err := LoadTemplatesFromYAML(filename)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warning("items file not found, using built-in templates", "path", filename)
		return NewTemplateSet(DefaultTemplates()), nil
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded item templates", "path", filename, "count", set.Len())
	return set, nil
}

func (def ItemDefinition) toTemplate() (Template, error) {
	if def.Key == "" {
		return Template{}, errors.New("missing key")
	}
	if def.Name == "" {
		return Template{}, errors.New("missing name")
	}
	category, err := ParseCategory(def.Category)
	if err != nil {
		return Template{}, err
	}
	rarity, err := ParseRarity(def.Rarity)
	if err != nil {
		return Template{}, err
	}
	tier, err := ParsePowerTier(def.PowerTier)
	if err != nil {
		return Template{}, err
	}
	if def.MaxDepth > 0 && def.MinDepth > def.MaxDepth {
		return Template{}, fmt.Errorf("min_depth %d exceeds max_depth %d", def.MinDepth, def.MaxDepth)
	}

	t := Template{
		Key:        def.Key,
		Name:       def.Name,
		Sprite:     def.Sprite,
		Category:   category,
		Rarity:     rarity,
		Tier:       tier,
		MinDepth:   def.MinDepth,
		MaxDepth:   def.MaxDepth,
		Damage:     def.Damage,
		TwoHanded:  def.TwoHanded,
		ArmorClass: def.ArmorClass,
		Charges:    def.Charges,
		Power:      def.Power,
		Nutrition:  def.Nutrition,
	}
	if t.Sprite == "" {
		t.Sprite = def.Key
	}

	for _, notation := range []string{def.Damage, def.Charges, def.Power} {
		if notation == "" {
			continue
		}
		if _, err := rng.ParseDice(notation); err != nil {
			return Template{}, err
		}
	}

	switch category {
	case Weapon:
		if def.Damage == "" {
			return Template{}, errors.New("weapon requires damage")
		}
	case Potion:
		t.Potion, err = ParsePotionType(def.Subtype)
	case Scroll:
		t.Scroll, err = ParseScrollType(def.Subtype)
	case Ring:
		t.Ring, err = ParseRingType(def.Subtype)
	case Wand:
		t.Wand, err = ParseWandType(def.Subtype)
	case Torch, Lantern, Artifact, OilFlask, Amulet:
		return Template{}, fmt.Errorf("%w: %s items are not template driven", ErrUnknownCategory, category)
	}
	if err != nil {
		return Template{}, err
	}
	return t, nil
}
