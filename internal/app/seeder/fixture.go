package seeder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is an inventory file: categories first, then tools that refer to
// their category by name.
type Fixture struct {
	Categories []CategoryFixture `yaml:"categories"`
	Tools      []ToolFixture     `yaml:"tools"`
}

// CategoryFixture is one category entry of a fixture.
type CategoryFixture struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	ColorHex    *string `yaml:"color_hex"`
}

// ToolFixture is one tool entry of a fixture.
type ToolFixture struct {
	Name             string   `yaml:"name"`
	Description      *string  `yaml:"description"`
	Vendor           string   `yaml:"vendor"`
	WebsiteURL       *string  `yaml:"website_url"`
	Category         string   `yaml:"category"`
	MonthlyCost      *float64 `yaml:"monthly_cost"`
	ActiveUsersCount *int     `yaml:"active_users_count"`
	OwnerDepartment  *string  `yaml:"owner_department"`
	Status           *string  `yaml:"status"`
}

// LoadFixture reads and decodes a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seeder: read fixture %s: %w", path, err)
	}
	fx, err := ParseFixture(raw)
	if err != nil {
		return nil, fmt.Errorf("seeder: %s: %w", path, err)
	}
	return fx, nil
}

// ParseFixture decodes a YAML fixture. Unknown keys are rejected so typos
// do not silently drop data.
func ParseFixture(raw []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	for i, c := range fx.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("categories[%d]: name is required", i)
		}
	}
	for i, t := range fx.Tools {
		if t.Category == "" {
			return nil, fmt.Errorf("tools[%d] (%s): category is required", i, t.Name)
		}
	}
	return &fx, nil
}
