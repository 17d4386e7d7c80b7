// Package sitemeta holds the process-wide site configuration rendered by the
// views. It is loaded once at startup and treated as read-only afterwards.
package sitemeta

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rench/blog/status"
)

//go:embed site.yaml
var defaultMetadata []byte

type Metadata struct {
	Title       string `yaml:"title" validate:"required"`
	Author      string `yaml:"author"`
	HeaderTitle string `yaml:"headerTitle"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	SiteURL     string `yaml:"siteUrl" validate:"omitempty,url"`
	SiteRepo    string `yaml:"siteRepo" validate:"omitempty,url"`
	Email       string `yaml:"email" validate:"omitempty,email"`
	GitHub      string `yaml:"github" validate:"omitempty,url"`
	LinkedIn    string `yaml:"linkedin" validate:"omitempty,url"`
	Twitter     string `yaml:"twitter" validate:"omitempty,url"`
	CTFtime     string `yaml:"ctftime" validate:"omitempty,url"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the metadata compiled into the binary.
func Default() (Metadata, error) {
	return Parse(defaultMetadata)
}

func Load(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read site metadata %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Metadata, error) {
	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", status.ErrSiteMetadata, err)
	}
	if err := validate.Struct(meta); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", status.ErrSiteMetadata, err)
	}
	if meta.Language == "" {
		meta.Language = "en-us"
	}
	return meta, nil
}

// Lang is the document language derived from Language ("en-us" -> "en").
func (m Metadata) Lang() string {
	for i, r := range m.Language {
		if r == '-' || r == '_' {
			return m.Language[:i]
		}
	}
	return m.Language
}
