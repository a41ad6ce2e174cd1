// Package prompts holds the LLM prompt templates and their substitution.
// Placeholders use the {name} form so operator-supplied templates stay
// compatible with the ones requests may carry inline.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
)

var known = []string{Consolidation, Section, Chat}

// Store resolves named templates, preferring overrides loaded from a base
// URL over the built-in defaults.
type Store struct {
	fs        afs.Service
	overrides map[string]string
}

func NewStore() *Store {
	return &Store{fs: afs.New(), overrides: map[string]string{}}
}

// LoadURL looks for "<name>.tmpl" under base (file path, file:// or
// http(s):// URL) for every known template and records the ones present.
// Missing files keep their defaults.
func (s *Store) LoadURL(ctx context.Context, base string) error {
	for _, name := range known {
		u := strings.TrimSuffix(base, "/") + "/" + name + ".tmpl"
		ok, _ := s.fs.Exists(ctx, u)
		if !ok {
			continue
		}
		data, err := s.fs.DownloadWithURL(ctx, u)
		if err != nil {
			return fmt.Errorf("download template %s: %w", u, err)
		}
		s.overrides[name] = string(data)
	}
	return nil
}

// Get returns the template body for name, or empty for unknown names.
func (s *Store) Get(name string) string {
	if t, ok := s.overrides[name]; ok {
		return t
	}
	switch name {
	case Consolidation:
		return defaultConsolidation
	case Section:
		return defaultSection
	case Chat:
		return defaultChat
	}
	return ""
}

// Render substitutes {key} placeholders in tmpl. Unknown placeholders are
// left in place.
func Render(tmpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
