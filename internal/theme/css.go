package theme

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// WriteCSS renders t as a :root rule the web panel can load as a stylesheet.
// Registered keys come first in registry order, unknown keys follow sorted.
// Keys that are not custom properties and empty values are skipped.
func WriteCSS(w io.Writer, r *Registry, t Theme) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, ":root {")
	for _, k := range cssOrder(r, t) {
		v := strings.TrimSpace(t[k])
		if v == "" || !strings.HasPrefix(k, "--") {
			continue
		}
		fmt.Fprintf(bw, "  %s: %s;\n", k, sanitizeCSSValue(v))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func cssOrder(r *Registry, t Theme) []string {
	keys := make([]string, 0, len(t))
	for _, k := range r.Keys() {
		if _, ok := t[k]; ok {
			keys = append(keys, k)
		}
	}
	for _, k := range t.Keys() {
		if !r.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// values end at the first declaration or block terminator
func sanitizeCSSValue(v string) string {
	if i := strings.IndexAny(v, ";{}"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	return v
}

// RenderCSS writes the effective theme plus any unregistered keys carried
// by the persisted theme.
func (s *Store) RenderCSS(ctx context.Context, w io.Writer) error {
	t := s.CurrentTheme()
	if saved, ok := s.SavedTheme(ctx); ok {
		for k, v := range saved {
			if !s.registry.Has(k) {
				t[k] = v
			}
		}
	}
	return WriteCSS(w, s.registry, t)
}
