// Package collation derives locale-aware sort keys for display names.
package collation

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bnema/fontview/internal/application/port"
)

// Collator implements port.Collator with golang.org/x/text/collate.
type Collator struct {
	mu  sync.Mutex
	c   *collate.Collator
	buf collate.Buffer
	tag language.Tag
}

// New creates a collator for the given locale (e.g. "de_DE.UTF-8" or "fr-CA").
// An empty or unparsable locale uses the root collation order.
func New(locale string) *Collator {
	tag := ParseLocale(locale)
	return &Collator{
		c:   collate.New(tag),
		tag: tag,
	}
}

// NewFromEnv creates a collator for the process locale.
func NewFromEnv() *Collator {
	return New(EnvLocale())
}

// Tag returns the language used for collation.
func (c *Collator) Tag() language.Tag {
	return c.tag
}

// Key implements port.Collator. The returned string is an opaque byte sequence.
func (c *Collator) Key(s string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := string(c.c.KeyFromString(&c.buf, s))
	c.buf.Reset()
	return key
}

// EnvLocale returns the collation locale from LC_ALL, LC_COLLATE or LANG.
func EnvLocale() string {
	for _, name := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ParseLocale converts a POSIX locale name to a language tag.
// "C" and "POSIX" map to the root locale.
func ParseLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

var _ port.Collator = (*Collator)(nil)
