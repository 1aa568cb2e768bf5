package i18n

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// registry holds catalogs registered at runtime, keyed by language tag.
// The matcher is rebuilt on every Register so Lookup stays lock-cheap.
var (
	registryMu   sync.RWMutex
	registryTags []language.Tag
	registryCats []*Catalog
	matcher      language.Matcher
)

// Register associates a catalog with a locale name such as "de", "de-DE",
// or "pt_BR" (underscores are accepted for gettext compatibility).
// Registering the same tag again replaces the previous catalog.
func Register(locale string, c *Catalog) error {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	for i, t := range registryTags {
		if t == tag {
			registryCats[i] = c
			return nil
		}
	}
	registryTags = append(registryTags, tag)
	registryCats = append(registryCats, c)
	matcher = language.NewMatcher(registryTags)
	return nil
}

// Lookup resolves a locale name to a registered catalog using language
// matching, so "de_AT" finds a catalog registered as "de". The boolean is
// false when nothing registered is an acceptable match; callers typically
// fall back to English.
func Lookup(locale string) (Provider, bool) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, false
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	if matcher == nil {
		return nil, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, false
	}
	return registryCats[idx], true
}
