// Package i18n resolves the translation keys carried by translatable
// components into localized message templates.
package i18n

import "sync"

// Translator retrieves the localized message template for a translation
// key. The second return reports whether the key is known for the locale.
type Translator interface {
	Translate(locale, key string) (string, bool)
}

// Registry is the built-in dictionary-based Translator. Message tables are
// registered per locale; lookups fall back to the configured fallback
// locale when the requested one has no entry.
type Registry struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
	fallback string
}

// NewRegistry returns an empty registry with "en" as the fallback locale.
func NewRegistry() *Registry {
	return &Registry{messages: map[string]map[string]string{}, fallback: "en"}
}

// Register stores a message template for key under locale.
func (r *Registry) Register(locale, key, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table := r.messages[locale]
	if table == nil {
		table = map[string]string{}
		r.messages[locale] = table
	}
	table[key] = message
}

// RegisterAll stores a whole message table for locale.
func (r *Registry) RegisterAll(locale string, messages map[string]string) {
	for key, message := range messages {
		r.Register(locale, key, message)
	}
}

// SetFallback switches the fallback locale.
func (r *Registry) SetFallback(locale string) {
	r.mu.Lock()
	r.fallback = locale
	r.mu.Unlock()
}

// Translate resolves key for locale, falling back to the fallback locale.
func (r *Registry) Translate(locale, key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if msg, ok := r.messages[locale][key]; ok {
		return msg, true
	}
	if msg, ok := r.messages[r.fallback][key]; ok {
		return msg, true
	}
	return "", false
}

var (
	mu      sync.RWMutex
	current Translator = NewRegistry()
)

// SetTranslator replaces the Translator implementation (not limited to the
// registry version). A nil value restores an empty registry.
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		current = NewRegistry()
		return
	}
	current = tr
}

// T resolves key for locale using the current Translator.
func T(locale, key string) (string, bool) {
	mu.RLock()
	tr := current
	mu.RUnlock()
	return tr.Translate(locale, key)
}
