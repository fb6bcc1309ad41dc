package i18n

import (
	"context"
	"fmt"
	"sync"

	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/driversetu/driver-setu/pkg/storage"
)

// LanguageKey is the storage key owned by the Localizer
const LanguageKey = "@driver_setu_language"

// Localizer holds the active language and persists changes to it
type Localizer struct {
	store  storage.Store
	logger *logger.Logger

	mu        sync.RWMutex
	lang      Language
	listeners []func(Language)
}

// NewLocalizer starts in the default language
func NewLocalizer(store storage.Store, log *logger.Logger) *Localizer {
	return NewLocalizerWithDefault(store, log, Default)
}

// NewLocalizerWithDefault starts in initial until Hydrate finds a stored
// choice. An unsupported initial falls back to Default.
func NewLocalizerWithDefault(store storage.Store, log *logger.Logger, initial Language) *Localizer {
	if log == nil {
		log = logger.NewNop()
	}
	if !initial.IsSupported() {
		initial = Default
	}
	return &Localizer{store: store, logger: log.Named("i18n"), lang: initial}
}

// Hydrate restores the persisted language. Unknown codes and read errors
// leave the current language in place.
func (l *Localizer) Hydrate(ctx context.Context) {
	code, found, err := l.store.Get(ctx, LanguageKey)
	if err != nil {
		l.logger.Warn("Failed to load language", logger.Err(err))
		return
	}
	if !found {
		return
	}
	lang, err := Parse(code)
	if err != nil {
		l.logger.Warn("Ignoring stored language", logger.String("value", code))
		return
	}
	l.set(lang)
}

// SetLanguage switches the active language, then persists it
func (l *Localizer) SetLanguage(ctx context.Context, lang Language) error {
	if !lang.IsSupported() {
		return fmt.Errorf("set language: %w %q", ErrUnsupportedLanguage, lang)
	}
	l.set(lang)

	if err := l.store.Set(ctx, LanguageKey, string(lang)); err != nil {
		l.logger.Error("Failed to persist language", logger.String("language", string(lang)), logger.Err(err))
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}

// Language returns the active language
func (l *Localizer) Language() Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// T resolves key in the active language
func (l *Localizer) T(key string) string {
	return T(l.Language(), key)
}

// OnChange registers fn to run after every language switch
func (l *Localizer) OnChange(fn func(Language)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

func (l *Localizer) set(lang Language) {
	l.mu.Lock()
	l.lang = lang
	listeners := append([]func(Language){}, l.listeners...)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(lang)
	}
}
