package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/driversetu/driver-setu/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestT_FallbackChain(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		key  string
		want string
	}{
		{"own translation", Hindi, "wallet", "वॉलेट"},
		{"falls back to default", Marathi, "withdrawRequest", "Withdrawal Request"},
		{"falls back to raw key", Hindi, "__nope__", "__nope__"},
		{"unknown language uses default", Language("fr"), "login", "Login"},
		{"default language", English, "sendOtp", "Send OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, T(tt.lang, tt.key))
		})
	}
}

func TestCatalog_TranslationsSubsetOfDefault(t *testing.T) {
	for lang, msgs := range catalog {
		for key := range msgs {
			_, ok := catalog[Default][key]
			assert.True(t, ok, "%s defines %q which the default language lacks", lang, key)
		}
	}
}

func TestMessages_MergesFallbacks(t *testing.T) {
	msgs := Messages(Marathi)
	assert.Equal(t, "वॉलेट", msgs["wallet"])
	assert.Equal(t, "Withdraw", msgs["withdraw"])
	assert.Len(t, msgs, len(catalog[Default]))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		header string
		want   Language
	}{
		{"hi-IN,hi;q=0.9,en;q=0.8", Hindi},
		{"mr", Marathi},
		{"en-US,en;q=0.9", English},
		{"fr-FR,fr;q=0.8", English},
		{"", English},
		{"!!", English},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.header))
		})
	}
}

func TestParse(t *testing.T) {
	l, err := Parse("mr")
	require.NoError(t, err)
	assert.Equal(t, Marathi, l)

	_, err = Parse("de")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

type failingStore struct{ storage.Store }

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("read-only")
}

func TestLocalizer_PersistsAndHydrates(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	log := logger.Wrap(zaptest.NewLogger(t))

	l := NewLocalizer(store, log)
	assert.Equal(t, English, l.Language())

	var seen []Language
	l.OnChange(func(lang Language) { seen = append(seen, lang) })

	require.NoError(t, l.SetLanguage(ctx, Hindi))
	assert.Equal(t, "लॉगिन", l.T("login"))
	assert.Equal(t, []Language{Hindi}, seen)

	fresh := NewLocalizer(store, log)
	fresh.Hydrate(ctx)
	assert.Equal(t, Hindi, fresh.Language())
}

func TestLocalizer_RejectsUnsupported(t *testing.T) {
	l := NewLocalizer(storage.NewMemoryStore(), nil)
	assert.ErrorIs(t, l.SetLanguage(context.Background(), "de"), ErrUnsupportedLanguage)
	assert.Equal(t, English, l.Language())
}

func TestLocalizer_IgnoresUnknownStoredCode(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, LanguageKey, "xx"))

	l := NewLocalizer(store, nil)
	l.Hydrate(ctx)
	assert.Equal(t, English, l.Language())
}

func TestLocalizer_MemoryUpdatedBeforePersistFailure(t *testing.T) {
	l := NewLocalizer(failingStore{storage.NewMemoryStore()}, nil)

	err := l.SetLanguage(context.Background(), Marathi)
	assert.Error(t, err)
	assert.Equal(t, Marathi, l.Language())
}

func TestLocalizer_ConfiguredDefault(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	l := NewLocalizerWithDefault(store, nil, Marathi)
	l.Hydrate(ctx)
	assert.Equal(t, Marathi, l.Language(), "nothing stored keeps the configured default")

	require.NoError(t, store.Set(ctx, LanguageKey, "hi"))
	l.Hydrate(ctx)
	assert.Equal(t, Hindi, l.Language())

	assert.Equal(t, English, NewLocalizerWithDefault(store, nil, "fr").Language())
}
