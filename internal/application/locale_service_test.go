package application_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vcfranco/castpanel/internal/application"
	"github.com/vcfranco/castpanel/internal/i18n"
	"github.com/vcfranco/castpanel/locales"
)

func newService(t *testing.T) *application.LocaleService {
	t.Helper()
	catalogs, err := i18n.LoadFS(locales.Content)
	require.NoError(t, err)
	reg, err := i18n.NewRegistry(language.English, catalogs)
	require.NoError(t, err)
	return application.NewLocaleService(reg)
}

func TestListLocales(t *testing.T) {
	svc := newService(t)
	list := svc.ListLocales()
	require.Len(t, list, 3)
	require.Equal(t, "en", list[0].Tag)

	names := map[string]string{}
	for _, l := range list {
		require.NotEmpty(t, l.Name)
		names[l.Tag] = l.Name
	}
	require.Contains(t, strings.ToLower(names["pt-BR"]), "português")
	require.Contains(t, names["de"], "Deutsch")
}

func TestStrings_FallbackCompleted(t *testing.T) {
	svc := newService(t)

	table, err := svc.Strings("pt-BR")
	require.NoError(t, err)
	require.Equal(t, "Logar", table["button.login"])
	// untranslated key carries the reference string
	require.Equal(t, "Timezone", table["config.timezone"])

	enTable, err := svc.Strings("en")
	require.NoError(t, err)
	require.Len(t, table, len(enTable))
	require.Equal(t, "Sign in", enTable["button.login"])
}

func TestStrings_UnknownLocale(t *testing.T) {
	svc := newService(t)

	_, err := svc.Strings("fr")
	require.ErrorIs(t, err, application.ErrLocaleNotFound)

	_, err = svc.Strings("!!!")
	require.ErrorIs(t, err, application.ErrLocaleNotFound)
}

func TestResolve(t *testing.T) {
	svc := newService(t)
	require.Equal(t, "pt-BR", svc.Resolve("pt"))
	require.Equal(t, "de", svc.Resolve("de-AT,de;q=0.8"))
	require.Equal(t, "en", svc.Resolve(""))
}

func TestTranslate(t *testing.T) {
	svc := newService(t)
	require.Equal(t, "Ola Ana", svc.Translate("pt-BR", "message.greeting", map[string]any{"name": "Ana"}))
	require.Equal(t, "Hello {name}", svc.Translate("en", "message.greeting", nil))
	require.Equal(t, "missing.key", svc.Translate("pt-BR", "missing.key", nil))
}
