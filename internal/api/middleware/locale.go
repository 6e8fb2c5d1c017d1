package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/brightdental/booking-web/internal/i18n"
)

type contextKey string

const localeKey contextKey = "locale"

// Locale извлекает локаль из path-переменной {locale} и кладет её в контекст
// запроса. Маршрут ограничивает значения до ar|en, но на случай прямого
// вызова без mux переменная валидируется ещё раз.
func Locale() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, ok := i18n.Parse(mux.Vars(r)["locale"])
			if !ok {
				locale = i18n.DefaultLocale
			}
			ctx := context.WithValue(r.Context(), localeKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromRequest возвращает локаль запроса из контекста.
// Вне локализованного поддерева действует локаль по умолчанию.
func LocaleFromRequest(r *http.Request) i18n.Locale {
	if locale, ok := r.Context().Value(localeKey).(i18n.Locale); ok {
		return locale
	}
	return i18n.DefaultLocale
}

// RedirectMissingLocale обрабатывает запросы вне локализованного поддерева:
// путь без префикса /ar или /en получает временный редирект на вариант с
// локалью, выведенной из Accept-Language. Запрос, уже несущий префикс
// локали, сюда попадает только если маршрут не существует, и получает 404.
func RedirectMissingLocale(log Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasLocalePrefix(r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		locale := i18n.MatchAccept(r.Header.Get("Accept-Language"))
		target := "/" + locale.String() + r.URL.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		log.Info("redirecting %s to localized path %s", r.URL.Path, target)
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

func hasLocalePrefix(path string) bool {
	for _, locale := range i18n.Locales {
		prefix := "/" + locale.String()
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
