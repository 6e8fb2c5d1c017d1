package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed messages/ar.json messages/en.json
var messagesFS embed.FS

// bundles распарсенные каталоги сообщений по локалям, загружаются один раз
// при старте процесса
var bundles = map[Locale]map[string]interface{}{}

func init() {
	for _, loc := range Locales {
		raw, err := messagesFS.ReadFile(fmt.Sprintf("messages/%s.json", loc))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing embedded catalog for locale %q: %v", loc, err))
		}
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			panic(fmt.Sprintf("i18n: malformed catalog for locale %q: %v", loc, err))
		}
		bundles[loc] = m
	}
}

// Translator разрешает ключи вида "booking.selectDate" по каталогу одной
// локали. Иммутабелен, безопасен для конкурентного использования.
type Translator struct {
	locale   Locale
	messages map[string]interface{}
}

// T возвращает Translator для локали. Неизвестная локаль получает каталог
// по умолчанию.
func T(locale Locale) *Translator {
	messages, ok := bundles[locale]
	if !ok {
		locale = DefaultLocale
		messages = bundles[DefaultLocale]
	}
	return &Translator{locale: locale, messages: messages}
}

// Locale локаль транслятора
func (t *Translator) Locale() Locale {
	return t.locale
}

// Resolve идёт по вложенному каталогу по сегментам ключа, разделённым точкой.
// Любой промах (нет сегмента, промежуточное значение не объект, лист не
// строка) возвращает сам ключ — он же является маркером "не найдено".
func (t *Translator) Resolve(key string) string {
	var current interface{} = t.messages

	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return key
		}
		current, ok = node[segment]
		if !ok {
			return key
		}
	}

	if s, ok := current.(string); ok {
		return s
	}
	return key
}
