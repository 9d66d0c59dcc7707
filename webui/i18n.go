package webui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Language is one of the UI languages offered in the switcher
type Language struct {
	Tag  language.Tag
	Code string
	Name string
}

var Languages = []Language{
	{language.English, "en", "English"},
	{language.French, "fr", "Français"},
	{language.Spanish, "es", "Español"},
	{language.German, "de", "Deutsch"},
	{language.Japanese, "ja", "日本語"},
	{language.Portuguese, "pt", "Português"},
	{language.Korean, "ko", "한국어"},
	{language.Russian, "ru", "Русский"},
}

var (
	messages = buildCatalog()
	matcher  = newMatcher()
)

func newMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(Languages))
	for _, l := range Languages {
		tags = append(tags, l.Tag)
	}
	return language.NewMatcher(tags)
}

func buildCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	english := translations[language.English]
	for _, l := range Languages {
		msgs := translations[l.Tag]
		for key, msg := range english {
			if translated, ok := msgs[key]; ok {
				msg = translated
			}
			if err := builder.SetString(l.Tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return builder
}

// MatchLanguage picks the UI language. An explicit lang param wins over the Accept-Language header,
// and fallback is used when neither names a language we have
func MatchLanguage(lang, acceptLanguage, fallback string) Language {
	var wanted []language.Tag
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 && acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			wanted = tags
		}
	}
	if len(wanted) > 0 {
		if _, index, confidence := matcher.Match(wanted...); confidence != language.No {
			return Languages[index]
		}
	}
	for _, l := range Languages {
		if l.Code == fallback {
			return l
		}
	}
	return Languages[0]
}

func newPrinter(l Language) *message.Printer {
	return message.NewPrinter(l.Tag, message.Catalog(messages))
}
