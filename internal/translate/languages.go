package translate

import (
	"github.com/pemistahl/lingua-go"

	"github.com/thywilljoshua/docanalyzer/internal/locale"
)

// Language is a supported translation target.
type Language struct {
	Code string
	// NameKey is the locale key for the display name.
	NameKey string
	lingua  lingua.Language
}

// Languages is the fixed set of target languages, in display order.
var Languages = []Language{
	{"es", "languages.spanish", lingua.Spanish},
	{"fr", "languages.french", lingua.French},
	{"de", "languages.german", lingua.German},
	{"it", "languages.italian", lingua.Italian},
	{"pt", "languages.portuguese", lingua.Portuguese},
	{"ru", "languages.russian", lingua.Russian},
	{"ja", "languages.japanese", lingua.Japanese},
	{"ko", "languages.korean", lingua.Korean},
	{"zh", "languages.chinese", lingua.Chinese},
	{"ar", "languages.arabic", lingua.Arabic},
	{"hi", "languages.hindi", lingua.Hindi},
	{"nl", "languages.dutch", lingua.Dutch},
	{"sv", "languages.swedish", lingua.Swedish},
	{"no", "languages.norwegian", lingua.Bokmal},
	{"da", "languages.danish", lingua.Danish},
}

// LookupLanguage finds a supported language by code.
func LookupLanguage(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Name is the display name of l as resolved by t.
func (l Language) Name(t locale.Func) string {
	return t(l.NameKey, nil)
}
