package domain

import "strings"

// Language is a supported practice language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages lists every language a learner can practice from or to.
// Generation prompts use Name; speech uses Code.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
	{Code: "th", Name: "Thai"},
}

// LookupLanguage finds a language by code (case-insensitive).
func LookupLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageName returns the display name for code, or code itself when unknown.
func LanguageName(code string) string {
	if l, ok := LookupLanguage(code); ok {
		return l.Name
	}
	return code
}
