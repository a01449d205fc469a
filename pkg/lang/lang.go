package lang

// Pivot is the common working language. All retrieval and generation happens
// in the pivot language; answers are localized back to the caller's language.
const Pivot = "en"

// supported maps the language codes honored for localization. Anything the
// detector reports outside this set is coerced to the pivot language.
var supported = map[string]string{
	"en":  "en",
	"hi":  "hi",
	"ne":  "ne",
	"mai": "mai",
}

// Normalize coerces a detected language code to the supported set,
// falling back to the pivot language for anything else.
func Normalize(code string) string {
	if lang, ok := supported[code]; ok {
		return lang
	}
	return Pivot
}

// IsSupported reports whether code is one of the honored languages.
func IsSupported(code string) bool {
	_, ok := supported[code]
	return ok
}
