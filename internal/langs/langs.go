// Package langs holds the static language registry shown in both language
// pickers.
package langs

import (
	"strings"

	"golang.org/x/text/language"
)

// Auto is the input-only sentinel asking the endpoint to detect the source language.
const Auto = "auto"

// Option is one selectable language.
type Option struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Native string `json:"native"`
}

// Label is the text shown for the option in a picker.
func (o Option) Label() string {
	return o.Name + " (" + o.Native + ")"
}

var registry = []Option{
	{Code: Auto, Name: "Detect language", Native: "Auto"},
	{Code: "af", Name: "Afrikaans", Native: "Afrikaans"},
	{Code: "sq", Name: "Albanian", Native: "Shqip"},
	{Code: "am", Name: "Amharic", Native: "አማርኛ"},
	{Code: "ar", Name: "Arabic", Native: "العربية"},
	{Code: "hy", Name: "Armenian", Native: "Հայերեն"},
	{Code: "az", Name: "Azerbaijani", Native: "Azərbaycanca"},
	{Code: "eu", Name: "Basque", Native: "Euskara"},
	{Code: "be", Name: "Belarusian", Native: "Беларуская"},
	{Code: "bn", Name: "Bengali", Native: "বাংলা"},
	{Code: "bs", Name: "Bosnian", Native: "Bosanski"},
	{Code: "bg", Name: "Bulgarian", Native: "Български"},
	{Code: "ca", Name: "Catalan", Native: "Català"},
	{Code: "zh-CN", Name: "Chinese (Simplified)", Native: "简体中文"},
	{Code: "zh-TW", Name: "Chinese (Traditional)", Native: "繁體中文"},
	{Code: "hr", Name: "Croatian", Native: "Hrvatski"},
	{Code: "cs", Name: "Czech", Native: "Čeština"},
	{Code: "da", Name: "Danish", Native: "Dansk"},
	{Code: "nl", Name: "Dutch", Native: "Nederlands"},
	{Code: "en", Name: "English", Native: "English"},
	{Code: "eo", Name: "Esperanto", Native: "Esperanto"},
	{Code: "et", Name: "Estonian", Native: "Eesti"},
	{Code: "fi", Name: "Finnish", Native: "Suomi"},
	{Code: "fr", Name: "French", Native: "Français"},
	{Code: "gl", Name: "Galician", Native: "Galego"},
	{Code: "ka", Name: "Georgian", Native: "ქართული"},
	{Code: "de", Name: "German", Native: "Deutsch"},
	{Code: "el", Name: "Greek", Native: "Ελληνικά"},
	{Code: "gu", Name: "Gujarati", Native: "ગુજરાતી"},
	{Code: "he", Name: "Hebrew", Native: "עברית"},
	{Code: "hi", Name: "Hindi", Native: "हिन्दी"},
	{Code: "hu", Name: "Hungarian", Native: "Magyar"},
	{Code: "is", Name: "Icelandic", Native: "Íslenska"},
	{Code: "id", Name: "Indonesian", Native: "Bahasa Indonesia"},
	{Code: "ga", Name: "Irish", Native: "Gaeilge"},
	{Code: "it", Name: "Italian", Native: "Italiano"},
	{Code: "ja", Name: "Japanese", Native: "日本語"},
	{Code: "kn", Name: "Kannada", Native: "ಕನ್ನಡ"},
	{Code: "kk", Name: "Kazakh", Native: "Қазақ тілі"},
	{Code: "ko", Name: "Korean", Native: "한국어"},
	{Code: "lv", Name: "Latvian", Native: "Latviešu"},
	{Code: "lt", Name: "Lithuanian", Native: "Lietuvių"},
	{Code: "mk", Name: "Macedonian", Native: "Македонски"},
	{Code: "ms", Name: "Malay", Native: "Bahasa Melayu"},
	{Code: "ml", Name: "Malayalam", Native: "മലയാളം"},
	{Code: "mt", Name: "Maltese", Native: "Malti"},
	{Code: "mr", Name: "Marathi", Native: "मराठी"},
	{Code: "mn", Name: "Mongolian", Native: "Монгол"},
	{Code: "ne", Name: "Nepali", Native: "नेपाली"},
	{Code: "no", Name: "Norwegian", Native: "Norsk"},
	{Code: "fa", Name: "Persian", Native: "فارسی"},
	{Code: "pl", Name: "Polish", Native: "Polski"},
	{Code: "pt", Name: "Portuguese", Native: "Português"},
	{Code: "pa", Name: "Punjabi", Native: "ਪੰਜਾਬੀ"},
	{Code: "ro", Name: "Romanian", Native: "Română"},
	{Code: "ru", Name: "Russian", Native: "Русский"},
	{Code: "sr", Name: "Serbian", Native: "Српски"},
	{Code: "sk", Name: "Slovak", Native: "Slovenčina"},
	{Code: "sl", Name: "Slovenian", Native: "Slovenščina"},
	{Code: "es", Name: "Spanish", Native: "Español"},
	{Code: "sw", Name: "Swahili", Native: "Kiswahili"},
	{Code: "sv", Name: "Swedish", Native: "Svenska"},
	{Code: "ta", Name: "Tamil", Native: "தமிழ்"},
	{Code: "te", Name: "Telugu", Native: "తెలుగు"},
	{Code: "th", Name: "Thai", Native: "ไทย"},
	{Code: "tr", Name: "Turkish", Native: "Türkçe"},
	{Code: "uk", Name: "Ukrainian", Native: "Українська"},
	{Code: "ur", Name: "Urdu", Native: "اردو"},
	{Code: "uz", Name: "Uzbek", Native: "O'zbek"},
	{Code: "vi", Name: "Vietnamese", Native: "Tiếng Việt"},
	{Code: "cy", Name: "Welsh", Native: "Cymraeg"},
	{Code: "yi", Name: "Yiddish", Native: "ייִדיש"},
	{Code: "zu", Name: "Zulu", Native: "isiZulu"},
}

var byCode = func() map[string]Option {
	m := make(map[string]Option, len(registry))
	for _, o := range registry {
		m[o.Code] = o
	}
	return m
}()

// All returns a copy of the registry in display order, auto first.
func All() []Option {
	out := make([]Option, len(registry))
	copy(out, registry)
	return out
}

// Outputs returns the registry without the auto sentinel.
func Outputs() []Option {
	out := make([]Option, 0, len(registry)-1)
	for _, o := range registry {
		if o.Code != Auto {
			out = append(out, o)
		}
	}
	return out
}

// Lookup finds an option by code. Codes are matched after canonicalisation,
// so "pt_br" or "ZH-cn" resolve the same way as the registry spelling.
func Lookup(code string) (Option, bool) {
	if o, ok := byCode[code]; ok {
		return o, true
	}
	o, ok := byCode[Canonical(code)]
	return o, ok
}

// Canonical normalises a language code to the registry spelling.
// Unparseable input is returned lower-cased and trimmed.
func Canonical(code string) string {
	code = strings.TrimSpace(strings.ReplaceAll(code, "_", "-"))
	if code == "" || strings.EqualFold(code, Auto) {
		return strings.ToLower(code)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.Exact {
		if _, ok := byCode[base.String()+"-"+region.String()]; ok {
			return base.String() + "-" + region.String()
		}
	}
	if _, ok := byCode[base.String()]; ok {
		return base.String()
	}
	if base.String() == "zh" {
		return "zh-CN"
	}
	return tag.String()
}
