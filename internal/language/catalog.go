package language

import (
	"sort"
	"strings"
)

// Entry — язык, который умеет озвучивать TTS-движок.
type Entry struct {
	Code    string `json:"code"`
	TTSCode string `json:"tts_code"`
	Name    string `json:"name"`
}

// Коды у TTS-движка и у переводчика местами расходятся.
var aliases = map[string]string{
	"zh": "zh-CN",
	"pt": "pt",
	"he": "iw", // иврит
}

var names = map[string]string{
	"af": "Afrikaans",
	"ar": "Arabic",
	"bg": "Bulgarian",
	"bn": "Bengali",
	"ca": "Catalan",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"et": "Estonian",
	"fi": "Finnish",
	"fr": "French",
	"gu": "Gujarati",
	"he": "Hebrew",
	"hi": "Hindi",
	"hr": "Croatian",
	"hu": "Hungarian",
	"id": "Indonesian",
	"is": "Icelandic",
	"it": "Italian",
	"ja": "Japanese",
	"kn": "Kannada",
	"ko": "Korean",
	"lv": "Latvian",
	"ml": "Malayalam",
	"mr": "Marathi",
	"ms": "Malay",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sk": "Slovak",
	"sq": "Albanian",
	"sr": "Serbian",
	"sv": "Swedish",
	"sw": "Swahili",
	"ta": "Tamil",
	"te": "Telugu",
	"th": "Thai",
	"tl": "Filipino",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"ur": "Urdu",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// Что реально принимает TTS-движок. zh и he он знает только под алиасами.
var ttsSupported = func() map[string]bool {
	set := make(map[string]bool, len(names))
	for code := range names {
		if _, ok := aliases[code]; ok {
			set[aliases[code]] = true
			continue
		}
		set[code] = true
	}
	return set
}()

type Catalog struct {
	entries []Entry
	byCode  map[string]Entry
}

// NewCatalog строит таблицу один раз на старте; дальше только чтение.
func NewCatalog() *Catalog {
	entries := make([]Entry, 0, len(names))
	byCode := make(map[string]Entry, len(names))

	for code, name := range names {
		ttsCode, ok := pickTTSCode(code)
		if !ok {
			continue
		}
		e := Entry{Code: code, TTSCode: ttsCode, Name: name}
		entries = append(entries, e)
		byCode[code] = e
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})

	return &Catalog{entries: entries, byCode: byCode}
}

func pickTTSCode(code string) (string, bool) {
	if ttsSupported[code] {
		return code, true
	}
	if alias, ok := aliases[code]; ok && ttsSupported[alias] {
		return alias, true
	}
	return "", false
}

func (c *Catalog) Entries() []Entry {
	return c.entries
}

func (c *Catalog) Supported(code string) bool {
	_, ok := c.byCode[normalize(code)]
	return ok
}

// TTSCode возвращает код, который примет TTS-движок.
func (c *Catalog) TTSCode(code string) (string, bool) {
	e, ok := c.byCode[normalize(code)]
	if !ok {
		return "", false
	}
	return e.TTSCode, true
}

// TranslationCode возвращает код для движка перевода ("auto" не трогаем).
func (c *Catalog) TranslationCode(code string) string {
	code = normalize(code)
	if code == "auto" {
		return code
	}
	if alias, ok := aliases[code]; ok {
		return alias
	}
	return code
}

func (c *Catalog) Name(code string) string {
	if e, ok := c.byCode[normalize(code)]; ok {
		return e.Name
	}
	return code
}

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
