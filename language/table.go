// Copyright 2025 Caia Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package language

import "github.com/caiatech/lingua/internal/alphabet"

// table holds the per-language data record for all 75 supported
// languages. The unique-character sets are a representative subset
// sufficient for the rule engine's evidence pass, not an exhaustive
// linguistic survey.
var table = map[Language]info{
	Afrikaans:   {"Afrikaans", "af", "afr", latin, ""},
	Albanian:    {"Albanian", "sq", "sqi", latin, "ëç"},
	Arabic:      {"Arabic", "ar", "ara", []alphabet.Script{alphabet.Arabic}, ""},
	Armenian:    {"Armenian", "hy", "hye", []alphabet.Script{alphabet.Armenian}, ""},
	Azerbaijani: {"Azerbaijani", "az", "aze", latin, "əğıöşüçĞİÖŞÜÇ"},
	Basque:      {"Basque", "eu", "eus", latin, "ñ"},
	Belarusian:  {"Belarusian", "be", "bel", []alphabet.Script{alphabet.Cyrillic}, "ўі"},
	Bengali:     {"Bengali", "bn", "ben", []alphabet.Script{alphabet.Bengali}, ""},
	Bokmal:      {"Bokmal", "nb", "nob", latin, "æøå"},
	Bosnian:     {"Bosnian", "bs", "bos", latin, "ćčđšž"},
	Bulgarian:   {"Bulgarian", "bg", "bul", []alphabet.Script{alphabet.Cyrillic}, "ъ"},
	Catalan:     {"Catalan", "ca", "cat", latin, "çïŀ"},
	Chinese:     {"Chinese", "zh", "zho", []alphabet.Script{alphabet.Han}, ""},
	Croatian:    {"Croatian", "hr", "hrv", latin, "đ"},
	Czech:       {"Czech", "cs", "ces", latin, "ěřůĚŘŮ"},
	Danish:      {"Danish", "da", "dan", latin, "æø"},
	Dutch:       {"Dutch", "nl", "nld", latin, "ĳ"},
	English:     {"English", "en", "eng", latin, ""},
	Esperanto:   {"Esperanto", "eo", "epo", latin, "ĉĝĥĵŝŭ"},
	Estonian:    {"Estonian", "et", "est", latin, "õäöü"},
	Finnish:     {"Finnish", "fi", "fin", latin, "äö"},
	French:      {"French", "fr", "fra", latin, "œçàèùâêîôûëïü"},
	Ganda:       {"Ganda", "lg", "lug", latin, "ŋ"},
	Georgian:    {"Georgian", "ka", "kat", []alphabet.Script{alphabet.Georgian}, ""},
	German:      {"German", "de", "deu", latin, "ßäöü"},
	Greek:       {"Greek", "el", "ell", []alphabet.Script{alphabet.Greek}, ""},
	Gujarati:    {"Gujarati", "gu", "guj", []alphabet.Script{alphabet.Gujarati}, ""},
	Hebrew:      {"Hebrew", "he", "heb", []alphabet.Script{alphabet.Hebrew}, ""},
	Hindi:       {"Hindi", "hi", "hin", []alphabet.Script{alphabet.Devanagari}, ""},
	Hungarian:   {"Hungarian", "hu", "hun", latin, "őű"},
	Icelandic:   {"Icelandic", "is", "isl", latin, "þðæö"},
	Indonesian:  {"Indonesian", "id", "ind", latin, ""},
	Irish:       {"Irish", "ga", "gle", latin, "ḃċḋḟġṁṗṡṫ"},
	Italian:     {"Italian", "it", "ita", latin, "àèìòù"},
	Japanese:    {"Japanese", "ja", "jpn", []alphabet.Script{alphabet.Hiragana, alphabet.Katakana, alphabet.Han}, ""},
	Kazakh:      {"Kazakh", "kk", "kaz", []alphabet.Script{alphabet.Cyrillic}, "әғқңөұүһ"},
	Korean:      {"Korean", "ko", "kor", []alphabet.Script{alphabet.Hangul}, ""},
	Latin:       {"Latin", "la", "lat", latin, ""},
	Latvian:     {"Latvian", "lv", "lav", latin, "āčēģīķļņšūž"},
	Lithuanian:  {"Lithuanian", "lt", "lit", latin, "ąčęėįšųūž"},
	Macedonian:  {"Macedonian", "mk", "mkd", []alphabet.Script{alphabet.Cyrillic}, "ѓѕќ"},
	Malay:       {"Malay", "ms", "msa", latin, ""},
	Maori:       {"Maori", "mi", "mri", latin, "āēīōū"},
	Marathi:     {"Marathi", "mr", "mar", []alphabet.Script{alphabet.Devanagari}, ""},
	Mongolian:   {"Mongolian", "mn", "mon", []alphabet.Script{alphabet.Cyrillic}, "өү"},
	Nynorsk:     {"Nynorsk", "nn", "nno", latin, "æøå"},
	Persian:     {"Persian", "fa", "fas", []alphabet.Script{alphabet.Arabic}, ""},
	Polish:      {"Polish", "pl", "pol", latin, "ąćęłńóśźż"},
	Portuguese:  {"Portuguese", "pt", "por", latin, "ãõç"},
	Punjabi:     {"Punjabi", "pa", "pan", []alphabet.Script{alphabet.Gurmukhi}, ""},
	Romanian:    {"Romanian", "ro", "ron", latin, "ăâîșț"},
	Russian:     {"Russian", "ru", "rus", []alphabet.Script{alphabet.Cyrillic}, "ъы"},
	Serbian:     {"Serbian", "sr", "srp", []alphabet.Script{alphabet.Cyrillic}, "ђћ"},
	Shona:       {"Shona", "sn", "sna", latin, ""},
	Slovak:      {"Slovak", "sk", "slk", latin, "äľĺôŕ"},
	Slovene:     {"Slovene", "sl", "slv", latin, "čšž"},
	Somali:      {"Somali", "so", "som", latin, ""},
	Sotho:       {"Sotho", "st", "sot", latin, ""},
	Spanish:     {"Spanish", "es", "spa", latin, "ñ¿¡"},
	Swahili:     {"Swahili", "sw", "swa", latin, ""},
	Swedish:     {"Swedish", "sv", "swe", latin, "åäö"},
	Tagalog:     {"Tagalog", "tl", "tgl", latin, "ñ"},
	Tamil:       {"Tamil", "ta", "tam", []alphabet.Script{alphabet.Tamil}, ""},
	Telugu:      {"Telugu", "te", "tel", []alphabet.Script{alphabet.Telugu}, ""},
	Thai:        {"Thai", "th", "tha", []alphabet.Script{alphabet.Thai}, ""},
	Tsonga:      {"Tsonga", "ts", "tso", latin, ""},
	Tswana:      {"Tswana", "tn", "tsn", latin, ""},
	Turkish:     {"Turkish", "tr", "tur", latin, "ığşĞİÖŞÜ"},
	Ukrainian:   {"Ukrainian", "uk", "ukr", []alphabet.Script{alphabet.Cyrillic}, "ґєії"},
	Urdu:        {"Urdu", "ur", "urd", []alphabet.Script{alphabet.Arabic}, ""},
	Vietnamese:  {"Vietnamese", "vi", "vie", latin, "ăâđêôơưạảấầẩẫậắằẳẵặ"},
	Welsh:       {"Welsh", "cy", "cym", latin, "ŵŷ"},
	Xhosa:       {"Xhosa", "xh", "xho", latin, ""},
	Yoruba:      {"Yoruba", "yo", "yor", latin, "ẹọṣ"},
	Zulu:        {"Zulu", "zu", "zul", latin, ""},
}

var latin = []alphabet.Script{alphabet.Latin}
