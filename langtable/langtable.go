// Package langtable holds the fixed, order-sensitive language table used by
// multilingual strings, the header's language list, and rgninfo's
// "languages" field.
//
// The table's positional order is part of the wire format contract: a
// language id is a 6-bit index into exactly this slice, reproduced verbatim
// from coding/multilang_utf8_string.cpp. Never reorder or insert into the
// middle of this list.
package langtable

// Languages is the immutable, order-sensitive language table. Index 0 is
// always "default".
var Languages = []string{
	"default",
	"en", "ja", "fr", "ko_rm", "ar", "de", "int_name", "ru", "sv", "zh", "fi", "be", "ka", "ko",
	"he", "nl", "ga", "ja_rm", "el", "it", "es", "zh_pinyin", "th", "cy", "sr", "uk", "ca", "hu",
	"hsb", "eu", "fa", "br", "pl", "hy", "kn", "sl", "ro", "sq", "am", "fy", "cs", "gd", "sk",
	"af", "ja_kana", "lb", "pt", "hr", "fur", "vi", "tr", "bg", "eo", "lt", "la", "kk", "gsw",
	"et", "ku", "mn", "mk", "lv", "hi",
}

// Resolve returns the language tag for the given 6-bit index, and false if
// the index is outside the table. Callers drop unresolved entries rather
// than treating them as an error.
func Resolve(index int) (string, bool) {
	if index < 0 || index >= len(Languages) {
		return "", false
	}

	return Languages[index], true
}
