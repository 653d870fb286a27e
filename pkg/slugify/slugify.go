package slugify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ayrıştırma (NFD) ile düşmeyen harfler
var turkishReplacer = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g",
	"ç", "c", "Ç", "c",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
	"ß", "ss", "æ", "ae", "ø", "o", "đ", "d", "ł", "l",
)

// Make metni URL güvenli, küçük harfli ve tire ile ayrılmış bir koda çevirir.
// "İletişim Formu!" -> "iletisim-formu"
func Make(s string) string {
	s = turkishReplacer.Replace(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// IsValid kodun sadece küçük harf, rakam ve tekil tirelerden oluştuğunu doğrular.
func IsValid(code string) bool {
	return code != "" && Make(code) == code
}
