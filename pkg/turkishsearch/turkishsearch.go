package turkishsearch

import (
	"strings"
)

const (
	turkishFrom = "İIıŞşĞğÇçÖöÜü"
	turkishTo   = "iiissggccoouu"
)

var folder = strings.NewReplacer(
	"İ", "i", "I", "i", "ı", "i",
	"Ş", "s", "ş", "s",
	"Ğ", "g", "ğ", "g",
	"Ç", "c", "ç", "c",
	"Ö", "o", "ö", "o",
	"Ü", "u", "ü", "u",
)

// Fold metni Türkçe harf farklarından arındırılmış küçük harfli hale getirir.
func Fold(s string) string {
	return strings.ToLower(folder.Replace(s))
}

// SQLFilter verilen sütunda Türkçe karakter duyarsız LIKE araması için
// SQL parçası ve argümanlarını döndürür (PostgreSQL translate).
func SQLFilter(column, term string) (string, []interface{}) {
	pattern := "%" + escapeLike(Fold(strings.TrimSpace(term))) + "%"
	fragment := "lower(translate(" + column + ", '" + turkishFrom + "', '" + turkishTo + "')) LIKE ?"
	return fragment, []interface{}{pattern}
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
