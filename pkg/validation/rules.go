package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kural ifadeleri "required|email|max:255" biçimindedir.
type rule struct {
	name   string
	params []string
}

// Parametre almayan ya da işlevsiz (işaretleyici) kurallar
var markerRules = map[string]bool{
	"nullable":  true,
	"sometimes": true,
	"string":    true,
	"array":     true,
	"bail":      true,
}

// Kural adı -> beklenen parametre sayısı (-1: en az bir)
var knownRules = map[string]int{
	"required":  0,
	"email":     0,
	"url":       0,
	"numeric":   0,
	"integer":   0,
	"alpha":     0,
	"alpha_num": 0,
	"date":      0,
	"phone":     0,
	"min":       1,
	"max":       1,
	"size":      1,
	"between":   2,
	"in":        -1,
	"not_in":    -1,
	"regex":     1,
	"same":      1,
}

// parseRules ifadeyi ayrıştırır. regex kuralı son kural olmalıdır: kalıp "|"
// içerebileceği için regex'ten sonraki her şey kalıba dahil edilir.
func parseRules(expr string) ([]rule, error) {
	var out []rule
	tokens := strings.Split(expr, "|")
	for i := 0; i < len(tokens); i++ {
		token := strings.TrimSpace(tokens[i])
		if token == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(token), "regex:") {
			token = strings.TrimSpace(strings.Join(tokens[i:], "|"))
			i = len(tokens)
		}
		name, rawParams, hasParams := strings.Cut(token, ":")
		name = strings.ToLower(strings.TrimSpace(name))
		if markerRules[name] {
			continue
		}
		want, ok := knownRules[name]
		if !ok {
			return nil, fmt.Errorf("bilinmeyen doğrulama kuralı: %q", name)
		}

		var params []string
		if hasParams {
			if name == "regex" {
				params = []string{rawParams}
			} else {
				for _, p := range strings.Split(rawParams, ",") {
					params = append(params, strings.TrimSpace(p))
				}
			}
		}

		switch {
		case want == -1 && len(params) == 0:
			return nil, fmt.Errorf("%q kuralı en az bir parametre ister", name)
		case want >= 0 && len(params) != want:
			return nil, fmt.Errorf("%q kuralı %d parametre ister", name, want)
		}

		switch name {
		case "min", "max", "size", "between":
			for _, p := range params {
				if _, err := strconv.ParseFloat(p, 64); err != nil {
					return nil, fmt.Errorf("%q kuralı için sayısal parametre gerekli: %q", name, p)
				}
			}
		case "regex":
			if _, err := compilePattern(params[0]); err != nil {
				return nil, fmt.Errorf("geçersiz regex: %w", err)
			}
		}

		out = append(out, rule{name: name, params: params})
	}

	// numeric/integer yoksa min/max/size/between karakter ya da seçim sayısıdır
	if !hasRule(out, "numeric", "integer") {
		for _, r := range out {
			if !isSizeRule(r.name) {
				continue
			}
			for _, p := range r.params {
				if n, err := strconv.Atoi(p); err != nil || n < 0 {
					return nil, fmt.Errorf("%q kuralı sayısal olmayan alanlarda tam sayı ister: %q", r.name, p)
				}
			}
		}
	}
	return out, nil
}

func isSizeRule(name string) bool {
	switch name {
	case "min", "max", "size", "between":
		return true
	}
	return false
}

// CheckRules kural ifadesinin ayrıştırılabilir olduğunu doğrular.
// Form kaydedilirken hatalı kuralları erken yakalamak için kullanılır.
func CheckRules(expr string) error {
	_, err := parseRules(expr)
	return err
}

// compilePattern "/^[a-z]+$/i" gibi sınırlayıcılı kalıpları da kabul eder.
func compilePattern(p string) (*regexp.Regexp, error) {
	if len(p) >= 2 && p[0] == '/' {
		if end := strings.LastIndex(p, "/"); end > 0 {
			flags := p[end+1:]
			body := p[1:end]
			if strings.Trim(flags, "i") != "" {
				return nil, fmt.Errorf("desteklenmeyen regex bayrağı: %q", flags)
			}
			if strings.Contains(flags, "i") {
				body = "(?i)" + body
			}
			return regexp.Compile(body)
		}
	}
	return regexp.Compile(p)
}

func hasRule(rules []rule, names ...string) bool {
	for _, r := range rules {
		for _, n := range names {
			if r.name == n {
				return true
			}
		}
	}
	return false
}
