package turkishsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "iletisim", Fold("İLETİŞİM"))
	assert.Equal(t, "igdir", Fold("Iğdır"))
}

func TestSQLFilter(t *testing.T) {
	fragment, args := SQLFilter("forms.name", " Başvuru_%")
	assert.Contains(t, fragment, "lower(translate(forms.name,")
	assert.Contains(t, fragment, "LIKE ?")
	assert.Equal(t, []interface{}{`%basvuru\_\%%`}, args)
}
