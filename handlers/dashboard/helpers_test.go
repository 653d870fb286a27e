package handlers

import (
	"testing"

	"formyap.link/models"

	"github.com/stretchr/testify/assert"
)

func TestRestoreFormInput(t *testing.T) {
	form := &models.Form{Name: "Eski", IsActive: true}

	got := restoreFormInput(form, "[]", map[string]interface{}{
		"name":          "Yeni Ad",
		"code":          "yeni-ad",
		"fields_config": `[{"field_type":`,
	})

	assert.Equal(t, `[{"field_type":`, got)
	assert.Equal(t, "Yeni Ad", form.Name)
	assert.Equal(t, "yeni-ad", form.Code)
	assert.False(t, form.IsActive, "işaretlenmemiş kutu pasif döner")
}

func TestRestoreFormInput_NoData(t *testing.T) {
	form := &models.Form{Name: "Aynı"}
	assert.Equal(t, "[1]", restoreFormInput(form, "[1]", nil))
	assert.Equal(t, "Aynı", form.Name)
}
