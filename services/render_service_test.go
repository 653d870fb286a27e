package services_test

import (
	"context"
	"strings"
	"testing"

	"formyap.link/models"
	"formyap.link/repositories"
	"formyap.link/services"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderService_RenderForm(t *testing.T) {
	formSvc, repo := setupFormMocks(t)
	svc, err := services.NewRenderService(formSvc, "/forms/submit")
	require.NoError(t, err)
	ctx := context.Background()

	form := &models.Form{
		Name:             "Bülten",
		Code:             "bulten",
		SubmitButtonText: "Abone Ol",
		CustomCSS:        ".x{}",
		IsActive:         true,
		Fields: []models.FormField{
			{BaseModel: models.BaseModel{ID: 2}, Name: "email", FieldType: models.FieldTypeEmail, IsActive: true, SortOrder: 1},
			{BaseModel: models.BaseModel{ID: 1}, Name: "name", FieldType: models.FieldTypeText, IsActive: true, SortOrder: 0},
			{BaseModel: models.BaseModel{ID: 3}, Name: "secret", FieldType: models.FieldTypeText, IsActive: false, SortOrder: 2},
		},
	}

	t.Run("defaults to modal", func(t *testing.T) {
		repo.EXPECT().FindActiveByCode(gomock.Any(), "bulten").Return(form, nil)
		out, err := svc.RenderForm(ctx, "bulten", services.RenderOptions{})
		require.NoError(t, err)
		html := string(out.HTML)

		assert.Equal(t, "modal", out.Mode)
		assert.Contains(t, html, `id="callbackModal"`)
		assert.Contains(t, html, `<style data-form-css="bulten">`)
		assert.Contains(t, html, `action="/forms/submit"`)
		assert.NotContains(t, html, `name="secret"`)
		assert.Less(t, strings.Index(html, `name="name"`), strings.Index(html, `name="email"`))
	})

	t.Run("inline with custom modal id ignored", func(t *testing.T) {
		repo.EXPECT().FindActiveByCode(gomock.Any(), "bulten").Return(form, nil)
		out, err := svc.RenderForm(ctx, "bulten", services.RenderOptions{Mode: "inline", ModalID: "m1"})
		require.NoError(t, err)
		assert.Equal(t, "inline", out.Mode)
		assert.NotContains(t, string(out.HTML), `id="m1"`)
	})

	t.Run("missing form", func(t *testing.T) {
		repo.EXPECT().FindActiveByCode(gomock.Any(), "yok").Return(nil, repositories.ErrNotFound)
		_, err := svc.RenderForm(ctx, "yok", services.RenderOptions{})
		assert.ErrorIs(t, err, services.ErrFormNotFound)
	})
}
