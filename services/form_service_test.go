package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/validation"
	"formyap.link/repositories"
	"formyap.link/repositories/mock_repositories"
	"formyap.link/services"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func boolPtr(b bool) *bool { return &b }

func setupFormMocks(t *testing.T) (*services.FormService, *mock_repositories.MockIFormRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRepo := mock_repositories.NewMockIFormRepository(ctrl)
	mockTx := mock_repositories.NewMockITransactor(ctrl)
	mockTx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	return services.NewFormServiceWith(mockRepo, mockTx), mockRepo
}

func TestFormService_CreateForm(t *testing.T) {
	ctx := context.Background()

	t.Run("derives code and rebuilds fields in order", func(t *testing.T) {
		svc, repo := setupFormMocks(t)

		repo.EXPECT().ExistsByCode(gomock.Any(), "iletisim-formu", uint(0)).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f *models.Form) error {
			f.ID = 7
			return nil
		})
		var rebuilt []models.FormField
		repo.EXPECT().RebuildFields(gomock.Any(), uint(7), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, fields []models.FormField) error {
			rebuilt = fields
			return nil
		})

		form, err := svc.CreateForm(ctx, services.FormInput{Name: "İletişim Formu", IsActive: true}, []models.FieldConfig{
			{FieldType: models.FieldTypeText, Name: "name", Label: "Ad", IsRequired: true},
			{Label: "Adsız"},
			{FieldType: models.FieldTypeEmail, Name: "email", IsActive: boolPtr(false)},
		})
		require.NoError(t, err)
		assert.Equal(t, "iletisim-formu", form.Code)
		assert.Equal(t, models.DefaultSuccessMessage, form.SuccessMessage)
		assert.Equal(t, models.DefaultSubmitButtonText, form.SubmitButtonText)

		require.Len(t, rebuilt, 3)
		assert.Equal(t, "name", rebuilt[0].Name)
		assert.Equal(t, "field_1", rebuilt[1].Name)
		assert.Equal(t, models.FieldTypeText, rebuilt[1].FieldType)
		assert.Equal(t, 2, rebuilt[2].SortOrder)
		assert.False(t, rebuilt[2].IsActive)
		assert.Equal(t, 3, form.FieldsCount())
	})

	t.Run("name is required and limited", func(t *testing.T) {
		svc, _ := setupFormMocks(t)

		_, err := svc.CreateForm(ctx, services.FormInput{Name: "   "}, nil)
		assert.ErrorIs(t, err, services.ErrFormNameRequired)

		_, err = svc.CreateForm(ctx, services.FormInput{Name: strings.Repeat("ş", 256)}, nil)
		assert.ErrorIs(t, err, services.ErrFormNameTooLong)
	})

	t.Run("rejects invalid code and notify email", func(t *testing.T) {
		svc, _ := setupFormMocks(t)

		_, err := svc.CreateForm(ctx, services.FormInput{Name: "Test", Code: "Büyük Harf"}, nil)
		assert.ErrorIs(t, err, services.ErrInvalidFormCode)

		_, err = svc.CreateForm(ctx, services.FormInput{Name: "!!!"}, nil)
		assert.ErrorIs(t, err, services.ErrInvalidFormCode)

		_, err = svc.CreateForm(ctx, services.FormInput{Name: "Test", NotifyEmail: "yanlis"}, nil)
		assert.ErrorIs(t, err, services.ErrInvalidNotifyEmail)
	})

	t.Run("code taken", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().ExistsByCode(gomock.Any(), "geri-arama", uint(0)).Return(true, nil)

		_, err := svc.CreateForm(ctx, services.FormInput{Name: "Geri Arama"}, nil)
		assert.ErrorIs(t, err, services.ErrFormCodeTaken)
	})

	t.Run("unique index race maps to code taken", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().ExistsByCode(gomock.Any(), "geri-arama", uint(0)).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.CreateForm(ctx, services.FormInput{Name: "Geri Arama"}, nil)
		assert.ErrorIs(t, err, services.ErrFormCodeTaken)
	})

	t.Run("rebuild failure aborts creation", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().ExistsByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().RebuildFields(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := svc.CreateForm(ctx, services.FormInput{Name: "Test"}, []models.FieldConfig{{Name: "a"}})
		assert.ErrorIs(t, err, services.ErrFormCreationFailed)
	})

	t.Run("empty fields config yields no fields and no rules", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().ExistsByCode(gomock.Any(), "bos-form", uint(0)).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f *models.Form) error {
			f.ID = 3
			return nil
		})
		var rebuilt []models.FormField
		repo.EXPECT().RebuildFields(gomock.Any(), uint(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, fields []models.FormField) error {
			rebuilt = fields
			return nil
		})

		form, err := svc.CreateForm(ctx, services.FormInput{Name: "Boş Form", IsActive: true}, []models.FieldConfig{})
		require.NoError(t, err)
		require.NotNil(t, rebuilt)
		assert.Empty(t, rebuilt)
		assert.Empty(t, form.ActiveFields())
		assert.Empty(t, services.DeriveValidationRules(form))
	})
}

func TestValidateFieldsConfig(t *testing.T) {
	tests := []struct {
		name    string
		configs []models.FieldConfig
		wantErr error
	}{
		{"valid", []models.FieldConfig{
			{Name: "email", FieldType: models.FieldTypeEmail, ValidationRules: "required|email"},
			{Name: "topic", FieldType: models.FieldTypeSelect, Options: []models.FieldOption{{Value: "a", Label: "A"}}},
		}, nil},
		{"unknown type", []models.FieldConfig{{Name: "x", FieldType: "color"}}, services.ErrInvalidFieldConfig},
		{"duplicate name", []models.FieldConfig{{Name: "x"}, {Name: "x"}}, services.ErrInvalidFieldConfig},
		{"reserved name", []models.FieldConfig{{Name: "_form_code"}}, services.ErrInvalidFieldConfig},
		{"options missing", []models.FieldConfig{{Name: "r", FieldType: models.FieldTypeRadio}}, services.ErrInvalidFieldConfig},
		{"bad rule", []models.FieldConfig{{Name: "age", ValidationRules: "required|between:1"}}, services.ErrInvalidValidationRule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateFieldsConfig(tt.configs)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormService_UpdateForm(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().FindByID(gomock.Any(), uint(99)).Return(nil, repositories.ErrNotFound)

		_, err := svc.UpdateForm(ctx, 99, services.FormInput{Name: "x"}, nil)
		assert.ErrorIs(t, err, services.ErrFormNotFound)
	})

	t.Run("replaces all field rows", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		existing := &models.Form{
			BaseModel: models.BaseModel{ID: 3},
			Name:      "Eski",
			Code:      "eski",
			Fields:    []models.FormField{{Name: "old"}},
		}
		repo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(existing, nil)
		repo.EXPECT().ExistsByCode(gomock.Any(), "yeni-kod", uint(3)).Return(false, nil)
		repo.EXPECT().Update(gomock.Any(), existing).Return(nil)
		repo.EXPECT().RebuildFields(gomock.Any(), uint(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, fields []models.FormField) error {
			require.Len(t, fields, 1)
			assert.Equal(t, "phone", fields[0].Name)
			return nil
		})

		form, err := svc.UpdateForm(ctx, 3, services.FormInput{Name: "Yeni", Code: "yeni-kod"}, []models.FieldConfig{
			{Name: "phone", FieldType: models.FieldTypePhone},
		})
		require.NoError(t, err)
		assert.Equal(t, "yeni-kod", form.Code)
		assert.False(t, form.IsActive)
		require.Len(t, form.Fields, 1)
	})
}

func TestFormService_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive or missing form is not found", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().FindActiveByCode(gomock.Any(), "pasif").Return(nil, repositories.ErrNotFound)

		_, err := svc.GetActiveFormByCode(ctx, "pasif")
		assert.ErrorIs(t, err, services.ErrFormNotFound)

		_, err = svc.GetActiveFormByCode(ctx, "  ")
		assert.ErrorIs(t, err, services.ErrFormNotFound)
	})

	t.Run("active form options", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().FindAllOrderedByName(gomock.Any(), true).Return([]models.Form{
			{BaseModel: models.BaseModel{ID: 2}, Code: "a", Name: "Anket"},
			{BaseModel: models.BaseModel{ID: 1}, Code: "b", Name: "Başvuru"},
		}, nil)

		options, err := svc.ListActiveFormOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []services.FormOption{
			{ID: 2, Code: "a", Name: "Anket"},
			{ID: 1, Code: "b", Name: "Başvuru"},
		}, options)
	})

	t.Run("list is paginated", func(t *testing.T) {
		svc, repo := setupFormMocks(t)
		repo.EXPECT().FindAllPaginated(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p queryparams.ListParams) ([]models.Form, int64, error) {
			assert.Equal(t, queryparams.DefaultPerPage, p.PerPage)
			return []models.Form{{Name: "x"}}, 41, nil
		})

		result, err := svc.ListForms(ctx, queryparams.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Meta.TotalPages)
	})
}

func TestDeriveValidationRules(t *testing.T) {
	form := &models.Form{Fields: []models.FormField{
		{Name: "name", IsRequired: true, IsActive: true, ErrorMessage: "Adınızı yazın."},
		{Name: "email", ValidationRules: "required|email", IsRequired: true, IsActive: true},
		{Name: "note", IsActive: true},
		{Name: "old", IsRequired: true, IsActive: false},
		{Name: "city", ValidationRules: "max:10", IsRequired: true, IsActive: true},
		{Name: "backup_email", ValidationRules: "email", IsActive: true},
	}}

	rules := services.DeriveValidationRules(form)
	assert.Equal(t, validation.Rules{
		"name":         "required",
		"email":        "required|email",
		"city":         "max:10",
		"backup_email": "email",
	}, rules)
	// açık kural ifadesi is_required'dan bağımsız olarak aynen kullanılır
	assert.NotContains(t, rules["city"], "required")

	assert.Equal(t, validation.Messages{"name.required": "Adınızı yazın."}, services.DeriveValidationMessages(form))
	assert.Empty(t, services.DeriveValidationRules(nil))
}

func TestFormService_DeleteForms(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupFormMocks(t)

	n, err := svc.DeleteForms(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	repo.EXPECT().DeleteByIDs(gomock.Any(), []uint{1, 2}).Return(int64(2), nil)
	n, err = svc.DeleteForms(ctx, []uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	repo.EXPECT().DeleteByIDs(gomock.Any(), []uint{9}).Return(int64(0), nil)
	_, err = svc.DeleteForms(ctx, []uint{9})
	assert.ErrorIs(t, err, services.ErrFormNotFound)

	repo.EXPECT().DeleteByIDs(gomock.Any(), []uint{5}).Return(int64(0), errors.New("fk"))
	_, err = svc.DeleteForms(ctx, []uint{5})
	assert.ErrorIs(t, err, services.ErrFormDeletionFailed)
}
