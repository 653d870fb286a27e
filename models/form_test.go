package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestListTypes_OrderAndOptions(t *testing.T) {
	types := ListTypes()
	require.Len(t, types, 13)
	assert.Equal(t, FieldTypeText, types[0].Type)
	assert.Equal(t, FieldTypeHTML, types[len(types)-1].Type)

	for _, ft := range types {
		want := ft.Type == FieldTypeSelect || ft.Type == FieldTypeRadio || ft.Type == FieldTypeCheckbox
		assert.Equal(t, want, NeedsOptions(ft.Type), ft.Type)
		assert.True(t, ft.Type.IsValid())
	}
	assert.False(t, FieldType("signature").IsValid())
	assert.False(t, IsCaptured(FieldTypeHTML))
	assert.False(t, IsCaptured(FieldTypeFile))
	assert.True(t, IsCaptured(FieldTypeHidden))
}

func TestForm_BuildFieldsAppliesDefaultsAndOrder(t *testing.T) {
	form := &Form{
		BaseModel: BaseModel{ID: 7},
		FieldsConfig: []FieldConfig{
			{Name: "email", FieldType: FieldTypeEmail, IsRequired: true},
			{Label: "İsimsiz"},
			{Name: "secret", FieldType: FieldTypeHidden, IsActive: boolPtr(false)},
		},
	}

	fields := form.BuildFields()

	require.Len(t, fields, 3)
	for i, f := range fields {
		assert.Equal(t, i, f.SortOrder)
		require.NotNil(t, f.FormID)
		assert.Equal(t, uint(7), *f.FormID)
	}
	assert.Equal(t, "field_1", fields[1].Name)
	assert.Equal(t, FieldTypeText, fields[1].FieldType)
	assert.True(t, fields[1].IsActive)
	assert.False(t, fields[2].IsActive)
	assert.True(t, fields[0].IsRequired)
}

func TestForm_ActiveFieldsSorted(t *testing.T) {
	form := &Form{Fields: []FormField{
		{Name: "c", SortOrder: 2, IsActive: true},
		{Name: "a", SortOrder: 0, IsActive: true},
		{Name: "b", SortOrder: 1, IsActive: false},
	}}
	active := form.ActiveFields()
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Name)
	assert.Equal(t, "c", active[1].Name)
}

func TestForm_ApplyDefaults(t *testing.T) {
	form := &Form{SuccessMessage: "Sağ olun"}
	form.ApplyDefaults()
	assert.Equal(t, "Sağ olun", form.SuccessMessage)
	assert.Equal(t, DefaultErrorMessage, form.ErrorMessage)
	assert.Equal(t, DefaultSubmitButtonText, form.SubmitButtonText)
}

func TestFormField_HTMLHelpers(t *testing.T) {
	field := FormField{
		BaseModel: BaseModel{ID: 3},
		Name:      "email",
		CustomAttributes: []CustomAttribute{
			{Attribute: "data-x", Value: `a"b`},
			{Attribute: " ", Value: "skip"},
			{Attribute: "autocomplete", Value: "email"},
		},
	}
	assert.Equal(t, "field_3_email", field.InputID())
	assert.Equal(t, `data-x="a&#34;b" autocomplete="email"`, field.AttributesHTML())
	assert.Equal(t, "email", field.DisplayLabel())
}

func TestAdminUser_HasPermission(t *testing.T) {
	u := &AdminUser{IsActive: true, CanManageForms: true}
	assert.True(t, u.HasPermission(PermissionManageForms))
	assert.False(t, u.HasPermission(PermissionManageSubmissions))

	u.IsActive = false
	assert.False(t, u.HasPermission(PermissionManageForms))
}
