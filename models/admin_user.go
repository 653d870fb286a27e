package models

// Yetki anahtarları
const (
	PermissionManageForms       = "manage_forms"
	PermissionManageSubmissions = "manage_submissions"
)

// AdminUser yönetim paneline giriş yapabilen kullanıcı.
type AdminUser struct {
	BaseModel
	Username             string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash         string `gorm:"type:varchar(255);not null"`
	CanManageForms       bool   `gorm:"not null"`
	CanManageSubmissions bool   `gorm:"not null"`
	IsActive             bool   `gorm:"not null;index"`
}

// HasPermission verilen yetki anahtarına sahip olup olmadığını söyler.
func (u *AdminUser) HasPermission(permission string) bool {
	if !u.IsActive {
		return false
	}
	switch permission {
	case PermissionManageForms:
		return u.CanManageForms
	case PermissionManageSubmissions:
		return u.CanManageSubmissions
	}
	return false
}
