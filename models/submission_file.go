package models

// SubmissionFile gönderimle birlikte yüklenen ve nesne deposunda saklanan dosya.
type SubmissionFile struct {
	BaseModel
	SubmissionID uint   `gorm:"index;not null" json:"submission_id"`
	FileName     string `gorm:"type:varchar(255);not null" json:"file_name"` // Kullanıcının yüklediği ad
	DiskName     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"disk_name"`
	Bucket       string `gorm:"type:varchar(100);not null" json:"bucket"`
	ContentType  string `gorm:"type:varchar(150)" json:"content_type"`
	FileSize     int64  `json:"file_size"`
}
