package seeders

import (
	"context"
	_ "embed"
	"fmt"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/repositories"
	"formyap.link/services"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed forms.yaml
var formsYAML []byte

type seedOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type seedField struct {
	FieldType       string       `yaml:"field_type"`
	Name            string       `yaml:"name"`
	Label           string       `yaml:"label"`
	Placeholder     string       `yaml:"placeholder"`
	DefaultValue    string       `yaml:"default_value"`
	Options         []seedOption `yaml:"options"`
	ValidationRules string       `yaml:"validation_rules"`
	ErrorMessage    string       `yaml:"error_message"`
	HTMLContent     string       `yaml:"html_content"`
	IsRequired      bool         `yaml:"is_required"`
}

type seedForm struct {
	Name             string      `yaml:"name"`
	Code             string      `yaml:"code"`
	Description      string      `yaml:"description"`
	SuccessMessage   string      `yaml:"success_message"`
	ErrorMessage     string      `yaml:"error_message"`
	SubmitButtonText string      `yaml:"submit_button_text"`
	NotifyEmail      string      `yaml:"notify_email"`
	IsActive         bool        `yaml:"is_active"`
	Fields           []seedField `yaml:"fields"`
}

// parseSeedForms gömülü YAML'daki form tanımlarını okur.
func parseSeedForms(data []byte) ([]seedForm, error) {
	var forms []seedForm
	if err := yaml.Unmarshal(data, &forms); err != nil {
		return nil, fmt.Errorf("forms.yaml ayrıştırılamadı: %w", err)
	}
	return forms, nil
}

func (f seedForm) input() services.FormInput {
	return services.FormInput{
		Name:             f.Name,
		Code:             f.Code,
		Description:      f.Description,
		SuccessMessage:   f.SuccessMessage,
		ErrorMessage:     f.ErrorMessage,
		SubmitButtonText: f.SubmitButtonText,
		NotifyEmail:      f.NotifyEmail,
		IsActive:         f.IsActive,
	}
}

func (f seedForm) fieldsConfig() []models.FieldConfig {
	configs := make([]models.FieldConfig, 0, len(f.Fields))
	for _, sf := range f.Fields {
		cfg := models.FieldConfig{
			FieldType:       models.FieldType(sf.FieldType),
			Name:            sf.Name,
			Label:           sf.Label,
			Placeholder:     sf.Placeholder,
			DefaultValue:    sf.DefaultValue,
			ValidationRules: sf.ValidationRules,
			ErrorMessage:    sf.ErrorMessage,
			HTMLContent:     sf.HTMLContent,
			IsRequired:      sf.IsRequired,
		}
		for _, o := range sf.Options {
			cfg.Options = append(cfg.Options, models.FieldOption{Value: o.Value, Label: o.Label})
		}
		configs = append(configs, cfg)
	}
	return configs
}

// SeedForms örnek formları form servisi üzerinden oluşturur. Kodu mevcut olanlar atlanır.
func SeedForms(db *gorm.DB) error {
	forms, err := parseSeedForms(formsYAML)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo := repositories.NewFormRepositoryTx(db)
	formService := services.NewFormServiceWith(repo, repositories.NewTransactorWithDB(db))

	var createdCount int
	for _, sf := range forms {
		exists, err := repo.ExistsByCode(ctx, sf.Code, 0)
		if err != nil {
			configslog.Log.Error("Form kodu kontrol edilirken veritabanı hatası", zap.String("code", sf.Code), zap.Error(err))
			return err
		}
		if exists {
			configslog.SLog.Debugf("Form '%s' zaten mevcut, oluşturma atlanıyor.", sf.Code)
			continue
		}

		form, err := formService.CreateForm(ctx, sf.input(), sf.fieldsConfig())
		if err != nil {
			configslog.Log.Error("Örnek form oluşturulamadı", zap.String("code", sf.Code), zap.Error(err))
			return fmt.Errorf("form '%s' oluşturulamadı: %w", sf.Code, err)
		}
		configslog.SLog.Infof("Form '%s' oluşturuldu (ID: %d).", form.Code, form.ID)
		createdCount++
	}

	if createdCount == 0 {
		configslog.SLog.Info("Tüm örnek formlar zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
