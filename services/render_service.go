package services

import (
	"context"
	"fmt"
	"html/template"

	"formyap.link/configs/configslog"
	"formyap.link/pkg/formrender"

	"go.uber.org/zap"
)

// RenderOptions formun sayfada nasıl gösterileceği. Boş alanlar varsayılanlara düşer.
type RenderOptions struct {
	Mode    string
	ModalID string
}

// RenderedForm render edilmiş form ve sayfa başlığı için gereken bilgiler.
type RenderedForm struct {
	Code    string
	Name    string
	Mode    string
	ModalID string
	HTML    template.HTML
}

type IRenderService interface {
	RenderForm(ctx context.Context, code string, opts RenderOptions) (*RenderedForm, error)
}

type RenderService struct {
	formService IFormService
	renderer    *formrender.Renderer
	submitURL   string
}

// NewRenderService gömülü alan şablonlarını yükler.
func NewRenderService(formService IFormService, submitURL string) (IRenderService, error) {
	r, err := formrender.New()
	if err != nil {
		return nil, err
	}
	return &RenderService{formService: formService, renderer: r, submitURL: submitURL}, nil
}

// RenderForm aktif formu aktif alanlarıyla render eder. Form yoksa ya da pasifse ErrFormNotFound.
func (s *RenderService) RenderForm(ctx context.Context, code string, opts RenderOptions) (*RenderedForm, error) {
	form, err := s.formService.GetActiveFormByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	renderOpts := formrender.Options{
		Mode:      opts.Mode,
		ModalID:   opts.ModalID,
		SubmitURL: s.submitURL,
	}.Normalize()

	html, err := s.renderer.RenderForm(form, form.ActiveFields(), renderOpts)
	if err != nil {
		configslog.Log.Error("RenderService.RenderForm: şablon hatası", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("form render edilemedi: %w", err)
	}
	return &RenderedForm{
		Code:    form.Code,
		Name:    form.Name,
		Mode:    renderOpts.Mode,
		ModalID: renderOpts.ModalID,
		HTML:    html,
	}, nil
}

var _ IRenderService = (*RenderService)(nil)
