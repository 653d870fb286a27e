package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	handlers "formyap.link/handlers/public"
	"formyap.link/pkg/validation"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderService struct{}

func (fakeRenderService) RenderForm(ctx context.Context, code string, opts services.RenderOptions) (*services.RenderedForm, error) {
	return nil, services.ErrFormNotFound
}

type fakeSubmissionService struct {
	services.ISubmissionService
	got       services.SubmitInput
	fileBytes map[string]string
	result    *services.SubmitResult
	err       error
}

func (f *fakeSubmissionService) Submit(ctx context.Context, input services.SubmitInput) (*services.SubmitResult, error) {
	f.got = input
	f.fileBytes = map[string]string{}
	for name, uploads := range input.Files {
		for _, u := range uploads {
			b, _ := io.ReadAll(u.Reader)
			f.fileBytes[name+"/"+u.FileName] = string(b)
		}
	}
	return f.result, f.err
}

type submitResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func newPublicApp(subs *fakeSubmissionService) *fiber.App {
	app := fiber.New()
	h := handlers.NewFormHandler(fakeRenderService{}, subs)
	app.Get("/forms/:code", h.ShowForm)
	app.Post("/forms/submit", h.Submit)
	return app
}

func decode(t *testing.T, resp *http.Response) submitResponse {
	t.Helper()
	var out submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSubmit_URLEncoded(t *testing.T) {
	subs := &fakeSubmissionService{result: &services.SubmitResult{Success: true, Message: "Teşekkürler!"}}
	app := newPublicApp(subs)

	body := url.Values{
		"_form_code": {"callback"},
		"name":       {"Ayşe"},
		"topics[]":   {"fiyat", "destek"},
	}
	req := httptest.NewRequest(http.MethodPost, "/forms/submit", strings.NewReader(body.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderUserAgent, "test-agent")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode(t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, "Teşekkürler!", out.Message)

	assert.Equal(t, "callback", subs.got.FormCode)
	assert.Equal(t, []string{"Ayşe"}, subs.got.Values["name"])
	assert.Equal(t, []string{"fiyat", "destek"}, subs.got.Values["topics"])
	assert.NotContains(t, subs.got.Values, "_form_code")
	assert.Equal(t, "test-agent", subs.got.UserAgent)
}

func TestSubmit_MultipartWithFiles(t *testing.T) {
	subs := &fakeSubmissionService{result: &services.SubmitResult{Success: true, Message: "Tamam"}}
	app := newPublicApp(subs)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("_form_code", "basvuru"))
	require.NoError(t, w.WriteField("email", "a@b.com"))
	part, err := w.CreateFormFile("cv", "cv.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("özgeçmiş"))
	part, err = w.CreateFormFile("files[]", "ek.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("ek"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/forms/submit", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "basvuru", subs.got.FormCode)
	assert.Equal(t, []string{"a@b.com"}, subs.got.Values["email"])
	assert.Equal(t, "özgeçmiş", subs.fileBytes["cv/cv.txt"])
	assert.Equal(t, "ek", subs.fileBytes[services.GenericFilesKey+"/ek.txt"])
}

func TestSubmit_ValidationError(t *testing.T) {
	verrs := validation.NewErrors()
	verrs.Add("email", "E-posta alanı zorunludur.")
	subs := &fakeSubmissionService{err: verrs}
	app := newPublicApp(subs)

	req := httptest.NewRequest(http.MethodPost, "/forms/submit", strings.NewReader("_form_code=callback"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	out := decode(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "Lütfen formdaki hataları düzeltin.", out.Message)
	assert.Equal(t, []string{"E-posta alanı zorunludur."}, out.Errors["email"])
}

func TestSubmit_PersistenceError(t *testing.T) {
	tests := []struct {
		name   string
		result *services.SubmitResult
		want   string
	}{
		{"form error message", &services.SubmitResult{Message: "Kaydedilemedi, tekrar deneyin."}, "Kaydedilemedi, tekrar deneyin."},
		{"generic message", nil, "Bir hata oluştu. Lütfen daha sonra tekrar deneyin."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := &fakeSubmissionService{result: tt.result, err: errors.New("db down")}
			app := newPublicApp(subs)

			req := httptest.NewRequest(http.MethodPost, "/forms/submit", strings.NewReader("_form_code=callback"))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			out := decode(t, resp)
			assert.False(t, out.Success)
			assert.Equal(t, tt.want, out.Message)
		})
	}
}

func TestShowForm_NotFound(t *testing.T) {
	app := newPublicApp(&fakeSubmissionService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/forms/yok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
