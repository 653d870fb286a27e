package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalar(s string) Value { return Value{Items: []string{s}} }

func TestValidate_Passes(t *testing.T) {
	v := New()
	err := v.Validate(Input{
		Payload: Payload{
			"name":   scalar("Jane"),
			"email":  scalar("jane@x.com"),
			"age":    scalar("34"),
			"topics": {Items: []string{"go", "sql"}, List: true},
			"date":   scalar("2024-05-01"),
			"phone":  scalar("+90 (532) 123-45-67"),
		},
		Rules: Rules{
			"name":   "required|max:255",
			"email":  "required|email",
			"age":    "nullable|integer|between:18,99",
			"topics": "required|min:1|in:go,sql,rust",
			"date":   "date",
			"phone":  "phone",
			"note":   "max:10", // gönderilmemiş opsiyonel alan
		},
	})
	assert.NoError(t, err)
}

func TestValidate_CollectsPerFieldMessages(t *testing.T) {
	v := New()
	err := v.Validate(Input{
		Payload: Payload{
			"email": scalar("not-an-email"),
			"name":  scalar("   "),
			"age":   scalar("12"),
			"code":  scalar("AB-1"),
			"pick":  scalar("z"),
		},
		Rules: Rules{
			"email": "required|email",
			"name":  "required",
			"age":   "numeric|min:18",
			"code":  "regex:/^[a-z]+$/",
			"pick":  "in:a,b",
		},
		Messages:   Messages{"name.required": "Adınızı yazın."},
		Attributes: map[string]string{"email": "E-posta"},
	})

	var verrs *Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Adınızı yazın.", verrs.First("name"))
	assert.Equal(t, "E-posta alanı geçerli bir e-posta adresi olmalıdır.", verrs.First("email"))
	assert.Equal(t, "age alanı en az 18 olmalıdır.", verrs.First("age"))
	assert.Equal(t, "code alanının biçimi geçersiz.", verrs.First("code"))
	assert.Equal(t, "Seçilen pick geçersiz.", verrs.First("pick"))
	assert.Len(t, verrs.Fields(), 5)
}

func TestValidate_RequiredOnlyMessageWhenMissing(t *testing.T) {
	v := New()
	err := v.Validate(Input{
		Payload: Payload{},
		Rules:   Rules{"email": "required|email|max:5"},
	})
	var verrs *Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"email alanı zorunludur."}, verrs.Fields()["email"])
}

func TestValidate_ListSizeAndStringLength(t *testing.T) {
	v := New()
	err := v.Validate(Input{
		Payload: Payload{
			"topics": {Items: []string{"a", "b", "c"}, List: true},
			"city":   scalar("İstanbul"),
		},
		Rules: Rules{
			"topics": "max:2",
			"city":   "max:8|alpha",
		},
	})
	var verrs *Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "topics alanında en fazla 2 seçim yapılabilir.", verrs.First("topics"))
	// "İstanbul" 8 harf; rune sayılır
	assert.False(t, verrs.Has("city"))
}

func TestValidate_InvalidRuleExpression(t *testing.T) {
	v := New()
	err := v.Validate(Input{Rules: Rules{"x": "required|shiny"}})
	require.Error(t, err)
	var verrs *Errors
	assert.False(t, errors.As(err, &verrs))
}

func TestCheckRules(t *testing.T) {
	assert.NoError(t, CheckRules("required|email|max:255"))
	assert.NoError(t, CheckRules("nullable|regex:/^[0-9]{3}$/"))
	assert.Error(t, CheckRules("max:abc"))
	assert.Error(t, CheckRules("between:1"))
	assert.Error(t, CheckRules("in"))
	assert.Error(t, CheckRules("regex:/[/"))
	assert.Error(t, CheckRules("unknown_rule"))
}

func TestCheckRules_FractionalSizeNeedsNumeric(t *testing.T) {
	assert.Error(t, CheckRules("max:2.5"))
	assert.Error(t, CheckRules("between:1,2.5"))
	assert.Error(t, CheckRules("size:-1"))
	assert.NoError(t, CheckRules("numeric|max:2.5"))
	assert.NoError(t, CheckRules("between:0.5,9.5|integer"))
}

func TestValidate_FractionalSizeDoesNotPanic(t *testing.T) {
	v := New()

	assert.NotPanics(t, func() {
		err := v.Validate(Input{
			Payload: Payload{"name": scalar("abcdef")},
			Rules:   Rules{"name": "max:2.5"},
		})
		require.Error(t, err)
		var verrs *Errors
		assert.False(t, errors.As(err, &verrs))
	})

	assert.NotPanics(t, func() {
		err := v.Validate(Input{
			Payload: Payload{
				"price":  scalar("3"),
				"scores": {Items: []string{"1", "2", "3"}, List: true},
			},
			Rules: Rules{
				"price":  "numeric|max:2.5",
				"scores": "numeric|max:2.5",
			},
		})
		var verrs *Errors
		require.True(t, errors.As(err, &verrs))
		assert.True(t, verrs.Has("price"))
		assert.True(t, verrs.Has("scores"))
	})
}

func TestValidate_StringLengthCountsRunes(t *testing.T) {
	v := New()
	err := v.Validate(Input{
		Payload: Payload{"city": scalar("Şişli")},
		Rules:   Rules{"city": "size:5"},
	})
	assert.NoError(t, err)
}

func TestCheckRules_RegexWithAlternation(t *testing.T) {
	assert.NoError(t, CheckRules("required|regex:/^(evet|hayir)$/"))
	assert.Error(t, CheckRules("regex:/^[a-z]+$/|required"))

	v := New()
	rules := Rules{"answer": "required|regex:/^(evet|hayir)$/"}
	assert.NoError(t, v.Validate(Input{Payload: Payload{"answer": scalar("hayir")}, Rules: rules}))

	err := v.Validate(Input{Payload: Payload{"answer": scalar("belki")}, Rules: rules})
	var verrs *Errors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("answer"))
}

func TestErrors_JSON(t *testing.T) {
	e := NewFieldError("_form", "Form bulunamadı.")
	raw, err := e.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"_form":["Form bulunamadı."]}`, string(raw))
	assert.Contains(t, e.Error(), "Form bulunamadı.")
}
