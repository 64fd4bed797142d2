package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Each engine has its own translator. A translator accepts a tag's text
// only once.
var (
	bindingTrans ut.Translator

	standalone      *govalidator.Validate
	standaloneTrans ut.Translator
	standaloneOnce  sync.Once
)

// Setup registers the validator with English translations on Gin's binding engine.
// Call once during application startup.
func Setup() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		bindingTrans = configure(v)
	}
}

// configure sets json/form field naming on v and returns a fresh English
// translator registered for it.
func configure(v *govalidator.Validate) ut.Translator {
	// Field names in messages come from the json tag, then the form tag.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	return trans
}

// TranslateErrors takes a binding/validation error from Gin's engine and
// returns a map of field name → human-readable error message. If the error
// is not a validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	return translate(err, bindingTrans)
}

func translate(err error, trans ut.Translator) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fe.Namespace()
			if i := strings.Index(key, "."); i >= 0 {
				key = key[i+1:] // drop the root struct name
			}
			fields[key] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., a non-integer query parameter).
	fields["detail"] = err.Error()
	return fields
}

// BindQuery binds and validates query parameters into dst using form tags.
func BindQuery(c *gin.Context, dst any) map[string]string {
	if err := c.ShouldBindQuery(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// Struct validates s against its `validate` tags outside of a request.
func Struct(s any) map[string]string {
	standaloneOnce.Do(func() {
		standalone = govalidator.New(govalidator.WithRequiredStructEnabled())
		standaloneTrans = configure(standalone)
	})
	if err := standalone.Struct(s); err != nil {
		return translate(err, standaloneTrans)
	}
	return nil
}
