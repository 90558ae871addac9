package core

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// Validate is the shared validator instance; custom domain tags are
	// registered against it at package init.
	Validate   *validator.Validate
	translator ut.Translator

	// custom validation tags & texts
	classLabelTag   = "classlabel"
	classLabelText  = "only alphanumeric characters, dashes and underscores are allowed"
	classLabelRegex = regexp.MustCompile(`^[\w-]+$`)

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(classLabelTag, classLabelValidation)
	RegisterCustomTranslation(classLabelTag, classLabelText)

	RegisterCustomTranslation(requiredTag, requiredText, true)
	RegisterCustomTranslation(requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateError converts validator.ValidationErrors into a ValidationError
// carrying translated per-field details. Any other error passes through as is.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		flds := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			flds = append(flds, FieldError{Field: fe.Field(), Error: fe.Translate(translator)})
		}
		return NewValidationError(err, flds...)
	}
	return err
}

// Custom Global Validators

// classLabelValidation only allows alphanumeric characters, dashes and underscores
// (class/cohort labels such as "9-A").
func classLabelValidation(fl validator.FieldLevel) bool {
	return classLabelRegex.MatchString(fl.Field().String())
}
