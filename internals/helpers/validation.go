package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

var (
	validate     *validator.Validate
	translator   ut.Translator
	validateOnce sync.Once
)

type patchValuer interface {
	validationValue() any
}

func initValidator() {
	validate = validator.New()

	// pakai nama json supaya pesan error cocok dengan payload klien
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if pv, ok := field.Interface().(patchValuer); ok {
			return pv.validationValue()
		}
		return nil
	},
		PatchField[string]{},
		PatchField[bool]{},
		PatchField[int]{},
		PatchField[uint]{},
	)

	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ = uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("register validator translations: %v", err))
	}
}

func Validator() *validator.Validate {
	validateOnce.Do(initValidator)
	return validate
}

// ValidateStruct menjalankan aturan `validate` pada DTO dan mengumpulkan
// seluruh pelanggaran. Tag `errmsg` pada field menimpa pesan bawaan.
func ValidateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg := customMessage(v, fe)
		if msg == "" {
			msg = fe.Translate(translator)
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

func customMessage(v any, fe validator.FieldError) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	f, ok := t.FieldByName(fe.StructField())
	if !ok {
		return ""
	}
	return f.Tag.Get("errmsg")
}

// BindAndValidate: parse body JSON lalu validasi.
func BindAndValidate(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return NewValidationError("body", "invalid request body")
	}
	return ValidateStruct(req)
}

// ParseID memvalidasi path param sebagai bilangan bulat positif.
func ParseID(c *fiber.Ctx, param string) (uint, error) {
	raw := strings.TrimSpace(c.Params(param))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, NewValidationError(param, param+" must be a positive integer")
	}
	return uint(id), nil
}
