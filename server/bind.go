package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kbukum/svcerrors/errors"
	"github.com/kbukum/svcerrors/validation"
)

func init() {
	binding.Validator = structValidator{}
}

// structValidator routes gin binding through the shared validation engine,
// so request structs use `validate` tags and json names in issue paths.
// Slices and arrays are validated element by element like gin's default
// validator does.
type structValidator struct{}

func (structValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return validation.Engine().Struct(obj)
	case reflect.Slice, reflect.Array:
		return validation.Engine().Var(v.Interface(), "dive")
	default:
		return nil
	}
}

func (structValidator) Engine() any {
	return validation.Engine()
}

// Bind decodes the request part named by ctx into dst and validates it.
// Decoding and validation failures are returned as a
// RequestDataValidationError located in ctx.
func Bind(c *gin.Context, ctx errors.Context, dst any) error {
	var err error
	switch ctx {
	case errors.ContextBody:
		err = c.ShouldBindJSON(dst)
	case errors.ContextQuery:
		err = c.ShouldBindQuery(dst)
	case errors.ContextPath:
		err = c.ShouldBindUri(dst)
	case errors.ContextHeader:
		err = c.ShouldBindHeader(dst)
	case errors.ContextCookie:
		err = bindCookies(c, dst)
	default:
		return fmt.Errorf("bind: unsupported request context %q", ctx)
	}
	return bindError(err, ctx)
}

func bindCookies(c *gin.Context, dst any) error {
	form := make(map[string][]string)
	for _, cookie := range c.Request.Cookies() {
		form[cookie.Name] = append(form[cookie.Name], cookie.Value)
	}
	if err := binding.MapFormWithTag(dst, form, "cookie"); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(dst)
}

// bindError classifies a binding failure. Every failure is the client's
// input, so all of them become a RequestDataValidationError.
func bindError(err error, ctx errors.Context) error {
	if err == nil {
		return nil
	}

	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)
	switch {
	case stderrors.As(err, &verrs):
		return validation.FromValidator(verrs, ctx)
	case stderrors.As(err, &typeErr):
		return errors.RequestDataValidation([]errors.Issue{{
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			Path:    jsonFieldPath(typeErr.Field),
		}}, ctx)
	case stderrors.As(err, &syntaxErr), stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.RequestDataValidation([]errors.Issue{{
			Message: "Malformed JSON " + string(ctx) + ".",
			Path:    []any{},
		}}, ctx)
	case stderrors.Is(err, io.EOF):
		return errors.RequestDataValidation([]errors.Issue{{
			Message: "Request " + string(ctx) + " is required.",
			Path:    []any{},
		}}, ctx)
	case stderrors.As(err, &numErr):
		return errors.RequestDataValidation([]errors.Issue{{
			Message: fmt.Sprintf("%q is not a valid number", numErr.Num),
			Path:    []any{},
		}}, ctx)
	default:
		return errors.RequestDataValidation(nil, ctx)
	}
}

// jsonFieldPath splits encoding/json's dotted field path, turning array
// indices into ints.
func jsonFieldPath(field string) []any {
	path := validation.ParsePath(field)
	for i, seg := range path {
		if s, ok := seg.(string); ok {
			if n, err := strconv.Atoi(s); err == nil {
				path[i] = n
			}
		}
	}
	return path
}
