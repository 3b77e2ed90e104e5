package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"ecoparking/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

// decimalValue reads a decimal from a decimal.Decimal, *decimal.Decimal or string field.
func decimalValue(field reflect.Value) (decimal.Decimal, bool) {
	switch v := field.Interface().(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}

		return *v, true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}

		return d, true
	default:
		return decimal.Zero, false
	}
}

func compareDecimal(cmp func(value, limit decimal.Decimal) bool) val.Func {
	return func(fl val.FieldLevel) bool {
		value, ok := decimalValue(fl.Field())
		if !ok {
			return false
		}

		limit, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}

		return cmp(value, limit)
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}

		return nil
	}, decimal.Decimal{})

	rules := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"decimal_gt": compareDecimal(func(value, limit decimal.Decimal) bool {
			return value.GreaterThan(limit)
		}),
		"decimal_gte": compareDecimal(func(value, limit decimal.Decimal) bool {
			return value.GreaterThanOrEqual(limit)
		}),
		"decimal_lte": compareDecimal(func(value, limit decimal.Decimal) bool {
			return value.LessThanOrEqual(limit)
		}),
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
