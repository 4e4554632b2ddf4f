package donation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Mode int

const (
	// Full requires every business field (create).
	Full Mode = iota
	// Partial checks only the fields supplied (update).
	Partial
)

const (
	FieldDonorName        = "donor_name"
	FieldDonationType     = "donation_type"
	FieldQuantityOrAmount = "quantity_or_amount"
	FieldDate             = "date"
)

// Fields is a validated field set. In Full mode every pointer is set;
// in Partial mode only the supplied fields are.
type Fields struct {
	DonorName        *string
	DonationType     *Type
	QuantityOrAmount *int64
	Date             *time.Time
}

type fieldValidator struct{ v *validator.Validate }

func newFieldValidator() *fieldValidator {
	return &fieldValidator{v: validator.New()}
}

var defaultValidator = newFieldValidator()

// Validate converts a decoded JSON object into a typed field set. It stops at
// the first invalid field, checking donor_name, donation_type,
// quantity_or_amount and date in that order. A nil value counts as absent.
func Validate(payload map[string]any, mode Mode) (Fields, error) {
	return defaultValidator.Validate(payload, mode)
}

var typeTag = func() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return "oneof=" + strings.Join(names, " ")
}()

func (val *fieldValidator) Validate(payload map[string]any, mode Mode) (Fields, error) {
	var out Fields

	name, err := val.str(payload, FieldDonorName, mode)
	if err != nil {
		return Fields{}, err
	}
	out.DonorName = name

	typ, err := val.str(payload, FieldDonationType, mode)
	if err != nil {
		return Fields{}, err
	}
	if typ != nil {
		if err := val.v.Var(*typ, typeTag); err != nil {
			return Fields{}, &ValidationError{Field: FieldDonationType, Reason: fmt.Sprintf("must be one of %v", Types)}
		}
		t := Type(*typ)
		out.DonationType = &t
	}

	qty, err := val.positiveInt(payload, FieldQuantityOrAmount, mode)
	if err != nil {
		return Fields{}, err
	}
	out.QuantityOrAmount = qty

	date, err := val.date(payload, mode)
	if err != nil {
		return Fields{}, err
	}
	out.Date = date

	return out, nil
}

func lookup(payload map[string]any, key string, mode Mode) (any, bool, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		if mode == Full {
			return nil, false, &ValidationError{Field: key, Missing: true}
		}
		return nil, false, nil
	}
	return v, true, nil
}

func (val *fieldValidator) str(payload map[string]any, key string, mode Mode) (*string, error) {
	raw, ok, err := lookup(payload, key, mode)
	if err != nil || !ok {
		return nil, err
	}
	s, isStr := raw.(string)
	if !isStr {
		return nil, &ValidationError{Field: key, Reason: "must be a non-empty string"}
	}
	s = strings.TrimSpace(s)
	if err := val.v.Var(s, "required"); err != nil {
		return nil, &ValidationError{Field: key, Reason: "must be a non-empty string"}
	}
	return &s, nil
}

func (val *fieldValidator) positiveInt(payload map[string]any, key string, mode Mode) (*int64, error) {
	raw, ok, err := lookup(payload, key, mode)
	if err != nil || !ok {
		return nil, err
	}
	n, isInt := asInt64(raw)
	if !isInt {
		return nil, &ValidationError{Field: key, Reason: "must be a positive integer"}
	}
	if err := val.v.Var(n, "min=1"); err != nil {
		return nil, &ValidationError{Field: key, Reason: "must be a positive integer"}
	}
	return &n, nil
}

func (val *fieldValidator) date(payload map[string]any, mode Mode) (*time.Time, error) {
	raw, ok, err := lookup(payload, FieldDate, mode)
	if err != nil || !ok {
		return nil, err
	}
	s, isStr := raw.(string)
	if !isStr {
		return nil, &ValidationError{Field: FieldDate, Reason: "must be a string in ISO format (YYYY-MM-DD)"}
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil, &ValidationError{Field: FieldDate, Reason: "must be a valid ISO date (YYYY-MM-DD)"}
	}
	return &d, nil
}

// asInt64 accepts integer JSON literals and Go integer kinds. Floats, numeric
// strings and booleans are not integers.
func asInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		return i, err == nil
	case bool, string, float32, float64:
		return 0, false
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > 1<<63-1 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}
