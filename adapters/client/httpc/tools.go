package httpc

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

type FormField struct {
	Key   string
	Value string
}

// Form is an ordered list of form fields. Unlike url.Values it
// keeps the insertion order when encoded.
type Form []FormField

func (f *Form) Add(key, value string) {
	*f = append(*f, FormField{Key: key, Value: value})
}

func (f *Form) Set(key, value string) {
	for i := range *f {
		if (*f)[i].Key == key {
			(*f)[i].Value = value
			return
		}
	}
	f.Add(key, value)
}

func (f Form) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

func (f Form) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

func (f Form) Encode() string {
	var sb strings.Builder

	for i, field := range f {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(field.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(field.Value))
	}

	return sb.String()
}

func (f Form) Values() url.Values {
	result := url.Values{}
	for _, field := range f {
		result.Add(field.Key, field.Value)
	}
	return result
}

// Masked returns a copy with the values of keys replaced by "***".
func (f Form) Masked(keys ...string) Form {
	result := make(Form, len(f))
	copy(result, f)

	for i := range result {
		for _, k := range keys {
			if result[i].Key == k {
				result[i].Value = "***"
			}
		}
	}

	return result
}

// Object2Form converts a struct into a Form following its `form` tags in field order.
// Nil pointers are skipped, `omitempty` skips zero values and `comma` joins slices
// into a single comma separated value.
func Object2Form(obj any) Form {
	result := Form{}

	v := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string
	var tagOpts []string
	var fValue reflect.Value
	var fType reflect.Type

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("form")
		if fieldTag == "" || fieldTag == "-" {
			continue
		}

		tagOpts = strings.Split(fieldTag, ",")
		tagName = tagOpts[0]
		tagOpts = tagOpts[1:]
		fValue = v.FieldByIndex(field.Index)
		fType = field.Type

		if fType.Kind() == reflect.Pointer {
			if fValue.IsNil() {
				continue
			}

			fValue = fValue.Elem()
			fType = fType.Elem()
		} else if hasTagOpt(tagOpts, "omitempty") && fValue.IsZero() {
			continue
		}

		switch fType.Kind() {
		case reflect.Slice, reflect.Array:
			strSlice := make([]string, fValue.Len())
			for i := 0; i < len(strSlice); i++ {
				strSlice[i] = formatValue(fValue.Index(i))
			}
			if hasTagOpt(tagOpts, "comma") {
				result.Add(tagName, strings.Join(strSlice, ","))
			} else {
				for _, s := range strSlice {
					result.Add(tagName, s)
				}
			}
		default:
			result.Add(tagName, formatValue(fValue))
		}
	}

	return result
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func hasTagOpt(opts []string, opt string) bool {
	for _, o := range opts {
		if o == opt {
			return true
		}
	}
	return false
}
