package mbTools

import (
	"os"
	"os/signal"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/supernova0730/mbsms/mbErrs"
)

var (
	validate = validator.New()

	msisdnRegexp  = regexp.MustCompile(`^[1-9][0-9]{6,15}$`)
	numericRegexp = regexp.MustCompile(`^[0-9]+$`)
)

const (
	MaxNumericSenderLen = 16
	MaxAlphaSenderLen   = 11
)

func NormalizeMsisdn(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "+") {
		p = p[1:]
	} else if strings.HasPrefix(p, "00") {
		p = p[2:]
	}
	return p
}

func ValidateMsisdn(v string) bool {
	return msisdnRegexp.MatchString(v)
}

// ValidateSender reports whether v fits the vendor limits:
// up to 16 digits or up to 11 characters of text.
func ValidateSender(v string) bool {
	if v == "" {
		return false
	}
	if numericRegexp.MatchString(v) {
		return len(v) <= MaxNumericSenderLen
	}
	return len([]rune(v)) <= MaxAlphaSenderLen
}

// ValidateUrl accepts absolute urls, the same rule as the `url` binding tag.
func ValidateUrl(v string) bool {
	return validate.Var(v, "required,url") == nil
}

// ParseBool accepts only the literal "true" and "false".
func ParseBool(v string) (bool, error) {
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, mbErrs.WithDesc(mbErrs.InvalidArgument, "expected a boolean, got "+strconv.Quote(v))
}

func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func NewPtr[T any](v T) *T {
	return &v
}

func SliceHasValue[T comparable](sl []T, v T) bool {
	for _, x := range sl {
		if x == v {
			return true
		}
	}

	return false
}

func StopSignal() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	return ch
}

func SetViperDefaultsFromObj(obj any) {
	v := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("mapstructure")
		if fieldTag == "" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]

		viper.SetDefault(tagName, "")
	}
}
