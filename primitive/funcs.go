package primitive

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"propbind/utils"
)

func convertNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return src.Convert(dst), nil
}

// retype converts between a named type and its underlying type.
func retype(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return src.Convert(dst), nil
}

func formatNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	var text string

	switch {
	case src.CanInt():
		text = strconv.FormatInt(src.Int(), 10)
	case src.CanUint():
		text = strconv.FormatUint(src.Uint(), 10)
	default:
		text = strconv.FormatFloat(src.Float(), 'f', -1, src.Type().Bits())
	}

	return reflect.ValueOf(text).Convert(dst), nil
}

func parseNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	text := strings.TrimSpace(src.String())
	out := reflect.New(dst).Elem()

	switch {
	case out.CanInt():
		n, err := strconv.ParseInt(text, 10, dst.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetInt(n)
	case out.CanUint():
		n, err := strconv.ParseUint(text, 10, dst.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetUint(n)
	default:
		n, err := strconv.ParseFloat(text, dst.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetFloat(n)
	}

	return out, nil
}

// intToBool accepts only 0 and 1.
func intToBool(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	n := signed(src)
	if !utils.IsInRange(0, n, 1) {
		return reflect.Value{}, fmt.Errorf("only numbers 0 and 1 are allowed for bool, got: %v", src.Interface())
	}

	return reflect.ValueOf(n == 1).Convert(dst), nil
}

func boolToInt(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	out := reflect.New(dst).Elem()
	if !src.Bool() {
		return out, nil
	}

	if out.CanUint() {
		out.SetUint(1)
	} else {
		out.SetInt(1)
	}

	return out, nil
}

func parseBool(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	switch strings.ToLower(strings.TrimSpace(src.String())) {
	default:
		return reflect.Value{}, fmt.Errorf("only strings true/false, yes/no, on/off are allowed for bool, got: %q", src.String())
	case "true", "yes", "on":
		return reflect.ValueOf(true).Convert(dst), nil
	case "false", "no", "off":
		return reflect.ValueOf(false).Convert(dst), nil
	}
}

func formatBool(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(strconv.FormatBool(src.Bool())).Convert(dst), nil
}

func parseTime(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(src.String()))
	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(t), nil
}

func formatTime(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	t := src.Interface().(time.Time)
	return reflect.ValueOf(t.Format(time.RFC3339Nano)).Convert(dst), nil
}

func unixToTime(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(time.Unix(signed(src), 0)), nil
}

func timeToUnix(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return setSigned(src.Interface().(time.Time).Unix(), dst)
}

func parseDuration(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
	d, err := time.ParseDuration(strings.TrimSpace(src.String()))
	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(d), nil
}

func formatDuration(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(time.Duration(src.Int()).String()).Convert(dst), nil
}

func intToDuration(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(time.Duration(signed(src))), nil
}

func durationToInt(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return setSigned(src.Int(), dst)
}

func secondsToDuration(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(time.Duration(src.Float() * float64(time.Second))), nil
}

func durationToSeconds(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(time.Duration(src.Int()).Seconds()).Convert(dst), nil
}

// parseEnum fills a named type from text. encoding.TextUnmarshaler wins over
// a plain string conversion.
func parseEnum(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	text := src.String()
	out := reflect.New(dst)

	if u, ok := out.Interface().(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(text)); err != nil {
			return reflect.Value{}, err
		}

		return validEnum(out.Elem())
	}

	switch dst.Kind() {
	case reflect.String:
		out.Elem().SetString(text)
	default:
		// integer enums without a text form accept their numeric spelling
		n, err := parseNumber(reflect.ValueOf(text), dst)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%s has no textual form for %q", dst, text)
		}

		out.Elem().Set(n)
	}

	return validEnum(out.Elem())
}

func formatEnum(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(enumText(src)).Convert(dst), nil
}

func convertEnum(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	if isStringKind(src.Type()) == isStringKind(dst) {
		return validEnum(src.Convert(dst))
	}

	return parseEnum(reflect.ValueOf(enumText(src)), dst)
}

func enumText(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch {
	case v.Kind() == reflect.String:
		return v.String()
	case v.CanUint():
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return strconv.FormatInt(v.Int(), 10)
	}
}

func validEnum(v reflect.Value) (reflect.Value, error) {
	if checker, ok := v.Interface().(interface{ IsValid() bool }); ok && !checker.IsValid() {
		return reflect.Value{}, fmt.Errorf("%v is not a valid value for %s", v.Interface(), v.Type())
	}

	return v, nil
}

func isStringKind(t reflect.Type) bool {
	return t.Kind() == reflect.String
}

func signed(v reflect.Value) int64 {
	if v.CanUint() {
		return int64(v.Uint())
	}

	return v.Int()
}

func setSigned(n int64, dst reflect.Type) (reflect.Value, error) {
	out := reflect.New(dst).Elem()
	if out.OverflowInt(n) {
		return reflect.Value{}, fmt.Errorf("%d overflows %s", n, dst)
	}

	out.SetInt(n)

	return out, nil
}
