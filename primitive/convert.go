package primitive

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotConvertible   = errors.New("primitive: no conversion path")
	ErrConversionFailed = errors.New("primitive: conversion failed")
	ErrDoublePointer    = errors.New("primitive: double pointers are not supported")
)

// CanConvert reports whether values of type src can be converted to dst with
// the allowed categories. A true result does not guarantee that every value
// converts: "abc" is a string but not a number.
func CanConvert(src, dst reflect.Type, allowed CategoryEnum) bool {
	if src == nil || dst == nil {
		return false
	}

	if src.AssignableTo(dst) {
		return true
	}

	srcDepth, srcBase := ptrDepthAndBase(src)
	dstDepth, dstBase := ptrDepthAndBase(dst)

	if srcDepth > 1 || dstDepth > 1 {
		return false
	}

	if srcBase.AssignableTo(dstBase) {
		return true
	}

	_, ok := lookup(srcBase, dstBase, allowed)

	return ok
}

// Convert converts value to dst. The convertibility check and the
// conversion happen in the same call.
//
// Errors match ErrNotConvertible when the types have no conversion path and
// ErrConversionFailed when the path exists but this particular value could
// not be converted.
func Convert(value any, dst reflect.Type, allowed CategoryEnum) (any, error) {
	if dst == nil {
		return nil, fmt.Errorf("%w: nil destination type", ErrNotConvertible)
	}

	if value == nil {
		if nillable(dst) {
			return reflect.Zero(dst).Interface(), nil
		}

		return nil, fmt.Errorf("%w: nil to %s", ErrNotConvertible, dst)
	}

	out, err := ConvertValue(reflect.ValueOf(value), dst, allowed)
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

// ConvertValue is Convert on reflect values. The result is assignable to dst.
func ConvertValue(src reflect.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	if !src.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: invalid value to %s", ErrNotConvertible, dst)
	}

	srcType := src.Type()
	if srcType.AssignableTo(dst) {
		return src, nil
	}

	srcDepth, srcBase := ptrDepthAndBase(srcType)
	dstDepth, dstBase := ptrDepthAndBase(dst)

	if srcDepth > 1 || dstDepth > 1 {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s: %w", ErrNotConvertible, srcType, dst, ErrDoublePointer)
	}

	var conv conversion

	direct := srcBase.AssignableTo(dstBase)
	if !direct {
		var ok bool
		if conv, ok = lookup(srcBase, dstBase, allowed); !ok {
			return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotConvertible, srcType, dst)
		}
	}

	if srcDepth == 1 {
		if src.IsNil() {
			if dstDepth == 1 {
				return reflect.Zero(dst), nil
			}

			return reflect.Value{}, fmt.Errorf("%w: nil %s to %s", ErrConversionFailed, srcType, dst)
		}

		src = src.Elem()
	}

	out := src
	if !direct {
		var err error

		out, err = conv.convert(src, dstBase)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s to %s: %w", ErrConversionFailed, srcType, dst, err)
		}
	}

	if dstDepth == 1 {
		ptr := reflect.New(dstBase)
		ptr.Elem().Set(out)

		return ptr, nil
	}

	return out, nil
}

func lookup(src, dst reflect.Type, allowed CategoryEnum) (conversion, bool) {
	pair := ConversionPair{FromReflectType(src), FromReflectType(dst)}
	if pair.From == 0 || pair.To == 0 {
		return conversion{}, false
	}

	conv, ok := conversions[pair]
	if !ok {
		// a named bool and bool share a kind but have no registered pair
		if pair.From == pair.To && pair.From != KindPrimitiveEnum {
			return conversion{convert: retype}, true
		}

		return conversion{}, false
	}

	if conv.category&allowed == 0 {
		return conversion{}, false
	}

	return conv, true
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	base = t
	for base.Kind() == reflect.Ptr {
		depth++
		base = base.Elem()
	}

	return depth, base
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	default:
		return false
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
}
