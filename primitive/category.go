package primitive

import "reflect"

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                          // int, uint, float with precision loss
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryTimestamp                             // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) <-> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                            // string <-> enum: textual representation of an enum type (uses parse/isValid/string methods)

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

// convertFunc turns src into a value of exactly type dst.
type convertFunc func(src reflect.Value, dst reflect.Type) (reflect.Value, error)

type conversion struct {
	category CategoryEnum
	convert  convertFunc
}

var conversions map[ConversionPair]conversion

func register(category CategoryEnum, from, to KindEnum, fn convertFunc) {
	pair := ConversionPair{from, to}
	if _, ok := conversions[pair]; ok {
		return
	}

	conversions[pair] = conversion{category: category, convert: fn}
}

func init() {
	conversions = make(map[ConversionPair]conversion)

	// safe pairs go first so the unsafe loop below skips them
	for pair := range safeNumberConversionPairs() {
		register(CategorySafeNumber, pair.From, pair.To, convertNumber)
	}

	for from := KindEnum(1); int(from) < KindTotal; from++ {
		if !from.IsNumber() {
			continue
		}

		for to := KindEnum(1); int(to) < KindTotal; to++ {
			if to.IsNumber() {
				register(CategoryUnsafeNumber, from, to, convertNumber)
			}
		}

		register(CategoryTextNumber, from, KindString, formatNumber)
		register(CategoryTextNumber, KindString, from, parseNumber)
	}

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		if !kind.IsInteger() {
			continue
		}

		register(CategoryNumericBool, kind, KindBool, intToBool)
		register(CategoryNumericBool, KindBool, kind, boolToInt)

		// uint64 does not fit into the int64 backing both time types
		if kind == KindUint64 {
			continue
		}

		register(CategoryTimestamp, kind, KindTime, unixToTime)
		register(CategoryNanoseconds, kind, KindDuration, intToDuration)

		if kind.IsSigned() {
			register(CategoryTimestamp, KindTime, kind, timeToUnix)
			register(CategoryNanoseconds, KindDuration, kind, durationToInt)
		}
	}

	register(CategoryTextualBool, KindString, KindBool, parseBool)
	register(CategoryTextualBool, KindBool, KindString, formatBool)

	register(CategoryDatetime, KindString, KindTime, parseTime)
	register(CategoryDatetime, KindTime, KindString, formatTime)

	register(CategoryDuration, KindString, KindDuration, parseDuration)
	register(CategoryDuration, KindDuration, KindString, formatDuration)

	register(CategorySeconds, KindFloat32, KindDuration, secondsToDuration)
	register(CategorySeconds, KindFloat64, KindDuration, secondsToDuration)
	register(CategorySeconds, KindDuration, KindFloat32, durationToSeconds)
	register(CategorySeconds, KindDuration, KindFloat64, durationToSeconds)

	register(CategoryEnumString, KindString, KindPrimitiveEnum, parseEnum)
	register(CategoryEnumString, KindPrimitiveEnum, KindString, formatEnum)
	register(CategoryEnumString, KindPrimitiveEnum, KindPrimitiveEnum, convertEnum)
}

// Lookup reports the category of the registered conversion for pair.
func Lookup(pair ConversionPair) (CategoryEnum, bool) {
	conv, ok := conversions[pair]
	return conv.category, ok
}

func safeNumberConversionPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindInt, KindInt}:   {}, // int can be any wide from 32 upto 64
		{KindInt, KindInt64}: {},

		{KindInt8, KindInt}:     {}, // int8 can be safely converted to any signed int
		{KindInt8, KindInt8}:    {},
		{KindInt8, KindInt16}:   {},
		{KindInt8, KindInt32}:   {},
		{KindInt8, KindInt64}:   {},
		{KindInt8, KindFloat32}: {},
		{KindInt8, KindFloat64}: {},

		{KindInt16, KindInt}:     {},
		{KindInt16, KindInt16}:   {},
		{KindInt16, KindInt32}:   {},
		{KindInt16, KindInt64}:   {},
		{KindInt16, KindFloat32}: {},
		{KindInt16, KindFloat64}: {},

		{KindInt32, KindInt}:     {},
		{KindInt32, KindInt32}:   {},
		{KindInt32, KindInt64}:   {},
		{KindInt32, KindFloat64}: {}, // int32 is wider than float32 mantissa

		{KindInt64, KindInt64}: {},

		{KindUint, KindUint}:   {},
		{KindUint, KindUint64}: {},

		{KindUint8, KindUint}:    {},
		{KindUint8, KindUint8}:   {},
		{KindUint8, KindUint16}:  {},
		{KindUint8, KindUint32}:  {},
		{KindUint8, KindUint64}:  {},
		{KindUint8, KindInt}:     {},
		{KindUint8, KindInt16}:   {},
		{KindUint8, KindInt32}:   {},
		{KindUint8, KindInt64}:   {},
		{KindUint8, KindFloat32}: {},
		{KindUint8, KindFloat64}: {},

		{KindUint16, KindUint}:    {},
		{KindUint16, KindUint16}:  {},
		{KindUint16, KindUint32}:  {},
		{KindUint16, KindUint64}:  {},
		{KindUint16, KindInt}:     {},
		{KindUint16, KindInt32}:   {},
		{KindUint16, KindInt64}:   {},
		{KindUint16, KindFloat32}: {},
		{KindUint16, KindFloat64}: {},

		{KindUint32, KindUint32}:  {},
		{KindUint32, KindUint64}:  {},
		{KindUint32, KindInt64}:   {}, // only int64 is wide enough to hold uint32
		{KindUint32, KindFloat64}: {},

		{KindUint64, KindUint64}: {},

		{KindFloat32, KindFloat32}: {},
		{KindFloat32, KindFloat64}: {},

		{KindFloat64, KindFloat64}: {},
	}
}
