package mapping

import (
	"fmt"
	"strings"

	"propbind/binding"
	"propbind/internal/match"
	"propbind/primitive"
)

var categoryNames = map[string]primitive.CategoryEnum{
	"all":          primitive.CategoryAll,
	"none":         primitive.CategoryNone,
	"safenumber":   primitive.CategorySafeNumber,
	"unsafenumber": primitive.CategoryUnsafeNumber,
	"textnumber":   primitive.CategoryTextNumber,
	"numericbool":  primitive.CategoryNumericBool,
	"textualbool":  primitive.CategoryTextualBool,
	"datetime":     primitive.CategoryDatetime,
	"timestamp":    primitive.CategoryTimestamp,
	"duration":     primitive.CategoryDuration,
	"nanoseconds":  primitive.CategoryNanoseconds,
	"seconds":      primitive.CategorySeconds,
	"enumstring":   primitive.CategoryEnumString,
}

// ParseCategories combines conversion category names. An empty list means
// every category.
func ParseCategories(names []string) (primitive.CategoryEnum, error) {
	if len(names) == 0 {
		return primitive.CategoryAll, nil
	}

	var out primitive.CategoryEnum

	for _, name := range names {
		c, ok := categoryNames[match.NormalizeIdent(name)]
		if !ok {
			return primitive.CategoryNone, fmt.Errorf("unknown conversion category %q", name)
		}

		out |= c
	}

	return out, nil
}

// ParseDetect parses a change detection name: "legacy" (the default when
// empty) or "changes".
func ParseDetect(name string) (binding.ChangeDetection, error) {
	switch match.NormalizeIdent(strings.TrimPrefix(strings.ToLower(name), "detect")) {
	case "", "legacy":
		return binding.DetectLegacy, nil
	case "changes", "change":
		return binding.DetectChanges, nil
	default:
		return binding.DetectLegacy, fmt.Errorf("unknown change detection %q", name)
	}
}

// options returns the binding options a declaration sets. Fields left
// empty add no option, so the caller's options for them stay in effect.
func (d *Declaration) options() ([]binding.Option, error) {
	var opts []binding.Option

	if d.Name != "" {
		opts = append(opts, binding.WithName(d.Name))
	}

	if d.Detect != "" {
		detect, err := ParseDetect(d.Detect)
		if err != nil {
			return nil, err
		}

		opts = append(opts, binding.WithChangeDetection(detect))
	}

	if len(d.Conversions) > 0 {
		categories, err := ParseCategories(d.Conversions)
		if err != nil {
			return nil, err
		}

		opts = append(opts, binding.WithCategories(categories))
	}

	return opts, nil
}
