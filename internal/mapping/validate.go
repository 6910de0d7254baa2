package mapping

import (
	"errors"
	"fmt"

	"propbind/accessor"
	"propbind/binding"
	"propbind/diagnostic"
	"propbind/internal/analyze"
)

// Validate checks a declaration file. With a nil graph only the structure
// is checked; with a graph, declarations naming their types also get their
// paths resolved statically.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")

		return res
	}

	if err := CheckVersion(f.Version); err != nil {
		res.AddError("unsupported_version", err.Error(), "", "")
	}

	if len(f.Bindings) == 0 {
		res.AddWarning("no_bindings", "declaration file declares no bindings", "", "")
	}

	seenNames := map[string]struct{}{}
	writers := map[string]string{}

	for i := range f.Bindings {
		d := &f.Bindings[i]

		name := d.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			res.AddError("missing_name", "binding has no name and no objects to derive one from", name, "")
		} else if _, ok := seenNames[name]; ok {
			res.AddError("duplicate_name", fmt.Sprintf("duplicate binding name %q", name), name, "")
		}

		seenNames[name] = struct{}{}

		mode, ok := validateStructure(res, name, d)
		if !ok {
			continue
		}

		for _, key := range writtenEnds(d, mode) {
			if other, ok := writers[key]; ok {
				res.AddWarning("conflicting_writes", fmt.Sprintf("%s is also written by %q", key, other), name, "")
			}

			writers[key] = name
		}

		if graph != nil {
			validateTypes(res, graph, name, d, mode)
		}
	}

	return res
}

func validateStructure(res *diagnostic.Diagnostics, name string, d *Declaration) (binding.Mode, bool) {
	ok := true

	if d.Source == "" {
		res.AddError("missing_source", "source object is empty", name, "")
		ok = false
	}

	if d.Target == "" {
		res.AddError("missing_target", "target object is empty", name, "")
		ok = false
	}

	if d.SourcePath == "" {
		res.AddError("missing_source_path", "source path is empty", name, "")
		ok = false
	}

	if d.TargetPath == "" {
		res.AddError("missing_target_path", "target path is empty", name, "")
		ok = false
	}

	mode, err := binding.ParseMode(d.Mode)
	if err != nil {
		res.AddError("invalid_mode", err.Error(), name, "")
		ok = false
	}

	if _, err := ParseDetect(d.Detect); err != nil {
		res.AddError("invalid_detect", err.Error(), name, "")
		ok = false
	}

	if _, err := ParseCategories(d.Conversions); err != nil {
		res.AddError("invalid_conversions", err.Error(), name, "")
		ok = false
	}

	return mode, ok
}

// writtenEnds returns "object.path" for every end the mode writes to.
func writtenEnds(d *Declaration, mode binding.Mode) []string {
	source := d.Source + "." + d.SourcePath
	target := d.Target + "." + d.TargetPath

	switch mode {
	case binding.OneWayToSource:
		return []string{source}
	case binding.TwoWay:
		return []string{source, target}
	default:
		return []string{target}
	}
}

func validateTypes(res *diagnostic.Diagnostics, graph *analyze.TypeGraph, name string, d *Declaration, mode binding.Mode) {
	writesSource := mode == binding.OneWayToSource || mode == binding.TwoWay
	writesTarget := mode != binding.OneWayToSource

	checkEnd(res, graph, name, "source", d.SourceType, d.SourcePath, writesSource, writesTarget)
	checkEnd(res, graph, name, "target", d.TargetType, d.TargetPath, writesTarget, writesSource)
}

// checkEnd resolves one end of a binding. written tells whether the mode
// writes this end; copied whether its value is copied to the other end.
func checkEnd(
	res *diagnostic.Diagnostics,
	graph *analyze.TypeGraph,
	name, side, typeName, path string,
	written, copied bool,
) {
	if typeName == "" {
		res.AddInfo("unchecked_"+side, side+" type not declared, path not checked", name, path)

		return
	}

	id, err := analyze.ParseTypeID(typeName)
	if err != nil {
		res.AddError("invalid_"+side+"_type", err.Error(), name, typeName)

		return
	}

	if graph.GetType(id) == nil {
		res.AddError(side+"_type_not_found", fmt.Sprintf("%s type %s not found", side, id), name, typeName)

		return
	}

	p, err := graph.ResolvePath(id, path)
	if err != nil {
		var perr *accessor.PathError
		if errors.As(err, &perr) {
			res.AddError("invalid_"+side+"_path", perr.Err.Error(), name, path, perr.Suggestions...)
		} else {
			res.AddError("invalid_"+side+"_path", err.Error(), name, path)
		}

		return
	}

	term := p.Terminal()
	if written && !term.Writable {
		res.AddError(side+"_not_writable", fmt.Sprintf("%s %s is read-only", side, term.Name), name, path)
	}

	if copied && !term.Readable {
		res.AddWarning(side+"_not_readable", fmt.Sprintf("%s %s is write-only and never yields a value", side, term.Name), name, path)
	}
}
