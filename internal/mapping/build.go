package mapping

import (
	"propbind/binding"
)

// Build creates the declared bindings over objects, keyed by the object
// names the file uses, and returns them as a group in file order. opts
// apply to every binding; the name, detect and conversions a declaration
// sets take precedence, the ones it leaves empty do not override opts.
//
// Build does not fail: an unknown object name becomes a nil endpoint and an
// unparsable mode becomes Invalid, so the binding is Invalid and reports
// why through the sink passed in opts.
func Build(f *File, objects map[string]any, opts ...binding.Option) *binding.Group {
	g := binding.NewGroup()
	if f == nil {
		return g
	}

	for i := range f.Bindings {
		d := &f.Bindings[i]

		mode, err := binding.ParseMode(d.Mode)
		if err != nil {
			mode = binding.Invalid
		}

		all := append([]binding.Option{}, opts...)
		if own, err := d.options(); err == nil {
			all = append(all, own...)
		} else {
			all = append(all, binding.WithName(d.Name))
			mode = binding.Invalid
		}

		g.Add(binding.New(objects[d.Source], objects[d.Target], d.SourcePath, d.TargetPath, mode, all...))
	}

	return g
}
