package binding

// Status is the runtime state of a binding: the mode it runs in, or Invalid
// together with the reason it stopped.
type Status struct {
	Mode   Mode
	Reason error
}

// Active reports whether the binding still runs.
func (s Status) Active() bool {
	return s.Mode.Active()
}

func (s Status) String() string {
	if s.Reason == nil {
		return s.Mode.String()
	}

	return s.Mode.String() + ": " + s.Reason.Error()
}
