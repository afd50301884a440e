package dedupe

// Status is the decision taken for one file.
type Status int

const (
	// StatusKeep leaves the file in place.
	StatusKeep Status = iota
	// StatusRemove marks the file for deletion.
	StatusRemove
	// StatusUnknown marks a file whose group could not be reduced to a single
	// variant without asking the operator (dry runs only).
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusKeep:
		return "keep"
	case StatusRemove:
		return "remove"
	case StatusUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}
