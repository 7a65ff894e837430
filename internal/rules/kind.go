package rules

// Kind is one of the known substitution rule kinds.
type Kind int

const (
	Voicing Kind = iota
	Fronting
	Gliding
	Stopping
)

var kindInfo = [...]struct {
	name  string
	label string
}{
	Voicing:  {"VoicingSubstitution", "Voicing"},
	Fronting: {"FrontingSubstitution", "Fronting"},
	Gliding:  {"GlidingSubstitution", "Gliding"},
	Stopping: {"StoppingSubstitution", "Stopping"},
}

// Kinds returns every known kind in evaluation order.
func Kinds() []Kind {
	return []Kind{Voicing, Fronting, Gliding, Stopping}
}

// RuleName is the catalog name for the kind, e.g. "VoicingSubstitution".
func (k Kind) RuleName() string {
	if !k.valid() {
		return ""
	}
	return kindInfo[k].name
}

// Label is the short name used in suggestion output, e.g. "Voicing".
func (k Kind) Label() string {
	if !k.valid() {
		return ""
	}
	return kindInfo[k].label
}

func (k Kind) String() string { return k.Label() }

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kindInfo) }

// KindFromName maps a catalog rule name back to its kind.
func KindFromName(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindInfo[k].name == name {
			return k, true
		}
	}
	return 0, false
}
