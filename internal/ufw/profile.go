package ufw

// Profile is a named convenience macro: either a fixed sequence of rule
// specs applied in declared order, or a full reset.
type Profile struct {
	Name  string
	Title string
	Specs []RuleSpec
	Reset bool
}
