package model

// Requirement describes a child role a composite sub-model accepts: the role
// name children are attached under, an optional acceptance check, and
// whether the role must be filled before define may run.
type Requirement struct {
	Role        string
	Description string
	Hard        bool
	Check       func(Component) error
}

// missingHard returns the hard requirements of n that no child fills.
func missingHard(n *node) []Requirement {
	var missing []Requirement
	for _, r := range n.requirements {
		if !r.Hard {
			continue
		}
		if _, ok := n.roles[r.Role]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
