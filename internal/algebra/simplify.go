package algebra

import "github.com/Konstantin8105/sm"

// SimplifyString runs an expression string through the sm symbolic engine.
// sm rejects inputs it cannot parse; in that case the original string is
// returned unchanged so simplification stays best-effort.
func SimplifyString(s string) string {
	sm.MaxIteration = -1
	out, err := sm.Sexpr(nil, s)
	if err != nil {
		return s
	}
	return out
}

// Simplified returns the printed form of e after sm simplification.
func Simplified(e Expr) string {
	if e == nil {
		return ""
	}
	return SimplifyString(e.String())
}

// SimplifiedMass returns the mass matrix entries as simplified strings.
func (m *EOM) SimplifiedMass() [][]string {
	out := make([][]string, len(m.MassMatrix))
	for i, row := range m.MassMatrix {
		out[i] = make([]string, len(row))
		for j, e := range row {
			out[i][j] = Simplified(e)
		}
	}
	return out
}

// SimplifiedForcing returns the forcing vector entries as simplified strings.
func (m *EOM) SimplifiedForcing() []string {
	out := make([]string, len(m.Forcing))
	for i, e := range m.Forcing {
		out[i] = Simplified(e)
	}
	return out
}
