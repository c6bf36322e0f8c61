package config

// Presets are named ready-to-derive compositions.
var Presets = map[string]map[string]*Config{
	"bicycle": {
		"fixed": {
			Model: "bicycle", Name: "bicycle",
			RearWheel: "knife_edge_wheel", FrontWheel: "knife_edge_wheel",
			Simplify: true,
		},
		"touring": {
			Model: "bicycle", Name: "bicycle",
			RearWheel: "toroidal_wheel", FrontWheel: "toroidal_wheel",
			Ground: true, Simplify: true,
		},
		"with_rider": {
			Model: "bicycle", Name: "bicycle",
			RearWheel: "knife_edge_wheel", FrontWheel: "knife_edge_wheel",
			Rider: true, Simplify: true,
		},
	},
	"rolling_disc": {
		"benchmark": {
			Model: "rolling_disc", Name: "disc",
			RearWheel: "knife_edge_wheel", FrontWheel: "knife_edge_wheel",
			Ground: true, Simplify: true,
		},
	},
}

func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
