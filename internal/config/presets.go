package config

var Presets = map[string]map[string]*Config{
	"bowl": {
		"near": {
			Problem: "bowl", Start: StartConfig{Center: []float64{0.5, 1.5}, Size: 0.25},
		},
		"far": {
			Problem: "bowl", Start: StartConfig{Center: []float64{-50, 80}, Size: 5},
		},
	},
	"rosenbrock": {
		"classic": {
			Problem: "rosenbrock", Start: StartConfig{Center: []float64{-1.2, 1}, Size: 0.5},
		},
		"loose": {
			Problem: "rosenbrock", Start: StartConfig{Center: []float64{-1.2, 1}, Size: 0.5},
			Optimizer: OptimizerConfig{Epsilon: 1e-6, MaxIter: 500},
		},
	},
	"himmelblau": {
		"north_east": {
			Problem: "himmelblau", Start: StartConfig{Center: []float64{2, 2}, Size: 0.5},
		},
		"south_west": {
			Problem: "himmelblau", Start: StartConfig{Center: []float64{-3, -3}, Size: 0.5},
		},
	},
	"oscillator": {
		"quarter": {
			Step: 0.05,
			Mechanics: MechanicsConfig{
				Lagrangian: "oscillator", Mass: 1, Stiffness: 1,
				T0: 0, Q0: 0, T1: 1.5707963267948966, Q1: 1, Knots: 3,
			},
		},
		"flat": {
			Step: 0.05,
			Mechanics: MechanicsConfig{
				Lagrangian: "oscillator", Mass: 1, Stiffness: 1,
				T0: 0, Q0: 0, T1: 1.5707963267948966, Q1: 1, Knots: 3, Flat: true,
			},
		},
		"stiff": {
			Step: 0.02,
			Mechanics: MechanicsConfig{
				Lagrangian: "oscillator", Mass: 1, Stiffness: 4,
				T0: 0, Q0: 0, T1: 0.75, Q1: 1, Knots: 4,
			},
		},
		"pendulum": {
			Step: 0.02,
			Mechanics: MechanicsConfig{
				Lagrangian: "pendulum", Mass: 1, Stiffness: 9.8,
				T0: 0, Q0: 0, T1: 0.5, Q1: 1, Knots: 3,
			},
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	return names
}
