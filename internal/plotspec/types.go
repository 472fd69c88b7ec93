// Package plotspec holds the run configuration for the plotting tools:
// which algorithms to draw, in which colors, for which problem scale,
// and where input/output files live. The zero config is usable; a YAML
// file and per-binary flags refine it.
package plotspec

// Spec configures one plotting run.
type Spec struct {
	// DataDir is where the experiment harness wrote its CSV files.
	DataDir string `yaml:"data_dir"`
	// OutDir receives PNG figures and Markdown reports.
	OutDir string `yaml:"out_dir"`
	// Scale is the problem-size identifier baked into convergence file
	// names, e.g. "M100".
	Scale string `yaml:"scale"`
	// Language selects figure label localization: "en" or "zh".
	Language string `yaml:"language"`

	Algorithms []Algorithm `yaml:"algorithms"`
}

// Algorithm names one plotted algorithm and its visual identity.
type Algorithm struct {
	Name string `yaml:"name"`
	// Color is a #rrggbb hex string.
	Color string `yaml:"color"`
	// Line selects the dash pattern: solid, dash, dashdot or dot.
	Line string `yaml:"line"`
}

// Names returns the algorithm names in configured order.
func (s *Spec) Names() []string {
	names := make([]string, len(s.Algorithms))
	for i, a := range s.Algorithms {
		names[i] = a.Name
	}
	return names
}

// Lookup returns the configured entry for name, or a neutral fallback
// so an unlisted algorithm still renders.
func (s *Spec) Lookup(name string) Algorithm {
	for _, a := range s.Algorithms {
		if a.Name == name {
			return a
		}
	}
	return Algorithm{Name: name, Color: "#000000", Line: "solid"}
}

// Default mirrors the experiment campaign this toolkit was written for:
// the Random baseline, the swarm competitors and the CBO lineage at
// scale M100, colored so ICBO-Enhanced stands out.
func Default() *Spec {
	return &Spec{
		DataDir:  ".",
		OutDir:   "results",
		Scale:    "M100",
		Language: "en",
		Algorithms: []Algorithm{
			{Name: "Random", Color: "#95a5a6", Line: "dash"},
			{Name: "GWO", Color: "#f39c12", Line: "dashdot"},
			{Name: "WOA", Color: "#9b59b6", Line: "dot"},
			{Name: "PSO", Color: "#2ecc71", Line: "solid"},
			{Name: "CBO", Color: "#3498db", Line: "solid"},
			{Name: "ICBO-Enhanced", Color: "#e74c3c", Line: "solid"},
		},
	}
}
