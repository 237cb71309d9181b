package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vrp-gomea/gomea/gomea"
)

// rawInstance mirrors gomea.Instance's exported, YAML-tagged fields so a
// scenario file can be unmarshaled and then re-validated through
// gomea.NewInstance (which also derives the feasibility index that
// gomea.Instance deliberately keeps unexported).
type rawInstance struct {
	N  int                `yaml:"n"`
	V  int                `yaml:"v"`
	D  [][]float64        `yaml:"d"`
	P  []float64          `yaml:"p"`
	TW []gomea.TimeWindow `yaml:"tw"`
	Q  [][]bool           `yaml:"q"`
	U  []float64          `yaml:"u"`
	SS []float64          `yaml:"ss"`
}

func loadInstanceYAML(path string) (*gomea.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance file %s: %w", path, err)
	}
	var raw rawInstance
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing instance file %s: %w", path, err)
	}
	return gomea.NewInstance(raw.N, raw.V, raw.D, raw.P, raw.TW, raw.Q, raw.U, raw.SS)
}
