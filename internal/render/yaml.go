package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/isabella232/flocker/internal/effect"
)

// step is the yaml form of a single effect.
type step struct {
	Run string   `yaml:"run,omitempty"`
	Put *putStep `yaml:"put,omitempty"`
}

type putStep struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

func collectSteps(seq effect.Sequence, steps []step) ([]step, error) {
	for _, e := range seq {
		switch e := e.(type) {
		case effect.Run:
			steps = append(steps, step{Run: e.Command})
		case effect.Put:
			steps = append(steps, step{Put: &putStep{Path: e.Path, Content: e.Content}})
		case effect.Sequence:
			var err error
			steps, err = collectSteps(e, steps)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown effect type %T", e)
		}
	}
	return steps, nil
}

// YAML renders a plan as a yaml list of steps, one entry per effect in
// order.
func YAML(seq effect.Sequence) ([]byte, error) {
	steps, err := collectSteps(seq, make([]step, 0, len(seq)))
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(steps)
}
