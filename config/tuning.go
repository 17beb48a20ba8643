package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning indicates a tuning file that is not a tuning document.
var ErrInvalidTuning = errors.New("config: invalid tuning file")

// TuningKind is the expected value of the top-level kind field.
const TuningKind = "tuning"

// OuterConfig is the envelope of a tuning file; Def is decoded separately.
type OuterConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// Tuning holds the engine knobs a tuning file may override. Absent fields
// leave the environment value in place.
// Viper lower-cases keys, so the yaml tags are lower case too.
type Tuning struct {
	Strategy  *string  `yaml:"strategy"`
	Alpha     *float64 `yaml:"alpha"`
	Heuristic *string  `yaml:"heuristic"`
	Scale     *float64 `yaml:"scale"`
	Order     *bool    `yaml:"order"`
	Corners   *bool    `yaml:"corners"`
}

// FromYaml reads a tuning file.
func FromYaml(path string) (*Tuning, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	var err error
	if err = vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	outerConfig := &OuterConfig{}
	if err = vp.Unmarshal(outerConfig); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	if !strings.EqualFold(outerConfig.Kind, TuningKind) {
		return nil, fmt.Errorf("%w: kind %q, want %q", ErrInvalidTuning, outerConfig.Kind, TuningKind)
	}

	var def []byte
	if def, err = yaml.Marshal(outerConfig.Def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}

	innerConfig := &Tuning{}
	if err = yaml.Unmarshal(def, innerConfig); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}

	return innerConfig, nil
}

// Apply overrides c with every field set in t.
func (t *Tuning) Apply(c Config) Config {
	if t == nil {
		return c
	}
	if t.Strategy != nil {
		c.Strategy = strings.ToLower(*t.Strategy)
	}
	if t.Alpha != nil {
		c.Alpha = *t.Alpha
	}
	if t.Heuristic != nil {
		c.Heuristic = strings.ToLower(*t.Heuristic)
	}
	if t.Scale != nil {
		c.HeuristicScale = *t.Scale
	}
	if t.Order != nil {
		c.HeuristicOrder = *t.Order
	}
	if t.Corners != nil {
		c.CornerCheck = *t.Corners
	}
	return c
}

// ApplyTuning reads the tuning file at path and overrides c with it.
func (c Config) ApplyTuning(path string) (Config, error) {
	t, err := FromYaml(path)
	if err != nil {
		return c, err
	}
	return t.Apply(c), nil
}
