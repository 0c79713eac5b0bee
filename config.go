package panzoom

import (
	"encoding/json"
	"fmt"
	"time"
)

// Default configuration values.
const (
	DefaultScaleDefault       = 2.0
	DefaultScaleDifference    = 0.5
	DefaultScaleMin           = 1.0
	DefaultScaleMax           = 10.0
	DefaultTransitionDuration = 200 * time.Millisecond
	DefaultDoubleClickDelay   = 300 * time.Millisecond
)

// Config holds the engine options. Zero fields are replaced by their defaults
// when the engine is constructed. Nonsensical combinations such as
// ScaleMin > ScaleMax are not rejected.
type Config struct {
	// ScaleDefault is the scale used on double activation and resize.
	ScaleDefault float64
	// ScaleDifference is the scale step of one wheel notch.
	ScaleDifference float64
	ScaleMin        float64
	ScaleMax        float64
	// AllowScroll turns off ambient scroll suppression while the pointer is
	// over a target. The zero value suppresses scrolling.
	AllowScroll bool
	// TransitionDuration is the animation hint passed to the render sink on
	// double activation.
	TransitionDuration time.Duration
	// DoubleClickDelay is the window in which a second activation counts as
	// a double click or double tap.
	DoubleClickDelay time.Duration
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		ScaleDefault:       DefaultScaleDefault,
		ScaleDifference:    DefaultScaleDifference,
		ScaleMin:           DefaultScaleMin,
		ScaleMax:           DefaultScaleMax,
		TransitionDuration: DefaultTransitionDuration,
		DoubleClickDelay:   DefaultDoubleClickDelay,
	}
}

// ScrollDisable reports whether ambient scroll is suppressed over targets.
func (c Config) ScrollDisable() bool {
	return !c.AllowScroll
}

// withDefaults returns c with zero or negative fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.ScaleDefault <= 0 {
		c.ScaleDefault = DefaultScaleDefault
	}
	if c.ScaleDifference <= 0 {
		c.ScaleDifference = DefaultScaleDifference
	}
	if c.ScaleMin <= 0 {
		c.ScaleMin = DefaultScaleMin
	}
	if c.ScaleMax <= 0 {
		c.ScaleMax = DefaultScaleMax
	}
	if c.TransitionDuration <= 0 {
		c.TransitionDuration = DefaultTransitionDuration
	}
	if c.DoubleClickDelay <= 0 {
		c.DoubleClickDelay = DefaultDoubleClickDelay
	}
	return c
}

// configJSON mirrors Config using the option names of the browser settings
// object. Durations are in milliseconds.
type configJSON struct {
	ScaleDefault       float64 `json:"scaleDefault,omitempty"`
	ScaleDifference    float64 `json:"scaleDifference,omitempty"`
	ScaleMin           float64 `json:"scaleMin,omitempty"`
	ScaleMax           float64 `json:"scaleMax,omitempty"`
	ScrollDisable      *bool   `json:"scrollDisable,omitempty"`
	TransitionDuration float64 `json:"transitionDuration,omitempty"`
	DoubleClickDelay   float64 `json:"doubleclickDelay,omitempty"`
}

// LoadConfig parses a JSON settings object. Absent options keep their
// defaults.
func LoadConfig(data []byte) (Config, error) {
	return DefaultConfig().Merge(data)
}

// Merge applies the options present in a JSON settings object over c.
// Absent and non-positive options keep their values from c.
func (c Config) Merge(data []byte) (Config, error) {
	var raw configJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("panzoom: failed to parse config: %w", err)
	}
	set := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	set(&c.ScaleDefault, raw.ScaleDefault)
	set(&c.ScaleDifference, raw.ScaleDifference)
	set(&c.ScaleMin, raw.ScaleMin)
	set(&c.ScaleMax, raw.ScaleMax)
	if raw.TransitionDuration > 0 {
		c.TransitionDuration = msToDuration(raw.TransitionDuration)
	}
	if raw.DoubleClickDelay > 0 {
		c.DoubleClickDelay = msToDuration(raw.DoubleClickDelay)
	}
	if raw.ScrollDisable != nil {
		c.AllowScroll = !*raw.ScrollDisable
	}
	return c.withDefaults(), nil
}

// MarshalJSON encodes the config with the browser option names.
func (c Config) MarshalJSON() ([]byte, error) {
	disable := c.ScrollDisable()
	return json.Marshal(configJSON{
		ScaleDefault:       c.ScaleDefault,
		ScaleDifference:    c.ScaleDifference,
		ScaleMin:           c.ScaleMin,
		ScaleMax:           c.ScaleMax,
		ScrollDisable:      &disable,
		TransitionDuration: float64(c.TransitionDuration) / float64(time.Millisecond),
		DoubleClickDelay:   float64(c.DoubleClickDelay) / float64(time.Millisecond),
	})
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
