package entities

import "math"

// Vital is a depletable stat such as health or morale
type Vital struct {
	Current int `json:"current" yaml:"current"`
	Max     int `json:"max" yaml:"max"`
	Temp    int `json:"temp" yaml:"temp"`
}

// EffectiveMax is the maximum including temporary bonus
func (v Vital) EffectiveMax() int {
	return v.Max + v.Temp
}

// IsCritical reports whether the vital is at or below a quarter of its effective max
func (v Vital) IsCritical() bool {
	return float64(v.Current) <= math.Ceil(float64(v.EffectiveMax())*0.25)
}

// Condition is an active status effect on the player
type Condition struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
