package scene

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeDuration denotes time.Duration parameters.
	ParamTypeDuration ParamType = "duration"
)

// Parameter describes a single value shown by the front-ends.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the parameters of a scene at one point in time.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Parameters describes every key understood by FromMap with its current value.
func (c Config) Parameters() ParameterGroup {
	return ParameterGroup{Name: "Config", Params: []Parameter{
		{Key: "w", Label: "Width", Type: ParamTypeInt, Value: strconv.Itoa(c.Width), Description: "map width in tiles"},
		{Key: "h", Label: "Height", Type: ParamTypeInt, Value: strconv.Itoa(c.Height), Description: "map height in tiles"},
		{Key: "seed", Label: "Seed", Type: ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10), Description: "scenery seed"},
		{Key: "workers", Label: "Workers", Type: ParamTypeInt, Value: strconv.Itoa(c.Workers), Description: "parallel background workers, 0 for sequential"},
		{Key: "wrap", Label: "Wrap", Type: ParamTypeBool, Value: strconv.FormatBool(c.Wrap), Description: "wrap the map at its edges"},
		{Key: "step", Label: "Tick step", Type: ParamTypeDuration, Value: c.Step.String(), Description: "animation time per tick, 0s for the wall clock"},
	}}
}

// Map converts c back into the string form accepted by FromMap.
func (c Config) Map() map[string]string {
	out := make(map[string]string)
	for _, p := range c.Parameters().Params {
		out[p.Key] = p.Value
	}
	return out
}

// Parameters returns the scene configuration together with live state.
func (s *Scene) Parameters() ParameterSnapshot {
	state := ParameterGroup{Name: "State", Params: []Parameter{
		{Key: "entities", Label: "Entities", Type: ParamTypeInt, Value: strconv.Itoa(len(s.Entities))},
		{Key: "animations", Label: "Animated tiles", Type: ParamTypeInt, Value: strconv.Itoa(len(s.animated))},
	}}
	if s.Hero != nil {
		state.Params = append(state.Params,
			Parameter{Key: "hero_x", Label: "Hero X", Type: ParamTypeInt, Value: strconv.Itoa(s.Hero.X)},
			Parameter{Key: "hero_y", Label: "Hero Y", Type: ParamTypeInt, Value: strconv.Itoa(s.Hero.Y)},
			Parameter{Key: "hero_facing", Label: "Facing", Value: s.Hero.Transform.Rotation.String()},
		)
	}
	return ParameterSnapshot{Groups: []ParameterGroup{s.Config.Parameters(), state}}
}
