package uci

import (
	"fmt"
	"strconv"
	"strings"

	"gander-engine/engine"
)

// Option is one entry of the UCI option store. Value holds the current
// setting as text; typed accessors convert on demand. onSet runs after
// the value changes so options can push their effect into the engine.
type Option struct {
	Name    string
	Type    string // "spin", "check" or "string"
	Default string
	Min     int
	Max     int
	Value   string

	onSet func(p *Protocol, o *Option)
}

// Int returns the option value as an integer, clamped to [Min, Max].
func (o *Option) Int() int {
	v, err := strconv.Atoi(o.Value)
	if err != nil {
		v, _ = strconv.Atoi(o.Default)
	}
	return engine.Clamp(v, o.Min, o.Max)
}

// Bool returns the option value as a boolean.
func (o *Option) Bool() bool { return o.Value == "true" }

func (o *Option) describe() string {
	switch o.Type {
	case "spin":
		return fmt.Sprintf("option name %s type spin default %s min %d max %d",
			o.Name, o.Default, o.Min, o.Max)
	default:
		return fmt.Sprintf("option name %s type %s default %s", o.Name, o.Type, o.Default)
	}
}

func (p *Protocol) initOptions() {
	p.options = []*Option{
		{Name: "Hash", Type: "spin", Default: "64", Min: 1, Max: 4096,
			onSet: func(p *Protocol, o *Option) { p.searcher.TT.Resize(o.Int()) }},
		{Name: "Threads", Type: "spin", Default: "1", Min: 1, Max: 1},
		{Name: "Ponder", Type: "check", Default: "false"},
		{Name: "MoveOverhead", Type: "spin", Default: "30", Min: 0, Max: 5000},
		{Name: "UCI_Chess960", Type: "check", Default: "false",
			onSet: func(p *Protocol, o *Option) { p.board.Chess960 = o.Bool() }},
	}
	for _, o := range p.options {
		o.Value = o.Default
	}
}

// findOption looks an option up by name, case-insensitively.
func (p *Protocol) findOption(name string) *Option {
	for _, o := range p.options {
		if strings.EqualFold(o.Name, name) {
			return o
		}
	}
	return nil
}
