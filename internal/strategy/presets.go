package strategy

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPreset is returned for a strategy name that is not registered
var ErrUnknownPreset = errors.New("unknown strategy")

// Preset pairs one playing strategy with one betting strategy for simulation
type Preset struct {
	Name    string
	Playing func(limits Limits, decks int) Playing
	Betting func(limits Limits) Betting
}

func basicPlay(l Limits, _ int) Playing { return NewBasic(l) }
func hiloPlay(l Limits, decks int) Playing { return NewHiLo(l, decks) }
func standardBet(l Limits) Betting { return NewStandard(l) }
func ace5Bet(l Limits) Betting { return NewAce5(l) }

var presets = map[string]Preset{
	"BS":    {Name: "BS", Playing: basicPlay, Betting: standardBet},
	"BS-AF": {Name: "BS-AF", Playing: basicPlay, Betting: ace5Bet},
	"HL":    {Name: "HL", Playing: hiloPlay, Betting: standardBet},
	"HL-AF": {Name: "HL-AF", Playing: hiloPlay, Betting: ace5Bet},
}

// LookupPreset returns the named preset
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames lists the registered preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Advisors returns every playing strategy in the order the advice command
// lists them.
func Advisors(limits Limits, decks int) []Playing {
	return []Playing{NewBasic(limits), NewHiLo(limits, decks)}
}

// Bettors returns every betting strategy in the order the advice command
// lists them.
func Bettors(limits Limits) []Betting {
	return []Betting{NewAce5(limits), NewStandard(limits)}
}
