package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/game"
)

// RulesFile is the layout of a rules file:
//
//	rules {
//	  double_min       = 9
//	  double_max       = 11
//	  dealer_stands_on = 17
//	  auto_shuffle     = true
//	}
type RulesFile struct {
	Rules *RulesBlock `hcl:"rules,block"`
}

// RulesBlock holds the table rule overrides. Zero or absent values keep the
// defaults.
type RulesBlock struct {
	DoubleMin      int   `hcl:"double_min,optional"`
	DoubleMax      int   `hcl:"double_max,optional"`
	DealerStandsOn int   `hcl:"dealer_stands_on,optional"`
	AutoShuffle    *bool `hcl:"auto_shuffle,optional"`
}

// LoadRules applies the rules file at path on top of rules. An empty path
// or a missing file leaves rules as they are.
func LoadRules(path string, rules game.Rules) (game.Rules, error) {
	if path == "" {
		return rules, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return rules, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return game.Rules{}, fmt.Errorf("failed to parse rules file: %s", diags.Error())
	}

	var cfg RulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return game.Rules{}, fmt.Errorf("failed to decode rules file: %s", diags.Error())
	}

	if b := cfg.Rules; b != nil {
		if b.DoubleMin != 0 {
			rules.DoubleMin = b.DoubleMin
		}
		if b.DoubleMax != 0 {
			rules.DoubleMax = b.DoubleMax
		}
		if b.DealerStandsOn != 0 {
			rules.DealerStandsOn = b.DealerStandsOn
		}
		if b.AutoShuffle != nil {
			rules.AutoShuffle = *b.AutoShuffle
		}
	}

	if err := validateRules(rules); err != nil {
		return game.Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

func validateRules(r game.Rules) error {
	if r.DoubleMin < 2 || r.DoubleMax > 21 || r.DoubleMin > r.DoubleMax {
		return fmt.Errorf("%w: double range %d-%d", ErrInvalid, r.DoubleMin, r.DoubleMax)
	}
	if r.DealerStandsOn < 12 || r.DealerStandsOn > 21 {
		return fmt.Errorf("%w: dealer_stands_on %d", ErrInvalid, r.DealerStandsOn)
	}
	return nil
}
