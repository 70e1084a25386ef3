package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
)

// DefaultPalette is the qualitative colour sequence handed to the dashboard
// when the variant profile does not set one.
var DefaultPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Variant captures the differences between dashboard flavours: how the
// dataset spells its headers, the extra header aliases it uses and the
// palette charts are drawn with.
//
//	name: title-case
//	convention: title
//	palette: ["#1f77b4", "#ff7f0e"]
//	aliases:
//	  Campaign Budget: budget
type Variant struct {
	Name       string            `yaml:"name"`
	Convention string            `yaml:"convention"`
	Palette    []string          `yaml:"palette"`
	Aliases    map[string]string `yaml:"aliases"`
}

// LoadVariant reads a variant profile. An empty path yields a profile with
// the given fallback convention and the default palette.
func LoadVariant(path, fallbackConvention string) (Variant, error) {
	v := Variant{Name: "default", Convention: fallbackConvention}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return v, fmt.Errorf("reading variant profile: %w", err)
		}
		if err = yaml.Unmarshal(raw, &v); err != nil {
			return v, fmt.Errorf("parsing variant profile %s: %w", path, err)
		}
	}
	if v.Convention == "" {
		v.Convention = fallbackConvention
	}
	if len(v.Palette) == 0 {
		v.Palette = DefaultPalette
	}
	return v, nil
}

// DatasetOptions validates the profile and converts it to loader options.
func (v Variant) DatasetOptions() (dataset.Options, error) {
	var opts dataset.Options
	switch conv := domain.Convention(v.Convention); conv {
	case domain.ConventionSnake, domain.ConventionTitle:
		opts.Convention = conv
	case "":
		opts.Convention = domain.ConventionSnake
	default:
		return opts, fmt.Errorf("variant %s: unknown convention %q", v.Name, v.Convention)
	}
	if len(v.Aliases) > 0 {
		opts.Aliases = make(map[string]domain.Column, len(v.Aliases))
		for header, target := range v.Aliases {
			col, err := domain.ParseColumn(target)
			if err != nil {
				return opts, fmt.Errorf("variant %s: alias %q: %w", v.Name, header, err)
			}
			if col.Kind() == domain.KindUnknown || col == domain.ColumnStartMonth || col == domain.ColumnStartQuarter {
				return opts, fmt.Errorf("variant %s: alias %q targets derived column %s", v.Name, header, col)
			}
			opts.Aliases[header] = col
		}
	}
	return opts, nil
}
