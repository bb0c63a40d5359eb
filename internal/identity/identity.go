// Package identity selects a simulated browser fingerprint for outbound
// requests. One fingerprint is drawn per polling cycle from a weighted
// catalog and reused for every request in that cycle.
package identity

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// Fingerprint is one simulated client identity. The headers mirror what the
// named browser version actually sends.
type Fingerprint struct {
	Label           string  `yaml:"label"`
	Weight          float64 `yaml:"weight"`
	UserAgent       string  `yaml:"user_agent"`
	SecChUA         string  `yaml:"sec_ch_ua"`
	SecChUAMobile   string  `yaml:"sec_ch_ua_mobile"`
	SecChUAPlatform string  `yaml:"sec_ch_ua_platform"`
	AcceptLanguage  string  `yaml:"accept_language"`
}

type catalogFile struct {
	Fingerprints []Fingerprint `yaml:"fingerprints"`
}

// LoadCatalog reads the fingerprint table from a YAML data file. The table is
// versioned configuration, not code, so weights can change without a rebuild.
func LoadCatalog(path string) ([]Fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fingerprint catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fingerprint catalog: %w", err)
	}
	if len(f.Fingerprints) == 0 {
		return nil, fmt.Errorf("fingerprint catalog %s is empty", path)
	}
	for _, fp := range f.Fingerprints {
		if fp.Label == "" || fp.UserAgent == "" {
			return nil, fmt.Errorf("fingerprint catalog %s: entry missing label or user_agent", path)
		}
		if fp.Weight <= 0 {
			return nil, fmt.Errorf("fingerprint %s: weight must be positive", fp.Label)
		}
	}

	return f.Fingerprints, nil
}

// Selector draws fingerprints proportionally to their catalog weights.
type Selector struct {
	catalog []Fingerprint
	total   float64
	randFn  func() float64
}

func NewSelector(catalog []Fingerprint) (*Selector, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("empty fingerprint catalog")
	}

	var total float64
	for _, fp := range catalog {
		if fp.Weight <= 0 {
			return nil, fmt.Errorf("fingerprint %s: weight must be positive", fp.Label)
		}
		total += fp.Weight
	}

	return &Selector{
		catalog: catalog,
		total:   total,
		randFn:  rand.Float64,
	}, nil
}

// Select draws one fingerprint. Weights need not sum to 1; draws are
// proportional to weight over the catalog total.
func (s *Selector) Select() Fingerprint {
	target := s.randFn() * s.total

	var acc float64
	for _, fp := range s.catalog {
		acc += fp.Weight
		if target < acc {
			return fp
		}
	}
	return s.catalog[len(s.catalog)-1]
}
