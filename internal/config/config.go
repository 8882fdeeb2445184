package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the file name written by "billgraph config init".
const DefaultFile = "billgraph.yaml"

// Config represents the billgraph.yaml render style.
type Config struct {
	Graph          GraphConfig     `yaml:"graph"`
	Colors         ColorConfig     `yaml:"colors"`
	OperationShape string          `yaml:"operation_shape"`
	EdgeLabels     EdgeLabelConfig `yaml:"edge_labels"`
}

// GraphConfig holds digraph-level settings.
type GraphConfig struct {
	Name       string            `yaml:"name,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"` // e.g. rankdir: LR
}

// ColorConfig holds node colors.
type ColorConfig struct {
	Bill   string `yaml:"bill"`
	Refund string `yaml:"refund"` // bills with isRefund set
	Debit  string `yaml:"debit"`
	Credit string `yaml:"credit"`
}

// EdgeLabelConfig holds the labels of bill -> operation edges.
type EdgeLabelConfig struct {
	Debit  string `yaml:"debit"`
	Credit string `yaml:"credit"`
}

// Load reads a billgraph.yaml file from disk. Fields absent from the file
// keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the style of the original operations/bills graph.
func Default() *Config {
	return &Config{
		Colors: ColorConfig{
			Bill:   "red",
			Refund: "green",
			Debit:  "red",
			Credit: "green",
		},
		OperationShape: "rect",
		EdgeLabels: EdgeLabelConfig{
			Debit:  "paid by",
			Credit: "reimbursed by",
		},
	}
}

// Validate checks that no style value was blanked out.
func (c *Config) Validate() error {
	var errs []error
	check := func(field, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", field))
		}
	}
	check("colors.bill", c.Colors.Bill)
	check("colors.refund", c.Colors.Refund)
	check("colors.debit", c.Colors.Debit)
	check("colors.credit", c.Colors.Credit)
	check("operation_shape", c.OperationShape)
	check("edge_labels.debit", c.EdgeLabels.Debit)
	check("edge_labels.credit", c.EdgeLabels.Credit)
	return errors.Join(errs...)
}

// SetGraphAttr sets a digraph-level attribute.
func (c *Config) SetGraphAttr(key, value string) {
	if c.Graph.Attributes == nil {
		c.Graph.Attributes = make(map[string]string)
	}
	c.Graph.Attributes[key] = value
}

// GraphAttrKeys returns the graph attribute names in sorted order.
func (c *Config) GraphAttrKeys() []string {
	keys := make([]string, 0, len(c.Graph.Attributes))
	for k := range c.Graph.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
