package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version    string     `yaml:"version" json:"version"`
	Server     Server     `yaml:"server" json:"server"`
	Data       Data       `yaml:"data" json:"data"`
	Escalation Escalation `yaml:"escalation" json:"escalation"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Data struct {
	Dir string `yaml:"dir" json:"dir"`
}

// Escalation holds the unattended-priority sweep thresholds in days.
type Escalation struct {
	UrgentAfterDays     int `yaml:"urgent_after_days" json:"urgent_after_days"`
	VeryUrgentAfterDays int `yaml:"very_urgent_after_days" json:"very_urgent_after_days"`
}

func Default() *Config {
	return &Config{
		Version: "1",
		Server:  Server{Addr: ":8475"},
		Data:    Data{Dir: "data"},
		Escalation: Escalation{
			UrgentAfterDays:     3,
			VeryUrgentAfterDays: 5,
		},
	}
}

func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Data.Dir == "" {
		c.Data.Dir = def.Data.Dir
	}
	if c.Escalation.UrgentAfterDays <= 0 {
		c.Escalation.UrgentAfterDays = def.Escalation.UrgentAfterDays
	}
	if c.Escalation.VeryUrgentAfterDays <= 0 {
		c.Escalation.VeryUrgentAfterDays = def.Escalation.VeryUrgentAfterDays
	}
}

// Load reads a YAML config file. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
