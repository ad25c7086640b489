package types

import "github.com/diillson/catering-analytics-go/internal/domain/analytics"

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Source          string                    `json:"source" yaml:"source" toml:"source"`
	RefreshInterval string                    `json:"refresh_interval" yaml:"refresh_interval" toml:"refresh_interval"`
	Preset          string                    `json:"preset" yaml:"preset" toml:"preset"`
	From            string                    `json:"from" yaml:"from" toml:"from"`
	To              string                    `json:"to" yaml:"to" toml:"to"`
	Client          string                    `json:"client" yaml:"client" toml:"client"`
	Sections        []string                  `json:"sections" yaml:"sections" toml:"sections"`
	ReportName      string                    `json:"report_name" yaml:"report_name" toml:"report_name"`
	Dir             string                    `json:"dir" yaml:"dir" toml:"dir"`
	Export          bool                      `json:"export" yaml:"export" toml:"export"`
	AWSProfile      string                    `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	Policy          analytics.PolicyOverrides `json:"policy" yaml:"policy" toml:"policy"`
}
