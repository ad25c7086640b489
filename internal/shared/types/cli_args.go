package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	EnvFile    string
	Source     string
	Preset     string
	From       string
	To         string
	Client     string
	AllWeeks   bool
	Watch      bool
	Refresh    time.Duration
	Sections   []string
	ReportName string
	Dir        string
	Export     bool
	Timezone   string
	AWSProfile string
}
