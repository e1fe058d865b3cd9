package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile       string   `json:"profile" yaml:"profile" toml:"profile"`
	Regions       []string `json:"regions" yaml:"regions" toml:"regions"`
	AllRegions    bool     `json:"all_regions" yaml:"all_regions" toml:"all_regions"`
	Stream        string   `json:"stream" yaml:"stream" toml:"stream"`
	FilterName    string   `json:"filter_name" yaml:"filter_name" toml:"filter_name"`
	FilterPattern string   `json:"filter_pattern" yaml:"filter_pattern" toml:"filter_pattern"`
	RoleName      string   `json:"role_name" yaml:"role_name" toml:"role_name"`
	DryRun        bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Email         string   `json:"email" yaml:"email" toml:"email"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
}
