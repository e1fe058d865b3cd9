package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Profile        string
	Regions        []string
	AllRegions     bool
	Stream         string
	FilterName     string
	FilterPattern  string
	RoleName       string
	DryRun         bool
	Email          string
	NoNotification bool
	ReportName     string
	ReportType     []string
	Dir            string
}
