package entity

// RunResult aggregates the outcome of a single enforcement run. The JSON shape
// is the contract returned to the Lambda caller and written to the run log.
type RunResult struct {
	Timestamp         string     `json:"timestamp"`
	AccountID         string     `json:"account_id"`
	Region            string     `json:"region"`
	FirehoseStream    string     `json:"firehose_stream"`
	DryRun            bool       `json:"dry_run"`
	TotalLogGroups    int        `json:"total_log_groups"`
	ExistingFilters   int        `json:"existing_filters"`
	NewFiltersAdded   int        `json:"new_filters_added"`
	WouldUpdate       int        `json:"would_update"`
	FailedUpdates     int        `json:"failed_updates"`
	Details           RunDetails `json:"details"`
	NotificationSent  bool       `json:"notification_sent"`
	NotificationError string     `json:"notification_error,omitempty"`
}

// RunDetails lists every discovered log group under exactly one category.
type RunDetails struct {
	WithFilters []string         `json:"log_groups_with_filters"`
	Updated     []string         `json:"log_groups_updated"`
	WouldUpdate []string         `json:"log_groups_would_update"`
	Failed      []FailedLogGroup `json:"log_groups_failed"`
}

// FailedLogGroup records a log group whose reconciliation failed, with the
// error flattened to a human-readable string.
type FailedLogGroup struct {
	LogGroup string `json:"log_group"`
	Error    string `json:"error"`
}

// NewRunResult returns a RunResult with the detail lists initialized, so the
// JSON output always carries arrays instead of nulls.
func NewRunResult() RunResult {
	return RunResult{
		Details: RunDetails{
			WithFilters: []string{},
			Updated:     []string{},
			WouldUpdate: []string{},
			Failed:      []FailedLogGroup{},
		},
	}
}
