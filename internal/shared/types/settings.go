package types

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Defaults espelham os valores do monitor original.
const (
	DefaultFilterName  = "CloudWatchToFirehose"
	DefaultIAMRoleName = "CloudWatchLogsToFirehoseRole"
)

// Settings carries the full configuration of one enforcement run. AccountID
// and Region are filled by the driving adapter (Lambda context or STS/CLI).
type Settings struct {
	AccountID          string
	Region             string
	FirehoseStreamName string
	FilterName         string
	FilterPattern      string
	EmailNotification  bool
	NotificationEmail  string
	DryRun             bool
	IAMRoleName        string
	MaxRetryAttempts   int
}

// SettingsFromEnv reads the run configuration from environment variables,
// applying the documented defaults. Region comes from AWS_REGION.
func SettingsFromEnv() Settings {
	return Settings{
		Region:             os.Getenv("AWS_REGION"),
		FirehoseStreamName: os.Getenv("FIREHOSE_STREAM_NAME"),
		FilterName:         envOrDefault("FILTER_NAME", DefaultFilterName),
		FilterPattern:      os.Getenv("FILTER_PATTERN"),
		EmailNotification:  envBool("EMAIL_NOTIFICATION", true),
		NotificationEmail:  os.Getenv("NOTIFICATION_EMAIL"),
		DryRun:             envBool("DRY_RUN", false),
		IAMRoleName:        envOrDefault("IAM_ROLE_NAME", DefaultIAMRoleName),
		MaxRetryAttempts:   envInt("MAX_RETRY_ATTEMPTS", 0),
	}
}

// FirehoseARN builds the delivery stream ARN from region, account and stream name.
func (s Settings) FirehoseARN() string {
	return fmt.Sprintf("arn:aws:firehose:%s:%s:deliverystream/%s", s.Region, s.AccountID, s.FirehoseStreamName)
}

// RoleARN builds the ARN of the role assumed by CloudWatch Logs for delivery.
func (s Settings) RoleARN() string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", s.AccountID, s.IAMRoleName)
}

// TopicName derives the deterministic notification topic name for the account.
func (s Settings) TopicName() string {
	return fmt.Sprintf("CloudWatchFilterMonitor-%s", s.AccountID)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true")
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
