package repository

import (
	"context"

	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
)

// LogsRepository defines the interface for CloudWatch Logs and account-level
// AWS API interactions.
type LogsRepository interface {
	// Log Group Operations
	ListLogGroups(ctx context.Context, region string) ([]string, error)
	HasSubscriptionFilter(ctx context.Context, region, logGroup string) (bool, error)
	PutSubscriptionFilter(ctx context.Context, region, logGroup string, filter entity.SubscriptionFilter) error
	PutRetentionPolicy(ctx context.Context, region, logGroup string, retentionDays int32) error

	// Account Operations
	GetAccountID(ctx context.Context) (string, error)
	GetAccessibleRegions(ctx context.Context) ([]string, error)
}
