package repository

import "context"

// NotificationRepository defines the interface for the SNS email channel.
type NotificationRepository interface {
	// FindTopic returns the ARN of the first listed topic whose ARN contains
	// name, or "" when none matches.
	FindTopic(ctx context.Context, region, name string) (string, error)
	CreateTopic(ctx context.Context, region, name string) (string, error)
	SubscribeEmail(ctx context.Context, region, topicARN, email string) error
	Publish(ctx context.Context, region, topicARN, subject, message string) error
}
