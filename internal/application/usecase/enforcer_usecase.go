package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/repository"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/shared/types"
)

// EnforcerUseCase handles the main enforcement functionality: discover every
// log group, ensure each one forwards to the Firehose delivery stream, and
// report the outcome through the notification channel.
type EnforcerUseCase struct {
	logsRepo repository.LogsRepository
	notifier repository.NotificationRepository
	console  types.ConsoleInterface
	now      func() time.Time
}

// NewEnforcerUseCase creates a new enforcer use case.
func NewEnforcerUseCase(
	logsRepo repository.LogsRepository,
	notifier repository.NotificationRepository,
	console types.ConsoleInterface,
) *EnforcerUseCase {
	return &EnforcerUseCase{
		logsRepo: logsRepo,
		notifier: notifier,
		console:  console,
		now:      time.Now,
	}
}

// Run executes one enforcement pass for the configured account/region.
// Discovery errors abort the run; everything after that is contained per
// log group, and notification failures only mark the result.
func (uc *EnforcerUseCase) Run(ctx context.Context, settings types.Settings) (entity.RunResult, error) {
	result := entity.NewRunResult()
	result.Timestamp = uc.now().Format(time.RFC3339)
	result.AccountID = settings.AccountID
	result.Region = settings.Region
	result.FirehoseStream = settings.FirehoseStreamName
	result.DryRun = settings.DryRun

	if settings.FirehoseStreamName == "" {
		return result, types.ErrMissingStreamName
	}

	logGroups, err := uc.logsRepo.ListLogGroups(ctx, settings.Region)
	if err != nil {
		return result, fmt.Errorf("failed to list log groups: %w", err)
	}
	result.TotalLogGroups = len(logGroups)
	uc.console.LogInfo("Discovered %d log groups in %s", len(logGroups), settings.Region)

	filter := entity.SubscriptionFilter{
		FilterName:     settings.FilterName,
		FilterPattern:  settings.FilterPattern,
		DestinationARN: settings.FirehoseARN(),
		RoleARN:        settings.RoleARN(),
	}

	// Cada log group é reconciliado isoladamente: uma falha nunca interrompe
	// o processamento dos demais.
	progress := uc.console.ProgressWithTotal(len(logGroups))
	for _, logGroup := range logGroups {
		uc.reconcileLogGroup(ctx, settings, filter, logGroup, &result)
		progress.Increment()
	}
	progress.Stop()

	uc.notify(ctx, settings, &result)

	return result, nil
}

// reconcileLogGroup classifies one log group into exactly one of the four
// result categories. Presence of any filter suppresses action; contents are
// never diffed.
func (uc *EnforcerUseCase) reconcileLogGroup(
	ctx context.Context,
	settings types.Settings,
	filter entity.SubscriptionFilter,
	logGroup string,
	result *entity.RunResult,
) {
	hasFilter, err := uc.logsRepo.HasSubscriptionFilter(ctx, settings.Region, logGroup)
	if err != nil {
		uc.console.LogWarning("Could not check subscription filters for %s: %s", logGroup, err)
		result.FailedUpdates++
		result.Details.Failed = append(result.Details.Failed, entity.FailedLogGroup{
			LogGroup: logGroup,
			Error:    err.Error(),
		})
		return
	}

	if hasFilter {
		result.ExistingFilters++
		result.Details.WithFilters = append(result.Details.WithFilters, logGroup)
		return
	}

	if settings.DryRun {
		result.WouldUpdate++
		result.Details.WouldUpdate = append(result.Details.WouldUpdate, logGroup)
		return
	}

	if err := uc.logsRepo.PutSubscriptionFilter(ctx, settings.Region, logGroup, filter); err != nil {
		uc.console.LogWarning("Failed to create subscription filter on %s: %s", logGroup, err)
		result.FailedUpdates++
		result.Details.Failed = append(result.Details.Failed, entity.FailedLogGroup{
			LogGroup: logGroup,
			Error:    err.Error(),
		})
		return
	}

	result.NewFiltersAdded++
	result.Details.Updated = append(result.Details.Updated, logGroup)
}

// notify delivers the run summary through the account's SNS email channel,
// creating topic and subscription when absent. Any failure here is recorded
// in the result and never propagated.
func (uc *EnforcerUseCase) notify(ctx context.Context, settings types.Settings, result *entity.RunResult) {
	if !settings.EmailNotification || settings.NotificationEmail == "" {
		return
	}

	topicName := settings.TopicName()

	// O match por substring reproduz o comportamento do monitor original:
	// o primeiro tópico cujo ARN contém o nome derivado é reutilizado.
	topicARN, err := uc.notifier.FindTopic(ctx, settings.Region, topicName)
	if err != nil {
		result.NotificationError = err.Error()
		return
	}

	if topicARN == "" {
		topicARN, err = uc.notifier.CreateTopic(ctx, settings.Region, topicName)
		if err != nil {
			result.NotificationError = err.Error()
			return
		}
		if err := uc.notifier.SubscribeEmail(ctx, settings.Region, topicARN, settings.NotificationEmail); err != nil {
			result.NotificationError = err.Error()
			return
		}
	}

	subject := fmt.Sprintf("CloudWatch Log Filter Report - %s - %d Updates",
		settings.AccountID, result.NewFiltersAdded)

	if err := uc.notifier.Publish(ctx, settings.Region, topicARN, subject, buildSummary(*result)); err != nil {
		result.NotificationError = err.Error()
		return
	}

	result.NotificationSent = true
}

// buildSummary renders the fixed-format report body sent by email.
func buildSummary(result entity.RunResult) string {
	return fmt.Sprintf(`CloudWatch Log Subscription Filter Report

Account: %s
Region: %s
Timestamp: %s
Firehose: %s
Dry Run Mode: %t

Summary:
- Total Log Groups: %d
- Log Groups with Existing Filters: %d
- Log Groups Successfully Updated: %d
- Log Groups That Would Be Updated (Dry Run): %d
- Log Groups Failed to Update: %d

See the run logs for full details.
`,
		result.AccountID,
		result.Region,
		result.Timestamp,
		result.FirehoseStream,
		result.DryRun,
		result.TotalLogGroups,
		result.ExistingFilters,
		result.NewFiltersAdded,
		result.WouldUpdate,
		result.FailedUpdates,
	)
}
