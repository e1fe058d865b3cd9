package lambdahandler

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/application/usecase"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/repository"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/shared/types"
)

// Retention applied to the function's own log group on every run.
const ownLogGroupRetentionDays = 30

// Handler adapts a Lambda invocation to the enforcer use case.
type Handler struct {
	useCase  *usecase.EnforcerUseCase
	logsRepo repository.LogsRepository
	console  types.ConsoleInterface
}

// NewHandler cria um novo Handler.
func NewHandler(
	useCase *usecase.EnforcerUseCase,
	logsRepo repository.LogsRepository,
	console types.ConsoleInterface,
) *Handler {
	return &Handler{
		useCase:  useCase,
		logsRepo: logsRepo,
		console:  console,
	}
}

// Handle processes one invocation. The event payload is ignored; account ID
// comes from the invoked function ARN and the rest of the configuration from
// environment variables. The RunResult is returned to the caller and also
// printed as indented JSON to the function's log stream.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (entity.RunResult, error) {
	settings := types.SettingsFromEnv()

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		settings.AccountID = AccountIDFromARN(lc.InvokedFunctionArn)
	}

	// Housekeeping: mantém a retenção do log group desta função em 30 dias.
	// Falha aqui é apenas logada e não aparece no RunResult.
	if functionName := lambdacontext.FunctionName; functionName != "" {
		ownLogGroup := "/aws/lambda/" + functionName
		if err := h.logsRepo.PutRetentionPolicy(ctx, settings.Region, ownLogGroup, ownLogGroupRetentionDays); err != nil {
			h.console.LogWarning("Could not set retention policy on %s: %s", ownLogGroup, err)
		}
	}

	result, err := h.useCase.Run(ctx, settings)
	if err != nil {
		return result, err
	}

	if out, marshalErr := json.MarshalIndent(result, "", "  "); marshalErr == nil {
		h.console.Println(string(out))
	}

	return result, nil
}

// AccountIDFromARN extracts the account ID from an ARN such as
// arn:aws:lambda:us-east-1:123456789012:function:log-subscriber.
func AccountIDFromARN(arn string) string {
	parts := strings.Split(arn, ":")
	if len(parts) > 4 {
		return parts[4]
	}
	return ""
}
