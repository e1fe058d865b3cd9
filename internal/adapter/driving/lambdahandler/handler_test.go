package lambdahandler

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudporter/aws-logsub-enforcer-go/internal/application/usecase"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/shared/types"
)

type stubLogsRepo struct {
	groups          []string
	retentionCalls  map[string]int32
	putFilterGroups []string
}

func (s *stubLogsRepo) ListLogGroups(ctx context.Context, region string) ([]string, error) {
	return s.groups, nil
}

func (s *stubLogsRepo) HasSubscriptionFilter(ctx context.Context, region, logGroup string) (bool, error) {
	return false, nil
}

func (s *stubLogsRepo) PutSubscriptionFilter(ctx context.Context, region, logGroup string, filter entity.SubscriptionFilter) error {
	s.putFilterGroups = append(s.putFilterGroups, logGroup)
	return nil
}

func (s *stubLogsRepo) PutRetentionPolicy(ctx context.Context, region, logGroup string, retentionDays int32) error {
	if s.retentionCalls == nil {
		s.retentionCalls = map[string]int32{}
	}
	s.retentionCalls[logGroup] = retentionDays
	return nil
}

func (s *stubLogsRepo) GetAccountID(ctx context.Context) (string, error) {
	return "", nil
}

func (s *stubLogsRepo) GetAccessibleRegions(ctx context.Context) ([]string, error) {
	return nil, nil
}

type stubNotifier struct{}

func (stubNotifier) FindTopic(ctx context.Context, region, name string) (string, error) {
	return "", nil
}
func (stubNotifier) CreateTopic(ctx context.Context, region, name string) (string, error) {
	return "arn:aws:sns:us-east-1:123456789012:" + name, nil
}
func (stubNotifier) SubscribeEmail(ctx context.Context, region, topicARN, email string) error {
	return nil
}
func (stubNotifier) Publish(ctx context.Context, region, topicARN, subject, message string) error {
	return nil
}

type silentConsole struct{}

func (silentConsole) Print(a ...interface{})                        {}
func (silentConsole) Printf(format string, a ...interface{})        {}
func (silentConsole) Println(a ...interface{})                      {}
func (silentConsole) LogInfo(format string, a ...interface{})       {}
func (silentConsole) LogWarning(format string, a ...interface{})    {}
func (silentConsole) LogError(format string, a ...interface{})      {}
func (silentConsole) LogSuccess(format string, a ...interface{})    {}
func (silentConsole) Status(message string) types.StatusHandle      { return silentHandle{} }
func (silentConsole) ProgressWithTotal(int) types.ProgressHandle    { return silentHandle{} }
func (silentConsole) CreateTable() types.TableInterface             { return nil }

type silentHandle struct{}

func (silentHandle) Update(message string) {}
func (silentHandle) Increment()            {}
func (silentHandle) Stop()                 {}

func TestAccountIDFromARN(t *testing.T) {
	tests := []struct {
		name string
		arn  string
		want string
	}{
		{
			name: "lambda function ARN",
			arn:  "arn:aws:lambda:us-east-1:123456789012:function:log-subscriber",
			want: "123456789012",
		},
		{
			name: "truncated ARN",
			arn:  "arn:aws:lambda",
			want: "",
		},
		{
			name: "empty string",
			arn:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountIDFromARN(tt.arn))
		})
	}
}

func TestHandleExtractsAccountAndSetsOwnRetention(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("FIREHOSE_STREAM_NAME", "central-logs")
	t.Setenv("EMAIL_NOTIFICATION", "false")

	lambdacontext.FunctionName = "log-subscriber"

	logs := &stubLogsRepo{groups: []string{"/aws/lambda/other"}}
	uc := usecase.NewEnforcerUseCase(logs, stubNotifier{}, silentConsole{})
	handler := NewHandler(uc, logs, silentConsole{})

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		InvokedFunctionArn: "arn:aws:lambda:us-east-1:123456789012:function:log-subscriber",
	})

	result, err := handler.Handle(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, "123456789012", result.AccountID)
	assert.Equal(t, "us-east-1", result.Region)
	assert.Equal(t, 1, result.TotalLogGroups)
	assert.Equal(t, int32(30), logs.retentionCalls["/aws/lambda/log-subscriber"])
}

func TestHandleReturnsDiscoveryErrorToCaller(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("FIREHOSE_STREAM_NAME", "")

	lambdacontext.FunctionName = "log-subscriber"

	logs := &stubLogsRepo{}
	uc := usecase.NewEnforcerUseCase(logs, stubNotifier{}, silentConsole{})
	handler := NewHandler(uc, logs, silentConsole{})

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		InvokedFunctionArn: "arn:aws:lambda:us-east-1:123456789012:function:log-subscriber",
	})

	_, err := handler.Handle(ctx, nil)
	assert.ErrorIs(t, err, types.ErrMissingStreamName)
}
