package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
)

// AWSRepositoryImpl implementa LogsRepository e NotificationRepository com
// cache de clientes por região/serviço.
type AWSRepositoryImpl struct {
	profile     string
	maxAttempts int

	cfg         *aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository creates the AWS-backed repository. profile may be empty
// (Lambda execution role / default credential chain); maxAttempts <= 0 keeps
// the SDK's standard retryer.
func NewAWSRepository(profile string, maxAttempts int) *AWSRepositoryImpl {
	return &AWSRepositoryImpl{
		profile:     profile,
		maxAttempts: maxAttempts,
		clientCache: make(map[string]interface{}),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg != nil {
		return *r.cfg, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	if r.maxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(r.maxAttempts))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	r.cfg = &cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, region, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s", region, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "ec2":
		client = ec2.NewFromConfig(regionalCfg)
	case "cloudwatchlogs":
		client = cloudwatchlogs.NewFromConfig(regionalCfg)
	case "sns":
		client = sns.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	client, err := r.getServiceClient(ctx, "", "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return *result.Account, nil
}

func (r *AWSRepositoryImpl) GetAccessibleRegions(ctx context.Context) ([]string, error) {
	defaultRegions := []string{"us-east-1", "us-east-2", "us-west-1", "us-west-2", "eu-west-1", "eu-central-1"}

	client, err := r.getServiceClient(ctx, "us-east-1", "ec2")
	if err != nil {
		return defaultRegions, fmt.Errorf("could not create EC2 client to list regions: %w", err)
	}
	ec2Client := client.(*ec2.Client)

	regionsOutput, err := ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: aws.Bool(false)})
	if err != nil {
		return defaultRegions, nil
	}

	accessibleRegions := make([]string, 0, len(regionsOutput.Regions))
	for _, region := range regionsOutput.Regions {
		accessibleRegions = append(accessibleRegions, *region.RegionName)
	}
	return accessibleRegions, nil
}

// ListLogGroups enumera todos os log groups da região, paginando até o fim.
func (r *AWSRepositoryImpl) ListLogGroups(ctx context.Context, region string) ([]string, error) {
	client, err := r.getServiceClient(ctx, region, "cloudwatchlogs")
	if err != nil {
		return nil, err
	}
	cwlClient := client.(*cloudwatchlogs.Client)

	var logGroups []string
	p := cloudwatchlogs.NewDescribeLogGroupsPaginator(cwlClient, &cloudwatchlogs.DescribeLogGroupsInput{
		Limit: aws.Int32(50),
	})

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing log groups in %s: %w", region, err)
		}
		for _, lg := range page.LogGroups {
			logGroups = append(logGroups, aws.ToString(lg.LogGroupName))
		}
	}

	return logGroups, nil
}

// HasSubscriptionFilter reports whether the log group has at least one
// subscription filter, regardless of who created it.
func (r *AWSRepositoryImpl) HasSubscriptionFilter(ctx context.Context, region, logGroup string) (bool, error) {
	client, err := r.getServiceClient(ctx, region, "cloudwatchlogs")
	if err != nil {
		return false, err
	}
	cwlClient := client.(*cloudwatchlogs.Client)

	result, err := cwlClient.DescribeSubscriptionFilters(ctx, &cloudwatchlogs.DescribeSubscriptionFiltersInput{
		LogGroupName: aws.String(logGroup),
	})
	if err != nil {
		return false, fmt.Errorf("error describing subscription filters for %s: %w", logGroup, err)
	}

	return len(result.SubscriptionFilters) > 0, nil
}

// PutSubscriptionFilter creates (or overwrites, by name) the subscription
// filter forwarding the log group to the Firehose delivery stream.
func (r *AWSRepositoryImpl) PutSubscriptionFilter(ctx context.Context, region, logGroup string, filter entity.SubscriptionFilter) error {
	client, err := r.getServiceClient(ctx, region, "cloudwatchlogs")
	if err != nil {
		return err
	}
	cwlClient := client.(*cloudwatchlogs.Client)

	_, err = cwlClient.PutSubscriptionFilter(ctx, &cloudwatchlogs.PutSubscriptionFilterInput{
		LogGroupName:   aws.String(logGroup),
		FilterName:     aws.String(filter.FilterName),
		FilterPattern:  aws.String(filter.FilterPattern),
		DestinationArn: aws.String(filter.DestinationARN),
		RoleArn:        aws.String(filter.RoleARN),
	})
	if err != nil {
		return fmt.Errorf("error putting subscription filter on %s: %w", logGroup, err)
	}

	return nil
}

// PutRetentionPolicy define a política de retenção do log group informado.
func (r *AWSRepositoryImpl) PutRetentionPolicy(ctx context.Context, region, logGroup string, retentionDays int32) error {
	client, err := r.getServiceClient(ctx, region, "cloudwatchlogs")
	if err != nil {
		return err
	}
	cwlClient := client.(*cloudwatchlogs.Client)

	_, err = cwlClient.PutRetentionPolicy(ctx, &cloudwatchlogs.PutRetentionPolicyInput{
		LogGroupName:    aws.String(logGroup),
		RetentionInDays: aws.Int32(retentionDays),
	})
	if err != nil {
		return fmt.Errorf("error setting retention policy on %s: %w", logGroup, err)
	}

	return nil
}
