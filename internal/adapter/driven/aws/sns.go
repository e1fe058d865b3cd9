package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// FindTopic percorre os tópicos da conta e devolve o ARN do primeiro cujo
// ARN contém name. Devolve "" quando nenhum corresponde.
func (r *AWSRepositoryImpl) FindTopic(ctx context.Context, region, name string) (string, error) {
	client, err := r.getServiceClient(ctx, region, "sns")
	if err != nil {
		return "", err
	}
	snsClient := client.(*sns.Client)

	p := sns.NewListTopicsPaginator(snsClient, &sns.ListTopicsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("error listing SNS topics: %w", err)
		}
		for _, topic := range page.Topics {
			arn := aws.ToString(topic.TopicArn)
			if strings.Contains(arn, name) {
				return arn, nil
			}
		}
	}

	return "", nil
}

// CreateTopic creates the notification topic and returns its ARN. SNS topic
// creation is idempotent for an identical name.
func (r *AWSRepositoryImpl) CreateTopic(ctx context.Context, region, name string) (string, error) {
	client, err := r.getServiceClient(ctx, region, "sns")
	if err != nil {
		return "", err
	}
	snsClient := client.(*sns.Client)

	result, err := snsClient.CreateTopic(ctx, &sns.CreateTopicInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("error creating SNS topic %s: %w", name, err)
	}

	return aws.ToString(result.TopicArn), nil
}

// SubscribeEmail subscribes the email endpoint to the topic. The subscription
// stays pending until the recipient confirms it.
func (r *AWSRepositoryImpl) SubscribeEmail(ctx context.Context, region, topicARN, email string) error {
	client, err := r.getServiceClient(ctx, region, "sns")
	if err != nil {
		return err
	}
	snsClient := client.(*sns.Client)

	_, err = snsClient.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn: aws.String(topicARN),
		Protocol: aws.String("email"),
		Endpoint: aws.String(email),
	})
	if err != nil {
		return fmt.Errorf("error subscribing %s to topic: %w", email, err)
	}

	return nil
}

// Publish envia o resumo do run para o tópico de notificação.
func (r *AWSRepositoryImpl) Publish(ctx context.Context, region, topicARN, subject, message string) error {
	client, err := r.getServiceClient(ctx, region, "sns")
	if err != nil {
		return err
	}
	snsClient := client.(*sns.Client)

	_, err = snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("error publishing to topic: %w", err)
	}

	return nil
}
