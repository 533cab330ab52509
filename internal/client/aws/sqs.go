package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	// LongPollSeconds is the SQS maximum receive wait
	LongPollSeconds   = 20
	maxReceiveBatch   = 10
	visibilitySeconds = 60
)

// QueueAPI is the part of the SQS client used here
type QueueAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Message is a received queue message
type Message struct {
	ID            string
	ReceiptHandle string
	Body          string
}

// SQSClient receives and deletes messages on one queue
type SQSClient struct {
	api      QueueAPI
	queueURL string
	waitTime int32
}

// NewSQSClient creates a queue client. AWS_ENDPOINT_URL_SQS overrides the
// service endpoint.
func NewSQSClient(cfg aws.Config, queueURL string) *SQSClient {
	endpoint := os.Getenv("AWS_ENDPOINT_URL_SQS")
	api := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return NewSQSClientWithAPI(api, queueURL, LongPollSeconds)
}

// NewSQSClientWithAPI wraps an existing API implementation
func NewSQSClientWithAPI(api QueueAPI, queueURL string, waitSeconds int32) *SQSClient {
	return &SQSClient{api: api, queueURL: queueURL, waitTime: waitSeconds}
}

// QueueURL returns the queue this client reads
func (c *SQSClient) QueueURL() string {
	return c.queueURL
}

// Receive long-polls for up to ten messages
func (c *SQSClient) Receive(ctx context.Context) ([]Message, error) {
	out, err := c.api.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.queueURL),
		MaxNumberOfMessages: maxReceiveBatch,
		WaitTimeSeconds:     c.waitTime,
		VisibilityTimeout:   visibilitySeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to receive from SQS: %w", err)
	}

	messages := make([]Message, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, Message{
			ID:            aws.ToString(m.MessageId),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
			Body:          aws.ToString(m.Body),
		})
	}
	return messages, nil
}

// Delete acknowledges a handled message
func (c *SQSClient) Delete(ctx context.Context, receiptHandle string) error {
	_, err := c.api.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("failed to delete SQS message: %w", err)
	}
	return nil
}
