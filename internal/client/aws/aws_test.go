package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	values map[string]string
	err    error
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[aws.ToString(in.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

func TestGetSecretString(t *testing.T) {
	client := NewSecretsManagerClientWithAPI(&fakeSecrets{values: map[string]string{"arn:jwt": "from-sm"}})
	ctx := context.Background()

	t.Run("reads from secrets manager", func(t *testing.T) {
		t.Setenv("JWT_ARN", "arn:jwt")
		t.Setenv("JWT", "from-env")
		value, err := client.GetSecretString(ctx, "JWT_ARN", "JWT")
		require.NoError(t, err)
		assert.Equal(t, "from-sm", value)
	})

	t.Run("falls back when fetch fails", func(t *testing.T) {
		t.Setenv("JWT_ARN", "arn:missing")
		t.Setenv("JWT", "from-env")
		value, err := client.GetSecretString(ctx, "JWT_ARN", "JWT")
		require.NoError(t, err)
		assert.Equal(t, "from-env", value)
	})

	t.Run("falls back when arn unset", func(t *testing.T) {
		t.Setenv("JWT_ARN", "")
		t.Setenv("JWT", "from-env")
		value, err := client.GetSecretString(ctx, "JWT_ARN", "JWT")
		require.NoError(t, err)
		assert.Equal(t, "from-env", value)
	})

	t.Run("errors when nothing is set", func(t *testing.T) {
		t.Setenv("JWT_ARN", "")
		t.Setenv("JWT", "")
		_, err := client.GetSecretString(ctx, "JWT_ARN", "JWT")
		assert.Error(t, err)
	})
}

func TestGetSecretJSON(t *testing.T) {
	client := NewSecretsManagerClientWithAPI(&fakeSecrets{values: map[string]string{
		"arn:rds": `{"username":"h2","password":"pw"}`,
		"arn:bad": `not json`,
	}})
	ctx := context.Background()

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	t.Setenv("RDS_SECRET_ARN", "arn:rds")
	require.NoError(t, client.GetSecretJSON(ctx, "RDS_SECRET_ARN", &creds))
	assert.Equal(t, "h2", creds.Username)

	t.Setenv("RDS_SECRET_ARN", "arn:bad")
	assert.Error(t, client.GetSecretJSON(ctx, "RDS_SECRET_ARN", &creds))

	t.Setenv("RDS_SECRET_ARN", "")
	assert.Error(t, client.GetSecretJSON(ctx, "RDS_SECRET_ARN", &creds))
}

type fakeQueue struct {
	receive   *sqs.ReceiveMessageInput
	deleted   []string
	messages  []types.Message
	deleteErr error
}

func (f *fakeQueue) ReceiveMessage(_ context.Context, in *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.receive = in
	return &sqs.ReceiveMessageOutput{Messages: f.messages}, nil
}

func (f *fakeQueue) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, aws.ToString(in.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSQSClient(t *testing.T) {
	queue := &fakeQueue{messages: []types.Message{
		{MessageId: aws.String("m1"), ReceiptHandle: aws.String("r1"), Body: aws.String(`{"project_id":"x"}`)},
	}}
	client := NewSQSClientWithAPI(queue, "https://sqs.local/queue", LongPollSeconds)
	ctx := context.Background()

	messages, err := client.Receive(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, Message{ID: "m1", ReceiptHandle: "r1", Body: `{"project_id":"x"}`}, messages[0])
	assert.Equal(t, int32(LongPollSeconds), queue.receive.WaitTimeSeconds)
	assert.Equal(t, "https://sqs.local/queue", aws.ToString(queue.receive.QueueUrl))

	require.NoError(t, client.Delete(ctx, "r1"))
	assert.Equal(t, []string{"r1"}, queue.deleted)

	queue.deleteErr = errors.New("throttled")
	assert.Error(t, client.Delete(ctx, "r2"))
}
