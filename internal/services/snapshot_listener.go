package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	awsclient "github.com/h2grid/h2grid-api/internal/client/aws"
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"go.uber.org/zap"
)

// ErrMalformedMessage marks a notification that can never be processed
var ErrMalformedMessage = errors.New("malformed snapshot message")

// DefaultReceiveErrorBackoff is the pause after a failed receive
const DefaultReceiveErrorBackoff = 5 * time.Second

// SnapshotMessage is the notification published by the optimizer. Without
// a snapshot the stored one is reloaded.
type SnapshotMessage struct {
	ProjectID string                  `json:"project_id"`
	Snapshot  *business.DashboardData `json:"snapshot,omitempty"`
}

// SnapshotListener turns queue notifications into snapshot deliveries
type SnapshotListener struct {
	queue        interfaces.SnapshotQueue
	publisher    interfaces.SnapshotPublisher
	logger       *zap.Logger
	errorBackoff time.Duration

	stopCh   chan struct{}
	wg       sync.WaitGroup
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// NewSnapshotListener creates a listener. queue may be nil when the
// listener is only used as a Lambda SQS handler.
func NewSnapshotListener(queue interfaces.SnapshotQueue, publisher interfaces.SnapshotPublisher, log *zap.Logger) *SnapshotListener {
	return &SnapshotListener{
		queue:        queue,
		publisher:    publisher,
		logger:       logger.OrNop(log),
		errorBackoff: DefaultReceiveErrorBackoff,
		stopCh:       make(chan struct{}),
	}
}

// Start begins polling the queue
func (l *SnapshotListener) Start() {
	l.startMu.Lock()
	defer l.startMu.Unlock()
	if l.started || l.queue == nil {
		return
	}
	l.started = true

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	l.logger.Info("Starting snapshot listener")
	l.wg.Add(1)
	go l.run(ctx)
}

// Stop halts polling and waits for the in-flight batch
func (l *SnapshotListener) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
		l.startMu.Lock()
		if l.cancel != nil {
			l.cancel()
		}
		l.startMu.Unlock()
		l.wg.Wait()
		l.logger.Info("Snapshot listener stopped")
	})
}

func (l *SnapshotListener) run(ctx context.Context) {
	defer l.wg.Done()

	for {
		select {
		case <-l.stopCh:
			return
		default:
		}

		messages, err := l.queue.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Error("Failed to receive snapshot messages", zap.Error(err))
			select {
			case <-time.After(l.errorBackoff):
			case <-l.stopCh:
				return
			}
			continue
		}

		for _, msg := range messages {
			l.handle(ctx, msg)
		}
	}
}

// handle processes one polled message. Processed and malformed messages
// are deleted; a failed delivery is left for the queue to redeliver.
func (l *SnapshotListener) handle(ctx context.Context, msg awsclient.Message) {
	err := l.Process(ctx, msg.Body)
	if err != nil && !errors.Is(err, ErrMalformedMessage) {
		l.logger.Error("Failed to process snapshot message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}
	if err != nil {
		l.logger.Warn("Dropping malformed snapshot message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}

	if err := l.queue.Delete(ctx, msg.ReceiptHandle); err != nil {
		l.logger.Error("Failed to delete snapshot message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}

// Process applies one notification body
func (l *SnapshotListener) Process(ctx context.Context, body string) error {
	var msg SnapshotMessage
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	projectID, err := uuid.Parse(msg.ProjectID)
	if err != nil {
		return fmt.Errorf("%w: invalid project_id %q", ErrMalformedMessage, msg.ProjectID)
	}

	var delivered int
	if msg.Snapshot != nil {
		delivered, err = l.publisher.PublishSnapshot(ctx, projectID, msg.Snapshot)
	} else {
		delivered, err = l.publisher.ReloadSnapshot(ctx, projectID)
	}
	if err != nil {
		return err
	}

	l.logger.Info("Processed snapshot message",
		zap.String("project_id", projectID.String()),
		zap.Bool("inline_snapshot", msg.Snapshot != nil),
		zap.Int("sessions", delivered))
	return nil
}

// HandleSQSEvent processes a Lambda SQS batch. Failed records are reported
// back so only they are retried; malformed ones are dropped.
func (l *SnapshotListener) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	l.logger.Info("Snapshot processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	var response events.SQSEventResponse
	for _, record := range event.Records {
		err := l.Process(ctx, record.Body)
		switch {
		case err == nil:
		case errors.Is(err, ErrMalformedMessage):
			l.logger.Warn("Dropping malformed snapshot message",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
		default:
			l.logger.Error("Failed to process snapshot record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures,
				events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}
	return response, nil
}
