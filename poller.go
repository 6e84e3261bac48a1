package sqslambda

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// maxMessages matches the event source mapping's default batch size.
	maxMessages = 10
	// waitTimeSeconds enables SQS long polling, reducing cost and empty responses.
	waitTimeSeconds = 10
	// deleteTimeout sets a client-side timeout for the DeleteMessage API call.
	deleteTimeout = 5 * time.Second
	// receiveRetryDelay is the pause before re-polling after a receive error.
	receiveRetryDelay = 2 * time.Second
)

// SQSClient defines the interface for SQS operations needed by the Poller.
// This allows for easier testing by mocking the SQS client.
type SQSClient interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Poller drives the batch handler from a live queue, outside Lambda. It
// mirrors the event source mapping's partial batch response semantics:
// records absent from the failure report are deleted, reported records are
// left on the queue for the redrive policy. Intended as test scaffolding
// against a real or emulated queue.
type Poller struct {
	client   SQSClient
	queueURL string
	handler  *Handler
	logger   zerolog.Logger
}

// NewPoller creates a poller feeding batches from queueURL into handler.
func NewPoller(client SQSClient, queueURL string, handler *Handler, logger zerolog.Logger) *Poller {
	return &Poller{
		client:   client,
		queueURL: queueURL,
		handler:  handler,
		logger:   logger.With().Str("queue", queueURL).Logger(),
	}
}

// Start begins the polling loop. It blocks until the context is canceled;
// the batch in flight when cancellation arrives is drained before returning.
func (p *Poller) Start(ctx context.Context) {
	p.logger.Info().Msg("poller started")

	for {
		if ctx.Err() != nil {
			break
		}

		output, err := p.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(p.queueURL),
			MaxNumberOfMessages: maxMessages,
			WaitTimeSeconds:     waitTimeSeconds,
			MessageSystemAttributeNames: []types.MessageSystemAttributeName{
				types.MessageSystemAttributeNameApproximateReceiveCount,
				types.MessageSystemAttributeNameSentTimestamp,
			},
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			p.logger.Error().Err(err).Msg("receive failed, retrying")
			time.Sleep(receiveRetryDelay)
			continue
		}

		if len(output.Messages) == 0 {
			continue
		}
		p.drainBatch(ctx, output.Messages)
	}

	p.logger.Info().Msg("poller stopped")
}

// drainBatch runs one received batch through the handler and deletes every
// message the failure report does not name. A handler error means no record
// was dispositioned, so nothing is deleted and the whole batch redelivers.
func (p *Poller) drainBatch(ctx context.Context, messages []types.Message) {
	// Synthesize the invocation identity Lambda would provide.
	invCtx := lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       "local-" + uuid.NewString(),
		InvokedFunctionArn: "local:poller",
	})

	response, err := p.handler.Handle(invCtx, events.SQSEvent{Records: p.toRecords(messages)})
	if err != nil {
		p.logger.Error().Err(err).Msg("handler failed, batch left for redelivery")
		return
	}

	failed := make(map[string]struct{}, len(response.BatchItemFailures))
	for _, f := range response.BatchItemFailures {
		failed[f.ItemIdentifier] = struct{}{}
	}

	for _, msg := range messages {
		id := aws.ToString(msg.MessageId)
		if _, ok := failed[id]; ok {
			continue
		}

		deleteCtx, cancel := context.WithTimeout(context.Background(), deleteTimeout)
		_, err := p.client.DeleteMessage(deleteCtx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(p.queueURL),
			ReceiptHandle: msg.ReceiptHandle,
		})
		cancel()
		if err != nil {
			p.logger.Error().Err(err).Str("message_id", id).Msg("failed to delete message")
		}
	}
}

// toRecords adapts received SQS messages to the Lambda event shape.
func (p *Poller) toRecords(messages []types.Message) []events.SQSMessage {
	records := make([]events.SQSMessage, 0, len(messages))
	for _, msg := range messages {
		records = append(records, events.SQSMessage{
			MessageId:      aws.ToString(msg.MessageId),
			ReceiptHandle:  aws.ToString(msg.ReceiptHandle),
			Body:           aws.ToString(msg.Body),
			Md5OfBody:      aws.ToString(msg.MD5OfBody),
			Attributes:     msg.Attributes,
			EventSource:    "aws:sqs",
			EventSourceARN: p.queueURL,
		})
	}
	return records
}
