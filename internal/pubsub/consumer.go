package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
	"github.com/nikmy/palettes/pkg/tools/await"
)

const defaultRetryDelay = time.Second

func NewKafkaTail(cfg Config, log logger.Logger) (*Tail, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.Error("changefeed needs brokers and a topic")
	}

	readerCfg := kafka.ReaderConfig{
		Brokers:       cfg.Brokers,
		Topic:         cfg.Topic,
		GroupID:       cfg.Group,
		StartOffset:   kafka.LastOffset,
		QueueCapacity: 1024,
		MaxAttempts:   3,
	}

	return newTail(kafka.NewReader(readerCfg), cfg.Group != "", defaultRetryDelay, log), nil
}

func newTail(r messageReader, commit bool, retryDelay time.Duration, log logger.Logger) *Tail {
	return &Tail{
		reader:     r,
		commit:     commit,
		retryDelay: retryDelay,
		logger:     log.With("kafka_tail"),
	}
}

// Tail reads the changefeed back.
type Tail struct {
	reader     messageReader
	commit     bool
	retryDelay time.Duration
	logger     logger.Logger
}

// Follow hands every event to consume until ctx is done. Messages that do
// not decode are logged and skipped.
func (t *Tail) Follow(ctx context.Context, consume func(RawEvent)) error {
	for {
		msg, err := t.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.logger.Error(errors.WrapFail(err, "fetch message"))
			if !await.For(t.retryDelay, 0).Await(ctx) {
				return ctx.Err()
			}
			continue
		}

		var event RawEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			t.logger.Warn(errors.WrapFailf(err, "decode message at offset %d", msg.Offset))
		} else {
			consume(event)
		}

		if !t.commit {
			continue
		}

		if err := t.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.logger.Error(errors.WrapFail(err, "commit message"))
		}
	}
}

func (t *Tail) Close() error {
	return errors.WrapFail(t.reader.Close(), "close kafka reader")
}
