package pubsub

import (
	"context"
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nikmy/palettes/internal/palettes"
	"github.com/nikmy/palettes/internal/simpledb"
	"github.com/nikmy/palettes/internal/storage"
	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

var frozen = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type published struct {
	keys   []string
	events []Event[palettes.Palette]
}

func capturingWriter(t *testing.T, into *published) *MockwriterImpl {
	t.Helper()

	w := NewMockwriterImpl(gomock.NewController(t))
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			for _, msg := range msgs {
				var event Event[palettes.Palette]
				require.NoError(t, json.Unmarshal(msg.Value, &event))
				into.keys = append(into.keys, string(msg.Key))
				into.events = append(into.events, event)
			}
			return nil
		},
	).AnyTimes()

	return w
}

func TestRelay_followsStore(t *testing.T) {
	ctx := context.Background()

	db := simpledb.New(storage.NewMemory(), logger.NewStub())
	table, err := simpledb.Register(db, palettes.Kind)
	require.NoError(t, err)
	require.NoError(t, table.UpsertOne(ctx, palettes.Sand))

	var got published
	relay := newRelay[palettes.Palette](capturingWriter(t, &got), palettes.Tag, 0, logger.NewStub())
	relay.now = func() time.Time { return frozen }

	require.NoError(t, simpledb.AddObserver(ctx, table, relay))
	require.NoError(t, table.UpsertOne(ctx, palettes.BoldGreen))
	require.NoError(t, table.DeleteOne(ctx, palettes.Sand))
	require.NoError(t, db.ResetAll(ctx))

	require.Equal(t, []string{palettes.Tag, palettes.Tag, palettes.Tag, palettes.Tag}, got.keys)
	require.Equal(t, []Event[palettes.Palette]{
		{Tag: palettes.Tag, Type: EventSnapshot, Items: []palettes.Palette{palettes.Sand}, At: frozen},
		{Tag: palettes.Tag, Type: EventChange, Items: []palettes.Palette{palettes.Sand, palettes.BoldGreen}, At: frozen},
		{Tag: palettes.Tag, Type: EventChange, Items: []palettes.Palette{palettes.BoldGreen}, At: frozen},
		{Tag: palettes.Tag, Type: EventChange, Items: []palettes.Palette{}, At: frozen},
	}, got.events)

	runtime.KeepAlive(relay)
}

func TestRelay_Publish_writeError(t *testing.T) {
	errDown := errors.Error("broker down")

	w := NewMockwriterImpl(gomock.NewController(t))
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errDown)

	relay := newRelay[palettes.Palette](w, palettes.Tag, time.Second, logger.NewStub())

	err := relay.Publish(context.Background(), EventChange, nil)
	require.ErrorIs(t, err, errDown)
}

func TestRelay_Close(t *testing.T) {
	w := NewMockwriterImpl(gomock.NewController(t))
	w.EXPECT().Close().Return(nil)

	relay := newRelay[palettes.Palette](w, palettes.Tag, 0, logger.NewStub())
	require.NoError(t, relay.Close())
}

func TestNewKafka_config(t *testing.T) {
	type testcase struct {
		name    string
		cfg     Config
		wantErr bool
	}

	tests := [...]testcase{
		{name: "no brokers", cfg: Config{Topic: "t"}, wantErr: true},
		{name: "no topic", cfg: Config{Brokers: []string{"localhost:9092"}}, wantErr: true},
		{name: "ok", cfg: Config{Brokers: []string{"localhost:9092"}, Topic: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay, err := NewKafkaRelay[palettes.Palette](tt.cfg, palettes.Tag, logger.NewStub())
			tail, tailErr := NewKafkaTail(tt.cfg, logger.NewStub())

			if tt.wantErr {
				require.Error(t, err)
				require.Error(t, tailErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, tailErr)
			require.NoError(t, relay.Close())
			require.NoError(t, tail.Close())
		})
	}
}

func message(t *testing.T, offset int64, event Event[palettes.Palette]) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Key: []byte(event.Tag), Value: value}
}

func TestTail_Follow(t *testing.T) {
	type testcase struct {
		name   string
		commit bool
	}

	tests := [...]testcase{
		{name: "without group"},
		{name: "with group", commit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			first := message(t, 1, Event[palettes.Palette]{Tag: palettes.Tag, Type: EventSnapshot, Items: []palettes.Palette{palettes.Sand}, At: frozen})
			broken := kafka.Message{Offset: 2, Value: []byte("{")}
			second := message(t, 3, Event[palettes.Palette]{Tag: palettes.Tag, Type: EventChange, Items: []palettes.Palette{}, At: frozen})

			r := NewMockreaderImpl(gomock.NewController(t))
			gomock.InOrder(
				r.EXPECT().FetchMessage(gomock.Any()).Return(first, nil),
				r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.Error("transient")),
				r.EXPECT().FetchMessage(gomock.Any()).Return(broken, nil),
				r.EXPECT().FetchMessage(gomock.Any()).Return(second, nil),
				r.EXPECT().FetchMessage(gomock.Any()).DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
					cancel()
					return kafka.Message{}, ctx.Err()
				}),
			)
			if tt.commit {
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil).Times(3)
			}

			var got []RawEvent
			err := newTail(r, tt.commit, time.Millisecond, logger.NewStub()).Follow(ctx, func(e RawEvent) {
				got = append(got, e)
			})

			require.ErrorIs(t, err, context.Canceled)
			require.Len(t, got, 2, "undecodable messages are skipped")
			require.Equal(t, EventSnapshot, got[0].Type)
			require.Len(t, got[0].Items, 1)
			require.Equal(t, EventChange, got[1].Type)
			require.Empty(t, got[1].Items)

			var sand palettes.Palette
			require.NoError(t, json.Unmarshal(got[0].Items[0], &sand))
			require.Equal(t, palettes.Sand, sand)
		})
	}
}
