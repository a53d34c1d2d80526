package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
	"github.com/nikmy/palettes/pkg/mongotools"
)

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

// record is how one key is laid out in the collection.
type record struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

const (
	fieldValue     = "value"
	fieldUpdatedAt = "updated_at"
)

// Mongo keeps each key as one document of a collection.
type Mongo struct {
	coll *mongo.Collection
	log  logger.Logger
}

func NewMongo(ctx context.Context, cfg MongoConfig, log logger.Logger) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapFail(err, "ping mongo db")
	}

	return &Mongo{
		coll: client.Database(cfg.Database).Collection(cfg.Collection),
		log:  log.With("mongo_storage"),
	}, nil
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var r record

	err := m.coll.FindOne(ctx, mongotools.FilterByID(key)).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "find %q", key)
	}

	return r.Value, nil
}

func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC()
	update := mongotools.SetAll(
		mongotools.Field(fieldValue, &value),
		mongotools.Field(fieldUpdatedAt, &now),
	)

	_, err := m.coll.UpdateOne(ctx, mongotools.FilterByID(key), update, mongotools.Upsert())
	if err != nil {
		return errors.WrapFailf(err, "update %q", key)
	}

	m.log.Debugf("stored %d bytes under %q", len(value), key)
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
