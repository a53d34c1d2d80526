package main

import (
	"flag"
	"path/filepath"
	"time"

	"github.com/nikmy/palettes/internal/api"
	"github.com/nikmy/palettes/internal/pubsub"
	"github.com/nikmy/palettes/internal/storage"
	"github.com/nikmy/palettes/pkg/config"
	"github.com/nikmy/palettes/pkg/environment"
	"github.com/nikmy/palettes/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Storage     StorageConfig   `yaml:"Storage"`
	API         api.Config      `yaml:"API"`
	Changefeed  pubsub.Config   `yaml:"Changefeed"`
}

const (
	driverMemory = "memory"
	driverFile   = "file"
	driverLevel  = "leveldb"
	driverMongo  = "mongo"
)

type StorageConfig struct {
	Driver string `yaml:"driver"`

	File struct {
		Path string `yaml:"path"`
	} `yaml:"file"`

	LevelDB storage.LevelDBConfig `yaml:"leveldb"`
	Mongo   storage.MongoConfig   `yaml:"mongo"`

	// Cache.TTL > 0 puts a read cache in front of the driver.
	Cache struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
}

type options struct {
	configPath string
	env        string
	follow     bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("palettes", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "config.yaml", "path to yaml config")
	fs.StringVar(&opts.env, "env", "", "environment (dev, prod, test)")
	fs.BoolVar(&opts.follow, "follow", false, "print the changefeed instead of serving")

	if err := fs.Parse(args); err != nil {
		return options{}, errors.WrapFail(err, "parse flags")
	}
	return opts, nil
}

func loadConfig(opts options) (*Config, error) {
	path, err := filepath.Abs(opts.configPath)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	cfg, err := config.Load[Config](path)
	if err != nil {
		return nil, err
	}

	if opts.env != "" {
		cfg.Environment = environment.FromString(opts.env)
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = driverMemory
	}

	return cfg, nil
}
