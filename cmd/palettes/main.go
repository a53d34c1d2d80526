package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nikmy/palettes/internal/api"
	"github.com/nikmy/palettes/internal/palettes"
	"github.com/nikmy/palettes/internal/pubsub"
	"github.com/nikmy/palettes/internal/simpledb"
	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

const shutdownTimeout = time.Second * 10

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		stdlog.Fatal(err)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	if opts.follow {
		follow(ctx, cfg.Changefeed, log)
		return
	}

	serve(ctx, cfg, log)
}

func serve(ctx context.Context, cfg *Config, log logger.Logger) {
	store, err := openBackend(ctx, cfg.Storage, log)
	if err != nil {
		log.Panic(errors.WrapFailf(err, "open %s storage", cfg.Storage.Driver))
	}

	db := simpledb.New(store, log)

	table, err := simpledb.Register(db, palettes.Kind)
	if err != nil {
		log.Panic(err)
	}

	if _, err := palettes.Seed(ctx, table, log); err != nil {
		log.Panic(err)
	}

	var relay *pubsub.Relay[palettes.Palette]
	if cfg.Changefeed.Enabled {
		relay, err = pubsub.NewKafkaRelay[palettes.Palette](cfg.Changefeed, palettes.Tag, log)
		if err != nil {
			log.Panic(errors.WrapFail(err, "init changefeed"))
		}

		if err := simpledb.AddObserver(ctx, table, relay); err != nil {
			log.Panic(errors.WrapFail(err, "attach changefeed"))
		}
	}

	srv, err := api.NewServer(ctx, cfg.API, log, db, table)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init api server"))
	}

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		defer close(stopped)
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(err)
		}
		if relay != nil {
			if err := relay.Close(); err != nil {
				log.Error(err)
			}
		}
		if err := store.Close(shutdownCtx); err != nil {
			log.Error(errors.WrapFail(err, "close storage"))
		}
	})

	log.Infof("serving palettes on %s", cfg.API.HTTP.Addr)
	err = srv.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		log.Panic(err)
	}

	<-stopped
	// the relay is only weakly referenced by the store
	runtime.KeepAlive(relay)
	stdlog.Println("Shutdown complete")
}

func follow(ctx context.Context, cfg pubsub.Config, log logger.Logger) {
	tail, err := pubsub.NewKafkaTail(cfg, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init changefeed tail"))
	}
	defer func() {
		if err := tail.Close(); err != nil {
			log.Error(err)
		}
	}()

	log.Infof("following %s", cfg.Topic)
	err = tail.Follow(ctx, func(e pubsub.RawEvent) {
		log.Infof("%s %s at %s: %d items", e.Tag, e.Type, e.At.Format(time.RFC3339), len(e.Items))
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(err)
	}
}
