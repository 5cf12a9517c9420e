// landsecure-seed publishes the land-record fixture into Redis or Valkey as a
// JSON snapshot that landsecure API replicas load with records.source=redis.
//
// Usage:
//
//	landsecure-seed [-file records.yaml] [-key landsecure:snapshot] [-force]
//
// The database connection comes from config/<ENV>.yaml, the same file the API
// server reads.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/landsecure/landsecure/internal/config"
	dbRedis "github.com/landsecure/landsecure/internal/db/redis"
	"github.com/landsecure/landsecure/internal/fixture"
	logpkg "github.com/landsecure/landsecure/internal/logger"
	"github.com/landsecure/landsecure/internal/repository/snapshot"
	"github.com/landsecure/landsecure/internal/store"
	"github.com/landsecure/landsecure/internal/version"
)

// errSnapshotExists is returned when a snapshot is present and -force is not set.
var errSnapshotExists = errors.New("snapshot already exists")

type options struct {
	file  string
	key   string
	force bool
}

func main() {
	opts := parseFlags()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	logger.Info("Starting snapshot seeding", zap.String("build", version.String()))
	if err := run(ctx, &cfg, opts, logger); err != nil {
		cancel()
		logger.Fatal("Seeding failed", zap.Error(err))
	}
}

func parseFlags() options {
	opts := options{}
	flag.StringVar(&opts.file, "file", "", "fixture YAML to publish (default: the embedded fixture)")
	flag.StringVar(&opts.key, "key", "", "snapshot key (default: records.key from config)")
	flag.BoolVar(&opts.force, "force", false, "overwrite an existing snapshot")
	flag.Parse()
	return opts
}

func run(ctx context.Context, cfg *config.Config, opts options, logger *zap.Logger) error {
	f, err := readFixture(opts.file)
	if err != nil {
		return err
	}

	kv, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      cfg.Database.Addrs,
		Username:   cfg.Database.Username,
		Password:   cfg.Database.Password,
		DB:         cfg.Database.DB,
		ClientName: "landsecure-seed",
	})
	if err != nil {
		return fmt.Errorf("create %s store: %w", cfg.Database.Driver, err)
	}
	defer kv.Close()

	if err := kv.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return err
	}

	key := opts.key
	if key == "" {
		key = cfg.Records.Key
	}
	repo := snapshot.New(kv, key)

	if err := publish(ctx, repo, &f, opts.force); err != nil {
		return err
	}
	logger.Info("Snapshot published",
		zap.String("key", repo.Key()),
		zap.Int("records", len(f.Records)),
		zap.Int("states", len(f.States)),
		zap.Int("verifications", len(f.Verifications)),
		zap.Int("auctions", len(f.Auctions)),
	)
	return nil
}

// readFixture loads the fixture and checks it builds a valid Record Store,
// so a snapshot that the API would refuse never reaches the database.
func readFixture(path string) (fixture.Fixture, error) {
	var (
		f   fixture.Fixture
		err error
	)
	if path == "" {
		f, err = fixture.LoadEmbedded()
	} else {
		f, err = fixture.LoadFile(path)
	}
	if err != nil {
		return fixture.Fixture{}, err
	}
	if _, err := store.New(f.Records); err != nil {
		return fixture.Fixture{}, err
	}
	return f, nil
}

// snapshotWriter is the part of snapshot.Repo the seeder needs.
type snapshotWriter interface {
	Key() string
	Exists(ctx context.Context) (bool, error)
	Save(ctx context.Context, f *fixture.Fixture) error
}

func publish(ctx context.Context, repo snapshotWriter, f *fixture.Fixture, force bool) error {
	if !force {
		exists, err := repo.Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w at %s (use -force to overwrite)", errSnapshotExists, repo.Key())
		}
	}
	return repo.Save(ctx, f)
}
