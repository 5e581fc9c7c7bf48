package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"surveygate/internal/platform/config"
	"surveygate/internal/platform/postgres"
	"surveygate/internal/platform/redis"
	"surveygate/pkg/platform/audit"
	"surveygate/pkg/platform/audit/publisher"
	kafkaaudit "surveygate/pkg/platform/audit/store/kafka"
	memoryaudit "surveygate/pkg/platform/audit/store/memory"
	postgresaudit "surveygate/pkg/platform/audit/store/postgres"
	"surveygate/pkg/platform/circuit"
)

const auditBufferSize = 1024

// infra holds the process-wide connections. Without DATABASE_URL the server
// runs on in-memory stores; without REDIS_URL rule reads are uncached; without
// KAFKA_BROKERS audit events go straight to the database.
type infra struct {
	db      *sql.DB
	redis   *redis.Client
	kafka   *kgo.Client
	auditor *publisher.Publisher
	logger  *slog.Logger
}

func newInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	in := &infra{logger: log}

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		in.db = db
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	in.redis = rc

	var durable audit.Store = memoryaudit.NewInMemoryStore()
	if in.db != nil {
		durable = postgresaudit.New(in.db)
	}

	if len(cfg.Audit.Brokers) > 0 {
		client, err := kafkaaudit.NewClient(cfg.Audit.Brokers, cfg.Audit.Topic)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("connect kafka: %w", err)
		}
		in.kafka = client
		in.auditor = publisher.NewPublisher(
			kafkaaudit.New(client, cfg.Audit.Topic),
			publisher.WithAsyncBuffer(auditBufferSize),
			publisher.WithFallback(durable, circuit.New("audit-kafka")),
			publisher.WithLogger(log),
		)
	} else {
		in.auditor = publisher.NewPublisher(durable, publisher.WithLogger(log))
	}

	return in, nil
}

// Ping checks the database and Redis when configured.
func (in *infra) Ping(ctx context.Context) map[string]string {
	status := map[string]string{}
	if in.db != nil {
		status["database"] = healthState(in.db.PingContext(ctx))
	}
	if in.redis != nil {
		status["redis"] = healthState(in.redis.Health(ctx))
	}
	return status
}

func healthState(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

// Close drains pending audit events before closing connections.
func (in *infra) Close() {
	if in.auditor != nil {
		in.auditor.Close()
	}
	if in.kafka != nil {
		in.kafka.Close()
	}
	if in.redis != nil {
		if err := in.redis.Close(); err != nil {
			in.logger.Warn("failed to close redis", "error", err)
		}
	}
	if in.db != nil {
		if err := in.db.Close(); err != nil {
			in.logger.Warn("failed to close database", "error", err)
		}
	}
}
