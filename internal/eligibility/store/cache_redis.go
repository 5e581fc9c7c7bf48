package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"surveygate/internal/eligibility/models"
	"surveygate/internal/eligibility/ports"
	id "surveygate/pkg/domain"
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "surveygate_rules_cache_lookups_total",
	Help: "Rule document cache lookups by result",
}, []string{"result"}) // result: "hit", "miss", "error"

const (
	rulesKeyPrefix = "surveygate:rules:"
	// noRulesMarker caches the absence of a document so open surveys do not
	// hit the database on every view.
	noRulesMarker = "none"
)

// RedisRuleCache is a read-through cache in front of a rule reader. Redis
// failures degrade to reading through; they never fail an evaluation.
type RedisRuleCache struct {
	next   ports.RuleReader
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisRuleCache wraps next with a cache of the given TTL.
func NewRedisRuleCache(next ports.RuleReader, client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisRuleCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisRuleCache{next: next, client: client, ttl: ttl, logger: logger}
}

func rulesKey(surveyID id.SurveyID) string {
	return rulesKeyPrefix + surveyID.String()
}

func (c *RedisRuleCache) FindRules(ctx context.Context, surveyID id.SurveyID) (*models.RuleDocument, error) {
	key := rulesKey(surveyID)

	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		cacheLookups.WithLabelValues("hit").Inc()
		if raw == noRulesMarker {
			return nil, nil
		}
		var doc models.RuleDocument
		if jerr := json.Unmarshal([]byte(raw), &doc); jerr == nil {
			return &doc, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cached rules", "survey_id", surveyID)
	case errors.Is(err, redis.Nil):
		cacheLookups.WithLabelValues("miss").Inc()
	default:
		cacheLookups.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "rule cache read failed",
			"survey_id", surveyID,
			"error", err,
		)
	}

	doc, err := c.next.FindRules(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, doc)
	return doc, nil
}

func (c *RedisRuleCache) store(ctx context.Context, key string, doc *models.RuleDocument) {
	value := noRulesMarker
	if doc != nil {
		payload, err := json.Marshal(doc)
		if err != nil {
			return
		}
		value = string(payload)
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "rule cache write failed",
			"key", key,
			"error", err,
		)
	}
}

// Invalidate drops the cached entry for surveyID.
func (c *RedisRuleCache) Invalidate(ctx context.Context, surveyID id.SurveyID) error {
	if err := c.client.Del(ctx, rulesKey(surveyID)).Err(); err != nil {
		return fmt.Errorf("invalidate cached rules: %w", err)
	}
	return nil
}
