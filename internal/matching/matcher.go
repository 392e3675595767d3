// Package matching pairs roadmap topics with catalog courses, ranks the
// matches per stage and assembles the deduplicated per-stage presentation.
package matching

import (
	"context"
	"fmt"
	"time"

	"course-recommender/internal/roadmap"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CatalogSearcher returns ids of published, approved courses whose title,
// description or any tag contains at least one of the keywords.
type CatalogSearcher interface {
	SearchCourseIDs(ctx context.Context, keywords []string) ([]int64, error)
}

// TopicMatch is the catalog answer for one roadmap topic. An empty CourseIDs
// means the topic becomes a placeholder.
type TopicMatch struct {
	Stage     roadmap.Stage
	Topic     string
	CourseIDs []int64
}

type Matcher struct {
	catalog      CatalogSearcher
	queryTimeout time.Duration
	concurrency  int
	logger       *zap.Logger
}

func NewMatcher(catalog CatalogSearcher, queryTimeout time.Duration, concurrency int, logger *zap.Logger) *Matcher {
	return &Matcher{
		catalog:      catalog,
		queryTimeout: queryTimeout,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// Match issues one catalog query per topic. Queries run concurrently; the
// result keeps roadmap order. Any failed query fails the whole match.
func (m *Matcher) Match(ctx context.Context, plans []roadmap.StagePlan) ([]TopicMatch, error) {
	var topics []roadmap.Topic
	var results []TopicMatch
	for _, plan := range plans {
		for _, topic := range plan.Topics {
			topics = append(topics, topic)
			results = append(results, TopicMatch{Stage: plan.Stage, Topic: topic.Name})
		}
	}

	if len(topics) == 0 {
		return []TopicMatch{}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if m.concurrency > 0 {
		g.SetLimit(m.concurrency)
	}

	for i := range topics {
		g.Go(func() error {
			qctx := gctx
			if m.queryTimeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(gctx, m.queryTimeout)
				defer cancel()
			}

			ids, err := m.catalog.SearchCourseIDs(qctx, topics[i].Keywords)
			if err != nil {
				return fmt.Errorf("search courses for topic %q: %w", topics[i].Name, err)
			}
			results[i].CourseIDs = ids
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.logger.Debug("Catalog matching completed", zap.Int("topics", len(topics)))
	return results, nil
}
