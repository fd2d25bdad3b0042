// Package dashboard serves the real-time dashboard summary. The data
// is demo content with no backing store, cached briefly in Redis so
// the UI's polling does not rebuild it on every request.
package dashboard

import (
	"context"
	"log"
	"time"
)

const (
	timestampLayout = "2006-01-02T15:04"
	cacheKey        = "dashboard:summary"
	cacheTTL        = 30 * time.Second
)

// RecentFraud is one row of the recent-detections table.
type RecentFraud struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Risk  string `json:"risk"`
	Time  string `json:"time"`
}

// FraudStats is the severity histogram of recent detections.
type FraudStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

// Summary is the dashboard payload.
type Summary struct {
	RecentFrauds       []RecentFraud `json:"recent_frauds"`
	FraudStats         FraudStats    `json:"fraud_stats"`
	CompliancePassRate float64       `json:"compliance_pass_rate"`
	LastUpdated        string        `json:"last_updated"`
}

// Cache is the slice of the cache service this package needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type Service interface {
	GetSummary(ctx context.Context) *Summary
}

type service struct {
	cache Cache
	now   func() time.Time
}

// NewService builds the dashboard service. The cache is optional.
func NewService(cache Cache) Service {
	return &service{cache: cache, now: time.Now}
}

func (s *service) GetSummary(ctx context.Context) *Summary {
	if s.cache != nil {
		var cached Summary
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached
		}
	}

	summary := s.build()

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, cacheKey, summary, cacheTTL); err != nil {
			log.Printf("failed to cache dashboard summary: %v", err)
		}
	}
	return summary
}

func (s *service) build() *Summary {
	now := s.now().Format(timestampLayout)
	return &Summary{
		RecentFrauds: []RecentFraud{
			{Name: "Uday Reddy", Score: 87, Risk: "High", Time: now},
			{Name: "Neha Sharma", Score: 12, Risk: "Low", Time: now},
			{Name: "Vikram Singh", Score: 92, Risk: "High", Time: now},
			{Name: "Sanjay Patel", Score: 58, Risk: "Medium", Time: now},
		},
		FraudStats: FraudStats{
			High:   3,
			Medium: 7,
			Low:    20,
			Total:  30,
		},
		CompliancePassRate: 92.3,
		LastUpdated:        now,
	}
}
