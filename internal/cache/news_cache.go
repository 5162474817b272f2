package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewsRankingCache handles Redis ZSET operations for the news relevance
// ranking. Members are news item IDs scored by relevance.
type NewsRankingCache interface {
	UpdateScore(ctx context.Context, itemID string, relevance float64) error
	Top(ctx context.Context, limit int) ([]RankedItem, error)
	Remove(ctx context.Context, itemID string) error
}

// RankedItem is one entry of the relevance ranking
type RankedItem struct {
	ItemID    string  `json:"itemId"`
	Relevance float64 `json:"relevance"`
	Rank      int     `json:"rank"`
}

const newsRankingKey = "news:ranking"

type newsRankingCache struct {
	client *redis.Client
}

// NewNewsRankingCache creates a new news ranking cache
func NewNewsRankingCache(client *redis.Client) NewsRankingCache {
	return &newsRankingCache{
		client: client,
	}
}

func (c *newsRankingCache) UpdateScore(ctx context.Context, itemID string, relevance float64) error {
	return c.client.ZAdd(ctx, newsRankingKey, redis.Z{
		Score:  relevance,
		Member: itemID,
	}).Err()
}

func (c *newsRankingCache) Top(ctx context.Context, limit int) ([]RankedItem, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, newsRankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]RankedItem, len(results))
	for i, z := range results {
		items[i] = RankedItem{
			ItemID:    z.Member.(string),
			Relevance: z.Score,
			Rank:      i + 1,
		}
	}
	return items, nil
}

func (c *newsRankingCache) Remove(ctx context.Context, itemID string) error {
	return c.client.ZRem(ctx, newsRankingKey, itemID).Err()
}
