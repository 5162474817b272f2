package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"aicompliance/internal/cache"
	"aicompliance/internal/model"
	"aicompliance/internal/repository"
)

const newsSummaryPrompt = `Título: %s
Fuente: %s
Resumen original: %s

Genera un resumen de 2-3 frases que explique:
1. Qué normativa o regulación se trata
2. Cómo podría afectar a startups de salud digital e insurtech
3. Si es relevante para cumplimiento de IA, GDPR, dispositivos médicos, etc.

Responde en español y sé conciso pero informativo.`

var highRelevanceKeywords = []string{
	"artificial intelligence", "inteligencia artificial", "ai act",
	"gdpr", "rgpd", "medical device", "dispositivo médico",
}

var mediumRelevanceKeywords = []string{
	"regulation", "regulación", "compliance", "cumplimiento",
	"startup", "innovation", "innovación",
}

// tagKeywords is ordered so extracted tags come out in a stable order
var tagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"ai", []string{"artificial intelligence", "inteligencia artificial", "machine learning", "ai"}},
	{"gdpr", []string{"gdpr", "rgpd", "data protection", "protección datos"}},
	{"medical", []string{"medical device", "dispositivo médico", "health", "salud"}},
	{"insurance", []string{"insurance", "seguros", "insurtech"}},
	{"regulation", []string{"regulation", "regulación", "law", "ley"}},
	{"eu", []string{"european union", "unión europea", "eu", "ue"}},
	{"spain", []string{"spain", "españa", "spanish", "español"}},
}

// RelevanceScore rates a candidate for the digital-health/insurtech
// audience: 3.0 per high-relevance keyword hit, 1.5 per medium-relevance
// hit, +2.0 for official sources, capped at 10.
func RelevanceScore(item model.NewsCandidate) float64 {
	score := 0.0
	title := strings.ToLower(item.Title)
	summary := strings.ToLower(item.Summary)

	for _, keyword := range highRelevanceKeywords {
		if strings.Contains(title, keyword) || strings.Contains(summary, keyword) {
			score += 3.0
		}
	}
	for _, keyword := range mediumRelevanceKeywords {
		if strings.Contains(title, keyword) || strings.Contains(summary, keyword) {
			score += 1.5
		}
	}

	if item.Source == "EUR-Lex" || item.Source == "BOE" {
		score += 2.0
	}

	if score > 10.0 {
		return 10.0
	}
	return score
}

// ExtractTags derives topic tags from a candidate's title and summary
func ExtractTags(item model.NewsCandidate) []string {
	text := strings.ToLower(item.Title + " " + item.Summary)

	tags := []string{}
	for _, entry := range tagKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	return tags
}

// NewsItemID is the MD5 hex of the item URL, making re-collection idempotent
func NewsItemID(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

// NewsService collects regulatory news, scores it and serves it
type NewsService struct {
	news        repository.NewsRepo
	ranking     cache.NewsRankingCache
	fetchers    []NewsFetcher
	llm         *LLMClient
	broadcaster Broadcaster
}

// NewNewsService creates a new news service
func NewNewsService(news repository.NewsRepo, ranking cache.NewsRankingCache, fetchers []NewsFetcher, llm *LLMClient, broadcaster Broadcaster) *NewsService {
	return &NewsService{
		news:        news,
		ranking:     ranking,
		fetchers:    fetchers,
		llm:         llm,
		broadcaster: broadcaster,
	}
}

// Collect fetches from every source and stores items not seen before.
// Returns the number of new items saved.
func (s *NewsService) Collect(ctx context.Context) int {
	log.Println("Starting news collection from all sources")

	var candidates []model.NewsCandidate
	for _, fetcher := range s.fetchers {
		candidates = append(candidates, fetcher.Fetch(ctx)...)
	}

	saved := 0
	for _, candidate := range candidates {
		ok, err := s.save(ctx, candidate)
		if err != nil {
			log.Printf("Error processing news item %q: %v", candidate.URL, err)
			continue
		}
		if ok {
			saved++
		}
	}

	log.Printf("Completed news collection. Total items processed: %d, new: %d", len(candidates), saved)
	return saved
}

func (s *NewsService) save(ctx context.Context, candidate model.NewsCandidate) (bool, error) {
	id := NewsItemID(candidate.URL)

	exists, err := s.news.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	category := candidate.Category
	if category == "" {
		category = "regulation"
	}
	language := candidate.Language
	if language == "" {
		language = "es"
	}

	item := &model.NewsItem{
		ID:             id,
		Title:          candidate.Title,
		URL:            candidate.URL,
		Summary:        candidate.Summary,
		AISummary:      s.summarize(ctx, candidate),
		Source:         candidate.Source,
		Category:       category,
		Language:       language,
		ScrapedAt:      time.Now().UTC(),
		RelevanceScore: RelevanceScore(candidate),
		Tags:           ExtractTags(candidate),
	}

	if err := s.news.Insert(ctx, item); err != nil {
		return false, err
	}

	if err := s.ranking.UpdateScore(ctx, item.ID, item.RelevanceScore); err != nil {
		log.Printf("Failed to update news ranking for %s: %v", item.ID, err)
	}

	s.broadcaster.BroadcastAll("news_published", map[string]interface{}{
		"id":              item.ID,
		"title":           item.Title,
		"source":          item.Source,
		"relevance_score": item.RelevanceScore,
		"tags":            item.Tags,
	})

	log.Printf("Saved news item: %s", truncate(item.Title, 50))
	return true, nil
}

func (s *NewsService) summarize(ctx context.Context, candidate model.NewsCandidate) string {
	fallback := candidate.Summary
	if fallback == "" {
		fallback = "Resumen no disponible"
	}
	if s.llm == nil || !s.llm.IsEnabled() {
		return fallback
	}

	summary, err := s.llm.Summarize(ctx, fmt.Sprintf(newsSummaryPrompt, candidate.Title, candidate.Source, fallback))
	if err != nil {
		log.Printf("News summary generation failed for %q: %v", candidate.URL, err)
		return fallback
	}
	return summary
}

// Recent returns stored items from the last days, most relevant first
func (s *NewsService) Recent(ctx context.Context, limit int64, category string, days int) ([]*model.NewsItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if days <= 0 {
		days = 30
	}
	return s.news.Recent(ctx, limit, category, days)
}

// Search runs a text search over stored items
func (s *NewsService) Search(ctx context.Context, query string, limit int64) ([]*model.NewsItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.news.Search(ctx, query, limit)
}

// ByTags returns items carrying any of the given tags
func (s *NewsService) ByTags(ctx context.Context, tags []string, limit int64) ([]*model.NewsItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.news.ByTags(ctx, tags, limit)
}

// TopRanked returns the current relevance ranking from Redis
func (s *NewsService) TopRanked(ctx context.Context, limit int) ([]cache.RankedItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.ranking.Top(ctx, limit)
}

// StartScheduler collects news weekly until ctx is cancelled
func (s *NewsService) StartScheduler(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(7 * 24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Collect(ctx)
			}
		}
	}()
	log.Println("News update scheduler started (weekly updates)")
}
