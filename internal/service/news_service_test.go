package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aicompliance/internal/model"
	"aicompliance/internal/service"
)

func TestRelevanceScoreKeywordAccumulation(t *testing.T) {
	item := model.NewsCandidate{
		Title:   "Artificial intelligence regulation update",
		Summary: "New compliance requirements for startups",
		Source:  "Private Blog",
	}

	// "artificial intelligence" 3.0 + "ai" in "artificial" not counted as
	// high keyword; "regulation" 1.5 + "compliance" 1.5 + "startup" 1.5
	assert.InDelta(t, 7.5, service.RelevanceScore(item), 1e-9)
}

func TestRelevanceScoreOfficialSourceBonus(t *testing.T) {
	blog := model.NewsCandidate{Title: "GDPR update", Source: "Private Blog"}
	official := model.NewsCandidate{Title: "GDPR update", Source: "EUR-Lex"}

	assert.InDelta(t, 2.0, service.RelevanceScore(official)-service.RelevanceScore(blog), 1e-9)
}

func TestRelevanceScoreCappedAtTen(t *testing.T) {
	item := model.NewsCandidate{
		Title:   "AI Act: artificial intelligence, inteligencia artificial y GDPR",
		Summary: "RGPD, medical device, dispositivo médico, regulation, compliance",
		Source:  "BOE",
	}

	assert.Equal(t, 10.0, service.RelevanceScore(item))
}

func TestRelevanceScoreIrrelevantItem(t *testing.T) {
	item := model.NewsCandidate{
		Title:   "Quarterly earnings call transcript",
		Summary: "Revenue grew in the third quarter",
		Source:  "Private Blog",
	}

	assert.Equal(t, 0.0, service.RelevanceScore(item))
}

func TestExtractTagsStableOrder(t *testing.T) {
	item := model.NewsCandidate{
		Title:   "Spanish insurance regulation and GDPR for AI systems",
		Summary: "New law on data protection in España",
	}

	assert.Equal(t, []string{"ai", "gdpr", "insurance", "regulation", "spain"}, service.ExtractTags(item))
}

func TestExtractTagsEmptyForUnrelatedText(t *testing.T) {
	item := model.NewsCandidate{Title: "Cooking recipes weekly digest"}

	assert.Empty(t, service.ExtractTags(item))
}

func TestNewsItemIDDeterministic(t *testing.T) {
	url := "https://www.boe.es/diario_boe/txt.php?id=BOE-A-2024-3456"

	assert.Equal(t, service.NewsItemID(url), service.NewsItemID(url))
	assert.Len(t, service.NewsItemID(url), 32)
	assert.NotEqual(t, service.NewsItemID(url), service.NewsItemID(url+"?x=1"))
}
