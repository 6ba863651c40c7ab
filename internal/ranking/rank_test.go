package ranking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Midhun81790/project-1B/internal/persona"
	"github.com/Midhun81790/project-1B/internal/scoring"
	"github.com/Midhun81790/project-1B/internal/types"
)

func scoredSection(title, content string, page int, relevance float64) types.ScoredSection {
	return types.ScoredSection{
		Section: types.Section{
			Title:        title,
			Content:      content,
			PageNumber:   page,
			DocumentName: "doc.pdf",
		},
		RelevanceScore: relevance,
	}
}

func TestRank_EmptyInput(t *testing.T) {
	ranked := Rank(nil, &types.PersonaProfile{})

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRank_DenseRanksFollowScoreOrder(t *testing.T) {
	sections := []types.ScoredSection{
		scoredSection("Low Relevance Filler", "plain short text", 8, 0.1),
		scoredSection("Highly Relevant Findings", "Specifically, revenue grew 40% in 2023. For example, the berlin office added 3 million in sales. Steps to repeat this are documented.", 1, 0.95),
		scoredSection("Middling Material", "some moderately useful prose about the topic at hand", 4, 0.5),
	}

	ranked := Rank(sections, &types.PersonaProfile{})
	require.Len(t, ranked, 3)

	assert.Equal(t, "Highly Relevant Findings", ranked[0].Title)
	for i, sec := range ranked {
		assert.Equal(t, i+1, sec.ImportanceRank)
	}
	// Scores are non-increasing.
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].FinalScore, ranked[i].FinalScore)
	}
}

func TestRank_StableForTies(t *testing.T) {
	// Byte-identical sections tie exactly; insertion order decides.
	content := "identical content words for every tied section here"
	sections := []types.ScoredSection{
		scoredSection("First", content, 2, 0.5),
		scoredSection("Second", content, 2, 0.5),
		scoredSection("Third", content, 2, 0.5),
	}
	// Same title quality for all three.
	sections[0].Title = "Tied Section Alpha"
	sections[1].Title = "Tied Section Bravo"
	sections[2].Title = "Tied Section Delta"

	ranked := Rank(sections, &types.PersonaProfile{})
	require.Len(t, ranked, 3)

	assert.Equal(t, "Tied Section Alpha", ranked[0].Title)
	assert.Equal(t, "Tied Section Bravo", ranked[1].Title)
	assert.Equal(t, "Tied Section Delta", ranked[2].Title)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	sections := []types.ScoredSection{
		scoredSection("B Section Title", "bravo content here", 1, 0.2),
		scoredSection("A Section Title", "alpha content here", 1, 0.9),
	}
	original := make([]types.ScoredSection, len(sections))
	copy(original, sections)

	Rank(sections, &types.PersonaProfile{})

	assert.Equal(t, original, sections)
}

func TestRank_AcademicPersonaPrefersMethodSections(t *testing.T) {
	profile := persona.Analyze(
		types.PersonaInput{Role: "PhD Student"},
		types.JobInput{Task: "Analyze machine learning research methodologies and results"},
	)
	require.Equal(t, types.DomainAcademic, profile.Domain)
	require.Equal(t, "phd_student", profile.Role)
	require.Equal(t, types.JobAnalysis, profile.JobType)

	sections := []types.Section{
		{
			Title:      "Introduction to Machine Learning",
			PageNumber: 1,
			Content:    "This chapter introduces the broad topic and outlines what the remainder of the document covers in general terms.",
		},
		{
			Title:      "Methodology",
			PageNumber: 1,
			Content:    "The research methodology follows a controlled experiment with careful analysis and study conditions drawn from the literature.",
		},
		{
			Title:      "Results and Analysis",
			PageNumber: 1,
			Content:    "Results show the analysis of research findings across each study, with the methodology validated against the collected observations.",
		},
		{
			Title:      "Conclusion",
			PageNumber: 1,
			Content:    "The closing remarks restate the main points and thank the committee for their attention throughout.",
		},
	}

	scored := make([]types.ScoredSection, 0, len(sections))
	for _, sec := range sections {
		scored = append(scored, scoring.ScoreSection(sec, profile))
	}

	ranked := Rank(scored, profile)
	require.Len(t, ranked, 4)

	rankOf := make(map[string]int)
	for _, sec := range ranked {
		rankOf[sec.Title] = sec.ImportanceRank
	}
	assert.Less(t, rankOf["Methodology"], rankOf["Introduction to Machine Learning"])
	assert.Less(t, rankOf["Results and Analysis"], rankOf["Introduction to Machine Learning"])
}

func TestPositionScore_StepFunction(t *testing.T) {
	assert.Equal(t, 1.0, positionScore(1))
	assert.Equal(t, 0.8, positionScore(2))
	assert.Equal(t, 0.8, positionScore(3))
	assert.Equal(t, 0.6, positionScore(4))
	assert.Equal(t, 0.6, positionScore(5))
	assert.Equal(t, 0.4, positionScore(6))
	assert.Equal(t, 0.4, positionScore(40))
}

func TestUniquenessScore_NoPeers(t *testing.T) {
	sections := []types.ScoredSection{
		scoredSection("Only", "entirely alone in the batch", 1, 0.5),
	}

	assert.Equal(t, 1.0, uniquenessScore(0, sections))
}

func TestUniquenessScore_EmptyContent(t *testing.T) {
	sections := []types.ScoredSection{
		scoredSection("Empty", "", 1, 0.0),
		scoredSection("Other", "real words", 1, 0.5),
	}

	assert.Equal(t, 0.0, uniquenessScore(0, sections))
}

func TestUniquenessScore_DuplicatesScoreZero(t *testing.T) {
	content := "exactly the same words in both"
	sections := []types.ScoredSection{
		scoredSection("A", content, 1, 0.5),
		scoredSection("B", content, 1, 0.5),
	}

	assert.Equal(t, 0.0, uniquenessScore(0, sections))
}

func TestUniquenessScore_DistinctContentScoresHigh(t *testing.T) {
	sections := []types.ScoredSection{
		scoredSection("A", "alpha bravo charlie delta", 1, 0.5),
		scoredSection("B", "echo foxtrot golf hotel", 1, 0.5),
	}

	assert.Equal(t, 1.0, uniquenessScore(0, sections))
}

func TestJaccard(t *testing.T) {
	a := wordSet("alpha bravo charlie")
	b := wordSet("bravo charlie delta")

	assert.InDelta(t, 0.5, jaccard(a, b), 1e-9)
	assert.Equal(t, 0.0, jaccard(map[string]bool{}, map[string]bool{}))
}

func TestQualityScore_EmptyContent(t *testing.T) {
	assert.Equal(t, 0.0, qualityScore(types.Section{Title: "Anything"}))
}

func TestQualityScore_StructuredBeatsFlat(t *testing.T) {
	structured := types.Section{
		Title: "Preparing the Venue Checklist",
		Content: "Venue prep involves several named stages that follow one another.\n" +
			"- confirm seating layout with the site manager\n" +
			"- verify catering access: loading dock and service elevator\n" +
			"Final walkthrough happens the morning before doors open.",
	}
	flat := types.Section{
		Title:   "x",
		Content: "a b c d",
	}

	assert.Greater(t, qualityScore(structured), qualityScore(flat))
}

func TestTitleQuality_GenericTitlePenalized(t *testing.T) {
	assert.Greater(t, titleQuality("Seasonal Produce Buying Guide"), titleQuality("Untitled"))
}

func TestCompletenessScore_AllFactors(t *testing.T) {
	content := "Specifically, bake at 180 degrees for 45 minutes. " +
		"Steps include resting the dough, for example overnight. " +
		"Yields rose 12% against the 2024 baseline."

	assert.Equal(t, 1.0, completenessScore(content))
}

func TestCompletenessScore_NoFactors(t *testing.T) {
	assert.Equal(t, 0.0, completenessScore("gentle prose without numbers or guidance"))
	assert.Equal(t, 0.0, completenessScore(""))
}

func TestInformationDensity_ClampedAtOne(t *testing.T) {
	dense := strings.Repeat("substantial ", 20)

	assert.Equal(t, 1.0, informationDensity(dense))
	assert.Equal(t, 0.0, informationDensity(""))
}
