package segmentation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Midhun81790/project-1B/internal/types"
)

func TestSegment_NilDocument(t *testing.T) {
	assert.Nil(t, Segment(nil))
	assert.Nil(t, Segment(&types.Document{Name: "empty.pdf"}))
}

func TestSegment_HeaderBasedFromLayoutBlocks(t *testing.T) {
	doc := &types.Document{
		Name: "report.pdf",
		Pages: []types.Page{
			{
				PageNumber: 1,
				LayoutBlocks: []types.LayoutBlock{
					{Text: "Introduction", IsHeader: true},
					{Text: "The opening chapter describes the motivation for this work."},
					{Text: "Methodology", IsHeader: true},
					{Text: "We gathered samples over a six month observation period."},
				},
			},
			{
				PageNumber: 2,
				LayoutBlocks: []types.LayoutBlock{
					{Text: "Results", IsHeader: true},
					{Text: "Observed growth exceeded every prior seasonal baseline."},
				},
			},
		},
	}

	sections := Segment(doc)
	require.Len(t, sections, 3)

	assert.Equal(t, "Introduction", sections[0].Title)
	assert.Equal(t, 1, sections[0].PageNumber)
	assert.Contains(t, sections[0].Content, "motivation for this work")
	assert.Equal(t, types.MethodHeaderBased, sections[0].ExtractionMethod)
	assert.Equal(t, "report.pdf", sections[0].DocumentName)

	assert.Equal(t, "Methodology", sections[1].Title)
	assert.Equal(t, "Results", sections[2].Title)
	assert.Equal(t, 2, sections[2].PageNumber)

	// Stats are filled in for every section.
	for _, sec := range sections {
		assert.Positive(t, sec.WordCount)
		assert.Positive(t, sec.CharCount)
	}
}

func TestSegment_HeaderBasedFromRawText(t *testing.T) {
	doc := &types.Document{
		Name: "notes.txt",
		Pages: []types.Page{
			{
				PageNumber: 1,
				RawText: "INTRODUCTION\n" +
					"some lower case prose that belongs to the first section\n" +
					"METHODS\n" +
					"a second stretch of body text under the methods heading\n" +
					"RESULTS\n" +
					"closing body text that wraps up the findings",
			},
		},
	}

	sections := Segment(doc)
	require.Len(t, sections, 3)
	assert.Equal(t, "INTRODUCTION", sections[0].Title)
	assert.Equal(t, "METHODS", sections[1].Title)
	assert.Equal(t, "RESULTS", sections[2].Title)
	for _, sec := range sections {
		assert.Equal(t, types.MethodHeaderBased, sec.ExtractionMethod)
	}
}

func TestSegment_ParagraphFallbackWhenFewHeaders(t *testing.T) {
	// No recognizable headers at all, so paragraph grouping supplies sections.
	paragraph := "lower case sentences with enough running words to keep the chunk above the minimum threshold"
	doc := &types.Document{
		Name: "plain.txt",
		Pages: []types.Page{
			{
				PageNumber: 1,
				RawText: strings.Join([]string{
					paragraph, paragraph + " again", paragraph + " once more", paragraph + " finally",
				}, "\n\n"),
			},
		},
	}

	sections := Segment(doc)
	require.NotEmpty(t, sections)

	assert.Equal(t, types.MethodParagraphBased, sections[0].ExtractionMethod)
	assert.Equal(t, 1, sections[0].PageNumber)
	assert.True(t, strings.HasSuffix(sections[0].Title, "..."))
	assert.GreaterOrEqual(t, sections[0].WordCount, minChunkWords)
}

func TestSegment_SlidingWindowFallback(t *testing.T) {
	// Many tiny paragraphs: header and paragraph strategies both come up
	// empty, leaving the sliding window to cover the word stream.
	var lines []string
	for i := 0; i < 30; i++ {
		words := make([]string, 10)
		for j := range words {
			words[j] = fmt.Sprintf("w%03d", i*10+j)
		}
		lines = append(lines, strings.Join(words, " "))
	}
	doc := &types.Document{
		Name: "stream.txt",
		Pages: []types.Page{
			{PageNumber: 1, RawText: strings.Join(lines, "\n\n")},
		},
	}

	sections := Segment(doc)
	require.NotEmpty(t, sections)

	assert.Equal(t, types.MethodSlidingWindow, sections[0].ExtractionMethod)
	assert.Equal(t, windowWords, sections[0].WordCount)
	assert.Equal(t, 1, sections[0].PageNumber)
}

func TestSegment_ShortDocumentYieldsNoWindows(t *testing.T) {
	doc := &types.Document{
		Name: "tiny.txt",
		Pages: []types.Page{
			{PageNumber: 1, RawText: "just a few words"},
		},
	}

	assert.Empty(t, Segment(doc))
}

func TestDeduplicate_KeepsFirstOccurrence(t *testing.T) {
	shared := "Shared opening content that fingerprints identically for both sections"
	sections := []types.Section{
		{Content: shared, ExtractionMethod: types.MethodHeaderBased},
		{Content: "  " + strings.ToUpper(shared), ExtractionMethod: types.MethodSlidingWindow},
		{Content: "completely different content"},
	}

	unique := deduplicate(sections)

	require.Len(t, unique, 2)
	assert.Equal(t, types.MethodHeaderBased, unique[0].ExtractionMethod)
}

func TestIsLikelyHeader(t *testing.T) {
	assert.True(t, isLikelyHeader("1. Introduction"))
	assert.True(t, isLikelyHeader("EXECUTIVE SUMMARY"))
	assert.True(t, isLikelyHeader("Methods:"))
	assert.True(t, isLikelyHeader("Abstract"))

	assert.False(t, isLikelyHeader(""))
	assert.False(t, isLikelyHeader("a plain lowercase sentence about nothing in particular"))
	assert.False(t, isLikelyHeader(strings.Repeat("LONG ", 40)))
}

func TestGenerateTitle(t *testing.T) {
	assert.Equal(t, "The quick brown fox jumps over...",
		generateTitle("The quick brown fox jumps over the lazy dog"))
	assert.Equal(t, "Two words", generateTitle("Two words"))
	assert.Equal(t, "Untitled Section", generateTitle("!!! ???"))
}

func TestComputeStats(t *testing.T) {
	stats := computeStats("One sentence here. Another one follows! A third?")

	assert.Equal(t, 8, stats.WordCount)
	assert.Equal(t, 3, stats.SentenceCount)
	assert.Positive(t, stats.AvgWordLength)
	assert.Equal(t, len("One sentence here. Another one follows! A third?"), stats.CharCount)
}
