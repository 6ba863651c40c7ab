package refine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Midhun81790/project-1B/internal/types"
)

// foodParagraph clears both the selection length floor and the domain keyword
// ratio for the food lexicon.
const foodParagraph = "the recipe calls for fresh basil and ripe tomatoes layered with care " +
	"across twenty minutes of gentle preparation before the final serving"

// neutralParagraph has the same length but no food vocabulary.
const neutralParagraph = "general remarks about logistics follow here with drivers parking " +
	"schedules badges contact details and other administrative items of note"

func foodSection(content string) types.Section {
	return types.Section{
		Title:        "Catering Notes",
		Content:      content,
		PageNumber:   4,
		DocumentName: "catering.pdf",
	}
}

func foodProfile() *types.PersonaProfile {
	return &types.PersonaProfile{Domain: types.DomainFood, Role: "contractor"}
}

func TestRefine_SelectsKeywordRichParagraphs(t *testing.T) {
	content := foodParagraph + "\n\n" + neutralParagraph + "\n\n" + foodParagraph + " again"

	excerpts := Refine(foodSection(content), foodProfile())
	require.Len(t, excerpts, 2)

	for _, ex := range excerpts {
		assert.Equal(t, types.MethodParagraphSelection, ex.AnalysisMethod)
		assert.Equal(t, "catering.pdf", ex.Document)
		assert.Equal(t, 4, ex.PageNumber)
		assert.Contains(t, ex.RefinedText, "recipe")
	}
}

func TestRefine_ShortParagraphsYieldNothing(t *testing.T) {
	content := "too short\n\nalso brief\n\nstill tiny"

	assert.Empty(t, Refine(foodSection(content), foodProfile()))
}

func TestRefine_FallsBackToCombinations(t *testing.T) {
	// Both paragraphs clear the paragraph floor but carry no food vocabulary,
	// so pass 1 selects nothing and pass 2 merges the pair.
	content := neutralParagraph + "\n\n" + neutralParagraph + " continued as planned"

	excerpts := Refine(foodSection(content), foodProfile())
	require.Len(t, excerpts, 1)

	assert.Equal(t, types.MethodParagraphCombination, excerpts[0].AnalysisMethod)
	assert.Contains(t, excerpts[0].RefinedText, "\n\n")
}

func TestRefine_SingleSelectionBeatsCombinations(t *testing.T) {
	// One paragraph qualifies in pass 1; combinations are discarded even
	// though they exist.
	content := foodParagraph + "\n\n" + neutralParagraph + "\n\n" + neutralParagraph + " continued"

	excerpts := Refine(foodSection(content), foodProfile())
	require.Len(t, excerpts, 1)

	assert.Equal(t, types.MethodParagraphSelection, excerpts[0].AnalysisMethod)
	assert.Contains(t, excerpts[0].RefinedText, "recipe")
}

func TestRefine_CapsAtThreeExcerpts(t *testing.T) {
	paragraphs := []string{
		foodParagraph,
		foodParagraph + " one",
		foodParagraph + " two",
		foodParagraph + " three",
	}
	content := strings.Join(paragraphs, "\n\n")

	excerpts := Refine(foodSection(content), foodProfile())

	assert.Len(t, excerpts, maxExcerpts)
}

func TestRefine_GeneralDomainHasNoLexicon(t *testing.T) {
	// Without a domain lexicon nothing clears the keyword ratio, so only
	// combinations can surface.
	profile := &types.PersonaProfile{Domain: types.DomainGeneral, Role: "professional"}
	content := foodParagraph + "\n\n" + foodParagraph + " again"

	excerpts := Refine(foodSection(content), profile)
	require.Len(t, excerpts, 1)

	assert.Equal(t, types.MethodParagraphCombination, excerpts[0].AnalysisMethod)
}

func TestRefine_ShortParagraphEligibleOnlyViaCombination(t *testing.T) {
	// Ten keyword-dense words stay below the selection floor no matter their
	// density, but merging with the neighbor clears the combined minimum.
	short := "recipe ingredients cooking preparation menu buffet cuisine flavor technique serving"
	long := neutralParagraph + " with a dozen further administrative notes appended here for added length"

	excerpts := Refine(foodSection(short+"\n\n"+long), foodProfile())
	require.Len(t, excerpts, 1)

	assert.Equal(t, types.MethodParagraphCombination, excerpts[0].AnalysisMethod)
	assert.Contains(t, excerpts[0].RefinedText, "recipe ingredients")
}

func TestIsHighQuality_LengthBounds(t *testing.T) {
	lexicon := map[string]bool{"recipe": true}

	short := "recipe " + strings.TrimSpace(strings.Repeat("word ", 10))
	long := "recipe " + strings.TrimSpace(strings.Repeat("word ", 220))

	assert.False(t, isHighQuality(short, lexicon))
	assert.False(t, isHighQuality(long, lexicon))
	assert.True(t, isHighQuality("recipe "+strings.TrimSpace(strings.Repeat("word ", 30)), lexicon))
}
