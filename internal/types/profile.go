package types

import "sort"

// Domain is the top-level persona classification bucket.
type Domain string

const (
	DomainAcademic  Domain = "academic"
	DomainBusiness  Domain = "business"
	DomainTechnical Domain = "technical"
	DomainFood      Domain = "food"
	DomainTravel    Domain = "travel"
	DomainHR        Domain = "hr"
	DomainGeneral   Domain = "general"
)

// JobType classifies the job-to-be-done by its dominant verb family.
type JobType string

const (
	JobAnalysis       JobType = "analysis"
	JobPlanning       JobType = "planning"
	JobManagement     JobType = "management"
	JobCreation       JobType = "creation"
	JobReview         JobType = "review"
	JobComparison     JobType = "comparison"
	JobRecommendation JobType = "recommendation"
	JobGeneral        JobType = "general"
)

// PersonaProfile is the derived weighted-keyword and classification model for
// one request. It is built once and read-only thereafter; all keys in
// KeywordWeights and PriorityKeywords are lower-cased.
type PersonaProfile struct {
	Domain           Domain             `json:"domain"`
	Role             string             `json:"role"`
	JobType          JobType            `json:"job_type"`
	TaskDescription  string             `json:"task_description"`
	KeywordWeights   map[string]float64 `json:"keyword_weights"`
	PriorityKeywords map[string]bool    `json:"priority_keywords"`
}

// AllKeywords returns the sorted set of weighted keywords.
func (p *PersonaProfile) AllKeywords() []string {
	keywords := make([]string, 0, len(p.KeywordWeights))
	for keyword := range p.KeywordWeights {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}
