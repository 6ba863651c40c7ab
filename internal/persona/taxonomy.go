package persona

import "github.com/Midhun81790/project-1B/internal/types"

// Keyword weight tiers. Task-derived keywords are merged last, so a keyword
// appearing in more than one tier keeps the last-written weight.
const (
	weightPersona = 3.0
	weightJobType = 2.0
	weightTask    = 2.5
)

// subRoleRule maps trigger substrings to a sub-role within a domain.
// Rules are evaluated in declaration order; first match wins.
type subRoleRule struct {
	role     string
	triggers []string
}

// domainRule classifies a combined "role focus" string into a domain and
// sub-role. Domains are tested in declaration order; first match wins, so the
// order of the rules slice is part of the contract.
type domainRule struct {
	domain   types.Domain
	triggers []string
	subRoles []subRoleRule
	fallback string
}

var domainRules = []domainRule{
	{
		domain:   types.DomainAcademic,
		triggers: []string{"research", "academic", "phd", "professor", "student"},
		subRoles: []subRoleRule{
			{role: "phd_student", triggers: []string{"phd", "student"}},
			{role: "professor", triggers: []string{"professor"}},
		},
		fallback: "researcher",
	},
	{
		domain:   types.DomainBusiness,
		triggers: []string{"analyst", "business", "investment", "financial"},
		subRoles: []subRoleRule{
			{role: "analyst", triggers: []string{"analyst"}},
			{role: "manager", triggers: []string{"manager"}},
		},
		fallback: "consultant",
	},
	{
		domain:   types.DomainTechnical,
		triggers: []string{"developer", "engineer", "technical", "architect"},
		subRoles: []subRoleRule{
			{role: "developer", triggers: []string{"developer"}},
			{role: "architect", triggers: []string{"architect"}},
		},
		fallback: "engineer",
	},
	{
		domain:   types.DomainFood,
		triggers: []string{"food", "chef", "contractor", "cook", "catering"},
		subRoles: []subRoleRule{
			{role: "chef", triggers: []string{"chef"}},
			{role: "nutritionist", triggers: []string{"nutrition"}},
		},
		fallback: "contractor",
	},
	{
		domain:   types.DomainTravel,
		triggers: []string{"travel", "planner", "guide", "agent"},
		subRoles: []subRoleRule{
			{role: "planner", triggers: []string{"planner"}},
			{role: "guide", triggers: []string{"guide"}},
		},
		fallback: "agent",
	},
	{
		domain:   types.DomainHR,
		triggers: []string{"hr", "human", "professional"},
		subRoles: []subRoleRule{
			{role: "manager", triggers: []string{"manager"}},
			{role: "specialist", triggers: []string{"specialist"}},
		},
		fallback: "professional",
	},
}

// jobRule classifies a task description into a job type, first match wins.
type jobRule struct {
	jobType  types.JobType
	triggers []string
}

var jobRules = []jobRule{
	{jobType: types.JobAnalysis, triggers: []string{"analyze", "analysis", "examine", "study"}},
	{jobType: types.JobPlanning, triggers: []string{"plan", "planning", "organize", "schedule"}},
	{jobType: types.JobManagement, triggers: []string{"manage", "management", "coordinate"}},
	{jobType: types.JobCreation, triggers: []string{"create", "develop", "build", "generate"}},
	{jobType: types.JobReview, triggers: []string{"review", "evaluate", "assess"}},
	{jobType: types.JobComparison, triggers: []string{"compare", "comparison", "versus"}},
	{jobType: types.JobRecommendation, triggers: []string{"recommend", "suggest", "advice"}},
}

// personaKeywords maps (domain, sub-role) to the tier-3.0 keyword list.
var personaKeywords = map[types.Domain]map[string][]string{
	types.DomainAcademic: {
		"researcher": {"research", "study", "analysis", "methodology", "findings",
			"literature", "experiment", "hypothesis", "theory", "data"},
		"phd_student": {"dissertation", "thesis", "literature_review", "research",
			"analysis", "methodology", "academic", "study"},
		"professor": {"teaching", "curriculum", "academic", "research", "publication",
			"peer_review", "methodology", "theory"},
	},
	types.DomainBusiness: {
		"analyst": {"analysis", "market", "trends", "data", "financial", "performance",
			"competitive", "forecast", "investment", "revenue"},
		"manager": {"strategy", "management", "leadership", "team", "performance",
			"planning", "execution", "budget", "resources"},
		"consultant": {"advisory", "strategy", "solution", "recommendation", "analysis",
			"optimization", "process", "improvement"},
	},
	types.DomainTechnical: {
		"developer": {"development", "coding", "programming", "implementation",
			"software", "system", "architecture", "framework"},
		"architect": {"architecture", "design", "system", "scalability", "integration",
			"infrastructure", "solution", "technical"},
		"engineer": {"engineering", "technical", "implementation", "solution",
			"optimization", "performance", "system"},
	},
	types.DomainFood: {
		"contractor": {"menu", "catering", "service", "preparation", "cooking",
			"ingredients", "dietary", "nutrition", "buffet"},
		"chef": {"cooking", "recipe", "cuisine", "preparation", "ingredients",
			"technique", "flavor", "presentation"},
		"nutritionist": {"nutrition", "dietary", "health", "vitamins", "minerals",
			"balanced", "wellness", "food_safety"},
	},
	types.DomainTravel: {
		"planner": {"itinerary", "destination", "accommodation", "transportation",
			"activities", "budget", "booking", "schedule"},
		"guide": {"local", "culture", "attractions", "recommendations", "experience",
			"sightseeing", "history", "customs"},
		"agent": {"booking", "reservation", "package", "deal", "travel_insurance",
			"documentation", "visa", "passport"},
	},
	types.DomainHR: {
		"professional": {"onboarding", "compliance", "forms", "documentation",
			"employee", "hiring", "training", "policies"},
		"manager": {"team", "performance", "development", "recruitment", "retention",
			"culture", "engagement", "leadership"},
		"specialist": {"specialized", "expert", "certification", "compliance",
			"regulations", "standards", "procedures"},
	},
}

// jobTypeKeywords maps a job type to its tier-2.0 keyword list.
var jobTypeKeywords = map[types.JobType][]string{
	types.JobAnalysis:       {"analyze", "examine", "investigate", "study", "review", "assess"},
	types.JobPlanning:       {"plan", "organize", "schedule", "prepare", "design", "create"},
	types.JobManagement:     {"manage", "coordinate", "oversee", "supervise", "direct", "lead"},
	types.JobCreation:       {"create", "develop", "build", "generate", "produce", "make"},
	types.JobReview:         {"review", "evaluate", "assess", "critique", "examine", "inspect"},
	types.JobComparison:     {"compare", "contrast", "versus", "difference", "similarity"},
	types.JobRecommendation: {"recommend", "suggest", "propose", "advise", "counsel"},
}

// domainLexicons holds the broader per-domain vocabulary used by subsection
// refinement to judge paragraph relevance. Distinct from personaKeywords: this
// table describes the domain's document vocabulary, not the reader's role.
var domainLexicons = map[types.Domain][]string{
	types.DomainAcademic: {
		"research", "study", "analysis", "methodology", "findings",
		"literature", "experiment", "hypothesis", "theory", "data",
		"results", "discussion", "conclusion", "references", "abstract",
	},
	types.DomainBusiness: {
		"revenue", "profit", "market", "strategy", "growth", "analysis",
		"performance", "investment", "financial", "competitive", "trends",
		"forecast", "opportunity", "risk", "management", "stakeholder",
	},
	types.DomainTechnical: {
		"implementation", "system", "architecture", "framework", "solution",
		"development", "integration", "performance", "optimization", "design",
		"specification", "requirements", "testing", "deployment", "maintenance",
	},
	types.DomainFood: {
		"recipe", "ingredients", "cooking", "preparation", "vegetarian",
		"gluten-free", "nutrition", "serving", "meal", "buffet", "menu",
		"dietary", "cuisine", "flavor", "technique", "temperature",
	},
	types.DomainTravel: {
		"destination", "accommodation", "transportation", "activities",
		"attractions", "culture", "local", "budget", "itinerary", "booking",
		"recommendation", "experience", "sightseeing", "restaurant", "hotel",
	},
}

// DomainLexicon returns the document vocabulary for a domain, or nil for
// domains without one (including "general").
func DomainLexicon(domain types.Domain) []string {
	return domainLexicons[domain]
}
