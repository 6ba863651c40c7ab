// Package persona builds a weighted keyword profile from a reader persona and
// job-to-be-done description.
package persona

import (
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
)

// Analyze converts a persona and job description into a PersonaProfile.
// Output is deterministic: identical inputs yield identical profiles.
func Analyze(persona types.PersonaInput, job types.JobInput) *types.PersonaProfile {
	role := strings.ToLower(persona.Role)
	focus := strings.ToLower(persona.Focus)
	task := strings.ToLower(job.Task)

	fullRole := role
	if focus != "" {
		fullRole = strings.TrimSpace(role + " " + focus)
	}

	domain, specificRole := classifyPersona(fullRole)
	jobType := classifyJob(task)

	// Merge the three keyword tiers. Order matters: task-derived keywords are
	// written last and override persona and job-type weights for the same
	// literal keyword.
	keywordWeights := make(map[string]float64)
	for _, keyword := range personaKeywords[domain][specificRole] {
		keywordWeights[keyword] = weightPersona
	}
	for _, keyword := range jobTypeKeywords[jobType] {
		keywordWeights[keyword] = weightJobType
	}
	for _, keyword := range extractTaskKeywords(task) {
		keywordWeights[keyword] = weightTask
	}

	return &types.PersonaProfile{
		Domain:           domain,
		Role:             specificRole,
		JobType:          jobType,
		TaskDescription:  task,
		KeywordWeights:   keywordWeights,
		PriorityKeywords: extractPriorityKeywords(task),
	}
}

// classifyPersona classifies the combined "role focus" string. Domain rules
// are tested in priority order; the first matching domain wins, then the
// first matching sub-role within it, else the domain's fallback sub-role.
func classifyPersona(fullRole string) (types.Domain, string) {
	for _, rule := range domainRules {
		if !containsAny(fullRole, rule.triggers) {
			continue
		}
		for _, sub := range rule.subRoles {
			if containsAny(fullRole, sub.triggers) {
				return rule.domain, sub.role
			}
		}
		return rule.domain, rule.fallback
	}
	return types.DomainGeneral, "professional"
}

// classifyJob classifies the task description, first matching rule wins.
func classifyJob(task string) types.JobType {
	for _, rule := range jobRules {
		if containsAny(task, rule.triggers) {
			return rule.jobType
		}
	}
	return types.JobGeneral
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
