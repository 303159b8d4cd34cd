package usecase

import (
	"sort"
	"strings"

	"ats-backend/internal/domain"
)

// ExactMatchScore is the score of a candidate whose full name equals the query.
const ExactMatchScore = 100

// ScoredCandidate pairs a candidate with its relevance to a name query.
type ScoredCandidate struct {
	Candidate domain.Candidate
	Score     int
}

// Rank orders candidates by relevance to query, most relevant first. Candidates
// sharing no word with the query are dropped and ties keep their input order.
// A blank query ranks nothing.
func Rank(candidates []domain.Candidate, query string) []domain.Candidate {
	scored := RankScored(candidates, query)
	out := make([]domain.Candidate, len(scored))
	for i, s := range scored {
		out[i] = s.Candidate
	}
	return out
}

// RankScored is Rank with the scores kept.
func RankScored(candidates []domain.Candidate, query string) []ScoredCandidate {
	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return []ScoredCandidate{}
	}

	normalized := normalizeQuery(query)
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		s := score(queryWords, normalized, c.Name)
		if s == 0 {
			continue
		}
		scored = append(scored, ScoredCandidate{Candidate: c, Score: s})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Score returns the relevance of name to query.
func Score(query, name string) int {
	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return 0
	}
	return score(queryWords, normalizeQuery(query), name)
}

func score(queryWords map[string]struct{}, normalizedQuery, name string) int {
	if strings.ToLower(name) == normalizedQuery {
		// stays above any overlap, even for queries longer than ExactMatchScore words
		return max(ExactMatchScore, len(queryWords)+1)
	}

	overlap := 0
	for w := range wordSet(name) {
		if _, ok := queryWords[w]; ok {
			overlap++
		}
	}
	return overlap
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// normalizeQuery trims the query only. Stored names are compared as they are.
func normalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
