package ml

import (
	"errors"
	"sort"
	"strings"
)

// spamLexicon maps promotional/pressure vocabulary to evidence weights.
var spamLexicon = map[string]float64{
	"win":        0.20,
	"winner":     0.20,
	"free":       0.15,
	"urgent":     0.15,
	"lottery":    0.25,
	"prize":      0.20,
	"guaranteed": 0.15,
	"click":      0.10,
	"claim":      0.10,
	"limited":    0.10,
	"offer":      0.10,
	"cash":       0.10,
	"instant":    0.10,
}

// SpamClassifier is the local tier of the spam text-classification
// model: a weighted keyword vote over the lowercased input.
type SpamClassifier struct{}

func NewSpamClassifier() *SpamClassifier { return &SpamClassifier{} }

func (c *SpamClassifier) Classify(text string) ([]Classification, error) {
	lower := strings.ToLower(text)
	evidence := 0.0
	for word, weight := range spamLexicon {
		if strings.Contains(lower, word) {
			evidence += weight
		}
	}
	if evidence > 0.95 {
		evidence = 0.95
	}
	if evidence >= 0.35 {
		return []Classification{{Label: "spam", Score: 0.5 + evidence/2}}, nil
	}
	return []Classification{{Label: "ham", Score: 1 - evidence}}, nil
}

// labelAffinities maps zero-shot candidate labels to trigger vocabulary.
// Labels without an entry receive only the baseline weight.
var labelAffinities = map[string][]string{
	"fake":          {"fake", "forged", "fabricated", "false", "counterfeit", "bogus"},
	"contradictory": {"however", "contradict", "inconsistent", "despite", "but no", "yet claims"},
	"real":          {"verified", "confirmed", "audited", "registered", "documented"},
}

// KeywordNLI is the local tier of the zero-shot NLI model. Each label
// scores a baseline plus a hit weight per matched trigger word, then
// scores are normalized to sum to one and sorted descending, matching
// the hosted model's output ordering.
type KeywordNLI struct{}

func NewKeywordNLI() *KeywordNLI { return &KeywordNLI{} }

func (c *KeywordNLI) ClassifyLabels(text string, labels []string) (*ZeroShotResult, error) {
	if len(labels) == 0 {
		return nil, errors.New("no candidate labels supplied")
	}
	lower := strings.ToLower(text)

	type scored struct {
		label string
		score float64
	}
	raw := make([]scored, 0, len(labels))
	total := 0.0
	for _, label := range labels {
		score := 0.1
		for _, trigger := range labelAffinities[strings.ToLower(label)] {
			if strings.Contains(lower, trigger) {
				score += 0.3
			}
		}
		raw = append(raw, scored{label, score})
		total += score
	}

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].score > raw[j].score })

	result := &ZeroShotResult{Sequence: text}
	for _, s := range raw {
		result.Labels = append(result.Labels, s.label)
		result.Scores = append(result.Scores, s.score/total)
	}
	return result, nil
}

// clauseRedFlags are phrases that mark a clause non-compliant on their own.
var clauseRedFlags = []string{
	"sole discretion",
	"without notice",
	"waive",
	"waives",
	"no liability",
	"unlimited penalty",
	"at any time without",
	"non-negotiable",
}

// clauseObligations are phrases signalling regulator-aligned drafting.
var clauseObligations = []string{
	"shall comply",
	"in accordance with",
	"as per rbi",
	"rbi guidelines",
	"prior written consent",
	"fair practices",
	"grievance",
	"disclosed",
	"disclosure",
}

// ClauseClassifier is the local tier of the legal clause model. It
// votes red-flag phrases against obligation phrases and emits the same
// label vocabulary the hosted model uses.
type ClauseClassifier struct{}

func NewClauseClassifier() *ClauseClassifier { return &ClauseClassifier{} }

func (c *ClauseClassifier) Classify(text string) ([]Classification, error) {
	lower := strings.ToLower(text)

	flags := 0
	for _, phrase := range clauseRedFlags {
		if strings.Contains(lower, phrase) {
			flags++
		}
	}
	obligations := 0
	for _, phrase := range clauseObligations {
		if strings.Contains(lower, phrase) {
			obligations++
		}
	}

	if flags > 0 && flags >= obligations {
		score := 0.6 + 0.1*float64(flags)
		if score > 0.95 {
			score = 0.95
		}
		return []Classification{{Label: "NON_COMPLIANT", Score: score}}, nil
	}
	score := 0.6 + 0.1*float64(obligations)
	if score > 0.95 {
		score = 0.95
	}
	return []Classification{{Label: "COMPLIANT", Score: score}}, nil
}

// rewriteReplacements normalizes known problem phrases during clause rewrites.
var rewriteReplacements = [][2]string{
	{"sole discretion", "mutual written agreement"},
	{"without notice", "with thirty days' prior written notice"},
	{"unlimited penalty", "a penalty capped as per RBI guidelines"},
	{"at any time without", "only after due notice and without"},
}

// ClauseRewriter is the local tier of the rewrite-suggestion generator.
// It strips the instruction prefix from the prompt, substitutes known
// problem phrases and appends a compliance rider.
type ClauseRewriter struct{}

func NewClauseRewriter() *ClauseRewriter { return &ClauseRewriter{} }

func (g *ClauseRewriter) Generate(prompt string) (string, error) {
	clause := prompt
	if idx := strings.Index(prompt, ":"); idx >= 0 {
		clause = strings.TrimSpace(prompt[idx+1:])
	}
	if clause == "" {
		return "", errors.New("empty prompt")
	}
	rewritten := clause
	for _, pair := range rewriteReplacements {
		rewritten = replaceFold(rewritten, pair[0], pair[1])
	}
	return rewritten + " This clause shall be read in accordance with applicable RBI guidelines for digital lending.", nil
}

// replaceFold replaces all case-insensitive occurrences of old with new.
func replaceFold(s, old, new string) string {
	lower := strings.ToLower(s)
	target := strings.ToLower(old)
	var b strings.Builder
	for {
		idx := strings.Index(lower, target)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		b.WriteString(new)
		s = s[idx+len(old):]
		lower = lower[idx+len(target):]
	}
}

// LeadSummarizer is the local tier of the summarization model: the
// first few sentences of the document, truncated to a fixed budget.
type LeadSummarizer struct {
	MaxSentences int
	MaxRunes     int
}

func NewLeadSummarizer() *LeadSummarizer {
	return &LeadSummarizer{MaxSentences: 3, MaxRunes: 400}
}

func (s *LeadSummarizer) Summarize(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("empty document")
	}

	sentences := splitSentences(trimmed)
	if len(sentences) > s.MaxSentences {
		sentences = sentences[:s.MaxSentences]
	}
	summary := strings.Join(sentences, " ")

	runes := []rune(summary)
	if len(runes) > s.MaxRunes {
		summary = string(runes[:s.MaxRunes]) + "…"
	}
	return summary, nil
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// financeLexicon carries sentiment weights for financial vocabulary,
// mirroring the label set of the hosted financial-text classifier.
var financeNegative = []string{
	"fraud", "default", "scam", "launder", "shell company", "embezzle",
	"fake invoice", "unreported", "evasion", "bribe", "kickback",
}

var financePositive = []string{
	"profit", "growth", "repaid", "on time", "surplus", "audited", "compliant",
}

// FinanceClassifier is the local tier of the financial-text classifier.
type FinanceClassifier struct{}

func NewFinanceClassifier() *FinanceClassifier { return &FinanceClassifier{} }

func (c *FinanceClassifier) Classify(text string) ([]Classification, error) {
	lower := strings.ToLower(text)
	neg, pos := 0, 0
	for _, w := range financeNegative {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	for _, w := range financePositive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	switch {
	case neg > pos:
		score := 0.55 + 0.1*float64(neg-pos)
		if score > 0.95 {
			score = 0.95
		}
		return []Classification{{Label: "negative", Score: score}}, nil
	case pos > neg:
		score := 0.55 + 0.1*float64(pos-neg)
		if score > 0.95 {
			score = 0.95
		}
		return []Classification{{Label: "positive", Score: score}}, nil
	default:
		return []Classification{{Label: "neutral", Score: 0.5}}, nil
	}
}
