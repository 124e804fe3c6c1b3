package client

import "github.com/roach88/leetup/internal/catalog"

// Wire types for the catalog endpoint. Field names follow the upstream
// JSON, double-underscores included. Only what the mapping needs is
// declared; unknown envelope fields decode to nothing.

type listResponse struct {
	UserName        string           `json:"user_name"`
	NumSolved       int              `json:"num_solved"`
	NumTotal        int              `json:"num_total"`
	StatStatusPairs []statStatusPair `json:"stat_status_pairs"`
}

type statStatusPair struct {
	Stat       stat       `json:"stat"`
	Status     *string    `json:"status"` // non-nil means accepted
	Difficulty difficulty `json:"difficulty"`
	PaidOnly   bool       `json:"paid_only"`
	IsFavor    bool       `json:"is_favor"`
}

type stat struct {
	QuestionID        int    `json:"question_id"`
	QuestionTitle     string `json:"question__title"`
	QuestionTitleSlug string `json:"question__title_slug"`
}

type difficulty struct {
	Level int `json:"level"`
}

// toProblems maps the envelope to engine records, preserving response
// order. A missing slug is derived from the title so keyword matching
// and the title sort key always have something to work on.
func (r listResponse) toProblems() []catalog.Problem {
	problems := make([]catalog.Problem, 0, len(r.StatStatusPairs))
	for _, pair := range r.StatStatusPairs {
		slug := pair.Stat.QuestionTitleSlug
		if slug == "" {
			slug = catalog.Slugify(pair.Stat.QuestionTitle)
		}
		problems = append(problems, catalog.Problem{
			ID:        pair.Stat.QuestionID,
			Title:     pair.Stat.QuestionTitle,
			TitleSlug: slug,
			Level:     pair.Difficulty.Level,
			Done:      pair.Status != nil,
			Locked:    pair.PaidOnly,
			Starred:   pair.IsFavor,
		})
	}
	return problems
}
