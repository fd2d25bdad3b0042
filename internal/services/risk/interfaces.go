package risk

import "context"

// TabularScorer is the slice of the hosted inference client this
// service needs: scoring a named tabular model over raw features.
type TabularScorer interface {
	ScoreTabular(ctx context.Context, model string, features map[string]interface{}) (map[string]interface{}, error)
}
