package forecast

import (
	"math"

	"github.com/gilby125/thai-flight-analytics/apperr"
	"gonum.org/v1/gonum/stat"
)

// stump is a single-split regression tree of depth 1: the additive learner
// trained at each boosting round. No deeper trees are built; the configured
// depth only caps how many candidate thresholds are tried per feature.
type stump struct {
	featureIndex int
	threshold    float64
	leftValue    float64
	rightValue   float64
}

func (s stump) predict(f Features) float64 {
	if f[s.featureIndex] <= s.threshold {
		return s.leftValue
	}
	return s.rightValue
}

// Model is an additive gradient-boosted regressor over trainingRow inputs.
type Model struct {
	baseValue float64
	stumps    []stump
	shrinkage float64
	RMSE      float64
	MAE       float64
}

// modelOptions mirrors config.ForecastConfig's training knobs.
type modelOptions struct {
	Shrinkage float64
	MaxDepth  int
	Rounds    int
	CVFolds   int
}

// fitModel trains an additive gradient-boosted regressor on rows using
// gradient boosting with one regression stump per round, selected by
// greedy variance-reduction search across features and thresholds at each
// round (§4.6). Each round's learner is one depth-1 stump; MaxDepth does not
// grow deeper trees, it is passed to fitStump as the per-feature cap on
// candidate thresholds.
func fitModel(rows []trainingRow, opts modelOptions) (*Model, error) {
	if len(rows) == 0 {
		return nil, apperr.ModelUnavailable("no training rows available")
	}

	prices := make([]float64, len(rows))
	for i, r := range rows {
		prices[i] = r.price
	}
	base := stat.Mean(prices, nil)

	m := &Model{baseValue: base, shrinkage: opts.Shrinkage}

	residuals := make([]float64, len(rows))
	for i, p := range prices {
		residuals[i] = p - base
	}

	rounds := opts.Rounds
	if rounds <= 0 {
		rounds = 100
	}
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = 6
	}

	for round := 0; round < rounds; round++ {
		s := fitStump(rows, residuals, depth)
		if s == nil {
			break
		}
		m.stumps = append(m.stumps, *s)
		for i, r := range rows {
			residuals[i] -= m.shrinkage * s.predict(r.features)
		}
	}

	return m, nil
}

// fitStump greedily finds the single (feature, threshold) split minimizing
// squared residual error, trying at most `depth` sampled candidate
// thresholds per feature; the leaf values are the mean residuals on each
// side of that one split.
func fitStump(rows []trainingRow, residuals []float64, depth int) *stump {
	if len(rows) < 2 {
		return nil
	}

	bestFeature := -1
	var bestThreshold, bestLeft, bestRight float64
	bestSSE := math.Inf(1)

	for feature := 0; feature < len(Features{}); feature++ {
		thresholds := candidateThresholds(rows, feature, depth)
		for _, threshold := range thresholds {
			var leftSum, rightSum float64
			var leftN, rightN int
			for i, r := range rows {
				if r.features[feature] <= threshold {
					leftSum += residuals[i]
					leftN++
				} else {
					rightSum += residuals[i]
					rightN++
				}
			}
			if leftN == 0 || rightN == 0 {
				continue
			}
			leftMean := leftSum / float64(leftN)
			rightMean := rightSum / float64(rightN)

			sse := 0.0
			for i, r := range rows {
				pred := rightMean
				if r.features[feature] <= threshold {
					pred = leftMean
				}
				diff := residuals[i] - pred
				sse += diff * diff
			}

			if sse < bestSSE {
				bestSSE = sse
				bestFeature = feature
				bestThreshold = threshold
				bestLeft = leftMean
				bestRight = rightMean
			}
		}
	}

	if bestFeature == -1 {
		return nil
	}
	return &stump{
		featureIndex: bestFeature,
		threshold:    bestThreshold,
		leftValue:    bestLeft,
		rightValue:   bestRight,
	}
}

// candidateThresholds samples up to `limit` distinct values of a feature
// across rows to use as split thresholds.
func candidateThresholds(rows []trainingRow, feature, limit int) []float64 {
	seen := map[float64]bool{}
	var values []float64
	for _, r := range rows {
		v := r.features[feature]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	if len(values) <= limit {
		return values
	}
	step := len(values) / limit
	if step < 1 {
		step = 1
	}
	var out []float64
	for i := 0; i < len(values) && len(out) < limit; i += step {
		out = append(out, values[i])
	}
	return out
}

// predict returns max(0, model(x)) without the holiday multiplier, which
// the caller applies (§4.6 Predict).
func (m *Model) predict(f Features) float64 {
	total := m.baseValue
	for _, s := range m.stumps {
		total += m.shrinkage * s.predict(f)
	}
	if total < 0 {
		return 0
	}
	return total
}

// crossValidate runs k-fold sequential-chunk cross-validation, training a
// fresh model on each fold's training split and retaining the model from
// the fold with the lowest test RMSE (§4.6). Falls back to a single
// all-data fit when there are too few rows to fold meaningfully.
func crossValidate(rows []trainingRow, opts modelOptions) (*Model, error) {
	k := opts.CVFolds
	if k <= 1 || len(rows) < k*2 {
		m, err := fitModel(rows, opts)
		if err != nil {
			return nil, err
		}
		m.RMSE, m.MAE = evaluate(m, rows)
		return m, nil
	}

	foldSize := len(rows) / k
	var best *Model
	bestRMSE := math.Inf(1)

	for fold := 0; fold < k; fold++ {
		start := fold * foldSize
		end := start + foldSize
		if fold == k-1 {
			end = len(rows)
		}

		test := rows[start:end]
		var train []trainingRow
		train = append(train, rows[:start]...)
		train = append(train, rows[end:]...)
		if len(train) == 0 || len(test) == 0 {
			continue
		}

		m, err := fitModel(train, opts)
		if err != nil {
			continue
		}
		rmse, mae := evaluate(m, test)
		m.RMSE, m.MAE = rmse, mae
		if rmse < bestRMSE {
			bestRMSE = rmse
			best = m
		}
	}

	if best == nil {
		m, err := fitModel(rows, opts)
		if err != nil {
			return nil, err
		}
		m.RMSE, m.MAE = evaluate(m, rows)
		return m, nil
	}
	return best, nil
}

func evaluate(m *Model, rows []trainingRow) (rmse, mae float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	var sse, sae float64
	for _, r := range rows {
		diff := m.predict(r.features) - r.price
		sse += diff * diff
		sae += math.Abs(diff)
	}
	n := float64(len(rows))
	return math.Sqrt(sse / n), sae / n
}
