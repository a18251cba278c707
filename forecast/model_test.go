package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRows(n int, base float64, step float64) []trainingRow {
	rows := make([]trainingRow, 0, n)
	for i := 0; i < n; i++ {
		f := Features{}
		f[featDaysUntilDeparture] = float64(i)
		rows = append(rows, trainingRow{features: f, price: base + step*float64(i)})
	}
	return rows
}

func TestFitModelErrorsOnNoRows(t *testing.T) {
	_, err := fitModel(nil, modelOptions{})
	require.Error(t, err)
}

func TestFitModelLearnsATrend(t *testing.T) {
	rows := fixtureRows(40, 2000, 10)
	m, err := fitModel(rows, modelOptions{Shrinkage: 0.1, Rounds: 50, MaxDepth: 6})
	require.NoError(t, err)

	low := m.predict(rows[0].features)
	high := m.predict(rows[len(rows)-1].features)
	assert.Greater(t, high, low)
}

func TestModelPredictNeverNegative(t *testing.T) {
	m := &Model{baseValue: -100, shrinkage: 0.1}
	got := m.predict(Features{})
	assert.Equal(t, 0.0, got)
}

func TestCrossValidateFallsBackWithFewRows(t *testing.T) {
	rows := fixtureRows(3, 1000, 5)
	m, err := crossValidate(rows, modelOptions{CVFolds: 5, Rounds: 10, Shrinkage: 0.1})
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestCrossValidateProducesRMSE(t *testing.T) {
	rows := fixtureRows(50, 2000, 3)
	m, err := crossValidate(rows, modelOptions{CVFolds: 5, Rounds: 30, Shrinkage: 0.1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.RMSE, 0.0)
}

func TestCandidateThresholdsCapsAtLimit(t *testing.T) {
	rows := fixtureRows(20, 1000, 1)
	thresholds := candidateThresholds(rows, featDaysUntilDeparture, 5)
	assert.LessOrEqual(t, len(thresholds), 5)
}

func TestStumpPredictSplitsOnThreshold(t *testing.T) {
	s := stump{featureIndex: featDaysUntilDeparture, threshold: 10, leftValue: -5, rightValue: 5}
	low := Features{}
	low[featDaysUntilDeparture] = 5
	high := Features{}
	high[featDaysUntilDeparture] = 15

	assert.Equal(t, -5.0, s.predict(low))
	assert.Equal(t, 5.0, s.predict(high))
}
