// Package core has core logic for trend fitting, event adjustment,
// scenario building and forecasting.
package core

import (
	"fmt"
	"math"

	"github.com/findexlab/fipulse/schema"
)

// FitTrend fits an ordinary least squares trend over the annual series.
// For LogLinearTrend the fit runs on log(value), which requires every
// observation to be strictly positive. At least two distinct years are
// required, and all values must be finite.
func FitTrend(series schema.IndicatorSeries, form schema.TrendForm) (schema.TrendModel, error) {
	obs := series.Observations
	if len(obs) < 2 {
		return schema.TrendModel{}, fmt.Errorf("indicator %q has %d observation(s); at least 2 are required to fit a trend", series.Indicator, len(obs))
	}

	distinct := make(map[int]struct{}, len(obs))
	for _, o := range obs {
		distinct[o.Year] = struct{}{}
	}
	if len(distinct) < 2 {
		return schema.TrendModel{}, fmt.Errorf("indicator %q has observations for a single year; at least 2 distinct years are required", series.Indicator)
	}

	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	for i, o := range obs {
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			return schema.TrendModel{}, fmt.Errorf("indicator %q has a non-finite value in year %d", series.Indicator, o.Year)
		}
		xs[i] = float64(o.Year)
		ys[i] = o.Value
		if form == schema.LogLinearTrend {
			if o.Value <= 0 {
				return schema.TrendModel{}, fmt.Errorf("indicator %q has non-positive value %.4f in year %d; log-linear trend requires positive values", series.Indicator, o.Value, o.Year)
			}
			ys[i] = math.Log(o.Value)
		}
	}

	slope, intercept := leastSquares(xs, ys)
	return schema.TrendModel{
		Form:      form,
		Slope:     slope,
		Intercept: intercept,
	}, nil
}

// PredictTrend evaluates the fitted trend at each requested year,
// preserving the input year order. Log-linear predictions are
// exponentiated back to the original scale.
func PredictTrend(model schema.TrendModel, years []int) []schema.Observation {
	predictions := make([]schema.Observation, len(years))
	for i, year := range years {
		value := model.Intercept + model.Slope*float64(year)
		if model.Form == schema.LogLinearTrend {
			value = math.Exp(value)
		}
		predictions[i] = schema.Observation{Year: year, Value: value}
	}
	return predictions
}

// AnnualDrift reports the modeled change per year on the original scale.
// For the log-linear form this is the relative growth rate in percent.
func AnnualDrift(model schema.TrendModel) float64 {
	if model.Form == schema.LogLinearTrend {
		return (math.Exp(model.Slope) - 1) * 100
	}
	return model.Slope
}

// leastSquares solves the closed-form normal equations for a single
// regressor.
func leastSquares(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var num, den float64
	for i := range xs {
		dx := xs[i] - meanX
		num += dx * (ys[i] - meanY)
		den += dx * dx
	}

	slope = num / den
	intercept = meanY - slope*meanX
	return slope, intercept
}
