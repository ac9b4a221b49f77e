package scenario

import (
	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// MaxSamples caps the number of probe samples a single scenario may produce
const MaxSamples = 10000

// Timeline returns the probe timestamps InitialDelay + i*Period, either
// Count of them or every one strictly before Until when Count is zero
func Timeline(s types.Sampling) ([]float64, error) {
	if errs := ValidateSampling(s, field.NewPath("timeline")); len(errs) != 0 {
		return nil, cerrors.InvalidScenario{Reason: errs.ToAggregate().Error()}
	}

	if s.Count > 0 {
		timestamps := make([]float64, s.Count)
		for i := range timestamps {
			timestamps[i] = at(s, i)
		}
		return timestamps, nil
	}

	var timestamps []float64
	for i := 0; ; i++ {
		t := at(s, i)
		if t >= s.Until {
			break
		}
		timestamps = append(timestamps, t)
	}
	return timestamps, nil
}

func at(s types.Sampling, i int) float64 {
	return s.InitialDelay + float64(i)*s.Period
}

// AxisLimit is the largest x coordinate a chart of the sampling may reach,
// MaxSamples periods past the last sample
func AxisLimit(s types.Sampling) float64 {
	last := s.Until
	if s.Count > 0 {
		last = at(s, s.Count-1)
	}
	return last + MaxSamples*s.Period
}

// SamplingFor resolves the sampling of a scenario from its probe settings
func SamplingFor(s types.Scenario) types.Sampling {
	return types.Sampling{
		InitialDelay: float64(s.Probe.InitialDelaySeconds),
		Period:       float64(s.Probe.PeriodSeconds),
		Count:        s.Timeline.Count,
		Until:        s.Timeline.Until,
	}
}
