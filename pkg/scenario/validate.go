package scenario

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/math"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Validate checks every scenario field and reports all problems at once
func Validate(s types.Scenario) error {
	var allErrs field.ErrorList

	namePath := field.NewPath("name")
	switch {
	case s.Name == "":
		allErrs = append(allErrs, field.Required(namePath, "used as the diagram file name"))
	case s.Name == "." || s.Name == ".." || strings.ContainsAny(s.Name, `/\`):
		allErrs = append(allErrs, field.Invalid(namePath, s.Name, "must be a plain file name"))
	}

	if !isKnownKind(s.Kind) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("kind"), s.Kind, kindNames()))
	}

	probeErrs := validateProbe(s.Kind, s.Probe, field.NewPath("probe"))
	allErrs = append(allErrs, probeErrs...)
	// the sampling reuses the probe period, only check it once the probe is sound
	xLimit := gomath.Inf(1)
	if len(probeErrs) == 0 {
		sampling := SamplingFor(s)
		samplingErrs := ValidateSampling(sampling, field.NewPath("timeline"))
		allErrs = append(allErrs, samplingErrs...)
		if len(samplingErrs) == 0 {
			xLimit = AxisLimit(sampling)
		}
	}
	tooFar := fmt.Sprintf("must not exceed %v, %d periods past the last sample", xLimit, MaxSamples)

	allErrs = append(allErrs, validateRule(s.Rule, field.NewPath("rule"))...)

	xMaxPath := field.NewPath("xMax")
	switch {
	case !math.IsFinite(s.XMax) || s.XMax < 0:
		allErrs = append(allErrs, field.Invalid(xMaxPath, s.XMax, "must be zero or a positive number"))
	case s.XMax > xLimit:
		allErrs = append(allErrs, field.Invalid(xMaxPath, s.XMax, tooFar))
	}

	for i, d := range s.Decisions {
		path := field.NewPath("decisions").Index(i)
		if !isKnownDecision(d.Type) {
			allErrs = append(allErrs, field.NotSupported(path.Child("type"), d.Type, decisionNames()))
		}
		if d.Offset != nil {
			switch {
			case !math.IsFinite(d.Offset.X) || !math.IsFinite(d.Offset.Y):
				allErrs = append(allErrs, field.Invalid(path.Child("offset"), *d.Offset, "must be finite"))
			case gomath.Abs(d.Offset.X) > xLimit:
				allErrs = append(allErrs, field.Invalid(path.Child("offset", "x"), d.Offset.X, tooFar))
			}
		}
	}

	for i, n := range s.Notes {
		path := field.NewPath("notes").Index(i)
		if n.Text == "" {
			allErrs = append(allErrs, field.Required(path.Child("text"), ""))
		}
		switch {
		case !math.IsFinite(n.X) || !math.IsFinite(n.Y):
			allErrs = append(allErrs, field.Invalid(path, fmt.Sprintf("(%v, %v)", n.X, n.Y), "position must be finite"))
		case gomath.Abs(n.X) > xLimit:
			allErrs = append(allErrs, field.Invalid(path.Child("x"), n.X, tooFar))
		}
	}

	if len(allErrs) != 0 {
		return cerrors.InvalidScenario{Scenario: s.Name, Reason: allErrs.ToAggregate().Error()}
	}
	return nil
}

// ValidateSampling rejects parameters that would produce a malformed or empty timeline
func ValidateSampling(s types.Sampling, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	if !math.IsFinite(s.Period) || s.Period <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("period"), s.Period, "must be greater than 0"))
	}
	if !math.IsFinite(s.InitialDelay) || s.InitialDelay < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("initialDelay"), s.InitialDelay, "must be greater than or equal to 0"))
	}
	if s.Count < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("count"), s.Count, "must be greater than or equal to 0"))
	}
	if s.Count > MaxSamples {
		allErrs = append(allErrs, field.Invalid(path.Child("count"), s.Count, fmt.Sprintf("must not exceed %d samples", MaxSamples)))
	}
	if len(allErrs) != 0 || s.Count > 0 {
		return allErrs
	}

	untilPath := path.Child("until")
	switch {
	case !math.IsFinite(s.Until):
		allErrs = append(allErrs, field.Invalid(untilPath, s.Until, "must be finite"))
	case s.Until <= s.InitialDelay:
		allErrs = append(allErrs, field.Invalid(untilPath, s.Until, fmt.Sprintf("must be greater than the initial delay (%v) when count is not set", s.InitialDelay)))
	case (s.Until-s.InitialDelay)/s.Period > MaxSamples:
		allErrs = append(allErrs, field.Invalid(untilPath, s.Until, fmt.Sprintf("must not produce more than %d samples", MaxSamples)))
	}
	return allErrs
}

func validateProbe(kind types.ProbeKind, probe corev1.Probe, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	if probe.PeriodSeconds <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("periodSeconds"), probe.PeriodSeconds, "must be greater than 0"))
	}
	if probe.InitialDelaySeconds < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("initialDelaySeconds"), probe.InitialDelaySeconds, "must be greater than or equal to 0"))
	}
	if probe.FailureThreshold < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("failureThreshold"), probe.FailureThreshold, "must be greater than or equal to 0"))
	}
	if probe.SuccessThreshold < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("successThreshold"), probe.SuccessThreshold, "must be greater than or equal to 0"))
	}
	if kind != types.ReadinessProbe && probe.SuccessThreshold > 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("successThreshold"), probe.SuccessThreshold, "must be 1 for liveness and startup probes"))
	}
	if grace := probe.TerminationGracePeriodSeconds; grace != nil {
		gracePath := path.Child("terminationGracePeriodSeconds")
		if kind == types.ReadinessProbe {
			allErrs = append(allErrs, field.Forbidden(gracePath, "must not be set for readiness probes"))
		} else if *grace <= 0 {
			allErrs = append(allErrs, field.Invalid(gracePath, *grace, "must be greater than 0"))
		}
	}
	return allErrs
}

func validateRule(rule types.Rule, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	switch rule.Type {
	case types.ConstantRule:
	case types.StepRule:
		if !math.IsFinite(rule.Threshold) {
			allErrs = append(allErrs, field.Invalid(path.Child("threshold"), rule.Threshold, "must be finite"))
		}
	case types.WindowRule:
		if !math.IsFinite(rule.Start) {
			allErrs = append(allErrs, field.Invalid(path.Child("start"), rule.Start, "must be finite"))
		}
		if rule.End != nil && (!math.IsFinite(*rule.End) || *rule.End <= rule.Start) {
			allErrs = append(allErrs, field.Invalid(path.Child("end"), *rule.End, "must be a finite value greater than start"))
		}
	default:
		allErrs = append(allErrs, field.NotSupported(path.Child("type"), rule.Type,
			[]string{string(types.ConstantRule), string(types.StepRule), string(types.WindowRule)}))
	}
	return allErrs
}

func isKnownKind(kind types.ProbeKind) bool {
	for _, k := range types.ProbeKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func kindNames() []string {
	names := make([]string, 0, len(types.ProbeKinds))
	for _, k := range types.ProbeKinds {
		names = append(names, string(k))
	}
	return names
}

func isKnownDecision(d types.DecisionType) bool {
	for _, known := range types.DecisionTypes {
		if known == d {
			return true
		}
	}
	return false
}

func decisionNames() []string {
	names := make([]string, 0, len(types.DecisionTypes))
	for _, d := range types.DecisionTypes {
		names = append(names, string(d))
	}
	return names
}
