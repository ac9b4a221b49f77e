package cerrors

import "fmt"

type Generic struct {
	Phase  string
	Reason string
}

func (e Generic) Error() string {
	if e.Phase == "" {
		return e.Reason
	}
	return fmt.Sprintf("[%s]: %s", e.Phase, e.Reason)
}

func (e Generic) UserFriendly() bool {
	return true
}

func (e Generic) ErrorType() ErrorType {
	return ErrorTypeGeneric
}

// InvalidScenario is returned when scenario parameters would produce a malformed timeline
type InvalidScenario struct {
	Scenario string
	Reason   string
}

func (e InvalidScenario) Error() string {
	if e.Scenario == "" {
		return fmt.Sprintf("invalid scenario, %s", e.Reason)
	}
	return fmt.Sprintf("scenario '%s' is invalid, %s", e.Scenario, e.Reason)
}

func (e InvalidScenario) UserFriendly() bool {
	return true
}

func (e InvalidScenario) ErrorType() ErrorType {
	return ErrorTypeInvalidScenario
}

type OutputDir struct {
	Path   string
	Reason string
}

func (e OutputDir) Error() string {
	return fmt.Sprintf("unable to prepare output directory '%s', %s", e.Path, e.Reason)
}

func (e OutputDir) UserFriendly() bool {
	return true
}

func (e OutputDir) ErrorType() ErrorType {
	return ErrorTypeOutputDir
}

type Render struct {
	Scenario string
	Format   string
	Reason   string
}

func (e Render) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to render '%s', %s", e.Scenario, e.Reason)
	}
	return fmt.Sprintf("failed to render '%s' as %s, %s", e.Scenario, e.Format, e.Reason)
}

func (e Render) UserFriendly() bool {
	return true
}

func (e Render) ErrorType() ErrorType {
	return ErrorTypeRender
}

type Config struct {
	Source string
	Reason string
}

func (e Config) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid configuration, %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration in '%s', %s", e.Source, e.Reason)
}

func (e Config) UserFriendly() bool {
	return true
}

func (e Config) ErrorType() ErrorType {
	return ErrorTypeConfig
}
