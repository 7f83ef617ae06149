// Package form validates the size and text fields that accompany a submitted
// design.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field limits.
const (
	MinHeightCM   = 100
	MaxHeightCM   = 250
	MinWeightKG   = 30
	MaxWeightKG   = 200
	MaxTextLength = 100
)

// Builds lists the selectable body builds in display order.
var Builds = []string{"lean", "regular", "athletic", "big"}

// Measurements are the size fields plus the free text.
type Measurements struct {
	HeightCM int    `json:"height"`
	WeightKG int    `json:"weight"`
	Build    string `json:"build"`
	Text     string `json:"text"`
}

// Defaults returns the values a fresh form starts with.
func Defaults() Measurements {
	return Measurements{HeightCM: 180, WeightKG: 80, Build: "athletic"}
}

// Rule names the check a field failed.
type Rule string

const (
	RuleRequired  Rule = "required"
	RuleMin       Rule = "min"
	RuleMax       Rule = "max"
	RuleMaxLength Rule = "maxLength"
	RuleOneOf     Rule = "oneOf"
)

// FieldError is a single failed check.
type FieldError struct {
	Field   string
	Rule    Rule
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors collects every failed check of one validation pass.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// For returns the first error recorded for field.
func (e Errors) For(field string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

var messages = map[string]map[Rule]string{
	"height": {
		RuleRequired: "Height is required",
		RuleMin:      "Height must be at least 100cm",
		RuleMax:      "Height must be less than 250cm",
	},
	"weight": {
		RuleRequired: "Weight is required",
		RuleMin:      "Weight must be at least 30kg",
		RuleMax:      "Weight must be less than 200kg",
	},
	"build": {
		RuleRequired: "Build is required",
		RuleOneOf:    "Build must be one of " + strings.Join(Builds, ", "),
	},
	"text": {
		RuleMaxLength: "Text is too long",
	},
}

// Message looks up the user-facing message for a field and rule.
func Message(field string, rule Rule) string {
	if m, ok := messages[field][rule]; ok {
		return m
	}
	return fmt.Sprintf("%s is invalid", field)
}

func fail(field string, rule Rule) FieldError {
	return FieldError{Field: field, Rule: rule, Message: Message(field, rule)}
}

// Parse converts raw entry text into Measurements and validates them.
// A blank or non-numeric height or weight counts as missing.
func Parse(height, weight, build, text string) (Measurements, error) {
	var errs Errors
	m := Measurements{Build: strings.TrimSpace(build), Text: text}

	var ok bool
	if m.HeightCM, ok = parseInt(height); !ok {
		errs = append(errs, fail("height", RuleRequired))
	}
	if m.WeightKG, ok = parseInt(weight); !ok {
		errs = append(errs, fail("weight", RuleRequired))
	}

	for _, fe := range validate(m) {
		if _, dup := errs.For(fe.Field); !dup {
			errs = append(errs, fe)
		}
	}
	if len(errs) > 0 {
		return m, errs
	}
	return m, nil
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, false
		}
		v = int(f)
	}
	return v, true
}

// Validate checks m against the field rules. It returns nil or Errors.
func Validate(m Measurements) error {
	if errs := validate(m); len(errs) > 0 {
		return errs
	}
	return nil
}

func validate(m Measurements) Errors {
	var errs Errors

	switch {
	case m.HeightCM < MinHeightCM:
		errs = append(errs, fail("height", RuleMin))
	case m.HeightCM > MaxHeightCM:
		errs = append(errs, fail("height", RuleMax))
	}

	switch {
	case m.WeightKG < MinWeightKG:
		errs = append(errs, fail("weight", RuleMin))
	case m.WeightKG > MaxWeightKG:
		errs = append(errs, fail("weight", RuleMax))
	}

	switch {
	case m.Build == "":
		errs = append(errs, fail("build", RuleRequired))
	case !validBuild(m.Build):
		errs = append(errs, fail("build", RuleOneOf))
	}

	if utf8.RuneCountInString(m.Text) > MaxTextLength {
		errs = append(errs, fail("text", RuleMaxLength))
	}

	return errs
}

func validBuild(b string) bool {
	for _, v := range Builds {
		if v == b {
			return true
		}
	}
	return false
}
