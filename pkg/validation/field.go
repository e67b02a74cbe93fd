package validation

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/goliatone/go-tokensale/pkg/model"
)

const (
	messageInvalid  = "Invalid"
	messageTooLarge = "Number is too large"
)

var (
	digitsPattern = regexp.MustCompile(model.DigitsPattern)

	patternCache sync.Map // map[string]*regexp.Regexp
)

var formatCeilings = map[string]*big.Int{
	model.FormatUint8:   new(big.Int).SetUint64(255),
	model.FormatUint64:  new(big.Int).SetUint64(^uint64(0)),
	model.FormatUint256: math.MaxBig256,
}

// ValidateField checks a raw input against the field's rules and returns the
// first failure, or nil when the value is acceptable.
func ValidateField(field model.Field, raw string) *FieldError {
	_, fe := CoerceField(field, raw)
	return fe
}

// CoerceField validates a raw input and converts it to its typed value:
// string for text fields and *big.Int for integer fields.
func CoerceField(field model.Field, raw string) (any, *FieldError) {
	switch field.Type {
	case model.FieldTypeInteger:
		return coerceInteger(field, raw)
	default:
		return coerceText(field, raw)
	}
}

func coerceText(field model.Field, raw string) (any, *FieldError) {
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleMinLength:
			limit, err := strconv.Atoi(rule.Params["value"])
			if err != nil {
				continue
			}
			if utf8.RuneCountInString(raw) < limit {
				return nil, fail(field, rule, fmt.Sprintf("Must contain at least %d character(s)", limit))
			}
		case model.ValidationRulePattern:
			re := compilePattern(rule.Params["pattern"])
			if re != nil && !re.MatchString(raw) {
				return nil, fail(field, rule, messageInvalid)
			}
		}
	}
	return raw, nil
}

func coerceInteger(field model.Field, raw string) (any, *FieldError) {
	patternRule, ok := field.Rule(model.ValidationRulePattern)
	if !ok {
		patternRule = model.ValidationRule{Kind: model.ValidationRulePattern}
	}
	// Coercion needs plain digits even when the field declares a looser pattern.
	if !digitsPattern.MatchString(raw) {
		return nil, fail(field, patternRule, messageInvalid)
	}
	if re := compilePattern(patternRule.Params["pattern"]); re != nil && !re.MatchString(raw) {
		return nil, fail(field, patternRule, messageInvalid)
	}

	value, ok := math.ParseBig256(raw)
	if !ok {
		return nil, &FieldError{Field: field.Name, Rule: RuleRange, Message: messageTooLarge}
	}

	for _, rule := range field.Validations {
		bound, ok := ruleBound(rule)
		if !ok {
			continue
		}
		switch rule.Kind {
		case model.ValidationRuleMin:
			if value.Cmp(bound) < 0 {
				return nil, fail(field, rule, "Number must be greater than or equal to "+bound.String())
			}
		case model.ValidationRuleMax:
			if value.Cmp(bound) > 0 {
				return nil, fail(field, rule, "Number must be less than or equal to "+bound.String())
			}
		}
	}

	if ceiling, ok := formatCeilings[field.Format]; ok && value.Cmp(ceiling) > 0 {
		return nil, &FieldError{Field: field.Name, Rule: RuleRange, Message: messageTooLarge}
	}
	return value, nil
}

func ruleBound(rule model.ValidationRule) (*big.Int, bool) {
	if rule.Kind != model.ValidationRuleMin && rule.Kind != model.ValidationRuleMax {
		return nil, false
	}
	raw := rule.Params["value"]
	if raw == "" || !digitsPattern.MatchString(raw) {
		return nil, false
	}
	return math.ParseBig256(raw)
}

func fail(field model.Field, rule model.ValidationRule, fallback string) *FieldError {
	message := rule.Message
	if message == "" {
		message = fallback
	}
	return &FieldError{Field: field.Name, Rule: rule.Kind, Message: message}
}

func compilePattern(expr string) *regexp.Regexp {
	if expr == "" {
		return nil
	}
	if cached, ok := patternCache.Load(expr); ok {
		return cached.(*regexp.Regexp)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	patternCache.Store(expr, re)
	return re
}
