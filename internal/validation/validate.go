package validation

import (
	"fmt"

	"medscan/internal/domain"
)

// Error is a schema rejection. The reason is the user-facing message shown
// verbatim in chat.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func reject(field, reason string) error {
	return &Error{Field: field, Reason: reason}
}

type fieldKind int

const (
	numericNonNegative fieldKind = iota
	numericPositive
	numericRanged
	numericFree
	categorical
	binary
)

type field struct {
	name    string
	kind    fieldKind
	lo, hi  float64
	allowed []string
	reason  string
}

// heartSchema lists the 11 positional fields of the heart_attack model in
// submission order. Validation is fail-fast: the first violated field wins.
var heartSchema = []field{
	{name: "Age", kind: numericNonNegative, reason: "Ошибка: Age должен быть неотрицательным числом."},
	{name: "Sex", kind: categorical, allowed: []string{"M", "F"}, reason: "Ошибка: Sex должен быть 'M' (Мужской) или 'F' (Женский)."},
	{name: "ChestPainType", kind: categorical, allowed: []string{"TA", "ATA", "NAP", "ASY"}, reason: "Ошибка: ChestPainType должен быть одним из: TA, ATA, NAP, ASY."},
	{name: "RestingBP", kind: numericPositive, reason: "Ошибка: RestingBP должен быть положительным числом."},
	{name: "Cholesterol", kind: numericNonNegative, reason: "Ошибка: Cholesterol должен быть неотрицательным числом."},
	{name: "FastingBS", kind: binary, reason: "Ошибка: FastingBS должен быть 0 или 1."},
	{name: "RestingECG", kind: categorical, allowed: []string{"Normal", "ST", "LVH"}, reason: "Ошибка: RestingECG должен быть одним из: Normal, ST, LVH."},
	{name: "MaxHR", kind: numericRanged, lo: 60, hi: 202, reason: "Ошибка: MaxHR должен быть числом в диапазоне от 60 до 202."},
	{name: "ExerciseAngina", kind: categorical, allowed: []string{"Y", "N"}, reason: "Ошибка: ExerciseAngina должен быть 'Y' (Да) или 'N' (Нет)."},
	{name: "Oldpeak", kind: numericFree, reason: "Ошибка: Oldpeak должен быть числом."},
	{name: "ST_Slope", kind: categorical, allowed: []string{"Up", "Flat", "Down"}, reason: "Ошибка: ST_Slope должен быть одним из: Up, Flat, Down."},
}

const (
	// HeartArity is the required token count for the heart_attack model.
	HeartArity = 11

	heartArityReason = "Ошибка: Входной список должен содержать ровно 11 элементов."
	diabetesReason   = "Все значения должны быть числовые."
)

// Validate checks a raw token list against the schema of the given model and
// returns the normalized parameter vector. On rejection the returned error
// is a *Error whose message identifies the offending field.
func Validate(model domain.ModelID, tokens []string) ([]domain.Param, error) {
	switch model {
	case domain.ModelHeartAttack:
		return validateHeart(tokens)
	case domain.ModelDiabetes:
		return validateDiabetes(tokens)
	default:
		return nil, fmt.Errorf("model %q has no parameter schema: %w", model, domain.ErrUnknownModel)
	}
}

func validateHeart(tokens []string) ([]domain.Param, error) {
	if len(tokens) != HeartArity {
		return nil, reject("", heartArityReason)
	}

	params := ParseTokens(tokens)
	for i, f := range heartSchema {
		if err := checkField(f, params[i]); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func checkField(f field, p domain.Param) error {
	switch f.kind {
	case numericNonNegative:
		if p.Kind != domain.ParamNumber || p.Number < 0 {
			return reject(f.name, f.reason)
		}
	case numericPositive:
		if p.Kind != domain.ParamNumber || p.Number <= 0 {
			return reject(f.name, f.reason)
		}
	case numericRanged:
		if p.Kind != domain.ParamNumber || p.Number < f.lo || p.Number > f.hi {
			return reject(f.name, f.reason)
		}
	case numericFree:
		if p.Kind != domain.ParamNumber {
			return reject(f.name, f.reason)
		}
	case binary:
		if p.Kind != domain.ParamNumber || (p.Number != 0 && p.Number != 1) {
			return reject(f.name, f.reason)
		}
	case categorical:
		if p.Kind != domain.ParamCategory || !contains(f.allowed, p.Category) {
			return reject(f.name, f.reason)
		}
	}
	return nil
}

// validateDiabetes enforces only that every token is numeric. The model
// imposes no arity or range constraints beyond that.
func validateDiabetes(tokens []string) ([]domain.Param, error) {
	params := ParseTokens(tokens)
	for _, p := range params {
		if p.Kind != domain.ParamNumber {
			return nil, reject("", diabetesReason)
		}
	}
	return params, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
