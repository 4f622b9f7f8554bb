package extraction

import (
	"math"
	"strconv"
	"strings"
)

// ToDecimalFraction converts a percentage such as "50%" into its decimal
// fraction ("0.5"), rounded to two places. Values without a percent sign, or
// whose number cannot be parsed, are returned unchanged.
func ToDecimalFraction(raw string) string {
	if !strings.Contains(raw, "%") {
		return raw
	}

	number := strings.TrimSpace(strings.ReplaceAll(raw, "%", ""))
	value, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return raw
	}

	fraction := math.Round(value) / 100
	return strconv.FormatFloat(fraction, 'f', -1, 64)
}

// CanonicalFieldName turns an on-page label into a candidate field key:
// "Shooting accuracy %" becomes "shooting_accuracy_%".
func CanonicalFieldName(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return ""
	}
	label = strings.ReplaceAll(label, "/", " ")
	return strings.Join(strings.Fields(label), "_")
}

func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeValue cleans a raw stat value for the given kind. The second return
// value is false when the value is empty or does not satisfy the kind, in
// which case callers treat the stat as absent.
func NormalizeValue(raw string, kind Kind) (string, bool) {
	value := CollapseSpace(raw)
	if value == "" {
		return "", false
	}

	switch kind {
	case KindInteger, KindDecimal:
		value = strings.ReplaceAll(value, ",", "")
		value = strings.ReplaceAll(value, " ", "")
		value = ToDecimalFraction(value)
	default:
		return value, true
	}

	switch kind {
	case KindInteger:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return "", false
		}
	case KindDecimal:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "", false
		}
	}
	return value, true
}
