package validator

import (
	"fmt"
	"regexp"
	"strings"

	"campusmarket/internal/domain/model"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`[^0-9]`)
)

// IsEmail は簡易的なemail形式チェック。
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// FieldError は最初に失敗した項目を指す。
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// 配送フォームの必須項目（この順でチェックし、最初の不備だけ返す）
var requiredShippingFields = []struct {
	name  string
	value func(d model.ShippingDetails) string
}{
	{"full_name", func(d model.ShippingDetails) string { return d.FullName }},
	{"email", func(d model.ShippingDetails) string { return d.Email }},
	{"phone", func(d model.ShippingDetails) string { return d.Phone }},
	{"address", func(d model.ShippingDetails) string { return d.Address }},
	{"city", func(d model.ShippingDetails) string { return d.City }},
	{"state", func(d model.ShippingDetails) string { return d.State }},
}

// ValidateShipping は配送フォームを検証する。
// 必須チェック→email形式→電話番号（数字のみにして10〜15桁）。
func ValidateShipping(d model.ShippingDetails) error {
	for _, f := range requiredShippingFields {
		if strings.TrimSpace(f.value(d)) == "" {
			return &FieldError{Field: f.name, Message: "is required"}
		}
	}

	if !emailPattern.MatchString(d.Email) {
		return &FieldError{Field: "email", Message: "invalid email address"}
	}

	digits := nonDigitPattern.ReplaceAllString(d.Phone, "")
	if len(digits) < 10 || len(digits) > 15 {
		return &FieldError{Field: "phone", Message: "invalid phone number"}
	}

	return nil
}
