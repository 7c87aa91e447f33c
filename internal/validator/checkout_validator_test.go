package validator_test

import (
	"testing"

	"campusmarket/internal/domain/model"
	"campusmarket/internal/validator"

	"github.com/stretchr/testify/assert"
)

func validForm() model.ShippingDetails {
	return model.ShippingDetails{
		FullName: "Ada Obi",
		Email:    "ada@example.com",
		Phone:    "0801-234-5678",
		Address:  "12 Hostel Road",
		City:     "Ile-Ife",
		State:    "Osun",
	}
}

func TestValidateShipping_Valid(t *testing.T) {
	assert.NoError(t, validator.ValidateShipping(validForm()))
}

// 不備は最初の1件だけ、定義順で返る
func TestValidateShipping_FirstMissingFieldWins(t *testing.T) {
	form := validForm()
	form.FullName = "  "
	form.Email = ""

	err := validator.ValidateShipping(form)
	assert.Error(t, err)

	fe, ok := err.(*validator.FieldError)
	assert.True(t, ok)
	assert.Equal(t, "full_name", fe.Field)
	assert.Equal(t, "is required", fe.Message)
}

func TestValidateShipping_EmailFormat(t *testing.T) {
	form := validForm()
	form.Email = "ada@@example"

	err := validator.ValidateShipping(form)
	assert.Error(t, err)

	fe := err.(*validator.FieldError)
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, "invalid email address", fe.Message)
}

// 電話番号は数字以外を除いて10〜15桁
func TestValidateShipping_PhoneDigits(t *testing.T) {
	form := validForm()

	// 区切り文字入りでも数字が11桁あれば通る
	form.Phone = "+234 (080) 1234-5678"
	assert.NoError(t, validator.ValidateShipping(form))

	// 9桁は短すぎ
	form.Phone = "080123456"
	err := validator.ValidateShipping(form)
	assert.Error(t, err)
	assert.Equal(t, "phone", err.(*validator.FieldError).Field)

	// 16桁は長すぎ
	form.Phone = "1234567890123456"
	assert.Error(t, validator.ValidateShipping(form))
}

// zip_codeとnotesは任意
func TestValidateShipping_OptionalFields(t *testing.T) {
	form := validForm()
	form.ZipCode = ""
	form.Notes = ""
	assert.NoError(t, validator.ValidateShipping(form))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, validator.IsEmail("ada@example.com"))
	assert.False(t, validator.IsEmail("ada example@x.com"))
	assert.False(t, validator.IsEmail("ada@example"))
}
