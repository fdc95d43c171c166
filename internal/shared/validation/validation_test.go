package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("alice@x.com"))
	assert.True(t, IsEmail("first.last+tag@mail.example.org"))
	assert.False(t, IsEmail("alice@x"))
	assert.False(t, IsEmail("alice.x.com"))
	assert.False(t, IsEmail("alice@x.c"))
	assert.False(t, IsEmail(""))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+11234567890"))
	assert.True(t, IsPhone("123456789"))
	assert.True(t, IsPhone("123456789012345"))
	assert.False(t, IsPhone("12345678"))
	assert.False(t, IsPhone("+44-20-1234-5678"))
	assert.False(t, IsPhone("phone"))
}

func TestNew_RegistersRules(t *testing.T) {
	type form struct {
		Email string `json:"email" validate:"office_email"`
		Phone string `json:"phone" validate:"office_phone"`
	}
	v := New()

	assert.NoError(t, v.Struct(form{Email: "a@b.io", Phone: "+11234567890"}))

	err := v.Struct(form{Email: "bad", Phone: "+11234567890"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}
