package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type credentials struct {
	Login    string `validate:"required,min=6,max=25"`
	Password string `validate:"required,min=5,max=20"`
}

type reviewBody struct {
	Text  string `validate:"required,max=2000"`
	Score *int   `validate:"omitempty,gte=0,lte=10"`
}

func TestStruct_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		in      credentials
		wantErr string
	}{
		{"valid", credentials{Login: "alice1", Password: "pw12345"}, ""},
		{"login too short", credentials{Login: "abc", Password: "pw12345"}, "login must be at least 6 characters"},
		{"password too short", credentials{Login: "alice1", Password: "pw"}, "password must be at least 5 characters"},
		{"missing both", credentials{}, "login is required; password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestStruct_ReviewBody(t *testing.T) {
	bad := -10
	ok := 10

	assert.NoError(t, Struct(reviewBody{Text: "great", Score: &ok}))
	assert.NoError(t, Struct(reviewBody{Text: "no score"}))
	assert.EqualError(t, Struct(reviewBody{Text: "bad", Score: &bad}), "score must be at least 0")
	assert.EqualError(t, Struct(reviewBody{}), "text is required")
}
