package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	LoginID  string `json:"loginId"  validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"loginId":"kim","password":"secret123"}`},
		{name: "trailing comma", body: `{"loginId":"kim",}`, wantErr: true},
		{name: "empty body", body: "", wantErr: true},
		{name: "unknown field", body: `{"loginId":"kim","admin":true}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var out loginPayload
			err := DecodeJSON(httptest.NewRecorder(), req, &out)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "kim", out.LoginID)
		})
	}
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	body := `{"loginId":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var out loginPayload
	assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, &out))
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if s.ok {
		return nil
	}
	return errors.New("custom validation failed")
}

func TestValidateRequest(t *testing.T) {
	t.Run("struct tags", func(t *testing.T) {
		err := ValidateRequest(loginPayload{LoginID: "kim", Password: "short"})
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "password", verrs[0].Field(), "fields are reported by JSON name")
		assert.Equal(t, "min", verrs[0].Tag())
	})

	t.Run("valid struct", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(loginPayload{LoginID: "kim", Password: "longenough"}))
	})

	t.Run("custom Validate method", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
		assert.EqualError(t, ValidateRequest(selfValidating{}), "custom validation failed")
	})
}
