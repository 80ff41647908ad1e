package ankiweb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSecretRedaction(t *testing.T) {
	creds := Credentials{Email: NewSecret("user@example.com"), Password: NewSecret("hunter2")}

	assert.Equal(t, "*****", creds.Password.String())
	assert.NotContains(t, fmt.Sprintf("%v %+v %#v %s", creds, creds, creds, creds.Password), "hunter2")

	data, err := json.Marshal(creds)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_email":"*****","user_password":"*****"}`, string(data))

	var buf bytes.Buffer
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(&buf), zap.DebugLevel)
	zap.New(core).Info("login", zap.Any("creds", creds), zap.Stringer("password", creds.Password))
	assert.NotContains(t, buf.String(), "hunter2")
	assert.NotContains(t, buf.String(), "user@example.com")
}

func TestSecretUnmarshal(t *testing.T) {
	var creds Credentials
	err := json.Unmarshal([]byte(`{"user_email":"a@b.c","user_password":"pw"}`), &creds)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", creds.Email.Value())
	assert.Equal(t, "pw", creds.Password.Value())
	assert.False(t, creds.Password.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"user_password":42}`), &creds))
}
