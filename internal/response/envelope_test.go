package response

import (
	"encoding/json"
	"errors"
	"testing"

	"brickset/client/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_CheckKeySuccess(t *testing.T) {
	env, err := Decode[CheckKeyResponse]([]byte(` {"status":"success"} `))
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, env.Status())
	_, ok := env.Get()
	assert.True(t, ok)
	_, isErr := env.Err()
	assert.False(t, isErr)
}

func TestDecode_CheckKeyError(t *testing.T) {
	env, err := Decode[CheckKeyResponse]([]byte(` {"status":"error", "message":"Invalid API key"} `))
	require.NoError(t, err)

	remote, ok := env.Err()
	require.True(t, ok)
	assert.Equal(t, "Invalid API key", remote.Message)

	_, ok = env.Get()
	assert.False(t, ok)

	_, err = env.Result()
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "Invalid API key", remoteErr.Error())
}

func TestDecode_Login(t *testing.T) {
	env, err := Decode[LoginResponse]([]byte(`{"status":"success","hash":"abc123"}`))
	require.NoError(t, err)

	login, err := env.Result()
	require.NoError(t, err)
	assert.Equal(t, "abc123", login.Hash)
}

func TestDecode_Failures(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		kind  codec.DecodeErrorKind
		field string
	}{
		{name: "not json", body: `<html>`, kind: codec.KindSyntax},
		{name: "missing status", body: `{"hash":"x"}`, kind: codec.KindSchemaMismatch, field: "status"},
		{name: "unknown status", body: `{"status":"pending"}`, kind: codec.KindSchemaMismatch, field: "status"},
		{name: "error without message", body: `{"status":"error"}`, kind: codec.KindSchemaMismatch, field: "message"},
		{name: "status wrong kind", body: `{"status":1}`, kind: codec.KindSchemaMismatch, field: "status"},
		{name: "payload wrong kind", body: `{"status":"success","matches":"many","sets":[]}`, kind: codec.KindSchemaMismatch, field: "matches"},
		{name: "nested wrong kind", body: `{"status":"success","matches":1,"sets":[{"setID":1,"theme":5}]}`, kind: codec.KindSchemaMismatch, field: "sets.theme"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[SetsResponse]([]byte(tc.body))
			require.Error(t, err)

			var decodeErr *codec.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tc.kind, decodeErr.Kind)
			assert.Equal(t, tc.field, decodeErr.Field)
		})
	}
}

func TestEnvelope_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Success(LoginResponse{Hash: "h"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","hash":"h"}`, string(out))

	out, err = json.Marshal(Failure[LoginResponse]("nope"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"nope"}`, string(out))

	env, err := Decode[LoginResponse](out)
	require.NoError(t, err)
	_, err = env.Result()
	assert.EqualError(t, err, "nope")
}

func TestEnvelope_ZeroValue(t *testing.T) {
	var env Envelope[CheckKeyResponse]
	_, err := env.Result()
	assert.Error(t, err)

	_, err = json.Marshal(env)
	assert.Error(t, err)
}
