package syserr

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	err := NewWithMessage(5, "opening device")
	resp := ToJSON(err)

	require.NotNil(t, resp)
	require.Equal(t, uint32(5), resp.Code)
	require.Equal(t, err.Message(), resp.Message)
	require.Equal(t, err.Name(), resp.Name)
	require.Equal(t, "opening device", resp.CustomMessage)
}

func TestToJSON_Errno(t *testing.T) {
	resp := ToJSON(fmt.Errorf("write: %w", syscall.Errno(2)))

	require.NotNil(t, resp)
	require.Equal(t, uint32(2), resp.Code)
	require.Equal(t, Lookup(2), resp.Message)
	require.Empty(t, resp.CustomMessage)
}

func TestToJSON_NilError(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestToJSON_NoCode(t *testing.T) {
	require.Nil(t, ToJSON(stderrors.New("something went wrong")))
}

func TestPlatformError_MarshalJSON(t *testing.T) {
	err := NewWithMessage(0xDEADBEEF, "probe")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, float64(0xDEADBEEF), decoded["code"])
	require.Equal(t, "Unknown error (0xdeadbeef)", decoded["message"])
	require.Equal(t, "probe", decoded["custom_message"])
	require.NotContains(t, decoded, "name")
}

func TestPlatformError_MarshalJSON_OmitsEmptyCustomMessage(t *testing.T) {
	data, err := json.Marshal(New(0xDEADBEEF))
	require.NoError(t, err)
	require.JSONEq(t, `{"code":3735928559,"message":"Unknown error (0xdeadbeef)"}`, string(data))
}

func TestPlatformError_MarshalJSON_InStruct(t *testing.T) {
	type response struct {
		OK    bool           `json:"ok"`
		Error *PlatformError `json:"error,omitempty"`
	}

	data, err := json.Marshal(response{Error: NewWithMessage(0xDEADBEEF, "probe")})
	require.NoError(t, err)
	require.JSONEq(t,
		`{"ok":false,"error":{"code":3735928559,"message":"Unknown error (0xdeadbeef)","custom_message":"probe"}}`,
		string(data))
}
