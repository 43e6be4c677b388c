package testctl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostIntent(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/intent", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"intents":[{"label":"flight","score":0.9}]}` + "\n"))
	}))
	defer ts.Close()

	res, err := postIntent(context.Background(), ts.URL, "fly me to boston")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "fly me to boston", got["text"])
	assert.JSONEq(t, `{"intents":[{"label":"flight","score":0.9}]}`, string(res.Body))
}

func TestPostIntent_Unreachable(t *testing.T) {
	port, err := chooseFreePort()
	require.NoError(t, err)
	_, err = postIntent(context.Background(), "http://127.0.0.1:"+strconv.Itoa(port), "x")
	require.Error(t, err)
}
