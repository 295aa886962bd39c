package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	t.Run("default level", func(t *testing.T) {
		err := SetupLogging("")
		require.NoError(t, err)
		require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	})

	t.Run("debug", func(t *testing.T) {
		err := SetupLogging("debug")
		require.NoError(t, err)
		require.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	})

	t.Run("bad level", func(t *testing.T) {
		err := SetupLogging("loud")
		require.Error(t, err)
	})
}

func TestWriteErrorStatus(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorStatus(w, http.StatusConflict, "proof already provided")

	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"error":"proof already provided"}`, w.Body.String())
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]bool{"accepted": true})

	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"accepted":true}`, w.Body.String())
}
