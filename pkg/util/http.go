package util

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func WriteSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	d, err := json.Marshal(v)
	if err != nil {
		WriteErrorf(w, "unable to marshal response: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(d)
}

func WriteError(w http.ResponseWriter, msg string) {
	WriteErrorStatus(w, http.StatusInternalServerError, msg)
}

func WriteErrorf(w http.ResponseWriter, msg string, args ...interface{}) {
	WriteErrorStatus(w, http.StatusInternalServerError, fmt.Sprintf(msg, args...))
}

func WriteErrorStatus(w http.ResponseWriter, status int, msg string) {
	d, _ := json.Marshal(map[string]string{"error": msg})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(d)
}
