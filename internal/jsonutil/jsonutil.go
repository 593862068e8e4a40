package jsonutil

import (
	"encoding/json"
	"maps"
	"net/http"
)

// WriteJSON encodes data and writes it with the given status and extra
// headers. Nothing is written when encoding fails.
func WriteJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	maps.Copy(w.Header(), headers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)

	return err
}
