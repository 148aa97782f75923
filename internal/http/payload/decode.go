package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

var ErrEmptyBody error = errors.New("request body is empty")

func DecodePayload(r *http.Request, object any) (err error) {
	body := http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	defer func() {
		errClose := body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decoding json payload: %w", err)
	}

	if decoder.More() {
		return errors.New("decoding json payload: unexpected data after the JSON object")
	}

	return nil
}
