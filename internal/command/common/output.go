package common

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
