// Package bind decodes an HTTP request body into a request schema and
// validates it, translating failures into the Validation error kind.
package bind

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"github.com/shashiranjanraj/sweetshop/pkg/validate"
)

// 1 MB is plenty for every request body this API accepts.
const maxBodyBytes = 1 << 20

// JSON decodes r.Body as JSON into dest and runs struct-tag validation.
// Any failure comes back as an apperr Validation error so the boundary
// responds 400 with a single {"error": message} body.
func JSON(r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Wrap(apperr.Validation, "Request body too large", err)
		}
		return apperr.Wrap(apperr.Validation, "Invalid JSON body", err)
	}

	if msg := validate.First(dest); msg != "" {
		return apperr.New(apperr.Validation, msg)
	}

	return nil
}
