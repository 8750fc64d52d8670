package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/samber/lo"
)

func pathID(c echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func pathTrackingNumber(c echo.Context) (string, error) {
	var tn string
	err := runtime.BindStyledParameterWithOptions("simple", "trackingNumber", c.Param("trackingNumber"), &tn,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("tracking_number", err)
	}
	return tn, nil
}

// queryParam binds an optional query parameter into dest, which must be a pointer
// to a pointer. An absent parameter leaves *dest nil.
func queryParam(c echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

// bindBody decodes the JSON body into req and runs struct validation on it.
func (s *Server) bindBody(c echo.Context, req any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil {
		return newInvalidRequestError(fmt.Errorf("malformed JSON body: %w", err))
	}
	if err := s.validate.Struct(req); err != nil {
		return newInvalidRequestError(err)
	}
	return nil
}

// patchBody is a partial update: only the keys present are changed.
type patchBody map[string]json.RawMessage

func (s *Server) bindPatch(c echo.Context, allowed []string) (patchBody, error) {
	var body patchBody
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return nil, newInvalidRequestError(fmt.Errorf("malformed JSON body: %w", err))
	}

	// Unknown keys are ignored as long as one updatable key is present.
	known := patchBody(lo.PickByKeys(body, allowed))
	if len(known) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("body",
			fmt.Errorf("expected at least one of: %s", strings.Join(allowed, ", ")))
	}
	return known, nil
}

// field decodes key into a freshly allocated value. It returns nil when the key is
// absent, and an error for an explicit null.
func field[T any](body patchBody, key string) (*T, error) {
	raw, ok := body[key]
	if !ok {
		return nil, nil
	}
	if string(raw) == "null" {
		return nil, errs.NewValueIsRequiredError(key)
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}
