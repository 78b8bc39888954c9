package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/retail-api/internal/application/dto"
)

// decodeBody deserializa el body JSON en dst. Devuelve el detalle por campo
// cuando el error es de tipo (p. ej. quantity como string), para responder
// 422 con el campo señalado; nil detail para JSON malformado.
func decodeBody(body []byte, dst any) (details []dto.FieldError, err error) {
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(body)"
			}
			return []dto.FieldError{{
				Field: field,
				Error: fmt.Sprintf("se esperaba %s, llegó %s", typeErr.Type, typeErr.Value),
			}}, err
		}
		return nil, err
	}
	return nil, nil
}
