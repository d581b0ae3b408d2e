package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FlexInt acepta en JSON tanto enteros como cadenas numéricas ("3" o 3).
// El panel de administración envía valores de formulario como texto; un valor
// presente pero no parseable hace fallar el unmarshal (y la request, con 400)
// antes de persistir nada.
type FlexInt int

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("entero inválido: %q", s)
	}
	*f = FlexInt(n)
	return nil
}

// Int devuelve el valor como *int (nil si el puntero es nil).
func (f *FlexInt) Int() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
