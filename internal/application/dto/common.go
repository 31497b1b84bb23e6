package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta con solo un mensaje (ej. DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}

// NumberInput número opcional que acepta tanto números JSON (5, 12.5) como strings numéricos
// ("5", "12.50"), que es lo que envían los formularios del frontend.
// null y "" equivalen a ausente (Set=false).
type NumberInput struct {
	Value decimal.Decimal
	Set   bool
}

// NewNumberInput construye un NumberInput presente.
func NewNumberInput(v decimal.Decimal) NumberInput {
	return NumberInput{Value: v, Set: true}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *NumberInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = NumberInput{}
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = NumberInput{}
			return nil
		}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("número inválido %q", raw)
	}
	*n = NumberInput{Value: d, Set: true}
	return nil
}

// MarshalJSON implementa json.Marshaler (null si no está presente).
func (n NumberInput) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return []byte(n.Value.String()), nil
}
