package dto

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación de una operación de escritura.
// ID solo se informa en creaciones.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// normalizeText recorta espacios y normaliza a NFC para que la unicidad no dependa
// de la forma de composición Unicode con la que llegó el texto.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
