package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse respuesta informativa simple (seed, operaciones sin cuerpo).
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
