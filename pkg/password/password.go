package password

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt solo considera los primeros 72 bytes de la entrada; más allá de eso
// GenerateFromPassword retorna error, así que truncamos antes de hashear.
const maxBytes = 72

// Truncar recorta la contraseña a 72 bytes. Si el corte cae en medio de un
// carácter UTF-8 multibyte, se descarta el carácter parcial resultante.
func Truncar(plano string) string {
	if len(plano) <= maxBytes {
		return plano
	}
	recortada := plano[:maxBytes]
	// Retroceder hasta el inicio del último rune completo
	for len(recortada) > 0 && !utf8.ValidString(recortada) {
		recortada = recortada[:len(recortada)-1]
	}
	return recortada
}

// Hash genera el hash bcrypt de una contraseña plana, aplicando el límite de 72 bytes.
func Hash(plano string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(Truncar(plano)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verificar compara una contraseña plana contra un hash almacenado.
// Un hash malformado o una contraseña incorrecta retornan false, nunca panic ni error.
func Verificar(plano, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(Truncar(plano))) == nil
}
