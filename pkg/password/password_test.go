package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgestion/admin-api/pkg/password"
)

func TestHashYVerificar_Roundtrip(t *testing.T) {
	hash, err := password.Hash("12345")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, password.Verificar("12345", hash), "la contraseña original debe verificar")
	assert.False(t, password.Verificar("incorrecta", hash), "otra contraseña no debe verificar")
}

func TestVerificar_HashMalformado_RetornaFalse(t *testing.T) {
	assert.False(t, password.Verificar("12345", ""))
	assert.False(t, password.Verificar("12345", "no-es-un-hash-bcrypt"))
	assert.False(t, password.Verificar("12345", "$2a$corrupto"))
}

// Contraseñas de más de 72 bytes se truncan de forma determinista: dos entradas
// que comparten los primeros 72 bytes verifican contra el mismo hash.
func TestHash_TruncamientoDeterminista(t *testing.T) {
	larga := strings.Repeat("a", 100)
	hash, err := password.Hash(larga)
	require.NoError(t, err)

	assert.True(t, password.Verificar(larga, hash))
	assert.True(t, password.Verificar(strings.Repeat("a", 72)+"zzz", hash),
		"solo los primeros 72 bytes participan del hash")
	assert.False(t, password.Verificar(strings.Repeat("a", 71), hash))
}

func TestTruncar_NoPartecaracteresUTF8(t *testing.T) {
	// 71 bytes ASCII + 'ñ' (2 bytes): el corte a 72 dejaría un byte huérfano.
	entrada := strings.Repeat("a", 71) + "ñ" + strings.Repeat("b", 10)
	recortada := password.Truncar(entrada)

	assert.LessOrEqual(t, len(recortada), 72)
	assert.Equal(t, strings.Repeat("a", 71), recortada, "el carácter parcial se descarta")

	hash, err := password.Hash(entrada)
	require.NoError(t, err)
	assert.True(t, password.Verificar(entrada, hash))
}

func TestTruncar_CortaSinCambiosSiCabe(t *testing.T) {
	assert.Equal(t, "corta", password.Truncar("corta"))
	exacta := strings.Repeat("x", 72)
	assert.Equal(t, exacta, password.Truncar(exacta))
}
