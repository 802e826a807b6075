package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTLPorDefecto aplica cuando el emisor no especifica duración (60 minutos,
// igual que el microservicio original).
const TTLPorDefecto = 60 * time.Minute

// Claims es el payload firmado del token: identidad + tenant + autorización
// resuelta al momento del login. ClienteID es nil solo para el super admin global.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string   `json:"user_id"`
	ClienteID *string  `json:"cliente_id"`
	Roles     []string `json:"roles"`
	Permisos  []string `json:"permisos"`
}

// Codec firma y valida tokens con una clave simétrica HS256 compartida por
// todas las instancias. El reloj es inyectable para poder probar expiración.
type Codec struct {
	secreto []byte
	ahora   func() time.Time
}

// NewCodec construye el codec. Si ahora es nil se usa time.Now.
func NewCodec(secreto string, ahora func() time.Time) (*Codec, error) {
	if secreto == "" {
		return nil, fmt.Errorf("token: secreto vacío")
	}
	if ahora == nil {
		ahora = time.Now
	}
	return &Codec{secreto: []byte(secreto), ahora: ahora}, nil
}

// Emitir firma un token con los claims de identidad/autorización y expiración
// ahora + ttl. Con ttl <= 0 aplica TTLPorDefecto. La firma cubre todos los
// campos: alterar cualquier claim invalida el token.
func (c *Codec) Emitir(nombreUsuario, userID string, clienteID *string, roles, permisos []string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = TTLPorDefecto
	}
	emision := c.ahora().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   nombreUsuario,
			IssuedAt:  jwt.NewNumericDate(emision),
			ExpiresAt: jwt.NewNumericDate(emision.Add(ttl)),
		},
		UserID:    userID,
		ClienteID: clienteID,
		Roles:     roles,
		Permisos:  permisos,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secreto)
}

// Decodificar valida estructura, firma y expiración, y retorna los claims.
// Cualquier fallo (token malformado, firma incorrecta, expirado, algoritmo
// inesperado) produce un único error indistinguible: el llamador trata todo
// como "no autenticado".
func (c *Codec) Decodificar(tokenString string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return c.secreto, nil
	}, jwt.WithTimeFunc(c.ahora))
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}
	if !tok.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("token inválido: claims incompletos")
	}
	return &claims, nil
}
