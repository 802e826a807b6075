package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/pkg/token"
)

// Locals key para el actor autenticado en Fiber.
const localActor = "actor"

// TipoActor clasifica al llamador autenticado. Se decide UNA sola vez al
// decodificar el token; los guards posteriores solo consultan el tipo, nunca
// vuelven a comparar nombres de rol.
type TipoActor int

const (
	// ActorTenant usuario operativo acotado a un cliente.
	ActorTenant TipoActor = iota
	// ActorSuperAdmin administrador global con bypass total de permisos.
	ActorSuperAdmin
)

// Actor identidad y autorización del llamador, resueltas del token.
type Actor struct {
	Tipo          TipoActor
	UserID        string
	NombreUsuario string
	ClienteID     *string
	Roles         []string
	Permisos      []string
}

// EsSuperAdmin indica si el actor tiene bypass total.
func (a *Actor) EsSuperAdmin() bool { return a.Tipo == ActorSuperAdmin }

// TienePermiso busca el código exacto en los permisos del token.
func (a *Actor) TienePermiso(codigo string) bool {
	for _, p := range a.Permisos {
		if p == codigo {
			return true
		}
	}
	return false
}

// AuthMiddleware valida el Bearer Token JWT y deja el Actor en c.Locals.
// El tipo de actor queda decidido aquí: tener el rol reservado "Super Admin"
// entre los roles del token produce ActorSuperAdmin.
func AuthMiddleware(codec *token.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "token vacío"})
		}
		claims, err := codec.Decodificar(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "token inválido o expirado"})
		}

		actor := &Actor{
			Tipo:          ActorTenant,
			UserID:        claims.UserID,
			NombreUsuario: claims.Subject,
			ClienteID:     claims.ClienteID,
			Roles:         claims.Roles,
			Permisos:      claims.Permisos,
		}
		for _, rol := range claims.Roles {
			if rol == entity.SuperAdminRol {
				actor.Tipo = ActorSuperAdmin
				break
			}
		}
		c.Locals(localActor, actor)
		return c.Next()
	}
}

// RequirePermission devuelve un middleware que autoriza la petición si el
// actor tiene el permiso indicado dentro de un cliente. Debe usarse DESPUÉS
// de AuthMiddleware. El orden de decisión es fijo:
//
//  1. Super admin: pasa siempre, incluso sin cliente asignado.
//  2. Sin el permiso: 403 PERMISO_DENEGADO.
//  3. Con permiso pero sin cliente en el token: 403 SIN_CLIENTE.
func RequirePermission(codigo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "actor no autenticado"})
		}
		if actor.EsSuperAdmin() {
			return c.Next()
		}
		if !actor.TienePermiso(codigo) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PERMISO_DENEGADO",
				Message: "se requiere el permiso '" + codigo + "' para esta acción",
			})
		}
		if actor.ClienteID == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SIN_CLIENTE",
				Message: "el usuario operativo no está asignado a un cliente",
			})
		}
		return c.Next()
	}
}

// RequireSuperAdmin devuelve un middleware para las rutas de administración
// global (CRUD de clientes): solo pasa el super admin.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "actor no autenticado"})
		}
		if !actor.EsSuperAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SOLO_SUPER_ADMIN",
				Message: "se requiere el rol de Super Administrador para esta operación global",
			})
		}
		return c.Next()
	}
}

// GetActor devuelve el actor autenticado (después del middleware de auth).
func GetActor(c *fiber.Ctx) *Actor {
	v := c.Locals(localActor)
	if v == nil {
		return nil
	}
	a, _ := v.(*Actor)
	return a
}

// ClienteIDEfectivo devuelve el ámbito del actor: nil para el super admin
// (alcance global), el cliente del token para todos los demás.
func ClienteIDEfectivo(c *fiber.Ctx) *string {
	actor := GetActor(c)
	if actor == nil || actor.EsSuperAdmin() {
		return nil
	}
	return actor.ClienteID
}

// ClienteConcreto exige un cliente_id concreto en el token. Las rutas de
// datos operativos (compras, inventario) no admiten alcance global: un super
// admin sin cliente asignado también recibe 403 aquí.
func ClienteConcreto(c *fiber.Ctx) (string, bool) {
	actor := GetActor(c)
	if actor == nil || actor.ClienteID == nil {
		return "", false
	}
	return *actor.ClienteID, true
}
