package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
)

func TestNormalizarSubdominio(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Karumbé Pizzas", "karumbepizzas"},
		{"  El Martillo  ", "elmartillo"},
		{"DulceSabor", "dulcesabor"},
		{"ñandú", "nandu"},
		{"ya-normalizado", "ya-normalizado"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, usecase.NormalizarSubdominio(c.entrada), "entrada %q", c.entrada)
	}
}

func TestCrearCliente_SubdominioDuplicado(t *testing.T) {
	repo := &clienteRepoMem{clientes: map[string]*entity.Cliente{}}
	uc := usecase.NewClienteUseCase(repo)

	out, err := uc.Create(dto.ClienteCreateRequest{Nombre: "Karumbé", Subdominio: "Karumbé"})
	require.NoError(t, err)
	assert.Equal(t, "karumbe", out.Subdominio)

	// Distinta grafía, misma forma canónica: debe chocar.
	_, err = uc.Create(dto.ClienteCreateRequest{Nombre: "Otro", Subdominio: "KARUMBE"})
	assert.ErrorIs(t, err, domain.ErrSubdominioExiste)
}

func TestSuspenderCliente_EliminacionLogica(t *testing.T) {
	repo := &clienteRepoMem{clientes: map[string]*entity.Cliente{}}
	uc := usecase.NewClienteUseCase(repo)

	out, err := uc.Create(dto.ClienteCreateRequest{Nombre: "Karumbé", Subdominio: "karumbe"})
	require.NoError(t, err)

	require.NoError(t, uc.Suspender(out.ID))

	guardado, queda := repo.clientes[out.ID]
	require.True(t, queda, "la fila no se borra")
	assert.Equal(t, entity.ClienteSuspendido, guardado.Estado)

	assert.ErrorIs(t, uc.Suspender("no-existe"), domain.ErrNoEncontrado)
}
