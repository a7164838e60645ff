package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-storage/internal/domain"
)

func TestKindOf_ClasificaErroresEnvueltos(t *testing.T) {
	assert.Equal(t, domain.KindNone, domain.KindOf(nil))
	assert.Equal(t, domain.KindNotFound, domain.KindOf(domain.ErrProductNotFound))
	assert.Equal(t, domain.KindNotFound, domain.KindOf(domain.ErrCategoryNotFound))
	assert.Equal(t, domain.KindDuplicateCode, domain.KindOf(fmt.Errorf("alta: %w", domain.ErrDuplicateCode)))
	assert.Equal(t, domain.KindDuplicateEmail, domain.KindOf(domain.ErrEmailAlreadyExists))
	assert.Equal(t, domain.KindInvalidQuantity, domain.KindOf(domain.ErrInvalidQuantity))
	assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(domain.InsufficientStock(3)))
	assert.Equal(t, domain.KindReferentialConflict, domain.KindOf(domain.ErrCategoryInUse))
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(domain.ErrInvalidMovementType))
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(domain.ErrUnauthorized))
	assert.Equal(t, domain.KindForbidden, domain.KindOf(domain.ErrForbidden))
	assert.Equal(t, domain.KindInternal, domain.KindOf(errors.New("redis caído")))
}

func TestInsufficientStock_IncluyeStockDisponible(t *testing.T) {
	err := domain.InsufficientStock(8)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Stock disponible: 8")
}
