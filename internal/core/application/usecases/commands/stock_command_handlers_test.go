package commands_test

import (
	"errors"
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := testProduct(t, "Mouse", 4)
	cmd, err := commands.NewUpdateStockCommand(stored.ID(), 40)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("FindByIDForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Save", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID() == stored.ID() && p.Stock() == 40
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	updated, err := commands.NewUpdateStockCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 40, updated.Stock())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateStockCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateStockCommand("missing", 1)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(repo).Once()
	repo.On("FindByIDForUpdate", mock.Anything, cmd.ProductID()).
		Return(nil, errs.NewObjectNotFoundError("product", "missing")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateStockCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewUpdateStockCommand_Invalid(t *testing.T) {
	_, err := commands.NewUpdateStockCommand("", -1)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestReduceStockCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "reduces stock", stock: 5, quantity: 5, wantStock: 0},
		{name: "insufficient stock", stock: 0, quantity: 1, wantStock: 0, wantErr: product.ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			stored := testProduct(t, "Mouse", tt.stock)
			cmd, err := commands.NewReduceStockCommand(stored.ID(), tt.quantity)
			require.NoError(t, err)

			repo := new(MockProductRepository)
			uow := new(MockProductUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("ProductRepository").Return(repo).Once()
			repo.On("FindByIDForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tt.wantErr == nil {
				repo.On("Save", mock.Anything, stored).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}
			factory := new(MockProductUoWFactory)
			factory.On("Create").Return(uow).Once()

			p, err := commands.NewReduceStockCommandHandler(factory).Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				assert.Equal(t, tt.wantStock, stored.Stock())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStock, p.Stock())
			}
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestIncreaseStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := testProduct(t, "Mouse", 2)
	cmd, err := commands.NewIncreaseStockCommand(stored.ID(), 8)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("FindByIDForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Save", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewIncreaseStockCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}

func TestNewStockCommands_NegativeQuantity(t *testing.T) {
	_, err := commands.NewReduceStockCommand("p-1", -1)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = commands.NewIncreaseStockCommand("p-1", -1)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteProductCommand("p-1")
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("DeleteByID", mock.Anything, cmd.ProductID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewDeleteProductCommandHandler(factory).Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
