package commands_test

import (
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	email, err := kernel.NewEmail("luis@arka.co")
	require.NoError(t, err)
	cmd, err := commands.NewRegisterCustomerCommand("Luis", email, "Cali")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("FindByEmail", mock.Anything, email).
			Return(nil, errs.NewObjectNotFoundError("customer", email.String())).Once(),
		repo.On("Save", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	c, err := commands.NewRegisterCustomerCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Luis", c.Name())
	assert.Equal(t, "Cali", c.City())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	existing := testCustomer(t)
	cmd, err := commands.NewRegisterCustomerCommand("Other", existing.Email(), "Cali")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(repo).Once()
	repo.On("FindByEmail", mock.Anything, existing.Email()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewRegisterCustomerCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	require.ErrorIs(t, err, errs.ErrInvariantViolation)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestNewRegisterCustomerCommand_Invalid(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(" ", kernel.Email{}, "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, kernel.ErrEmailIsNotConstructed)
}
