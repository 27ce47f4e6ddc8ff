package commands

import (
	"errors"
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrRegisterProductCommandIsNotConstructed = errors.New(
	"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
)

// RegisterProductCommand represents a request to add a product to the catalog.
// The product identifier is assigned by the handler.
//
// Example:
//
//	price, _ := kernel.NewMoney(decimal.NewFromInt(120000), "COP")
//	cmd, err := NewRegisterProductCommand("Keyboard", "Mechanical", price, 25, product.Electronics)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewRegisterProductCommandHandler(uowFactory)
//	p, err := handler.Handle(ctx, cmd)
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       kernel.Money
	stock       int
	category    product.Category

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand validates the input shape. Product rules are
// enforced again by product.NewProduct.
func NewRegisterProductCommand(
	name string,
	description string,
	price kernel.Money,
	stock int,
	category product.Category,
) (RegisterProductCommand, error) {
	cmd := RegisterProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
		cmd.setCategory(category),
	); err != nil {
		return RegisterProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

func (c RegisterProductCommand) Name() string               { return c.name }
func (c RegisterProductCommand) Description() string        { return c.description }
func (c RegisterProductCommand) Price() kernel.Money        { return c.price }
func (c RegisterProductCommand) Stock() int                 { return c.stock }
func (c RegisterProductCommand) Category() product.Category { return c.category }

func (c *RegisterProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *RegisterProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	c.stock = stock
	return nil
}

func (c *RegisterProductCommand) setCategory(category product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
