package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrGenerateRestockReportCommandIsNotConstructed = errors.New(
	"GenerateRestockReportCommand must be created via NewGenerateRestockReportCommand constructor",
)

// GenerateRestockReportCommand asks for one low-stock alert per product below
// the restock threshold. It is issued by the scheduler and by the HTTP API.
type GenerateRestockReportCommand struct {
	guard guard.ConstructorGuard
}

func NewGenerateRestockReportCommand() GenerateRestockReportCommand {
	return GenerateRestockReportCommand{guard: guard.NewConstructorGuard()}
}

func (c GenerateRestockReportCommand) Validate() error {
	return c.guard.Validate(ErrGenerateRestockReportCommandIsNotConstructed)
}
