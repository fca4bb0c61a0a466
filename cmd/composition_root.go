package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/userdir"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  ports.UserDirectory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  userdir.NewGormUserDirectory(gormDB),
	}
}

func (c *CompositionRoot) CreateImportInvoiceCommandHandler() commands.ImportInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateStartPickingCommandHandler() commands.StartPickingCommandHandler {
	var f commands.PickingUoWFactory = FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartPickingCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateCompletePickingCommandHandler() commands.CompletePickingCommandHandler {
	var f commands.PickingUoWFactory = FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePickingCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateStartPackingCommandHandler() commands.StartPackingCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartPackingCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateCompletePackingCommandHandler() commands.CompletePackingCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePackingCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateReturnToBillingCommandHandler() commands.ReturnToBillingCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnToBillingCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateResolveInvoiceCommandHandler() commands.ResolveInvoiceCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveInvoiceCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateGetInvoicesQueryHandler() queries.GetInvoicesQueryHandler {
	return queries.NewGetInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenSessionsQueryHandler() queries.GetOpenSessionsQueryHandler {
	return queries.NewGetOpenSessionsQueryHandler(c.gormDB)
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncPickingUoWFactory func() commands.PickingUoW

func (f FuncPickingUoWFactory) Create() commands.PickingUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
