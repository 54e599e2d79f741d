package cmd

import (
	"log/slog"

	"tracking/internal/adapters/out/postgres/checkpointrepo"
	"tracking/internal/adapters/out/postgres/trackedorderrepo"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/orderlock"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, the notifier and the per-order locker
// into command and query handlers.
type CompositionRoot struct {
	gormDB *gorm.DB

	orderRepo      ports.TrackedOrderRepository
	checkpointRepo ports.CheckpointRepository
	notifier       *commands.BuyerNotifier
	locker         commands.Locker
}

// NewCompositionRoot builds the object graph of the service. The per-order
// locker is enabled by SERIALIZE_PER_ORDER=true; by default concurrent edits
// of the same order interleave freely.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	orderLookup ports.OrderLookup,
	notificationGateway ports.NotificationGateway,
	logger *slog.Logger,
) CompositionRoot {
	var locker commands.Locker
	if configs.SerializePerOrder == "true" {
		locker = orderlock.New[kernel.ID]()
	} else {
		locker = orderlock.NewNoop[kernel.ID]()
	}

	return CompositionRoot{
		gormDB:         gormDB,
		orderRepo:      trackedorderrepo.NewGormTrackedOrderRepository(gormDB),
		checkpointRepo: checkpointrepo.NewGormCheckpointRepository(gormDB),
		notifier:       commands.NewBuyerNotifier(orderLookup, notificationGateway, logger),
		locker:         locker,
	}
}

func (c *CompositionRoot) CreateCreateTrackedOrderCommandHandler() commands.CreateTrackedOrderCommandHandler {
	return commands.NewCreateTrackedOrderCommandHandler(c.orderRepo, c.notifier)
}

func (c *CompositionRoot) CreateUpdateTrackedOrderCommandHandler() commands.UpdateTrackedOrderCommandHandler {
	return commands.NewUpdateTrackedOrderCommandHandler(c.orderRepo, c.notifier, c.locker)
}

func (c *CompositionRoot) CreateUpdateTrackedOrderForOrderCommandHandler() commands.UpdateTrackedOrderForOrderCommandHandler {
	return commands.NewUpdateTrackedOrderForOrderCommandHandler(c.orderRepo, c.notifier, c.locker)
}

func (c *CompositionRoot) CreateDeleteTrackedOrderCommandHandler() commands.DeleteTrackedOrderCommandHandler {
	return commands.NewDeleteTrackedOrderCommandHandler(c.checkpointRepo, c.orderRepo, c.locker)
}

func (c *CompositionRoot) CreateAddCheckpointCommandHandler() commands.AddCheckpointCommandHandler {
	return commands.NewAddCheckpointCommandHandler(
		c.checkpointRepo, c.orderRepo, c.CreateUpdateTrackedOrderCommandHandler(), c.locker)
}

func (c *CompositionRoot) CreateUpdateCheckpointCommandHandler() commands.UpdateCheckpointCommandHandler {
	return commands.NewUpdateCheckpointCommandHandler(
		c.checkpointRepo, c.orderRepo, c.CreateUpdateTrackedOrderCommandHandler(), c.locker)
}

func (c *CompositionRoot) CreateUpdateCheckpointForOrderCommandHandler() commands.UpdateCheckpointForOrderCommandHandler {
	return commands.NewUpdateCheckpointForOrderCommandHandler(
		c.checkpointRepo, c.CreateUpdateCheckpointCommandHandler())
}

func (c *CompositionRoot) CreateDeleteCheckpointCommandHandler() commands.DeleteCheckpointCommandHandler {
	return commands.NewDeleteCheckpointCommandHandler(c.checkpointRepo)
}

func (c *CompositionRoot) CreateRevertToPreviousCheckpointCommandHandler() commands.RevertToPreviousCheckpointCommandHandler {
	return commands.NewRevertToPreviousCheckpointCommandHandler(
		c.checkpointRepo, c.orderRepo, c.CreateUpdateTrackedOrderCommandHandler(), c.locker)
}

func (c *CompositionRoot) CreateRevertToLastCheckpointCommandHandler() commands.RevertToLastCheckpointCommandHandler {
	return commands.NewRevertToLastCheckpointCommandHandler(
		c.checkpointRepo, c.orderRepo, c.CreateUpdateTrackedOrderCommandHandler(), c.locker)
}

func (c *CompositionRoot) CreateGetTrackedOrderQueryHandler() queries.GetTrackedOrderQueryHandler {
	return queries.NewGetTrackedOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackedOrdersQueryHandler() queries.GetTrackedOrdersQueryHandler {
	return queries.NewGetTrackedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCheckpointHistoryQueryHandler() queries.GetCheckpointHistoryQueryHandler {
	return queries.NewGetCheckpointHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLastCheckpointQueryHandler() queries.GetLastCheckpointQueryHandler {
	return queries.NewGetLastCheckpointQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCheckpointCountQueryHandler() queries.GetCheckpointCountQueryHandler {
	return queries.NewGetCheckpointCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}
