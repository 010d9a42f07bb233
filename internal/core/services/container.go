package services

import (
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
)

// NewServiceContainer wires every concept service onto a shared token
// guard so they all follow the same refresh-and-retry protocol.
func NewServiceContainer(
	sessions portsrepo.SessionRepository,
	refresher portssvc.TokenRefresher,
	factory portssvc.DataServiceFactory,
	clock portssvc.Clock,
) *portssvc.ServiceContainer {
	guard := newTokenGuard(sessions, refresher, factory, clock)
	return &portssvc.ServiceContainer{
		Accounting: newAccountingService(guard, clock),
		Bill:       newBillService(guard, clock),
		Inventory:  newInventoryService(guard, clock),
		Invoice:    newInvoiceService(guard),
		Jobs:       newJobsService(guard, clock),
		Reports:    newReportsService(guard),
		Sessions:   sessions,
	}
}
