package services

import (
	"context"
	"fmt"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
)

// resolveQuery caps every lookup at one result. The flows only ever need
// a single usable entity, so there is no point pulling the whole table.
const resolveQuery = "select * from %s where %s maxresults 1"

const resolveQueryAll = "select * from %s maxresults 1"

// resolveEntity finds an existing entity matching the where predicate or,
// on a miss, creates the one defaults returns. The query is capped at one
// result and at most one create is issued per call; the first match wins
// and is returned exactly as the remote service sent it. An empty
// predicate matches any entity of the type.
func resolveEntity[T domain.Entity](ctx context.Context, ds portssvc.DataService, predicate string, defaults func() T) (T, error) {
	var zero T
	entityType := zero.EntityType()

	statement := fmt.Sprintf(resolveQueryAll, entityType)
	if predicate != "" {
		statement = fmt.Sprintf(resolveQuery, entityType, predicate)
	}

	var matches []T
	if err := ds.Query(ctx, entityType, statement, &matches); err != nil {
		return zero, fmt.Errorf("querying %s: %w", entityType, err)
	}
	if len(matches) > 0 {
		return matches[0], nil
	}

	var created T
	if err := ds.Create(ctx, defaults(), &created); err != nil {
		return zero, fmt.Errorf("creating default %s: %w", entityType, err)
	}
	return created, nil
}

// accountByType matches on the account type alone.
func accountByType(accountType domain.AccountType) string {
	return fmt.Sprintf("AccountType='%s'", accountType)
}

// accountByTypeAndSubType narrows to an exact type/sub-type pair, for the
// accounts an inventory item must be wired to.
func accountByTypeAndSubType(accountType domain.AccountType, subType domain.AccountSubType) string {
	return fmt.Sprintf("AccountType='%s' and AccountSubType='%s'", accountType, subType)
}
