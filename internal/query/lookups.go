package query

import (
	"strings"

	"github.com/zylem/fieldsync/pkg/types"
)

// Routes returns the journey plan route master.
func (q *Queries) Routes() []types.Row {
	return q.rows("SELECT * FROM PJPMaster")
}

// ShopsByRoute returns every outlet on a route.
func (q *Queries) ShopsByRoute(routeID string) []types.Row {
	return q.rows("SELECT * FROM Pcustomer WHERE RouteID = ?", routeID)
}

// OutletDetails returns one outlet's master row, or nil when unknown.
func (q *Queries) OutletDetails(customerID string) types.Row {
	rows := q.rows("SELECT * FROM Pcustomer WHERE CustomerId = ?", customerID)
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// OutletForUser returns an outlet scoped to one user's data set.
func (q *Queries) OutletForUser(customerID, userID string) []types.Row {
	return q.rows(
		"SELECT * FROM Pcustomer WHERE CustomerId = ? AND userid = ?",
		customerID, userID)
}

// OutletParties returns the distinct outlet name/id pairs for pickers.
func (q *Queries) OutletParties() []types.Row {
	return q.rows("SELECT DISTINCT Party, CustomerId FROM Pcustomer")
}

// ShopLocations returns every outlet that has a recorded coordinate.
func (q *Queries) ShopLocations() []types.Row {
	return q.rows(
		`SELECT CustomerId, Latitude, Longitude
		FROM Pcustomer
		WHERE Latitude IS NOT NULL AND Longitude IS NOT NULL`)
}

// Brands returns the distinct brand list for a user.
func (q *Queries) Brands(userID string) []types.Row {
	return q.rows(
		"SELECT DISTINCT BRAND, BRANDID FROM PItem WHERE userid = ? ORDER BY BRAND",
		userID)
}

// SKUs returns the distinct item list for a user.
func (q *Queries) SKUs(userID string) []types.Row {
	return q.rows(
		"SELECT DISTINCT Item, ItemId FROM PItem WHERE userid = ? ORDER BY Item",
		userID)
}

// Sizes returns the distinct item size list for a user.
func (q *Queries) Sizes(userID string) []types.Row {
	return q.rows(
		"SELECT DISTINCT ITEMSIZE, ITEMSIZEID, Item FROM PItem WHERE userid = ? ORDER BY Item",
		userID)
}

// ItemIDsForBrands resolves brand ids to their item ids.
func (q *Queries) ItemIDsForBrands(brandIDs []string) []string {
	if len(brandIDs) == 0 {
		return nil
	}
	params := make([]any, len(brandIDs))
	marks := make([]string, len(brandIDs))
	for i, id := range brandIDs {
		params[i] = id
		marks[i] = "?"
	}
	rows := q.rows(
		"SELECT DISTINCT ItemId FROM PItem WHERE BRANDID IN ("+strings.Join(marks, ",")+")",
		params...)
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, types.AsString(r["ItemId"]))
	}
	return ids
}

// Distributors returns the distinct distributor list for a user.
func (q *Queries) Distributors(userID string) []types.Row {
	return q.rows(
		"SELECT DISTINCT DistributorID, Distributor FROM PDistributor WHERE userid = ? ORDER BY Distributor",
		userID)
}

// AllDistributors returns every distributor regardless of user.
func (q *Queries) AllDistributors() []types.Row {
	return q.rows(
		"SELECT DISTINCT DistributorID, Distributor FROM PDistributor ORDER BY Distributor ASC")
}

// DistributorDetails returns a distributor's display name and area.
func (q *Queries) DistributorDetails(distributorID, userID string) []types.Row {
	return q.rows(
		"SELECT Distributor AS Party, AREA AS AREA FROM PDistributor WHERE DistributorID = ? AND userid = ?",
		distributorID, userID)
}

// DistributorUsers returns the multi-entity user assignments.
func (q *Queries) DistributorUsers() []types.Row {
	return q.rows("SELECT * FROM MultiEntityUser")
}

// FirstDistributorUser returns one user's first entity assignment.
func (q *Queries) FirstDistributorUser(userID string) types.Row {
	rows := q.rows("SELECT * FROM MultiEntityUser WHERE UserId = ? LIMIT 1", userID)
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// UOMList returns the unit-of-measure master.
func (q *Queries) UOMList() []types.Row {
	return q.rows("SELECT id, UOMDescription FROM uommaster")
}

// ParentAreas returns the area master ordered by name.
func (q *Queries) ParentAreas() []types.Row {
	return q.rows("SELECT AreaId, Area FROM OnlineParentArea ORDER BY Area ASC")
}
