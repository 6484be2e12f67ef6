package query

import (
	"github.com/google/uuid"

	"github.com/zylem/fieldsync/pkg/types"
)

// Collection types used for shop visit punches in OrderMaster.
const (
	CollectionTypeCheckIn  = "8"
	CollectionTypeCheckOut = "9"
)

// OrderCheckIn is a locally-created OrderMaster row for a shop visit punch.
// ID may be left empty; a fresh one is generated on insert.
type OrderCheckIn struct {
	ID                   string
	CurrentDateTime      string
	EntityType           string
	EntityID             string
	Latitude             string
	Longitude            string
	TotalAmount          string
	FromDate             string
	ToDate               string
	CollectionType       string
	UserID               string
	SelectedFlag         string
	SyncFlag             string
	Remark               string
	CheckDate            string
	DefaultDistributorID string
	ExpectedDeliveryDate string
	ActivityStatus       string
	ActivityStart        string
	ActivityEnd          string
	AppUserID            string
}

// InsertOrderCheckIn appends a visit punch to OrderMaster and returns the row
// id. Local rows carry sync_flag 0 until the upstream sync confirms them.
func (q *Queries) InsertOrderCheckIn(rec OrderCheckIn) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.Must(uuid.NewV7()).String()
	}
	_, err := q.store.Run(
		`INSERT INTO OrderMaster(id,Current_date_time,entity_type,entity_id,latitude,
			longitude,total_amount,from_date,to_date,collection_type,user_id,selected_flag,
			sync_flag,remark,check_date,DefaultDistributorId,ExpectedDeliveryDate,
			ActivityStatus,ActivityStart,ActivityEnd,userid)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.ID, rec.CurrentDateTime, rec.EntityType, rec.EntityID, rec.Latitude,
		rec.Longitude, rec.TotalAmount, rec.FromDate, rec.ToDate, rec.CollectionType,
		rec.UserID, rec.SelectedFlag, rec.SyncFlag, rec.Remark, rec.CheckDate,
		rec.DefaultDistributorID, rec.ExpectedDeliveryDate, rec.ActivityStatus,
		rec.ActivityStart, rec.ActivityEnd, rec.AppUserID)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// CheckInsForDate returns the ids of shop check-in punches on a date.
func (q *Queries) CheckInsForDate(date string) []string {
	return q.orderIDs(CollectionTypeCheckIn, date)
}

// CheckOutsForDate returns the ids of shop check-out punches on a date.
func (q *Queries) CheckOutsForDate(date string) []string {
	return q.orderIDs(CollectionTypeCheckOut, date)
}

func (q *Queries) orderIDs(collectionType, date string) []string {
	rows := q.rows(
		"SELECT id FROM OrderMaster WHERE collection_type = ? AND from_date = ?",
		collectionType, date)
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, types.AsString(r["id"]))
	}
	return ids
}

// CountUnsyncedOrders returns how many OrderMaster rows still await upload.
func (q *Queries) CountUnsyncedOrders() int64 {
	rows := q.rows("SELECT COUNT(*) AS TotalCount FROM OrderMaster WHERE sync_flag = 0")
	if len(rows) == 0 {
		return 0
	}
	return types.AsInt(rows[0]["TotalCount"])
}

// ActivityOutlets returns the outlets visited on a date, joined with the
// customer master for display names.
func (q *Queries) ActivityOutlets(date string) []types.Row {
	return q.rows(
		`SELECT DISTINCT OrderMaster.entity_id, OrderMaster.from_date,
			Pcustomer.Party, Pcustomer.CustomerId
		FROM OrderMaster
		LEFT JOIN Pcustomer ON OrderMaster.entity_id = Pcustomer.CustomerId
		WHERE OrderMaster.from_date = ?`, date)
}

// OrderBookedDetails returns every order line booked against an outlet,
// joined through OrderDetails and the item master.
func (q *Queries) OrderBookedDetails(entityID, userID string) []types.Row {
	return q.rows(
		`SELECT DISTINCT Current_date_time, OrderMaster.from_date, ActivityStart,
			ActivityEnd, collection_type, OrderMaster.id, OrderDetails.item_id,
			OrderDetails.quantity_one, OrderDetails.quantity_two,
			OrderDetails.small_Unit, OrderDetails.large_Unit, OrderDetails.Amount,
			PItem.Item
		FROM OrderMaster
		LEFT JOIN OrderDetails ON OrderMaster.id = OrderDetails.order_id
		LEFT JOIN PItem ON OrderDetails.item_id = PItem.ItemId
		WHERE OrderMaster.entity_id = ? AND OrderMaster.userid = ?`,
		entityID, userID)
}

// OrdersForEntityOnDate narrows OrderBookedDetails to one activity date.
func (q *Queries) OrdersForEntityOnDate(entityID, date, userID string) []types.Row {
	return q.rows(
		`SELECT Current_date_time, OrderMaster.from_date, ActivityStart,
			ActivityEnd, collection_type, OrderMaster.id, OrderDetails.item_id,
			OrderDetails.quantity_one, OrderDetails.quantity_two,
			OrderDetails.Amount, PItem.Item
		FROM OrderMaster
		LEFT JOIN OrderDetails ON OrderMaster.id = OrderDetails.order_id
		LEFT JOIN PItem ON OrderDetails.item_id = PItem.ItemId
		WHERE OrderMaster.entity_id = ? AND OrderMaster.from_date = ?
			AND OrderMaster.userid = ?`,
		entityID, date, userID)
}

// DistinctActivityEntities returns every entity that has OrderMaster activity.
func (q *Queries) DistinctActivityEntities() []string {
	rows := q.rows("SELECT DISTINCT entity_id FROM OrderMaster")
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, types.AsString(r["entity_id"]))
	}
	return ids
}
