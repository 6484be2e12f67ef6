package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zylem/fieldsync/internal/store"
	"github.com/zylem/fieldsync/pkg/types"
)

func newTestQueries(t *testing.T) (*Queries, *store.Store) {
	t.Helper()
	s, err := store.Open(types.Config{
		DatabaseName:    "test",
		DatabaseVersion: 1,
		InMemory:        true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s), s
}

func TestSettings(t *testing.T) {
	q, _ := newTestQueries(t)

	assert.Equal(t, "", q.SettingValue("missing"))
	assert.Equal(t, "", q.LastSync())
	assert.False(t, q.AutoSync())

	require.NoError(t, q.SetSettingValue("AutoSync", "1"))
	assert.True(t, q.AutoSync())

	require.NoError(t, q.SetLastSync("2026-09-01T08:00:00Z"))
	assert.Equal(t, "2026-09-01T08:00:00Z", q.LastSync())

	// Upsert semantics: setting again replaces.
	require.NoError(t, q.SetSettingValue("AutoSync", "0"))
	assert.False(t, q.AutoSync())

	require.NoError(t, q.SetSettingValue("AppLogWriting", "1"))
	assert.True(t, q.AppLogWriting())
	assert.False(t, q.SyncOnActivity())
}

func TestAttendanceDayEnd(t *testing.T) {
	q, _ := newTestQueries(t)

	lat := 18.52
	lon := 73.85
	require.NoError(t, q.InsertAttendance(AttendanceRecord{
		UserID:         "u1",
		AttendanceType: "IN",
		Date:           "2026-09-01",
		Time:           "09:00:00",
		Latitude:       &lat,
		Longitude:      &lon,
	}))
	require.NoError(t, q.InsertAttendance(AttendanceRecord{
		UserID:         "u1",
		AttendanceType: "OUT",
		Date:           "2026-09-01",
		Time:           "18:30:00",
		Remark:         "closing",
		DayEnd:         true,
	}))
	require.NoError(t, q.InsertAttendance(AttendanceRecord{
		UserID:         "u1",
		AttendanceType: "IN",
		Date:           "2026-09-02",
		Time:           "09:05:00",
	}))

	all := q.AttendanceForDate("2026-09-01")
	assert.Len(t, all, 2)

	// Only the day-end punch qualifies; the next day is still open.
	dayEnd := q.DayEndAttendanceForDate("2026-09-01")
	require.Len(t, dayEnd, 1)
	assert.Equal(t, "OUT", types.AsString(dayEnd[0]["AttendanceType"]))
	assert.Empty(t, q.DayEndAttendanceForDate("2026-09-02"))

	// The punch without a fix stored NULL coordinates, not zero.
	rows := q.AttendanceForDate("2026-09-02")
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0]["Latitude"])
}

func TestUsageLog(t *testing.T) {
	q, s := newTestQueries(t)

	require.NoError(t, q.InsertUsageLog("u1", "Login", "2026-09-01 08:00:00"))
	n, err := s.RowCount("UsesLog")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestOrderCheckInAndOut(t *testing.T) {
	q, _ := newTestQueries(t)

	id, err := q.InsertOrderCheckIn(OrderCheckIn{
		EntityType:     "outlet",
		EntityID:       "shop-1",
		FromDate:       "2026-09-01",
		CollectionType: CollectionTypeCheckIn,
		UserID:         "u1",
		SyncFlag:       "0",
		AppUserID:      "u1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = q.InsertOrderCheckIn(OrderCheckIn{
		ID:             "fixed-id",
		EntityType:     "outlet",
		EntityID:       "shop-1",
		FromDate:       "2026-09-01",
		CollectionType: CollectionTypeCheckOut,
		UserID:         "u1",
		SyncFlag:       "0",
		AppUserID:      "u1",
	})
	require.NoError(t, err)

	ins := q.CheckInsForDate("2026-09-01")
	require.Len(t, ins, 1)
	assert.Equal(t, id, ins[0])

	outs := q.CheckOutsForDate("2026-09-01")
	require.Len(t, outs, 1)
	assert.Equal(t, "fixed-id", outs[0])

	assert.Empty(t, q.CheckInsForDate("2026-09-02"))
	assert.EqualValues(t, 2, q.CountUnsyncedOrders())
}

func TestActivityQueries(t *testing.T) {
	q, s := newTestQueries(t)

	_, err := s.Run(
		"INSERT INTO Pcustomer (CustomerId, Party, RouteID, userid) VALUES (?, ?, ?, ?)",
		"shop-1", "Corner Shop", "R1", "u1")
	require.NoError(t, err)

	_, err = q.InsertOrderCheckIn(OrderCheckIn{
		ID: "o1", EntityID: "shop-1", FromDate: "2026-09-01",
		CollectionType: "1", UserID: "u1", SyncFlag: "0", AppUserID: "u1",
	})
	require.NoError(t, err)
	_, err = s.Run(
		"INSERT INTO OrderDetails (order_id, item_id, quantity_one, Amount) VALUES (?, ?, ?, ?)",
		"o1", "item-1", "5", "250")
	require.NoError(t, err)
	_, err = s.Run(
		"INSERT INTO PItem (ItemId, Item, BRANDID, BRAND, userid) VALUES (?, ?, ?, ?, ?)",
		"item-1", "Cola 500ml", "b1", "Cola", "u1")
	require.NoError(t, err)

	outlets := q.ActivityOutlets("2026-09-01")
	require.Len(t, outlets, 1)
	assert.Equal(t, "Corner Shop", types.AsString(outlets[0]["Party"]))

	booked := q.OrderBookedDetails("shop-1", "u1")
	require.Len(t, booked, 1)
	assert.Equal(t, "Cola 500ml", types.AsString(booked[0]["Item"]))

	dated := q.OrdersForEntityOnDate("shop-1", "2026-09-01", "u1")
	assert.Len(t, dated, 1)
	assert.Empty(t, q.OrdersForEntityOnDate("shop-1", "2026-09-02", "u1"))

	entities := q.DistinctActivityEntities()
	assert.Equal(t, []string{"shop-1"}, entities)
}

func TestLookups(t *testing.T) {
	q, s := newTestQueries(t)

	_, err := s.Run(
		"INSERT INTO PJPMaster (RouteID, RouteName, userid) VALUES (?, ?, ?)",
		"R1", "North", "u1")
	require.NoError(t, err)
	_, err = s.Run(
		"INSERT INTO Pcustomer (CustomerId, Party, RouteID, Latitude, Longitude, userid) VALUES (?, ?, ?, ?, ?, ?)",
		"shop-1", "Corner Shop", "R1", 18.52, 73.85, "u1")
	require.NoError(t, err)
	_, err = s.Run(
		"INSERT INTO Pcustomer (CustomerId, Party, RouteID, userid) VALUES (?, ?, ?, ?)",
		"shop-2", "No Fix Stores", "R1", "u1")
	require.NoError(t, err)

	assert.Len(t, q.Routes(), 1)
	assert.Len(t, q.ShopsByRoute("R1"), 2)
	assert.Empty(t, q.ShopsByRoute("R9"))

	det := q.OutletDetails("shop-1")
	require.NotNil(t, det)
	assert.Equal(t, "Corner Shop", types.AsString(det["Party"]))
	assert.Nil(t, q.OutletDetails("nope"))

	// Only outlets with both coordinates qualify for the map.
	locs := q.ShopLocations()
	require.Len(t, locs, 1)
	assert.Equal(t, "shop-1", types.AsString(locs[0]["CustomerId"]))

	assert.Len(t, q.OutletParties(), 2)
}

func TestItemAndDistributorLookups(t *testing.T) {
	q, s := newTestQueries(t)

	items := []struct{ id, item, brandID, brand, sizeID, size string }{
		{"i1", "Cola 500ml", "b1", "Cola", "s1", "500ml"},
		{"i2", "Cola 1L", "b1", "Cola", "s2", "1L"},
		{"i3", "Lemon 500ml", "b2", "Lemon", "s1", "500ml"},
	}
	for _, it := range items {
		_, err := s.Run(
			"INSERT INTO PItem (ItemId, Item, BRANDID, BRAND, ITEMSIZEID, ITEMSIZE, userid) VALUES (?, ?, ?, ?, ?, ?, ?)",
			it.id, it.item, it.brandID, it.brand, it.sizeID, it.size, "u1")
		require.NoError(t, err)
	}
	_, err := s.Run(
		"INSERT INTO PDistributor (DistributorID, Distributor, userid) VALUES (?, ?, ?)",
		"d1", "Acme Traders", "u1")
	require.NoError(t, err)

	assert.Len(t, q.Brands("u1"), 2)
	assert.Len(t, q.SKUs("u1"), 3)
	assert.Len(t, q.Sizes("u1"), 3)
	assert.Empty(t, q.Brands("other-user"))

	ids := q.ItemIDsForBrands([]string{"b1"})
	assert.ElementsMatch(t, []string{"i1", "i2"}, ids)
	assert.Nil(t, q.ItemIDsForBrands(nil))

	assert.Len(t, q.Distributors("u1"), 1)
	assert.Len(t, q.AllDistributors(), 1)

	dd := q.DistributorDetails("d1", "u1")
	require.Len(t, dd, 1)
	assert.Equal(t, "Acme Traders", types.AsString(dd[0]["Party"]))
}

func TestReportQueries(t *testing.T) {
	q, s := newTestQueries(t)

	_, err := s.Run(
		"INSERT INTO Report (MenuKey, Classification, LabelName, IsActive) VALUES (?, ?, ?, ?)",
		"Report1", "BRAND", "Brand Wise Sales", "1")
	require.NoError(t, err)
	_, err = s.Run(
		"INSERT INTO ReportControlMaster (ControlName, ControlId, ReferenceColumn) VALUES (?, ?, ?)",
		"Brand", "BRAND", "BrandColumn")
	require.NoError(t, err)

	rows := q.ReportClassifications("Report1")
	require.Len(t, rows, 1)
	assert.Equal(t, "Brand Wise Sales", types.AsString(rows[0]["LabelName"]))
	assert.Empty(t, q.ReportClassifications("Report9"))

	assert.Equal(t, "BRAND", q.ControlID("BrandColumn"))
	assert.Equal(t, "", q.ControlID("unknown"))
}

func TestReadsNeverFail(t *testing.T) {
	q, s := newTestQueries(t)
	require.NoError(t, s.Close())

	// Every read surface degrades to empty instead of erroring.
	assert.Equal(t, "", q.SettingValue("k"))
	assert.Empty(t, q.AttendanceForDate("2026-09-01"))
	assert.Empty(t, q.CheckInsForDate("2026-09-01"))
	assert.EqualValues(t, 0, q.CountUnsyncedOrders())
	assert.Empty(t, q.Routes())
	assert.Nil(t, q.OutletDetails("x"))
}
