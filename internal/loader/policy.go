// Package loader flushes a sync snapshot into the domain tables. Each domain
// carries a declarative spec naming its table, replace strategy and column
// coercions; the load itself is generic.
package loader

import "github.com/zylem/fieldsync/pkg/types"

// strategy selects how a domain's table is refreshed from the snapshot.
type strategy int

const (
	// replaceAll clears the table, then inserts every snapshot record.
	replaceAll strategy = iota
	// upsert inserts with INSERT OR REPLACE on the table's primary key and
	// never clears. Used where local rows must survive a sync.
	upsert
	// append inserts plainly and never clears.
	append_
)

// colKind selects the coercion applied to a payload field before binding.
type colKind int

const (
	colText colKind = iota
	colInt
	colReal
	colRealNull
)

// column maps one table column to a payload field. An empty source means the
// field has the same name as the column.
type column struct {
	name   string
	source string
	kind   colKind
}

func (c column) field() string {
	if c.source != "" {
		return c.source
	}
	return c.name
}

// coerce normalizes a payload value for this column.
func (c column) coerce(v any) any {
	switch c.kind {
	case colInt:
		return types.AsInt(v)
	case colReal:
		return types.AsFloat(v)
	case colRealNull:
		return types.AsNullableFloat(v)
	default:
		return types.AsString(v)
	}
}

// tableSpec describes how one snapshot domain lands in one table. A domain
// may appear in more than one spec: the Settings payload feeds both the
// Settings mirror table and the legacy Setting key/value table.
type tableSpec struct {
	domain          string
	table           string
	strategy        strategy
	clearWhenAbsent bool
	columns         []column
}

func textCols(names ...string) []column {
	cols := make([]column, len(names))
	for i, n := range names {
		cols[i] = column{name: n}
	}
	return cols
}

// tableSpecs lists every domain in load order. Strategies are deliberately
// not uniform: OrderMaster and OrderDetails can hold local writes that have
// not synced yet, so they are upsert/append targets; the scheme and discount
// masters upsert on their IDs; everything else is cleared and rebuilt.
// RO_BankCustomer additionally treats an absent domain as deleted upstream.
var tableSpecs = []tableSpec{
	{
		domain:   "Settings",
		table:    "Settings",
		strategy: replaceAll,
		columns:  textCols("Key", "Value"),
	},
	{
		domain:   "Settings",
		table:    "Setting",
		strategy: upsert,
		columns: []column{
			{name: "Name", source: "Key"},
			{name: "Value"},
		},
	},
	{
		domain:   "RO_MultiEntityUser",
		table:    "MultiEntityUser",
		strategy: replaceAll,
		columns:  textCols("UserId", "DistributorId", "DivisionId", "Distributor"),
	},
	{
		domain:   "Sales",
		table:    "Sales",
		strategy: replaceAll,
		columns: []column{
			{name: "UserID"}, {name: "DistributorID"}, {name: "CustomerID"},
			{name: "Month", kind: colInt},
			{name: "ItemID"}, {name: "Quantity"}, {name: "Value"}, {name: "user_id"},
		},
	},
	{
		domain:   "PaymentReceipt_Log",
		table:    "TX_PaymentReceipt_log",
		strategy: replaceAll,
		columns: textCols("ID", "ReceivedDateTime", "PaymentMode", "ChequeNo",
			"ChequeDated", "BankDetails", "Amount", "OutletID", "Narration", "ExecutiveID"),
	},
	{
		domain:   "Collections_Log",
		table:    "TX_Collections_log",
		strategy: replaceAll,
		columns: textCols("MobileGenPrimaryKey", "InvoiceCode", "AllocatedAmount",
			"CollectionDatetime", "PartyCode"),
	},
	{
		domain:   "CollectionsDetails_Log",
		table:    "TX_CollectionsDetails_log",
		strategy: replaceAll,
		columns:  textCols("CollectionID", "Amount", "DiscountType", "InvoiceCode"),
	},
	{
		domain:   "VW_PendingOrders",
		table:    "VW_PendingOrders",
		strategy: replaceAll,
		columns: textCols("Party", "Id", "POM_DOC_NO", "POM_DOC_DATE", "POM_DOC_AMOUNT",
			"POD_ITEM_NAME", "POD_SQTY", "POD_FQTY", "POD_LEDGER_NAME", "POD_RNP",
			"POD_RATE", "POD_QUANTITY", "POD_TOTALDISCOUNT", "userid"),
	},
	{
		domain:   "SalesYTD",
		table:    "SalesYTD",
		strategy: replaceAll,
		columns: textCols("UserID", "DistributorID", "CustomerID", "ItemID",
			"Quantity", "Value", "user_id"),
	},
	{
		domain:   "ReportControlMaster",
		table:    "ReportControlMaster",
		strategy: replaceAll,
		columns:  textCols("ControlName", "ControlId", "ReferenceColumn"),
	},
	{
		domain:   "UOMMaster",
		table:    "uommaster",
		strategy: replaceAll,
		columns: textCols("UOMDescription", "ConvToBase", "Formula", "UOMKey",
			"IsQuantity", "ConversionFormula", "ConversionUomFormula"),
	},
	{
		domain:   "OrderMaster",
		table:    "OrderMaster",
		strategy: upsert,
		columns: textCols("id", "Current_date_time", "entity_type", "entity_id",
			"latitude", "longitude", "total_amount", "from_date", "to_date",
			"collection_type", "user_id", "remark", "selected_flag", "sync_flag",
			"check_date", "DefaultDistributorId", "ExpectedDeliveryDate",
			"ActivityStatus", "ActivityStart", "ActivityEnd", "userid"),
	},
	{
		domain:   "DiscountMaster",
		table:    "DiscountMaster",
		strategy: upsert,
		columns:  textCols("ID", "Code", "DT_DESC", "userid"),
	},
	{
		domain:   "SchemeMaster",
		table:    "SchemeMaster",
		strategy: upsert,
		columns:  textCols("ID", "Code", "DT_DESC", "userid"),
	},
	{
		domain:   "PriceListClassification",
		table:    "PriceListClassification",
		strategy: replaceAll,
		columns:  textCols("ClassificationId", "ItemId", "Price", "DistributorId", "userid"),
	},
	{
		domain:   "PJPMaster",
		table:    "PJPMaster",
		strategy: replaceAll,
		columns:  textCols("RouteID", "RouteName", "userid"),
	},
	{
		domain:   "OrderDetails",
		table:    "OrderDetails",
		strategy: append_,
		columns: textCols("order_id", "item_id", "item_Name", "quantity_one",
			"quantity_two", "small_Unit", "large_Unit", "rate", "Amount",
			"selected_flag", "sync_flag", "bottleQty", "BrandId", "entityId",
			"CollectionType", "userid"),
	},
	{
		domain:   "Resources",
		table:    "Resources",
		strategy: replaceAll,
		columns: textCols("ID", "ResourceName", "ParentResourceID", "URL",
			"Descreption", "FileName", "SequenceNo", "IsDownloadable",
			"ResourceType", "CreatedDate", "LastUpdatedDate"),
	},
	{
		domain:   "OnlineParentArea",
		table:    "OnlineParentArea",
		strategy: replaceAll,
		columns: []column{
			{name: "AreaId", kind: colInt},
			{name: "Area"},
		},
	},
	{
		domain:   "AssetPlacementVerification",
		table:    "AssetPlacementVerification",
		strategy: replaceAll,
		columns: textCols("OrderID", "AssetID", "QRCode", "ScanStatus",
			"AssetInformation", "Remark", "Condition", "AuditDate", "userid"),
	},
	{
		domain:   "AssetTypeClassificationList",
		table:    "AssetTypeClassificationList",
		strategy: replaceAll,
		columns:  textCols("AssetTypeID", "AssetName", "ClassificationList"),
	},
	{
		domain:   "DistributorDataStatus",
		table:    "DistributorDataStatus",
		strategy: replaceAll,
		columns: textCols("Branch", "DistributorID", "Area", "Day7", "Day6", "Day5",
			"Day4", "Day3", "Day2", "Day1", "LastUploadDate", "LastInvoiceDate", "userid"),
	},
	{
		domain:   "DistributorContacts",
		table:    "DistributorContacts",
		strategy: replaceAll,
		columns:  textCols("DistributorID", "SequenceNo", "ContactPerson", "ContactNumber", "userid"),
	},
	{
		domain:   "OutletAssetInformation",
		table:    "OutletAssetInformation",
		strategy: replaceAll,
		columns: textCols("CustomerID", "AssetID", "AssetQRcode",
			"AssetInformation", "ScanFlag", "userid"),
	},
	{
		domain:   "SurveyMaster",
		table:    "SurveyMaster",
		strategy: replaceAll,
		columns: textCols("ID", "SurveyName", "CompanyName", "CustomerID",
			"PublishedDate", "TimeRequired", "SurveyURL", "SurveyDoneDate"),
	},
	{
		domain:   "Report",
		table:    "Report",
		strategy: replaceAll,
		columns:  textCols("MenuKey", "Classification", "ComboClassification", "LabelName", "IsActive"),
	},
	{
		domain:   "PCustomer",
		table:    "Pcustomer",
		strategy: replaceAll,
		columns: []column{
			{name: "CustomerId"}, {name: "Party"}, {name: "LicenceNo"},
			{name: "IsActive"}, {name: "ERPCode"}, {name: "RouteID"},
			{name: "RouteName"}, {name: "AREAID"}, {name: "AREA"},
			{name: "BRANCHID"}, {name: "BRANCH"}, {name: "CUSTOMERCLASSID"},
			{name: "CUSTOMERCLASS"}, {name: "CUSTOMERCLASS2ID"}, {name: "CUSTOMERCLASS2"},
			{name: "CUSTOMERGROUPID"}, {name: "CUSTOMERGROUP"}, {name: "CUSTOMERSEGMENTID"},
			{name: "CUSTOMERSEGMENT"}, {name: "CUSTOMERSUBSEGMENTID"}, {name: "CUSTOMERSUBSEGMENT"},
			{name: "LICENCETYPEID"}, {name: "LICENCETYPE"}, {name: "OCTROIZONEID"},
			{name: "OCTROIZONE"}, {name: "Outlet_Info"}, {name: "DefaultDistributorId"},
			{name: "SchemeID"}, {name: "PriceListId"},
			{name: "Latitude", kind: colRealNull},
			{name: "Longitude", kind: colRealNull},
			{name: "userid"},
		},
	},
	{
		domain:   "PDistributor",
		table:    "PDistributor",
		strategy: replaceAll,
		columns: textCols("DistributorID", "Distributor", "DistributorAlias",
			"ERPCode", "AREAID", "AREA", "BRANCHID", "BRANCH", "DISTRIBUTORGROUPID",
			"DISTRIBUTORGROUP", "IsSelectedDistributor", "DISTRIBUTORINFO", "userid"),
	},
	{
		domain:   "PItem",
		table:    "PItem",
		strategy: replaceAll,
		columns: textCols("ItemId", "Item", "ItemAlias", "BPC", "BPC1", "BPC2",
			"ErpCode", "Volume", "ReportingQuantity", "MRP", "PTR", "BRANDID",
			"BRAND", "DIVISIONID", "DIVISION", "FLAVOURID", "FLAVOUR",
			"ITEMCLASSID", "ITEMCLASS", "ITEMGROUPID", "ITEMGROUP", "ITEMSIZEID",
			"ITEMSIZE", "ITEMSUBGROUPID", "ITEMSUBGROUP", "ITEMTYPEID", "ITEMTYPE",
			"ITEMSEQUENCE", "Focus", "IsSelectedBrand", "IsSelectedBrandProduct",
			"bottleQut", "SchemeID", "ScanCode", "userid"),
	},
	{
		domain:   "Target",
		table:    "Target",
		strategy: replaceAll,
		columns: []column{
			{name: "UserID"}, {name: "TDate"}, {name: "ClassificationID"},
			{name: "ClassificationName"},
			{name: "Target", kind: colReal},
		},
	},
	{
		domain:   "MJPMaster",
		table:    "MJPMaster",
		strategy: replaceAll,
		columns:  textCols("ID", "ExecutiveId", "MonthYear", "userid"),
	},
	{
		domain:   "MJPMasterDetails",
		table:    "MJPMasterDetails",
		strategy: replaceAll,
		columns: textCols("MJPMasterID", "PlannedDate", "EntityType",
			"EntityTypeID", "ActivityTitle", "IsActivityDone", "userid"),
	},
	{
		domain:   "SubGroupMaster",
		table:    "SubGroupMaster",
		strategy: replaceAll,
		columns:  textCols("Id", "GroupId", "Name"),
	},
	{
		domain:   "SchemeDetails",
		table:    "SchemeDetails",
		strategy: replaceAll,
		columns: textCols("ID", "SchemeID", "SchemeName", "FromDate", "ToDate",
			"SlabNo", "SchemeBenefits", "Remarks"),
	},
	{
		domain:   "OutstandingDetails",
		table:    "OutstandingDetails",
		strategy: replaceAll,
		columns: textCols("ID", "PartyCode", "Document", "Date", "DisPactchDate",
			"Amount", "OSAmount", "OSDocument", "InvoiceDate", "DiscountAc",
			"PdcAmt", "PdcDate", "CDStatus", "Narration", "TpNo", "LedgerCode",
			"CDPercentage", "ChqNo", "PayslipNo", "ReceivedAmt", "Lag",
			"UnAllocated", "NetOsAmt", "VhrNo", "PartyName", "Location", "userid"),
	},
	{
		domain:   "ChequeReturnDetails",
		table:    "ChequeReturnDetails",
		strategy: replaceAll,
		columns: textCols("ID", "PartyCode", "ReceiptNo", "ReceiptDate", "ChqNo",
			"ChqDate", "ChqAmt", "BankName", "Branch", "BounceDate", "userid"),
	},
	{
		domain:          "RO_BankCustomer",
		table:           "RO_BankCustomer",
		strategy:        replaceAll,
		clearWhenAbsent: true,
		columns:         textCols("PartyCode", "BankName", "AccountNo", "IFSC", "BankBranch", "userid"),
	},
}
