package store

import (
	"strings"

	"github.com/zylem/fieldsync/pkg/types"
)

// Schema DDL for every table. All statements use IF NOT EXISTS so schema
// setup can run on every open; evolution is additive and a version bump in
// Config forces a full rebuild instead of in-place migration.
const (
	createSettings = `CREATE TABLE IF NOT EXISTS Settings (
    Key TEXT NOT NULL,
    Value TEXT
);`

	// Setting is the legacy single-row-per-key twin of Settings. All reads
	// go through this table; Name is the upsert key.
	createSetting = `CREATE TABLE IF NOT EXISTS Setting (
    Name TEXT PRIMARY KEY,
    Value TEXT
);`

	createMultiEntityUser = `CREATE TABLE IF NOT EXISTS MultiEntityUser (
    UserId TEXT,
    DistributorId TEXT,
    DivisionId TEXT,
    Distributor TEXT
);`

	createSales = `CREATE TABLE IF NOT EXISTS Sales (
    UserID TEXT,
    DistributorID TEXT,
    CustomerID TEXT,
    Month INTEGER,
    ItemID TEXT,
    Quantity TEXT,
    Value TEXT,
    user_id TEXT
);`

	createSalesYTD = `CREATE TABLE IF NOT EXISTS SalesYTD (
    UserID TEXT,
    DistributorID TEXT,
    CustomerID TEXT,
    ItemID TEXT,
    Quantity TEXT,
    Value TEXT,
    user_id TEXT
);`

	createPcustomer = `CREATE TABLE IF NOT EXISTS Pcustomer (
    CustomerId TEXT,
    Party TEXT,
    LicenceNo TEXT,
    IsActive TEXT,
    ERPCode TEXT,
    RouteID TEXT,
    RouteName TEXT,
    AREAID TEXT,
    AREA TEXT,
    BRANCHID TEXT,
    BRANCH TEXT,
    CUSTOMERCLASSID TEXT,
    CUSTOMERCLASS TEXT,
    CUSTOMERCLASS2ID TEXT,
    CUSTOMERCLASS2 TEXT,
    CUSTOMERGROUPID TEXT,
    CUSTOMERGROUP TEXT,
    CUSTOMERSEGMENTID TEXT,
    CUSTOMERSEGMENT TEXT,
    CUSTOMERSUBSEGMENTID TEXT,
    CUSTOMERSUBSEGMENT TEXT,
    LICENCETYPEID TEXT,
    LICENCETYPE TEXT,
    OCTROIZONEID TEXT,
    OCTROIZONE TEXT,
    Outlet_Info TEXT,
    DefaultDistributorId TEXT,
    SchemeID TEXT,
    PriceListId TEXT,
    Latitude REAL,
    Longitude REAL,
    userid TEXT
);`

	createPDistributor = `CREATE TABLE IF NOT EXISTS PDistributor (
    DistributorID TEXT,
    Distributor TEXT,
    DistributorAlias TEXT,
    ERPCode TEXT,
    AREAID TEXT,
    AREA TEXT,
    BRANCHID TEXT,
    BRANCH TEXT,
    DISTRIBUTORGROUPID TEXT,
    DISTRIBUTORGROUP TEXT,
    IsSelectedDistributor TEXT,
    DISTRIBUTORINFO TEXT,
    userid TEXT
);`

	createPItem = `CREATE TABLE IF NOT EXISTS PItem (
    ItemId TEXT,
    Item TEXT,
    ItemAlias TEXT,
    BPC TEXT,
    BPC1 TEXT,
    BPC2 TEXT,
    ErpCode TEXT,
    Volume TEXT,
    ReportingQuantity TEXT,
    MRP TEXT,
    PTR TEXT,
    BRANDID TEXT,
    BRAND TEXT,
    DIVISIONID TEXT,
    DIVISION TEXT,
    FLAVOURID TEXT,
    FLAVOUR TEXT,
    ITEMCLASSID TEXT,
    ITEMCLASS TEXT,
    ITEMGROUPID TEXT,
    ITEMGROUP TEXT,
    ITEMSIZEID TEXT,
    ITEMSIZE TEXT,
    ITEMSUBGROUPID TEXT,
    ITEMSUBGROUP TEXT,
    ITEMTYPEID TEXT,
    ITEMTYPE TEXT,
    ITEMSEQUENCE TEXT,
    Focus TEXT,
    IsSelectedBrand TEXT,
    IsSelectedBrandProduct TEXT,
    bottleQut TEXT,
    SchemeID TEXT,
    ScanCode TEXT,
    userid TEXT
);`

	createTarget = `CREATE TABLE IF NOT EXISTS Target (
    UserID TEXT,
    TDate TEXT,
    ClassificationID TEXT,
    ClassificationName TEXT,
    Target REAL
);`

	// OrderMaster holds both synced orders and local not-yet-synced writes
	// (check-ins, activity records). It is an upsert target keyed by id and
	// is never wholesale-cleared by the loader.
	createOrderMaster = `CREATE TABLE IF NOT EXISTS OrderMaster (
    id TEXT PRIMARY KEY,
    Current_date_time TEXT,
    entity_type TEXT,
    entity_id TEXT,
    latitude TEXT,
    longitude TEXT,
    total_amount TEXT,
    from_date TEXT,
    to_date TEXT,
    collection_type TEXT,
    user_id TEXT,
    remark TEXT,
    selected_flag TEXT,
    sync_flag TEXT,
    check_date TEXT,
    DefaultDistributorId TEXT,
    ExpectedDeliveryDate TEXT,
    ActivityStatus TEXT,
    ActivityStart TEXT,
    ActivityEnd TEXT,
    userid TEXT
);`

	createOrderDetails = `CREATE TABLE IF NOT EXISTS OrderDetails (
    order_id TEXT,
    item_id TEXT,
    item_Name TEXT,
    quantity_one TEXT,
    quantity_two TEXT,
    small_Unit TEXT,
    large_Unit TEXT,
    rate TEXT,
    Amount TEXT,
    selected_flag TEXT,
    sync_flag TEXT,
    bottleQty TEXT,
    BrandId TEXT,
    entityId TEXT,
    CollectionType TEXT,
    userid TEXT
);`

	createPJPMaster = `CREATE TABLE IF NOT EXISTS PJPMaster (
    RouteID TEXT,
    RouteName TEXT,
    userid TEXT
);`

	createReport = `CREATE TABLE IF NOT EXISTS Report (
    MenuKey TEXT,
    Classification TEXT,
    ComboClassification TEXT,
    LabelName TEXT,
    IsActive TEXT
);`

	createOnlineParentArea = `CREATE TABLE IF NOT EXISTS OnlineParentArea (
    AreaId INTEGER,
    Area TEXT
);`

	createSurveyMaster = `CREATE TABLE IF NOT EXISTS SurveyMaster (
    ID TEXT,
    SurveyName TEXT,
    CompanyName TEXT,
    CustomerID TEXT,
    PublishedDate TEXT,
    TimeRequired TEXT,
    SurveyURL TEXT,
    SurveyDoneDate TEXT
);`

	createResources = `CREATE TABLE IF NOT EXISTS Resources (
    ID TEXT,
    ResourceName TEXT,
    ParentResourceID TEXT,
    URL TEXT,
    Descreption TEXT,
    FileName TEXT,
    SequenceNo TEXT,
    IsDownloadable TEXT,
    ResourceType TEXT,
    CreatedDate TEXT,
    LastUpdatedDate TEXT
);`

	createDistributorContacts = `CREATE TABLE IF NOT EXISTS DistributorContacts (
    DistributorID TEXT,
    SequenceNo TEXT,
    ContactPerson TEXT,
    ContactNumber TEXT,
    userid TEXT
);`

	createDistributorDataStatus = `CREATE TABLE IF NOT EXISTS DistributorDataStatus (
    Branch TEXT,
    DistributorID TEXT,
    Area TEXT,
    Day7 TEXT,
    Day6 TEXT,
    Day5 TEXT,
    Day4 TEXT,
    Day3 TEXT,
    Day2 TEXT,
    Day1 TEXT,
    LastUploadDate TEXT,
    LastInvoiceDate TEXT,
    userid TEXT
);`

	createVWPendingOrders = `CREATE TABLE IF NOT EXISTS VW_PendingOrders (
    Party TEXT,
    Id TEXT,
    POM_DOC_NO TEXT,
    POM_DOC_DATE TEXT,
    POM_DOC_AMOUNT TEXT,
    POD_ITEM_NAME TEXT,
    POD_SQTY TEXT,
    POD_FQTY TEXT,
    POD_LEDGER_NAME TEXT,
    POD_RNP TEXT,
    POD_RATE TEXT,
    POD_QUANTITY TEXT,
    POD_TOTALDISCOUNT TEXT,
    userid TEXT
);`

	createReportControlMaster = `CREATE TABLE IF NOT EXISTS ReportControlMaster (
    ControlName TEXT,
    ControlId TEXT,
    ReferenceColumn TEXT
);`

	createUOMMaster = `CREATE TABLE IF NOT EXISTS uommaster (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    UOMDescription TEXT,
    ConvToBase TEXT,
    Formula TEXT,
    UOMKey TEXT,
    IsQuantity TEXT,
    ConversionFormula TEXT,
    ConversionUomFormula TEXT
);`

	createDiscountMaster = `CREATE TABLE IF NOT EXISTS DiscountMaster (
    ID TEXT PRIMARY KEY,
    Code TEXT,
    DT_DESC TEXT,
    userid TEXT
);`

	createSchemeMaster = `CREATE TABLE IF NOT EXISTS SchemeMaster (
    ID TEXT PRIMARY KEY,
    Code TEXT,
    DT_DESC TEXT,
    userid TEXT
);`

	createPriceListClassification = `CREATE TABLE IF NOT EXISTS PriceListClassification (
    ClassificationId TEXT,
    ItemId TEXT,
    Price TEXT,
    DistributorId TEXT,
    userid TEXT
);`

	createMJPMaster = `CREATE TABLE IF NOT EXISTS MJPMaster (
    ID TEXT,
    ExecutiveId TEXT,
    MonthYear TEXT,
    userid TEXT
);`

	createMJPMasterDetails = `CREATE TABLE IF NOT EXISTS MJPMasterDetails (
    MJPMasterID TEXT,
    PlannedDate TEXT,
    EntityType TEXT,
    EntityTypeID TEXT,
    ActivityTitle TEXT,
    IsActivityDone TEXT,
    userid TEXT
);`

	createSubGroupMaster = `CREATE TABLE IF NOT EXISTS SubGroupMaster (
    Id TEXT,
    GroupId TEXT,
    Name TEXT
);`

	createSchemeDetails = `CREATE TABLE IF NOT EXISTS SchemeDetails (
    ID TEXT,
    SchemeID TEXT,
    SchemeName TEXT,
    FromDate TEXT,
    ToDate TEXT,
    SlabNo TEXT,
    SchemeBenefits TEXT,
    Remarks TEXT
);`

	createOutstandingDetails = `CREATE TABLE IF NOT EXISTS OutstandingDetails (
    ID TEXT,
    PartyCode TEXT,
    Document TEXT,
    Date TEXT,
    DisPactchDate TEXT,
    Amount TEXT,
    OSAmount TEXT,
    OSDocument TEXT,
    InvoiceDate TEXT,
    DiscountAc TEXT,
    PdcAmt TEXT,
    PdcDate TEXT,
    CDStatus TEXT,
    Narration TEXT,
    TpNo TEXT,
    LedgerCode TEXT,
    CDPercentage TEXT,
    ChqNo TEXT,
    PayslipNo TEXT,
    ReceivedAmt TEXT,
    Lag TEXT,
    UnAllocated TEXT,
    NetOsAmt TEXT,
    VhrNo TEXT,
    PartyName TEXT,
    Location TEXT,
    userid TEXT
);`

	createChequeReturnDetails = `CREATE TABLE IF NOT EXISTS ChequeReturnDetails (
    ID TEXT,
    PartyCode TEXT,
    ReceiptNo TEXT,
    ReceiptDate TEXT,
    ChqNo TEXT,
    ChqDate TEXT,
    ChqAmt TEXT,
    BankName TEXT,
    Branch TEXT,
    BounceDate TEXT,
    userid TEXT
);`

	createROBankCustomer = `CREATE TABLE IF NOT EXISTS RO_BankCustomer (
    PartyCode TEXT,
    BankName TEXT,
    AccountNo TEXT,
    IFSC TEXT,
    BankBranch TEXT,
    userid TEXT
);`

	createOutletAssetInformation = `CREATE TABLE IF NOT EXISTS OutletAssetInformation (
    CustomerID TEXT,
    AssetID TEXT,
    AssetQRcode TEXT,
    AssetInformation TEXT,
    ScanFlag TEXT,
    userid TEXT
);`

	createAssetTypeClassificationList = `CREATE TABLE IF NOT EXISTS AssetTypeClassificationList (
    AssetTypeID TEXT,
    AssetName TEXT,
    ClassificationList TEXT
);`

	createAssetPlacementVerification = `CREATE TABLE IF NOT EXISTS AssetPlacementVerification (
    OrderID TEXT,
    AssetID TEXT,
    QRCode TEXT,
    ScanStatus TEXT,
    AssetInformation TEXT,
    Remark TEXT,
    Condition TEXT,
    AuditDate TEXT,
    userid TEXT
);`

	createPaymentReceiptLog = `CREATE TABLE IF NOT EXISTS TX_PaymentReceipt_log (
    ID TEXT,
    ReceivedDateTime TEXT,
    PaymentMode TEXT,
    ChequeNo TEXT,
    ChequeDated TEXT,
    BankDetails TEXT,
    Amount TEXT,
    OutletID TEXT,
    Narration TEXT,
    ExecutiveID TEXT
);`

	createCollectionsLog = `CREATE TABLE IF NOT EXISTS TX_Collections_log (
    MobileGenPrimaryKey TEXT,
    InvoiceCode TEXT,
    AllocatedAmount TEXT,
    CollectionDatetime TEXT,
    PartyCode TEXT
);`

	createCollectionsDetailsLog = `CREATE TABLE IF NOT EXISTS TX_CollectionsDetails_log (
    CollectionID TEXT,
    Amount TEXT,
    DiscountType TEXT,
    InvoiceCode TEXT
);`

	createAttendance = `CREATE TABLE IF NOT EXISTS Attendance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    UserId TEXT,
    AttendanceType TEXT,
    AttendanceDate TEXT,
    AttendanceTime TEXT,
    Latitude REAL,
    Longitude REAL,
    Remark TEXT,
    IsDayEnd INTEGER DEFAULT 0,
    SyncFlag INTEGER DEFAULT 0
);`

	createUsesLog = `CREATE TABLE IF NOT EXISTS UsesLog (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    UserId TEXT,
    Activity TEXT,
    DateTime TEXT,
    SyncFlag INTEGER DEFAULT 0
);`
)

// tableDDL lists every table with its CREATE statement. Order is the order
// statements are applied; there are no cross-table constraints so it only
// affects log output.
var tableDDL = []struct {
	name string
	ddl  string
}{
	{"Settings", createSettings},
	{"Setting", createSetting},
	{"MultiEntityUser", createMultiEntityUser},
	{"Sales", createSales},
	{"SalesYTD", createSalesYTD},
	{"Pcustomer", createPcustomer},
	{"PDistributor", createPDistributor},
	{"PItem", createPItem},
	{"Target", createTarget},
	{"OrderMaster", createOrderMaster},
	{"OrderDetails", createOrderDetails},
	{"PJPMaster", createPJPMaster},
	{"Report", createReport},
	{"OnlineParentArea", createOnlineParentArea},
	{"SurveyMaster", createSurveyMaster},
	{"Resources", createResources},
	{"DistributorContacts", createDistributorContacts},
	{"DistributorDataStatus", createDistributorDataStatus},
	{"VW_PendingOrders", createVWPendingOrders},
	{"ReportControlMaster", createReportControlMaster},
	{"uommaster", createUOMMaster},
	{"DiscountMaster", createDiscountMaster},
	{"SchemeMaster", createSchemeMaster},
	{"PriceListClassification", createPriceListClassification},
	{"MJPMaster", createMJPMaster},
	{"MJPMasterDetails", createMJPMasterDetails},
	{"SubGroupMaster", createSubGroupMaster},
	{"SchemeDetails", createSchemeDetails},
	{"OutstandingDetails", createOutstandingDetails},
	{"ChequeReturnDetails", createChequeReturnDetails},
	{"RO_BankCustomer", createROBankCustomer},
	{"OutletAssetInformation", createOutletAssetInformation},
	{"AssetTypeClassificationList", createAssetTypeClassificationList},
	{"AssetPlacementVerification", createAssetPlacementVerification},
	{"TX_PaymentReceipt_log", createPaymentReceiptLog},
	{"TX_Collections_log", createCollectionsLog},
	{"TX_CollectionsDetails_log", createCollectionsDetailsLog},
	{"Attendance", createAttendance},
	{"UsesLog", createUsesLog},
}

// knownTables is the set of names the maintenance helpers accept.
var knownTables = func() map[string]bool {
	m := make(map[string]bool, len(tableDDL))
	for _, t := range tableDDL {
		m[t.name] = true
	}
	return m
}()

// TableNames returns every table in the schema catalog, in DDL order.
func TableNames() []string {
	names := make([]string, len(tableDDL))
	for i, t := range tableDDL {
		names[i] = t.name
	}
	return names
}

// createTables applies the full schema against the engine. A failing DDL
// statement is logged and skipped so one malformed definition cannot block
// the rest; "already exists" never occurs because every statement uses
// IF NOT EXISTS. The engine state is persisted once after all statements.
func (s *Store) createTables() {
	for _, t := range tableDDL {
		if _, err := s.eng.Execute(t.ddl); err != nil {
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			serr := &types.SchemaError{Table: t.name, Err: err}
			s.log.WithField("table", t.name).WithError(serr).Error("schema apply failed")
		}
	}
}
