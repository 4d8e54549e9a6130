package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"estate-backend/internal/database"
	"estate-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedProperty(t *testing.T, db *gorm.DB, typ models.PropertyType, status models.PropertyStatus, price float64) {
	t.Helper()
	p := models.Property{
		Title:        "Listing",
		PropertyType: typ,
		Status:       status,
		Price:        price,
		Area:         1000,
		Address:      "1 Main St",
		City:         "Austin",
		State:        "TX",
		ZipCode:      "73301",
		Country:      "USA",
	}
	require.NoError(t, db.Create(&p).Error)
}

func seedFinance(t *testing.T, db *gorm.DB, typ string, amount float64, date models.Date) {
	t.Helper()
	rec := models.FinanceRecord{
		Type:        typ,
		Category:    "general",
		Amount:      amount,
		Description: "seed",
		Date:        date,
	}
	require.NoError(t, db.Create(&rec).Error)
}

func TestComputeEmptyStore(t *testing.T) {
	db := newTestDB(t)

	stats, err := Compute(db, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, stats.TotalProperties)
	assert.Zero(t, stats.TotalCustomers)
	assert.Zero(t, stats.ActiveLeads)
	assert.Equal(t, 0.0, stats.MonthlyRevenue)
	assert.Equal(t, 0.0, stats.MonthlyExpenses)
	assert.Equal(t, 0.0, stats.NetProfit)
	assert.Equal(t, 0.0, stats.AveragePropertyPrice, "average must be 0 for an empty store, not NaN")
	assert.Equal(t, 0.0, stats.TotalSalesVolume)
	for _, typ := range models.PropertyTypes() {
		count, ok := stats.PropertiesByType[string(typ)]
		assert.True(t, ok, "type %s must be present", typ)
		assert.Zero(t, count)
	}
	assert.Empty(t, stats.SalesByMonth)
	assert.Empty(t, stats.TopAgents)
	assert.Empty(t, stats.RecentTransactions)
}

func TestComputeAveragePriceAndTypeBreakdown(t *testing.T) {
	db := newTestDB(t)
	seedProperty(t, db, models.PropertyTypeResidential, models.PropertyStatusAvailable, 100000)
	seedProperty(t, db, models.PropertyTypeCommercial, models.PropertyStatusAvailable, 300000)

	stats, err := Compute(db, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProperties)
	assert.Equal(t, 200000.0, stats.AveragePropertyPrice)
	assert.Equal(t, int64(1), stats.PropertiesByType["residential"])
	assert.Equal(t, int64(1), stats.PropertiesByType["commercial"])
	assert.Equal(t, int64(0), stats.PropertiesByType["land"])
	assert.Equal(t, int64(0), stats.PropertiesByType["industrial"])
}

func TestComputeStatusCounts(t *testing.T) {
	db := newTestDB(t)
	seedProperty(t, db, models.PropertyTypeResidential, models.PropertyStatusAvailable, 100000)
	seedProperty(t, db, models.PropertyTypeResidential, models.PropertyStatusSold, 100000)
	seedProperty(t, db, models.PropertyTypeResidential, models.PropertyStatusLeased, 100000)
	seedProperty(t, db, models.PropertyTypeResidential, models.PropertyStatusOffMarket, 100000)

	stats, err := Compute(db, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalProperties)
	assert.Equal(t, int64(1), stats.AvailableProperties)
	assert.Equal(t, int64(1), stats.SoldProperties)
	assert.Equal(t, int64(1), stats.LeasedProperties)
}

func TestComputeMonthlyWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	// inside the current month, including the first day
	seedFinance(t, db, models.FinanceTypeIncome, 9000, models.NewDate(2026, time.August, 1))
	seedFinance(t, db, models.FinanceTypeIncome, 1000, models.NewDate(2026, time.August, 14))
	seedFinance(t, db, models.FinanceTypeExpense, 2000, models.NewDate(2026, time.August, 10))
	// previous month, must not count
	seedFinance(t, db, models.FinanceTypeIncome, 50000, models.NewDate(2026, time.July, 31))
	seedFinance(t, db, models.FinanceTypeExpense, 7000, models.NewDate(2026, time.July, 2))

	stats, err := Compute(db, now)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, stats.MonthlyRevenue)
	assert.Equal(t, 2000.0, stats.MonthlyExpenses)
	assert.Equal(t, 8000.0, stats.NetProfit)
}

func TestComputeSalesVolume(t *testing.T) {
	db := newTestDB(t)
	for _, price := range []float64{250000, 350000} {
		s := models.Sale{
			PropertyID:       "prop-1",
			CustomerID:       "cust-1",
			AgentID:          "agent-1",
			SalePrice:        price,
			CommissionRate:   0.03,
			CommissionAmount: price * 0.03,
			ContractDate:     models.NewDate(2026, time.July, 1),
			ClosingDate:      models.NewDate(2026, time.August, 1),
			Status:           models.DealStatusClosed,
		}
		require.NoError(t, db.Create(&s).Error)
	}

	stats, err := Compute(db, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 600000.0, stats.TotalSalesVolume)
}

func TestComputeActiveLeadsTracksCustomers(t *testing.T) {
	db := newTestDB(t)
	for _, email := range []string{"a@example.com", "b@example.com"} {
		c := models.Customer{FirstName: "A", LastName: "B", Email: email, Phone: "555"}
		require.NoError(t, db.Create(&c).Error)
	}

	stats, err := Compute(db, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.ActiveLeads)
}
