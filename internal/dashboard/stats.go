package dashboard

import (
	"time"

	"estate-backend/internal/models"

	"gorm.io/gorm"
)

type Stats struct {
	TotalProperties      int64            `json:"total_properties"`
	AvailableProperties  int64            `json:"available_properties"`
	SoldProperties       int64            `json:"sold_properties"`
	LeasedProperties     int64            `json:"leased_properties"`
	TotalCustomers       int64            `json:"total_customers"`
	ActiveLeads          int64            `json:"active_leads"`
	MonthlyRevenue       float64          `json:"monthly_revenue"`
	MonthlyExpenses      float64          `json:"monthly_expenses"`
	NetProfit            float64          `json:"net_profit"`
	TotalSalesVolume     float64          `json:"total_sales_volume"`
	AveragePropertyPrice float64          `json:"average_property_price"`
	PropertiesByType     map[string]int64 `json:"properties_by_type"`
	SalesByMonth         []map[string]any `json:"sales_by_month"`
	TopAgents            []map[string]any `json:"top_agents"`
	RecentTransactions   []map[string]any `json:"recent_transactions"`
}

// Compute builds the dashboard snapshot from the store's current contents.
// Monthly figures cover the calendar month containing now. Any store error
// aborts the whole computation; no partial snapshot is returned.
func Compute(db *gorm.DB, now time.Time) (*Stats, error) {
	s := &Stats{
		PropertiesByType: make(map[string]int64, len(models.PropertyTypes())),
		// breakdowns not implemented yet, kept as empty collections so
		// the response shape is stable
		SalesByMonth:       []map[string]any{},
		TopAgents:          []map[string]any{},
		RecentTransactions: []map[string]any{},
	}

	if err := db.Model(&models.Property{}).Count(&s.TotalProperties).Error; err != nil {
		return nil, err
	}
	if err := countByStatus(db, models.PropertyStatusAvailable, &s.AvailableProperties); err != nil {
		return nil, err
	}
	if err := countByStatus(db, models.PropertyStatusSold, &s.SoldProperties); err != nil {
		return nil, err
	}
	if err := countByStatus(db, models.PropertyStatusLeased, &s.LeasedProperties); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Customer{}).Count(&s.TotalCustomers).Error; err != nil {
		return nil, err
	}
	// stand-in until lead tracking exists
	s.ActiveLeads = s.TotalCustomers

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var err error
	if s.MonthlyRevenue, err = monthlyFinanceTotal(db, models.FinanceTypeIncome, monthStart); err != nil {
		return nil, err
	}
	if s.MonthlyExpenses, err = monthlyFinanceTotal(db, models.FinanceTypeExpense, monthStart); err != nil {
		return nil, err
	}
	s.NetProfit = s.MonthlyRevenue - s.MonthlyExpenses

	type typeRow struct {
		PropertyType string `gorm:"column:property_type"`
		Total        int64  `gorm:"column:total"`
	}
	var rows []typeRow
	if err := db.Model(&models.Property{}).
		Select("property_type, COUNT(*) AS total").
		Group("property_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, t := range models.PropertyTypes() {
		s.PropertiesByType[string(t)] = 0
	}
	for _, r := range rows {
		s.PropertiesByType[r.PropertyType] = r.Total
	}

	type totalRow struct {
		Total float64 `gorm:"column:total"`
	}
	var avg totalRow
	if err := db.Model(&models.Property{}).
		Select("COALESCE(AVG(price), 0) AS total").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	s.AveragePropertyPrice = avg.Total

	var volume totalRow
	if err := db.Model(&models.Sale{}).
		Select("COALESCE(SUM(sale_price), 0) AS total").
		Scan(&volume).Error; err != nil {
		return nil, err
	}
	s.TotalSalesVolume = volume.Total

	return s, nil
}

func countByStatus(db *gorm.DB, status models.PropertyStatus, out *int64) error {
	return db.Model(&models.Property{}).Where("status = ?", status).Count(out).Error
}

func monthlyFinanceTotal(db *gorm.DB, financeType string, monthStart time.Time) (float64, error) {
	var row struct {
		Total float64 `gorm:"column:total"`
	}
	err := db.Model(&models.FinanceRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("type = ? AND date >= ?", financeType, monthStart).
		Scan(&row).Error
	return row.Total, err
}
