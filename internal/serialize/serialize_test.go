package serialize

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-backend/internal/models"
)

func TestRecordRendersIdentifierUnderID(t *testing.T) {
	id := uuid.New()
	prop := models.Property{
		ID:           id,
		Title:        "Sunset Villa",
		PropertyType: models.PropertyTypeResidential,
		Status:       models.PropertyStatusAvailable,
		Price:        450000,
		Area:         2100,
		CreatedAt:    time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
	}

	out := Record(&prop)
	require.NotNil(t, out)
	assert.Equal(t, id.String(), out["id"])
	assert.Equal(t, "2026-08-01T12:30:00Z", out["created_at"])
	assert.Equal(t, 450000.0, out["price"])
	assert.Nil(t, out["bedrooms"])
}

func TestRecordRendersDatesAsCalendarDays(t *testing.T) {
	s := models.Sale{
		ID:           uuid.New(),
		PropertyID:   "prop-1",
		ContractDate: models.NewDate(2026, time.August, 1),
		ClosingDate:  models.NewDate(2026, time.September, 15),
		Status:       models.DealStatusProspecting,
	}

	out := Record(&s)
	assert.Equal(t, "2026-08-01", out["contract_date"])
	assert.Equal(t, "2026-09-15", out["closing_date"])
}

func TestDocumentRecursesDepthFirst(t *testing.T) {
	id := uuid.New()
	doc := map[string]any{
		"id":   id,
		"when": time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		"nested": map[string]any{
			"agent": id,
			"tags":  []any{"a", time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
		},
		"missing": nil,
	}

	out, ok := Document(doc).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id.String(), out["id"])
	assert.Equal(t, "2026-08-01T00:00:00Z", out["when"])
	nested := out["nested"].(map[string]any)
	assert.Equal(t, id.String(), nested["agent"])
	tags := nested["tags"].([]any)
	assert.Equal(t, "a", tags[0])
	assert.Equal(t, "2026-08-02T00:00:00Z", tags[1])
	assert.Nil(t, out["missing"])
}

func TestDocumentIsIdempotent(t *testing.T) {
	doc := map[string]any{
		"id":      uuid.New(),
		"when":    time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		"date":    models.NewDate(2026, time.August, 1),
		"notes":   []any{"one", "two"},
		"nothing": nil,
	}

	once := Document(doc)
	twice := Document(once)
	assert.Equal(t, once, twice)
}

func TestDocumentIdempotentOnRecord(t *testing.T) {
	prop := models.Property{
		ID:           uuid.New(),
		Title:        "Sunset Villa",
		PropertyType: models.PropertyTypeResidential,
		Status:       models.PropertyStatusAvailable,
		Price:        450000,
		Area:         2100,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	once := Record(&prop)
	twice := Document(once)
	assert.Equal(t, map[string]any(once), twice)
}

func TestDocumentPassthrough(t *testing.T) {
	assert.Nil(t, Document(nil))
	assert.Equal(t, "plain", Document("plain"))
	assert.Equal(t, 42, Document(42))
	assert.Equal(t, 3.14, Document(3.14))
	assert.Equal(t, true, Document(true))
}

func TestRecordNilPointer(t *testing.T) {
	var prop *models.Property
	assert.Nil(t, Record(prop))
}
