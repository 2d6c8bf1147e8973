package models_test

import (
	"encoding/json"
	"testing"

	"toko-core/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnquiryStatus(t *testing.T) {
	status, err := models.ParseEnquiryStatus(" reviewed ")
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusReviewed, status)

	_, err = models.ParseEnquiryStatus("CLOSED")
	assert.Error(t, err)
	_, err = models.ParseEnquiryStatus("")
	assert.Error(t, err)
}

func TestEnquiryStatus_JSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Status models.EnquiryStatus `json:"status"`
	}{models.EnquiryStatusResolved})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"RESOLVED"}`, string(raw))

	var in struct {
		Status models.EnquiryStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"pending"}`), &in))
	assert.Equal(t, models.EnquiryStatusPending, in.Status)
	assert.Error(t, json.Unmarshal([]byte(`{"status":"LOST"}`), &in))

	_, err = json.Marshal(models.EnquiryStatus(0))
	assert.Error(t, err)
}

func TestEnquiryStatus_SQL(t *testing.T) {
	v, err := models.EnquiryStatusReviewed.Value()
	require.NoError(t, err)
	assert.Equal(t, "REVIEWED", v)

	_, err = models.EnquiryStatus(9).Value()
	assert.Error(t, err)

	var s models.EnquiryStatus
	require.NoError(t, s.Scan([]byte("RESOLVED")))
	assert.Equal(t, models.EnquiryStatusResolved, s)
	assert.Error(t, s.Scan(42))
}

func TestCategoryNameKey(t *testing.T) {
	assert.Equal(t, "running shoes", models.CategoryNameKey("  Running SHOES "))
}
