package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuditLog_SetMetadata(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    interface{}
		expected JSONBMap
	}{
		{
			name:  "set string value",
			key:   "upload_id",
			value: "upload-1",
			expected: JSONBMap{
				"upload_id": "upload-1",
			},
		},
		{
			name:  "set numeric value",
			key:   "bucket_count",
			value: 3,
			expected: JSONBMap{
				"bucket_count": 3,
			},
		},
		{
			name:  "set boolean value",
			key:   "persisted",
			value: true,
			expected: JSONBMap{
				"persisted": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &AuditLog{}
			log.SetMetadata(tt.key, tt.value)
			assert.NotNil(t, log.Metadata)
			assert.Equal(t, tt.expected, log.Metadata)
		})
	}
}

func TestAuditLog_GetMetadata(t *testing.T) {
	m := JSONBMap{
		"upload_id":    "upload-1",
		"bucket_count": float64(3),
		"persisted":    true,
	}
	log := &AuditLog{
		Metadata: m,
	}

	tests := []struct {
		name         string
		key          string
		defaultValue interface{}
		expected     interface{}
	}{
		{
			name:         "get existing string value",
			key:          "upload_id",
			defaultValue: "",
			expected:     "upload-1",
		},
		{
			name:         "get existing numeric value",
			key:          "bucket_count",
			defaultValue: 0,
			expected:     float64(3),
		},
		{
			name:         "get existing boolean value",
			key:          "persisted",
			defaultValue: false,
			expected:     true,
		},
		{
			name:         "get non-existing value returns default",
			key:          "nonexistent",
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := log.GetMetadata(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAuditLog_String(t *testing.T) {
	log := &AuditLog{
		Action:     AuditActionStatementTransformed,
		Resource:   AuditResourceStatement,
		ResourceID: "upload-123",
		IPAddress:  "192.168.1.1",
	}

	str := log.String()
	assert.Contains(t, str, "statement_transformed")
	assert.Contains(t, str, "statement/upload-123")
	assert.Contains(t, str, "Trace: none")
	assert.Contains(t, str, "192.168.1.1")
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{}
	assert.NoError(t, log.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())

	id := uuid.New()
	kept := &AuditLog{ID: id}
	assert.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, id, kept.ID)
}

func TestJSONBMap_ValueAndScan(t *testing.T) {
	value, err := JSONBMap(nil).Value()
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = JSONBMap{"bucket_count": 2}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `{"bucket_count":2}`, value)

	var scanned JSONBMap
	assert.NoError(t, scanned.Scan([]byte(`{"warnings":1}`)))
	assert.Equal(t, float64(1), scanned["warnings"])

	assert.NoError(t, scanned.Scan(`{"errors":0}`))
	assert.Equal(t, float64(0), scanned["errors"])

	assert.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))
}
