package storage

import (
	"testing"
	"time"

	"github.com/poiesic/toolscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("ChatGPT")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalToolRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name   string
		record *core.ToolRecord
	}{
		{
			name: "minimal record",
			record: &core.ToolRecord{
				Id:         core.ID(1),
				Name:       "ChatGPT",
				Category:   "Chatbots",
				Pricing:    "Freemium",
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "record with summary and vector",
			record: &core.ToolRecord{
				Id:         core.IDFromContent("Midjourney"),
				Name:       "Midjourney",
				Category:   "Image Generation",
				Pricing:    "Paid",
				Summary:    "Generates images from natural language prompts.",
				Vector:     []float32{0.1, 0.2, 0.3, 0.4, 0.5},
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "unicode name",
			record: &core.ToolRecord{
				Id:         core.ID(7),
				Name:       "翻訳ツール",
				Category:   "Translation",
				Pricing:    "Free",
				Summary:    "Unicode handling check",
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalToolRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalToolRecord(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.record.Id, decoded.Id)
			assert.Equal(t, tt.record.Name, decoded.Name)
			assert.Equal(t, tt.record.Category, decoded.Category)
			assert.Equal(t, tt.record.Pricing, decoded.Pricing)
			assert.Equal(t, tt.record.Summary, decoded.Summary)
			assert.True(t, tt.record.InsertedAt.Equal(decoded.InsertedAt))
			assert.True(t, tt.record.UpdatedAt.Equal(decoded.UpdatedAt))
			if len(tt.record.Vector) == 0 {
				assert.Empty(t, decoded.Vector)
			} else {
				assert.Equal(t, tt.record.Vector, decoded.Vector)
			}
		})
	}
}

func TestUnmarshalToolRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalToolRecord(tt.data)
			assert.Error(t, err)
		})
	}
}
