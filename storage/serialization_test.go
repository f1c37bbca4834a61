package storage

import (
	"testing"
	"time"

	"github.com/carvisor/carvisor/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	ids := []core.ID{0, 1, 42, 1 << 40, core.IDFromContent("printer01")}

	for _, id := range ids {
		data := MarshalID(id)
		got, err := UnmarshalID(data)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	doc := &core.Document{
		Id:      core.IDFromContent("printer troubleshooting"),
		Content: "Printer not working: check power cable, ensure printer is online.",
		Source:  "it_helpdesk.txt",
		Metadata: map[string]string{
			"description": "IT helpdesk knowledge base",
			"chunk":       "3",
		},
		Vector:     []float32{0.25, -0.5, 0.125, 1.0},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	data := MarshalDocument(doc)
	got, err := UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, doc.Id, got.Id)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, doc.Source, got.Source)
	assert.Equal(t, doc.Metadata, got.Metadata)
	assert.Equal(t, doc.Vector, got.Vector)
	assert.True(t, doc.InsertedAt.Equal(got.InsertedAt))
	assert.True(t, doc.UpdatedAt.Equal(got.UpdatedAt))
}

func TestMarshalDocument_EmptyOptionalFields(t *testing.T) {
	doc := &core.Document{
		Content: "bare document",
		Source:  "test",
	}

	data := MarshalDocument(doc)
	got, err := UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, doc.Content, got.Content)
	assert.Nil(t, got.Metadata)
	assert.Nil(t, got.Vector)
}

func TestMarshalDocument_Deterministic(t *testing.T) {
	doc := &core.Document{
		Content: "deterministic",
		Source:  "test",
		Metadata: map[string]string{
			"b": "2", "a": "1", "c": "3",
		},
	}

	first := MarshalDocument(doc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MarshalDocument(doc))
	}
}

func TestUnmarshalDocument_Garbage(t *testing.T) {
	_, err := UnmarshalDocument([]byte{0xff})
	assert.Error(t, err)
}
