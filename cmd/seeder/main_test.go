package main

import (
	"testing"

	"github.com/carvisor/carvisor/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeCar(t *testing.T) {
	entry := catalog.Default().Entries()[0]
	text := describeCar(entry)

	assert.Contains(t, text, entry.Name)
	assert.Contains(t, text, "priced between")
	for _, purpose := range entry.Purposes {
		assert.Contains(t, text, purpose)
	}
}

func TestLoadCatalog_Default(t *testing.T) {
	cars, err := loadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(), cars.Len())
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := loadCatalog("/nonexistent/cars.toml")
	assert.Error(t, err)
}
