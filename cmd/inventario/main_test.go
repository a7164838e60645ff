package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-storage/internal/application/inventory"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/memory"
)

func demoEngine(t *testing.T) *inventory.Engine {
	t.Helper()
	e := inventory.NewEngine(memory.NewStore(), inventory.WithDemoData(true))
	require.NoError(t, e.Initialize(context.Background()))
	return e
}

func TestReorderFlags(t *testing.T) {
	assert.Equal(t, []string{"--latin1", "out.csv"}, reorderFlags([]string{"out.csv", "--latin1"}))
	assert.Equal(t, []string{"out.csv"}, reorderFlags([]string{"out.csv"}))
	assert.Empty(t, reorderFlags(nil))
}

func TestLocation(t *testing.T) {
	loc, err := location("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = location("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = location("Marte/Olympus")
	assert.Error(t, err)
}

func TestPrintLowStock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printLowStock(context.Background(), demoEngine(t), &buf))
	assert.Contains(t, buf.String(), "PROD003")
	assert.NotContains(t, buf.String(), "PROD001")
}

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReport(context.Background(), demoEngine(t), &buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 3, got["activeProducts"])
}
