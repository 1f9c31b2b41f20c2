package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileCatalog_LoadJSON(t *testing.T) {
	path := writeCatalog(t, "restaurants.json", `[
		{"_id":"r1","name":"Reddys Kitchen","cuisine":"Indian","rating":4.6,"time":"30 mins",
		 "menu":[{"name":"Chicken Biryani","price":240,"category":"Biryani"},{"name":"Veg Meals","price":150,"veg":true}]}
	]`)

	restaurants, err := NewFileCatalog(path).Load()
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	r := restaurants[0]
	assert.Equal(t, "r1", r.ID)
	assert.Empty(t, r.Image)
	require.Len(t, r.Menu, 2)
	assert.Nil(t, r.Menu[0].Veg)
	assert.Nil(t, r.Menu[0].Rating)
	require.NotNil(t, r.Menu[1].Veg)
	assert.True(t, *r.Menu[1].Veg)
}

func TestFileCatalog_LoadYAML(t *testing.T) {
	path := writeCatalog(t, "restaurants.yaml", `
- _id: r2
  name: Shoel Biriyani
  cuisine: Arabian
  rating: 4.5
  time: 32 mins
  emoji: "🍗"
  menu:
    - name: Mandi Special
      price: 420
      category: Mandi
      rating: 4.8
`)

	restaurants, err := NewFileCatalog(path).Load()
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Arabian", restaurants[0].Cuisine)
	require.NotNil(t, restaurants[0].Menu[0].Rating)
	assert.Equal(t, 4.8, *restaurants[0].Menu[0].Rating)
}

func TestFileCatalog_Errors(t *testing.T) {
	_, err := NewFileCatalog(filepath.Join(t.TempDir(), "missing.json")).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeCatalog(t, "restaurants.json", `{"broken":`)
	_, err = NewFileCatalog(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse restaurants.json")
}

func TestFileCatalog_EmptyFileYieldsEmptyCatalog(t *testing.T) {
	path := writeCatalog(t, "restaurants.json", `[]`)

	restaurants, err := NewFileCatalog(path).Load()
	require.NoError(t, err)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)
}
