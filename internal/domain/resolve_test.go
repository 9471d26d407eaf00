package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDistrict(t *testing.T) {
	catalog := NewAssamCatalog()
	aliases := AssamCityAliases()

	t.Run("alias maps city to catalog district", func(t *testing.T) {
		addr := Address{State: "Assam", City: "Guwahati"}
		res := ResolveDistrict(addr, catalog, aliases)

		require.Equal(t, ResolutionMatched, res.Status)
		assert.Equal(t, "0426", res.District.Code)
		assert.Equal(t, "Kamrup Metropolitan", res.District.Name)
		assert.Equal(t, "Guwahati", res.City)
		assert.Equal(t, "Assam", res.Region)
	})

	t.Run("provider district used when no alias matches", func(t *testing.T) {
		addr := Address{State: "Assam", City: "Some Village", District: "Jorhat"}
		res := ResolveDistrict(addr, catalog, aliases)

		require.Equal(t, ResolutionMatched, res.Status)
		assert.Equal(t, "0415", res.District.Code)
	})

	t.Run("state match is case-insensitive and substring-based", func(t *testing.T) {
		addr := Address{State: "assam, india", District: "Nagaon district"}
		res := ResolveDistrict(addr, catalog, aliases)

		require.Equal(t, ResolutionMatched, res.Status)
		assert.Equal(t, "0413", res.District.Code)
	})

	t.Run("outside the supported state", func(t *testing.T) {
		addr := Address{State: "West Bengal", City: "Kolkata", District: "Kolkata"}
		res := ResolveDistrict(addr, catalog, aliases)

		require.Equal(t, ResolutionOutOfRegion, res.Status)
		assert.Equal(t, "West Bengal", res.Region)
		assert.Equal(t, "Kolkata", res.City)
		assert.Empty(t, res.District.Code)
	})

	t.Run("in state but not attributable to a catalog district", func(t *testing.T) {
		addr := Address{State: "Assam", City: "Somewhere", District: "Unmapped Place"}
		res := ResolveDistrict(addr, catalog, aliases)

		assert.Equal(t, ResolutionOutOfRegion, res.Status)
	})

	t.Run("empty address is unknown", func(t *testing.T) {
		res := ResolveDistrict(Address{}, catalog, aliases)

		assert.Equal(t, ResolutionUnknown, res.Status)
	})
}

func TestCatalogMatchName(t *testing.T) {
	catalog := NewAssamCatalog()

	t.Run("exact name", func(t *testing.T) {
		d, ok := catalog.MatchName("Cachar")
		require.True(t, ok)
		assert.Equal(t, "0423", d.Code)
	})

	t.Run("catalog name inside longer free text", func(t *testing.T) {
		d, ok := catalog.MatchName("Kamrup Metropolitan District, Assam")
		require.True(t, ok)
		assert.Equal(t, "0426", d.Code)
	})

	t.Run("bare Kamrup resolves to Kamrup, not the metro district", func(t *testing.T) {
		d, ok := catalog.MatchName("Kamrup")
		require.True(t, ok)
		assert.Equal(t, "0407", d.Code)
	})

	t.Run("longer overlapping names are tried first", func(t *testing.T) {
		d, ok := catalog.MatchName("West Karbi Anglong")
		require.True(t, ok)
		assert.Equal(t, "0434", d.Code)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		d, ok := catalog.MatchName("tinsukia")
		require.True(t, ok)
		assert.Equal(t, "0418", d.Code)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := catalog.MatchName("Pune")
		assert.False(t, ok)
	})

	t.Run("empty name never matches", func(t *testing.T) {
		_, ok := catalog.MatchName("")
		assert.False(t, ok)
	})
}

func TestAliasTableLookup(t *testing.T) {
	aliases := AssamCityAliases()

	name, ok := aliases.Lookup("GUWAHATI")
	require.True(t, ok)
	assert.Equal(t, "Kamrup Metropolitan", name)

	_, ok = aliases.Lookup("Shillong")
	assert.False(t, ok)
}

func TestCatalogDistricts(t *testing.T) {
	catalog := NewAssamCatalog()

	districts := catalog.Districts()
	assert.Equal(t, catalog.Len(), len(districts))
	assert.Equal(t, "Baksa", districts[0].Name)

	// Mutating the returned slice must not touch the catalog.
	districts[0].Name = "changed"
	fresh := catalog.Districts()
	assert.Equal(t, "Baksa", fresh[0].Name)
}
