package iata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocationCityAlias(t *testing.T) {
	assert.ElementsMatch(t, []string{"BKK", "DMK"}, ResolveLocation("Bangkok"))
	assert.ElementsMatch(t, []string{"BKK", "DMK"}, ResolveLocation("  bangkok  "))
}

func TestResolveLocationSingleAirportCity(t *testing.T) {
	assert.Equal(t, []string{"HKT"}, ResolveLocation("Phuket"))
	assert.Equal(t, []string{"USM"}, ResolveLocation("Koh Samui"))
}

func TestResolveLocationLiteralCode(t *testing.T) {
	assert.Equal(t, []string{"HKT"}, ResolveLocation("hkt"))
}

func TestResolveLocationUnknown(t *testing.T) {
	assert.Nil(t, ResolveLocation("Nowhereville"))
	assert.Nil(t, ResolveLocation(""))
	assert.Nil(t, ResolveLocation("ZZZ"))
}

func TestProvinceForAirport(t *testing.T) {
	province, ok := ProvinceForAirport("hkt")
	assert.True(t, ok)
	assert.Equal(t, "Phuket", province)

	_, ok = ProvinceForAirport("ZZZ")
	assert.False(t, ok)
}
