package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		passengers Passengers
		oneWay     bool
		want       float64
	}{
		{"single adult round trip", 1000, Passengers{Adults: 1}, false, 1000},
		{"single adult one way", 1000, Passengers{Adults: 1}, true, 500},
		{"two adults one child", 1000, Passengers{Adults: 2, Children: 1}, false, 2750},
		{"adult and infant", 1000, Passengers{Adults: 1, Infants: 1}, false, 1100},
		{"full mix one way", 1000, Passengers{Adults: 2, Children: 1, Infants: 1}, true, 1425},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Display(tt.price, tt.passengers, tt.oneWay))
		})
	}
}

func TestApplyCabinMultiplier(t *testing.T) {
	assert.Equal(t, 1000.0, ApplyCabinMultiplier(1000, CabinMultiplierEconomy))
	assert.Equal(t, 2500.0, ApplyCabinMultiplier(1000, CabinMultiplierBusiness))
	assert.Equal(t, 4000.0, ApplyCabinMultiplier(1000, CabinMultiplierFirst))
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 1001.0, RoundCurrency(1000.6))
	assert.Equal(t, 1000.0, RoundCurrency(1000.4))
}

func TestGramsToKilograms(t *testing.T) {
	assert.Equal(t, 1.0, GramsToKilograms(1000))
	assert.Equal(t, 1.5, GramsToKilograms(1500))
	assert.Equal(t, 0.0, GramsToKilograms(0))
}
