package coords

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want CoordType
	}{
		{"basin easting northing", 583000, 4450000, TypeUTM},
		{"false-origin easting", 500000, 5360194.4, TypeUTM},
		{"lat lon pair", 40.2, -110.1, TypeLatLon},
		{"negative easting", -583000, 4450000, TypeUnknown},
		{"northing overflow", 583000, 10000001, TypeUnknown},
		{"ambiguous pair prefers utm", 600000, 80, TypeUTM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.x, tt.y))
		})
	}
}

func TestCoordTypeString(t *testing.T) {
	assert.Equal(t, "utm", TypeUTM.String())
	assert.Equal(t, "latlon", TypeLatLon.String())
	assert.Equal(t, "unknown", TypeUnknown.String())
}

func TestFeetMetersRoundTrip(t *testing.T) {
	assert.InDelta(t, 30.48, FeetToMeters(100), 1e-12)
	assert.InDelta(t, 100, MetersToFeet(FeetToMeters(100)), 1e-12)
}

func TestStatePlaneFeetToMeters(t *testing.T) {
	e, n := StatePlaneFeetToMeters(2000000, 7000000)
	assert.InDelta(t, 609600, e, 1e-9)
	assert.InDelta(t, 2133600, n, 1e-9)
}

func TestUTMRoundTrip(t *testing.T) {
	// A point in the Uinta Basin, the native territory of these records.
	ll := s2.LatLngFromDegrees(40.2577395, -109.9383306)

	u, err := FromLatLon(ll)
	require.NoError(t, err)
	assert.Equal(t, 12, u.Zone)
	assert.Equal(t, byte('T'), u.Band)

	back, err := ToLatLon(u.Easting, u.Northing, u.Zone, u.Band)
	require.NoError(t, err)
	assert.InDelta(t, ll.Lat.Degrees(), back.Lat.Degrees(), 1e-6)
	assert.InDelta(t, ll.Lng.Degrees(), back.Lng.Degrees(), 1e-6)
}

func TestUTMSouthernHemisphere(t *testing.T) {
	ll := s2.LatLngFromDegrees(-33.8688, 151.2093)

	u, err := FromLatLon(ll)
	require.NoError(t, err)
	assert.Less(t, u.Band, byte('N'))
	assert.Greater(t, u.Northing, 5000000.0)

	back, err := ToLatLon(u.Easting, u.Northing, u.Zone, u.Band)
	require.NoError(t, err)
	assert.InDelta(t, ll.Lat.Degrees(), back.Lat.Degrees(), 1e-6)
	assert.InDelta(t, ll.Lng.Degrees(), back.Lng.Degrees(), 1e-6)
}

func TestToLatLonRejectsBadInput(t *testing.T) {
	_, err := ToLatLon(583000, 4450000, 0, 'T')
	assert.Error(t, err)

	_, err = ToLatLon(50, 4450000, 12, 'T')
	assert.Error(t, err)

	_, err = ToLatLon(583000, -5, 12, 'T')
	assert.Error(t, err)
}

func TestFromLatLonRejectsPolarLatitudes(t *testing.T) {
	_, err := FromLatLon(s2.LatLngFromDegrees(-85, 10))
	assert.Error(t, err)
}

func TestOffsetByMeters(t *testing.T) {
	start := s2.LatLngFromDegrees(40, -110)

	north := OffsetByMeters(start, 0, 1000)
	assert.Greater(t, north.Lat.Degrees(), start.Lat.Degrees())
	assert.InDelta(t, start.Lng.Degrees(), north.Lng.Degrees(), 1e-12)
	assert.InDelta(t, 1000, Distance(start, north), 1.0)

	east := OffsetByMeters(start, 1000, 0)
	assert.Greater(t, east.Lng.Degrees(), start.Lng.Degrees())
	assert.InDelta(t, 1000, Distance(start, east), 1.0)
}

func TestInitialBearingCardinals(t *testing.T) {
	origin := s2.LatLngFromDegrees(40, -110)
	assert.InDelta(t, 0, InitialBearing(origin, s2.LatLngFromDegrees(41, -110)), 1e-9)
	assert.InDelta(t, 180, InitialBearing(origin, s2.LatLngFromDegrees(39, -110)), 1e-9)
	assert.InDelta(t, 90, InitialBearing(origin, s2.LatLngFromDegrees(40, -109)), 0.5)
	assert.InDelta(t, 270, InitialBearing(origin, s2.LatLngFromDegrees(40, -111)), 0.5)
}

func TestGridBearing(t *testing.T) {
	assert.InDelta(t, 0, GridBearing(0, 0, 0, 10), 1e-12)
	assert.InDelta(t, 90, GridBearing(0, 0, 10, 0), 1e-12)
	assert.InDelta(t, 180, GridBearing(0, 0, 0, -10), 1e-12)
	assert.InDelta(t, 270, GridBearing(0, 0, -10, 0), 1e-12)
	assert.InDelta(t, 45, GridBearing(0, 0, 10, 10), 1e-12)
}

func TestDestinationRoundTrip(t *testing.T) {
	start := s2.LatLngFromDegrees(40.25, -109.94)
	end := Destination(start, 1609.344, 45)

	assert.InDelta(t, 1609.344, Distance(start, end), 0.01)
	assert.InDelta(t, 45, InitialBearing(start, end), 0.01)
}

func TestGridConvergence(t *testing.T) {
	// Convergence vanishes on the central meridian and grows away from it.
	assert.InDelta(t, 0, GridConvergence(40.25, 111, 12), 1e-9)

	got := GridConvergence(40.2577395, 109.9383306, 12)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)

	// Zone 11 measures from its own central meridian.
	assert.InDelta(t, 0, GridConvergence(40.25, 117, 11), 1e-9)
}

func TestStatePlaneConvergence(t *testing.T) {
	got, err := StatePlaneConvergence(2, 40.2577395, -109.9383306)
	require.NoError(t, err)
	assert.InDelta(t, (111.5-109.9383306)*0.640578596, got, 1e-9)

	// UTM input is projected before the convergence formula runs.
	u, err := FromLatLon(s2.LatLngFromDegrees(40.2577395, -109.9383306))
	require.NoError(t, err)
	fromUTM, err := StatePlaneConvergence(2, u.Easting, u.Northing)
	require.NoError(t, err)
	assert.InDelta(t, got, fromUTM, 1e-4)
}

func TestBandLetter(t *testing.T) {
	assert.Equal(t, byte('T'), bandLetter(40.25))
	assert.Equal(t, byte('C'), bandLetter(-79))
	assert.Equal(t, byte('X'), bandLetter(83))
}

func TestZoneNumberExceptions(t *testing.T) {
	assert.Equal(t, 32, zoneNumber(60, 5))
	assert.Equal(t, 33, zoneNumber(75, 15))
	assert.Equal(t, 12, zoneNumber(40.25, -109.94))
}

func TestNorthern(t *testing.T) {
	assert.True(t, northern('T'))
	assert.False(t, northern('H'))
}

func TestEarthRadiusSanity(t *testing.T) {
	// One degree of latitude is about 111.19 km on the mean sphere.
	oneDeg := EarthRadiusMeters * math.Pi / 180
	assert.InDelta(t, 111195, oneDeg, 5)
}
