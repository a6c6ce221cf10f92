package selection

import (
	"sync"
	"testing"

	"tzlon-api/internal/conversion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSelection_Updates(t *testing.T) {
	tests := []struct {
		name              string
		apply             func(s *Selection) View
		expectedLongitude float64
		expectedLatitude  float64
		expectedOffset    string
	}{
		{
			name:              "degrees",
			apply:             func(s *Selection) View { return s.SetFromDegrees(-82.5) },
			expectedLongitude: -82.5,
			expectedOffset:    "-05:30:00.000",
		},
		{
			name:              "degrees are clamped",
			apply:             func(s *Selection) View { return s.SetFromDegrees(200) },
			expectedLongitude: 180,
			expectedOffset:    "+12:00:00.000",
		},
		{
			name:              "hours",
			apply:             func(s *Selection) View { return s.SetFromHours(2) },
			expectedLongitude: 30,
			expectedOffset:    "+02:00:00.000",
		},
		{
			name:              "hours are capped",
			apply:             func(s *Selection) View { return s.SetFromHours(-14) },
			expectedLongitude: -180,
			expectedOffset:    "-12:00:00.000",
		},
		{
			name: "dms",
			apply: func(s *Selection) View {
				return s.SetFromDMS(conversion.DMS{Sign: conversion.Negative, Degrees: 45})
			},
			expectedLongitude: -45,
			expectedOffset:    "-03:00:00.000",
		},
		{
			name: "hms",
			apply: func(s *Selection) View {
				return s.SetFromHMS(conversion.HMS{Sign: conversion.Positive, Hours: 5, Minutes: 30})
			},
			expectedLongitude: 82.5,
			expectedOffset:    "+05:30:00.000",
		},
		{
			name:              "map click",
			apply:             func(s *Selection) View { return s.SetFromMapClick(95, 15) },
			expectedLongitude: 15,
			expectedLatitude:  90,
			expectedOffset:    "+01:00:00.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()

			v := tt.apply(s)

			assert.InDelta(t, tt.expectedLongitude, v.Longitude, 1e-9)
			assert.Equal(t, tt.expectedLatitude, v.Latitude)
			assert.Equal(t, tt.expectedOffset, v.OffsetFormatted)
			assert.Equal(t, v, s.View())
		})
	}
}

func TestSelection_MapClickKeepsLatitudeForLaterUpdates(t *testing.T) {
	s := New()
	s.SetFromMapClick(35.68, 139.77)

	v := s.SetFromHours(9)

	assert.Equal(t, 35.68, v.Latitude)
	assert.Equal(t, 135.0, v.Longitude)
	assert.Equal(t, `E 135° 0' 0.000"`, v.LongitudeFormatted)
}

func TestSelection_Subscribe(t *testing.T) {
	s := New()

	var got []float64
	cancel := s.Subscribe(func(v View) { got = append(got, v.Longitude) })

	s.SetFromDegrees(10)
	s.SetFromHours(1)
	cancel()
	s.SetFromDegrees(20)

	assert.Equal(t, []float64{10, 15}, got)
}

func TestSelection_Close(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func(View) { calls++ })

	s.Close()
	s.Close()

	select {
	case <-s.Done():
	default:
		t.Fatal("done channel not closed")
	}

	v := s.SetFromDegrees(30)
	assert.Equal(t, 30.0, v.Longitude)
	assert.Zero(t, calls)
}

func TestSelection_ConcurrentUpdates(t *testing.T) {
	s := New()

	var mu sync.Mutex
	seen := 0
	s.Subscribe(func(View) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetFromDegrees(float64(i))
			s.View()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, seen)
}

func TestStore(t *testing.T) {
	store, err := NewStore(2)
	require.NoError(t, err)

	id1, first := store.Create()
	id2, _ := store.Create()
	assert.NotEqual(t, id1, id2)

	got, ok := store.Get(id1)
	require.True(t, ok)
	assert.Same(t, first, got)

	// id1 was used last, so id2 is evicted
	id3, _ := store.Create()
	_, ok = store.Get(id2)
	assert.False(t, ok)
	_, ok = store.Get(id3)
	assert.True(t, ok)
	assert.Equal(t, 2, store.Len())

	_, err = NewStore(0)
	assert.Error(t, err)
}

func TestStore_EvictionClosesSelection(t *testing.T) {
	store, err := NewStore(1)
	require.NoError(t, err)

	_, first := store.Create()
	store.Create()

	select {
	case <-first.Done():
	default:
		t.Fatal("evicted selection was not closed")
	}
}
