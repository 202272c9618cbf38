package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/models"
)

func TestSearchService_SearchByID(t *testing.T) {
	cards := &fakeCardRepository{
		searchByIDFn: func(_ context.Context, q models.SearchByIDQuery) ([]models.Card, error) {
			require.Equal(t, "GHA-123456789-0", q.IDNumber)
			require.Equal(t, models.CardTypeGhanaCard, q.CardType)
			return []models.Card{{
				ID:             "card-1",
				FullID:         "GHA-123456789-0",
				MaskedPublicID: "***********89-0",
				FirstName:      "Kwame",
				LastName:       "Asante",
				DateOfBirth:    time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	svc := NewSearchService(cards, logger.NewLogger("test"))

	results, err := svc.SearchByID(context.Background(), models.SearchByIDQuery{
		IDNumber: "GHA-123456789-0",
		CardType: models.CardTypeGhanaCard,
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "***********89-0", results[0].MaskedPublicID)
	assert.Equal(t, "K", results[0].FirstNameInitial)
	assert.Equal(t, "Asante", results[0].LastName)
	assert.Equal(t, 1990, results[0].DOBYear)
}

func TestSearchService_SearchByID_Validation(t *testing.T) {
	svc := NewSearchService(&fakeCardRepository{}, logger.NewLogger("test"))

	tests := []struct {
		name string
		q    models.SearchByIDQuery
	}{
		{"missing id number", models.SearchByIDQuery{CardType: models.CardTypeGhanaCard}},
		{"one character id number", models.SearchByIDQuery{IDNumber: "9", CardType: models.CardTypeGhanaCard}},
		{"two character id number", models.SearchByIDQuery{IDNumber: "89", CardType: models.CardTypeGhanaCard}},
		{"missing card type", models.SearchByIDQuery{IDNumber: "GHA-1"}},
		{"unknown card type", models.SearchByIDQuery{IDNumber: "GHA-1", CardType: "LIBRARY_CARD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SearchByID(context.Background(), tt.q)
			assert.Error(t, err)
		})
	}
}

func TestSearchService_SearchByID_RepositoryError(t *testing.T) {
	cards := &fakeCardRepository{
		searchByIDFn: func(context.Context, models.SearchByIDQuery) ([]models.Card, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewSearchService(cards, logger.NewLogger("test"))

	_, err := svc.SearchByID(context.Background(), models.SearchByIDQuery{
		IDNumber: "GHA-1",
		CardType: models.CardTypeGhanaCard,
	})
	assert.Error(t, err)
}

func TestSearchService_SearchByPerson(t *testing.T) {
	var gotFrom, gotTo time.Time
	cards := &fakeCardRepository{
		searchByPersonFn: func(_ context.Context, q models.SearchByPersonQuery, from, to time.Time) ([]models.Card, error) {
			require.Equal(t, "Kwame", q.FirstName)
			require.Equal(t, "Asante", q.LastName)
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}
	svc := NewSearchService(cards, logger.NewLogger("test"))

	results, err := svc.SearchByPerson(context.Background(), models.SearchByPersonQuery{
		FirstName: "Kwame",
		LastName:  "Asante",
		DOBYear:   1990,
		DOBMonth:  5,
	})
	require.NoError(t, err)

	// Empty results serialize as [], never null.
	require.NotNil(t, results)
	assert.Len(t, results, 0)

	assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(1990, 5, 31, 23, 59, 59, 999000000, time.UTC), gotTo)
}

func TestSearchService_SearchByPerson_Validation(t *testing.T) {
	svc := NewSearchService(&fakeCardRepository{}, logger.NewLogger("test"))

	tests := []struct {
		name string
		q    models.SearchByPersonQuery
	}{
		{"missing first name", models.SearchByPersonQuery{LastName: "Asante", DOBYear: 1990}},
		{"missing last name", models.SearchByPersonQuery{FirstName: "Kwame", DOBYear: 1990}},
		{"year too early", models.SearchByPersonQuery{FirstName: "Kwame", LastName: "Asante", DOBYear: 1850}},
		{"month out of range", models.SearchByPersonQuery{FirstName: "Kwame", LastName: "Asante", DOBYear: 1990, DOBMonth: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SearchByPerson(context.Background(), tt.q)
			assert.Error(t, err)
		})
	}
}

func TestBirthPeriod(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "whole year",
			year:     1990,
			wantFrom: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(1990, 12, 31, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:     "february of a leap year",
			year:     2000, month: 2,
			wantFrom: time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2000, 2, 29, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:     "february of a common year",
			year:     1999, month: 2,
			wantFrom: time.Date(1999, 2, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(1999, 2, 28, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:     "december rolls into next year",
			year:     1990, month: 12,
			wantFrom: time.Date(1990, 12, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(1990, 12, 31, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:     "thirty-day month",
			year:     1990, month: 4,
			wantFrom: time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(1990, 4, 30, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := birthPeriod(tt.year, tt.month)
			assert.True(t, from.Equal(tt.wantFrom), "from = %v, want %v", from, tt.wantFrom)
			assert.True(t, to.Equal(tt.wantTo), "to = %v, want %v", to, tt.wantTo)
		})
	}
}
