package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/verdetech/verdetech/database"
)

type fakeStore struct {
	users      []database.User
	footprints map[uint]database.Footprint
	quizzes    map[uint]database.QuizResult
	feedbacks  map[uint]database.Feedback
}

func (f *fakeStore) ListUsers(context.Context) ([]database.User, error) {
	return f.users, nil
}

func (f *fakeStore) LatestFootprintPerUser(context.Context) (map[uint]database.Footprint, error) {
	return f.footprints, nil
}

func (f *fakeStore) LatestQuizResultPerUser(context.Context) (map[uint]database.QuizResult, error) {
	return f.quizzes, nil
}

func (f *fakeStore) LatestFeedbackPerUser(context.Context) (map[uint]database.Feedback, error) {
	return f.feedbacks, nil
}

func user(id uint, name, email string, registered time.Time) database.User {
	return database.User{
		Model: gorm.Model{ID: id, CreatedAt: registered},
		Name:  name,
		Email: email,
	}
}

func TestBuildOneRowPerUser(t *testing.T) {
	registered := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	calcAt := time.Date(2025, 2, 1, 18, 45, 12, 0, time.UTC)

	store := &fakeStore{
		users: []database.User{
			user(1, "Ana", "ana@example.com", registered),
			user(2, "Bia", "bia@example.com", registered),
		},
		footprints: map[uint]database.Footprint{
			1: {
				Model:    gorm.Model{ID: 10, CreatedAt: calcAt},
				UserID:   lo.ToPtr(uint(1)),
				TotalCO2: 79.6004,
			},
		},
		quizzes: map[uint]database.QuizResult{
			1: {
				Model:          gorm.Model{ID: 20, CreatedAt: calcAt},
				UserID:         lo.ToPtr(uint(1)),
				Score:          8,
				TotalQuestions: 10,
			},
		},
		feedbacks: map[uint]database.Feedback{},
	}

	rows, err := NewBuilder(store).Build(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	active := rows[0]
	assert.EqualValues(t, 1, active.ID)
	assert.Equal(t, "Ana", active.Name)
	assert.Equal(t, "2025-01-15 09:30:00", active.RegisteredAt)
	require.NotNil(t, active.FootprintTotalCO2)
	assert.Equal(t, 79.6, *active.FootprintTotalCO2)
	require.NotNil(t, active.QuizScore)
	assert.Equal(t, 8, *active.QuizScore)
	assert.Equal(t, 10, *active.QuizTotalQuestions)
	assert.Equal(t, "2025-02-01 18:45:12", *active.LastFootprint)
	assert.Equal(t, "2025-02-01 18:45:12", *active.LastQuiz)
	assert.Nil(t, active.LastFeedback)

	// A user with no activity still gets a row, with every activity field nil.
	idle := rows[1]
	assert.EqualValues(t, 2, idle.ID)
	assert.Nil(t, idle.FootprintTotalCO2)
	assert.Nil(t, idle.QuizScore)
	assert.Nil(t, idle.QuizTotalQuestions)
	assert.Nil(t, idle.LastFootprint)
	assert.Nil(t, idle.LastQuiz)
	assert.Nil(t, idle.LastFeedback)
}

func TestBuildFeedbackUsesRefreshedTimestamp(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	refreshed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	store := &fakeStore{
		users:      []database.User{user(1, "Ana", "ana@example.com", created)},
		footprints: map[uint]database.Footprint{},
		quizzes:    map[uint]database.QuizResult{},
		feedbacks: map[uint]database.Feedback{
			1: {
				Model:  gorm.Model{ID: 5, CreatedAt: created, UpdatedAt: refreshed},
				UserID: 1,
				Rating: 4,
			},
		},
	}

	rows, err := NewBuilder(store).Build(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].LastFeedback)
	assert.Equal(t, "2025-06-01 10:00:00", *rows[0].LastFeedback)
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{
			ID:                 1,
			Name:               "Ana",
			Email:              "ana@example.com",
			FootprintTotalCO2:  lo.ToPtr(79.6),
			QuizScore:          lo.ToPtr(8),
			QuizTotalQuestions: lo.ToPtr(10),
		},
		{
			ID:    2,
			Name:  "Bia",
			Email: "bia@example.com",
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, rows))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id;nome;email;pegada_total_co2;quiz_pontuacao;quiz_total_perguntas", lines[0])
	assert.Equal(t, "1;Ana;ana@example.com;79.6;8;10", lines[1])
	// Missing activity renders as empty cells, not "null" or "0".
	assert.Equal(t, "2;Bia;bia@example.com;;;", lines[2])
}

func TestWriteCSVEmptyReport(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	assert.Equal(t, "id;nome;email;pegada_total_co2;quiz_pontuacao;quiz_total_perguntas\n", sb.String())
}
