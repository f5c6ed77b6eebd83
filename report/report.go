// Package report assembles the per-user admin report and its export formats.
package report

import (
	"context"

	"github.com/samber/lo"

	"github.com/verdetech/verdetech/database"
	"github.com/verdetech/verdetech/footprint"
)

// TimestampFormat is how record timestamps are rendered in report rows.
const TimestampFormat = "2006-01-02 15:04:05"

// Store is the subset of database operations the report builder reads from.
type Store interface {
	ListUsers(ctx context.Context) ([]database.User, error)
	LatestFootprintPerUser(ctx context.Context) (map[uint]database.Footprint, error)
	LatestQuizResultPerUser(ctx context.Context) (map[uint]database.QuizResult, error)
	LatestFeedbackPerUser(ctx context.Context) (map[uint]database.Feedback, error)
}

// Row is one report line: a user joined with their latest activity of each
// kind. Pointer fields are nil when the user has no such activity; a missing
// value is never rendered as zero.
type Row struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"nome"`
	Email              string   `json:"email"`
	RegisteredAt       string   `json:"data_cadastro"`
	FootprintTotalCO2  *float64 `json:"pegada_total_co2"`
	QuizScore          *int     `json:"quiz_pontuacao"`
	QuizTotalQuestions *int     `json:"quiz_total_perguntas"`
	LastFootprint      *string  `json:"ultima_pegada"`
	LastQuiz           *string  `json:"ultimo_quiz"`
	LastFeedback       *string  `json:"ultimo_feedback"`
}

// Builder builds report rows from the store.
type Builder struct {
	store Store
}

// NewBuilder creates a report builder over the given store.
func NewBuilder(store Store) *Builder {
	return &Builder{store: store}
}

// Build returns one row per registered user, ordered by user id ascending.
// Users without any activity still get a row, with all activity fields nil.
func (b *Builder) Build(ctx context.Context) ([]Row, error) {
	users, err := b.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	footprints, err := b.store.LatestFootprintPerUser(ctx)
	if err != nil {
		return nil, err
	}
	quizzes, err := b.store.LatestQuizResultPerUser(ctx)
	if err != nil {
		return nil, err
	}
	feedbacks, err := b.store.LatestFeedbackPerUser(ctx)
	if err != nil {
		return nil, err
	}

	rows := lo.Map(users, func(u database.User, _ int) Row {
		row := Row{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			RegisteredAt: u.CreatedAt.Format(TimestampFormat),
		}
		if fp, ok := footprints[u.ID]; ok {
			row.FootprintTotalCO2 = lo.ToPtr(footprint.Round2(fp.TotalCO2))
			row.LastFootprint = lo.ToPtr(fp.CreatedAt.Format(TimestampFormat))
		}
		if qr, ok := quizzes[u.ID]; ok {
			row.QuizScore = lo.ToPtr(qr.Score)
			row.QuizTotalQuestions = lo.ToPtr(qr.TotalQuestions)
			row.LastQuiz = lo.ToPtr(qr.CreatedAt.Format(TimestampFormat))
		}
		if fb, ok := feedbacks[u.ID]; ok {
			// Feedback keeps a single row per user whose timestamp is
			// refreshed on every upsert, so UpdatedAt is the activity time.
			row.LastFeedback = lo.ToPtr(fb.UpdatedAt.Format(TimestampFormat))
		}
		return row
	})
	return rows, nil
}
