package database

import "gorm.io/gorm"

// User represents a registered user. CreatedAt doubles as the registration
// timestamp. Admin status is not stored here: the designated admin is
// identified by email against the server configuration during the request.
type User struct {
	gorm.Model
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex;not null"`
}

// Credential holds the login identity for a user. Username is the
// case-normalized email and is unique across all credentials.
type Credential struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex;not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	User         User   `gorm:"constraint:OnDelete:CASCADE"`
}

// Footprint stores one carbon calculation: the four raw activity inputs and
// the derived total. UserID is nil for anonymous calculations, which are a
// supported state rather than an error. Rows are immutable once created.
type Footprint struct {
	gorm.Model
	UserID    *uint `gorm:"index"`
	Transport float64
	Energy    float64
	Food      int
	Waste     int
	// TotalCO2 keeps full precision; rounding happens at the presentation edge.
	TotalCO2 float64
}

// QuizResult stores one quiz run. Append-only: a user may have many.
// Score is accepted as-is, even above TotalQuestions.
type QuizResult struct {
	gorm.Model
	UserID         *uint `gorm:"index"`
	Score          int
	TotalQuestions int
}

// Feedback stores the single feedback record a user may have. The unique
// index on UserID makes the upsert race-safe: a concurrent duplicate insert
// fails on the constraint instead of producing a second row.
type Feedback struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex;not null"`
	Rating    int  `gorm:"not null"`
	Text      string
	QuizScore *int
	QuizTotal *int
}
