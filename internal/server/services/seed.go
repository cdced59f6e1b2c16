package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/skillbridge/internal/logging"
	"github.com/dmitrijs2005/skillbridge/internal/server/auth"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/repomanager"
)

// SeedSampleData populates an empty user table with the demo admin, mentor,
// and student accounts plus three sample courses. It is a no-op when any
// account already exists.
func SeedSampleData(ctx context.Context, m repomanager.RepositoryManager, logger logging.Logger) error {
	existing, err := m.Users().List(ctx)
	if err != nil {
		return fmt.Errorf("error checking for existing users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seedUsers := []struct {
		name     string
		email    string
		password string
		role     models.Role
	}{
		{"Admin", "admin@skillbridge.com", "admin123", models.RoleAdmin},
		{"John Mentor", "john@example.com", "password123", models.RoleMentor},
		{"Alice Student", "alice@example.com", "password123", models.RoleStudent},
	}

	var mentorID string
	for _, u := range seedUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("error hashing seed password: %w", err)
		}
		created, err := m.Users().Create(ctx, &models.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
		})
		if err != nil {
			return fmt.Errorf("error creating seed user %s: %w", u.email, err)
		}
		if u.role == models.RoleMentor {
			mentorID = created.ID
		}
	}

	seedCourses := []*models.Course{
		{
			Title:       "Web Development Basics",
			Description: "Learn HTML, CSS, and JavaScript from scratch. Perfect for beginners who want to start their journey in web development.",
			Price:       99.99,
			Category:    "Programming",
			Level:       models.LevelBeginner,
			Duration:    40,
		},
		{
			Title:       "React.js Complete Guide",
			Description: "Master React.js with hooks, state management, and modern development practices.",
			Price:       149.99,
			Category:    "Programming",
			Level:       models.LevelIntermediate,
			Duration:    35,
		},
		{
			Title:       "Data Science with Python",
			Description: "Learn data analysis, machine learning, and visualization with Python.",
			Price:       199.99,
			Category:    "Data Science",
			Level:       models.LevelIntermediate,
			Duration:    50,
		},
	}

	for _, c := range seedCourses {
		c.MentorID = mentorID
		if _, err := m.Courses().Create(ctx, c); err != nil {
			return fmt.Errorf("error creating seed course %s: %w", c.Title, err)
		}
	}

	logger.Info(ctx, "sample data initialized", "users", len(seedUsers), "courses", len(seedCourses))
	return nil
}
