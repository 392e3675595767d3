package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"course-recommender/internal/models"
	"course-recommender/internal/repository"
	"course-recommender/pkg/auth"
	"course-recommender/pkg/config"
	"course-recommender/pkg/logger"
	"course-recommender/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Seed applies migrations/001_init.sql (override with SEED_SCHEMA) and then
// loads the YAML catalog fixture. Run it from the repository root.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	seedDir := filepath.Join("cmd", "seed")
	fixturePath := os.Getenv("SEED_FILE")
	if fixturePath == "" {
		fixturePath = filepath.Join(seedDir, "catalog.yaml")
	}
	cacheFile := filepath.Join(seedDir, ".seed_cache.json")
	schemaPath := os.Getenv("SEED_SCHEMA")
	if schemaPath == "" {
		schemaPath = filepath.Join("migrations", "001_init.sql")
	}

	fixture, err := loadFixture(fixturePath)
	if err != nil {
		logger.Fatal("Failed to load seed fixture", zap.String("path", fixturePath), zap.Error(err))
	}

	// Skip fixtures that were already applied
	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load cache, seeding anyway", zap.Error(err))
		cache = &CacheData{SeededFiles: make(map[string]SeededFile)}
	}
	fileHash, err := calculateFileHash(fixturePath)
	if err != nil {
		logger.Warn("Failed to calculate fixture hash, seeding anyway", zap.Error(err))
	}
	if cached, ok := cache.SeededFiles[fixturePath]; ok && fileHash != "" && cached.FileHash == fileHash && os.Getenv("SEED_FORCE") != "true" {
		logger.Info("Fixture already seeded, skipping",
			zap.String("path", fixturePath),
			zap.Time("seeded_at", cached.SeededAt),
		)
		return
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Schema statements are idempotent
	if err := applySchema(ctx, db, schemaPath); err != nil {
		logger.Fatal("Failed to apply schema", zap.String("path", schemaPath), zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	catalogRepo := repository.NewCatalogRepository(db, appLogger)

	logger.Info("Starting database seeding...", zap.String("fixture", fixturePath))

	// Accounts first: courses reference instructors by email
	users, err := seedUsers(ctx, userRepo, fixture.Users)
	if err != nil {
		logger.Fatal("Failed to seed users", zap.Error(err))
	}

	if err := catalogRepo.Seed(ctx, fixture.catalogSeed()); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	cache.SeededFiles[fixturePath] = SeededFile{
		FilePath: fixturePath,
		FileHash: fileHash,
		SeededAt: time.Now(),
	}
	if err := saveCache(cacheFile, cache); err != nil {
		logger.Error("Failed to save seed cache", zap.Error(err))
	}

	// Development tokens for learner accounts
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.Expiration)
	for _, u := range users {
		if !u.learner {
			continue
		}
		token, err := jwtManager.GenerateToken(u.user.ID.String(), u.user.FirstName, u.user.Email)
		if err != nil {
			logger.Warn("Failed to issue development token", zap.String("email", u.user.Email), zap.Error(err))
			continue
		}
		fmt.Printf("%s (valid for %s): Bearer %s\n", u.user.Email, jwtManager.GetTokenDuration(), token)
	}

	logger.Info("Database seeding completed successfully!")
}

// Fixture is the YAML layout of a development catalog.
type Fixture struct {
	Users      []FixtureUser     `yaml:"users"`
	Categories []FixtureCategory `yaml:"categories"`
	Tags       []FixtureTag      `yaml:"tags"`
	Courses    []FixtureCourse   `yaml:"courses"`
}

type FixtureUser struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Password  string `yaml:"password"`
	Learner   bool   `yaml:"learner"`
}

type FixtureCategory struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type FixtureTag struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type FixtureCourse struct {
	ID             int64   `yaml:"id"`
	Title          string  `yaml:"title"`
	Description    string  `yaml:"description"`
	ThumbnailURL   string  `yaml:"thumbnail_url"`
	Price          float64 `yaml:"price"`
	OriginalPrice  float64 `yaml:"original_price"`
	DurationHours  int     `yaml:"duration_hours"`
	TotalEnrolled  int     `yaml:"total_enrolled"`
	Rating         float64 `yaml:"rating"`
	RatingCount    int     `yaml:"rating_count"`
	Level          string  `yaml:"level"`
	Status         string  `yaml:"status"`
	ApprovalStatus string  `yaml:"approval_status"`
	Instructor     string  `yaml:"instructor"`
	Category       int64   `yaml:"category"`
	Tags           []int64 `yaml:"tags"`
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &fixture, nil
}

func (f *Fixture) catalogSeed() *repository.CatalogSeed {
	seed := &repository.CatalogSeed{}
	for _, c := range f.Categories {
		seed.Categories = append(seed.Categories, models.Category{ID: c.ID, Name: c.Name})
	}
	for _, t := range f.Tags {
		seed.Tags = append(seed.Tags, models.Tag{ID: t.ID, Name: t.Name})
	}
	for _, c := range f.Courses {
		seed.Courses = append(seed.Courses, repository.SeedCourse{
			Course: models.Course{
				ID:             c.ID,
				Title:          c.Title,
				Description:    optional(c.Description),
				ThumbnailURL:   optional(c.ThumbnailURL),
				Price:          c.Price,
				OriginalPrice:  c.OriginalPrice,
				DurationHours:  c.DurationHours,
				TotalEnrolled:  c.TotalEnrolled,
				Rating:         c.Rating,
				RatingCount:    c.RatingCount,
				Level:          models.CourseLevel(orDefault(c.Level, string(models.CourseLevelBeginner))),
				Status:         models.CourseStatus(orDefault(c.Status, string(models.CourseStatusPublished))),
				ApprovalStatus: models.ApprovalStatus(orDefault(c.ApprovalStatus, string(models.ApprovalStatusApproved))),
			},
			InstructorEmail: c.Instructor,
			CategoryID:      c.Category,
			TagIDs:          c.Tags,
		})
	}
	return seed
}

type seededUser struct {
	user    *models.User
	learner bool
}

func seedUsers(ctx context.Context, repo *repository.UserRepository, fixtureUsers []FixtureUser) ([]seededUser, error) {
	users := make([]seededUser, 0, len(fixtureUsers))
	for _, fu := range fixtureUsers {
		hash, err := auth.HashPassword(fu.Password)
		if err != nil {
			return nil, err
		}

		user := &models.User{
			ID:        uuid.New(),
			FirstName: fu.FirstName,
			LastName:  fu.LastName,
			Email:     fu.Email,
			Password:  hash,
		}
		if err := repo.Upsert(ctx, user); err != nil {
			return nil, err
		}

		logger.Info("User seeded", zap.String("email", user.Email), zap.String("id", user.ID.String()))
		users = append(users, seededUser{user: user, learner: fu.Learner})
	}
	return users, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// SeededFile records a fixture that was applied
type SeededFile struct {
	FilePath string    `json:"file_path"`
	FileHash string    `json:"file_hash"`
	SeededAt time.Time `json:"seeded_at"`
}

// CacheData stores information about seeded fixtures
type CacheData struct {
	SeededFiles map[string]SeededFile `json:"seeded_files"` // key: file path
}

// loadCache loads the cache of seeded fixtures
func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		SeededFiles: make(map[string]SeededFile),
	}

	// Check if cache file exists
	if _, err := os.Stat(cacheFile); os.IsNotExist(err) {
		return cache, nil
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.SeededFiles == nil {
		cache.SeededFiles = make(map[string]SeededFile)
	}

	return cache, nil
}

// saveCache saves the cache of seeded fixtures
func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// calculateFileHash calculates MD5 hash of a file
func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

type schemaExecer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// applySchema runs the whole migration file in one call. Without arguments
// pgx sends it over the simple protocol, so several statements are allowed.
func applySchema(ctx context.Context, db schemaExecer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("schema file %s is empty", path)
	}

	if _, err := db.Exec(ctx, string(data)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	logger.Info("Schema applied", zap.String("path", path))
	return nil
}
