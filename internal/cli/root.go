package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/repository"
	"github.com/RAFA-RIKI/first-site-i-made/internal/core/service"
	"github.com/RAFA-RIKI/first-site-i-made/internal/infrastructure/sqlite"
	"github.com/RAFA-RIKI/first-site-i-made/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "firstsite",
	Short: "First Site - a small authenticated submissions site",
	Long: `First Site is a small web application where registered users submit
name/age records, view them on the home page, and delete their own.

It provides:
- Cookie-session authentication with bcrypt password storage
- A server-rendered HTML surface
- SQLite storage with explicit schema migrations
- Admin commands for managing user accounts`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yml)")
}

// Services holds all initialized services
type Services struct {
	DB                *sqlite.DB
	UserRepo          repository.UserRepository
	SubmissionRepo    repository.SubmissionRepository
	AuthService       *service.AuthService
	SubmissionService *service.SubmissionService
}

// initServices opens the database and wires repositories and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	submissionRepo := sqlite.NewSubmissionRepository(db)

	authService := service.NewAuthService(userRepo)
	submissionService := service.NewSubmissionService(submissionRepo)

	return &Services{
		DB:                db,
		UserRepo:          userRepo,
		SubmissionRepo:    submissionRepo,
		AuthService:       authService,
		SubmissionService: submissionService,
	}, nil
}

// Close releases service resources
func (s *Services) Close() error {
	return s.DB.Close()
}
