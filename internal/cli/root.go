// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dentahub/internal/api"
	"dentahub/internal/api/handlers"
	"dentahub/internal/audit"
	"dentahub/internal/config"
	"dentahub/internal/logging"
	"dentahub/internal/repository"
	"dentahub/internal/services"
	"dentahub/internal/services/auth"

	"github.com/spf13/cobra"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	password      string
	port          int
	dbPath        string
	backupDir     string
	logLevel      string
	resetPassword bool
	bootstrapMode string
	jwtSecret     string
	auditEnabled  bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "dentahub",
	Short: "DentaHub clinic management API",
	Long:  `A REST API for managing a dental clinic: patients, doctors, appointments, billing, and administration.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: DENTAHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: DENTAHUB_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: DENTAHUB_DATABASE_PATH)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&password, "password", "", "Password for the admin user. (Env: DENTAHUB_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: DENTAHUB_PORT)")
	RootCmd.Flags().BoolVar(&resetPassword, "reset_pw", false, "If true, reset admin password on startup. (Env: DENTAHUB_RESET_PW=true)")
	RootCmd.Flags().StringVar(&bootstrapMode, "bootstrap-mode", "", "Admin bootstrap mode: upsert or reset. (Env: DENTAHUB_BOOTSTRAP_MODE)")
	RootCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "Secret key for signing JWTs. (Env: DENTAHUB_JWT_SECRET)")
	RootCmd.Flags().StringVar(&backupDir, "backup-dir", "", "Directory for database backups. (Env: DENTAHUB_BACKUP_DIR)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable activity logging to the database. (Env: DENTAHUB_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("DENTAHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string {
		return os.Getenv(key)
	}

	// --- 1. Environment Variables ---
	if v := getEnv("DENTAHUB_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := getEnv("DENTAHUB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("DENTAHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("DENTAHUB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := getEnv("DENTAHUB_RESET_PW"); v == "true" {
		c.ResetAdminPassword = true
	}
	if v := getEnv("DENTAHUB_BOOTSTRAP_MODE"); v != "" {
		c.Admin.BootstrapMode = v
	}
	if v := getEnv("DENTAHUB_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := getEnv("DENTAHUB_BACKUP_DIR"); v != "" {
		c.Database.BackupDir = v
	}
	if v := getEnv("DENTAHUB_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if password != "" {
		c.AdminPassword = password
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if resetPassword {
		c.ResetAdminPassword = true
	}
	if bootstrapMode != "" {
		c.Admin.BootstrapMode = bootstrapMode
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if backupDir != "" {
		c.Database.BackupDir = backupDir
	}
	if jwtSecret != "" {
		c.JWTSecret = jwtSecret
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Path == "" {
		c.Database.Path = "dentahub.db"
	}
	if c.Database.BackupDir == "" {
		c.Database.BackupDir = "backups"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.JWT.AccessDurationMin == 0 {
		c.JWT.AccessDurationMin = 15
	}
	if c.JWT.RefreshDurationHours == 0 {
		c.JWT.RefreshDurationHours = 24
	}
	if c.Maintenance.Interval == "" {
		c.Maintenance.Interval = "1h"
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// Handle JWT Secret
	if cfg.JWTSecret == "" {
		if cfg.JWT.Secret != "" {
			logging.Log.Info("Using JWT secret loaded from config file.")
			cfg.JWTSecret = cfg.JWT.Secret
		} else {
			logging.Log.Info("Generating new random JWT secret...")
			newSecret, err := auth.GenerateSecret()
			if err != nil {
				return fmt.Errorf("failed to generate JWT secret: %w", err)
			}
			cfg.JWT.Secret = newSecret
			cfg.JWTSecret = newSecret
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				logging.Log.Warnf("Failed to save new JWT secret to %s: %v", cfgFile, err)
			} else {
				logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
			}
		}
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// Schema problems are fatal: serving requests against a missing or
	// outdated schema corrupts data.
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return err
	}

	// The remaining startup steps are best-effort: a failed seed, repair
	// or admin bootstrap leaves a usable (if incomplete) clinic, so the
	// server still starts and the problem is logged for the operator.
	if err := repo.Seed(cfg.AdminPassword); err != nil {
		logging.Log.Errorf("Seeding demo data failed: %v", err)
	}

	if fixed, err := repo.RepairAppointments(); err != nil {
		logging.Log.Errorf("Appointment consistency repair failed: %v", err)
	} else if fixed > 0 {
		logging.Log.Warnf("Removed %d orphaned appointments during startup repair", fixed)
	}

	// Service Initialization
	infoService := services.NewInfoService()
	userService := services.NewUserService(repo)
	tokenService := auth.NewTokenService(cfg, userService, repo)
	patientService := services.NewPatientService(repo)
	doctorService := services.NewDoctorService(repo)
	appointmentService := services.NewAppointmentService(repo)
	financeService := services.NewFinanceService(repo)
	reportService := services.NewReportService(repo)
	backupService := services.NewBackupService(repo, cfg.Database.BackupDir)
	maintenanceService := services.NewMaintenanceService(repo, cfg.MaintenanceIntervalDur)

	// Auditor Initialization
	auditor := audit.NewDBAuditor(repo, cfg.Logging.AuditEnabled)

	authMiddleware := auth.NewMiddleware(userService, tokenService)

	if err := userService.InitializeAdminUser(cfg); err != nil {
		logging.Log.Errorf("Admin bootstrap failed (login may be impossible): %v", err)
	}

	maintenanceService.Start()
	// No defer stop here, we stop explicitly during graceful shutdown

	h := handlers.NewHandlers(
		infoService,
		userService,
		patientService,
		doctorService,
		appointmentService,
		financeService,
		reportService,
		backupService,
		maintenanceService,
		tokenService,
		auditor,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop background services
	maintenanceService.Stop()

	// Shutdown the HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
