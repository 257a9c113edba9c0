package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dtei-informatika/kegiatan-app/internal/config"
	"github.com/dtei-informatika/kegiatan-app/internal/database"
	"github.com/dtei-informatika/kegiatan-app/internal/dto"
	"github.com/dtei-informatika/kegiatan-app/internal/repository"
	"github.com/dtei-informatika/kegiatan-app/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// No workable state exists without the schema; bail out of the process.
	if err := database.Initialize(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("cache unavailable, listings will hit the store")
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	auditRepo := repository.NewAuditLogRepository(db)
	activityRepo := repository.NewActivityRepository(db, auditRepo)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	authService := service.NewAuthService(userRepo, validate, cfg.SessionSecret, logger)
	activityService := service.NewActivityService(activityRepo, authService, cache, cfg.ListCacheTTL, validate, logger)
	auditService := service.NewAuditService(auditRepo, logger)
	directoryService := service.NewDirectoryService(roleRepo, userRepo, logger)

	ctx := context.Background()

	if cfg.SeedEnabled {
		seeder := service.NewSeedService(roleRepo, userRepo, activityRepo, logger)
		if err := seeder.Run(ctx); err != nil {
			log.Fatalf("failed to seed initial data: %v", err)
		}
	}

	app := &terminal{
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		auth:       authService,
		activities: activityService,
		audit:      auditService,
		directory:  directoryService,
	}
	app.run(ctx, cfg.AppName)
}

// terminal is the interactive front end. It owns the editor state and the
// session; the services never hold either between calls.
type terminal struct {
	in         *bufio.Reader
	out        io.Writer
	auth       service.AuthService
	activities service.ActivityService
	audit      service.AuditService
	directory  service.DirectoryService
}

func (t *terminal) run(ctx context.Context, appName string) {
	fmt.Fprintf(t.out, "%s\n\n", appName)

	session := t.login(ctx)

	fmt.Fprintf(t.out, "\nWelcome, %s.\n", session.Name)
	for {
		fmt.Fprint(t.out, "\n[list] [add] [edit] [delete] [log] [users] [roles] [quit] > ")
		command, ok := t.readLine()
		if !ok {
			return
		}
		switch strings.ToLower(strings.TrimSpace(command)) {
		case "list":
			t.showActivities(ctx)
		case "add":
			t.saveActivity(ctx, session, dto.NewEditor())
		case "edit":
			t.editActivity(ctx, session)
		case "delete":
			t.deleteActivity(ctx, session)
		case "log":
			t.showAuditLog(ctx)
		case "users":
			t.showUsers(ctx)
		case "roles":
			t.showRoles(ctx)
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Fprintln(t.out, "unknown command")
		}
	}
}

// login keeps prompting until a session is established. Abandoning the prompt
// (EOF) terminates the whole process: there is no path into the main session
// without authentication.
func (t *terminal) login(ctx context.Context) dto.Session {
	for {
		fmt.Fprint(t.out, "login or signup? [login] > ")
		choice, ok := t.readLine()
		if !ok {
			os.Exit(0)
		}
		if strings.EqualFold(strings.TrimSpace(choice), "signup") {
			t.signup(ctx)
			continue
		}

		username, ok := t.prompt("username")
		if !ok {
			os.Exit(0)
		}
		password, ok := t.prompt("password")
		if !ok {
			os.Exit(0)
		}

		session, err := t.auth.Authenticate(ctx, dto.LoginRequest{Username: username, Password: password})
		if err != nil {
			fmt.Fprintf(t.out, "login failed: %v\n", err)
			continue
		}
		return session
	}
}

func (t *terminal) signup(ctx context.Context) {
	roles, err := t.directory.ListRoles(ctx)
	if err != nil {
		fmt.Fprintf(t.out, "cannot load roles: %v\n", err)
		return
	}
	for _, role := range roles {
		fmt.Fprintf(t.out, "  %d: %s\n", role.ID, role.Name)
	}

	req := dto.SignupRequest{}
	fields := []struct {
		label string
		dest  *string
	}{
		{"full name", &req.Name},
		{"student/staff number", &req.ExternalID},
		{"username", &req.Username},
		{"password (min 6 chars)", &req.Password},
		{"confirm password", &req.ConfirmPassword},
	}
	for _, field := range fields {
		value, ok := t.prompt(field.label)
		if !ok {
			os.Exit(0)
		}
		*field.dest = value
	}

	roleInput, ok := t.prompt("role id")
	if !ok {
		os.Exit(0)
	}
	req.RoleID, _ = strconv.Atoi(strings.TrimSpace(roleInput))

	id, err := t.auth.Register(ctx, req)
	if err != nil {
		fmt.Fprintf(t.out, "signup failed: %v\n", err)
		return
	}
	fmt.Fprintf(t.out, "registered as user %d, please log in\n", id)
}

func (t *terminal) showActivities(ctx context.Context) {
	rows, err := t.activities.List(ctx)
	if err != nil {
		fmt.Fprintf(t.out, "cannot list activities: %v\n", err)
		return
	}
	for _, row := range rows {
		responsible := "-"
		if row.ResponsibleName != nil {
			responsible = *row.ResponsibleName
			if row.ResponsibleRole != nil {
				responsible += " (" + *row.ResponsibleRole + ")"
			}
		}
		fmt.Fprintf(t.out, "%-10s %-30s %-12s %-25s %-15s %s\n",
			row.ID, row.Name, row.Date, row.Location, row.Category, responsible)
	}
}

func (t *terminal) saveActivity(ctx context.Context, session dto.Session, state dto.EditorState) {
	req := dto.ActivityRequest{}
	if state.Mode == dto.EditorModeEdit {
		current, err := t.activities.Get(ctx, state.ActivityID)
		if err != nil {
			fmt.Fprintf(t.out, "cannot load activity: %v\n", err)
			return
		}
		req = current
	}

	if state.Mode == dto.EditorModeCreate {
		id, ok := t.prompt("activity id (max 10 chars)")
		if !ok {
			return
		}
		req.ID = id
	}

	req.Name = t.promptDefault("name", req.Name)
	req.Date = t.promptDefault("date (DD-MM-YYYY)", req.Date)
	req.Location = t.promptDefault("location", req.Location)
	req.Category = t.promptDefault("category", req.Category)

	users, err := t.directory.ListUsers(ctx)
	if err == nil {
		for _, user := range users {
			fmt.Fprintf(t.out, "  %d: %s\n", user.ID, user.Name)
		}
	}
	current := ""
	if req.ResponsibleID != nil {
		current = strconv.Itoa(*req.ResponsibleID)
	}
	responsible := t.promptDefault("responsible user id (blank for none)", current)
	req.ResponsibleID = nil
	if trimmed := strings.TrimSpace(responsible); trimmed != "" {
		if id, err := strconv.Atoi(trimmed); err == nil {
			req.ResponsibleID = &id
		}
	}

	if err := t.activities.Save(ctx, session, state, req); err != nil {
		fmt.Fprintf(t.out, "save failed: %v\n", err)
		return
	}
	fmt.Fprintln(t.out, "saved")
}

func (t *terminal) editActivity(ctx context.Context, session dto.Session) {
	id, ok := t.prompt("activity id to edit")
	if !ok {
		return
	}
	t.saveActivity(ctx, session, dto.EditEditor(strings.TrimSpace(id)))
}

func (t *terminal) deleteActivity(ctx context.Context, session dto.Session) {
	id, ok := t.prompt("activity id to delete")
	if !ok {
		return
	}
	if err := t.activities.Delete(ctx, session, strings.TrimSpace(id)); err != nil {
		fmt.Fprintf(t.out, "delete failed: %v\n", err)
		return
	}
	fmt.Fprintln(t.out, "deleted")
}

func (t *terminal) showAuditLog(ctx context.Context) {
	entries, err := t.audit.List(ctx)
	if err != nil {
		fmt.Fprintf(t.out, "cannot list audit log: %v\n", err)
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(t.out, "#%d %s %s %s\n", entry.ID, entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Action, entry.ActivityID)
		if entry.OldState != nil {
			fmt.Fprintf(t.out, "    old: %s\n", *entry.OldState)
		}
		if entry.NewState != nil {
			fmt.Fprintf(t.out, "    new: %s\n", *entry.NewState)
		}
	}
}

func (t *terminal) showUsers(ctx context.Context) {
	users, err := t.directory.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(t.out, "cannot list users: %v\n", err)
		return
	}
	for _, user := range users {
		fmt.Fprintf(t.out, "%4d  %s\n", user.ID, user.Name)
	}
}

func (t *terminal) showRoles(ctx context.Context) {
	roles, err := t.directory.ListRoles(ctx)
	if err != nil {
		fmt.Fprintf(t.out, "cannot list roles: %v\n", err)
		return
	}
	for _, role := range roles {
		fmt.Fprintf(t.out, "%4d  %s\n", role.ID, role.Name)
	}
}

func (t *terminal) prompt(label string) (string, bool) {
	fmt.Fprintf(t.out, "%s > ", label)
	return t.readLine()
}

func (t *terminal) promptDefault(label, current string) string {
	suffix := ""
	if current != "" {
		suffix = fmt.Sprintf(" [%s]", current)
	}
	fmt.Fprintf(t.out, "%s%s > ", label, suffix)
	value, ok := t.readLine()
	if !ok {
		return current
	}
	if strings.TrimSpace(value) == "" {
		return current
	}
	return strings.TrimSpace(value)
}

func (t *terminal) readLine() (string, bool) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}
