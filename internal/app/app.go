// Package app wires the parkmobile client dependencies and dispatches CLI
// commands. It is the thin presentation shell around the SDK core.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"parkmobile/internal/api"
	"parkmobile/internal/auth"
	"parkmobile/internal/config"
	"parkmobile/internal/session"
	"parkmobile/internal/token"
	libredis "parkmobile/libs/redis"
)

// App wires client dependencies.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	api     *api.Client
	auth    *auth.Manager
	tracker *session.Tracker
	out     io.Writer
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	httpClient := api.NewDefaultHTTPClient(cfg.HTTPTimeout())
	client := api.NewClient(cfg.API.BaseURL, httpClient, store, logger)

	return &App{
		cfg:     cfg,
		logger:  logger,
		api:     client,
		auth:    auth.NewManager(client, logger),
		tracker: session.NewTracker(),
		out:     os.Stdout,
	}, nil
}

func newStore(cfg *config.Config, logger *zap.Logger) (token.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client, err := libredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			return nil, err
		}
		return token.NewRedisStore(client, cfg.Redis.KeyPrefix, logger), nil
	case config.StorageMemory:
		return token.NewMemoryStore(), nil
	default:
		return token.NewFileStore(cfg.Storage.Path, logger)
	}
}

// Run restores the session state, then executes the named command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}

	cmd, rest := args[0], args[1:]
	if cmd != "login" && cmd != "register" {
		a.auth.Init(ctx)
	}

	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "vehicles":
		return a.vehicles(ctx)
	case "vehicle-add":
		return a.vehicleAdd(ctx, rest)
	case "status":
		return a.status(ctx, rest)
	case "sessions":
		return a.sessions(ctx, rest)
	case "fee":
		return a.fee(ctx)
	case "exit":
		return a.exitSession(ctx, rest)
	case "lot":
		return a.lot(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// Close releases resources (none yet).
func (a *App) Close() {
	a.auth.Close()
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: register <full-name> <email> <password>")
	}
	user, err := a.api.Register(ctx, api.RegisterParams{FullName: args[0], Email: args[1], Password: args[2]})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "registered %s (%s)\n", user.FullName, user.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: login <email> <password>")
	}
	if !a.auth.Login(ctx, args[0], args[1]) {
		return errors.New("login failed")
	}
	user := a.auth.User()
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", user.FullName, user.Email)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	user := a.auth.User()
	if user == nil {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (user %d, role %d)\n", user.FullName, user.Email, user.ID.Int(), user.RoleID.Int())
	for _, v := range user.Vehicles {
		fmt.Fprintf(a.out, "  vehicle %d: %s (%s)\n", v.ID.Int(), v.LicensePlate, v.VehicleType)
	}
	if claims, err := a.api.SessionClaims(ctx); err == nil && !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "  token expires %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return nil
}

func (a *App) vehicles(ctx context.Context) error {
	vehicles, err := a.api.Vehicles(ctx)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		fmt.Fprintln(a.out, "no vehicles registered")
		return nil
	}
	for _, v := range vehicles {
		fmt.Fprintf(a.out, "%d\t%s\t%s\n", v.ID.Int(), v.LicensePlate, v.VehicleType)
	}
	return nil
}

func (a *App) vehicleAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: vehicle-add <license-plate> <car|motorcycle|truck>")
	}
	vehicle, err := a.api.RegisterVehicle(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "registered vehicle %d: %s (%s)\n", vehicle.ID.Int(), vehicle.LicensePlate, vehicle.VehicleType)
	return nil
}

// status resolves and prints the displayed session. An optional argument
// pre-selects a session id, standing in for the user's tap in the mobile UI.
func (a *App) status(ctx context.Context, args []string) error {
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}
		a.tracker.Select(id)
	}

	active, err := a.api.ActiveSessions(ctx)
	if err != nil {
		return err
	}
	current, err := a.api.CurrentParking(ctx)
	if err != nil {
		return err
	}

	legacy := current.CurrentParking
	a.tracker.Observe(active, legacy != nil)

	displayed := session.Resolve(active, legacy, a.tracker.Selected())
	if displayed == nil {
		fmt.Fprintln(a.out, "no vehicle currently parked")
		return nil
	}

	fmt.Fprintf(a.out, "session %d: %s at slot %s since %s\n",
		displayed.ID.Int(), displayed.LicensePlate, displayed.ParkingSlot.Code,
		displayed.EntryTime.Local().Format("2006-01-02 15:04"))
	if len(active) > 1 {
		fmt.Fprintf(a.out, "(%d active sessions, showing %d)\n", len(active), displayed.ID.Int())
	}
	return nil
}

func (a *App) sessions(ctx context.Context, args []string) error {
	status := ""
	if len(args) > 0 {
		status = args[0]
	}
	sessions, err := a.api.Sessions(ctx, status, 0)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(a.out, "no sessions")
		return nil
	}
	for _, s := range sessions {
		fee := "-"
		if s.Fee != nil {
			fee = fmt.Sprintf("%.2f", s.Fee.Float())
		}
		fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\t%s\n",
			s.ID.Int(), s.LicensePlate, s.Status, s.EntryTime.Local().Format("2006-01-02 15:04"), fee)
	}
	return nil
}

func (a *App) fee(ctx context.Context) error {
	preview, err := a.api.PreviewFee(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "current fee: %.2f (%d min at %.2f/h)\n",
		preview.Fee.Float(), preview.DurationMin.Int(), preview.PricePerHour.Float())
	return nil
}

func (a *App) exitSession(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: exit <session-id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id %q", args[0])
	}
	result, err := a.api.ExitSession(ctx, id)
	if err != nil {
		return err
	}
	if result.Fee != nil {
		fmt.Fprintf(a.out, "session ended, fee %.2f\n", result.Fee.Float())
	} else {
		fmt.Fprintln(a.out, "session ended")
	}
	return nil
}

func (a *App) lot(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: lot <lot-id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid lot id %q", args[0])
	}
	lot, err := a.api.ParkingLot(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s - %s (%.2f/h)\n", lot.Name, lot.Address, lot.PricePerHour.Float())
	if lot.Map != "" {
		fmt.Fprintf(a.out, "map: %s\n", lot.Map)
	}
	for _, slot := range lot.Slots {
		fmt.Fprintf(a.out, "  slot %s: %s\n", slot.Code, slot.Status)
	}
	return nil
}

// Describe maps the error taxonomy to the message shown to the user.
func Describe(err error) string {
	var authErr *api.AuthError
	var netErr *api.NetworkError
	var apiErr *api.APIError
	var notFound *api.NotFoundError
	switch {
	case errors.As(err, &authErr):
		return authErr.Error()
	case errors.As(err, &netErr):
		return "Network error. Please check your connection."
	case errors.As(err, &notFound):
		return notFound.Message
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}
