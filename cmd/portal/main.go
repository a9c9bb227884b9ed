package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/api/rest"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/ports"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/service"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/infrastructure/config"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/infrastructure/storage"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/portal"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/session"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/pkg/logger"
)

const helpText = `Commands:
  open <path>              navigate to a view (/dashboard /shipments /tracking /analytics /customers /settings)
  login <user> <password>  start a session
  logout                   end the session
  track <tracking-number>  look a shipment up by tracking number
  ship <id>                look a shipment up by id
  ship rm <id>             delete a shipment
  users [role]             list users (admin)
  role <id> <role>         change a user's role (admin)
  status <id>              toggle a user's active flag (admin)
  read <id>                mark a notification read
  help, exit`

func main() {
	// A local .env is optional; real environment variables win.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	tokens := storage.NewFileStore(cfg.TokenFile)

	client, err := rest.New(rest.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.Timeout,
		Tokens:  tokens,
		Logger:  log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("building REST client")
	}

	auth := service.NewAuthService(client, log)
	shipments := service.NewShipmentService(client, log)
	notifications := service.NewNotificationService(client, log)
	customers := service.NewCustomerService(client, log)
	admin := service.NewAdminService(client, log)

	sess := session.New(auth, tokens, log)

	views := &portal.Views{
		Out:           os.Stdout,
		Session:       sess,
		Shipments:     shipments,
		Notifications: notifications,
		Customers:     customers,
		Admin:         admin,
	}
	router := portal.NewRouter(tokens, log)
	views.Register(router)

	// Initial navigation: root redirects to the dashboard, the guard sends
	// unauthenticated users to the login view instead.
	if err := router.Navigate(ctx, portal.PathRoot); err != nil {
		log.Error().Err(err).Msg("initial navigation failed")
	}

	repl(ctx, router, views, sess, shipments, notifications, admin)
}

// repl drives navigation from stdin until exit or EOF.
func repl(
	ctx context.Context,
	router *portal.Router,
	views *portal.Views,
	sess *session.Store,
	shipments ports.ShipmentService,
	notifications ports.NotificationService,
	admin ports.AdminService,
) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("portal> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(args) == 0 {
			continue
		}

		var err error
		switch args[0] {
		case "help":
			fmt.Println(helpText)
		case "open":
			if len(args) < 2 {
				fmt.Println("Usage: open <path>")
				continue
			}
			err = router.Navigate(ctx, args[1])
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <user> <password>")
				continue
			}
			if err = sess.Login(ctx, args[1], args[2]); err == nil {
				err = router.Navigate(ctx, portal.PathDashboard)
			} else if msg := sess.Err(); msg != "" {
				fmt.Println(msg)
				err = nil
			}
		case "logout":
			sess.Logout()
			fmt.Println("Logged out.")
		case "track":
			if len(args) < 2 {
				fmt.Println("Usage: track <tracking-number>")
				continue
			}
			err = views.RenderTrackResult(ctx, args[1])
		case "ship":
			err = shipCmd(ctx, shipments, args[1:])
		case "users":
			var filter ports.ListUsersFilter
			if len(args) > 1 {
				filter.Role = domain.UserRole(args[1])
			}
			var users []domain.User
			if users, err = admin.ListUsers(ctx, filter); err == nil {
				err = views.RenderUserTable(users)
			}
		case "role":
			if len(args) < 3 {
				fmt.Println("Usage: role <id> <role>")
				continue
			}
			err = roleCmd(ctx, admin, args[1], args[2])
		case "status":
			if len(args) < 2 {
				fmt.Println("Usage: status <id>")
				continue
			}
			err = statusCmd(ctx, admin, args[1])
		case "read":
			if len(args) < 2 {
				fmt.Println("Usage: read <id>")
				continue
			}
			err = readCmd(ctx, notifications, args[1])
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}

		if err != nil {
			fmt.Println("Error:", err)
		}
	}
}

func shipCmd(ctx context.Context, shipments ports.ShipmentService, args []string) error {
	if len(args) < 1 {
		fmt.Println("Usage: ship <id> | ship rm <id>")
		return nil
	}

	if args[0] == "rm" {
		if len(args) < 2 {
			fmt.Println("Usage: ship rm <id>")
			return nil
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid shipment id %q", args[1])
		}
		if err := shipments.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrShipmentNotFound) {
				fmt.Println("Shipment not found")
				return nil
			}
			return err
		}
		fmt.Println("Shipment deleted.")
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid shipment id %q", args[0])
	}

	shipment, err := shipments.Get(ctx, id)
	if errors.Is(err, domain.ErrShipmentNotFound) {
		fmt.Println("Shipment not found")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s/%s  %s, %s -> %s, %s  %.1fkg\n",
		shipment.TrackingNumber, shipment.Status, shipment.Priority,
		shipment.OriginCity, shipment.OriginCountry,
		shipment.DestinationCity, shipment.DestinationCountry,
		shipment.Weight)
	return nil
}

func roleCmd(ctx context.Context, admin ports.AdminService, rawID, rawRole string) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("invalid user id %q", rawID)
	}
	user, err := admin.UpdateUserRole(ctx, id, domain.UserRole(rawRole))
	if err != nil {
		return err
	}
	fmt.Printf("%s is now %s\n", user.Username, user.Role)
	return nil
}

func statusCmd(ctx context.Context, admin ports.AdminService, rawID string) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("invalid user id %q", rawID)
	}
	user, err := admin.ToggleUserStatus(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s active: %t\n", user.Username, user.IsActive)
	return nil
}

func readCmd(ctx context.Context, notifications ports.NotificationService, rawID string) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("invalid notification id %q", rawID)
	}
	if _, err := notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	fmt.Println("Marked read.")
	return nil
}
