package main

import (
	"context"
	"fmt"
	"os"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/config"
	"github.com/accommotrack/client-go/internal/forms"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/session"
	"github.com/accommotrack/client-go/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	store := session.NewStore(cfg.StorageDir)
	if err := store.Init(); err != nil {
		utils.Logger.Fatal("Failed to initialize session storage:", err)
	}

	client, err := api.NewClient(cfg.BaseURL, cfg.RequestTimeout, cfg.ProfileCacheTTL, store.Token)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize API client:", err)
	}

	ctx := context.Background()
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "login":
		runLogin(ctx, client, store, args[1:])
	case "logout":
		runLogout(ctx, client, store)
	case "profile":
		runProfile(ctx, client, store, cfg, args[1:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  accommotrack login <email> <password>
  accommotrack logout
  accommotrack profile show
  accommotrack profile edit <field> <value> [...]`)
}

func runLogin(ctx context.Context, client *api.Client, store *session.Store, args []string) {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	resp, err := client.Login(ctx, args[0], args[1])
	if err != nil {
		utils.Logger.Fatal(api.FeedbackMessage(err))
	}
	if err := store.SetSession(resp.Token, resp.User); err != nil {
		utils.Logger.Fatal("Failed to persist session:", err)
	}
	fmt.Printf("Logged in as %s %s (%s)\n", resp.User.FirstName, resp.User.LastName, resp.User.Role)
}

func runLogout(ctx context.Context, client *api.Client, store *session.Store) {
	if err := client.Logout(ctx); err != nil {
		utils.Logger.WithError(err).Warn("Server logout failed; clearing local session anyway")
	}
	if err := store.Logout(); err != nil {
		utils.Logger.Fatal("Failed to clear session:", err)
	}
	fmt.Println("Logged out.")
}

func runProfile(ctx context.Context, client *api.Client, store *session.Store, cfg *config.Config, args []string) {
	if store.Token() == "" || store.TokenExpired() {
		utils.Logger.Fatal("Not logged in (or session expired). Run: accommotrack login")
	}
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	form := forms.NewTenantProfileForm(client, cfg.EmailDebounce)
	defer form.Close()
	if err := form.Load(ctx); err != nil {
		utils.Logger.Fatal(api.FeedbackMessage(err))
	}

	switch args[0] {
	case "show":
		printProfile(form.Baseline())
	case "edit":
		runProfileEdit(ctx, form, store, args[1:])
	default:
		usage()
		os.Exit(2)
	}
}

func runProfileEdit(ctx context.Context, form *forms.TenantProfileForm, store *session.Store, pairs []string) {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		usage()
		os.Exit(2)
	}
	if err := form.BeginEdit(); err != nil {
		utils.Logger.Fatal("Cannot enter edit mode:", err)
	}
	for i := 0; i < len(pairs); i += 2 {
		if err := setProfileField(form, pairs[i], pairs[i+1]); err != nil {
			utils.Logger.Fatal("Cannot edit field:", err)
		}
	}

	if errs := form.FieldErrors(); len(errs) > 0 {
		field, msg := form.FirstInvalid()
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		if err := form.CancelEdit(ctx); err != nil {
			utils.Logger.WithError(err).Warn("Revert refetch failed")
		}
		os.Exit(1)
	}

	if err := form.Save(ctx); err != nil {
		if field, msg := form.FirstInvalid(); field != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		utils.Logger.Fatal(api.FeedbackMessage(err))
	}

	saved := form.Baseline()
	if user := store.User(); user != nil {
		user.FirstName = saved.FirstName
		user.LastName = saved.LastName
		user.Email = saved.Email
		if err := store.SetUser(*user); err != nil {
			utils.Logger.WithError(err).Warn("Failed to refresh cached user")
		}
	}
	fmt.Println(form.Feedback().Message)
	printProfile(saved)
}

func setProfileField(form *forms.TenantProfileForm, field, value string) error {
	switch field {
	case "first_name":
		return form.SetFirstName(value)
	case "last_name":
		return form.SetLastName(value)
	case "email":
		return form.SetEmail(value)
	case "phone":
		return form.SetPhone(value)
	case "bio":
		return form.SetBio(value)
	case "occupation":
		return form.SetOccupation(value)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
}

func printProfile(p models.TenantProfile) {
	fmt.Printf("Name:       %s %s\n", p.FirstName, p.LastName)
	fmt.Printf("Email:      %s\n", p.Email)
	if p.Phone != "" {
		fmt.Printf("Phone:      %s\n", p.Phone)
	}
	if p.Occupation != "" {
		fmt.Printf("Occupation: %s\n", p.Occupation)
	}
	if p.Bio != "" {
		fmt.Printf("Bio:        %s\n", p.Bio)
	}
}
