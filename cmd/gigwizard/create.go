package main

import (
	"fmt"
	"strings"

	"github.com/mark3labs/gigwizard/internal/config"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/gigapi"
	"github.com/mark3labs/gigwizard/internal/logger"
	"github.com/mark3labs/gigwizard/internal/tui/gigwizard"
	"github.com/spf13/cobra"
)

var createFlags struct {
	locale     string
	categories string
	api        string
	debug      bool
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new gig with the interactive wizard",
	Long: `Create a new gig with the interactive wizard.

The wizard collects the category, title, description, packages and images of
a gig, validating each step before moving on. On the review step the gig can
be saved as a draft or published for review.

Closing the wizard before submitting discards everything entered.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createFlags.locale, "locale", "l", "", "Locale sent with the gig (nl or en)")
	createCmd.Flags().StringVarP(&createFlags.categories, "categories", "c", "", "Category tree file (YAML or JSON)")
	createCmd.Flags().StringVar(&createFlags.api, "api", "", "Base URL of the gig API")
	createCmd.Flags().BoolVar(&createFlags.debug, "debug", false, "Log HTTP requests to the log file")
}

// loadConfig loads config and applies the shared flag overrides.
func loadConfig(locale, categories, api string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// CLI flags win over every config source
	if locale != "" {
		cfg.Locale = locale
	}
	if categories != "" {
		cfg.CategoriesFile = categories
	}
	if api != "" {
		cfg.APIBaseURL = api
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(createFlags.locale, createFlags.categories, createFlags.api)
	if err != nil {
		return err
	}

	cats, err := gig.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	client := gigapi.NewClient(gigapi.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.RequestTimeout,
		Debug:   createFlags.debug,
	})
	logger.Info("Starting wizard against %s (locale %s, %d categories)", cfg.APIBaseURL, cfg.Locale, len(cats.Flatten()))

	opts := gigwizard.Options{
		Categories: cats,
		Submitter:  gigapi.NewSubmitter(client, cfg.Locale, cats),
		Refresher:  client,
		BaseURL:    cfg.APIBaseURL,
	}

	outcome, err := gigwizard.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outcome.Result == nil {
		_, _ = fmt.Fprintln(out, closedMessage(outcome))
		return nil
	}

	res := outcome.Result
	verb := "submitted for review"
	if res.Status == gig.StatusDraft {
		verb = "saved as draft"
	}
	id := ""
	if res.Gig != nil && res.Gig.ID != "" {
		id = " (" + res.Gig.ID + ")"
	}
	_, _ = fmt.Fprintf(out, "Gig %s%s.\n", verb, id)
	_, _ = fmt.Fprintf(out, "Your gigs: %s%s\n", strings.TrimRight(cfg.APIBaseURL, "/"), res.RedirectPath)
	return nil
}

// closedMessage describes a wizard that exited without a submission.
func closedMessage(o *gigwizard.Outcome) string {
	if o.Draft.IsBlank() {
		return "Wizard closed without submitting."
	}
	return fmt.Sprintf("Wizard closed on step %d; the unfinished gig was discarded.", o.Step)
}
