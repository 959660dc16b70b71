package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/aggo-mock-api/internal/client"
	"github.com/adanyl0v/aggo-mock-api/internal/models"
	"github.com/adanyl0v/aggo-mock-api/internal/ui"
)

type scanOptions struct {
	apiURL   string
	timeout  time.Duration
	previews bool
	fixAll   bool
}

func newScanCmd() *cobra.Command {
	opts := scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <store-url>",
		Short: "Run a diagnostic against a running API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.apiURL, "api", "http://localhost:3001", "base URL of the mock API")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout of each API request")
	cmd.Flags().BoolVar(&opts.previews, "previews", false, "fetch the fix preview of every issue")
	cmd.Flags().BoolVar(&opts.fixAll, "fix-all", false, "fix every issue after the scan")
	return cmd
}

func runScan(cmd *cobra.Command, opts scanOptions, storeURL string) error {
	ctx := cmd.Context()
	api := client.New(opts.apiURL, opts.timeout)
	out := cmd.OutOrStdout()

	scan, err := api.Scan(ctx, storeURL)
	if err != nil {
		return fmt.Errorf("scan %s: %w", storeURL, err)
	}

	ids := make([]string, 0, len(scan.Results.Issues))
	for _, issue := range scan.Results.Issues {
		ids = append(ids, issue.ID)
	}

	var previews map[string]*models.Preview
	if opts.previews {
		previews, err = api.Previews(ctx, ids)
		if err != nil {
			return err
		}
	}

	fmt.Fprint(out, ui.RenderScan(scan.ScanID, scan.Results, previews))

	if !opts.fixAll {
		return nil
	}

	fixed, err := api.FixAll(ctx, ids)
	if err != nil {
		return fmt.Errorf("fix all: %w", err)
	}
	fmt.Fprintf(out, "Fixed %d issues, estimated impact %s\n", len(fixed.FixedIssues), fixed.TotalEstimatedImpact)
	return nil
}
