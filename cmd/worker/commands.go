package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/config"
	"github.com/meshfit/meshfit-backend/internal/bootstrap"
	"github.com/meshfit/meshfit-backend/internal/storage/postgres"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/audit"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/repository"
)

type generateOptions struct {
	file      string
	occasion  string
	formality int
	required  []string
	cap       int
}

var (
	genOpts generateOptions

	rootCmd = &cobra.Command{
		Use:           "worker",
		Short:         "Wardrobe background jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate outfits from a YAML wardrobe file and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), genOpts)
		},
	}

	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Re-check every saved outfit against the current links and flag stale ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd)
		},
	}
)

func init() {
	generateCmd.Flags().StringVarP(&genOpts.file, "file", "f", "wardrobe.yaml", "wardrobe file")
	generateCmd.Flags().StringVar(&genOpts.occasion, "occasion", "", "occasion label (required)")
	generateCmd.Flags().IntVar(&genOpts.formality, "formality", 0, "target formality 1..5, 0 for none")
	generateCmd.Flags().StringSliceVar(&genOpts.required, "require", nil, "garment ids every outfit must contain")
	generateCmd.Flags().IntVar(&genOpts.cap, "cap", engine.DefaultResultCap, "maximum number of outfits")
	_ = generateCmd.MarkFlagRequired("occasion")

	rootCmd.AddCommand(generateCmd, auditCmd)
}

func runGenerate(w io.Writer, opt generateOptions) error {
	if opt.formality < 0 || opt.formality > 5 {
		return fmt.Errorf("--formality must be between 0 and 5, got %d", opt.formality)
	}

	wf, err := loadWardrobeFile(opt.file)
	if err != nil {
		return err
	}

	req := engine.Request{
		Garments:           wf.Garments,
		Links:              wf.Links,
		Occasion:           opt.occasion,
		RequiredGarmentIDs: opt.required,
	}
	if opt.formality > 0 {
		f := opt.formality
		req.TargetFormality = &f
	}

	cands := engine.NewGenerator(opt.cap).Generate(req)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Outfits []engine.Candidate `json:"outfits"`
	}{Outfits: cands})
}

func runAudit(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := bootstrap.NewLogger(&cfg.App)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	auditor := audit.NewAuditor(repository.NewOutfitRepository(db), repository.NewLinkRepository(db), nil, logger)
	report, err := auditor.Run(ctx)
	if err != nil {
		logger.Error("audit failed", zap.Error(err))
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
