package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/rentcheck/rentcheck/internal/engine"
	"github.com/rentcheck/rentcheck/internal/history"
	"github.com/rentcheck/rentcheck/internal/logger"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one renter profile against one listing",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().BoolP("interactive", "i", false, "prompt for the renter profile and listing instead of reading the config file")
	evaluateCmd.Flags().Bool("save", false, "append the evaluation to the history database")
}

func evaluate(cmd *cobra.Command) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	interactive := cmd.Flag("interactive").Value.String() == "true"

	var profile engine.RenterProfile
	var listing engine.Listing

	if interactive {
		profile, listing, err = promptInputs()
		if err != nil {
			zlog.Fatal("collecting inputs", zap.Error(err))
		}
	} else {
		if config.Renter == nil || config.Listing == nil {
			zlog.Fatal("renter and listing sections are required in the config file",
				zap.String("hint", "run with --interactive or provide rentcheck.yaml"),
			)
		}
		profile = config.Renter.toProfile()
		listing = config.Listing.toListing()
	}

	result, err := engine.New(config.Scoring, zlog).Evaluate(profile, listing)
	if err != nil {
		zlog.Fatal("evaluation failed", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		zlog.Fatal("encoding result", zap.Error(err))
	}
	fmt.Println(string(pretty))

	zlog.Info("evaluation complete",
		zap.Int("score", result.Score),
		zap.String("verdict", string(result.Verdict)),
		zap.String("confidence", string(result.Confidence)),
	)

	if cmd.Flag("save").Value.String() == "true" {
		store, err := history.Open(config.Server.Database)
		if err != nil {
			zlog.Fatal("opening history database", zap.Error(err))
		}
		defer store.Close()

		entry, err := store.Save(profile, listing, *result)
		if err != nil {
			zlog.Fatal("saving evaluation", zap.Error(err))
		}
		zlog.Info("evaluation saved",
			zap.String("id", entry.ID),
			zap.String("database", config.Server.Database),
		)
	}
}

func (c *RenterConfig) toProfile() engine.RenterProfile {
	return engine.RenterProfile{
		RenterType:     engine.RenterType(strings.ToUpper(strings.TrimSpace(c.Type))),
		MonthlyIncome:  c.MonthlyIncome,
		MonthlyBudget:  c.MonthlyBudget,
		DocumentsHeld:  normalizeDocs(c.Documents),
		StudentBursary: c.StudentBursary,
	}
}

func (c *ListingConfig) toListing() engine.Listing {
	return engine.Listing{
		Name:              c.Name,
		Rent:              c.Rent,
		Deposit:           c.Deposit,
		ApplicationFee:    c.ApplicationFee,
		RequiredDocuments: normalizeDocs(c.RequiredDocuments),
		AreaDemand:        engine.AreaDemand(strings.ToUpper(strings.TrimSpace(c.AreaDemand))),
	}
}

func normalizeDocs(tags []string) []engine.DocumentKind {
	docs := make([]engine.DocumentKind, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		docs = append(docs, engine.NormalizeDocumentKind(tag))
	}
	return docs
}

// promptInputs walks the user through both records. Answers are collected
// as loosely typed maps and decoded with mapstructure, so the numeric
// prompts stay plain strings until one decode step at the end.
func promptInputs() (engine.RenterProfile, engine.Listing, error) {
	var profile engine.RenterProfile
	var listing engine.Listing

	renterType, err := selectOne("Renter type", []string{
		string(engine.RenterWorker),
		string(engine.RenterNewProfessional),
		string(engine.RenterStudent),
	})
	if err != nil {
		return profile, listing, err
	}

	renterAnswers := map[string]any{"renter_type": renterType}
	for _, q := range []struct{ key, label string }{
		{"monthly_income", "Monthly income"},
		{"monthly_budget", "Monthly rent budget (0 if none)"},
	} {
		answer, err := promptNumber(q.label)
		if err != nil {
			return profile, listing, err
		}
		renterAnswers[q.key] = answer
	}

	docs, err := promptDocs("Documents held (comma separated, e.g. bank statement, payslip)")
	if err != nil {
		return profile, listing, err
	}
	renterAnswers["documents_held"] = docs

	if renterType == string(engine.RenterStudent) {
		bursary, err := selectOne("Receiving a bursary?", []string{"No", "Yes"})
		if err != nil {
			return profile, listing, err
		}
		renterAnswers["student_bursary_flag"] = bursary == "Yes"
	}

	listingAnswers := map[string]any{}
	for _, q := range []struct{ key, label string }{
		{"rent", "Listing rent"},
		{"deposit", "Deposit"},
		{"application_fee", "Application fee"},
	} {
		answer, err := promptNumber(q.label)
		if err != nil {
			return profile, listing, err
		}
		listingAnswers[q.key] = answer
	}

	required, err := promptDocs("Required documents (comma separated, empty if none)")
	if err != nil {
		return profile, listing, err
	}
	listingAnswers["required_documents"] = required

	demand, err := selectOne("Area demand", []string{
		string(engine.DemandLow),
		string(engine.DemandMedium),
		string(engine.DemandHigh),
	})
	if err != nil {
		return profile, listing, err
	}
	listingAnswers["area_demand"] = demand

	if err := decodeAnswers(renterAnswers, &profile); err != nil {
		return profile, listing, fmt.Errorf("decoding renter answers: %w", err)
	}
	if err := decodeAnswers(listingAnswers, &listing); err != nil {
		return profile, listing, fmt.Errorf("decoding listing answers: %w", err)
	}

	return profile, listing, nil
}

func decodeAnswers(answers map[string]any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(answers)
}

func selectOne(label string, items []string) (string, error) {
	prompt := promptui.Select{Label: label, Items: items}
	_, selected, err := prompt.Run()
	return selected, err
}

func promptNumber(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if _, err := strconv.Atoi(strings.TrimSpace(input)); err != nil {
				return fmt.Errorf("enter a whole number")
			}
			return nil
		},
	}
	answer, err := prompt.Run()
	return strings.TrimSpace(answer), err
}

func promptDocs(label string) ([]string, error) {
	prompt := promptui.Prompt{Label: label}
	answer, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	tags := []string{}
	for _, tag := range strings.Split(answer, ",") {
		tag = string(engine.NormalizeDocumentKind(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
