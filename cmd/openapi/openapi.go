package openapi

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frain-dev/oasprobe/internal/pkg/cli"
	"github.com/frain-dev/oasprobe/internal/pkg/openapi"
	"github.com/frain-dev/oasprobe/internal/pkg/scope"
	"github.com/frain-dev/oasprobe/pkg/log"
	"github.com/frain-dev/oasprobe/pkg/models"
)

func AddOpenAPICommand(app *cli.App) *cobra.Command {
	var (
		inputFile   string
		outputFile  string
		scopeList   string
		payloadFile string
		webhookName string
	)

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Extract webhook schemas from OpenAPI specifications",
		Long: `Extract request schemas from OpenAPI 3.x specifications and convert them to JSON Schema format.
Use --scope to pick the sections to read (webhooks, paths, schemas) and --payload to
check a JSON payload against one of the extracted schemas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" {
				return fmt.Errorf("input file is required")
			}

			scopes, err := scope.ParseList(scopeList)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("error reading OpenAPI spec: %v", err)
			}

			doc, err := openapi.Load(content)
			if err != nil {
				return fmt.Errorf("error loading OpenAPI 3.x spec: %v", err)
			}

			collection, err := openapi.New(doc).Extract(scopes...)
			if err != nil {
				return fmt.Errorf("error extracting webhooks: %v", err)
			}

			app.Logger.WithFields(log.Fields{"input": inputFile, "schemas": len(collection.Webhooks)}).Debug("extracted schemas")

			if payloadFile != "" {
				return validatePayload(cmd, collection, webhookName, payloadFile)
			}

			output, err := json.MarshalIndent(collection, "", "  ")
			if err != nil {
				return fmt.Errorf("error marshaling output: %v", err)
			}

			if outputFile == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully extracted %d webhook schemas. See below:\n%s\n", len(collection.Webhooks), output)
				return nil
			}

			err = os.WriteFile(outputFile, output, 0644)
			if err != nil {
				return fmt.Errorf("error writing output file: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully extracted %d webhook schemas to %s\n", len(collection.Webhooks), outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to OpenAPI specification file (required)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path to output JSON Schema file")
	cmd.Flags().StringVar(&scopeList, "scope", string(scope.Webhooks), "Comma separated scopes to extract: webhooks, paths, schemas")
	cmd.Flags().StringVar(&payloadFile, "payload", "", "Path to a JSON payload to validate")
	cmd.Flags().StringVar(&webhookName, "webhook", "", `Schema to validate the payload against, e.g. "POST newPet" (default: the only schema)`)

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func validatePayload(cmd *cobra.Command, collection *models.WebhookCollection, name, payloadFile string) error {
	var webhook *models.WebhookSchema
	switch {
	case name != "":
		w, ok := collection.Find(name)
		if !ok {
			return fmt.Errorf("schema %q not found", name)
		}
		webhook = w
	case len(collection.Webhooks) == 1:
		webhook = &collection.Webhooks[0]
	default:
		return fmt.Errorf("found %d schemas, pick one with --webhook", len(collection.Webhooks))
	}

	payload, err := os.ReadFile(payloadFile)
	if err != nil {
		return fmt.Errorf("error reading payload: %v", err)
	}

	result, err := openapi.Validate(webhook, payload)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.IsValid {
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s: %s\n", e.Field, e.Description)
		}
		return fmt.Errorf("payload does not match %s", webhook.Name)
	}

	fmt.Fprintf(out, "Payload matches %s\n", webhook.Name)
	return nil
}
