package cmd

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/laserpy/unicon/universal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("record", "r", false, "Generate the JSON Schema of a single constant (\"get --json\")")
}

// schemaCmd generates JSON schemas for the structured outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the structured JSON outputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var target any = &ListOutput{}
		if lo.Must(cmd.Flags().GetBool("record")) {
			target = &universal.Record{}
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(reflectSchema(target))
	},
}

func reflectSchema(target any) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return t.Name()
	}

	return reflector.Reflect(target)
}
