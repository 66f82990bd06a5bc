// Where: internal/command/parameters.go
// What: Parameter-set listing and interactive selection.
// Why: Let users pick a tracking parameter set without remembering file names.
package command

import (
	"github.com/charmbracelet/log"
	"github.com/optofluidics/ofbatch/internal/infra/interaction"
	"github.com/optofluidics/ofbatch/internal/infra/paramset"
	"github.com/optofluidics/ofbatch/internal/infra/ui"
)

const noParameterSetsMessage = "No parameter sets found. Relying on defaults."

func runListParameters(cli CLI, deps Dependencies, logger *log.Logger) int {
	settings, err := resolveSettings(cli, logger)
	if err != nil {
		return exitWithError(deps.Out, err)
	}
	sets, err := paramset.List(settings.ParametersDir)
	if err != nil {
		return exitWithSuggestion(deps.Out, err.Error(), []string{
			"Set --parameters-dir or parameters_dir in the config file",
			"Or point --host at the Fiji launcher inside the Fiji folder",
		})
	}

	console := plainUI(deps.Out)
	if len(sets) == 0 {
		console.Info("No parameter sets found in " + settings.ParametersDir + ".")
		return 0
	}
	rows := make([]ui.KeyValue, 0, len(sets))
	for _, set := range sets {
		comments := set.Comments
		if comments == "" {
			comments = "-"
		}
		rows = append(rows, ui.KeyValue{Key: set.Name, Value: comments})
	}
	console.Block("🧪", "Parameter sets in "+settings.ParametersDir, rows)
	return 0
}

// chooseParameterSet prompts for a parameter set. ok is false when no sets
// exist, in which case the plugin falls back to its defaults.
func chooseParameterSet(deps Dependencies, dir string) (selected string, ok bool, err error) {
	if !deps.IsTerminal(deps.Stdin) {
		return "", false, errNotInteractive
	}
	sets, err := paramset.List(dir)
	if err != nil {
		return "", false, err
	}
	if len(sets) == 0 {
		plainUI(deps.Out).Warn(noParameterSetsMessage)
		return "", false, nil
	}

	options := make([]interaction.SelectOption, len(sets))
	for i, set := range sets {
		options[i] = interaction.SelectOption{Label: set.Label(), Value: set.Name}
	}
	selected, err = deps.Prompter.SelectValue("Select a parameter set", options)
	if err != nil {
		return "", false, err
	}
	return selected, selected != "", nil
}
