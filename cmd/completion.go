package cmd

import (
	"flag"

	"github.com/etnz/cookiecost"
	"github.com/etnz/cookiecost/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Install it with COMP_INSTALL=1 ccc, and remove it with COMP_UNINSTALL=1 ccc.
func Completion() *complete.Command {
	calculations := complete.PredictFunc(predictCalculations)
	return &complete.Command{
		Flags: globalFlags(),
		Sub: map[string]*complete.Command{
			"list":   {},
			"recent": {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"show":   {Args: calculations},
			"edit":   {Args: calculations},
			"delete": {Args: calculations},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import": {
				Flags: map[string]complete.Predictor{"diff": predict.Nothing},
				Args:  predict.Files("*.json"),
			},
			"share": {
				Flags: map[string]complete.Predictor{"copy": predict.Nothing},
				Args:  calculations,
			},
			"open": {
				Flags: map[string]complete.Predictor{"save": predict.Nothing},
				Args:  predict.Something,
			},
			"lang":  {Args: predict.Set{string(cookiecost.English), string(cookiecost.Spanish)}},
			"topic": {Args: complete.PredictFunc(predictTopics)},
		},
	}
}

// globalFlags predicts the flags registered on the command line.
func globalFlags() map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			flags[f.Name] = predict.Dirs("*")
		case "v":
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

// predictCalculations predicts the names of saved calculations, most recent first.
func predictCalculations(prefix string) []string {
	var names []string
	for _, c := range OpenStore().Recent(-1) {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return names
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}
