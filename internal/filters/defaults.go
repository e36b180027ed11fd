package filters

import (
	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// RegisterDefaults registers all built-in stages with the registry.
// Call this during application initialisation to enable standard stages.
func RegisterDefaults(r *Registry) {
	r.Register(SuspectDevice{}.Name(), buildSuspectDevice)
	r.Register(RelevantProblemType{}.Name(), buildRelevantProblemType)
	r.Register(TermPresence{}.Name(), buildTermPresence)
}

func buildSuspectDevice(map[string]any) (driven.FilterStage, error) {
	return SuspectDevice{}, nil
}

// buildRelevantProblemType creates the problem type stage.
// Supported config keys:
//   - problem_type_mode (string): "flag" (default) or "filter"
func buildRelevantProblemType(cfg map[string]any) (driven.FilterStage, error) {
	mode, err := ParseProblemTypeMode(getStringFromConfig(cfg, "problem_type_mode"))
	if err != nil {
		return nil, err
	}
	return RelevantProblemType{Mode: mode}, nil
}

// buildTermPresence creates the term presence stage.
// Supported config keys:
//   - presence_term (string): phrase to flag (default: "machine learning")
//   - presence_column (string): flag column name (default: derived from
//     the term, see PresenceColumn)
func buildTermPresence(cfg map[string]any) (driven.FilterStage, error) {
	stage := NewTermPresence()
	if term := getStringFromConfig(cfg, "presence_term"); term != "" {
		stage.Term = term
		stage.Column = PresenceColumn(term)
	}
	if col := getStringFromConfig(cfg, "presence_column"); col != "" {
		stage.Column = domain.Column(col)
	}
	return stage, nil
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	s, _ := cfg[key].(string)
	return s
}
