package scaffold

import (
	"github.com/featurekit/vue-feature/internal/placeholder"
)

// Template ids the plan draws from.
const (
	TemplateIndex      = "index"
	TemplateTable      = "table"
	TemplateForm       = "form"
	TemplateStore      = "store"
	TemplateComposable = "composable"
	TemplateAPI        = "api"
	TemplateTypes      = "types"
)

// Step is one file emission: which template to render and where to put it.
// OutputPath is relative to the feature directory and may contain the
// standard placeholders.
type Step struct {
	TemplateID string
	OutputPath string
	Label      string
}

// Plan is the ordered list of steps for one run.
type Plan []Step

var (
	indexStep      = Step{TemplateIndex, "Index.vue", "Index.vue"}
	tableStep      = Step{TemplateTable, "components/{{FEATURE_PASCAL}}Table.vue", "Table component"}
	formStep       = Step{TemplateForm, "components/{{FEATURE_PASCAL}}Form.vue", "Form component"}
	storeStep      = Step{TemplateStore, "stores/use{{FEATURE_PASCAL}}Store.ts", "Pinia store"}
	composableStep = Step{TemplateComposable, "composables/use{{FEATURE_PASCAL}}.ts", "composable"}
	apiStep        = Step{TemplateAPI, "services/{{FEATURE_CAMEL}}Api.ts", "API service"}
	typesStep      = Step{TemplateTypes, "types.ts", "types"}
)

// BuildPlan selects the steps for opts. Exactly one of the store and
// composable steps is always included.
func BuildPlan(opts Options) Plan {
	plan := Plan{indexStep}
	if opts.IncludeTable {
		plan = append(plan, tableStep)
	}
	if opts.IncludeForm {
		plan = append(plan, formStep)
	}
	if opts.IncludeStore {
		plan = append(plan, storeStep)
	} else {
		plan = append(plan, composableStep)
	}
	return append(plan, apiStep, typesStep)
}

// TemplateIDs returns the template ids the plan needs, in order.
func (p Plan) TemplateIDs() []string {
	ids := make([]string, len(p))
	for i, s := range p {
		ids[i] = s.TemplateID
	}
	return ids
}

// Resolve expands the placeholders in every step's output path.
func (p Plan) Resolve(values map[string]string) []string {
	paths := make([]string, len(p))
	for i, s := range p {
		paths[i] = placeholder.Replace(s.OutputPath, values)
	}
	return paths
}
