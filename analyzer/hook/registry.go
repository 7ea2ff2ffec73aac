package hook

import (
	"github.com/Masterminds/semver/v3"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/hashicorp/go-set/v3"
	"strings"
)

// APIVersion is the version of the plugin API this analyzer implements
const APIVersion = "1.4.0"

type classProvider struct {
	classes  *set.Set[string]
	provider MethodReturnTypeProvider
}

// Registry holds the providers and handlers plugins registered.
// It is populated once, before analysis starts, and only read afterwards
type Registry struct {
	version       *semver.Version
	providers     []classProvider
	issueHandlers []BeforeAddIssueHandler
}

func NewRegistry() *Registry {
	return &Registry{version: semver.MustParse(APIVersion)}
}

// APIVersion is the version of the plugin API plugins are registering against
func (r *Registry) APIVersion() *semver.Version {
	return r.version
}

// RegisterMethodReturnTypeProvider registers p for calls on any of classes.
// Class names are matched case-insensitively
func (r *Registry) RegisterMethodReturnTypeProvider(classes []string, p MethodReturnTypeProvider) {
	lowered := set.New[string](len(classes))
	for _, c := range classes {
		lowered.Insert(strings.ToLower(c))
	}
	r.providers = append(r.providers, classProvider{classes: lowered, provider: p})
}

func (r *Registry) RegisterBeforeAddIssueHandler(h BeforeAddIssueHandler) {
	r.issueHandlers = append(r.issueHandlers, h)
}

// MethodReturnType asks, in registration order, the providers registered for
// event.FQClassName. The first non-nil answer wins
func (r *Registry) MethodReturnType(event *MethodReturnTypeEvent) *types.Union {
	class := strings.ToLower(event.FQClassName)
	for _, cp := range r.providers {
		if !cp.classes.Contains(class) {
			continue
		}
		if t := cp.provider.MethodReturnType(event); t != nil {
			return t
		}
	}
	return nil
}

// ShouldAddIssue is false when any handler vetoes the issue
func (r *Registry) ShouldAddIssue(event *BeforeAddIssueEvent) bool {
	for _, h := range r.issueHandlers {
		if !h.BeforeAddIssue(event) {
			return false
		}
	}
	return true
}

// ProvidedClasses returns the sorted classes any provider is registered for
func (r *Registry) ProvidedClasses() []string {
	all := set.New[string](0)
	for _, cp := range r.providers {
		all.InsertSet(cp.classes)
	}
	return set.TreeSetFrom(all.Slice(), strings.Compare).Slice()
}
