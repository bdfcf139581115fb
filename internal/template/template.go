// Package template resolves a template reference given to "vue init" into the source to generate from
// and the notice, if any, the user should see first.
package template

import (
	"errors"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
)

const DefaultOfficialOrg = "vuejs-templates"

var ErrEmptyTemplate = errors.New("template name is required")

// localPathRe matches relative and absolute filesystem paths including Windows drive prefixes.
var localPathRe = regexp.MustCompile(`^[./]|(^[a-zA-Z]:)`)

type Kind int

const (
	// KindOfficial is a template maintained in the official templates organisation.
	KindOfficial Kind = iota
	// KindRepository is a template in a user specified "owner/repo" repository.
	KindRepository
	// KindLocal is a template directory on the local filesystem.
	KindLocal
)

func (k Kind) String() string {
	switch k {
	case KindOfficial:
		return "official"
	case KindRepository:
		return "repository"
	case KindLocal:
		return "local"
	default:
		return "unknown"
	}
}

type Notice int

const (
	NoticeNone Notice = iota
	// NoticeV2SuffixDeprecated is shown for official templates named with the legacy "-2.0" suffix.
	NoticeV2SuffixDeprecated
	// NoticeV2BranchDefault tells the user the default branch targets Vue 2.x and how to get Vue 1.x.
	NoticeV2BranchDefault
)

type Options struct {
	// OfficialOrg is the organisation official templates are fetched from. Defaults to DefaultOfficialOrg.
	OfficialOrg string
	// BranchNotice enables NoticeV2BranchDefault for official templates without an explicit branch.
	BranchNotice bool
}

type Plan struct {
	Template string
	Kind     Kind
	// Source is the absolute directory for local templates or "owner/repo[#branch]" otherwise.
	Source string
	// ProjectName is the name of the generated project.
	ProjectName string
	// NoticeName is the project name to show in suggested commands. It's empty for in-place generation.
	NoticeName string
	InPlace    bool
	Notice     Notice
	// Halt is set when the template must not be generated, the notice explains what to run instead.
	Halt bool
}

// IsLocalPath reports whether the template reference refers to a directory on the local filesystem.
func IsLocalPath(ref string) bool {
	return localPathRe.MatchString(ref)
}

// Resolve builds a generation plan for the template reference and the raw project name argument.
// An empty or "." name generates the project in place, in cwd.
func Resolve(ref, rawName, cwd string, opts Options) (Plan, error) {
	if ref == "" {
		return Plan{}, ErrEmptyTemplate
	}
	if opts.OfficialOrg == "" {
		opts.OfficialOrg = DefaultOfficialOrg
	}

	plan := Plan{
		Template:    ref,
		InPlace:     rawName == "" || rawName == ".",
		ProjectName: rawName,
		NoticeName:  rawName,
	}
	if plan.InPlace {
		plan.ProjectName = filepath.Base(cwd)
		plan.NoticeName = ""
	}

	switch {
	case IsLocalPath(ref):
		plan.Kind = KindLocal
		plan.Source = ref
		if !filepath.IsAbs(ref) {
			plan.Source = filepath.Join(cwd, ref)
		}
	case strings.Contains(ref, "/"):
		plan.Kind = KindRepository
		plan.Source = ref
	default:
		plan.Kind = KindOfficial
		plan.Source = opts.OfficialOrg + "/" + ref
		// An explicit branch is taken as is.
		if !strings.Contains(ref, "#") {
			if strings.Contains(ref, "-2.0") {
				plan.Notice = NoticeV2SuffixDeprecated
				plan.Halt = true
			} else if opts.BranchNotice {
				plan.Notice = NoticeV2BranchDefault
			}
		}
	}

	slog.Debug("Resolved template.", "template", ref, "kind", plan.Kind, "source", plan.Source,
		"project", plan.ProjectName, "in_place", plan.InPlace, "halt", plan.Halt)
	return plan, nil
}
