// Package selection resolves per-file part selections from command line tokens.
//
// A token starting with "+" holds a comma separated list of selectors for
// the preceding file, or for all files when no file precedes it. A token
// starting with "++" additionally strips unselected bytes. Any other
// token is a file path.
package selection

import (
	"strings"

	"loov.dev/elfmap/internal/region"
)

// Options configure which parts of a file are shown.
type Options struct {
	Selectors []region.Selector
	Strip     bool
}

// Merge combines defaults with the options, defaults first.
func (opts Options) Merge(defaults Options) Options {
	selectors := make([]region.Selector, 0, len(defaults.Selectors)+len(opts.Selectors))
	selectors = append(selectors, defaults.Selectors...)
	selectors = append(selectors, opts.Selectors...)
	if len(selectors) == 0 {
		selectors = nil
	}
	return Options{
		Selectors: selectors,
		Strip:     opts.Strip || defaults.Strip,
	}
}

// String formats the options in command line syntax.
func (opts Options) String() string {
	if len(opts.Selectors) == 0 && !opts.Strip {
		return ""
	}
	var b strings.Builder
	b.WriteString("+")
	if opts.Strip {
		b.WriteString("+")
	}
	for i, sel := range opts.Selectors {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(sel.String())
	}
	return b.String()
}

// File is a path with its resolved options.
type File struct {
	Path    string
	Options Options
}

// Plan is the result of resolving the command line.
type Plan struct {
	// Global applies to every file and is already merged into Files.
	Global Options
	Files  []File
}

// Paths returns the file paths in order.
func (plan Plan) Paths() []string {
	paths := make([]string, len(plan.Files))
	for i, f := range plan.Files {
		paths[i] = f.Path
	}
	return paths
}

// scope collects the raw selector tokens of one file or of the global scope.
type scope struct {
	path   string
	tokens []string
}

// Resolve parses args and merges defaults and global selectors into every file.
func Resolve(args []string, defaults Options) (Plan, error) {
	global, files := split(args)
	if len(files) == 0 {
		return Plan{}, ErrNoFiles
	}

	globalOpts, err := resolveScope(global)
	if err != nil {
		return Plan{}, err
	}
	globalOpts = globalOpts.Merge(defaults)

	plan := Plan{
		Global: globalOpts,
		Files:  make([]File, 0, len(files)),
	}
	for _, file := range files {
		opts, err := resolveScope(file)
		if err != nil {
			return Plan{}, err
		}
		plan.Files = append(plan.Files, File{
			Path:    file.path,
			Options: opts.Merge(globalOpts),
		})
	}
	return plan, nil
}

// split assigns each selection token to the scope it belongs to.
func split(args []string) (global scope, files []scope) {
	for _, arg := range args {
		switch {
		case !strings.HasPrefix(arg, "+"):
			files = append(files, scope{path: arg})
		case len(files) == 0:
			global.tokens = append(global.tokens, arg)
		default:
			last := &files[len(files)-1]
			last.tokens = append(last.tokens, arg)
		}
	}
	return global, files
}

func resolveScope(s scope) (Options, error) {
	var opts Options
	for _, token := range s.tokens {
		list := strings.TrimPrefix(token, "+")
		if strings.HasPrefix(list, "+") {
			list = list[1:]
			opts.Strip = true
		}

		items, err := splitList(list)
		if err != nil {
			return Options{}, &Error{Path: s.path, Token: token, Err: err}
		}
		for _, item := range items {
			sel, err := region.ParseSelector(item)
			if err != nil {
				return Options{}, &Error{Path: s.path, Token: token, Err: err}
			}
			opts.Selectors = append(opts.Selectors, sel)
		}
	}
	return opts, nil
}

// ParseList parses selectors that are not part of a token, e.g. from a config file.
func ParseList(items []string) ([]region.Selector, error) {
	selectors := make([]region.Selector, 0, len(items))
	for _, item := range items {
		sel, err := region.ParseSelector(item)
		if err != nil {
			return nil, &Error{Token: item, Err: err}
		}
		selectors = append(selectors, sel)
	}
	return selectors, nil
}

// splitList splits a comma separated selector list.
//
// A /regexp/ item extends to the first "/" that is followed by a comma,
// so patterns may contain commas.
func splitList(list string) ([]string, error) {
	if list == "" {
		return nil, ErrEmptyList
	}

	var items []string
	for {
		var item string
		if strings.HasPrefix(list, "/") {
			if end := strings.Index(list[1:], "/,"); end >= 0 {
				item, list = list[:end+2], list[end+2:]
			} else {
				item, list = list, ""
			}
		} else if comma := strings.IndexByte(list, ','); comma >= 0 {
			item, list = list[:comma], list[comma:]
		} else {
			item, list = list, ""
		}

		if item == "" {
			return nil, region.ErrEmptySelector
		}
		items = append(items, item)

		if list == "" {
			return items, nil
		}
		// skip the comma
		list = list[1:]
		if list == "" {
			return nil, region.ErrEmptySelector
		}
	}
}
