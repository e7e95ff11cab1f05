// Package main checks that a revision of the forum API document does not
// drop paths, operations or response codes that clients rely on.
//
//	openapi-compat -base swagger.released.json            # against the built-in document
//	openapi-compat -base old.yaml -revision new.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"forumapi/docs"

	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

var httpMethods = []string{"get", "put", "post", "delete", "patch", "head", "options"}

// apiDoc is the part of a swagger/OpenAPI document the check looks at:
// path -> method -> response codes.
type apiDoc struct {
	Paths map[string]map[string][]string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("openapi-compat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	basePath := fs.String("base", "", "baseline swagger.json or swagger.yaml path")
	revisionPath := fs.String("revision", "", "revision document path (default: the document built into this binary)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if strings.TrimSpace(*basePath) == "" {
		fmt.Fprintln(stderr, "usage: openapi-compat -base <path> [-revision <path>]")
		return 2
	}

	base, err := loadSpec(*basePath)
	if err != nil {
		fmt.Fprintf(stderr, "load base document: %v\n", err)
		return 1
	}
	var revision apiDoc
	if strings.TrimSpace(*revisionPath) == "" {
		revision, err = registeredSpec()
	} else {
		revision, err = loadSpec(*revisionPath)
	}
	if err != nil {
		fmt.Fprintf(stderr, "load revision document: %v\n", err)
		return 1
	}

	if issues := compare(base, revision); len(issues) > 0 {
		fmt.Fprintf(stderr, "%d breaking change(s):\n", len(issues))
		for _, issue := range issues {
			fmt.Fprintf(stderr, "- %s\n", issue)
		}
		return 1
	}
	fmt.Fprintln(stdout, "openapi compatibility check passed")
	return 0
}

// registeredSpec parses the document served at /swagger/doc.json.
func registeredSpec() (apiDoc, error) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return apiDoc{}, err
	}
	return parseSpec([]byte(raw))
}

func loadSpec(path string) (apiDoc, error) {
	// #nosec G304: path comes from CLI flags in a dev tool
	raw, err := os.ReadFile(path)
	if err != nil {
		return apiDoc{}, err
	}
	return parseSpec(raw)
}

// parseSpec accepts JSON or YAML, since JSON is valid YAML. Path-level keys
// that are not HTTP methods (parameters, summary, $ref) are ignored.
func parseSpec(raw []byte) (apiDoc, error) {
	var doc struct {
		Paths map[string]map[string]yaml.Node `yaml:"paths"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return apiDoc{}, err
	}
	if doc.Paths == nil {
		return apiDoc{}, errors.New("missing top-level paths field")
	}

	out := apiDoc{Paths: make(map[string]map[string][]string, len(doc.Paths))}
	for path, item := range doc.Paths {
		ops := make(map[string][]string)
		for key, node := range item {
			method := strings.ToLower(strings.TrimSpace(key))
			if !slices.Contains(httpMethods, method) {
				continue
			}
			var op struct {
				Responses map[string]yaml.Node `yaml:"responses"`
			}
			if err := node.Decode(&op); err != nil {
				return apiDoc{}, fmt.Errorf("%s %s: %w", strings.ToUpper(method), path, err)
			}
			codes := make([]string, 0, len(op.Responses))
			for code := range op.Responses {
				codes = append(codes, strings.ToLower(strings.TrimSpace(code)))
			}
			ops[method] = codes
		}
		if len(ops) > 0 {
			out.Paths[path] = ops
		}
	}
	return out, nil
}

// compare lists what base offers that revision no longer does, sorted.
func compare(base, revision apiDoc) []string {
	var issues []string
	for path, baseOps := range base.Paths {
		revOps, ok := revision.Paths[path]
		if !ok {
			issues = append(issues, "removed path: "+path)
			continue
		}
		for method, codes := range baseOps {
			op := strings.ToUpper(method) + " " + path
			revCodes, ok := revOps[method]
			if !ok {
				issues = append(issues, "removed operation: "+op)
				continue
			}
			for _, code := range codes {
				if !slices.Contains(revCodes, code) {
					issues = append(issues, "removed response code: "+op+" -> "+strings.ToUpper(code))
				}
			}
		}
	}
	slices.Sort(issues)
	return issues
}
