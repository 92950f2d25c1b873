package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/geofffranks/simpleyaml"
	"github.com/geofffranks/yaml"
	"github.com/mattn/go-isatty"
	"github.com/starkandwayne/goutils/ansi"
	"github.com/starkandwayne/goutils/tree"
	"github.com/voxelbrain/goptions"

	"github.com/AlseFum/genson"
	"github.com/AlseFum/genson/log"
)

// Version holds the current version of genson
var Version = "(development)"

var printfStdOut = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

var getopts = func(o interface{}) {
	err := goptions.Parse(o)
	if err != nil {
		usage()
	}
}

var exit = func(code int) {
	os.Exit(code)
}

var usage = func() {
	goptions.PrintHelp()
	exit(1)
}

func envFlag(varname string) bool {
	val := os.Getenv(varname)
	return val != "" && strings.ToLower(val) != "false" && val != "0"
}

func main() {
	options := struct {
		Input      string `goptions:"-i, --input, description='Schema file to evaluate (JSON, or YAML as a fallback)'"`
		Seed       string `goptions:"--seed, description='Seed the random source for reproducible output'"`
		CherryPick string `goptions:"--cherry-pick, description='Evaluate only the sub-schema at the given path (e.g. $.story.intro)'"`
		Dump       bool   `goptions:"--dump, description='Dump the (cherry-picked) schema as YAML to stderr before evaluating'"`
		Debug      bool   `goptions:"-D, --debug, description='Enable debugging'"`
		Trace      bool   `goptions:"-T, --trace, description='Enable trace mode debugging (very verbose)'"`
		Version    bool   `goptions:"-v, --version, description='Display version information'"`
		Color      string `goptions:"--color, description='Control color output (on/off/auto, default: auto)'"`
	}{
		Input: "example.json",
	}
	getopts(&options)

	if envFlag("GENSON_DEBUG") || options.Debug {
		log.DebugOn = true
	}
	if envFlag("GENSON_TRACE") || options.Trace {
		log.TraceOn = true
		log.DebugOn = true
	}

	if options.Version {
		printfStdOut("%s - Version %s\n", os.Args[0], Version)
		exit(0)
		return
	}

	shouldEnableColor := false
	switch options.Color {
	case "on":
		shouldEnableColor = true
	case "off":
		shouldEnableColor = false
	case "auto", "":
		shouldEnableColor = isatty.IsTerminal(os.Stderr.Fd())
	default:
		log.PrintfStdErr("Invalid --color option: %s. Must be 'on', 'off', or 'auto'.\n", options.Color)
		exit(1)
		return
	}
	ansi.Color(shouldEnableColor)

	schema, err := loadSchema(options.Input)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(1)
		return
	}

	if options.CherryPick != "" {
		schema, err = cherryPick(schema, options.CherryPick)
		if err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(1)
			return
		}
	}

	if options.Dump {
		dumped, err := yaml.Marshal(schema)
		if err != nil {
			log.PrintfStdErr("Unable to dump schema as YAML: %s\n", err.Error())
			exit(1)
			return
		}
		log.PrintfStdErr("%s\n", string(dumped))
	}

	var opts []genson.Option
	if options.Seed != "" {
		seed, err := strconv.ParseInt(options.Seed, 10, 64)
		if err != nil {
			log.PrintfStdErr("Invalid --seed value %q: must be an integer\n", options.Seed)
			exit(1)
			return
		}
		opts = append(opts, genson.WithSeed(seed))
	}

	output, err := genson.Evaluate(schema, opts...)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(1)
		return
	}

	printfStdOut("%s\n", output)
	exit(0)
}

// loadSchema reads a schema file and parses it, trying JSON first and
// falling back to YAML. Either way the result is normalized to the
// string-keyed shape the evaluator consumes.
func loadSchema(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ansi.Errorf("@R{Error reading file} @r{%s}: %s", path, err)
	}

	var parsed interface{}
	if jsonErr := json.Unmarshal(data, &parsed); jsonErr == nil {
		return parsed, nil
	}

	y, yamlErr := simpleyaml.NewYaml(data)
	if yamlErr != nil {
		return nil, ansi.Errorf("@R{%s: not parseable as JSON or YAML}: %s", path, yamlErr)
	}
	doc, yamlErr := y.Map()
	if yamlErr != nil {
		return nil, ansi.Errorf("@R{%s: root of the schema must be a mapping}: %s", path, yamlErr)
	}
	return normalize(doc), nil
}

// normalize converts YAML's interface-keyed mappings into the string-keyed
// shape the evaluator consumes.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprintf("%v", k)] = normalize(val)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = normalize(val)
		}
		return m
	case []interface{}:
		l := make([]interface{}, len(t))
		for i, val := range t {
			l[i] = normalize(val)
		}
		return l
	default:
		return v
	}
}

// cherryPick selects a sub-schema from the parsed document by path.
func cherryPick(schema interface{}, path string) (interface{}, error) {
	cursor, err := tree.ParseCursor(path)
	if err != nil {
		return nil, ansi.Errorf("@R{Invalid --cherry-pick path} @r{%s}: %s", path, err)
	}
	picked, err := cursor.Resolve(schema)
	if err != nil {
		return nil, ansi.Errorf("@R{Unable to resolve} @r{%s}: %s", path, err)
	}
	return picked, nil
}
