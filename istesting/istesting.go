// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package istesting runs scenarios written in gherkin against typed
// references and descriptors.
//
//	Scenario: balances are never negative
//	  Given create acct
//	  And bind balance uint acct.balance
//	  When write balance -5
//	  Then error "Expected a value that is: uint; got int"
//	  And assert acct.balance undefined
package istesting

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/gherkin-go"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/satori/go.uuid"

	"github.com/homelight/is"
)

type command interface {
	run(ctx *Context) error
}

// Assert all commands implement the command interface.
var _ = []command{
	cCreate{},
	cSet{},
	cBind{},
	cWrite{},
	cObserve{},
	cAssert{},
	cMatch{},
	cObserved{},
	cError{},
}

type cCreate struct {
	obj string
}

type cSet struct {
	obj    string
	values map[string]expr
}

type cBind struct {
	ref, typ  string
	obj, prop string
}

type cWrite struct {
	ref   string
	value expr
}

type cObserve struct {
	ref string
}

type cAssert struct {
	// either ref, or obj and prop
	ref       string
	obj, prop string
	expected  expr
}

type cMatch struct {
	typ      string
	value    expr
	expected bool
}

type cObserved struct {
	ref    string
	values []expr
}

type cError struct {
	// message is empty when no error is expected
	message string
}

const verbs = "create, set, bind, write, observe, assert, matches, rejects, observed, error, or no error"

func stepToCommand(step *gherkin.Step) (command, error) {
	text := strings.TrimSpace(step.Text)
	parts := strings.SplitN(text, " ", 2)
	var rest string
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	switch parts[0] {
	case "create":
		if rest == "" || strings.Contains(rest, " ") {
			return nil, fmt.Errorf("%s: expecting create <obj>", text)
		}
		return cCreate{rest}, nil
	case "set":
		var set cSet
		if step.Argument != nil {
			if rest == "" || strings.ContainsAny(rest, " .") {
				return nil, fmt.Errorf("%s: expecting <obj> with data table", text)
			}
			values, err := tableToContents(step.Argument)
			if err != nil {
				return nil, fmt.Errorf("%s: %s", text, err)
			}
			set.obj = rest
			set.values = values
			return set, nil
		}
		target, value := splitWord(rest)
		obj, prop, ok := splitObjAndProp(target)
		if !ok {
			return nil, fmt.Errorf("%s: expecting <obj>.<prop> with value", text)
		}
		if value == "" {
			return nil, fmt.Errorf("%s: missing value", text)
		}
		set.obj = obj
		set.values = map[string]expr{
			prop: expr{input: value},
		}
		return set, nil
	case "bind":
		ref, remainder := splitWord(rest)
		typ, target, err := splitDescriptor(remainder)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", text, err)
		}
		obj, prop, ok := splitObjAndProp(target)
		if ref == "" || typ == "" || !ok {
			return nil, fmt.Errorf("%s: expecting bind <ref> <descriptor> <obj>.<prop>", text)
		}
		return cBind{ref, typ, obj, prop}, nil
	case "write":
		ref, value := splitWord(rest)
		if ref == "" || value == "" {
			return nil, fmt.Errorf("%s: expecting write <ref> <value>", text)
		}
		return cWrite{ref, expr{input: value}}, nil
	case "observe":
		if rest == "" || strings.Contains(rest, " ") {
			return nil, fmt.Errorf("%s: expecting observe <ref>", text)
		}
		return cObserve{rest}, nil
	case "assert":
		target, value := splitWord(rest)
		if target == "" || value == "" {
			return nil, fmt.Errorf("%s: expecting assert <ref> <value> or assert <obj>.<prop> <value>", text)
		}
		if obj, prop, ok := splitObjAndProp(target); ok {
			return cAssert{obj: obj, prop: prop, expected: expr{input: value}}, nil
		}
		return cAssert{ref: target, expected: expr{input: value}}, nil
	case "matches", "rejects":
		typ, value, err := splitDescriptor(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", text, err)
		}
		if typ == "" || value == "" {
			return nil, fmt.Errorf("%s: expecting %s <descriptor> <value>", text, parts[0])
		}
		return cMatch{typ, expr{input: value}, parts[0] == "matches"}, nil
	case "observed":
		ref, value := splitWord(rest)
		if ref == "" {
			return nil, fmt.Errorf("%s: expecting observed <ref> with value or value table", text)
		}
		observed := cObserved{ref: ref}
		switch {
		case value != "" && step.Argument != nil:
			return nil, fmt.Errorf("%s: expecting either a value or a value table", text)
		case value != "":
			observed.values = []expr{{input: value}}
		case step.Argument != nil:
			values, err := tableToValues(step.Argument)
			if err != nil {
				return nil, fmt.Errorf("%s: %s", text, err)
			}
			observed.values = values
		}
		return observed, nil
	case "error":
		message, err := strconv.Unquote(rest)
		if err != nil || message == "" {
			return nil, fmt.Errorf(`%s: expecting quoted message, e.g. "some message"`, text)
		}
		return cError{message}, nil
	case "no":
		if rest != "error" {
			return nil, fmt.Errorf("%s: expecting no error", text)
		}
		return cError{}, nil
	default:
		if parts[0] == "" {
			return nil, fmt.Errorf("no verb: expecting verb %s", verbs)
		}
		return nil, fmt.Errorf("wrong verb '%s': expecting verb %s", parts[0], verbs)
	}
}

func splitWord(input string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(input), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func splitObjAndProp(objAndProp string) (string, string, bool) {
	parts := strings.SplitN(objAndProp, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (cmd cCreate) run(ctx *Context) error {
	if _, ok := ctx.objects[cmd.obj]; ok {
		return fmt.Errorf("object %s already created", cmd.obj)
	}
	ctx.objects[cmd.obj] = map[string]interface{}{
		"id": uuid.Must(uuid.NewV4()).String(),
	}
	return nil
}

func (cmd cSet) run(ctx *Context) error {
	obj, ok := ctx.objects[cmd.obj]
	if !ok {
		return fmt.Errorf("object %s not yet created", cmd.obj)
	}
	data, ok := obj.(map[string]interface{})
	if !ok {
		return fmt.Errorf("object %s is a %T, only created objects can be set", cmd.obj, obj)
	}
	for prop, value := range cmd.values {
		v, err := value.eval(ctx)
		if err != nil {
			return err
		}
		if v == is.Unset {
			delete(data, prop)
		} else {
			data[prop] = v
		}
	}
	return nil
}

func (cmd cBind) run(ctx *Context) error {
	if _, ok := ctx.refs[cmd.ref]; ok {
		return fmt.Errorf("ref %s already bound", cmd.ref)
	}
	obj, ok := ctx.objects[cmd.obj]
	if !ok {
		return fmt.Errorf("object %s not yet created", cmd.obj)
	}
	typ, err := ParseDescriptor(cmd.typ)
	if err != nil {
		return err
	}
	ref, err := is.NewRef(typ, obj, cmd.prop)
	if err != nil {
		return err
	}
	ctx.refs[cmd.ref] = ref
	return nil
}

func (cmd cWrite) run(ctx *Context) error {
	ref, ok := ctx.refs[cmd.ref]
	if !ok {
		return fmt.Errorf("ref %s not yet bound", cmd.ref)
	}
	value, err := cmd.value.eval(ctx)
	if err != nil {
		return err
	}
	ctx.err = ref.Set(value)
	return nil
}

func (cmd cObserve) run(ctx *Context) error {
	ref, ok := ctx.refs[cmd.ref]
	if !ok {
		return fmt.Errorf("ref %s not yet bound", cmd.ref)
	}
	if _, observing := ctx.logs[cmd.ref]; observing {
		return fmt.Errorf("ref %s already observed", cmd.ref)
	}
	ctx.logs[cmd.ref] = []interface{}{}
	_, err := ref.Observe(is.Observer(func(value interface{}) error {
		ctx.logs[cmd.ref] = append(ctx.logs[cmd.ref], value)
		return nil
	}))
	return err
}

func (cmd cAssert) run(ctx *Context) error {
	var (
		actual interface{}
		name   string
	)
	if cmd.ref != "" {
		ref, ok := ctx.refs[cmd.ref]
		if !ok {
			return fmt.Errorf("ref %s not yet bound", cmd.ref)
		}
		value, err := ref.Get()
		if err != nil {
			return err
		}
		actual, name = value, cmd.ref
	} else {
		obj, ok := ctx.objects[cmd.obj]
		if !ok {
			return fmt.Errorf("object %s not yet created", cmd.obj)
		}
		// reading through an unchecked ref gives the raw property
		ref, err := is.NewRef(is.Any, obj, cmd.prop)
		if err != nil {
			return err
		}
		value, err := ref.Get()
		if err != nil {
			return err
		}
		actual, name = value, cmd.obj+"."+cmd.prop
	}
	expected, err := cmd.expected.eval(ctx)
	if err != nil {
		return err
	}
	return compare(name, expected, actual)
}

func (cmd cMatch) run(ctx *Context) error {
	typ, err := ParseDescriptor(cmd.typ)
	if err != nil {
		return err
	}
	value, err := cmd.value.eval(ctx)
	if err != nil {
		return err
	}
	ok, err := is.Matches(typ, value)
	if err != nil {
		return err
	}
	if ok != cmd.expected {
		if cmd.expected {
			return fmt.Errorf("%s does not match %s", cmd.value, cmd.typ)
		}
		return fmt.Errorf("%s matches %s", cmd.value, cmd.typ)
	}
	return nil
}

func (cmd cObserved) run(ctx *Context) error {
	log, ok := ctx.logs[cmd.ref]
	if !ok {
		return fmt.Errorf("ref %s not observed", cmd.ref)
	}
	expected := []interface{}{}
	for _, value := range cmd.values {
		v, err := value.eval(ctx)
		if err != nil {
			return err
		}
		expected = append(expected, v)
	}
	return compare(cmd.ref+" observers", expected, log)
}

func (cmd cError) run(ctx *Context) error {
	switch {
	case cmd.message == "" && ctx.err != nil:
		return fmt.Errorf("expected no error, was <%s>", ctx.err)
	case cmd.message == "":
		return nil
	case ctx.err == nil:
		return fmt.Errorf("expected error <%s>, was none", cmd.message)
	case ctx.err.Error() != cmd.message:
		return fmt.Errorf("expected error <%s>, was <%s>", cmd.message, ctx.err)
	}
	return nil
}

var cmpOpts = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmp.Comparer(func(a, b *is.Token) bool { return a == b }),
}

func compare(name string, expected, actual interface{}) error {
	if cmp.Equal(expected, actual, cmpOpts...) {
		return nil
	}
	return fmt.Errorf("%s: expected <%v>, was <%v>\n%s",
		name, expected, actual, cmp.Diff(expected, actual, cmpOpts...))
}

// Context holds all that is necessary to run a scenario.
type Context struct {
	// Objects are objects made available to scenarios by name, in addition
	// to those created by the scenario itself. Objects are shared across
	// scenarios, and are modified by writes.
	Objects map[string]interface{}

	objects map[string]interface{}
	refs    map[string]*is.Ref
	logs    map[string][]interface{}

	// err holds the outcome of the last write
	err error
}

type expr struct {
	input string
}

func (e expr) eval(ctx *Context) (interface{}, error) {
	// lookup
	if obj, ok := ctx.objects[e.input]; ok {
		return obj, nil
	}

	// literal
	return ParseLiteral(e.input)
}

func (e expr) String() string {
	return e.input
}

// Scenario represents a single scenario from a .feature.
type Scenario struct {
	// Name is the scenario's name.
	Name string

	source   string
	steps    []*gherkin.Step
	commands []command
}

// Run runs the scenario using the provided context.
func (s Scenario) Run(ctx Context) error {
	ctx.objects = make(map[string]interface{})
	for name, obj := range ctx.Objects {
		ctx.objects[name] = obj
	}
	ctx.refs = make(map[string]*is.Ref)
	ctx.logs = make(map[string][]interface{})
	ctx.err = nil
	for i, cmd := range s.commands {
		if err := cmd.run(&ctx); err != nil {
			return niceErr(s.source, s.steps[i], err)
		}
	}
	return nil
}

func niceErr(source string, step *gherkin.Step, err error) error {
	return fmt.Errorf("%s:%d:%d: %s: %s",
		source, step.Location.Line, step.Location.Column,
		step.Text, err)
}

// ReadFeature reads a feature in gherkin syntax, and parses out all the
// scenarios contained herein.
func ReadFeature(reader io.Reader, source string) ([]Scenario, error) {
	doc, err := gherkin.ParseGherkinDocument(reader)
	if err != nil {
		return nil, err
	}
	if doc.Feature == nil {
		return nil, fmt.Errorf("%s: no feature", source)
	}

	return docToScenarios(doc, source)
}

// ReadFeatureFile reads the feature stored in filename.
func ReadFeatureFile(filename string) ([]Scenario, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadFeature(bufio.NewReader(file), filename)
}

// RunFeature runs a feature test.
func RunFeature(t *testing.T, filename string, opts ...Context) {
	scenarios, err := ReadFeatureFile(filename)
	if err != nil {
		t.Fatal(err)
	}

	// context
	var ctx Context
	switch len(opts) {
	case 0:
	case 1:
		ctx = opts[0]
	default:
		t.Fatalf("too many contexts provided")
	}

	// run scenarios
	for _, scenario := range scenarios {
		scenario := scenario
		t.Run(scenario.Name, func(t *testing.T) {
			if err := scenario.Run(ctx); err != nil {
				t.Error(err)
			}
		})
	}
}

func docToScenarios(doc *gherkin.GherkinDocument, source string) ([]Scenario, error) {
	var (
		bgSteps    []*gherkin.Step
		bgCommands []command
		scenarios  []Scenario
	)
	for _, child := range doc.Feature.Children {
		switch childValue := child.(type) {
		case *gherkin.Scenario:
			var commands []command
			for _, step := range childValue.Steps {
				cmd, err := stepToCommand(step)
				if err != nil {
					return nil, niceErr(source, step, err)
				}
				commands = append(commands, cmd)
			}
			scenarios = append(scenarios, Scenario{
				Name:     childValue.Name,
				steps:    childValue.Steps,
				commands: commands,
			})
		case *gherkin.Background:
			for _, step := range childValue.Steps {
				cmd, err := stepToCommand(step)
				if err != nil {
					return nil, niceErr(source, step, err)
				}
				bgCommands = append(bgCommands, cmd)
			}
			bgSteps = childValue.Steps
		default:
			return nil, fmt.Errorf("%s: unknown child type %T", source, child)
		}
	}
	for i := range scenarios {
		scenarios[i].source = source
		scenarios[i].steps = append(append([]*gherkin.Step{}, bgSteps...), scenarios[i].steps...)
		scenarios[i].commands = append(append([]command{}, bgCommands...), scenarios[i].commands...)
	}
	return scenarios, nil
}

func tableToContents(extra interface{}) (map[string]expr, error) {
	table := mustGetDataTable(extra)
	if table == nil {
		return nil, fmt.Errorf("must provide a data table")
	}

	contents := make(map[string]expr)
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return nil, fmt.Errorf("must provide a table with two columns on every row")
		}
		contents[row.Cells[0].Value] = expr{input: row.Cells[1].Value}
	}

	return contents, nil
}

func tableToValues(extra interface{}) ([]expr, error) {
	table := mustGetDataTable(extra)
	if table == nil {
		return nil, fmt.Errorf("must provide a value table")
	}

	var values []expr
	for _, row := range table.Rows {
		if len(row.Cells) != 1 {
			return nil, fmt.Errorf("must provide a table with one column on every row")
		}
		values = append(values, expr{input: row.Cells[0].Value})
	}

	return values, nil
}

func mustGetDataTable(extra interface{}) *gherkin.DataTable {
	switch v := extra.(type) {
	case nil:
		return nil
	case *gherkin.DataTable:
		return v
	default:
		panic(fmt.Sprintf("unexpected step argument %T", extra))
	}
}
