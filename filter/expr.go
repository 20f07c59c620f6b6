package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/s0up4200/ytsearch/youtube"
)

// DefaultCacheSize is the number of compiled expressions kept by Compile
const DefaultCacheSize = 100

var defaultCompiler = NewCompiler(WithCache(DefaultCacheSize))

// Compile compiles an expression with the shared default compiler
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Filter is a compiled expression evaluated against search results.
// A Filter is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables caching of compiled filters with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler turns expressions into filters
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into a filter.
// Unknown identifiers and non-boolean expressions are rejected.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Zero-valued fields give the checker the types of the runtime env
	env := make(map[string]any, len(c.helperFuncs)+16)
	maps.Copy(env, c.helperFuncs)
	addResultFields(env, youtube.SearchResult{})

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}

// Evaluate reports whether the item matches the filter
func (f *Filter) Evaluate(item youtube.SearchResult) (bool, error) {
	env := make(map[string]any, len(f.helpers)+16)
	maps.Copy(env, f.helpers)
	addResultFields(env, item)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemID:     item.ID.Value(),
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemID:     item.ID.Value(),
			Reason:     "expression did not return a boolean",
		}
	}
	return matched, nil
}

// Apply returns the items matching the filter in their original order.
// Items that fail to evaluate are skipped.
func (f *Filter) Apply(items []youtube.SearchResult) []youtube.SearchResult {
	matches := make([]youtube.SearchResult, 0, len(items))
	for _, item := range items {
		if ok, err := f.Evaluate(item); err == nil && ok {
			matches = append(matches, item)
		}
	}
	return matches
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// Case-insensitive string helpers. The plain names are expr operators.
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

// addResultFields exposes the result's snippet and id as top-level variables
func addResultFields(env map[string]any, item youtube.SearchResult) {
	snippet := item.Snippet

	var publishedAt time.Time
	if snippet.PublishedAt != nil {
		publishedAt = *snippet.PublishedAt
	}

	env["Title"] = value(snippet.Title)
	env["Description"] = value(snippet.Description)
	env["ChannelTitle"] = value(snippet.ChannelTitle)
	env["ChannelID"] = value(snippet.ChannelID)
	env["Live"] = value(snippet.LiveBroadcastContent)
	env["PublishedAt"] = publishedAt
	env["HasPublished"] = snippet.PublishedAt != nil
	env["HasThumbnail"] = snippet.Thumbnails.Best() != nil
	env["Kind"] = item.ID.ResourceKind()
	env["ID"] = item.ID.Value()
	env["URL"] = item.ID.URL()
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
