package base_test

import (
	"errors"
	"testing"

	"github.com/next-trace/scg-base/base"
	"github.com/next-trace/scg-base/config"
)

// widget accepts only when "name" is configured.
type widget struct {
	base.Base
	name string
}

func (w *widget) Init(cfg config.Config) bool {
	if !cfg.Has("name") {
		return w.Fail("No name!")
	}

	w.name = cfg.String("name")

	return true
}

func (w *widget) Name() string { return w.name }

// brokenPart declines every configuration.
type brokenPart struct{ base.Base }

func (b *brokenPart) Init(config.Config) bool { return b.Fail("expected failure") }

// codecPart declines with a structured error value instead of a string.
type codecPart struct{ base.Base }

var errCodec = errors.New("unsupported codec")

func (c *codecPart) Init(config.Config) bool { return c.Fail(errCodec) }

// factoryEcho captures what Factory returns while Init runs, proving the
// passthrough is bound before the hook is invoked.
type factoryEcho struct {
	base.Base
	seen any
}

func (f *factoryEcho) Init(config.Config) bool {
	f.seen = f.Factory()
	return true
}

func TestNew_RequiredKeyMissing(t *testing.T) {
	t.Parallel()

	w, ok := base.New[widget]()
	if ok {
		t.Fatalf("New[widget]() accepted without a name")
	}

	if w != nil {
		t.Fatalf("declined construction must return the zero instance, got %v", w)
	}

	if got := base.LastErr[widget](); got != "No name!" {
		t.Fatalf("LastErr[widget]()=%v want %q", got, "No name!")
	}
}

func TestNew_MappingAndPairsEquivalent(t *testing.T) {
	t.Parallel()

	fromMap, ok := base.New[widget](config.Config{"name": "foo"})
	if !ok {
		t.Fatalf("mapping form declined")
	}

	fromPairs, ok := base.New[widget]("name", "foo")
	if !ok {
		t.Fatalf("pairs form declined")
	}

	if got, want := fromMap.Name(), "foo"; got != want {
		t.Fatalf("mapping form Name()=%q want %q", got, want)
	}

	if fromPairs.Name() != fromMap.Name() {
		t.Fatalf("pairs form Name()=%q differs from mapping form %q", fromPairs.Name(), fromMap.Name())
	}

	if fromPairs.Err() != fromMap.Err() || fromPairs.Factory() != fromMap.Factory() {
		t.Fatalf("observable state differs between calling conventions")
	}
}

func TestNew_AlwaysDeclining(t *testing.T) {
	t.Parallel()

	inputs := [][]any{
		{},
		{"any", "thing"},
		{config.Config{"k": "v"}},
	}

	for _, args := range inputs {
		if _, ok := base.New[brokenPart](args...); ok {
			t.Fatalf("New[brokenPart](%v) accepted; must decline every input", args)
		}
	}

	if got := base.LastErr[brokenPart](); got != "expected failure" {
		t.Fatalf("LastErr[brokenPart]()=%v want %q", got, "expected failure")
	}
}

func TestNew_MirrorsStructuredValueToTypeSlot(t *testing.T) {
	t.Parallel()

	if _, ok := base.New[codecPart](); ok {
		t.Fatalf("New[codecPart]() accepted")
	}

	got := base.LastErr[codecPart]()
	if got != any(errCodec) {
		t.Fatalf("LastErr[codecPart]()=%v want the identical error value", got)
	}

	if !errors.Is(got.(error), errCodec) {
		t.Fatalf("mirrored value lost error identity")
	}
}

func TestNew_FactoryBoundBeforeInit(t *testing.T) {
	t.Parallel()

	marker := &struct{}{}

	f, ok := base.New[factoryEcho]("factory", marker)
	if !ok {
		t.Fatalf("New[factoryEcho] declined")
	}

	if f.seen != any(marker) {
		t.Fatalf("Init observed Factory()=%v; passthrough must be bound before the hook runs", f.seen)
	}
}

func TestNew_SucceedingConstructionLeavesInstanceClean(t *testing.T) {
	t.Parallel()

	w, ok := base.New[widget]("name", "foo", "extra", 7)
	if !ok {
		t.Fatalf("New[widget] declined with name present")
	}

	if got := w.Err(); got != "" {
		t.Fatalf("accepted instance Err()=%v want \"\"", got)
	}

	if got := w.Name(); got != "foo" {
		t.Fatalf("Name()=%q want %q", got, "foo")
	}
}
