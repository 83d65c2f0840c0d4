package hxsel

import "testing"

func TestAttrHelpers(t *testing.T) {
	tests := []struct {
		name      string
		build     func() map[string]any
		expectKey string
		expectVal string
	}{
		{
			"target with selector",
			func() map[string]any { return TargetAttrs(ID("content")) },
			"hx-target", "#content",
		},
		{
			"target with extended expression",
			func() map[string]any { return TargetAttrs(Closest(Element("tr"))) },
			"hx-target", "closest tr",
		},
		{
			"include",
			func() map[string]any { return IncludeAttrs(Attr("name=email")) },
			"hx-include", "[name=email]",
		},
		{
			"indicator",
			func() map[string]any { return IndicatorAttrs(Class("spinner")) },
			"hx-indicator", ".spinner",
		},
		{
			"disabled elt",
			func() map[string]any { return DisabledEltAttrs(This()) },
			"hx-disabled-elt", "this",
		},
		{
			"sync with strategy",
			func() map[string]any { return SyncAttrs(Closest(Element("form")), "abort") },
			"hx-sync", "closest form:abort",
		},
		{
			"sync without strategy",
			func() map[string]any { return SyncAttrs(This(), "") },
			"hx-sync", "this",
		},
		{
			"raw expression",
			func() map[string]any { return TargetAttrs(Raw("closest tr")) },
			"hx-target", "closest tr",
		},
		{
			"swap oob with mode and selector",
			func() map[string]any { return SwapOOBAttrs("beforeend", ID("toasts")) },
			"hx-swap-oob", "beforeend:#toasts",
		},
		{
			"swap oob with mode only",
			func() map[string]any { return SwapOOBAttrs("outerHTML", New()) },
			"hx-swap-oob", "outerHTML",
		},
		{
			"swap oob default",
			func() map[string]any { return SwapOOBAttrs("", New()) },
			"hx-swap-oob", "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.build()
			if len(attrs) != 1 {
				t.Fatalf("expected exactly one attribute, got %d", len(attrs))
			}
			got, ok := attrs[tt.expectKey]
			if !ok {
				t.Fatalf("missing %q attribute", tt.expectKey)
			}
			if got != tt.expectVal {
				t.Errorf("%s = %q, want %q", tt.expectKey, got, tt.expectVal)
			}
		})
	}
}

func TestMergeAttrs(t *testing.T) {
	merged := MergeAttrs(
		TargetAttrs(ID("content")),
		IndicatorAttrs(Class("spinner")),
	)

	if got := merged["hx-target"]; got != "#content" {
		t.Errorf("hx-target = %v, want #content", got)
	}
	if got := merged["hx-indicator"]; got != ".spinner" {
		t.Errorf("hx-indicator = %v, want .spinner", got)
	}
}

func TestMergeAttrsLaterWins(t *testing.T) {
	merged := MergeAttrs(
		TargetAttrs(ID("a")),
		TargetAttrs(ID("b")),
	)

	if got := merged["hx-target"]; got != "#b" {
		t.Errorf("hx-target = %v, want #b", got)
	}
}
