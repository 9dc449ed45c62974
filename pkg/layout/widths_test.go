package layout

import (
	"strings"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

func TestResolveSectionWidthsFixedAndFill(t *testing.T) {
	// Worked example: wall 72, thickness 0.75, [24, fill] -> fill 47.25.
	specs := []plan.SectionSpec{
		{Width: plan.FixedWidth(24)},
		{Width: plan.FillWidth()},
	}
	widths := ResolveSectionWidths(specs, 72, 0.75)
	if !approx(widths[0], 24) {
		t.Errorf("fixed width = %v", widths[0])
	}
	if !approx(widths[1], 47.25) {
		t.Errorf("fill width = %v, want 47.25", widths[1])
	}
}

func TestResolveSectionWidthsAllFill(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FillWidth()},
		{Width: plan.FillWidth()},
		{Width: plan.FillWidth()},
	}
	const wallLength, thickness = 96.0, 0.75
	widths := ResolveSectionWidths(specs, wallLength, thickness)

	// Equal widths whose sum plus dividers equals the wall exactly.
	sum := 0.0
	for i, w := range widths {
		if !approx(w, widths[0]) {
			t.Errorf("width %d = %v, not equal to %v", i, w, widths[0])
		}
		sum += w
	}
	if !approx(sum+2*thickness, wallLength) {
		t.Errorf("sum %v + dividers != wall length %v", sum, wallLength)
	}
}

func TestResolveSectionWidthsNoFill(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FixedWidth(30)},
		{Width: plan.FixedWidth(30)},
	}
	widths := ResolveSectionWidths(specs, 100, 0.75)
	if widths[0] != 30 || widths[1] != 30 {
		t.Errorf("fixed widths changed: %v", widths)
	}
}

func TestResolveSectionWidthsOverCommitted(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FixedWidth(80)},
		{Width: plan.FillWidth()},
	}
	widths := ResolveSectionWidths(specs, 72, 0.75)
	if widths[1] != 0 {
		t.Errorf("over-committed fill = %v, want 0", widths[1])
	}
}

func TestValidateSectionSpecsExceed(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FixedWidth(48)},
		{Width: plan.FixedWidth(48)},
	}
	msgs := ValidateSectionSpecs(specs, 72, 0.75)
	if len(msgs) == 0 {
		t.Fatal("over-committed wall should produce messages")
	}

	found := false
	for _, m := range msgs {
		if strings.Contains(m, "exceed") {
			found = true
		}
	}
	if !found {
		t.Errorf("no message contains \"exceed\": %v", msgs)
	}
}

func TestValidateSectionSpecsNonPositiveWidth(t *testing.T) {
	specs := []plan.SectionSpec{{Width: plan.FixedWidth(-5)}}
	msgs := ValidateSectionSpecs(specs, 72, 0.75)
	if len(msgs) != 1 {
		t.Fatalf("messages = %v", msgs)
	}
	if !strings.Contains(msgs[0], "section 0") || !strings.Contains(msgs[0], "positive") {
		t.Errorf("message = %q", msgs[0])
	}
}

func TestValidateSectionSpecsBounds(t *testing.T) {
	// Fill resolves to 47.25, above the spec's max of 36.
	specs := []plan.SectionSpec{
		{Width: plan.FixedWidth(24)},
		{Width: plan.FillWidth(), MaxWidth: 36},
	}
	msgs := ValidateSectionSpecs(specs, 72, 0.75)
	if len(msgs) != 1 || !strings.Contains(msgs[0], "bounds") {
		t.Errorf("messages = %v", msgs)
	}

	// Same specs on a shorter wall resolve within bounds.
	msgs = ValidateSectionSpecs(specs, 60, 0.75)
	if len(msgs) != 0 {
		t.Errorf("unexpected messages: %v", msgs)
	}
}

func TestValidateSectionSpecsCleanPass(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FixedWidth(24)},
		{Width: plan.FillWidth(), MinWidth: 12},
	}
	if msgs := ValidateSectionSpecs(specs, 72, 0.75); len(msgs) != 0 {
		t.Errorf("clean specs produced %v", msgs)
	}
}
