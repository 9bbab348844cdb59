package subscription

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPlans(t *testing.T) {
	plans := Plans()
	if len(plans) != 3 {
		t.Fatalf("got %d plans, want 3", len(plans))
	}

	wantOrder := []string{"starter", "professional", "enterprise"}
	for i, plan := range plans {
		if plan.ID != wantOrder[i] {
			t.Errorf("plans[%d].ID = %q, want %q", i, plan.ID, wantOrder[i])
		}
		if plan.Interval != "monthly" {
			t.Errorf("plan %s interval = %q", plan.ID, plan.Interval)
		}
		if plan.Price.LessThanOrEqual(decimal.Zero) {
			t.Errorf("plan %s has non-positive price %s", plan.ID, plan.Price)
		}
		if len(plan.Features) == 0 {
			t.Errorf("plan %s has no features", plan.ID)
		}
	}

	if !plans[1].Popular {
		t.Error("professional plan should be flagged popular")
	}
	if plans[0].Popular || plans[2].Popular {
		t.Error("only the professional plan should be popular")
	}
	if plans[2].Limits.WhatsappMessages != Unlimited {
		t.Error("enterprise WhatsApp limit should be unlimited")
	}
}
