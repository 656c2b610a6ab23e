package pipeline_test

// runner_test.go — Tests for the rule runner: ordering, failure policy,
// panic isolation, and cooperative cancellation.

import (
	"context"
	"errors"
	"testing"

	"buslift/pkg/diag"
	"buslift/pkg/model"
	"buslift/pkg/pipeline"
	"buslift/pkg/rules"
)

// stubRule is a scripted rule for runner tests.
type stubRule struct {
	code string
	fn   func(ctx context.Context) error
	ran  *[]string
}

func (s *stubRule) Code() string { return s.code }

func (s *stubRule) Analyze(ctx context.Context) error {
	if s.ran != nil {
		*s.ran = append(*s.ran, s.code)
	}
	if s.fn != nil {
		return s.fn(ctx)
	}
	return nil
}

func TestRunner_ExecutesInRegisteredOrder(t *testing.T) {
	var ran []string
	dc := diag.NewContext()
	r, err := pipeline.NewRunner(dc, []rules.Rule{
		&stubRule{code: "MB001", ran: &ran},
		&stubRule{code: "AP001", ran: &ran},
		&stubRule{code: "SC001", ran: &ran},
	})
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != pipeline.OutcomeCompleted {
		t.Errorf("outcome = %q, want completed", outcome)
	}
	want := []string{"MB001", "AP001", "SC001"}
	if len(ran) != len(want) {
		t.Fatalf("ran %v, want %v", ran, want)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("rule %d = %q, want %q", i, ran[i], want[i])
		}
	}
	if len(dc.Errors) != 0 {
		t.Errorf("clean run added errors: %+v", dc.Errors)
	}
}

func TestRunner_ConstructionValidation(t *testing.T) {
	if _, err := pipeline.NewRunner(nil, nil); err == nil {
		t.Error("expected error for nil diagnostics context")
	}
	dc := diag.NewContext()
	if _, err := pipeline.NewRunner(dc, []rules.Rule{nil}); err == nil {
		t.Error("expected error for nil rule in list")
	}
}

// ---------------------------------------------------------------------------
// Failure policy
// ---------------------------------------------------------------------------

func TestRunner_PanicHaltsByDefault(t *testing.T) {
	var ran []string
	dc := diag.NewContext()
	r, err := pipeline.NewRunner(dc, []rules.Rule{
		&stubRule{code: "OK001", ran: &ran},
		&stubRule{code: "BAD01", ran: &ran, fn: func(context.Context) error { panic("boom") }},
		&stubRule{code: "NEVER", ran: &ran},
	})
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := r.Run(context.Background())
	if outcome != pipeline.OutcomeHalted {
		t.Errorf("outcome = %q, want halted", outcome)
	}
	if err == nil {
		t.Fatal("expected non-nil error for halted run")
	}
	// Fatal failure is recorded against the failing rule before the run
	// reports to the caller.
	if len(dc.Errors) != 1 || dc.Errors[0].Rule != "BAD01" {
		t.Fatalf("expected 1 error attributed to BAD01, got %+v", dc.Errors)
	}
	for _, code := range ran {
		if code == "NEVER" {
			t.Error("rule after the halt still ran")
		}
	}
}

func TestRunner_ContinuePolicyRunsRemainingRules(t *testing.T) {
	var ran []string
	dc := diag.NewContext()
	r, err := pipeline.NewRunner(dc, []rules.Rule{
		&stubRule{code: "BAD01", ran: &ran, fn: func(context.Context) error { return errors.New("unexpected") }},
		&stubRule{code: "OK001", ran: &ran},
	}, pipeline.WithFailurePolicy(pipeline.ContinueOnFailure))
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("continue policy returned error: %v", err)
	}
	if outcome != pipeline.OutcomeCompleted {
		t.Errorf("outcome = %q, want completed", outcome)
	}
	if len(ran) != 2 {
		t.Errorf("expected both rules to run, ran %v", ran)
	}
	if len(dc.Errors) != 1 || dc.Errors[0].Rule != "BAD01" {
		t.Errorf("failure not recorded: %+v", dc.Errors)
	}
}

// ---------------------------------------------------------------------------
// Cancellation
// ---------------------------------------------------------------------------

func TestRunner_CanceledBeforeAnyRule(t *testing.T) {
	var ran []string
	dc := diag.NewContext()
	r, err := pipeline.NewRunner(dc, []rules.Rule{&stubRule{code: "SC001", ran: &ran}})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("cancellation reported as error: %v", err)
	}
	if outcome != pipeline.OutcomeCanceled {
		t.Errorf("outcome = %q, want canceled", outcome)
	}
	if len(ran) != 0 {
		t.Error("rule started after cancellation")
	}
	if len(dc.Errors) != 0 {
		t.Error("cancellation mixed into the error sequence")
	}
}

func TestRunner_CancellationObservedBetweenRules(t *testing.T) {
	var ran []string
	ctx, cancel := context.WithCancel(context.Background())
	dc := diag.NewContext()
	r, err := pipeline.NewRunner(dc, []rules.Rule{
		// First rule completes, then requests cancellation.
		&stubRule{code: "OK001", ran: &ran, fn: func(context.Context) error {
			cancel()
			return nil
		}},
		&stubRule{code: "NEVER", ran: &ran},
	})
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != pipeline.OutcomeCanceled {
		t.Errorf("outcome = %q, want canceled", outcome)
	}
	if len(ran) != 1 || ran[0] != "OK001" {
		t.Errorf("expected only the first rule to run, ran %v", ran)
	}
}

func TestRunner_RuleObservedCancellation(t *testing.T) {
	dc := diag.NewContext()
	r, err := pipeline.NewRunner(dc, []rules.Rule{
		&stubRule{code: "SC001", fn: func(context.Context) error { return context.Canceled }},
	})
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != pipeline.OutcomeCanceled {
		t.Errorf("outcome = %q, want canceled", outcome)
	}
	if len(dc.Errors) != 0 {
		t.Error("cancellation recorded as an error entry")
	}
}

// ---------------------------------------------------------------------------
// End to end with real rules
// ---------------------------------------------------------------------------

func TestRunner_FullConversion(t *testing.T) {
	m := &model.IntegrationModel{
		Source: model.ApplicationModel{
			Applications: []model.Application{
				{
					Name: "Test App 1",
					Schemas: []model.Schema{
						{Name: "DocumentSchema1", Type: model.SchemaDocument},
						{Name: "DocumentSchema2", Type: model.SchemaDocument},
						{Name: "EnvelopeSchema1", Type: model.SchemaEnvelope},
					},
					ReceivePorts: []model.Port{
						{Name: "RecvIn", Direction: model.PortReceive, Adapter: "FILE"},
					},
				},
			},
		},
	}
	dc := diag.NewContext()
	sink := diag.NopSink()

	mb, err := rules.NewMessageBusRule(m, dc, sink)
	if err != nil {
		t.Fatal(err)
	}
	ap, err := rules.NewApplicationRule(m, dc, sink)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := rules.NewSchemaMessageRule(m, dc, sink)
	if err != nil {
		t.Fatal(err)
	}
	ep, err := rules.NewEndpointRule(m, dc, sink)
	if err != nil {
		t.Fatal(err)
	}

	r, err := pipeline.NewRunner(dc, []rules.Rule{mb, ap, sc, ep})
	if err != nil {
		t.Fatal(err)
	}
	outcome, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != pipeline.OutcomeCompleted {
		t.Fatalf("outcome = %q", outcome)
	}

	app := m.Target.MessageBus.FindApplication("Test App 1")
	if app == nil {
		t.Fatal("target application missing")
	}
	if len(app.Messages) != 3 {
		t.Errorf("expected 3 messages, got %d", len(app.Messages))
	}
	if app.Messages[0].Key != "keyMessageBus: Test App 1:DocumentSchema1" {
		t.Errorf("first message key = %q", app.Messages[0].Key)
	}
	if len(app.Endpoints) != 1 {
		t.Errorf("expected 1 endpoint, got %d", len(app.Endpoints))
	}
	if len(dc.Errors) != 0 {
		t.Errorf("clean conversion produced errors: %+v", dc.Errors)
	}
}
