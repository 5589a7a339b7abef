package steptree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/steptree/steptree"
)

func combineAll(results ...steptree.Result) steptree.Outcome {
	acc := steptree.NewOutcome()
	for _, r := range results {
		acc = steptree.Combine(r, acc)
	}
	return acc.Finalize()
}

func TestCombineAllSuccess(t *testing.T) {
	t.Parallel()

	out := combineAll(
		steptree.Success(1),
		steptree.Success(2),
		steptree.Success(3),
	)

	if !out.OK() {
		t.Fatalf("outcome errored: %v", out)
	}

	if diff := cmp.Diff([]any{1, 2, 3}, out.Items()); diff != "" {
		t.Errorf("items mismatch (-want +have):\n%s", diff)
	}
}

func TestCombineFailureDiscardsSuccesses(t *testing.T) {
	t.Parallel()

	out := combineAll(
		steptree.Success(1),
		steptree.Failure("A"),
		steptree.Success(2),
		steptree.Failure("B"),
	)

	if !out.Errored() {
		t.Fatalf("outcome not errored: %v", out)
	}

	if diff := cmp.Diff([]any{"A", "B"}, out.Items()); diff != "" {
		t.Errorf("items mismatch (-want +have):\n%s", diff)
	}
}

func TestCombineAllFailures(t *testing.T) {
	t.Parallel()

	out := combineAll(
		steptree.Failure("A"),
		steptree.Failure("B"),
		steptree.Failure("C"),
	)

	if !out.Errored() {
		t.Fatalf("outcome not errored: %v", out)
	}

	if diff := cmp.Diff([]any{"A", "B", "C"}, out.Items()); diff != "" {
		t.Errorf("items mismatch (-want +have):\n%s", diff)
	}
}

func TestCombineFlattensReasonLists(t *testing.T) {
	t.Parallel()

	out := combineAll(
		steptree.Failure("a"),
		steptree.Failure([]any{"b", "c"}),
		steptree.Failure("d"),
	)

	if diff := cmp.Diff([]any{"a", "b", "c", "d"}, out.Items()); diff != "" {
		t.Errorf("items mismatch (-want +have):\n%s", diff)
	}
}

func TestCombineIgnoresSuccessAfterFailure(t *testing.T) {
	t.Parallel()

	acc := steptree.Combine(steptree.Failure("A"), steptree.NewOutcome())
	next := steptree.Combine(steptree.Success(99), acc)

	if diff := cmp.Diff(acc.Items(), next.Items()); diff != "" {
		t.Errorf("accumulator changed by ignored success (-want +have):\n%s", diff)
	}
}

func TestOutcomeStoresNewestFirst(t *testing.T) {
	t.Parallel()

	acc := steptree.NewOutcome()
	acc = steptree.Combine(steptree.Success(1), acc)
	acc = steptree.Combine(steptree.Success(2), acc)

	if diff := cmp.Diff([]any{2, 1}, acc.Items()); diff != "" {
		t.Errorf("pre-finalize items mismatch (-want +have):\n%s", diff)
	}

	if diff := cmp.Diff([]any{1, 2}, acc.Finalize().Items()); diff != "" {
		t.Errorf("finalized items mismatch (-want +have):\n%s", diff)
	}
}

func TestFinalizePassesNonListsThrough(t *testing.T) {
	t.Parallel()

	if want, have := 42, steptree.Finalize(42); want != have {
		t.Errorf("int accumulator: want %v, have %v", want, have)
	}

	if want, have := "acc", steptree.Finalize("acc"); want != have {
		t.Errorf("string accumulator: want %v, have %v", want, have)
	}

	reversed, ok := steptree.Finalize([]any{1, 2, 3}).([]any)
	if !ok {
		t.Fatalf("slice accumulator changed type")
	}
	if diff := cmp.Diff([]any{3, 2, 1}, reversed); diff != "" {
		t.Errorf("slice accumulator mismatch (-want +have):\n%s", diff)
	}
}

func TestOutcomeResult(t *testing.T) {
	t.Parallel()

	ok := combineAll(steptree.Success(1))
	if want, have := true, ok.Result().OK(); want != have {
		t.Errorf("success outcome result: want OK=%v, have %v", want, have)
	}

	bad := combineAll(steptree.Failure("r"))
	if want, have := true, bad.Result().Errored(); want != have {
		t.Errorf("failure outcome result: want Errored=%v, have %v", want, have)
	}
}
