package model

import (
	"testing"
)

func TestStatusPolicies(t *testing.T) {
	type testCase struct {
		Policy   string
		From     StoryStatus
		To       StoryStatus
		Expected bool
	}

	testCases := []testCase{
		{Policy: StatusPolicyOpen, From: StoryStatusGrooming, To: StoryStatusReleased, Expected: true},
		{Policy: StatusPolicyOpen, From: StoryStatusReleased, To: StoryStatusGrooming, Expected: true},
		{Policy: StatusPolicyOpen, From: StoryStatusGrooming, To: StoryStatus("DONE"), Expected: false},
		{Policy: StatusPolicySequential, From: StoryStatusGrooming, To: StoryStatusGrooming, Expected: true},
		{Policy: StatusPolicySequential, From: StoryStatusGrooming, To: StoryStatusDefined, Expected: true},
		{Policy: StatusPolicySequential, From: StoryStatusProgress, To: StoryStatusDefined, Expected: true},
		{Policy: StatusPolicySequential, From: StoryStatusGrooming, To: StoryStatusProgress, Expected: false},
		{Policy: StatusPolicySequential, From: StoryStatusReleased, To: StoryStatusGrooming, Expected: false},
		{Policy: StatusPolicySequential, From: StoryStatusAccepted, To: StoryStatusReleased, Expected: true},
	}

	for _, tc := range testCases {
		policy, err := ParseStatusPolicy(tc.Policy)
		if err != nil {
			t.Fatalf("%+v", err)
		}

		if e, g := tc.Expected, policy.Allows(tc.From, tc.To); e != g {
			t.Errorf("%s %s -> %s: expected %v, got %v", tc.Policy, tc.From, tc.To, e, g)
		}
	}
}

func TestParseUnknownStatusPolicy(t *testing.T) {
	if _, err := ParseStatusPolicy("chaotic"); err == nil {
		t.Errorf("expected an error for an unknown policy")
	}
}
