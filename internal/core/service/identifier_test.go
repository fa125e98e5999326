package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
)

func TestCreateUniqueID(t *testing.T) {
	ctx := context.Background()

	taken := map[string]bool{"id-0": true, "id-1": true, "id-2": true}

	counter := 0
	generate := func() (string, error) {
		id := "id-" + string(rune('0'+counter))
		counter++
		return id, nil
	}

	exists := func(ctx context.Context, candidate string) (bool, error) {
		return taken[candidate], nil
	}

	id, err := CreateUniqueID(ctx, generate, exists, 10)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "id-3", id; e != g {
		t.Errorf("id: expected %v, got %v", e, g)
	}

	if taken[id] {
		t.Errorf("id '%s' should not collide with an existing one", id)
	}
}

func TestCreateUniqueIDExhausted(t *testing.T) {
	ctx := context.Background()

	checks := 0
	exists := func(ctx context.Context, candidate string) (bool, error) {
		checks++
		return true, nil
	}

	_, err := CreateUniqueID(ctx, RandomHandle(HandleLength), exists, 4)
	if !errors.Is(err, ErrIdentifierExhausted) {
		t.Fatalf("err: expected %v, got %+v", ErrIdentifierExhausted, err)
	}

	if e, g := 4, checks; e != g {
		t.Errorf("checks: expected %v, got %v", e, g)
	}
}

func TestInsertWithUniqueIDRetriesConflicts(t *testing.T) {
	ctx := context.Background()

	inserts := 0
	insert := func(ctx context.Context, candidate string) error {
		inserts++
		if inserts < 3 {
			return errors.WithStack(port.ErrAlreadyExists)
		}
		return nil
	}

	exists := func(ctx context.Context, candidate string) (bool, error) {
		return false, nil
	}

	if _, err := insertWithUniqueID(ctx, RandomHandle(HandleLength), exists, 10, insert); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, inserts; e != g {
		t.Errorf("inserts: expected %v, got %v", e, g)
	}

	failure := errors.New("boom")
	_, err := insertWithUniqueID(ctx, RandomHandle(HandleLength), exists, 10, func(ctx context.Context, candidate string) error {
		return failure
	})
	if !errors.Is(err, failure) {
		t.Errorf("err: expected %v, got %+v", failure, err)
	}
}

func TestUserHandle(t *testing.T) {
	generate := UserHandle(model.Name{First: "Ada", Middle: " ", Last: "Lovelace"}, UserHandleSuffixLen)

	pattern := regexp.MustCompile(`^ada_lovelace[A-Za-z0-9]{5}$`)

	for range 20 {
		handle, err := generate()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if !pattern.MatchString(handle) {
			t.Errorf("handle '%s' does not match %s", handle, pattern)
		}
	}
}
