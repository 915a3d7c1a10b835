package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestCreateAndList(t *testing.T) {
	s := New()
	ctx := context.Background()

	task, err := s.Create(ctx, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == "" {
		t.Error("Create assigned no id")
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.CreatedAt.IsZero() {
		t.Error("new task should have createdAt set")
	}
	if task.UpdatedAt != nil {
		t.Error("new task should have no updatedAt")
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].Text != "buy milk" {
		t.Errorf("text = %q, want %q", list[0].Text, "buy milk")
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Create(ctx, "a"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, _ := s.List(ctx)
	list[0].Text = "mutated"

	again, _ := s.List(ctx)
	if again[0].Text != "a" {
		t.Error("List result aliases internal state")
	}
}

func TestUpdate(t *testing.T) {
	s := New()
	ctx := context.Background()

	task, _ := s.Create(ctx, "walk dog")

	done := true
	updated, err := s.Update(ctx, task.ID, domain.Patch{Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Completed {
		t.Error("completed not applied")
	}
	if updated.Text != "walk dog" {
		t.Errorf("text changed to %q, want untouched", updated.Text)
	}
	if updated.UpdatedAt == nil {
		t.Error("updatedAt not stamped")
	}
}

func TestUpdateErrors(t *testing.T) {
	s := New()
	ctx := context.Background()

	done := true
	if _, err := s.Update(ctx, "not-a-uuid", domain.Patch{Completed: &done}); !errors.Is(err, domain.ErrInvalidID) {
		t.Errorf("malformed id error = %v, want ErrInvalidID", err)
	}

	absent := "cde4a587-9c2b-4d0a-8f31-3a8f0f2a9b11"
	if _, err := s.Update(ctx, absent, domain.Patch{Completed: &done}); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("absent id error = %v, want ErrTaskNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	task, _ := s.Create(ctx, "x")
	if err := s.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, _ := s.List(ctx)
	if len(list) != 0 {
		t.Errorf("len(list) = %d after delete, want 0", len(list))
	}

	if err := s.Delete(ctx, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("second delete error = %v, want ErrTaskNotFound", err)
	}

	if err := s.Delete(ctx, "bogus"); !errors.Is(err, domain.ErrInvalidID) {
		t.Errorf("malformed id error = %v, want ErrInvalidID", err)
	}
}

func TestErrorInjection(t *testing.T) {
	s := New()
	s.ListErr = errors.New("boom")

	if _, err := s.List(context.Background()); err == nil {
		t.Error("injected List error not surfaced")
	}
}
