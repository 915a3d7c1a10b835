package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store/memory"
)

func newTestClient(t *testing.T) (*Client, *memory.Store) {
	t.Helper()
	st := memory.New()
	srv := httptest.NewServer(api.NewServer(st).Handler())
	t.Cleanup(srv.Close)
	return New(srv.URL), st
}

func TestClientRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	created, err := c.Create(ctx, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.Completed {
		t.Errorf("created = %+v, want id set and not completed", created)
	}

	done := true
	updated, err := c.Update(ctx, created.ID, domain.Patch{Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Completed || updated.UpdatedAt == nil {
		t.Errorf("updated = %+v, want completed with updatedAt", updated)
	}

	tasks, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Text != "buy milk" {
		t.Errorf("tasks = %+v, want single buy milk", tasks)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Delete(ctx, created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("second Delete error = %v, want ErrTaskNotFound", err)
	}
}

func TestClientErrorMapping(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Create(ctx, "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Errorf("Create(\"\") error = %v, want 400 APIError", err)
	}

	done := true
	_, err = c.Update(ctx, "cde4a587-9c2b-4d0a-8f31-3a8f0f2a9b11", domain.Patch{Completed: &done})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("Update absent error = %v, want ErrTaskNotFound", err)
	}
}

func TestClientNotReadyMapping(t *testing.T) {
	srv := httptest.NewServer(api.NewServer(nil).Handler())
	t.Cleanup(srv.Close)
	c := New(srv.URL)

	_, err := c.List(context.Background())
	if !errors.Is(err, domain.ErrStoreNotReady) {
		t.Errorf("List error = %v, want ErrStoreNotReady", err)
	}
}

func TestSessionAddReconciles(t *testing.T) {
	c, _ := newTestClient(t)
	sess := NewSession(c)
	ctx := context.Background()

	created, err := sess.Add(ctx, "walk dog")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	tasks := sess.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("len = %d, want 1", len(tasks))
	}
	if tasks[0].ID != created.ID {
		t.Error("local entry not reconciled with server id")
	}
}

func TestSessionAddRevertsOnFailure(t *testing.T) {
	c, st := newTestClient(t)
	sess := NewSession(c)
	ctx := context.Background()

	st.CreateErr = errors.New("down")
	if _, err := sess.Add(ctx, "walk dog"); err == nil {
		t.Fatal("Add should fail when the server does")
	}
	if n := len(sess.Tasks()); n != 0 {
		t.Errorf("len = %d after failed add, want 0 (reverted)", n)
	}
}

func TestSessionToggleAndRemove(t *testing.T) {
	c, st := newTestClient(t)
	sess := NewSession(c)
	ctx := context.Background()

	created, err := sess.Add(ctx, "walk dog")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	updated, err := sess.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !updated.Completed {
		t.Error("Toggle did not complete the task")
	}
	if !sess.Tasks()[0].Completed {
		t.Error("local list out of sync after Toggle")
	}

	// Server failure reverts the local flip
	st.UpdateErr = errors.New("down")
	if _, err := sess.Toggle(ctx, created.ID); err == nil {
		t.Fatal("Toggle should fail when the server does")
	}
	if !sess.Tasks()[0].Completed {
		t.Error("failed Toggle should leave prior state")
	}
	st.UpdateErr = nil

	if err := sess.Remove(ctx, created.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if n := len(sess.Tasks()); n != 0 {
		t.Errorf("len = %d after Remove, want 0", n)
	}
}

func TestSessionRemoveRevertsOnFailure(t *testing.T) {
	c, st := newTestClient(t)
	sess := NewSession(c)
	ctx := context.Background()

	created, err := sess.Add(ctx, "walk dog")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	st.DeleteErr = errors.New("down")
	if err := sess.Remove(ctx, created.ID); err == nil {
		t.Fatal("Remove should fail when the server does")
	}
	if n := len(sess.Tasks()); n != 1 {
		t.Errorf("len = %d after failed remove, want 1 (reverted)", n)
	}
}

func TestSessionRefresh(t *testing.T) {
	c, st := newTestClient(t)
	sess := NewSession(c)
	ctx := context.Background()

	if _, err := st.Create(ctx, "made elsewhere"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := sess.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	tasks := sess.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "made elsewhere" {
		t.Errorf("tasks = %+v, want seeded task", tasks)
	}
}
