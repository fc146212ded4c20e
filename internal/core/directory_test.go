package core

import "testing"

func TestDirectoryMembersInJoinOrder(t *testing.T) {
	d := NewDirectory()
	d.Join("general", "c1", "alice")
	d.Join("general", "c2", "bob")
	d.Join("general", "c3", "carol")

	if got := d.Members("general"); !equalStrings(got, []string{"alice", "bob", "carol"}) {
		t.Fatalf("unexpected member order: %v", got)
	}

	d.Leave("general", "c2")
	if got := d.Members("general"); !equalStrings(got, []string{"alice", "carol"}) {
		t.Fatalf("unexpected members after leave: %v", got)
	}
}

func TestDirectoryRejoinOverwritesNameKeepsPosition(t *testing.T) {
	d := NewDirectory()
	d.Join("general", "c1", "alice")
	d.Join("general", "c2", "bob")
	d.Join("general", "c1", "alicia")

	if got := d.Members("general"); !equalStrings(got, []string{"alicia", "bob"}) {
		t.Fatalf("rejoin should overwrite name in place, got %v", got)
	}
}

func TestDirectoryLeaveUnknownIsNoop(t *testing.T) {
	d := NewDirectory()
	d.Join("general", "c1", "alice")

	if _, ok := d.Leave("general", "ghost"); ok {
		t.Fatal("leaving a non-member should be a no-op")
	}
	if _, ok := d.Leave("nowhere", "c1"); ok {
		t.Fatal("leaving an unknown room should be a no-op")
	}
	if got := d.Members("general"); !equalStrings(got, []string{"alice"}) {
		t.Fatalf("membership changed by no-op leaves: %v", got)
	}
}

func TestDirectoryReclaimsEmptyRoom(t *testing.T) {
	d := NewDirectory()
	d.Join("general", "c1", "alice")

	name, ok := d.Leave("general", "c1")
	if !ok || name != "alice" {
		t.Fatalf("unexpected leave result: %q ok=%v", name, ok)
	}
	if _, exists := d.rooms["general"]; exists {
		t.Fatal("empty room should be reclaimed")
	}
	if got := d.Members("general"); len(got) != 0 {
		t.Fatalf("reclaimed room should have no members: %v", got)
	}
}

func TestDirectoryRoomsOf(t *testing.T) {
	d := NewDirectory()
	d.Join("general", "c1", "alice")

	if got := d.RoomsOf("c1"); !equalStrings(got, []string{"general"}) {
		t.Fatalf("unexpected rooms: %v", got)
	}
	if got := d.RoomsOf("ghost"); got != nil {
		t.Fatalf("unknown connection should map to no rooms: %v", got)
	}

	d.Leave("general", "c1")
	if got := d.RoomsOf("c1"); got != nil {
		t.Fatalf("rooms not cleared after leave: %v", got)
	}
}

func TestDirectoryIsMember(t *testing.T) {
	d := NewDirectory()
	d.Join("general", "c1", "alice")

	if !d.IsMember("general", "c1") {
		t.Fatal("expected membership")
	}
	if d.IsMember("general", "c2") || d.IsMember("other", "c1") {
		t.Fatal("unexpected membership")
	}
}
